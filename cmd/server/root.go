package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/config"
	"github.com/navya9866/Smart-agriculture/database"
	"github.com/navya9866/Smart-agriculture/pkg/logger"
)

var cfg config.AppConfig

func getRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Agricultural analytics API",
		Long: `Serves crop, market, environment and labor data over a JSON API and
provides the maintenance commands around it.

Configuration precedence (highest to lowest):
  1. CLI flags (--port, --db-path, ...)
  2. Environment variables and .env (PORT, DB_DRIVER, DB_PATH, DATABASE_URL,
     STATIC_DIR, SEED_ON_START, SEED_XLSX, SEED_RANDOM, LOG_LEVEL, LOG_FORMAT,
     SENTRY_DSN, SENTRY_ENV)
  3. Built-in defaults`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.FromViper(v)
			logger.Init(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("db-driver", "", "store driver: sqlite or postgres")
	pf.String("db-path", "", "sqlite database file")
	pf.String("database-url", "", "postgres connection string")
	pf.String("log-level", "", "debug, info, warn or error")
	for key, flag := range map[string]string{
		"DB_DRIVER":    "db-driver",
		"DB_PATH":      "db-path",
		"DATABASE_URL": "database-url",
		"LOG_LEVEL":    "log-level",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.Flags().BoolP("version", "V", false, "version for server")

	rootCmd.AddCommand(
		getServeCmd(v),
		getSeedCmd(v),
		getExportCmd(),
		getImportPricesCmd(),
		getDashboardCmd(),
	)
	return rootCmd
}

func openDB() (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
