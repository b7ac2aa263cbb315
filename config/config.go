package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port        string
	DBDriver    string // sqlite|postgres
	DBPath      string
	DatabaseURL string
	StaticDir   string
	SeedOnStart bool
	SeedXLSX    string
	SeedRandom  int64
	LogLevel    string
	LogFormat   string
	SentryDSN   string
	SentryEnv   string
}

var defaults = map[string]any{
	"PORT":          "8080",
	"DB_DRIVER":     "sqlite",
	"DB_PATH":       "agri.db",
	"DATABASE_URL":  "",
	"STATIC_DIR":    "static",
	"SEED_ON_START": true,
	"SEED_XLSX":     "",
	"SEED_RANDOM":   0,
	"LOG_LEVEL":     "info",
	"LOG_FORMAT":    "text",
	"SENTRY_DSN":    "",
	"SENTRY_ENV":    "development",
}

// Load reads .env (if present) and the process environment.
func Load() AppConfig {
	return FromViper(viper.New())
}

// FromViper fills AppConfig from v after registering defaults and env
// lookups. Values already bound on v (command flags) take precedence.
func FromViper(v *viper.Viper) AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.AutomaticEnv()

	cfg := AppConfig{
		Port:        v.GetString("PORT"),
		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DBPath:      v.GetString("DB_PATH"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		StaticDir:   v.GetString("STATIC_DIR"),
		SeedOnStart: v.GetBool("SEED_ON_START"),
		SeedXLSX:    v.GetString("SEED_XLSX"),
		SeedRandom:  v.GetInt64("SEED_RANDOM"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		SentryDSN:   v.GetString("SENTRY_DSN"),
		SentryEnv:   v.GetString("SENTRY_ENV"),
	}
	log.Printf("[cfg] %+v", cfg.Redacted())
	return cfg
}

// Redacted hides credentials so the config can be logged.
func (c AppConfig) Redacted() AppConfig {
	if c.DatabaseURL != "" {
		c.DatabaseURL = "***"
	}
	if c.SentryDSN != "" {
		c.SentryDSN = "***"
	}
	return c
}
