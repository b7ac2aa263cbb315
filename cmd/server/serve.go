package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/navya9866/Smart-agriculture/database"
	"github.com/navya9866/Smart-agriculture/pkg/metrics"
	"github.com/navya9866/Smart-agriculture/pkg/store"
	"github.com/navya9866/Smart-agriculture/router"
)

func getServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs the HTTP API",
		Long: `Opens the store, seeds it when empty (SEED_ON_START) and serves the API,
/health, /metrics and the static UI directory until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			m := metrics.New()
			log.Printf("[metrics] prometheus initialized")

			var extra []echo.MiddlewareFunc
			if cfg.SentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:              cfg.SentryDSN,
					Environment:      cfg.SentryEnv,
					Release:          Version,
					AttachStacktrace: true,
				}); err != nil {
					log.Printf("[sentry] init failed: %v", err)
				} else {
					defer sentry.Flush(2 * time.Second)
					extra = append(extra, sentryecho.New(sentryecho.Options{Repanic: true}))
					log.Printf("[sentry] enabled (%s)", cfg.SentryEnv)
				}
			}

			if cfg.SeedOnStart {
				opts, err := seedOptions(cfg.SeedXLSX, cfg.SeedRandom, m)
				if err != nil {
					log.Printf("[seed] %v", err)
				} else if _, err := database.Seed(ctx, store.New(db), opts); err != nil {
					log.Printf("[seed] Error seeding database: %v", err)
				}
			}

			e := router.NewApp(db, router.Options{
				Metrics:    m,
				Logger:     slog.Default(),
				StaticDir:  cfg.StaticDir,
				Middleware: extra,
			})

			errCh := make(chan error, 1)
			go func() {
				log.Printf("listening on :%s", cfg.Port)
				errCh <- e.Start(":" + cfg.Port)
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Printf("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("port", "", "listen port")
	cmd.Flags().String("static-dir", "", "directory with the built UI")
	_ = v.BindPFlag("PORT", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("STATIC_DIR", cmd.Flags().Lookup("static-dir"))
	return cmd
}
