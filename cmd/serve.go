package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"popdash/internal/api"
	"popdash/internal/app"
	"popdash/internal/archive"
	"popdash/internal/config"
	"popdash/internal/worker"
	"popdash/pkg/logger"
	"popdash/pkg/metrics"
	"popdash/pkg/storage/postgres"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func warnUnverifiedArchive(ctx context.Context, cfg *config.Config) {
	if cfg.JWT.PublicKey == "" && cfg.Archive.Enabled {
		logger.Warn(ctx, "jwt.publicKey is not configured, POST /v1/archive rejects every request")
	}
}

// serveCommand constructs the 'serve' subcommand. It scrapes the population
// table once, builds the dashboard and serves it until interrupted. With the
// archive enabled it also runs the archive worker against PostgreSQL.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Scrapes the population table and serves the dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			meterProvider, err := metrics.NewMeterProvider(nil)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			meter := meterProvider.Meter("popdash")

			builder := newBuilder(ctx, cfg, meter)
			deps := api.Deps{MeterProvider: meterProvider}
			warnUnverifiedArchive(ctx, cfg)

			var (
				latest   app.LatestSnapshotter
				strg     *postgres.PgSQL
				stopJobs = func(context.Context) {}
			)
			if cfg.Archive.Enabled {
				var closeStrg func()
				strg, closeStrg = getPostgres(ctx, cfg)
				defer closeStrg()

				deps.Archive = archive.New(strg, archive.NewOptions(cfg))
				deps.Database = strg
				if cfg.Source.FallbackToArchive {
					latest = strg
				}
			}

			deps.State = buildState(ctx, cfg, builder, latest)

			// started after the startup scrape; the periodic job runs on start.
			if strg != nil {
				riverClient, err := worker.Start(ctx, strg.Pool, builder, strg, worker.Options{
					URL:         cfg.Source.URL,
					Interval:    cfg.Archive.Interval,
					MaxAttempts: cfg.Archive.MaxAttempts,
					Workers:     cfg.Archive.Workers,
				})
				if err != nil {
					logger.Fatal(ctx, "could not start archive worker", zap.Error(err))
				}
				stopJobs = func(ctx context.Context) {
					logger.Info(ctx, "stopping archive worker...")
					if err := riverClient.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop archive worker", zap.Error(err))
					}
				}
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopJobs(shutdownCtx)
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
