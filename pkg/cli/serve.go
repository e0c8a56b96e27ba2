package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/repotrack/pkg/cli/config"
	"github.com/secmon-lab/repotrack/pkg/controller/server"
	"github.com/secmon-lab/repotrack/pkg/infra"
	"github.com/secmon-lab/repotrack/pkg/usecase"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
	"github.com/secmon-lab/repotrack/pkg/utils/safe"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr        string
		maxBodySize int64

		github   config.GitHub
		database config.Database
		sentry   config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOTRACK_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "max-body-size",
			Usage:       "Maximum size of a request body in bytes",
			Value:       server.DefaultMaxBodySize,
			Sources:     cli.EnvVars("REPOTRACK_MAX_BODY_SIZE"),
			Destination: &maxBodySize,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			database.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Database", database),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			store, err := database.NewRepoStore(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(store)

			if err := store.Migrate(ctx); err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHub(ghClient),
				infra.WithRepoStore(store),
			)

			uc := usecase.New(clients, usecase.WithFetchTimeout(github.Timeout()))
			s := server.New(uc, server.WithMaxBodySize(maxBodySize))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
