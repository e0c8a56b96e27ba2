package cli

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/repotrack/pkg/cli/config"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
	"github.com/secmon-lab/repotrack/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	var database config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database schema migrations and exit",
		Flags: database.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting migrate", slog.Any("Database", database))

			store, err := database.NewRepoStore(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(store)

			if err := store.Migrate(ctx); err != nil {
				return err
			}

			logging.Default().Info("migration completed", slog.String("driver", database.Driver()))
			return nil
		},
	}
}
