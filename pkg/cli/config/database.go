package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/repository/memory"
	"github.com/secmon-lab/repotrack/pkg/repository/postgres"
	"github.com/secmon-lab/repotrack/pkg/repository/sqlite"
	"github.com/urfave/cli/v3"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// RepoStore is a repository store with a managed schema and connection
type RepoStore interface {
	interfaces.RepoStore
	Migrate(ctx context.Context) error
	Close() error
}

type Database struct {
	driver       string
	dsn          types.DatabaseDSN
	maxOpenConns int64
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-driver",
			Usage:       "Database driver [memory|postgres|sqlite]",
			Category:    "Database",
			Value:       DriverMemory,
			Destination: &x.driver,
			Sources:     cli.EnvVars("REPOTRACK_DB_DRIVER"),
		},
		&cli.StringFlag{
			Name:        "db-dsn",
			Usage:       "Database DSN (postgres) or file path (sqlite)",
			Category:    "Database",
			Destination: (*string)(&x.dsn),
			Sources:     cli.EnvVars("REPOTRACK_DB_DSN"),
		},
		&cli.Int64Flag{
			Name:        "db-max-open-conns",
			Usage:       "Maximum number of open connections (postgres)",
			Category:    "Database",
			Value:       25,
			Destination: &x.maxOpenConns,
			Sources:     cli.EnvVars("REPOTRACK_DB_MAX_OPEN_CONNS"),
		},
	}
}

func (x *Database) Driver() string {
	if x.driver == "" {
		return DriverMemory
	}
	return x.driver
}

// NewRepoStore opens the store selected by the driver flag. Migrations are not
// applied here.
func (x *Database) NewRepoStore(ctx context.Context) (RepoStore, error) {
	switch x.Driver() {
	case DriverMemory:
		return &memoryStore{RepoStore: memory.New()}, nil

	case DriverPostgres:
		if x.dsn == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "db-dsn is required for postgres")
		}
		var options []postgres.Option
		if x.maxOpenConns > 0 {
			options = append(options, postgres.WithMaxOpenConns(int(x.maxOpenConns)))
		}
		store, err := postgres.New(ctx, x.dsn, options...)
		if err != nil {
			return nil, err
		}
		return store, nil

	case DriverSQLite:
		if x.dsn == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "db-dsn is required for sqlite")
		}
		store, err := sqlite.New(ctx, string(x.dsn))
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported database driver", goerr.V("driver", x.driver))
	}
}

func (x Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Driver", x.Driver()),
		slog.Any("DSN", x.dsn.LogValue()),
		slog.Int64("MaxOpenConns", x.maxOpenConns),
	)
}

type memoryStore struct {
	interfaces.RepoStore
}

func (x *memoryStore) Migrate(ctx context.Context) error {
	return nil
}

func (x *memoryStore) Close() error {
	return nil
}
