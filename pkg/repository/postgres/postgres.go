package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pressly/goose/v3"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/repository"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
	"github.com/secmon-lab/repotrack/pkg/utils/safe"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type RepoStore struct {
	db *sql.DB
}

var _ interfaces.RepoStore = (*RepoStore)(nil)

type config struct {
	maxOpenConns int
}

type Option func(*config)

func WithMaxOpenConns(n int) Option {
	return func(cfg *config) {
		cfg.maxOpenConns = n
	}
}

// New opens a PostgreSQL connection pool and verifies connectivity
func New(ctx context.Context, dsn types.DatabaseDSN, options ...Option) (*RepoStore, error) {
	cfg := &config{
		maxOpenConns: 25,
	}
	for _, opt := range options {
		opt(cfg)
	}

	db, err := sql.Open("postgres", string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres")
	}

	db.SetMaxOpenConns(cfg.maxOpenConns)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to ping postgres")
	}

	return &RepoStore{db: db}, nil
}

// Migrate applies all pending schema migrations
func (x *RepoStore) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to open embedded migrations")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, x.db, fsys)
	if err != nil {
		return goerr.Wrap(err, "failed to create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to apply migrations")
	}

	for _, r := range results {
		logging.From(ctx).Info("applied migration",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

func (x *RepoStore) Close() error {
	return x.db.Close()
}

func (x *RepoStore) Insert(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	const query = `INSERT INTO repositories (name, owner, stars, url) VALUES ($1, $2, $3, $4) RETURNING id`

	created := repo.Copy()
	if err := x.db.QueryRowContext(ctx, query, repo.Name, repo.Owner, repo.Stars, repo.URL).Scan(&created.ID); err != nil {
		return nil, goerr.Wrap(err, "failed to insert repository",
			goerr.V("owner", repo.Owner),
			goerr.V("name", repo.Name),
		)
	}

	return created, nil
}

func (x *RepoStore) Get(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	const query = `SELECT id, name, owner, stars, url FROM repositories WHERE id = $1`

	var repo model.Repository
	err := x.db.QueryRowContext(ctx, query, int64(id)).Scan(&repo.ID, &repo.Name, &repo.Owner, &repo.Stars, &repo.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id))
	}

	return &repo, nil
}

func (x *RepoStore) UpdateStars(ctx context.Context, id types.RepoID, stars int64) error {
	const query = `UPDATE repositories SET stars = $1 WHERE id = $2`

	result, err := x.db.ExecContext(ctx, query, stars, int64(id))
	if err != nil {
		return goerr.Wrap(err, "failed to update stars", goerr.V("id", id))
	}

	return requireAffected(result, id)
}

func (x *RepoStore) Delete(ctx context.Context, id types.RepoID) error {
	const query = `DELETE FROM repositories WHERE id = $1`

	result, err := x.db.ExecContext(ctx, query, int64(id))
	if err != nil {
		return goerr.Wrap(err, "failed to delete repository", goerr.V("id", id))
	}

	return requireAffected(result, id)
}

func requireAffected(result sql.Result, id types.RepoID) error {
	n, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("id", id))
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
	}
	return nil
}
