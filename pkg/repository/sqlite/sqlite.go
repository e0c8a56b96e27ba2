package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pressly/goose/v3"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/repository"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
	"github.com/secmon-lab/repotrack/pkg/utils/safe"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RepoStore keeps repository records in a local SQLite database file
type RepoStore struct {
	db *sql.DB
}

var _ interfaces.RepoStore = (*RepoStore)(nil)

// New opens the SQLite database at path. The file is created if it does not exist.
func New(ctx context.Context, path string) (*RepoStore, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite", goerr.V("path", path))
	}

	if err := db.PingContext(ctx); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to ping sqlite", goerr.V("path", path))
	}

	return &RepoStore{db: db}, nil
}

// Migrate applies all pending schema migrations
func (x *RepoStore) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to open embedded migrations")
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, x.db, fsys)
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
	const query = `INSERT INTO repositories (name, owner, stars, url) VALUES (?, ?, ?, ?)`

	result, err := x.db.ExecContext(ctx, query, repo.Name, repo.Owner, repo.Stars, repo.URL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert repository",
			goerr.V("owner", repo.Owner),
			goerr.V("name", repo.Name),
		)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted ID")
	}

	created := repo.Copy()
	created.ID = types.RepoID(id)
	return created, nil
}

func (x *RepoStore) Get(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	const query = `SELECT id, name, owner, stars, url FROM repositories WHERE id = ?`

	var (
		repo  model.Repository
		rawID int64
	)
	err := x.db.QueryRowContext(ctx, query, int64(id)).Scan(&rawID, &repo.Name, &repo.Owner, &repo.Stars, &repo.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id))
	}
	repo.ID = types.RepoID(rawID)

	return &repo, nil
}

func (x *RepoStore) UpdateStars(ctx context.Context, id types.RepoID, stars int64) error {
	const query = `UPDATE repositories SET stars = ? WHERE id = ?`

	result, err := x.db.ExecContext(ctx, query, stars, int64(id))
	if err != nil {
		return goerr.Wrap(err, "failed to update stars", goerr.V("id", id))
	}

	return requireAffected(result, id)
}

func (x *RepoStore) Delete(ctx context.Context, id types.RepoID) error {
	const query = `DELETE FROM repositories WHERE id = ?`

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
