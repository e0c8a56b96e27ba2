package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/repository/sqlite"
	"github.com/secmon-lab/repotrack/pkg/repository/testhelper"
)

func newStore(t *testing.T, path string) *sqlite.RepoStore {
	t.Helper()
	ctx := context.Background()

	store := gt.R1(sqlite.New(ctx, path)).NoError(t)
	t.Cleanup(func() { gt.NoError(t, store.Close()) })
	gt.NoError(t, store.Migrate(ctx))

	return store
}

func TestSQLiteRepoStore(t *testing.T) {
	store := newStore(t, filepath.Join(t.TempDir(), "repotrack.db"))
	testhelper.TestAll(t, store)
}

func TestSQLiteRepoStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "repotrack.db")

	first := gt.R1(sqlite.New(ctx, path)).NoError(t)
	gt.NoError(t, first.Migrate(ctx))
	created := gt.R1(first.Insert(ctx, &model.Repository{
		Name:  "fastapi",
		Owner: "tiangolo",
		Stars: 100,
		URL:   "https://github.com/tiangolo/fastapi",
	})).NoError(t)
	gt.NoError(t, first.Close())

	second := newStore(t, path)
	got := gt.R1(second.Get(ctx, created.ID)).NoError(t)
	gt.V(t, *got).Equal(*created)
}
