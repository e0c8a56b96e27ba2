package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/repository"
)

// TestAll runs all test cases for RepoStore
// This is the main entry point for testing any RepoStore implementation
func TestAll(t *testing.T, store interfaces.RepoStore) {
	t.Run("InsertAndGet", func(t *testing.T) {
		TestInsertAndGet(t, store)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, store)
	})
	t.Run("UpdateStars", func(t *testing.T) {
		TestUpdateStars(t, store)
	})
	t.Run("Delete", func(t *testing.T) {
		TestDelete(t, store)
	})
	t.Run("DistinctIDs", func(t *testing.T) {
		TestDistinctIDs(t, store)
	})
}

func newTestRepository() *model.Repository {
	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	name := fmt.Sprintf("repo-%s", uuid.New().String()[:8])
	return &model.Repository{
		Name:  name,
		Owner: owner,
		Stars: 42,
		URL:   fmt.Sprintf("https://github.com/%s/%s", owner, name),
	}
}

// unusedID returns an ID that the store has not issued yet
func unusedID(t *testing.T, store interfaces.RepoStore) types.RepoID {
	created := gt.R1(store.Insert(context.Background(), newTestRepository())).NoError(t)
	gt.NoError(t, store.Delete(context.Background(), created.ID))
	return created.ID + 1_000_000
}

// TestInsertAndGet tests that an inserted record can be read back unchanged
func TestInsertAndGet(t *testing.T, store interfaces.RepoStore) {
	ctx := context.Background()

	input := newTestRepository()
	created, err := store.Insert(ctx, input)
	gt.NoError(t, err)
	gt.V(t, created.ID).NotEqual(types.RepoID(0))
	gt.V(t, created.Name).Equal(input.Name)
	gt.V(t, created.Owner).Equal(input.Owner)
	gt.V(t, created.Stars).Equal(input.Stars)
	gt.V(t, created.URL).Equal(input.URL)

	retrieved, err := store.Get(ctx, created.ID)
	gt.NoError(t, err)
	gt.V(t, *retrieved).Equal(*created)

	// owner+name is not unique
	dup, err := store.Insert(ctx, input)
	gt.NoError(t, err)
	gt.V(t, dup.ID).NotEqual(created.ID)
}

// TestNotFound tests that all keyed operations fail for an ID never issued
func TestNotFound(t *testing.T, store interfaces.RepoStore) {
	ctx := context.Background()
	id := unusedID(t, store)

	_, err := store.Get(ctx, id)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = store.UpdateStars(ctx, id, 10)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = store.Delete(ctx, id)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestUpdateStars tests that only the stars field changes
func TestUpdateStars(t *testing.T, store interfaces.RepoStore) {
	ctx := context.Background()

	created := gt.R1(store.Insert(ctx, newTestRepository())).NoError(t)

	for _, stars := range []int64{150, 0, -7, math.MaxInt32 + 1} {
		gt.NoError(t, store.UpdateStars(ctx, created.ID, stars))

		retrieved := gt.R1(store.Get(ctx, created.ID)).NoError(t)
		gt.V(t, retrieved.Stars).Equal(stars)
		gt.V(t, retrieved.ID).Equal(created.ID)
		gt.V(t, retrieved.Name).Equal(created.Name)
		gt.V(t, retrieved.Owner).Equal(created.Owner)
		gt.V(t, retrieved.URL).Equal(created.URL)
	}
}

// TestDelete tests that deletion is permanent and not idempotent
func TestDelete(t *testing.T, store interfaces.RepoStore) {
	ctx := context.Background()

	created := gt.R1(store.Insert(ctx, newTestRepository())).NoError(t)
	gt.NoError(t, store.Delete(ctx, created.ID))

	_, err := store.Get(ctx, created.ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = store.Delete(ctx, created.ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestDistinctIDs tests that sequential inserts get distinct IDs and that
// deleting one record leaves the others intact
func TestDistinctIDs(t *testing.T, store interfaces.RepoStore) {
	ctx := context.Background()

	var created []*model.Repository
	seen := map[types.RepoID]bool{}
	for i := 0; i < 3; i++ {
		repo := gt.R1(store.Insert(ctx, newTestRepository())).NoError(t)
		gt.False(t, seen[repo.ID])
		seen[repo.ID] = true
		created = append(created, repo)
	}

	gt.NoError(t, store.Delete(ctx, created[0].ID))

	for _, repo := range created[1:] {
		retrieved := gt.R1(store.Get(ctx, repo.ID)).NoError(t)
		gt.V(t, *retrieved).Equal(*repo)
	}
}
