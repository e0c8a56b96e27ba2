package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/repository/memory"
	"github.com/secmon-lab/repotrack/pkg/repository/testhelper"
)

func TestMemoryRepoStore(t *testing.T) {
	store := memory.New()
	testhelper.TestAll(t, store)
}

func TestMemoryRepoStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	input := &model.Repository{Name: "repo", Owner: "owner", Stars: 1, URL: "https://github.com/owner/repo"}
	created := gt.R1(store.Insert(ctx, input)).NoError(t)

	// the caller's input is not assigned an ID
	gt.V(t, input.ID).Equal(types.RepoID(0))

	created.Stars = 999
	got := gt.R1(store.Get(ctx, created.ID)).NoError(t)
	gt.V(t, got.Stars).Equal(int64(1))
}

func TestMemoryRepoStoreConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	const n = 50
	ids := make(chan types.RepoID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo, err := store.Insert(ctx, &model.Repository{Name: "r", Owner: "o", URL: "https://github.com/o/r"})
			if err == nil {
				ids <- repo.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[types.RepoID]bool{}
	for id := range ids {
		gt.False(t, seen[id])
		seen[id] = true
	}
	gt.V(t, len(seen)).Equal(n)
}
