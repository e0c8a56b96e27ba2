package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/repository"
)

type repoStore struct {
	mu     sync.RWMutex
	lastID types.RepoID
	repos  map[types.RepoID]*model.Repository
}

var _ interfaces.RepoStore = (*repoStore)(nil)

// New creates a new in-memory repository store
func New() interfaces.RepoStore {
	return &repoStore{
		repos: make(map[types.RepoID]*model.Repository),
	}
}

func (r *repoStore) Insert(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := repo.Copy()
	stored.ID = r.lastID
	r.repos[stored.ID] = stored

	return stored.Copy(), nil
}

func (r *repoStore) Get(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("id", id),
		)
	}

	return repo.Copy(), nil
}

func (r *repoStore) UpdateStars(ctx context.Context, id types.RepoID, stars int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	repo, exists := r.repos[id]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("id", id),
		)
	}

	// Replace rather than mutate so that copies handed out earlier stay intact
	updated := repo.Copy()
	updated.Stars = stars
	r.repos[id] = updated

	return nil
}

func (r *repoStore) Delete(ctx context.Context, id types.RepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("id", id),
		)
	}
	delete(r.repos, id)

	return nil
}
