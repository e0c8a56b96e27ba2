package interfaces

import (
	"context"

	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
)

//go:generate moq -out ../mock/repo_store_mock.go -pkg mock . RepoStore

// RepoStore persists repository records keyed by a store-generated ID.
// Get, UpdateStars and Delete return an error wrapping repository.ErrNotFound
// when no record has the given ID.
type RepoStore interface {
	Insert(ctx context.Context, repo *model.Repository) (*model.Repository, error)
	Get(ctx context.Context, id types.RepoID) (*model.Repository, error)
	UpdateStars(ctx context.Context, id types.RepoID, stars int64) error
	Delete(ctx context.Context, id types.RepoID) error
}
