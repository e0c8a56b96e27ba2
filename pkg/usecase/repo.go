package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
)

func (x *UseCase) GetRepo(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	if x.clients.RepoStore() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}

	repo, err := x.clients.RepoStore().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("id", id))
	}
	return repo, nil
}

// UpdateRepoStars overwrites the star count of a record. Any integer is accepted.
func (x *UseCase) UpdateRepoStars(ctx context.Context, id types.RepoID, stars int64) error {
	if x.clients.RepoStore() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}

	if err := x.clients.RepoStore().UpdateStars(ctx, id, stars); err != nil {
		return goerr.Wrap(err, "failed to update stars", goerr.V("id", id), goerr.V("stars", stars))
	}

	logging.From(ctx).Info("repository stars updated",
		slog.Any("id", id),
		slog.Int64("stars", stars),
	)
	return nil
}

func (x *UseCase) DeleteRepo(ctx context.Context, id types.RepoID) error {
	if x.clients.RepoStore() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}

	if err := x.clients.RepoStore().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete repository", goerr.V("id", id))
	}

	logging.From(ctx).Info("repository deleted", slog.Any("id", id))
	return nil
}
