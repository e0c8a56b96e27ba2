package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
)

// CreateRepo fetches metadata of the requested repository from GitHub and
// stores it as a new record. Name and owner of the record are taken from
// GitHub's response, so they may differ from the input in casing.
func (x *UseCase) CreateRepo(ctx context.Context, input *model.CreateRepoInput) (*model.Repository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if x.clients.RepoStore() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}

	record, err := x.fetchRepository(ctx, input.Owner, input.RepoName)
	if err != nil {
		return nil, err
	}

	created, err := x.clients.RepoStore().Insert(ctx, record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert repository",
			goerr.V("owner", record.Owner),
			goerr.V("name", record.Name),
		)
	}

	logging.From(ctx).Info("repository registered",
		slog.Any("id", created.ID),
		slog.String("owner", created.Owner),
		slog.String("name", created.Name),
		slog.Int64("stars", created.Stars),
	)

	return created, nil
}

// fetchRepository collapses every failure of the upstream call into
// ErrUpstreamFailure. The cause is logged but not returned to the caller.
func (x *UseCase) fetchRepository(ctx context.Context, owner, repoName string) (*model.Repository, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, x.fetchTimeout)
	defer cancel()

	record, err := func() (*model.Repository, error) {
		meta, err := x.clients.GitHub().GetRepository(fetchCtx, owner, repoName)
		if err != nil {
			return nil, err
		}
		if meta == nil {
			return nil, goerr.New("empty repository metadata")
		}
		return meta.ToRepository()
	}()

	if err != nil {
		logging.From(ctx).Warn("failed to fetch repository from GitHub",
			slog.String("owner", owner),
			slog.String("repo", repoName),
			slog.Any("error", err),
		)
		return nil, goerr.Wrap(types.ErrUpstreamFailure, "failed to fetch repository from GitHub",
			goerr.V("owner", owner),
			goerr.V("repo", repoName),
		)
	}

	return record, nil
}
