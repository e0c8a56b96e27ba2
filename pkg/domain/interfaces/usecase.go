package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
)

type UseCase interface {
	CreateRepo(ctx context.Context, input *model.CreateRepoInput) (*model.Repository, error)
	GetRepo(ctx context.Context, id types.RepoID) (*model.Repository, error)
	UpdateRepoStars(ctx context.Context, id types.RepoID, stars int64) error
	DeleteRepo(ctx context.Context, id types.RepoID) error
}
