package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/secmon-lab/repotrack/pkg/domain/model"
)

// GitHub fetches repository metadata from the upstream source
type GitHub interface {
	GetRepository(ctx context.Context, owner, repo string) (*model.GitHubRepoMetadata, error)
}
