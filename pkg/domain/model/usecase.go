package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
)

type CreateRepoInput struct {
	Owner    string `json:"owner"`
	RepoName string `json:"repo_name"`
}

func (x *CreateRepoInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is required")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo_name is required")
	}
	return nil
}
