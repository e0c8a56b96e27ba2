package model

import (
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
)

// Repository is a cached snapshot of a GitHub repository's metadata
type Repository struct {
	ID    types.RepoID `json:"id"`
	Name  string       `json:"name"`
	Owner string       `json:"owner"`
	Stars int64        `json:"stars"`
	URL   string       `json:"url"`
}

// NewRepository builds a record without ID. The ID is assigned by the store on insert.
func NewRepository(name, owner string, stars int64, rawURL string) (*Repository, error) {
	repo := &Repository{
		Name:  name,
		Owner: owner,
		Stars: stars,
		URL:   rawURL,
	}
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (x *Repository) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is empty")
	}
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository owner is empty")
	}
	if err := validateURL(x.URL); err != nil {
		return err
	}
	return nil
}

// Copy returns a shallow copy. All fields are values so the copy is independent.
func (x *Repository) Copy() *Repository {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}

func validateURL(v string) error {
	u, err := url.Parse(v)
	if err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid repository URL", goerr.V("url", v), goerr.V("error", err.Error()))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.Wrap(types.ErrValidationFailed, "repository URL must be http or https", goerr.V("url", v))
	}
	if u.Host == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository URL has no host", goerr.V("url", v))
	}
	return nil
}
