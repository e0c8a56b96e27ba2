package infra

import (
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
)

type Clients struct {
	github    interfaces.GitHub
	repoStore interfaces.RepoStore
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) RepoStore() interfaces.RepoStore {
	return x.repoStore
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithRepoStore(store interfaces.RepoStore) Option {
	return func(x *Clients) {
		x.repoStore = store
	}
}
