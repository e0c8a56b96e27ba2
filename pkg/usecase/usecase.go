package usecase

import (
	"time"

	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/infra"
)

const DefaultFetchTimeout = 5 * time.Second

type UseCase struct {
	clients      *infra.Clients
	fetchTimeout time.Duration
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithFetchTimeout bounds the GitHub metadata fetch of CreateRepo
func WithFetchTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.fetchTimeout = d
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:      clients,
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
