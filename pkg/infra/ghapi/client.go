package ghapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const DefaultTimeout = 5 * time.Second

// Client fetches repository metadata from the GitHub REST API
type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	token      types.GitHubToken
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey
	baseURL    string
	timeout    time.Duration
	transport  http.RoundTripper
}

type Option func(*config)

// WithToken authenticates requests with a personal access token
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithGitHubApp authenticates requests as a GitHub App installation
func WithGitHubApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(cfg *config) {
		cfg.appID = appID
		cfg.installID = installID
		cfg.privateKey = pem
	}
}

// WithBaseURL sets the API endpoint, e.g. for GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = d
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	httpClient, err := buildHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL",
				goerr.V("baseURL", cfg.baseURL),
				goerr.V("error", err.Error()),
			)
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

func buildHTTPClient(cfg *config) (*http.Client, error) {
	if cfg.timeout <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "timeout must be positive", goerr.V("timeout", cfg.timeout))
	}

	useApp := cfg.appID != 0 || cfg.installID != 0 || cfg.privateKey != ""
	if useApp && cfg.token != "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token and GitHub App credentials are exclusive")
	}

	tr := cfg.transport
	switch {
	case useApp:
		if cfg.appID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
		}
		if cfg.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
		}
		if cfg.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
		}

		itr, err := ghinstallation.New(tr, int64(cfg.appID), int64(cfg.installID), []byte(cfg.privateKey))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport")
		}
		if cfg.baseURL != "" {
			itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
		}
		tr = itr

	case cfg.token != "":
		tr = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cfg.token)}),
			Base:   tr,
		}
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.timeout,
	}, nil
}

// GetRepository retrieves metadata of owner/repo. Any transport error, error
// status or incomplete payload is returned as an error.
func (x *Client) GetRepository(ctx context.Context, owner, repo string) (*model.GitHubRepoMetadata, error) {
	logging.From(ctx).Debug("Sending GetRepository request",
		slog.String("owner", owner),
		slog.String("repo", repo),
	)

	resp, r, err := x.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		vars := []goerr.Option{goerr.V("owner", owner), goerr.V("repo", repo)}
		if r != nil {
			vars = append(vars, goerr.V("status", r.StatusCode))
		}
		return nil, goerr.Wrap(err, "failed to get repository", vars...)
	}

	if resp.Name == nil || resp.Owner == nil || resp.Owner.Login == nil || resp.StargazersCount == nil || resp.HTMLURL == nil {
		return nil, goerr.New("incomplete repository payload",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	meta := &model.GitHubRepoMetadata{
		Name:            resp.GetName(),
		OwnerLogin:      resp.GetOwner().GetLogin(),
		StargazersCount: int64(resp.GetStargazersCount()),
		HTMLURL:         resp.GetHTMLURL(),
	}

	logging.From(ctx).Debug("GetRepository response", slog.Any("metadata", meta))

	return meta, nil
}
