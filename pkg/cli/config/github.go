package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/infra/ghapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
	timeout    time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (exclusive with GitHub App)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOTRACK_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("REPOTRACK_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPOTRACK_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOTRACK_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REPOTRACK_GITHUB_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a GitHub API request",
			Category:    "GitHub",
			Value:       ghapi.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REPOTRACK_GITHUB_TIMEOUT"),
		},
	}
}

// New builds a GitHub client. Unauthenticated access is used when neither a
// token nor App credentials are given.
func (x *GitHub) New() (*ghapi.Client, error) {
	options := []ghapi.Option{
		ghapi.WithTimeout(x.Timeout()),
	}

	if x.token != "" {
		options = append(options, ghapi.WithToken(x.token))
	}
	if x.appID != 0 || x.installID != 0 || x.privateKey != "" {
		options = append(options, ghapi.WithGitHubApp(x.appID, x.installID, x.privateKey))
	}
	if x.baseURL != "" {
		options = append(options, ghapi.WithBaseURL(x.baseURL))
	}

	return ghapi.New(options...)
}

func (x *GitHub) Timeout() time.Duration {
	if x.timeout == 0 {
		return ghapi.DefaultTimeout
	}
	return x.timeout
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("BaseURL", x.baseURL),
		slog.Duration("Timeout", x.Timeout()),
	)
}
