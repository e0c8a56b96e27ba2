package config_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repotrack/pkg/cli/config"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/infra/ghapi"
	"github.com/urfave/cli/v3"
)

func containsString(s, sub string) bool {
	return strings.Contains(s, sub)
}

func parseGitHub(t *testing.T, args ...string) *config.GitHub {
	t.Helper()

	var gh config.GitHub
	cmd := &cli.Command{
		Name:  "test",
		Flags: gh.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return &gh
}

func TestGitHubFlags(t *testing.T) {
	var gh config.GitHub
	flagNames := make(map[string]bool)
	for _, flag := range gh.Flags() {
		flagNames[flag.Names()[0]] = true
	}

	for _, name := range []string{
		"github-token",
		"github-app-id",
		"github-app-installation-id",
		"github-app-private-key",
		"github-base-url",
		"github-timeout",
	} {
		gt.True(t, flagNames[name])
	}
}

func TestGitHubDefaultTimeout(t *testing.T) {
	gh := parseGitHub(t)
	gt.V(t, gh.Timeout()).Equal(ghapi.DefaultTimeout)

	gh = parseGitHub(t, "--github-timeout", "3s")
	gt.V(t, gh.Timeout()).Equal(3 * time.Second)
}

func TestGitHubNew(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		gh := parseGitHub(t)
		gt.R1(gh.New()).NoError(t)
	})

	t.Run("token", func(t *testing.T) {
		gh := parseGitHub(t, "--github-token", "ghp_dummy", "--github-base-url", "https://ghe.example.com/api/v3")
		gt.R1(gh.New()).NoError(t)
	})

	t.Run("token and app are exclusive", func(t *testing.T) {
		gh := parseGitHub(t, "--github-token", "ghp_dummy", "--github-app-id", "1")
		_, err := gh.New()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("incomplete app credentials", func(t *testing.T) {
		gh := parseGitHub(t, "--github-app-id", "1")
		_, err := gh.New()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestGitHubLogValueMasksSecrets(t *testing.T) {
	gh := parseGitHub(t, "--github-token", "ghp_very_secret_token")
	gt.False(t, containsString(gh.LogValue().String(), "ghp_very_secret_token"))
}
