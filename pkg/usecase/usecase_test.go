package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repotrack/pkg/domain/mock"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/infra"
	"github.com/secmon-lab/repotrack/pkg/repository"
	"github.com/secmon-lab/repotrack/pkg/repository/memory"
	"github.com/secmon-lab/repotrack/pkg/usecase"
)

func metadataOf(name, owner string, stars int64, url string) func(context.Context, string, string) (*model.GitHubRepoMetadata, error) {
	return func(ctx context.Context, _, _ string) (*model.GitHubRepoMetadata, error) {
		return &model.GitHubRepoMetadata{
			Name:            name,
			OwnerLogin:      owner,
			StargazersCount: stars,
			HTMLURL:         url,
		}, nil
	}
}

func TestNew(t *testing.T) {
	uc := usecase.New(infra.New())

	_, err := uc.CreateRepo(context.Background(), &model.CreateRepoInput{Owner: "a", RepoName: "b"})
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, err = uc.GetRepo(context.Background(), 1)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	gt.True(t, errors.Is(uc.UpdateRepoStars(context.Background(), 1, 1), types.ErrInvalidOption))
	gt.True(t, errors.Is(uc.DeleteRepo(context.Background(), 1), types.ErrInvalidOption))
}

func TestCreateRepo(t *testing.T) {
	t.Run("record is built from upstream response", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetRepositoryFunc: metadataOf("fastapi", "tiangolo", 100, "https://github.com/tiangolo/fastapi"),
		}
		store := memory.New()
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(store)))
		ctx := context.Background()

		created, err := uc.CreateRepo(ctx, &model.CreateRepoInput{Owner: "TianGolo", RepoName: "FASTAPI"})
		gt.NoError(t, err)
		gt.V(t, created.ID).NotEqual(types.RepoID(0))
		gt.V(t, created.Name).Equal("fastapi")
		gt.V(t, created.Owner).Equal("tiangolo")
		gt.V(t, created.Stars).Equal(int64(100))
		gt.V(t, created.URL).Equal("https://github.com/tiangolo/fastapi")

		// request values address the upstream only
		calls := mockGH.GetRepositoryCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Owner).Equal("TianGolo")
		gt.V(t, calls[0].Repo).Equal("FASTAPI")

		got := gt.R1(uc.GetRepo(ctx, created.ID)).NoError(t)
		gt.V(t, *got).Equal(*created)
	})

	t.Run("invalid input does not reach upstream", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(memory.New())))

		_, err := uc.CreateRepo(context.Background(), &model.CreateRepoInput{Owner: "octocat"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(mockGH.GetRepositoryCalls())).Equal(0)
	})

	failures := []struct {
		name  string
		fetch func(ctx context.Context, owner, repo string) (*model.GitHubRepoMetadata, error)
	}{
		{
			name: "fetcher error",
			fetch: func(ctx context.Context, owner, repo string) (*model.GitHubRepoMetadata, error) {
				return nil, errors.New("GitHub API error")
			},
		},
		{
			name: "nil metadata",
			fetch: func(ctx context.Context, owner, repo string) (*model.GitHubRepoMetadata, error) {
				return nil, nil
			},
		},
		{
			name:  "invalid html_url",
			fetch: metadataOf("repo", "owner", 1, "not-a-valid-url"),
		},
		{
			name:  "empty name",
			fetch: metadataOf("", "owner", 1, "https://github.com/owner/repo"),
		},
	}

	for _, tc := range failures {
		t.Run(tc.name+" becomes upstream failure", func(t *testing.T) {
			mockGH := &mock.GitHubMock{GetRepositoryFunc: tc.fetch}
			mockStore := &mock.RepoStoreMock{}
			uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(mockStore)))

			created, err := uc.CreateRepo(context.Background(), &model.CreateRepoInput{Owner: "invalid", RepoName: "invalid"})
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrUpstreamFailure))
			gt.False(t, errors.Is(err, types.ErrValidationFailed))
			gt.V(t, created).Equal(nil)
			gt.V(t, len(mockStore.InsertCalls())).Equal(0)
		})
	}

	t.Run("slow upstream times out", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetRepositoryFunc: func(ctx context.Context, owner, repo string) (*model.GitHubRepoMetadata, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		mockStore := &mock.RepoStoreMock{}
		uc := usecase.New(
			infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(mockStore)),
			usecase.WithFetchTimeout(20*time.Millisecond),
		)

		_, err := uc.CreateRepo(context.Background(), &model.CreateRepoInput{Owner: "a", RepoName: "b"})
		gt.True(t, errors.Is(err, types.ErrUpstreamFailure))
		gt.V(t, len(mockStore.InsertCalls())).Equal(0)
	})

	t.Run("store error is not an upstream failure", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetRepositoryFunc: metadataOf("repo", "owner", 1, "https://github.com/owner/repo"),
		}
		mockStore := &mock.RepoStoreMock{
			InsertFunc: func(ctx context.Context, repo *model.Repository) (*model.Repository, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(mockStore)))

		_, err := uc.CreateRepo(context.Background(), &model.CreateRepoInput{Owner: "owner", RepoName: "repo"})
		gt.Error(t, err)
		gt.False(t, errors.Is(err, types.ErrUpstreamFailure))
	})
}

func TestNotFound(t *testing.T) {
	uc := usecase.New(infra.New(infra.WithRepoStore(memory.New())))
	ctx := context.Background()

	for _, id := range []types.RepoID{0, 1, 99999, -1} {
		_, err := uc.GetRepo(ctx, id)
		gt.True(t, errors.Is(err, repository.ErrNotFound))

		gt.True(t, errors.Is(uc.UpdateRepoStars(ctx, id, 10), repository.ErrNotFound))
		gt.True(t, errors.Is(uc.DeleteRepo(ctx, id), repository.ErrNotFound))
	}
}

func TestUpdateRepoStars(t *testing.T) {
	mockGH := &mock.GitHubMock{
		GetRepositoryFunc: metadataOf("repo", "owner", 10, "https://github.com/owner/repo"),
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(memory.New())))
	ctx := context.Background()

	created := gt.R1(uc.CreateRepo(ctx, &model.CreateRepoInput{Owner: "owner", RepoName: "repo"})).NoError(t)

	for _, stars := range []int64{0, -100, 999999} {
		gt.NoError(t, uc.UpdateRepoStars(ctx, created.ID, stars))

		got := gt.R1(uc.GetRepo(ctx, created.ID)).NoError(t)
		gt.V(t, got.Stars).Equal(stars)
		gt.V(t, got.Name).Equal(created.Name)
		gt.V(t, got.Owner).Equal(created.Owner)
		gt.V(t, got.URL).Equal(created.URL)
	}
}

func TestDeleteRepo(t *testing.T) {
	mockGH := &mock.GitHubMock{
		GetRepositoryFunc: metadataOf("repo", "owner", 10, "https://github.com/owner/repo"),
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(memory.New())))
	ctx := context.Background()

	created := gt.R1(uc.CreateRepo(ctx, &model.CreateRepoInput{Owner: "owner", RepoName: "repo"})).NoError(t)
	gt.NoError(t, uc.DeleteRepo(ctx, created.ID))

	_, err := uc.GetRepo(ctx, created.ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// deletion is not idempotent
	gt.True(t, errors.Is(uc.DeleteRepo(ctx, created.ID), repository.ErrNotFound))
}

func TestWorkflow(t *testing.T) {
	mockGH := &mock.GitHubMock{
		GetRepositoryFunc: metadataOf("workflow-test", "testuser", 50, "https://github.com/testuser/workflow-test"),
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(memory.New())))
	ctx := context.Background()

	created := gt.R1(uc.CreateRepo(ctx, &model.CreateRepoInput{Owner: "testuser", RepoName: "workflow-test"})).NoError(t)
	gt.V(t, created.Stars).Equal(int64(50))

	gt.NoError(t, uc.UpdateRepoStars(ctx, created.ID, 150))
	got := gt.R1(uc.GetRepo(ctx, created.ID)).NoError(t)
	gt.V(t, got.Stars).Equal(int64(150))

	gt.NoError(t, uc.DeleteRepo(ctx, created.ID))
	_, err := uc.GetRepo(ctx, created.ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestMultipleRepos(t *testing.T) {
	names := []string{"repo-1", "repo-2", "repo-3"}
	var n int
	mockGH := &mock.GitHubMock{
		GetRepositoryFunc: func(ctx context.Context, owner, repo string) (*model.GitHubRepoMetadata, error) {
			name := names[n]
			n++
			return &model.GitHubRepoMetadata{
				Name:            name,
				OwnerLogin:      "owner",
				StargazersCount: int64(n * 10),
				HTMLURL:         "https://github.com/owner/" + name,
			}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithRepoStore(memory.New())))
	ctx := context.Background()

	var created []*model.Repository
	for _, name := range names {
		repo := gt.R1(uc.CreateRepo(ctx, &model.CreateRepoInput{Owner: "owner", RepoName: name})).NoError(t)
		created = append(created, repo)
	}

	gt.V(t, created[0].ID).NotEqual(created[1].ID)
	gt.V(t, created[1].ID).NotEqual(created[2].ID)
	gt.V(t, created[0].ID).NotEqual(created[2].ID)

	gt.NoError(t, uc.DeleteRepo(ctx, created[0].ID))

	_, err := uc.GetRepo(ctx, created[0].ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	for _, repo := range created[1:] {
		got := gt.R1(uc.GetRepo(ctx, repo.ID)).NoError(t)
		gt.V(t, got.Name).Equal(repo.Name)
	}
}
