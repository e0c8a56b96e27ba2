package model

// GitHubRepoMetadata is the subset of GitHub's repository payload that is cached
type GitHubRepoMetadata struct {
	Name            string
	OwnerLogin      string
	StargazersCount int64
	HTMLURL         string
}

// ToRepository maps upstream metadata into a new record. Values are taken from
// GitHub's response, not from the caller's request.
func (x *GitHubRepoMetadata) ToRepository() (*Repository, error) {
	return NewRepository(x.Name, x.OwnerLogin, x.StargazersCount, x.HTMLURL)
}
