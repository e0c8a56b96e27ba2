package types

import (
	"log/slog"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// RepoID is the system-assigned identifier of a tracked repository record
type RepoID int64

func (x RepoID) String() string {
	return strconv.FormatInt(int64(x), 10)
}

// ParseRepoID converts a path parameter into RepoID
func ParseRepoID(v string) (RepoID, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(ErrValidationFailed, "repository ID must be an integer", goerr.V("value", v))
	}
	return RepoID(id), nil
}

// DatabaseDSN is a connection string for the record store. It may embed a password.
type DatabaseDSN string

func (x DatabaseDSN) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	return slog.StringValue("***********")
}
