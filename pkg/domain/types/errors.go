package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrUpstreamFailure covers any failure while fetching metadata from GitHub.
	// Network errors, error statuses and malformed payloads are not distinguished.
	ErrUpstreamFailure = goerr.New("upstream failure")
)
