package isy

import "errors"

// Domain errors for the isy package.
//
// Lookup misses surface as entity.ErrNotFound and verb/kind mismatches as
// command.ErrInvalidCommand; this package adds the round-trip failures.
var (
	// ErrTransport is returned when a hub round trip fails: network error,
	// authentication rejection, or a non-success HTTP status. Never retried
	// here; retry policy belongs to the caller.
	ErrTransport = errors.New("isy: transport failure")

	// ErrCommandFailed is returned when the hub acknowledged a command
	// request but reported it unsuccessful (RestResponse succeeded="false").
	ErrCommandFailed = errors.New("isy: command failed")
)
