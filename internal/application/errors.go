package application

import "errors"

// Domain errors returned to the transport layer. The transport maps them to
// status codes; none are retried internally.
var (
	ErrDuplicateIdentity  = errors.New("email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUserNotFound       = errors.New("user not found")
	// ErrNotModified reports that a follow/unfollow changed nothing. It
	// covers both a missing user and a mutation that was already applied;
	// the repository's zero-change signal cannot tell the two apart.
	ErrNotModified = errors.New("nothing to update")
	// ErrStorage masks repository failures. The cause is logged, never
	// returned to callers.
	ErrStorage = errors.New("storage failure")
)
