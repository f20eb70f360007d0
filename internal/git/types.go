package git

import "context"

// Result captures the outcome of a git subprocess that ran to completion.
type Result struct {
	Args     []string
	Output   string
	ExitCode int
}

// Failed reports whether git exited with a non-zero status.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Gateway runs the git operations the branch browser needs. A returned error
// means git could not be run at all; a completed command with a non-zero exit
// status is reported through Result.
type Gateway interface {
	ListBranches(ctx context.Context) ([]string, error)
	Switch(ctx context.Context, name string) (Result, error)
	Checkout(ctx context.Context, name string) (Result, error)
	Merge(ctx context.Context, name string) (Result, error)
	FastForward(ctx context.Context, name string) (Result, error)
	FetchAll(ctx context.Context) (Result, error)
}
