package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/atomicstack/git-branch-control/internal/logging/events"
)

// DefaultCommandTimeout bounds a single git invocation when the caller does
// not supply its own deadline.
const DefaultCommandTimeout = 5 * time.Minute

var _ Gateway = (*Runner)(nil)

// Runner implements Gateway by spawning the git binary.
type Runner struct {
	dir     string
	binary  string
	timeout time.Duration
}

// NewRunner creates a Runner rooted at dir. A non-positive timeout falls back
// to DefaultCommandTimeout.
func NewRunner(dir string, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &Runner{dir: dir, binary: "git", timeout: timeout}
}

// ListBranches returns the raw lines printed by git branch.
func (r *Runner) ListBranches(ctx context.Context) ([]string, error) {
	args := listBranchesArgs()
	res, err := r.run(ctx, args)
	if err != nil {
		return nil, err
	}
	if res.Failed() {
		return nil, &CommandError{Args: args, Output: res.Output, ExitCode: res.ExitCode}
	}
	return strings.Split(res.Output, "\n"), nil
}

func (r *Runner) Switch(ctx context.Context, name string) (Result, error) {
	return r.run(ctx, switchArgs(name))
}

func (r *Runner) Checkout(ctx context.Context, name string) (Result, error) {
	return r.run(ctx, checkoutArgs(name))
}

func (r *Runner) Merge(ctx context.Context, name string) (Result, error) {
	return r.run(ctx, mergeArgs(name))
}

func (r *Runner) FastForward(ctx context.Context, name string) (Result, error) {
	return r.run(ctx, fastForwardArgs(name))
}

func (r *Runner) FetchAll(ctx context.Context) (Result, error) {
	return r.run(ctx, fetchAllArgs())
}

func (r *Runner) command(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.dir != "" {
		cmd.Dir = r.dir
	}
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "LC_ALL=C")
	return cmd
}

func (r *Runner) run(ctx context.Context, args []string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var out bytes.Buffer
	cmd := r.command(ctx, args)
	cmd.Stdout = &out
	cmd.Stderr = &out

	started := time.Now()
	err := cmd.Run()
	res := Result{
		Args:   append([]string(nil), args...),
		Output: strings.ToValidUTF8(out.String(), "�"),
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			events.Git.Failed(args, ctxErr)
			return res, &CommandError{Args: res.Args, Output: res.Output, ExitCode: -1, Err: ctxErr}
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			events.Git.Failed(args, err)
			return res, &CommandError{Args: res.Args, Output: res.Output, ExitCode: -1, Err: err}
		}
		res.ExitCode = exitErr.ExitCode()
	}
	events.Git.Ran(args, res.ExitCode, time.Since(started))
	return res, nil
}
