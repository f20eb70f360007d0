package branch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyCheckedOut rejects switching to the branch that is already checked out.
	ErrAlreadyCheckedOut = errors.New("branch is already checked out")

	// ErrCannotMergeSelf rejects merging the checked out branch into itself.
	ErrCannotMergeSelf = errors.New("cannot merge the checked out branch into itself")

	// ErrNoSelection indicates that no branch is selected.
	ErrNoSelection = errors.New("no branch selected")

	// ErrGatewayFailure matches every GatewayError.
	ErrGatewayFailure = errors.New("git command failed")
)

// PreconditionError reports an action refused before git was invoked.
type PreconditionError struct {
	Op     string
	Branch string
	Reason error
}

func (e *PreconditionError) Error() string {
	if e.Branch == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Branch, e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return e.Reason
}

// GatewayError reports a git invocation that failed to run or exited with a
// non-zero status.
type GatewayError struct {
	Op       string
	Branch   string
	Output   string
	ExitCode int
	Err      error
}

func (e *GatewayError) Error() string {
	target := e.Op
	if e.Branch != "" {
		target += " " + e.Branch
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", target, e.Err)
	}
	if detail := firstLine(e.Output); detail != "" {
		return fmt.Sprintf("%s: exit status %d: %s", target, e.ExitCode, detail)
	}
	return fmt.Sprintf("%s: exit status %d", target, e.ExitCode)
}

// Is returns true if the target error is ErrGatewayFailure.
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayFailure
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func firstLine(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
