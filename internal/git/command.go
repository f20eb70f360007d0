package git

import (
	"fmt"
	"strings"
)

func listBranchesArgs() []string {
	return []string{"branch", "--no-color"}
}

func switchArgs(name string) []string {
	return []string{"switch", name}
}

func checkoutArgs(name string) []string {
	return []string{"checkout", name}
}

func mergeArgs(name string) []string {
	return []string{"merge", "--no-edit", name}
}

func fastForwardArgs(name string) []string {
	return []string{"merge", "--ff-only", name}
}

func fetchAllArgs() []string {
	return []string{"fetch", "--all"}
}

// CommandError describes a git invocation that could not run or that exited
// unsuccessfully while listing branches.
type CommandError struct {
	Args     []string
	Output   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	cmd := "git " + strings.Join(e.Args, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", cmd, e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("%s: exit status %d: %s", cmd, e.ExitCode, out)
	}
	return fmt.Sprintf("%s: exit status %d", cmd, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
