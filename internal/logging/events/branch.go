package events

import (
	"time"

	"github.com/atomicstack/git-branch-control/internal/logging"
)

type BranchTracer struct{}

type GitTracer struct{}

var (
	Branch = BranchTracer{}
	Git    = GitTracer{}
)

func (BranchTracer) Loaded(count int, checkedOut string) {
	logging.Trace("branch.load", map[string]interface{}{"count": count, "checkedOut": checkedOut})
}

func (BranchTracer) Select(index int, name string) {
	logging.Trace("branch.select", map[string]interface{}{"index": index, "name": name})
}

func (BranchTracer) Rejected(op, name string, err error) {
	logging.Trace("branch.rejected", map[string]interface{}{"op": op, "name": name, "error": err.Error()})
}

func (BranchTracer) Applied(op, name string) {
	logging.Trace("branch.applied", map[string]interface{}{"op": op, "name": name})
}

func (GitTracer) Ran(args []string, exitCode int, elapsed time.Duration) {
	logging.Trace("git.run", map[string]interface{}{
		"args":     args,
		"exitCode": exitCode,
		"elapsed":  elapsed.String(),
	})
}

func (GitTracer) Failed(args []string, err error) {
	logging.Trace("git.error", map[string]interface{}{"args": args, "error": err.Error()})
}
