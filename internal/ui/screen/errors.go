package screen

import (
	"errors"

	"github.com/atomicstack/git-branch-control/internal/branch"
	"github.com/atomicstack/git-branch-control/internal/ui/state"
)

// RecordFromError maps a failure onto the record shown on the errors screen.
func RecordFromError(err error) state.ErrorRecord {
	kind := state.KindGatewayFailure
	switch {
	case errors.Is(err, branch.ErrAlreadyCheckedOut):
		kind = state.KindAlreadyCheckedOut
	case errors.Is(err, branch.ErrCannotMergeSelf):
		kind = state.KindCannotMergeSelf
	case errors.Is(err, branch.ErrNoSelection):
		kind = state.KindNoSelection
	}
	return state.ErrorRecord{Kind: kind, Message: err.Error()}
}
