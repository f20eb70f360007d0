package branch

import (
	"context"
	"strings"

	"github.com/atomicstack/git-branch-control/internal/git"
	"github.com/atomicstack/git-branch-control/internal/logging/events"
	"github.com/atomicstack/git-branch-control/internal/ui/state"
)

// Registry is the authoritative list of local branches. At most one branch is
// checked out at any time.
type Registry struct {
	gateway  git.Gateway
	branches []IndexedBranch
	current  int
}

// NewRegistry creates an empty registry backed by gateway.
func NewRegistry(gateway git.Gateway) *Registry {
	return &Registry{gateway: gateway}
}

// Refresh reloads the branch list from git.
func (r *Registry) Refresh(ctx context.Context) error {
	lines, err := r.gateway.ListBranches(ctx)
	if err != nil {
		return &GatewayError{Op: "list branches", ExitCode: -1, Err: err}
	}
	r.Load(lines)
	return nil
}

// Load replaces the registry contents with the parsed output of git branch.
func (r *Registry) Load(lines []string) {
	branches := make([]IndexedBranch, 0, len(lines))
	for _, line := range lines {
		b, ok := parseBranchLine(line)
		if !ok {
			continue
		}
		branches = append(branches, IndexedBranch{Branch: b, Index: len(branches)})
	}
	r.branches = branches
	r.current = 0
	name, _ := r.CheckedOutName()
	events.Branch.Loaded(len(branches), name)
}

func parseBranchLine(line string) (Branch, bool) {
	trimmed := strings.TrimRight(strings.TrimLeft(line, " \t"), " \t\r")
	if trimmed == "" {
		return Branch{}, false
	}
	var b Branch
	switch {
	case strings.HasPrefix(trimmed, CheckedOutMarker):
		b.CheckedOut = true
		trimmed = strings.TrimPrefix(trimmed, CheckedOutMarker)
	case strings.HasPrefix(trimmed, "+ "):
		// checked out in a linked worktree
		trimmed = strings.TrimPrefix(trimmed, "+ ")
	}
	if strings.TrimSpace(trimmed) == "" {
		return Branch{}, false
	}
	b.Name = trimmed
	return b, true
}

// Branches returns a copy of the branches in order.
func (r *Registry) Branches() []IndexedBranch {
	dup := make([]IndexedBranch, len(r.branches))
	copy(dup, r.branches)
	return dup
}

// Len reports how many branches are loaded.
func (r *Registry) Len() int {
	return len(r.branches)
}

// Current returns the selected branch.
func (r *Registry) Current() (IndexedBranch, bool) {
	if r.current < 0 || r.current >= len(r.branches) {
		return IndexedBranch{}, false
	}
	return r.branches[r.current], true
}

// CurrentIndex returns the raw selected index.
func (r *Registry) CurrentIndex() int {
	return r.current
}

// Select makes the branch at index the selection.
func (r *Registry) Select(index int) {
	r.current = index
	if b, ok := r.Current(); ok {
		events.Branch.Select(index, b.Name)
	}
}

// ResetIndex moves the selection back to the first branch.
func (r *Registry) ResetIndex() {
	r.current = 0
}

// CheckedOutName returns the name of the checked out branch, if any.
func (r *Registry) CheckedOutName() (string, bool) {
	for _, b := range r.branches {
		if b.CheckedOut {
			return b.Name, true
		}
	}
	return "", false
}

// FilteredView returns (display name, index) pairs for branches whose display
// or plain name contains query.
func (r *Registry) FilteredView(query string) []state.Entry[int] {
	entries := make([]state.Entry[int], 0, len(r.branches))
	for _, b := range r.branches {
		display := b.DisplayName()
		if query != "" && !strings.Contains(display, query) && !strings.Contains(b.Name, query) {
			continue
		}
		entries = append(entries, state.Entry[int]{Label: display, Tag: b.Index})
	}
	return entries
}

// View returns every branch as a navigable list selected at the current index.
func (r *Registry) View() *state.List[int] {
	return state.NewList(r.FilteredView(""), r.current)
}

// Run applies cmd to the selected branch. CommandNone behaves as a switch.
func (r *Registry) Run(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandCheckout:
		return r.CheckoutCurrent(ctx)
	case CommandMerge:
		return r.MergeCurrent(ctx)
	case CommandFastForward:
		return r.FastForwardCurrent(ctx)
	default:
		return r.SwitchCurrent(ctx)
	}
}

// SwitchCurrent switches to the selected branch.
func (r *Registry) SwitchCurrent(ctx context.Context) error {
	return r.apply(ctx, CommandSwitch, r.gateway.Switch)
}

// CheckoutCurrent checks out the selected branch.
func (r *Registry) CheckoutCurrent(ctx context.Context) error {
	return r.apply(ctx, CommandCheckout, r.gateway.Checkout)
}

// MergeCurrent merges the selected branch into the checked out branch.
func (r *Registry) MergeCurrent(ctx context.Context) error {
	return r.apply(ctx, CommandMerge, r.gateway.Merge)
}

// FastForwardCurrent fast-forwards the checked out branch to the selected one.
func (r *Registry) FastForwardCurrent(ctx context.Context) error {
	return r.apply(ctx, CommandFastForward, r.gateway.FastForward)
}

type invocation func(context.Context, string) (git.Result, error)

func (r *Registry) apply(ctx context.Context, cmd Command, invoke invocation) error {
	target, ok := r.Current()
	if !ok {
		return &PreconditionError{Op: cmd.String(), Reason: ErrNoSelection}
	}
	if target.CheckedOut {
		reason := ErrCannotMergeSelf
		if cmd.Changes() {
			reason = ErrAlreadyCheckedOut
		}
		err := &PreconditionError{Op: cmd.String(), Branch: target.Name, Reason: reason}
		events.Branch.Rejected(cmd.String(), target.Name, err)
		return err
	}

	name := strings.TrimSpace(target.Name)
	res, runErr := invoke(ctx, name)
	if err := Classify(cmd.String(), name, res, runErr); err != nil {
		return err
	}

	if cmd.Changes() {
		r.markCheckedOut(target.Index)
	}
	events.Branch.Applied(cmd.String(), name)
	return nil
}

// ErrorMarker in git output marks a failed invocation even when git exits 0.
const ErrorMarker = "error:"

// Classify turns the outcome of a git invocation into an error. A non-zero
// exit status fails first; otherwise output carrying ErrorMarker fails too.
func Classify(op, name string, res git.Result, err error) error {
	if err != nil {
		return &GatewayError{Op: op, Branch: name, Output: res.Output, ExitCode: -1, Err: err}
	}
	if res.Failed() || strings.Contains(res.Output, ErrorMarker) {
		return &GatewayError{Op: op, Branch: name, Output: res.Output, ExitCode: res.ExitCode}
	}
	return nil
}

func (r *Registry) markCheckedOut(index int) {
	for i := range r.branches {
		r.branches[i].CheckedOut = r.branches[i].Index == index
	}
}
