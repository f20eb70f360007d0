package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/atomicstack/git-branch-control/internal/git"
)

var _ git.Gateway = (*FakeGateway)(nil)

// Call records a single gateway invocation.
type Call struct {
	Op   string
	Name string
}

// FakeGateway is an in-memory git.Gateway. Branch lines are served from
// Lines; every other operation succeeds unless a result or error is queued
// for it.
type FakeGateway struct {
	mu      sync.Mutex
	Lines   []string
	ListErr error
	results map[string]git.Result
	errs    map[string]error
	calls   []Call
}

// NewFakeGateway returns a gateway that lists the given git branch lines.
func NewFakeGateway(lines ...string) *FakeGateway {
	return &FakeGateway{
		Lines:   lines,
		results: make(map[string]git.Result),
		errs:    make(map[string]error),
	}
}

// FailWith makes op complete with the given exit code and output.
func (f *FakeGateway) FailWith(op string, exitCode int, output string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[op] = git.Result{Output: output, ExitCode: exitCode}
}

// ErrorWith makes op fail to run at all.
func (f *FakeGateway) ErrorWith(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[op] = err
}

// Calls returns the recorded invocations in order.
func (f *FakeGateway) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := make([]Call, len(f.calls))
	copy(dup, f.calls)
	return dup
}

// Count reports how many times op was invoked.
func (f *FakeGateway) Count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Total reports how many invocations were recorded.
func (f *FakeGateway) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *FakeGateway) ListBranches(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "list"})
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]string(nil), f.Lines...), nil
}

func (f *FakeGateway) Switch(_ context.Context, name string) (git.Result, error) {
	return f.record("switch", name, "switch", name)
}

func (f *FakeGateway) Checkout(_ context.Context, name string) (git.Result, error) {
	return f.record("checkout", name, "checkout", name)
}

func (f *FakeGateway) Merge(_ context.Context, name string) (git.Result, error) {
	return f.record("merge", name, "merge", "--no-edit", name)
}

func (f *FakeGateway) FastForward(_ context.Context, name string) (git.Result, error) {
	return f.record("fast-forward", name, "merge", "--ff-only", name)
}

func (f *FakeGateway) FetchAll(context.Context) (git.Result, error) {
	return f.record("fetch", "", "fetch", "--all")
}

func (f *FakeGateway) record(op, name string, args ...string) (git.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: op, Name: name})
	if err, ok := f.errs[op]; ok {
		return git.Result{Args: args, ExitCode: -1}, err
	}
	res, ok := f.results[op]
	if !ok {
		res = git.Result{Output: strings.Join(args, " ") + "\n"}
	}
	res.Args = args
	return res, nil
}
