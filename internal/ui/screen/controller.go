package screen

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomicstack/git-branch-control/internal/branch"
	"github.com/atomicstack/git-branch-control/internal/git"
	"github.com/atomicstack/git-branch-control/internal/logging"
	"github.com/atomicstack/git-branch-control/internal/logging/events"
	"github.com/atomicstack/git-branch-control/internal/menu"
	"github.com/atomicstack/git-branch-control/internal/ui/command"
	"github.com/atomicstack/git-branch-control/internal/ui/state"
)

// Outcome tells the caller whether the program should end.
type Outcome struct {
	Quit      bool
	Confirmed bool
}

// Context is handed to every transition handler. It exposes the state a
// handler may change for the duration of one input.
type Context struct {
	context.Context
	Stack    *Stack
	Registry *branch.Registry
	Menus    *menu.Registry
	Errors   *state.ErrorSink
	Gateway  git.Gateway
	Bus      *command.Bus

	info string
}

// SetInfo records a status message for the current input.
func (c *Context) SetInfo(format string, args ...interface{}) {
	c.info = fmt.Sprintf(format, args...)
}

type handler func(c *Context, in Input) (Outcome, error)

// Controller is the screen state machine. It owns the navigation stack, the
// branch registry and the error sink.
type Controller struct {
	stack    *Stack
	registry *branch.Registry
	menus    *menu.Registry
	errors   *state.ErrorSink
	gateway  git.Gateway
	bus      *command.Bus
	info     string
	handlers map[Screen]handler
}

// New builds a controller on top of gateway, starting on the Main screen.
func New(gateway git.Gateway) *Controller {
	c := &Controller{
		stack:    NewStack(),
		registry: branch.NewRegistry(gateway),
		menus:    menu.BuildRegistry(),
		errors:   &state.ErrorSink{},
		gateway:  gateway,
		bus:      command.New(),
	}
	c.handlers = map[Screen]handler{
		Main:                  handleMain,
		Exiting:               handleExiting,
		Errors:                handleErrors,
		ListingBranches:       handleListing,
		ListingCommands:       handleListing,
		ListingBranchCommands: handleListing,
	}
	return c
}

// Start optionally opens a listing screen on top of Main.
func (c *Controller) Start(ctx context.Context, screen string) error {
	switch strings.ToLower(strings.TrimSpace(screen)) {
	case "", "main":
		return nil
	case "branches":
		c.Handle(ctx, Rune('b'))
	case "commands":
		c.Handle(ctx, Rune('c'))
	default:
		return fmt.Errorf("unknown start screen %q", screen)
	}
	return nil
}

// Handle applies a single input. At most one transition happens per call.
func (c *Controller) Handle(ctx context.Context, in Input) Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	top := c.stack.Top()
	events.UI.Key(top.Screen.String(), in.String(), top.Searching())
	c.info = ""
	hctx := &Context{
		Context:  ctx,
		Stack:    c.stack,
		Registry: c.registry,
		Menus:    c.menus,
		Errors:   c.errors,
		Gateway:  c.gateway,
		Bus:      c.bus,
	}
	h, ok := c.handlers[top.Screen]
	if !ok {
		return Outcome{}
	}
	out, err := h(hctx, in)
	if err != nil {
		c.fail(err)
		return out
	}
	c.info = hctx.info
	if c.info != "" {
		events.Action.Success(c.info)
	}
	return out
}

func (c *Controller) fail(err error) {
	logging.Error(err)
	c.errors.Push(RecordFromError(err))
	if c.stack.Top().Screen != Errors {
		c.stack.Push(newFrame(Errors, c.stack.Top().Pending, false))
		events.Screen.Push(Errors.String(), c.stack.Depth())
	}
}

// Top returns the active frame.
func (c *Controller) Top() *Frame {
	return c.stack.Top()
}

// Frames returns the navigation stack from bottom to top.
func (c *Controller) Frames() []*Frame {
	return c.stack.Frames()
}

// Registry exposes the branch registry.
func (c *Controller) Registry() *branch.Registry {
	return c.registry
}

// Errors returns the pending error records.
func (c *Controller) Errors() []state.ErrorRecord {
	return c.errors.Records()
}

// Info returns the status message produced by the last input.
func (c *Controller) Info() string {
	return c.info
}

// Visible returns the labels shown by the active listing and the position of
// the selection among them, or -1 when the selection is filtered out.
func (c *Controller) Visible() ([]string, int) {
	top := c.stack.Top()
	switch {
	case top.Screen == ListingBranches:
		return labels(state.Project(c.registry.View(), top.Query()))
	case top.Menu != nil:
		return labels(state.Project(top.Menu, top.Query()))
	default:
		return nil, -1
	}
}

// Suggestion offers the closest label when the active filter matches nothing.
func (c *Controller) Suggestion() string {
	top := c.stack.Top()
	query := top.Query()
	if query == "" {
		return ""
	}
	switch {
	case top.Screen == ListingBranches:
		view := c.registry.View()
		if view.Filtered(query).Len() > 0 {
			return ""
		}
		return state.ClosestMatch(view.Entries(), query)
	case top.Menu != nil:
		if top.Menu.Filtered(query).Len() > 0 {
			return ""
		}
		return state.ClosestMatch(top.Menu.Entries(), query)
	}
	return ""
}

func labels[T comparable](view *state.List[T]) ([]string, int) {
	entries := view.Entries()
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Label
	}
	if _, ok := view.Current(); !ok {
		return out, -1
	}
	return out, view.Selection()
}
