package screen

import (
	"context"
	"fmt"

	"github.com/atomicstack/git-branch-control/internal/branch"
	"github.com/atomicstack/git-branch-control/internal/logging/events"
	"github.com/atomicstack/git-branch-control/internal/menu"
	"github.com/atomicstack/git-branch-control/internal/ui/command"
	"github.com/atomicstack/git-branch-control/internal/ui/state"
)

func handleMain(c *Context, in Input) (Outcome, error) {
	switch {
	case in.Is('b'):
		if err := c.Registry.Refresh(c); err != nil {
			return Outcome{}, err
		}
		c.push(newFrame(ListingBranches, Pending{}, true))
	case in.Is('c'):
		c.push(newMenuFrame(ListingCommands, Pending{}, c.Menus.Items(menu.RootID), true))
	case in.Is('q'):
		c.push(newFrame(Exiting, Pending{}, false))
	}
	return Outcome{}, nil
}

func handleExiting(_ *Context, in Input) (Outcome, error) {
	switch {
	case in.Is('y'):
		return Outcome{Quit: true, Confirmed: true}, nil
	case in.Is('n'), in.Is('q'):
		return Outcome{Quit: true}, nil
	}
	return Outcome{}, nil
}

func handleErrors(c *Context, in Input) (Outcome, error) {
	if in.Key == KeyEscape || in.Is('q') {
		c.Stack.Reset()
		c.Errors.Clear()
		c.Registry.ResetIndex()
		events.Screen.Reset("errors dismissed")
	}
	return Outcome{}, nil
}

func handleListing(c *Context, in Input) (Outcome, error) {
	top := c.Stack.Top()
	nav := c.navigator(top)
	level := top.Level

	if level.Searching {
		switch {
		case in.Key == KeyEscape:
			level.StopSearch()
			nav.settle(level.Filter)
			events.Filter.Stop(level.ID, level.Filter)
		case in.Key == KeyBackspace:
			if level.DeleteFilterRuneBackward() {
				events.Filter.Backspace(level.ID, level.Filter)
			}
		case in.Key == KeyRune:
			if level.InsertFilterText(string(in.Rune)) {
				events.Filter.Append(level.ID, level.Filter)
			}
		}
		return Outcome{}, nil
	}

	switch {
	case in.Key == KeyEscape, in.Is('q'):
		c.unwind()
	case in.Key == KeyEnter:
		return Outcome{}, c.enter(top)
	case in.Key == KeyDown, in.Is('j'):
		c.move(nav, level, state.Down)
	case in.Key == KeyUp, in.Is('k'):
		c.move(nav, level, state.Up)
	case in.Is('i'), in.Is('/'):
		level.StartSearch()
		events.Filter.Start(level.ID)
	}
	return Outcome{}, nil
}

func (c *Context) move(nav navigator, level *state.Level, dir state.Direction) {
	if nav.atBoundary(level.Filter, dir) {
		level.StartSearch()
		events.Filter.Start(level.ID)
		return
	}
	nav.step(level.Filter, dir)
}

func (c *Context) enter(top *Frame) error {
	if top.Screen == ListingBranches {
		return c.runBranchCommand(top)
	}
	entry, ok := state.Project(top.Menu, top.Query()).Current()
	if !ok {
		return nil
	}
	node, ok := c.Menus.Find(entry.Tag)
	if !ok {
		return fmt.Errorf("unknown menu item %q", entry.Tag)
	}
	events.UI.MenuEnter(top.Level.ID, node.ID, node.Label, top.Query())

	pending := top.Pending
	switch {
	case !node.Leaf():
		c.push(newMenuFrame(ListingBranchCommands, pending, c.Menus.Items(node.ID), false))
	case node.BranchCommand != branch.CommandNone:
		if err := c.Registry.Refresh(c); err != nil {
			return err
		}
		pending.BranchCommand = node.BranchCommand
		c.push(newFrame(ListingBranches, pending, false))
	case node.Command == menu.CommandFetchAll:
		err := c.Bus.Execute(c, command.Request{
			ID:    node.ID,
			Label: node.Label,
			Run: func(ctx context.Context) error {
				res, err := c.Gateway.FetchAll(ctx)
				return branch.Classify("fetch --all", "", res, err)
			},
		})
		if err != nil {
			return err
		}
		c.SetInfo("fetched all remotes")
	}
	return nil
}

func (c *Context) runBranchCommand(top *Frame) error {
	if c.Registry.Len() > 0 {
		if _, ok := state.Project(c.Registry.View(), top.Query()).Current(); !ok {
			return nil
		}
	}
	cmd := top.Pending.BranchCommand
	if cmd == branch.CommandNone {
		cmd = branch.CommandSwitch
	}
	target, _ := c.Registry.Current()
	err := c.Bus.Execute(c, command.Request{
		ID:    "branch:" + cmd.String(),
		Label: target.Name,
		Run: func(ctx context.Context) error {
			return c.Registry.Run(ctx, cmd)
		},
	})
	if err != nil {
		return err
	}
	c.SetInfo("%s: %s", cmd, target.Name)
	return nil
}

func (c *Context) push(f *Frame) {
	c.Stack.Push(f)
	events.Screen.Push(f.Screen.String(), c.Stack.Depth())
}

// unwind pops every frame above Main.
func (c *Context) unwind() {
	for c.Stack.Depth() > 1 {
		c.pop()
	}
}

func (c *Context) pop() {
	f, ok := c.Stack.Pop()
	if !ok {
		return
	}
	if f.Screen == ListingBranches {
		c.Registry.ResetIndex()
	}
	if f.Menu != nil {
		f.Menu.Reset()
	}
	if f.Level != nil {
		f.Level.Clear()
	}
	events.Screen.Pop(f.Screen.String(), c.Stack.Depth())
}

// navigator moves the selection of one listing through its filtered view and
// commits the result back to the list that owns it.
type navigator interface {
	step(query string, dir state.Direction)
	atBoundary(query string, dir state.Direction) bool
	settle(query string)
}

type listNavigator[T comparable] struct {
	source func() *state.List[T]
	commit func(T)
	reset  func()
}

func (n listNavigator[T]) step(query string, dir state.Direction) {
	if tag, ok := state.Step(n.source(), query, dir); ok {
		n.commit(tag)
	}
}

func (n listNavigator[T]) atBoundary(query string, dir state.Direction) bool {
	return state.AtBoundary(n.source(), query, dir)
}

func (n listNavigator[T]) settle(query string) {
	n.reset()
	if tag, ok := state.Settle(n.source(), query); ok {
		n.commit(tag)
	}
}

func (c *Context) navigator(f *Frame) navigator {
	if f.Screen == ListingBranches {
		return listNavigator[int]{
			source: c.Registry.View,
			commit: c.Registry.Select,
			reset:  c.Registry.ResetIndex,
		}
	}
	list := f.Menu
	return listNavigator[string]{
		source: func() *state.List[string] { return list },
		commit: func(id string) {
			list.SelectAt(state.Rebase(list, id))
			events.UI.MenuCursor(f.Level.ID, list.Selection())
		},
		reset: list.Reset,
	}
}
