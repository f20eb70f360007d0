package screen

import (
	"github.com/atomicstack/git-branch-control/internal/branch"
	"github.com/atomicstack/git-branch-control/internal/menu"
	"github.com/atomicstack/git-branch-control/internal/ui/state"
)

// Screen identifies what the user is looking at.
type Screen int

const (
	Main Screen = iota
	ListingBranches
	ListingCommands
	ListingBranchCommands
	Errors
	Exiting
)

func (s Screen) String() string {
	switch s {
	case ListingBranches:
		return "branches"
	case ListingCommands:
		return "commands"
	case ListingBranchCommands:
		return "branch"
	case Errors:
		return "errors"
	case Exiting:
		return "quit"
	default:
		return "main"
	}
}

// Listing reports whether the screen shows a filterable list.
func (s Screen) Listing() bool {
	return s == ListingBranches || s == ListingCommands || s == ListingBranchCommands
}

// Pending carries the branch command chosen in the command menu down to the
// branch listing that runs it.
type Pending struct {
	BranchCommand branch.Command
}

// Frame is one level of the navigation stack.
type Frame struct {
	Screen  Screen
	Pending Pending
	Level   *state.Level
	Menu    *state.List[string]
}

// Searching reports whether keystrokes are captured into the frame filter.
func (f *Frame) Searching() bool {
	return f.Level != nil && f.Level.Searching
}

// Query returns the frame filter.
func (f *Frame) Query() string {
	if f.Level == nil {
		return ""
	}
	return f.Level.Filter
}

func newFrame(s Screen, pending Pending, searching bool) *Frame {
	f := &Frame{Screen: s, Pending: pending}
	if s.Listing() {
		f.Level = state.NewLevel(s.String(), s.String(), searching)
	}
	return f
}

func newMenuFrame(s Screen, pending Pending, items []menu.Item, searching bool) *Frame {
	f := newFrame(s, pending, searching)
	entries := make([]state.Entry[string], len(items))
	for i, item := range items {
		entries[i] = state.Entry[string]{Label: item.Label, Tag: item.ID}
	}
	f.Menu = state.NewList(entries)
	return f
}

// Stack is the navigation stack. The bottom frame is always Main.
type Stack struct {
	frames []*Frame
}

// NewStack returns a stack holding only the Main frame.
func NewStack() *Stack {
	return &Stack{frames: []*Frame{newFrame(Main, Pending{}, false)}}
}

// Top returns the active frame.
func (s *Stack) Top() *Frame {
	return s.frames[len(s.frames)-1]
}

// Depth reports how many frames are on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Frames returns the frames from bottom to top.
func (s *Stack) Frames() []*Frame {
	dup := make([]*Frame, len(s.frames))
	copy(dup, s.frames)
	return dup
}

// Push adds a frame on top.
func (s *Stack) Push(f *Frame) {
	s.frames = append(s.frames, f)
}

// Pop removes the active frame. The Main frame is never removed.
func (s *Stack) Pop() (*Frame, bool) {
	if len(s.frames) <= 1 {
		return nil, false
	}
	top := s.Top()
	s.frames = s.frames[:len(s.frames)-1]
	return top, true
}

// Reset unwinds to the Main frame.
func (s *Stack) Reset() {
	s.frames = s.frames[:1]
}
