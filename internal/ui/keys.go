package ui

import (
	"unicode"

	"github.com/atomicstack/git-branch-control/internal/ui/screen"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Backspace key.Binding
	Up        key.Binding
	Down      key.Binding

	// help-only bindings; the controller interprets these runes itself
	Branches key.Binding
	Commands key.Binding
	Exit     key.Binding
	Search   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Dismiss  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc/q", "back")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓/j", "down")),
		Branches:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "branches")),
		Commands:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "commands")),
		Exit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Search:    key.NewBinding(key.WithKeys("i", "/"), key.WithHelp("i or /", "search")),
		Confirm:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		Cancel:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc/q", "dismiss")),
	}
}

// helpFor returns the bindings worth advertising for the active frame.
func (k keyMap) helpFor(f *screen.Frame) []key.Binding {
	switch {
	case f.Screen == screen.Main:
		return []key.Binding{k.Branches, k.Commands, k.Exit, k.Quit}
	case f.Screen == screen.Exiting:
		return []key.Binding{k.Confirm, k.Cancel}
	case f.Screen == screen.Errors:
		return []key.Binding{k.Dismiss, k.Quit}
	case f.Searching():
		searchBack := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done"))
		return []key.Binding{k.Backspace, searchBack, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Search, k.Back, k.Quit}
	}
}

// translateKey converts a key press into controller inputs. Pasted text may
// yield several runes.
func (k keyMap) translateKey(msg tea.KeyMsg) []screen.Input {
	switch {
	case key.Matches(msg, k.Enter):
		return []screen.Input{screen.Enter}
	case key.Matches(msg, k.Back):
		return []screen.Input{screen.Escape}
	case key.Matches(msg, k.Backspace):
		return []screen.Input{screen.Backspace}
	case key.Matches(msg, k.Up):
		return []screen.Input{screen.Up}
	case key.Matches(msg, k.Down):
		return []screen.Input{screen.Down}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []screen.Input{screen.Rune(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		inputs := make([]screen.Input, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
			inputs = append(inputs, screen.Rune(r))
		}
		return inputs
	}
	return nil
}
