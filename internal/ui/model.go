package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/git-branch-control/internal/git"
	"github.com/atomicstack/git-branch-control/internal/logging"
	"github.com/atomicstack/git-branch-control/internal/theme"
	"github.com/atomicstack/git-branch-control/internal/ui/screen"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "main menu"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the branch browser.
type Model struct {
	controller        *screen.Controller
	ctx               context.Context
	errMsg            string
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool
	quitting          bool
	confirmed         bool
	filterCursor      cursor.Model
	filterCursorDirty bool
	filterFocused     bool
	help              help.Model
	keys              keyMap

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI on top of gateway. A non-empty start opens the
// named listing screen immediately.
func NewModel(gateway git.Gateway, width, height int, showFooter bool, verbose bool, start string) *Model {
	m := &Model{
		controller: screen.New(gateway),
		ctx:        context.Background(),
		showFooter: showFooter,
		verbose:    verbose,
		help:       help.New(),
		keys:       newKeyMap(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		m.help.Width = width
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if styles.Footer != nil && styles.FooterKey != nil {
		m.help.Styles.ShortKey = styles.FooterKey.Copy()
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.ShortSeparator = styles.Footer.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.applyStartScreen(start)
	m.registerHandlers()
	return m
}

func (m *Model) applyStartScreen(start string) {
	if err := m.controller.Start(m.ctx, start); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.filterFocused = true
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		m.quitting = true
		return tea.Quit
	}
	inputs := m.keys.translateKey(keyMsg)
	if len(inputs) == 0 {
		return nil
	}
	m.errMsg = ""
	before := m.controller.Top().Query()
	for _, in := range inputs {
		out := m.controller.Handle(m.ctx, in)
		if out.Quit {
			m.quitting = true
			m.confirmed = out.Confirmed
			return tea.Quit
		}
	}
	if m.controller.Top().Query() != before {
		m.filterCursorDirty = true
	}
	m.syncViewport()
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty && m.filterFocused {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Quitting reports whether the program has been asked to stop.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Confirmed reports whether the user left through the confirmed quit path.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Controller exposes the screen state machine.
func (m *Model) Controller() *screen.Controller {
	return m.controller
}
