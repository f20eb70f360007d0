package ui

import (
	"testing"

	"github.com/atomicstack/git-branch-control/internal/testutil"
	"github.com/atomicstack/git-branch-control/internal/ui/screen"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(start string, lines ...string) (*Model, *testutil.FakeGateway) {
	gw := testutil.NewFakeGateway(lines...)
	return NewModel(gw, 0, 0, false, false, start), gw
}

func TestMenuHeaderRootLevel(t *testing.T) {
	m, _ := newTestModel("")
	if got := m.menuHeader(); got != defaultRootTitle {
		t.Fatalf("expected %q, got %q", defaultRootTitle, got)
	}
}

func TestMenuHeaderNestedLevels(t *testing.T) {
	m, _ := newTestModel("")
	h := NewHarness(m)
	h.Keys("c", "esc", "enter", "down", "down", "down", "enter")
	got := m.menuHeader()
	want := "commands→branch→fast forward"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStartScreenOverride(t *testing.T) {
	m, gw := newTestModel("branches", "* main", "  feature")
	if got := m.Controller().Top().Screen; got != screen.ListingBranches {
		t.Fatalf("expected branches screen, got %s", got)
	}
	if gw.Count("list") != 1 {
		t.Fatalf("expected branches to be listed once, got %d", gw.Count("list"))
	}
	if header := m.menuHeader(); header != "branches" {
		t.Fatalf("expected header branches, got %s", header)
	}
}

func TestInvalidStartScreenFallsBackToMain(t *testing.T) {
	m, _ := newTestModel("tags")
	if got := m.Controller().Top().Screen; got != screen.Main {
		t.Fatalf("expected main screen, got %s", got)
	}
	if m.errMsg == "" {
		t.Fatalf("expected an error message for an unknown start screen")
	}
	NewHarness(m).Keys("x")
	if m.errMsg != "" {
		t.Fatalf("expected error message to clear on the next key, got %q", m.errMsg)
	}
}

func TestCtrlCQuitsFromAnyScreen(t *testing.T) {
	m, _ := newTestModel("", "* main")
	h := NewHarness(m)
	h.Keys("b", "f", "ctrl+c")
	if !h.Quit() || !m.Quitting() {
		t.Fatalf("expected ctrl+c to quit")
	}
	if m.Confirmed() {
		t.Fatalf("ctrl+c must not count as a confirmed quit")
	}
}

func TestQuitConfirmationEndsProgram(t *testing.T) {
	m, _ := newTestModel("")
	h := NewHarness(m)
	h.Keys("q")
	if h.Quit() {
		t.Fatalf("q on the main screen should ask for confirmation first")
	}
	h.Keys("y")
	if !h.Quit() || !m.Confirmed() {
		t.Fatalf("expected confirmed quit")
	}
	if view := h.View(); view != "" {
		t.Fatalf("expected empty view after quitting, got %q", view)
	}
}

func TestPastedRunesAreFilteredTogether(t *testing.T) {
	m, _ := newTestModel("", "* main", "  feature")
	h := NewHarness(m)
	h.Keys("b")
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("feat")})
	if got := m.Controller().Top().Query(); got != "feat" {
		t.Fatalf("expected query feat, got %q", got)
	}
	h.Keys(" ")
	if got := m.Controller().Top().Query(); got != "feat " {
		t.Fatalf("expected space to be appended, got %q", got)
	}
}

func TestAltRunesAreIgnored(t *testing.T) {
	m, _ := newTestModel("", "* main")
	h := NewHarness(m)
	h.Keys("b")
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	if got := m.Controller().Top().Query(); got != "" {
		t.Fatalf("expected alt chord to be ignored, got %q", got)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	gw := testutil.NewFakeGateway()
	m := NewModel(gw, 30, 0, false, false, "")
	NewHarness(m).Send(tea.WindowSizeMsg{Width: 120, Height: 10})
	if m.width != 30 {
		t.Fatalf("expected fixed width 30, got %d", m.width)
	}
	if m.height != 10 {
		t.Fatalf("expected height 10 from resize, got %d", m.height)
	}
}

func TestVerboseShowsInfo(t *testing.T) {
	gw := testutil.NewFakeGateway("* main", "  feature")
	m := NewModel(gw, 0, 0, false, true, "")
	h := NewHarness(m)
	h.Keys("b", "esc", "down", "enter")
	if got := m.currentInfo(); got != "switch: feature" {
		t.Fatalf("expected switch info, got %q", got)
	}

	quiet, _ := newTestModel("", "* main", "  feature")
	NewHarness(quiet).Keys("b", "esc", "down", "enter")
	if got := quiet.currentInfo(); got != "" {
		t.Fatalf("expected info to be hidden without verbose, got %q", got)
	}
}
