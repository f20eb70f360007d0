package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/atomicstack/git-branch-control/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestProgramSwitchesBranchAndQuits(t *testing.T) {
	gw := testutil.NewFakeGateway("* main", "  feature", "  bugfix")
	tm := teatest.NewTestModel(
		t,
		NewModel(gw, 0, 0, false, true, ""),
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("bugfix"))
	}, teatest.WithDuration(2*time.Second))

	tm.Type("bug")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("switch: bugfix"))
	}, teatest.WithDuration(2*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	fm, ok := tm.FinalModel(t).(*Model)
	if !ok {
		t.Fatal("final model is not *Model")
	}
	if !fm.Confirmed() {
		t.Fatalf("expected confirmed quit")
	}
	if gw.Count("switch") != 1 {
		t.Fatalf("expected one switch, got %d", gw.Count("switch"))
	}
	name, _ := fm.Controller().Registry().CheckedOutName()
	if name != "bugfix" {
		t.Fatalf("expected bugfix to be checked out, got %q", name)
	}
}
