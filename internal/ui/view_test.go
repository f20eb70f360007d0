package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/git-branch-control/internal/testutil"
	"github.com/charmbracelet/x/ansi"
)

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestViewMainMenu(t *testing.T) {
	m, _ := newTestModel("")
	view := plainView(NewHarness(m))
	for _, want := range []string{"main menu", "b  browse local branches", "c  commands", "q  quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewListsBranchesWithCheckedOutMarker(t *testing.T) {
	m, _ := newTestModel("", "  develop", "* main")
	h := NewHarness(m)
	h.Keys("b")
	view := plainView(h)
	if !strings.Contains(view, "▌ develop") || !strings.Contains(view, "▌ * main") {
		t.Fatalf("expected branch lines in view, got:\n%s", view)
	}
	if !strings.Contains(view, "type to search") {
		t.Fatalf("expected search placeholder in view, got:\n%s", view)
	}
}

func TestViewNoMatchesSuggestsClosestBranch(t *testing.T) {
	m, _ := newTestModel("", "* main", "  feature/login")
	h := NewHarness(m)
	h.Keys("b")
	h.Type("Login")
	view := plainView(h)
	want := `No matches for "Login", did you mean "feature/login"?`
	if !strings.Contains(view, want) {
		t.Fatalf("expected %q in view, got:\n%s", want, view)
	}
}

func TestViewErrorsScreen(t *testing.T) {
	m, gw := newTestModel("", "* main", "  feature")
	gw.FailWith("switch", 1, "error: Your local changes would be overwritten\n")
	h := NewHarness(m)
	h.Keys("b", "esc", "down", "enter")
	view := plainView(h)
	for _, want := range []string{"1 error", "git failure", "local changes would be overwritten", "esc or q to dismiss"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	h.Keys("q")
	if view := plainView(h); !strings.Contains(view, "main menu") {
		t.Fatalf("expected main menu after dismissal, got:\n%s", view)
	}
}

func TestViewExitingPrompt(t *testing.T) {
	m, _ := newTestModel("")
	h := NewHarness(m)
	h.Keys("q")
	if view := plainView(h); !strings.Contains(view, "(y/n)") {
		t.Fatalf("expected quit prompt, got:\n%s", view)
	}
}

func TestViewFooterShowsContextualHelp(t *testing.T) {
	gw := testutil.NewFakeGateway("* main")
	m := NewModel(gw, 0, 0, true, false, "")
	h := NewHarness(m)
	if view := plainView(h); !strings.Contains(view, "branches") || !strings.Contains(view, "ctrl+c") {
		t.Fatalf("expected main help in footer, got:\n%s", view)
	}
	h.Keys("b", "esc")
	if view := plainView(h); !strings.Contains(view, "search") {
		t.Fatalf("expected listing help in footer, got:\n%s", view)
	}
}

func TestViewportFollowsSelection(t *testing.T) {
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = fmt.Sprintf("  branch-%02d", i+1)
	}
	gw := testutil.NewFakeGateway(lines...)
	m := NewModel(gw, 40, 8, false, false, "")
	h := NewHarness(m)
	h.Keys("b", "esc")

	view := plainView(h)
	if strings.Contains(view, "branch-07") {
		t.Fatalf("expected branch-07 to be outside initial viewport, view =\n%s", view)
	}
	for i := 0; i < 7; i++ {
		h.Keys("down")
	}
	view = plainView(h)
	if !strings.Contains(view, "branch-08") {
		t.Fatalf("expected branch-08 to be visible after scrolling, view =\n%s", view)
	}
	if strings.Contains(view, "branch-01") {
		t.Fatalf("expected branch-01 to scroll out of view, view =\n%s", view)
	}
}

func TestApplyWidthTruncates(t *testing.T) {
	lines := applyWidth([]styledLine{{text: "abcdefgh"}}, 4)
	if lines[0].text != "abc…" {
		t.Fatalf("expected truncated text, got %q", lines[0].text)
	}
}

func TestLimitHeight(t *testing.T) {
	lines := limitHeight([]styledLine{{text: "a"}, {text: "b"}, {text: "c"}}, 2, 10)
	if len(lines) != 2 || lines[1].text != "…" {
		t.Fatalf("unexpected lines %#v", lines)
	}
}

func TestViewGolden(t *testing.T) {
	cases := []struct {
		golden string
		keys   []string
	}{
		{golden: "main_menu.golden"},
		{golden: "exiting.golden", keys: []string{"q"}},
	}
	for _, tc := range cases {
		t.Run(tc.golden, func(t *testing.T) {
			m, _ := newTestModel("")
			h := NewHarness(m)
			h.Keys(tc.keys...)
			testutil.AssertGolden(t, tc.golden, plainView(h))
		})
	}
}
