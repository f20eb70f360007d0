package state

import "testing"

func TestRebaseLocatesTag(t *testing.T) {
	view := newTestList("main", "feature", "fix").Filtered("f")
	if pos := Rebase(view, 2); pos != 1 {
		t.Fatalf("expected tag 2 at position 1, got %d", pos)
	}
	if pos := Rebase(view, 0); pos != -1 {
		t.Fatalf("expected hidden tag to rebase to -1, got %d", pos)
	}
}

func TestProjectTranslatesSelection(t *testing.T) {
	source := newTestList("main", "feature", "fix")
	source.SelectAt(2)
	view := Project(source, "f")
	if view.Selection() != 1 {
		t.Fatalf("expected projected selection 1, got %d", view.Selection())
	}
	source.SelectAt(0)
	if view := Project(source, "f"); view.Selection() != -1 {
		t.Fatalf("expected hidden selection to project to -1, got %d", view.Selection())
	}
	source.SelectAt(9)
	if view := Project(source, ""); view.Selection() != -1 {
		t.Fatalf("expected invalid source selection to project to -1, got %d", view.Selection())
	}
}

func TestStepCases(t *testing.T) {
	cases := []struct {
		name      string
		labels    []string
		selection int
		query     string
		dir       Direction
		wantTag   int
		wantOK    bool
	}{
		{name: "empty source", labels: nil, query: "", dir: Down, wantOK: false},
		{name: "zero matches", labels: []string{"a", "b"}, query: "z", dir: Down, wantOK: false},
		{name: "single match from hidden selection down", labels: []string{"main", "feature", "fix"}, selection: 0, query: "fea", dir: Down, wantTag: 1, wantOK: true},
		{name: "single match from hidden selection up", labels: []string{"main", "feature", "fix"}, selection: 0, query: "fea", dir: Up, wantTag: 1, wantOK: true},
		{name: "single match stays put", labels: []string{"main", "feature", "fix"}, selection: 1, query: "fea", dir: Down, wantTag: 1, wantOK: true},
		{name: "unfiltered step down", labels: []string{"a", "b", "c"}, selection: 0, query: "", dir: Down, wantTag: 1, wantOK: true},
		{name: "unfiltered wrap down", labels: []string{"a", "b", "c"}, selection: 2, query: "", dir: Down, wantTag: 0, wantOK: true},
		{name: "unfiltered wrap up", labels: []string{"a", "b", "c"}, selection: 0, query: "", dir: Up, wantTag: 2, wantOK: true},
		{name: "filtered step skips hidden", labels: []string{"fa", "x", "fb", "y", "fc"}, selection: 0, query: "f", dir: Down, wantTag: 2, wantOK: true},
		{name: "filtered wrap at last visible", labels: []string{"fa", "x", "fb", "y", "fc"}, selection: 4, query: "f", dir: Down, wantTag: 0, wantOK: true},
		{name: "filtered wrap at first visible", labels: []string{"x", "fa", "fb"}, selection: 1, query: "f", dir: Up, wantTag: 2, wantOK: true},
		{name: "filter cleared mid navigation", labels: []string{"fa", "x", "fb", "y"}, selection: 2, query: "", dir: Down, wantTag: 3, wantOK: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := newTestList(tc.labels...)
			source.SelectAt(tc.selection)
			tag, ok := Step(source, tc.query, tc.dir)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if ok && tag != tc.wantTag {
				t.Fatalf("expected tag %d, got %d", tc.wantTag, tag)
			}
			if source.Selection() != tc.selection {
				t.Fatalf("expected source selection untouched, got %d", source.Selection())
			}
		})
	}
}

func TestAtBoundaryCases(t *testing.T) {
	cases := []struct {
		name      string
		labels    []string
		selection int
		query     string
		dir       Direction
		want      bool
	}{
		{name: "empty source down", labels: nil, dir: Down, want: true},
		{name: "empty source up", labels: nil, dir: Up, want: true},
		{name: "zero matches", labels: []string{"a"}, query: "z", dir: Down, want: true},
		{name: "last visible down", labels: []string{"fa", "x", "fb"}, selection: 2, query: "f", dir: Down, want: true},
		{name: "last visible up", labels: []string{"fa", "x", "fb"}, selection: 2, query: "f", dir: Up, want: false},
		{name: "first visible up", labels: []string{"x", "fa", "fb"}, selection: 1, query: "f", dir: Up, want: true},
		{name: "hidden selection", labels: []string{"x", "fa", "fb"}, selection: 0, query: "f", dir: Down, want: false},
		{name: "middle", labels: []string{"a", "b", "c"}, selection: 1, dir: Down, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := newTestList(tc.labels...)
			source.SelectAt(tc.selection)
			if got := AtBoundary(source, tc.query, tc.dir); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSettleCommitsFirstVisibleWhenFirstEntryHidden(t *testing.T) {
	source := newTestList("main", "feature", "fix")
	source.SelectAt(2)
	tag, ok := Settle(source, "f")
	if !ok || tag != 1 {
		t.Fatalf("expected tag 1 committed, got %d (ok=%v)", tag, ok)
	}
	if source.Selection() != 0 {
		t.Fatalf("expected source selection reset to 0, got %d", source.Selection())
	}
}

func TestSettleLeavesVisibleFirstEntry(t *testing.T) {
	source := newTestList("feature", "main", "fix")
	source.SelectAt(2)
	if _, ok := Settle(source, "f"); ok {
		t.Fatalf("expected no commit when the first entry is visible")
	}
	if source.Selection() != 0 {
		t.Fatalf("expected source selection reset to 0, got %d", source.Selection())
	}
}

func TestSettleWithNoMatches(t *testing.T) {
	source := newTestList("main")
	if _, ok := Settle(source, "zzz"); ok {
		t.Fatalf("expected no commit for empty view")
	}
	empty := newTestList()
	if _, ok := Settle(empty, ""); ok {
		t.Fatalf("expected no commit for empty source")
	}
}
