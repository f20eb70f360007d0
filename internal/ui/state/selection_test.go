package state

import "testing"

func newTestList(labels ...string) *List[int] {
	entries := make([]Entry[int], len(labels))
	for i, label := range labels {
		entries[i] = Entry[int]{Label: label, Tag: i}
	}
	return NewList(entries)
}

func TestNextWrapsFromLastToFirst(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.SelectAt(2)
	entry, ok := l.Next()
	if !ok {
		t.Fatalf("expected entry from non-empty list")
	}
	if entry.Label != "a" || l.Selection() != 0 {
		t.Fatalf("expected wrap to first entry, got %q at %d", entry.Label, l.Selection())
	}
}

func TestPrevWrapsFromFirstToLast(t *testing.T) {
	l := newTestList("a", "b", "c")
	entry, ok := l.Prev()
	if !ok {
		t.Fatalf("expected entry from non-empty list")
	}
	if entry.Label != "c" || l.Selection() != 2 {
		t.Fatalf("expected wrap to last entry, got %q at %d", entry.Label, l.Selection())
	}
}

func TestNextPrevResolveInvalidSelection(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.SelectAt(7)
	if entry, _ := l.Next(); entry.Label != "a" {
		t.Fatalf("expected out of bounds selection to resolve to first, got %q", entry.Label)
	}
	l.SelectAt(-1)
	if entry, _ := l.Prev(); entry.Label != "c" {
		t.Fatalf("expected invalid selection to resolve to last, got %q", entry.Label)
	}
}

func TestNextPrevStepWithinBounds(t *testing.T) {
	l := newTestList("a", "b", "c")
	if entry, _ := l.Next(); entry.Label != "b" {
		t.Fatalf("expected b, got %q", entry.Label)
	}
	if entry, _ := l.Next(); entry.Label != "c" {
		t.Fatalf("expected c, got %q", entry.Label)
	}
	if entry, _ := l.Prev(); entry.Label != "b" {
		t.Fatalf("expected b, got %q", entry.Label)
	}
}

func TestNextReturnsToStartAfterLenSteps(t *testing.T) {
	l := newTestList("a", "b", "c", "d")
	l.SelectAt(1)
	for i := 0; i < l.Len(); i++ {
		l.Next()
	}
	if l.Selection() != 1 {
		t.Fatalf("expected selection back at 1, got %d", l.Selection())
	}
	for i := 0; i < l.Len(); i++ {
		l.Prev()
	}
	if l.Selection() != 1 {
		t.Fatalf("expected selection back at 1 after prev cycle, got %d", l.Selection())
	}
}

func TestEmptyListReportsNothing(t *testing.T) {
	l := newTestList()
	if _, ok := l.Next(); ok {
		t.Fatalf("expected no entry from Next on empty list")
	}
	if _, ok := l.Prev(); ok {
		t.Fatalf("expected no entry from Prev on empty list")
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current entry on empty list")
	}
	if !l.IsFirst() || !l.IsLast() {
		t.Fatalf("expected empty list to be at both boundaries")
	}
}

func TestCurrentRejectsInvalidSelection(t *testing.T) {
	l := newTestList("a")
	l.SelectAt(3)
	if _, ok := l.Current(); ok {
		t.Fatalf("expected invalid selection to have no current entry")
	}
	if l.IsFirst() || l.IsLast() {
		t.Fatalf("expected invalid selection to be at neither boundary")
	}
	l.Reset()
	if entry, ok := l.Current(); !ok || entry.Label != "a" {
		t.Fatalf("expected reset selection to resolve to a, got %#v", entry)
	}
	if !l.IsFirst() || !l.IsLast() {
		t.Fatalf("expected single entry list to be at both boundaries")
	}
}

func TestNewListAcceptsSelection(t *testing.T) {
	l := NewList([]Entry[int]{{Label: "a", Tag: 0}, {Label: "b", Tag: 1}}, 1)
	if entry, _ := l.Current(); entry.Label != "b" {
		t.Fatalf("expected initial selection on b, got %q", entry.Label)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := newTestList("a", "b")
	entries := l.Entries()
	entries[0].Label = "changed"
	if got, _ := l.Current(); got.Label != "a" {
		t.Fatalf("expected list contents to be isolated from callers, got %q", got.Label)
	}
}
