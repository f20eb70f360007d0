package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"gateway failure", "switch feature: exit status 1"},
		{"no selection", "switch: no branch selected"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"gateway failure  switch feature: exit status 1",
		"no selection     switch: no branch selected",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"1", "a"}, {"100", "b"}}, []Alignment{AlignRight, AlignLeft})
	if got[0] != "  1  a" || got[1] != "100  b" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatWideRunesAndShortRows(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"ab"}}, nil)
	if got[0] != "日本  x" {
		t.Fatalf("unexpected first row %q", got[0])
	}
	if got[1] != "ab    " {
		t.Fatalf("unexpected second row %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
