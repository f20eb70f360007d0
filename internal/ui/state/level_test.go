package state

import "testing"

func TestLevelFilterEditing(t *testing.T) {
	level := NewLevel("branches", "branches", true)
	if !level.InsertFilterText("fe") {
		t.Fatal("expected insert to succeed")
	}
	if level.InsertFilterText("") {
		t.Fatal("expected empty insert to be ignored")
	}
	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete to succeed")
	}
	if level.Filter != "f" {
		t.Fatalf("expected filter f, got %q", level.Filter)
	}
	level.DeleteFilterRuneBackward()
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete on empty filter to be a no-op")
	}
}

func TestLevelClearResetsState(t *testing.T) {
	level := NewLevel("commands", "commands", true)
	level.InsertFilterText("fetch")
	level.Viewport.Offset = 3
	level.Clear()
	if level.Filter != "" || level.Searching || level.Viewport.Offset != 0 {
		t.Fatalf("expected cleared level, got %#v", level)
	}
}

func TestErrorSinkAccumulatesUntilCleared(t *testing.T) {
	var sink ErrorSink
	sink.Push(ErrorRecord{Kind: KindGatewayFailure, Message: "one"})
	sink.Push(ErrorRecord{Kind: KindCannotMergeSelf, Message: "two"})
	records := sink.Records()
	if len(records) != 2 || records[0].Message != "one" || records[1].Kind != KindCannotMergeSelf {
		t.Fatalf("unexpected records %#v", records)
	}
	records[0].Message = "changed"
	if sink.Records()[0].Message != "one" {
		t.Fatal("expected records to be returned as a copy")
	}
	sink.Clear()
	if sink.Len() != 0 {
		t.Fatalf("expected empty sink after clear, got %d", sink.Len())
	}
}
