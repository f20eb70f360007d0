package state

// Entry pairs a display label with the tag it resolves to in its source
// collection.
type Entry[T any] struct {
	Label string
	Tag   T
}

// List is an ordered set of entries with a single selection. The selection
// may be out of bounds after filtering; Next and Prev resolve it lazily.
type List[T any] struct {
	entries   []Entry[T]
	selection int
}

// NewList builds a list over the provided entries. The selection defaults to
// the first entry when not supplied.
func NewList[T any](entries []Entry[T], selection ...int) *List[T] {
	l := &List[T]{entries: CloneEntries(entries)}
	if len(selection) > 0 {
		l.selection = selection[0]
	}
	return l
}

// Entries returns a copy of the list contents in display order.
func (l *List[T]) Entries() []Entry[T] {
	return CloneEntries(l.entries)
}

// Len reports the number of entries.
func (l *List[T]) Len() int {
	return len(l.entries)
}

// Selection returns the raw selection value, which may be invalid.
func (l *List[T]) Selection() int {
	return l.selection
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries[T any](entries []Entry[T]) []Entry[T] {
	dup := make([]Entry[T], len(entries))
	copy(dup, entries)
	return dup
}
