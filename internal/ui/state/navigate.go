package state

// Direction selects which way a list steps.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Rebase returns the position of the entry carrying tag in view, or -1 when
// that entry is filtered out.
func Rebase[T comparable](view *List[T], tag T) int {
	for i, entry := range view.entries {
		if entry.Tag == tag {
			return i
		}
	}
	return -1
}

// Project filters source by query and translates the source selection into a
// position within the filtered result. The returned selection is -1 when the
// selected entry is hidden by the filter.
func Project[T comparable](source *List[T], query string) *List[T] {
	view := source.Filtered(query)
	current, ok := source.Current()
	if !ok {
		view.SelectAt(-1)
		return view
	}
	view.SelectAt(Rebase(view, current.Tag))
	return view
}

// Step moves one entry through the visible subset of source and returns the
// tag that should become the new source selection.
func Step[T comparable](source *List[T], query string, dir Direction) (T, bool) {
	view := Project(source, query)
	var (
		entry Entry[T]
		ok    bool
	)
	if dir == Up {
		entry, ok = view.Prev()
	} else {
		entry, ok = view.Next()
	}
	if !ok {
		var zero T
		return zero, false
	}
	return entry.Tag, true
}

// AtBoundary reports whether the visible subset of source is empty or already
// selected on its last (Down) or first (Up) entry.
func AtBoundary[T comparable](source *List[T], query string, dir Direction) bool {
	view := Project(source, query)
	if dir == Up {
		return view.IsFirst()
	}
	return view.IsLast()
}

// Settle applies the search exit rule: the selection is reset, projected onto
// the filtered subset and, unless that lands on the first visible entry,
// advanced once. It returns the tag to commit when one applies.
func Settle[T comparable](source *List[T], query string) (T, bool) {
	source.Reset()
	view := Project(source, query)
	if view.IsFirst() {
		var zero T
		return zero, false
	}
	entry, ok := view.Next()
	if !ok {
		var zero T
		return zero, false
	}
	return entry.Tag, true
}
