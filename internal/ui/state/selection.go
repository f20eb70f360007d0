package state

func (l *List[T]) valid() bool {
	return l.selection >= 0 && l.selection < len(l.entries)
}

// Current returns the selected entry. It reports false when the list is empty
// or the selection is out of bounds.
func (l *List[T]) Current() (Entry[T], bool) {
	if !l.valid() {
		var zero Entry[T]
		return zero, false
	}
	return l.entries[l.selection], true
}

// Next advances the selection, wrapping to the first entry from the last one
// or from an invalid selection.
func (l *List[T]) Next() (Entry[T], bool) {
	if len(l.entries) == 0 {
		var zero Entry[T]
		return zero, false
	}
	if !l.valid() || l.selection == len(l.entries)-1 {
		l.selection = 0
	} else {
		l.selection++
	}
	return l.entries[l.selection], true
}

// Prev moves the selection back, wrapping to the last entry from the first
// one or from an invalid selection.
func (l *List[T]) Prev() (Entry[T], bool) {
	if len(l.entries) == 0 {
		var zero Entry[T]
		return zero, false
	}
	if !l.valid() || l.selection == 0 {
		l.selection = len(l.entries) - 1
	} else {
		l.selection--
	}
	return l.entries[l.selection], true
}

// IsFirst reports whether the selection sits on the first entry. Empty lists
// are considered to be at both boundaries.
func (l *List[T]) IsFirst() bool {
	if len(l.entries) == 0 {
		return true
	}
	return l.selection == 0
}

// IsLast reports whether the selection sits on the last entry. Empty lists
// are considered to be at both boundaries.
func (l *List[T]) IsLast() bool {
	if len(l.entries) == 0 {
		return true
	}
	return l.selection == len(l.entries)-1
}

// SelectAt sets the selection without validating it.
func (l *List[T]) SelectAt(index int) {
	l.selection = index
}

// Reset moves the selection back to the first entry.
func (l *List[T]) Reset() {
	l.selection = 0
}
