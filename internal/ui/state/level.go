package state

// Level encapsulates per-screen navigation state: the filter query, whether
// keystrokes are being captured into it, and the viewport.
type Level struct {
	ID        string
	Title     string
	Filter    string
	Searching bool
	Viewport  Viewport
}

// NewLevel constructs a Level with an empty filter.
func NewLevel(id, title string, searching bool) *Level {
	return &Level{ID: id, Title: title, Searching: searching}
}

// InsertFilterText appends typed text to the filter.
func (l *Level) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	l.Filter = AppendQuery(l.Filter, text)
	return true
}

// DeleteFilterRuneBackward removes the last rune of the filter.
func (l *Level) DeleteFilterRuneBackward() bool {
	if l.Filter == "" {
		return false
	}
	l.Filter = TrimQuery(l.Filter)
	return true
}

// StartSearch enables filter capture.
func (l *Level) StartSearch() {
	l.Searching = true
}

// StopSearch disables filter capture and keeps the current filter.
func (l *Level) StopSearch() {
	l.Searching = false
}

// Clear drops the filter, capture mode, and viewport offset.
func (l *Level) Clear() {
	l.Filter = ""
	l.Searching = false
	l.Viewport = Viewport{}
}
