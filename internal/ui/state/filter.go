package state

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filtered returns a new list holding the entries whose label contains query.
// The receiver is left untouched and the selection value is carried over as
// is, so it may point past the end of the result.
func (l *List[T]) Filtered(query string) *List[T] {
	if query == "" {
		return &List[T]{entries: CloneEntries(l.entries), selection: l.selection}
	}
	matches := make([]Entry[T], 0, len(l.entries))
	for _, entry := range l.entries {
		if strings.Contains(entry.Label, query) {
			matches = append(matches, entry)
		}
	}
	return &List[T]{entries: matches, selection: l.selection}
}

// AppendQuery adds typed text to the end of a query.
func AppendQuery(query, text string) string {
	if text == "" {
		return query
	}
	return query + text
}

// TrimQuery removes the last rune of a query. Empty queries are returned
// unchanged.
func TrimQuery(query string) string {
	if query == "" {
		return query
	}
	_, size := utf8.DecodeLastRuneInString(query)
	return query[:len(query)-size]
}

// ClosestMatch suggests the label nearest to query when a substring filter
// yields nothing. It returns an empty string when no label is close.
func ClosestMatch[T any](entries []Entry[T], query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(entries) == 0 {
		return ""
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.Target
}
