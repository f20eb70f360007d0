package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/git-branch-control/internal/branch"
	"github.com/atomicstack/git-branch-control/internal/format/table"
	"github.com/atomicstack/git-branch-control/internal/ui/screen"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

var mainMenuRows = [][]string{
	{"b", "browse local branches"},
	{"c", "commands"},
	{"q", "quit"},
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	top := m.controller.Top()
	switch top.Screen {
	case screen.Main:
		lines = append(lines, m.mainLines()...)
	case screen.Exiting:
		lines = append(lines, styledLine{text: "Quit git-branch-control? (y/n)", style: styles.Info})
	case screen.Errors:
		lines = append(lines, m.errorLines()...)
	default:
		lines = append(lines, m.listingLines(top)...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.ShortHelpView(m.keys.helpFor(top)), raw: true})
	}
	// reserve 2 rows for the bottom bar
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{
		statusLine,
		{text: m.filterPrompt(), raw: true},
	}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) mainLines() []styledLine {
	rows := table.Format(mainMenuRows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		lines[i] = styledLine{text: "  " + row, style: styles.Item, prefixStyle: styles.MenuKey, highlightFrom: 3}
	}
	return lines
}

func (m *Model) errorLines() []styledLine {
	records := m.controller.Errors()
	title := "1 error"
	if len(records) != 1 {
		title = fmt.Sprintf("%d errors", len(records))
	}
	lines := []styledLine{{text: title, style: styles.Error}}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{rec.Kind.String(), rec.Message}
	}
	for _, row := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
		lines = append(lines, styledLine{text: row, style: styles.ErrorKind})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: "press esc or q to dismiss", style: styles.Info})
	return lines
}

func (m *Model) listingLines(top *screen.Frame) []styledLine {
	labels, selected := m.controller.Visible()
	if len(labels) == 0 {
		msg := "(no entries)"
		if query := top.Query(); query != "" {
			msg = fmt.Sprintf("No matches for %q", query)
			if suggestion := m.controller.Suggestion(); suggestion != "" {
				msg += fmt.Sprintf(", did you mean %q?", suggestion)
			}
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	m.syncViewport()
	start, end := top.Level.Viewport.Window(len(labels), m.maxVisibleItems())
	lines := make([]styledLine, 0, end-start)
	for idx := start; idx < end; idx++ {
		checkedOut := top.Screen == screen.ListingBranches && strings.HasPrefix(labels[idx], branch.CheckedOutMarker)
		lines = append(lines, m.buildItemLine(labels[idx], idx == selected, checkedOut, m.width))
	}
	return lines
}

func (m *Model) buildItemLine(label string, selected, checkedOut bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if checkedOut && styles.CheckedOutItem != nil {
		lineStyle = styles.CheckedOutItem
	}
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	frames := m.controller.Frames()
	if len(frames) <= 1 {
		return []string{defaultRootTitle}
	}
	segments := make([]string, 0, len(frames)-1)
	for _, f := range frames[1:] {
		if seg := headerSegmentForFrame(f); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

func headerSegmentForFrame(f *screen.Frame) string {
	if f.Screen == screen.ListingBranches && f.Pending.BranchCommand != branch.CommandNone {
		return headerSegmentCleaner.Replace(f.Pending.BranchCommand.String())
	}
	return headerSegmentCleaner.Replace(f.Screen.String())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) syncViewport() {
	top := m.controller.Top()
	if top.Level == nil {
		return
	}
	labels, selected := m.controller.Visible()
	top.Level.Viewport.EnsureVisible(selected, len(labels), m.maxVisibleItems())
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) currentInfo() string {
	if !m.verbose {
		return ""
	}
	return m.controller.Info()
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
