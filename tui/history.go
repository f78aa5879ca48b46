// Package tui provides a Bubble Tea terminal UI for the witchertrack interpreter.
package tui

// History keeps submitted lines for Up/Down recall. While navigating it
// remembers the line being typed so stepping past the newest entry gives
// it back.
type History struct {
	entries []string
	limit   int
	cursor  int    // len(entries) when not navigating
	draft   string // input as it was before the first Prev
}

// NewHistory creates a history that keeps at most limit lines.
func NewHistory(limit int) *History {
	return &History{
		entries: make([]string, 0, limit),
		limit:   limit,
	}
}

// Push records a submitted line. Empty lines and consecutive duplicates
// are skipped. Push ends any navigation in progress.
func (h *History) Push(line string) {
	defer h.ResetCursor()
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Prev steps to the previous (older) entry. current is the text in the
// input box, saved as the draft when navigation starts.
func (h *History) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.navigating() {
		h.draft = current
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps to the next (newer) entry. Past the newest entry it returns
// the saved draft and stops navigating.
func (h *History) Next() (string, bool) {
	if !h.navigating() {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		draft := h.draft
		h.ResetCursor()
		return draft, true
	}
	return h.entries[h.cursor], true
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return len(h.entries)
}

// ResetCursor ends navigation and forgets the draft.
func (h *History) ResetCursor() {
	h.cursor = len(h.entries)
	h.draft = ""
}

func (h *History) navigating() bool {
	return h.cursor < len(h.entries)
}
