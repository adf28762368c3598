package termview

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. Consecutive cells with
// the same StyleKey are merged into one run and rendered with a single
// Style.Render call. Keys missing from styles render as plain text.
//
// Rows are joined with "\n". An empty buffer returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		var sb strings.Builder
		flush := func(key StyleKey) {
			if s, ok := styles[key]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		key := row[0].Style
		for _, c := range row {
			if c.Style != key {
				flush(key)
				key = c.Style
			}
			run = append(run, c.Ch)
		}
		flush(key)
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
