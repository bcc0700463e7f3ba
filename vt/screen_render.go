package vt

import "strings"

// PlainTextRow returns row's visible text with no styling, trailing blanks
// trimmed. Spacer cells (the invisible second column of a wide glyph) emit
// nothing — their glyph already appeared in the preceding column.
func (s *Screen) PlainTextRow(row int) string {
	var b strings.Builder
	for col := 0; col < s.cols; col++ {
		c := s.CellAt(row, col)
		if c.Width == 0 {
			continue
		}
		b.WriteString(c.Data)
	}
	return strings.TrimRight(b.String(), " ")
}

// PlainText returns the whole grid's visible text, one line per row.
func (s *Screen) PlainText() string {
	lines := make([]string, s.lines)
	for row := 0; row < s.lines; row++ {
		lines[row] = s.PlainTextRow(row)
	}
	return strings.Join(lines, "\n")
}
