package vt

import "github.com/rivo/uniseg"

// Print places one decoded rune on the grid. Zero-width runes (combining
// marks, ZWJ itself, and the one rune right after a ZWJ) merge
// into the cell immediately to the left of the cursor instead of advancing
// it — this is what lets a multi-codepoint emoji sequence collapse into a
// single cell without the parser ever needing to look ahead across a whole
// grapheme cluster.
func (s *Screen) Print(r rune) {
	if !s.utf8Mode {
		if t := s.activeCharsetTable(); t != nil {
			r = t.translate(byte(r))
		}
	}

	if r == '\u200d' { // ZWJ: always zero-width, and forces the next rune to join too
		s.mergeIntoLeft(r)
		s.joinNext = true
		return
	}

	w := uniseg.StringWidth(string(r))
	if w == 0 || s.joinNext {
		s.mergeIntoLeft(r)
		s.joinNext = false
		return
	}
	s.placeNewCell(r, w)
}

// cellLeftOfCursor locates the cell a zero-width rune should merge into.
// After a wide (width-2) cell is written the cursor sits two columns past
// its origin, with an invisible zero-width spacer in between — so the
// immediate predecessor column might be that spacer rather than the glyph
// itself, and the search falls back one more column in that case.
func (s *Screen) cellLeftOfCursor() (row, col int, ok bool) {
	row = s.cursor.Y
	col = s.cursor.X - 1
	if col < 0 {
		return 0, 0, false
	}
	if c, found := s.grid.get(row, col); found {
		if c.Width == 0 && col > 0 {
			if _, wideFound := s.grid.get(row, col-1); wideFound {
				return row, col - 1, true
			}
		}
		return row, col, true
	}
	return row, col, true // unwritten column still counts as "the cell there"
}

func (s *Screen) mergeIntoLeft(r rune) {
	row, col, ok := s.cellLeftOfCursor()
	if !ok {
		return
	}
	c, found := s.grid.get(row, col)
	if !found {
		c = blankCell(s.modes.get(modeDECSCNM))
		c.Width = 1
	}
	c.Data += string(r)
	s.grid.set(row, col, c)
}

func (s *Screen) placeNewCell(r rune, w int) {
	if s.wrapIfNeeded(w) {
		// wrapIfNeeded already moved us to the start of the next line.
	}

	if s.modes.get(modeIRM) {
		s.irmShift(s.cursor.Y, s.cursor.X, w)
	}

	attrs := s.cursor.Attrs
	attrs.Data = string(r)
	attrs.Width = w
	s.grid.set(s.cursor.Y, s.cursor.X, attrs)
	if w == 2 && s.cursor.X+1 < s.cols {
		spacer := s.cursor.Attrs
		spacer.Data = ""
		spacer.Width = 0
		s.grid.set(s.cursor.Y, s.cursor.X+1, spacer)
	}
	s.cursor.X += w
}

// wrapIfNeeded handles the right-margin boundary before a w-wide glyph is
// placed. With DECAWM on, it moves to the start of the next screen line
// (scrolling if already at the bottom margin). With DECAWM off, the cursor
// clamps to the last column and the new glyph overwrites whatever was
// there, matching real hardware.
func (s *Screen) wrapIfNeeded(w int) bool {
	if s.cursor.X+w <= s.cols {
		return false
	}
	if !s.modes.get(modeDECAWM) {
		s.cursor.X = s.cols - w
		if s.cursor.X < 0 {
			s.cursor.X = 0
		}
		return false
	}
	s.cursor.X = 0
	s.lineFeed()
	return true
}

// irmShift implements Insert Mode (IRM): existing cells from col onward
// shift right by n columns within the line, and anything pushed past the
// right edge is dropped.
func (s *Screen) irmShift(row, col, n int) {
	if n <= 0 {
		return
	}
	for c := s.cols - 1; c >= col+n; c-- {
		if cell, ok := s.grid.get(row, c-n); ok {
			s.grid.set(row, c, cell)
		} else {
			s.grid.deleteCell(row, c)
		}
	}
	for c := col; c < col+n && c < s.cols; c++ {
		s.grid.deleteCell(row, c)
	}
}

// Execute handles a single C0 control byte.
func (s *Screen) Execute(b byte) {
	switch b {
	case '\a': // BEL: no-op for a headless emulator, no bell to ring
	case '\b':
		if s.cursor.X > 0 {
			s.cursor.X--
		}
	case '\t':
		s.cursor.X = s.tabs.next(s.cursor.X)
	case '\n', '\v', '\f':
		s.lineFeed()
		if s.modes.get(modeLNM) {
			s.cursor.X = 0
		}
	case '\r':
		s.cursor.X = 0
	case 0x0e: // SO: shift out to G1
		if !s.utf8Mode {
			s.gActive = 1
		}
	case 0x0f: // SI: shift in to G0
		if !s.utf8Mode {
			s.gActive = 0
		}
	}
}
