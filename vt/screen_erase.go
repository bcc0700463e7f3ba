package vt

// eraseInDisplay implements CSI J. mode: 0 = cursor to end, 1 = start to
// cursor, 2 = whole screen, 3 = whole screen plus scrollback (this
// emulator keeps no scrollback, so 3 behaves like 2).
func (s *Screen) eraseInDisplay(mode int) {
	switch mode {
	case 0:
		s.clearRowRange(s.cursor.Y, s.cursor.X, s.cols)
		for row := s.cursor.Y + 1; row < s.lines; row++ {
			s.grid.clearRow(row)
		}
	case 1:
		for row := 0; row < s.cursor.Y; row++ {
			s.grid.clearRow(row)
		}
		s.clearRowRange(s.cursor.Y, 0, s.cursor.X+1)
	case 2, 3:
		s.grid.clearAll()
	}
}

// eraseInLine implements CSI K. mode: 0 = cursor to end of line, 1 = start
// of line to cursor, 2 = whole line.
func (s *Screen) eraseInLine(mode int) {
	switch mode {
	case 0:
		s.clearRowRange(s.cursor.Y, s.cursor.X, s.cols)
	case 1:
		s.clearRowRange(s.cursor.Y, 0, s.cursor.X+1)
	case 2:
		s.clearRowRange(s.cursor.Y, 0, s.cols)
	}
}

// clearRowRange blanks columns [from, to) of row, respecting DECSCNM's
// reverse-video default cell the way the grid itself does.
func (s *Screen) clearRowRange(row, from, to int) {
	if from < 0 {
		from = 0
	}
	if to > s.cols {
		to = s.cols
	}
	s.grid.clearRowRange(row, from, to)
}

// insertLines implements CSI L: only takes effect when the cursor is
// already within the scroll margin.
func (s *Screen) insertLines(n int) {
	if s.cursor.Y < s.marginTop || s.cursor.Y > s.marginBottom {
		return
	}
	s.grid.insertLines(s.cursor.Y, s.marginBottom, n)
}

// deleteLines implements CSI M: only takes effect when the cursor is
// already within the scroll margin.
func (s *Screen) deleteLines(n int) {
	if s.cursor.Y < s.marginTop || s.cursor.Y > s.marginBottom {
		return
	}
	s.grid.deleteLines(s.cursor.Y, s.marginBottom, n)
}

// insertChars implements CSI @: shift cells from the cursor rightward by n,
// dropping whatever falls off the right edge.
func (s *Screen) insertChars(n int) {
	s.irmShift(s.cursor.Y, s.cursor.X, n)
}

// deleteChars implements CSI P: shift cells from cursor+n leftward into the
// cursor position, blanking the vacated tail.
func (s *Screen) deleteChars(n int) {
	row := s.cursor.Y
	if n <= 0 {
		return
	}
	for c := s.cursor.X; c < s.cols-n; c++ {
		if cell, ok := s.grid.get(row, c+n); ok {
			s.grid.set(row, c, cell)
		} else {
			s.grid.deleteCell(row, c)
		}
	}
	s.clearRowRange(row, s.cols-n, s.cols)
}

// eraseChars implements CSI X: blank n cells starting at the cursor
// without shifting anything.
func (s *Screen) eraseChars(n int) {
	s.clearRowRange(s.cursor.Y, s.cursor.X, s.cursor.X+n)
}
