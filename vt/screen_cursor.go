package vt

// lineFeed advances the cursor down one row, scrolling the margin region
// up when already at the bottom margin. Column is left untouched — callers
// that want CR+LF reset the column themselves (Execute does, for LNM).
func (s *Screen) lineFeed() {
	if s.cursor.Y == s.marginBottom {
		s.grid.scrollUp(s.marginTop, s.marginBottom, 1)
		return
	}
	if s.cursor.Y < s.lines-1 {
		s.cursor.Y++
	}
}

// reverseIndex is the inverse of lineFeed: up one row, scrolling the
// margin region down at the top margin.
func (s *Screen) reverseIndex() {
	if s.cursor.Y == s.marginTop {
		s.grid.scrollDown(s.marginTop, s.marginBottom, 1)
		return
	}
	if s.cursor.Y > 0 {
		s.cursor.Y--
	}
}

// originTop/originBottom give the bounds cursor motion must respect: the
// scroll margins under DECOM, the whole screen otherwise.
func (s *Screen) originTop() int {
	if s.modes.get(modeDECOM) {
		return s.marginTop
	}
	return 0
}

func (s *Screen) originBottom() int {
	if s.modes.get(modeDECOM) {
		return s.marginBottom
	}
	return s.lines - 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cursorUp/Down/Forward/Back implement CSI A/B/C/D. Unlike cursorPosition,
// these clamp to the scroll margin whenever the cursor is already inside
// it, regardless of DECOM — the same "already within [marginTop,
// marginBottom]" test insertLines/deleteLines use.
func (s *Screen) cursorUp(n int) {
	lo := 0
	if s.cursor.Y >= s.marginTop && s.cursor.Y <= s.marginBottom {
		lo = s.marginTop
	}
	s.cursor.Y = clampInt(s.cursor.Y-n, lo, s.lines-1)
}

func (s *Screen) cursorDown(n int) {
	hi := s.lines - 1
	if s.cursor.Y >= s.marginTop && s.cursor.Y <= s.marginBottom {
		hi = s.marginBottom
	}
	s.cursor.Y = clampInt(s.cursor.Y+n, 0, hi)
}

func (s *Screen) cursorForward(n int) {
	s.cursor.X = clampInt(s.cursor.X+n, 0, s.cols-1)
}

func (s *Screen) cursorBack(n int) {
	s.cursor.X = clampInt(s.cursor.X-n, 0, s.cols-1)
}

// cursorNextLine/PrevLine implement CSI E/F: move n lines, column to 0.
func (s *Screen) cursorNextLine(n int) {
	s.cursorDown(n)
	s.cursor.X = 0
}

func (s *Screen) cursorPrevLine(n int) {
	s.cursorUp(n)
	s.cursor.X = 0
}

// cursorColumn implements CSI G: absolute column, 1-based in the wire
// protocol, 0-based here.
func (s *Screen) cursorColumn(col int) {
	s.cursor.X = clampInt(col, 0, s.cols-1)
}

// cursorPosition implements CSI H/f: absolute row+column, relative to the
// scroll margin when DECOM is set.
func (s *Screen) cursorPosition(row, col int) {
	top, bottom := s.originTop(), s.originBottom()
	s.cursor.Y = clampInt(top+row, top, bottom)
	s.cursor.X = clampInt(col, 0, s.cols-1)
}

// horizontalTab/backwardTab implement CSI I/Z: move n tab stops forward or
// back.
func (s *Screen) horizontalTab(n int) {
	for i := 0; i < n; i++ {
		s.cursor.X = s.tabs.next(s.cursor.X)
	}
}

func (s *Screen) backwardTab(n int) {
	for i := 0; i < n; i++ {
		s.cursor.X = s.tabs.prev(s.cursor.X)
	}
}

// saveCursor/restoreCursor implement DECSC/DECRC (ESC 7 / ESC 8).
func (s *Screen) saveCursor() {
	s.saved = savepoint{
		x: s.cursor.X, y: s.cursor.Y,
		attrs:      s.cursor.Attrs,
		g0:         s.g0,
		g1:         s.g1,
		gActive:    s.gActive,
		originMode: s.modes.get(modeDECOM),
	}
	s.hasSaved = true
}

func (s *Screen) restoreCursor() {
	if !s.hasSaved {
		s.cursor = Cursor{}
		return
	}
	s.cursor.X = s.saved.x
	s.cursor.Y = s.saved.y
	s.cursor.Attrs = s.saved.attrs
	s.g0 = s.saved.g0
	s.g1 = s.saved.g1
	s.gActive = s.saved.gActive
	s.modes.set(modeDECOM, s.saved.originMode)
	s.clampCursor()
}
