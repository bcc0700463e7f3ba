package vt

import "unicode/utf8"

// Screen owns the character grid, cursor, modes, and charset state for one
// terminal, and implements Handler to receive decoded events from a bound
// Parser. A Screen is not safe for concurrent use.
type Screen struct {
	cols, lines int

	grid   *grid
	cursor Cursor

	modes modeSet
	tabs  *tabStops

	g0, g1, g2, g3 charsetID
	gActive        int // which of g0-g3 GL currently selects: 0-3
	utf8Mode       bool

	marginTop, marginBottom int // inclusive, 0-based

	// preDECCOLMCols is the column count in force before DECCOLM was last
	// set, restored when DECCOLM is reset.
	preDECCOLMCols int

	saved    savepoint
	hasSaved bool

	title    string
	iconName string

	// joinNext forces the next printed rune to merge into the cell left of
	// the cursor regardless of its own width — set after a ZWJ (U+200D).
	joinNext bool

	parser *Parser

	// Output is called with bytes Screen needs to write back to its host
	// (DA/DSR responses). Nil means responses are discarded.
	Output func([]byte)
}

// New returns a Screen sized cols x lines, reset to terminal power-on
// defaults.
func New(cols, lines int) *Screen {
	s := &Screen{}
	s.parser = NewParser(s)
	s.Reset(cols, lines)
	return s
}

// Reset restores power-on defaults at the given size: home cursor, default
// attributes, no scroll margins, default tab stops, G0/G1 set to
// US-ASCII, UTF-8 mode on.
func (s *Screen) Reset(cols, lines int) {
	if cols < 1 {
		cols = 1
	}
	if lines < 1 {
		lines = 1
	}
	// DECOM survives a reset — every other mode reverts to its power-on
	// default.
	decom := s.modes.get(modeDECOM)
	s.cols, s.lines = cols, lines
	s.preDECCOLMCols = cols
	s.grid = newGrid()
	s.cursor = Cursor{}
	s.modes = newModeSet()
	s.modes.set(modeDECOM, decom)
	s.tabs = newTabStops(cols)
	s.g0, s.g1, s.g2, s.g3 = charsetUSASCII, charsetUSASCII, charsetUSASCII, charsetUSASCII
	s.gActive = 0
	s.utf8Mode = true
	s.marginTop, s.marginBottom = 0, lines-1
	s.hasSaved = false
	s.title, s.iconName = "", ""
	s.joinNext = false
}

// Cols reports the current column count.
func (s *Screen) Cols() int { return s.cols }

// Lines reports the current row count.
func (s *Screen) Lines() int { return s.lines }

// Cursor reports the cursor's current position, attributes, and visibility.
func (s *Screen) Cursor() Cursor { return s.cursor }

// CellAt returns the cell at (row, col), or the resting blank cell if
// nothing has been written there.
func (s *Screen) CellAt(row, col int) Cell {
	if c, ok := s.grid.get(row, col); ok {
		return c
	}
	return blankCell(s.modes.get(modeDECSCNM))
}

// Title reports the window title set by OSC 0/2.
func (s *Screen) Title() string { return s.title }

// IconName reports the icon name set by OSC 0/1.
func (s *Screen) IconName() string { return s.iconName }

// Resize changes the grid dimensions, preserving existing cells at their
// current (row, col) coordinates and clamping the cursor and scroll
// margins to the new bounds.
func (s *Screen) Resize(cols, lines int) {
	if cols < 1 {
		cols = 1
	}
	if lines < 1 {
		lines = 1
	}
	s.cols, s.lines = cols, lines
	s.tabs.resize(cols)
	if s.marginBottom > lines-1 {
		s.marginBottom = lines - 1
	}
	if s.marginTop > s.marginBottom {
		s.marginTop = 0
	}
	s.clampCursor()
}

func (s *Screen) clampCursor() {
	if s.cursor.X > s.cols-1 {
		s.cursor.X = s.cols - 1
	}
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
	if s.cursor.Y > s.lines-1 {
		s.cursor.Y = s.lines - 1
	}
	if s.cursor.Y < 0 {
		s.cursor.Y = 0
	}
}

// Feed decodes data and drives it through the parser. When UTF-8 mode
// (the power-on default, toggled by DOCS "ESC % @"/"ESC % G") is off, each
// byte becomes its own rune so single-byte national/DEC charsets can
// translate it on the way to Print.
func (s *Screen) Feed(data []byte) {
	if s.utf8Mode {
		runes := make([]rune, 0, len(data))
		for len(data) > 0 {
			r, size := utf8.DecodeRune(data)
			runes = append(runes, r)
			data = data[size:]
		}
		s.parser.Feed(runes)
		return
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	s.parser.Feed(runes)
}

func (s *Screen) writeOutput(b []byte) {
	if s.Output != nil {
		s.Output(b)
	}
}

// activeCharsetTable returns the translation table GL currently selects.
func (s *Screen) activeCharsetTable() charsetTable {
	var id charsetID
	switch s.gActive {
	case 1:
		id = s.g1
	case 2:
		id = s.g2
	case 3:
		id = s.g3
	default:
		id = s.g0
	}
	return charsetTableFor(id)
}
