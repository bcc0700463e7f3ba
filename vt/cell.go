package vt

// Cell is a single styled character position on the grid. It is a value
// type: copying a Cell never aliases another cell's data, so updating the
// cursor's prototype attributes can never retroactively change cells
// already written to the grid.
type Cell struct {
	// Data is the displayed grapheme — usually one code point, but may be
	// several when a base character has accumulated combining marks or a
	// ZWJ-joined emoji sequence.
	Data string
	// Width is the column span of Data: 0 (the empty spacer written in the
	// second column of a wide glyph), 1, or 2.
	Width int

	Fg Color
	Bg Color

	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Reverse       bool
	Blink         bool
}

// blankCell returns the screen's resting cell: a single space, default
// colours, reverse-videoed when screenReverse (DECSCNM) is set.
func blankCell(screenReverse bool) Cell {
	return Cell{Data: " ", Width: 1, Fg: DefaultColor, Bg: DefaultColor, Reverse: screenReverse}
}

// toggleReverse flips the Reverse bit. Used when DECSCNM flips screen-wide
// reverse video: every existing cell's Reverse bit inverts along with the
// default cell's.
func (c Cell) toggleReverse() Cell {
	c.Reverse = !c.Reverse
	return c
}
