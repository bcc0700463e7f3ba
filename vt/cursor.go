package vt

// Cursor tracks the write position and the pending style for the next
// write. X may transiently equal the column count: that is the "past the
// right edge" sentinel a draw leaves behind until the next character
// resolves whether to wrap.
type Cursor struct {
	X, Y   int
	Attrs  Cell // prototype style copied onto newly written cells
	Hidden bool
}

// savepoint is the DECSC/DECRC snapshot: cursor position and attributes,
// which charset table G0/G1 currently hold, which slot is active, and
// whether origin mode (DECOM) was set.
type savepoint struct {
	x, y       int
	attrs      Cell
	g0, g1     charsetID
	gActive    int
	originMode bool
}
