package vt

// paramAt returns params[i], or def if the list is too short or the field
// was empty (which the parser already normalizes to 0 — def substitutes
// for the VT operations, like cursor motion counts, where an explicit 0
// means "1" rather than "0").
func paramAt(params []int, i, def int) int {
	if i >= len(params) || params[i] == 0 {
		return def
	}
	return params[i]
}

// rawParamAt is paramAt without the zero-means-default substitution, for
// operations (SGR, mode numbers, erase-mode selectors) where 0 is itself a
// meaningful, distinct value.
func rawParamAt(params []int, i, def int) int {
	if i >= len(params) {
		return def
	}
	return params[i]
}

// CSIDispatch implements Handler, routing a decoded CSI sequence to the
// screen operation its final byte (and private marker, for DEC-private
// sequences) names.
func (s *Screen) CSIDispatch(params []int, intermediates []byte, private byte, final byte) {
	if private == '?' {
		s.dispatchPrivateCSI(params, intermediates, final)
		return
	}
	switch final {
	case 'A':
		s.cursorUp(paramAt(params, 0, 1))
	case 'B':
		s.cursorDown(paramAt(params, 0, 1))
	case 'C':
		s.cursorForward(paramAt(params, 0, 1))
	case 'D':
		s.cursorBack(paramAt(params, 0, 1))
	case 'E':
		s.cursorNextLine(paramAt(params, 0, 1))
	case 'F':
		s.cursorPrevLine(paramAt(params, 0, 1))
	case 'G', '`':
		s.cursorColumn(paramAt(params, 0, 1) - 1)
	case 'H', 'f':
		row := paramAt(params, 0, 1) - 1
		col := paramAt(params, 1, 1) - 1
		s.cursorPosition(row, col)
	case 'I':
		s.horizontalTab(paramAt(params, 0, 1))
	case 'Z':
		s.backwardTab(paramAt(params, 0, 1))
	case 'J':
		s.eraseInDisplay(rawParamAt(params, 0, 0))
	case 'K':
		s.eraseInLine(rawParamAt(params, 0, 0))
	case 'L':
		s.insertLines(paramAt(params, 0, 1))
	case 'M':
		s.deleteLines(paramAt(params, 0, 1))
	case 'P':
		s.deleteChars(paramAt(params, 0, 1))
	case 'S':
		s.scrollUp(paramAt(params, 0, 1))
	case 'T':
		s.scrollDown(paramAt(params, 0, 1))
	case 'X':
		s.eraseChars(paramAt(params, 0, 1))
	case '@':
		s.insertChars(paramAt(params, 0, 1))
	case 'c':
		s.deviceAttributes(private)
	case 'd':
		s.cursor.Y = clampInt(paramAt(params, 0, 1)-1, 0, s.lines-1)
	case 'g':
		switch rawParamAt(params, 0, 0) {
		case 0:
			s.tabs.clear(s.cursor.X)
		case 3:
			s.tabs.clearAll()
		}
	case 'h':
		for _, p := range params {
			s.setMode(p, false, true)
		}
	case 'l':
		for _, p := range params {
			s.setMode(p, false, false)
		}
	case 'm':
		s.handleSGR(params)
	case 'n':
		s.deviceStatusReport(rawParamAt(params, 0, 0))
	case 'r':
		top := paramAt(params, 0, 1) - 1
		bottom := paramAt(params, 1, s.lines) - 1
		s.setScrollRegion(top, bottom)
	case 's':
		s.saveCursor()
	case 'u':
		s.restoreCursor()
	}
}

// dispatchPrivateCSI handles DEC-private ("CSI ? ... X") sequences:
// DECSET/DECRST (h/l), and DA when masked by the private marker (silently
// ignored — see deviceAttributes). Other private final bytes are ignored.
func (s *Screen) dispatchPrivateCSI(params []int, intermediates []byte, final byte) {
	switch final {
	case 'h':
		for _, p := range params {
			s.setMode(p, true, true)
		}
	case 'l':
		for _, p := range params {
			s.setMode(p, true, false)
		}
	case 'c':
		s.deviceAttributes('?')
	}
}

// EscDispatch implements Handler for two/three-byte escape sequences
// outside CSI/OSC/DCS/charset-select territory.
func (s *Screen) EscDispatch(intermediates []byte, final byte) {
	switch final {
	case '7':
		s.saveCursor()
	case '8':
		s.restoreCursor()
	case 'D':
		s.lineFeed()
	case 'E':
		s.lineFeed()
		s.cursor.X = 0
	case 'H':
		s.tabs.set(s.cursor.X)
	case 'M':
		s.reverseIndex()
	case 'c':
		s.Reset(s.cols, s.lines)
	}
}

// Hook/Put/Unhook bracket a DCS string. This emulator has no device
// control functions to answer, so the payload is discarded — but the
// bracketing still has to happen so the parser's nested-escape accounting
// stays correct across Feed calls.
func (s *Screen) Hook(params []int, intermediates []byte, private byte, final byte) {}
func (s *Screen) Put(b byte)                                                       {}
func (s *Screen) Unhook()                                                          {}
