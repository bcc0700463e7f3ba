package vt

import "fmt"

// deviceAttributes implements CSI c (DA). Real terminals only answer the
// plain (non-private) form; answering "CSI ? c" too makes some line
// editors (historically Emacs and Vim) loop forever re-querying, so the
// private-marker form is silently ignored here.
func (s *Screen) deviceAttributes(private byte) {
	if private != 0 {
		return
	}
	s.writeOutput([]byte("\x1b[?62;1;2;6;9c"))
}

// deviceStatusReport implements CSI n (DSR). 5 reports "terminal OK", 6
// reports the cursor position (honouring DECOM, the way a real cursor
// position report does).
func (s *Screen) deviceStatusReport(code int) {
	switch code {
	case 5:
		s.writeOutput([]byte("\x1b[0n"))
	case 6:
		row := s.cursor.Y - s.originTop() + 1
		col := s.cursor.X + 1
		s.writeOutput([]byte(fmt.Sprintf("\x1b[%d;%dR", row, col)))
	}
}
