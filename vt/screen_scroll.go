package vt

// setScrollRegion implements DECSTBM (CSI r): top/bottom are 0-based,
// already converted from the wire's 1-based parameters. An invalid region
// (top >= bottom) is ignored, and the cursor homes to the new margin's
// origin, per real hardware.
func (s *Screen) setScrollRegion(top, bottom int) {
	if bottom >= s.lines {
		bottom = s.lines - 1
	}
	if top < 0 {
		top = 0
	}
	if top >= bottom {
		return
	}
	s.marginTop, s.marginBottom = top, bottom
	s.cursor.Y = s.originTop()
	s.cursor.X = 0
}

// scrollUp implements CSI S: scroll the margin region up n lines.
func (s *Screen) scrollUp(n int) {
	s.grid.scrollUp(s.marginTop, s.marginBottom, n)
}

// scrollDown implements CSI T: scroll the margin region down n lines.
func (s *Screen) scrollDown(n int) {
	s.grid.scrollDown(s.marginTop, s.marginBottom, n)
}
