package vt

// OSCDispatch implements the OSC sequences this emulator tracks: 0/1/2 set
// the icon name and/or window title. Everything else (xterm's many other
// OSC codes) is accepted and ignored — the parser has already consumed its
// payload up to the BEL or ST terminator by the time it reaches here.
func (s *Screen) OSCDispatch(data [][]byte) {
	if len(data) == 0 {
		// "ESC ] R": palette reset. No palette is modeled, so this is a
		// deliberate no-op.
		return
	}
	switch string(data[0]) {
	case "0":
		if len(data) > 1 {
			s.iconName = string(data[1])
			s.title = string(data[1])
		}
	case "1":
		if len(data) > 1 {
			s.iconName = string(data[1])
		}
	case "2":
		if len(data) > 1 {
			s.title = string(data[1])
		}
	}
}
