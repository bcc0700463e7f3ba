package vt

// setMode implements CSI h / CSI l (with private dictating whether number
// is read from the DEC-private or ANSI mode space).
func (s *Screen) setMode(number int, private bool, value bool) {
	id := modeID{number: number, private: private}
	switch id {
	case modeDECCOLM:
		s.setDECCOLM(value)
	case modeDECSCNM:
		s.setDECSCNM(value)
	case modeDECTCEM:
		s.modes.set(id, value)
		s.cursor.Hidden = !value
	default:
		s.modes.set(id, value)
	}
}

// setDECCOLM implements the 80/132 column switch: changing it clears the
// screen and resets the scroll margins, matching real hardware's behaviour
// since the column count itself changes. Resetting it restores whatever
// column count was in force before it was last set, not a hardcoded 80.
func (s *Screen) setDECCOLM(value bool) {
	if value && !s.modes.get(modeDECCOLM) {
		s.preDECCOLMCols = s.cols
	}
	s.modes.set(modeDECCOLM, value)
	cols := s.preDECCOLMCols
	if value {
		cols = 132
	}
	s.cols = cols
	s.tabs.resize(cols)
	s.grid.clearAll()
	s.marginTop, s.marginBottom = 0, s.lines-1
	s.cursor.X, s.cursor.Y = 0, 0
}

// setDECSCNM implements screen-wide reverse video: every existing cell's
// Reverse bit toggles, along with the resting default cell used to fill
// absent entries.
func (s *Screen) setDECSCNM(value bool) {
	if s.modes.get(modeDECSCNM) == value {
		return
	}
	s.modes.set(modeDECSCNM, value)
	for row, cols := range s.grid.rows {
		for col, c := range cols {
			s.grid.set(row, col, c.toggleReverse())
		}
	}
}
