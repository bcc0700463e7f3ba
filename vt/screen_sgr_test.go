package vt

import "testing"

func TestSGR_BoldAndReset(t *testing.T) {
	s := New(10, 1)
	s.Feed([]byte("\x1b[1mA\x1b[0mB"))
	if !s.CellAt(0, 0).Bold {
		t.Errorf("cell 0 not bold")
	}
	if s.CellAt(0, 1).Bold {
		t.Errorf("cell 1 bold after reset, want false")
	}
}

func TestSGR_NamedColors(t *testing.T) {
	s := New(10, 1)
	s.Feed([]byte("\x1b[31;42mX"))
	cell := s.CellAt(0, 0)
	if cell.Fg.Kind != ColorPalette || cell.Fg.Index != 1 {
		t.Errorf("fg = %+v, want palette 1 (red)", cell.Fg)
	}
	if cell.Bg.Kind != ColorPalette || cell.Bg.Index != 2 {
		t.Errorf("bg = %+v, want palette 2 (green)", cell.Bg)
	}
}

func TestSGR_ExtendedPaletteColor(t *testing.T) {
	s := New(10, 1)
	s.Feed([]byte("\x1b[38;5;200mX"))
	cell := s.CellAt(0, 0)
	if cell.Fg.Kind != ColorPalette || cell.Fg.Index != 200 {
		t.Errorf("fg = %+v, want palette 200", cell.Fg)
	}
}

func TestSGR_TruecolorRGB(t *testing.T) {
	s := New(10, 1)
	s.Feed([]byte("\x1b[48;2;10;20;30mX"))
	cell := s.CellAt(0, 0)
	if cell.Bg.Kind != ColorRGB || cell.Bg.R != 10 || cell.Bg.G != 20 || cell.Bg.B != 30 {
		t.Errorf("bg = %+v, want rgb(10,20,30)", cell.Bg)
	}
}

func TestSGR_MalformedExtendedSequence_AbandonsRest(t *testing.T) {
	s := New(10, 1)
	// 38 with no selector at all: malformed, should not panic and should
	// leave later params (here there are none) unapplied.
	s.Feed([]byte("\x1b[38mX"))
	_ = s.CellAt(0, 0) // must not panic
}

func TestSGR_AixtermBrightColors(t *testing.T) {
	s := New(10, 1)
	s.Feed([]byte("\x1b[91mX"))
	cell := s.CellAt(0, 0)
	if cell.Fg.Index != 9 {
		t.Errorf("fg.Index = %d, want 9 (bright red)", cell.Fg.Index)
	}
}

func TestSGR_EmbeddedZero_DoesNotReset(t *testing.T) {
	s := New(10, 1)
	// Underline set first, then a sequence with a non-trailing 0: the 0
	// must be ignored, leaving underline (and the new bold/red) applied.
	s.Feed([]byte("\x1b[4mA\x1b[1;0;31mB"))
	cell := s.CellAt(0, 1)
	if !cell.Underline {
		t.Errorf("cell 1 lost underline from an embedded 0, want it to survive")
	}
	if !cell.Bold {
		t.Errorf("cell 1 not bold")
	}
	if cell.Fg.Kind != ColorPalette || cell.Fg.Index != 1 {
		t.Errorf("fg = %+v, want palette 1 (red)", cell.Fg)
	}
}

func TestSGR_ReverseToggle(t *testing.T) {
	s := New(10, 1)
	s.Feed([]byte("\x1b[7mX\x1b[27mY"))
	if !s.CellAt(0, 0).Reverse {
		t.Errorf("cell 0 not reverse")
	}
	if s.CellAt(0, 1).Reverse {
		t.Errorf("cell 1 reverse after SGR 27, want false")
	}
}
