package vt

import "testing"

// ---------------------------------------------------------------------------
// Cursor motion
// ---------------------------------------------------------------------------

func TestCSI_CursorMotion(t *testing.T) {
	s := New(20, 10)
	s.Feed([]byte("\x1b[5;5H")) // absolute position, 1-based
	cur := s.Cursor()
	if cur.Y != 4 || cur.X != 4 {
		t.Fatalf("cursor after CUP = (%d,%d), want (4,4)", cur.X, cur.Y)
	}

	s.Feed([]byte("\x1b[2A")) // up 2
	if s.Cursor().Y != 2 {
		t.Errorf("cursor.Y after CUU 2 = %d, want 2", s.Cursor().Y)
	}
	s.Feed([]byte("\x1b[3C")) // forward 3
	if s.Cursor().X != 7 {
		t.Errorf("cursor.X after CUF 3 = %d, want 7", s.Cursor().X)
	}
}

func TestCSI_CursorClampsToScreen(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[100B")) // down far past the bottom
	if s.Cursor().Y != 4 {
		t.Errorf("cursor.Y = %d, want clamped to 4", s.Cursor().Y)
	}
}

// ---------------------------------------------------------------------------
// Erase
// ---------------------------------------------------------------------------

func TestCSI_EraseInLine(t *testing.T) {
	s := New(10, 2)
	s.Feed([]byte("abcdefghij"))
	s.Feed([]byte("\x1b[5G"))  // column 5
	s.Feed([]byte("\x1b[0K")) // erase to end of line
	if s.PlainTextRow(0) != "abcd" {
		t.Errorf("row after EL 0 = %q, want \"abcd\"", s.PlainTextRow(0))
	}
}

func TestCSI_EraseInDisplay_Whole(t *testing.T) {
	s := New(5, 2)
	s.Feed([]byte("hello\x1b[2J"))
	if s.PlainText() != "\n" {
		t.Errorf("text after ED 2 = %q, want blank", s.PlainText())
	}
}

// ---------------------------------------------------------------------------
// Insert / delete lines and chars
// ---------------------------------------------------------------------------

func TestCSI_InsertLines(t *testing.T) {
	s := New(10, 3)
	s.Feed([]byte("one\r\ntwo\r\nthree"))
	s.Feed([]byte("\x1b[2;1H\x1b[1L")) // insert a line at row 2
	if s.PlainTextRow(0) != "one" {
		t.Errorf("row0 = %q, want \"one\"", s.PlainTextRow(0))
	}
	if s.PlainTextRow(1) != "" {
		t.Errorf("row1 after insert = %q, want blank", s.PlainTextRow(1))
	}
	if s.PlainTextRow(2) != "two" {
		t.Errorf("row2 after insert = %q, want \"two\"", s.PlainTextRow(2))
	}
}

func TestCSI_DeleteChars(t *testing.T) {
	s := New(10, 1)
	s.Feed([]byte("abcdef\r\x1b[2P")) // delete 2 chars at col 0
	if s.PlainTextRow(0) != "cdef" {
		t.Errorf("row after DCH 2 = %q, want \"cdef\"", s.PlainTextRow(0))
	}
}

// ---------------------------------------------------------------------------
// Scroll margins
// ---------------------------------------------------------------------------

func TestCSI_ScrollRegion(t *testing.T) {
	s := New(10, 5)
	s.Feed([]byte("\x1b[2;4r")) // margins rows 2-4
	for i := 0; i < 5; i++ {
		s.Feed([]byte{'x'})
		s.Feed([]byte("\r\n"))
	}
	// row 0 (outside margin) must survive untouched by scrolling within 2-4.
	if s.PlainTextRow(0) != "x" {
		t.Errorf("row0 = %q, want \"x\" (outside the margin, never scrolled)", s.PlainTextRow(0))
	}
}

func TestCSI_CursorUpDown_ClampToMargin_WithoutDECOM(t *testing.T) {
	s := New(10, 10)
	s.Feed([]byte("\x1b[3;7r")) // margins rows 3-7 (1-based), DECOM stays off
	s.Feed([]byte("\x1b[5;1H")) // place cursor at row 5, inside the margin
	s.Feed([]byte("\x1b[10A"))  // CSI A: move up far enough to leave the margin
	if s.Cursor().Y != 2 {
		t.Errorf("cursor.Y after CSI A from inside margin = %d, want 2 (top margin row), DECOM off should not matter", s.Cursor().Y)
	}
	s.Feed([]byte("\x1b[5;1H"))
	s.Feed([]byte("\x1b[10B")) // CSI B: move down far enough to leave the margin
	if s.Cursor().Y != 6 {
		t.Errorf("cursor.Y after CSI B from inside margin = %d, want 6 (bottom margin row), DECOM off should not matter", s.Cursor().Y)
	}
}

// ---------------------------------------------------------------------------
// Device reports
// ---------------------------------------------------------------------------

func TestCSI_DSR_CursorPositionReport(t *testing.T) {
	s := New(20, 10)
	var out []byte
	s.Output = func(b []byte) { out = append(out, b...) }
	s.Feed([]byte("\x1b[3;4H\x1b[6n"))
	want := "\x1b[3;4R"
	if string(out) != want {
		t.Errorf("DSR 6 reply = %q, want %q", out, want)
	}
}

func TestCSI_DA_PrivateMarkerSuppressed(t *testing.T) {
	s := New(20, 10)
	var out []byte
	s.Output = func(b []byte) { out = append(out, b...) }
	s.Feed([]byte("\x1b[?c"))
	if len(out) != 0 {
		t.Errorf("private-marker DA produced output %q, want none", out)
	}
	s.Feed([]byte("\x1b[c"))
	if len(out) == 0 {
		t.Errorf("plain DA produced no output")
	}
}

// ---------------------------------------------------------------------------
// Modes
// ---------------------------------------------------------------------------

func TestCSI_DECAWM_Off_ClampsInsteadOfWrapping(t *testing.T) {
	s := New(5, 2)
	s.Feed([]byte("\x1b[?7l")) // DECAWM off
	s.Feed([]byte("abcdef"))
	if s.Cursor().Y != 0 {
		t.Errorf("cursor.Y = %d, want 0 (no wrap)", s.Cursor().Y)
	}
	if s.CellAt(0, 4).Data != "f" {
		t.Errorf("CellAt(0,4) = %q, want \"f\" (overwrite at margin)", s.CellAt(0, 4).Data)
	}
}

func TestCSI_DECTCEM_HidesCursor(t *testing.T) {
	s := New(5, 2)
	s.Feed([]byte("\x1b[?25l"))
	if !s.Cursor().Hidden {
		t.Errorf("cursor.Hidden = false after DECTCEM reset, want true")
	}
	s.Feed([]byte("\x1b[?25h"))
	if s.Cursor().Hidden {
		t.Errorf("cursor.Hidden = true after DECTCEM set, want false")
	}
}
