package session

import "testing"

// ---------------------------------------------------------------------------
// New - construction tests (no PTY needed)
// ---------------------------------------------------------------------------

func TestNew_CreatesScreen(t *testing.T) {
	sess := New(42, 80, 24)

	if sess.ID != 42 {
		t.Fatalf("expected ID 42, got %d", sess.ID)
	}
	if sess.Screen == nil {
		t.Fatal("Screen should not be nil")
	}
	if sess.Screen.Cols() != 80 || sess.Screen.Lines() != 24 {
		t.Fatalf("expected 80x24 screen, got %dx%d", sess.Screen.Cols(), sess.Screen.Lines())
	}
}

func TestNew_StatusRunning(t *testing.T) {
	sess := New(1, 40, 10)
	if sess.Status != StatusRunning {
		t.Fatalf("expected StatusRunning, got %d", sess.Status)
	}
	if !sess.IsRunning() {
		t.Fatal("new session should be running")
	}
}

func TestNew_ChannelsCreated(t *testing.T) {
	sess := New(1, 40, 10)
	if sess.OutputCh == nil {
		t.Fatal("OutputCh should not be nil")
	}
	select {
	case <-sess.Done():
		t.Fatal("done channel should not be closed on new session")
	default:
	}
}

func TestWrite_WithoutStart_ReturnsClosedPipe(t *testing.T) {
	sess := New(1, 40, 10)
	if _, err := sess.Write([]byte("x")); err == nil {
		t.Fatal("Write before Start should error")
	}
}

func TestResize_WithoutStart_ResizesScreenOnly(t *testing.T) {
	sess := New(1, 40, 10)
	sess.Resize(80, 24)
	if sess.Screen.Cols() != 80 || sess.Screen.Lines() != 24 {
		t.Fatalf("screen not resized: %dx%d", sess.Screen.Cols(), sess.Screen.Lines())
	}
}
