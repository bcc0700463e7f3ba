// Package session embeds a vt.Screen into a live PTY-backed process.
//
// Session is cross-platform: it uses github.com/aymanbagabas/go-pty, which
// wraps Unix PTYs and Windows ConPTY behind a single interface, so the same
// binary works on Linux, macOS, and Windows.
package session

import (
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	gopty "github.com/aymanbagabas/go-pty"

	"github.com/windowframe/vtterm/vt"
)

// Status represents the current lifecycle state of a Session.
type Status int

const (
	StatusRunning Status = iota // process is alive
	StatusExited                // process has exited
	StatusError                 // an error occurred starting the process
)

// Session wraps a PTY-backed process and the vt.Screen it feeds.
type Session struct {
	mu sync.Mutex

	ID     int
	Screen *vt.Screen
	Status Status
	Title  string

	p   gopty.Pty
	cmd *gopty.Cmd

	done chan struct{}

	// OutputCh receives a signal each time new data lands on Screen. A
	// render loop can select on this to know when to redraw.
	OutputCh chan struct{}

	ExitCode int

	// LastOutputAt records when the PTY last produced output.
	LastOutputAt time.Time
}

// New creates a Session with the given screen dimensions. Call Start to
// spawn the child process.
func New(id, cols, lines int) *Session {
	return &Session{
		ID:       id,
		Screen:   vt.New(cols, lines),
		Status:   StatusRunning,
		OutputCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start launches argv inside a new PTY. An empty argv spawns the user's
// default shell. dir sets the working directory; env is appended to the
// inherited environment.
func (s *Session) Start(argv []string, dir string, env []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(argv) == 0 {
		argv = defaultShell()
	}

	fullEnv := append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
	)
	fullEnv = append(fullEnv, env...)

	cols, lines := s.Screen.Cols(), s.Screen.Lines()

	p, err := gopty.New()
	if err != nil {
		s.Status = StatusError
		return err
	}
	if err := p.Resize(cols, lines); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = fullEnv

	if err := cmd.Start(); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	s.p = p
	s.cmd = cmd
	s.Screen.Output = func(b []byte) {
		if _, werr := p.Write(b); werr != nil {
			log.Printf("[session] writing device report: %v", werr)
		}
	}

	go s.readLoop()
	go s.waitLoop()

	return nil
}

// readLoop continuously reads from the PTY and feeds Screen.
func (s *Session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.p.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.Screen.Feed(buf[:n])
			if title := s.Screen.Title(); title != "" {
				s.Title = title
			}
			s.LastOutputAt = time.Now()
			s.mu.Unlock()
			select {
			case s.OutputCh <- struct{}{}:
			default:
			}
		}
		if err != nil {
			break
		}
	}
}

// waitLoop waits for the process to exit and records its status.
func (s *Session) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	if err != nil {
		if s.cmd.ProcessState != nil {
			s.ExitCode = s.cmd.ProcessState.ExitCode()
		} else {
			s.ExitCode = 1
		}
	} else {
		s.ExitCode = 0
	}
	s.Status = StatusExited
	s.mu.Unlock()
	close(s.done)
}

// Write sends raw bytes to the PTY — keyboard input from the user.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	return pty.Write(p)
}

// Resize updates both the PTY and Screen dimensions.
func (s *Session) Resize(cols, lines int) {
	s.mu.Lock()
	s.Screen.Resize(cols, lines)
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		_ = pty.Resize(cols, lines)
	}
}

// Close terminates the session: kills the process and closes the PTY.
func (s *Session) Close() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.p
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if pty != nil {
		pty.Close()
	}
	<-s.done
}

// Done returns a channel closed when the process exits.
func (s *Session) Done() <-chan struct{} { return s.done }

// IsRunning reports whether the process is still alive.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status == StatusRunning
}

// EnableKittyKeyboard sends the kitty keyboard protocol enable sequence
// (CSI > 1 u), telling the child that modified keys like Shift+Enter will
// arrive as distinct CSI u escapes.
func (s *Session) EnableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		pty.Write([]byte("\x1b[>1u"))
	}
}

// DisableKittyKeyboard pops the kitty keyboard protocol flags (CSI < 1 u).
func (s *Session) DisableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		pty.Write([]byte("\x1b[<1u"))
	}
}

// defaultShell returns the default shell command for the current OS.
func defaultShell() []string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return []string{comspec}
		}
		return []string{"cmd.exe"}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return []string{shell}
	}
	return []string{"/bin/bash"}
}
