// Package vt implements a headless, in-memory emulator of the DEC VT100
// through VT520 family of terminals, with the xterm and linux-console
// extensions commonly relied on by modern TUI applications.
//
// The package is split into two tightly coupled subsystems, mirroring the
// design of the terminal it emulates: Parser decodes a stream of code
// points into typed events (CSI, escape, OSC, control characters, one
// Print per printable character), and Screen owns the character grid, cursor, and every
// dispatched operation. Parser holds no reference to Screen state; data
// flows one way, from Feed into the bound Handler.
//
// A Screen is not safe for concurrent use; Feed must run to completion for
// one chunk before the next begins. Callers that bridge a Screen to a
// concurrently-read byte source (a PTY, a socket) are responsible for their
// own synchronization — see internal/session for a worked example.
package vt
