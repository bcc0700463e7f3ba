package vt

// modeID names a settable terminal mode: an ANSI mode (set with plain
// "CSI Pn h"/"CSI Pn l") or a DEC-private mode (set with "CSI ? Pn h"/"l").
// The two numbering spaces overlap (e.g. ANSI mode 4 and DEC-private mode 4
// are unrelated), so modeID carries the private bit alongside the number.
type modeID struct {
	number  int
	private bool
}

func ansiMode(n int) modeID   { return modeID{number: n} }
func decMode(n int) modeID    { return modeID{number: n, private: true} }

// Named modes referenced directly by the screen operations. Numbers match
// the CSI parameter values real terminals use.
var (
	modeIRM     = ansiMode(4)  // Insert/Replace Mode
	modeLNM     = ansiMode(20) // Line Feed/New Line Mode

	modeDECCOLM = decMode(3)  // 80/132 column switch
	modeDECOM   = decMode(6)  // Origin Mode
	modeDECAWM  = decMode(7)  // Auto Wrap Mode
	modeDECSCNM = decMode(5)  // Screen reverse video
	modeDECTCEM = decMode(25) // Text cursor enable
)

// modeSet tracks which modes are currently set. Unlisted modes read as
// false (reset), matching real hardware's power-on defaults for every mode
// this emulator models except DECAWM and DECTCEM, which default on — New
// sets those two explicitly.
type modeSet map[modeID]bool

func newModeSet() modeSet {
	m := make(modeSet)
	m[modeDECAWM] = true
	m[modeDECTCEM] = true
	return m
}

func (m modeSet) get(id modeID) bool { return m[id] }

func (m modeSet) set(id modeID, v bool) { m[id] = v }
