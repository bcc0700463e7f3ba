package vt

import "unicode/utf8"

// pstate is the parser's finite state.
type pstate int

const (
	psGround pstate = iota
	psEscape
	psCharsetSelect // ESC ( ) * + seen, waiting for the designator byte
	psDOCSSelect    // ESC % seen, waiting for '@' or 'G'
	psCSI
	psOSCString
	psDCSEntry
	psDCSPassthrough
	psSwallowString // SOS/PM/APC: payload discarded, only the terminator matters
)

const maxCSIParams = 16

// Parser tokenizes a stream of runes into the escape/control grammar VT100
// through VT520 terminals share, dispatching each decoded event to a
// Handler bound at construction. It holds no screen state of its own.
type Parser struct {
	handler Handler
	state   pstate

	// CSI/DCS accumulation.
	params      []int
	curParam    int
	paramStarted bool
	intermediates []byte
	private       byte

	// charset-select accumulation.
	csSlot int

	// OSC/string accumulation.
	oscBuf    [][]byte
	oscField  []byte
	pendingST bool // true once we've seen ESC inside a string, awaiting '\'
}

// NewParser returns a Parser dispatching decoded events to h.
func NewParser(h Handler) *Parser {
	return &Parser{handler: h, state: psGround}
}

// Feed processes runes, a chunk at a time. Feed may be called repeatedly
// with arbitrarily split input — the parser's state persists across calls,
// so splitting mid-sequence never changes the final result.
func (p *Parser) Feed(runes []rune) {
	for _, r := range runes {
		p.feedOne(r)
	}
}

func (p *Parser) feedOne(r rune) {
	switch p.state {
	case psGround:
		p.feedGround(r)
	case psEscape:
		p.feedEscape(r)
	case psCharsetSelect:
		p.handler.CharsetDesignate(p.csSlot, byte(r))
		p.state = psGround
	case psDOCSSelect:
		p.handler.DOCSDispatch(r == 'G')
		p.state = psGround
	case psCSI:
		p.feedCSI(r)
	case psOSCString:
		p.feedOSC(r)
	case psDCSEntry:
		p.feedDCSEntry(r)
	case psDCSPassthrough:
		p.feedDCSPassthrough(r)
	case psSwallowString:
		p.feedSwallow(r)
	}
}

func (p *Parser) feedGround(r rune) {
	switch r {
	case 0x1b:
		p.enterEscape()
	case 0x9b: // 8-bit CSI
		p.enterCSI()
	case 0x9d: // 8-bit OSC
		p.enterOSC()
	case 0x90: // 8-bit DCS
		p.enterDCS()
	case 0x98, 0x9e, 0x9f: // 8-bit SOS/PM/APC
		p.state = psSwallowString
		p.pendingST = false
	default:
		if r < 0x20 || r == 0x7f {
			p.handler.Execute(byte(r))
			return
		}
		p.handler.Print(r)
	}
}

func (p *Parser) enterEscape() {
	p.state = psEscape
	p.intermediates = p.intermediates[:0]
}

func (p *Parser) feedEscape(r rune) {
	switch {
	case r == '[':
		p.enterCSI()
	case r == ']':
		p.enterOSC()
	case r == 'P':
		p.enterDCS()
	case r == 'X' || r == '^' || r == '_':
		p.state = psSwallowString
		p.pendingST = false
	case r == '(' || r == ')' || r == '*' || r == '+':
		p.csSlot = int(r - '(')
		p.state = psCharsetSelect
	case r == '%':
		p.state = psDOCSSelect
	case r >= 0x20 && r <= 0x2f:
		p.intermediates = append(p.intermediates, byte(r))
	case r >= 0x30 && r <= 0x7e:
		p.handler.EscDispatch(append([]byte(nil), p.intermediates...), byte(r))
		p.state = psGround
	default:
		// Unexpected byte mid-sequence: abandon it and resume in ground,
		// matching real hardware's tolerance of line noise.
		p.state = psGround
		p.feedGround(r)
	}
}

func (p *Parser) enterCSI() {
	p.state = psCSI
	p.params = p.params[:0]
	p.curParam = 0
	p.paramStarted = false
	p.intermediates = p.intermediates[:0]
	p.private = 0
}

func (p *Parser) feedCSI(r rune) {
	switch {
	case r >= '0' && r <= '9':
		p.paramStarted = true
		p.curParam = p.curParam*10 + int(r-'0')
	case r == ';':
		p.pushParam()
	case r == ':':
		// Colon sub-parameters (SGR 38:2:... and similar) are folded into
		// the same numeric field boundary as ';' for this emulator's
		// purposes; callers that care about the distinction reconstruct it
		// from context (38/48 handling inspects adjacent values).
		p.pushParam()
	case (r == '?' || r == '>' || r == '<' || r == '=') && !p.paramStarted && len(p.params) == 0:
		p.private = byte(r)
	case r >= 0x20 && r <= 0x2f:
		p.intermediates = append(p.intermediates, byte(r))
	case r >= 0x40 && r <= 0x7e:
		p.pushParam()
		p.handler.CSIDispatch(p.params, append([]byte(nil), p.intermediates...), p.private, byte(r))
		p.state = psGround
	default:
		p.state = psGround
	}
}

func (p *Parser) pushParam() {
	if len(p.params) >= maxCSIParams {
		return
	}
	p.params = append(p.params, p.curParam)
	p.curParam = 0
	p.paramStarted = false
}

func (p *Parser) enterOSC() {
	p.state = psOSCString
	p.oscBuf = p.oscBuf[:0]
	p.oscField = p.oscField[:0]
	p.pendingST = false
}

func (p *Parser) feedOSC(r rune) {
	// "ESC ] R" with no accumulated text is the palette-reset shorthand: it
	// must dispatch immediately rather than wait for a terminator that may
	// never come.
	if len(p.oscBuf) == 0 && len(p.oscField) == 0 && r == 'R' {
		p.handler.OSCDispatch(nil)
		p.state = psGround
		return
	}
	if p.pendingST {
		if r == '\\' {
			p.finishOSC()
			return
		}
		// Not a real ST after all; the ESC we buffered belongs to the
		// string, put it back and re-process r fresh.
		p.oscField = append(p.oscField, 0x1b)
		p.pendingST = false
	}
	switch r {
	case 0x07: // BEL terminator
		p.finishOSC()
	case 0x1b:
		p.pendingST = true
	case ';':
		p.oscBuf = append(p.oscBuf, append([]byte(nil), p.oscField...))
		p.oscField = p.oscField[:0]
	default:
		if r < utf8.RuneSelf {
			p.oscField = append(p.oscField, byte(r))
		} else {
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			p.oscField = append(p.oscField, buf[:n]...)
		}
	}
}

func (p *Parser) finishOSC() {
	p.oscBuf = append(p.oscBuf, append([]byte(nil), p.oscField...))
	p.handler.OSCDispatch(p.oscBuf)
	p.state = psGround
}

func (p *Parser) enterDCS() {
	p.state = psDCSEntry
	p.params = p.params[:0]
	p.curParam = 0
	p.paramStarted = false
	p.intermediates = p.intermediates[:0]
	p.private = 0
}

func (p *Parser) feedDCSEntry(r rune) {
	switch {
	case r >= '0' && r <= '9':
		p.paramStarted = true
		p.curParam = p.curParam*10 + int(r-'0')
	case r == ';':
		p.pushParam()
	case (r == '?' || r == '>' || r == '<' || r == '=') && !p.paramStarted && len(p.params) == 0:
		p.private = byte(r)
	case r >= 0x20 && r <= 0x2f:
		p.intermediates = append(p.intermediates, byte(r))
	case r >= 0x40 && r <= 0x7e:
		p.pushParam()
		p.handler.Hook(p.params, append([]byte(nil), p.intermediates...), p.private, byte(r))
		p.state = psDCSPassthrough
		p.pendingST = false
	default:
		p.state = psGround
	}
}

func (p *Parser) feedDCSPassthrough(r rune) {
	if p.pendingST {
		if r == '\\' {
			p.handler.Unhook()
			p.state = psGround
			return
		}
		p.handler.Put(0x1b)
		p.pendingST = false
	}
	if r == 0x1b {
		p.pendingST = true
		return
	}
	if r == 0x07 {
		p.handler.Unhook()
		p.state = psGround
		return
	}
	if r < utf8.RuneSelf {
		p.handler.Put(byte(r))
	} else {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		for _, b := range buf[:n] {
			p.handler.Put(b)
		}
	}
}

func (p *Parser) feedSwallow(r rune) {
	if p.pendingST {
		if r == '\\' {
			p.state = psGround
			return
		}
		p.pendingST = false
	}
	switch r {
	case 0x1b:
		p.pendingST = true
	case 0x07:
		p.state = psGround
	}
}
