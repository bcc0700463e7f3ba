package vt

// Handler is the capability Parser dispatches decoded events to. Screen
// implements Handler; Parser is bound to one Handler at construction and
// never resolves it per byte, the same "performer" split the reference
// vte-crate style parsers in this codebase's lineage use.
type Handler interface {
	// Print handles one printable rune, already UTF-8 decoded; the parser
	// calls it once per rune and leaves charset translation to the handler.
	Print(r rune)

	// Execute handles a single C0 control byte or DEL (BS, HT, LF, CR, ...).
	Execute(b byte)

	// CSIDispatch handles a complete CSI sequence. params is the raw
	// semicolon-separated parameter list (empty fields already defaulted to
	// 0); intermediates holds any bytes in 0x20-0x2F before the final byte;
	// private is the marker byte ('?', '>', '<', '=') if present, else 0.
	CSIDispatch(params []int, intermediates []byte, private byte, final byte)

	// EscDispatch handles a two-or-three-byte escape sequence outside CSI/
	// OSC/string territory: intermediates (0x20-0x2F) followed by final.
	EscDispatch(intermediates []byte, final byte)

	// OSCDispatch handles a complete OSC string, split on ';' with the
	// leading numeric selector (if any) left in data[0].
	OSCDispatch(data [][]byte)

	// CharsetDesignate handles "ESC ( X" / "ESC ) X" / "ESC * X" / "ESC + X":
	// slot is 0-3 for G0-G3, final is the designator byte.
	CharsetDesignate(slot int, final byte)

	// DOCSDispatch handles "ESC % @" / "ESC % G" (Designate Other Coding
	// System): enable reports true to select UTF-8, false to select the
	// single-byte/charset-table path.
	DOCSDispatch(enableUTF8 bool)

	// Hook/Put/Unhook bracket a DCS string: Hook on entry with the same
	// shape of params/intermediates/final CSI carries, Put for each payload
	// byte, Unhook on the terminator. This emulator discards DCS payloads
	// but still needs the bracketing to avoid miscounting nested ESC bytes.
	Hook(params []int, intermediates []byte, private byte, final byte)
	Put(b byte)
	Unhook()
}
