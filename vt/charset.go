package vt

// charsetID names one of the static single-byte translation tables a G0/G1
// slot can hold.
type charsetID int

const (
	charsetUSASCII charsetID = iota
	charsetUK
	charsetDECSpecialGraphics
	charsetVAX42 // DEC Multinational / supplemental, designated "<"
	charsetLatin1
)

// charsetTable maps an incoming byte to its translated rune. A nil table
// means "no translation" (pass the byte through as its own code point).
type charsetTable map[byte]rune

// ukTable differs from US-ASCII in exactly one position: '#' becomes the
// pound sign, the classic VT100 UK national replacement.
var ukTable = charsetTable{'#': '£'}

// decSpecialGraphicsTable is the VT100 line-drawing set, designated by
// "ESC ( 0" (or "ESC ) 0" into G1). Bytes 0x60-0x7e map to box-drawing and
// technical symbols; everything else passes through unchanged.
var decSpecialGraphicsTable = charsetTable{
	0x60: '◆', 0x61: '▒', 0x62: '␉', 0x63: '␌', 0x64: '␍', 0x65: '␊',
	0x66: '°', 0x67: '±', 0x68: '␤', 0x69: '␋', 0x6a: '┘', 0x6b: '┐',
	0x6c: '┌', 0x6d: '└', 0x6e: '┼', 0x6f: '⎺', 0x70: '⎻', 0x71: '─',
	0x72: '⎼', 0x73: '⎽', 0x74: '├', 0x75: '┤', 0x76: '┴', 0x77: '┬',
	0x78: '│', 0x79: '≤', 0x7a: '≥', 0x7b: 'π', 0x7c: '≠', 0x7d: '£',
	0x7e: '·',
}

// vax42Table is the DEC Multinational / supplemental character set
// ("ESC ( <"), remapping the high half of the byte range to accented
// Latin characters the way DEC's VAX/VMS terminal drivers did.
var vax42Table = charsetTable{
	0xa1: '¡', 0xa2: '¢', 0xa3: '£', 0xa4: '$', 0xa5: '¥', 0xa6: '¦',
	0xa7: '§', 0xa8: '¤', 0xa9: '©', 0xaa: 'ª', 0xab: '«', 0xac: '¬',
	0xad: '-', 0xae: '®', 0xaf: '¯', 0xb0: '°', 0xb1: '±', 0xb2: '²',
	0xb3: '³', 0xb4: '´', 0xb5: 'µ', 0xb6: '¶', 0xb7: '·', 0xb8: '¸',
	0xb9: '¹', 0xba: 'º', 0xbb: '»', 0xbc: '¼', 0xbd: '½', 0xbe: '¾',
	0xbf: '¿', 0xc0: 'À', 0xc1: 'Á', 0xc2: 'Â', 0xc3: 'Ã', 0xc4: 'Ä',
	0xc5: 'Å', 0xc6: 'Æ', 0xc7: 'Ç', 0xc8: 'È', 0xc9: 'É', 0xca: 'Ê',
	0xcb: 'Ë', 0xcc: 'Ì', 0xcd: 'Í', 0xce: 'Î', 0xcf: 'Ï', 0xd0: 'Ð',
	0xd1: 'Ñ', 0xd2: 'Ò', 0xd3: 'Ó', 0xd4: 'Ô', 0xd5: 'Õ', 0xd6: 'Ö',
	0xd7: 'Œ', 0xd8: 'Ø', 0xd9: 'Ù', 0xda: 'Ú', 0xdb: 'Û', 0xdc: 'Ü',
	0xdd: 'Ý', 0xde: 'Þ', 0xdf: 'ß', 0xe0: 'à', 0xe1: 'á', 0xe2: 'â',
	0xe3: 'ã', 0xe4: 'ä', 0xe5: 'å', 0xe6: 'æ', 0xe7: 'ç', 0xe8: 'è',
	0xe9: 'é', 0xea: 'ê', 0xeb: 'ë', 0xec: 'ì', 0xed: 'í', 0xee: 'î',
	0xef: 'ï', 0xf0: 'ð', 0xf1: 'ñ', 0xf2: 'ò', 0xf3: 'ó', 0xf4: 'ô',
	0xf5: 'õ', 0xf6: 'ö', 0xf7: 'œ', 0xf8: 'ø', 0xf9: 'ù', 0xfa: 'ú',
	0xfb: 'û', 0xfc: 'ü', 0xfd: 'ý', 0xfe: 'þ', 0xff: 'ÿ',
}

// charsetTableFor resolves a charsetID to its translation table. Nil means
// the US-ASCII and Latin-1 identity cases: Latin-1 is a no-op because its
// code points already equal the Unicode code points of the same bytes.
func charsetTableFor(id charsetID) charsetTable {
	switch id {
	case charsetUK:
		return ukTable
	case charsetDECSpecialGraphics:
		return decSpecialGraphicsTable
	case charsetVAX42:
		return vax42Table
	default: // charsetUSASCII, charsetLatin1
		return nil
	}
}

// charsetFromDesignator maps the final byte of "ESC ( X" / "ESC ) X" (etc.)
// to the charset it selects. Unrecognised designators fall back to the
// Latin-1 passthrough, matching real hardware's permissive behaviour.
func charsetFromDesignator(final byte) charsetID {
	switch final {
	case 'B':
		return charsetUSASCII
	case 'A':
		return charsetUK
	case '0':
		return charsetDECSpecialGraphics
	case '<':
		return charsetVAX42
	default:
		return charsetLatin1
	}
}

// translate applies table to b, the way the active charset would when
// UTF-8 mode is off. Bytes without a table entry pass through unchanged.
func (t charsetTable) translate(b byte) rune {
	if t == nil {
		return rune(b)
	}
	if r, ok := t[b]; ok {
		return r
	}
	return rune(b)
}
