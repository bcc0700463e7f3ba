package vt

// handleSGR applies one CSI "m" sequence's parameter list to the cursor's
// prototype attributes. An empty param list is the same as a single 0.
func (s *Screen) handleSGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	attrs := &s.cursor.Attrs
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			// Only a reset when 0 is the sole parameter or the last one;
			// an embedded 0 ("1;0;31") is ignored so the surrounding
			// attributes still apply.
			if i == len(params)-1 {
				*attrs = Cell{Fg: DefaultColor, Bg: DefaultColor}
			}
		case p == 1:
			attrs.Bold = true
		case p == 3:
			attrs.Italic = true
		case p == 4:
			attrs.Underline = true
		case p == 5:
			attrs.Blink = true
		case p == 7:
			attrs.Reverse = true
		case p == 9:
			attrs.Strikethrough = true
		case p == 21:
			attrs.Bold = false // double-underline not modeled; treat as bold-off
		case p == 22:
			attrs.Bold = false
		case p == 23:
			attrs.Italic = false
		case p == 24:
			attrs.Underline = false
		case p == 25:
			attrs.Blink = false
		case p == 27:
			attrs.Reverse = false
		case p == 29:
			attrs.Strikethrough = false
		case p >= 30 && p <= 37:
			attrs.Fg = PaletteColor(p - 30)
		case p == 38:
			if c, consumed, ok := parseExtendedColor(params[i:]); ok {
				attrs.Fg = c
				i += consumed
			} else {
				return // malformed extended-color sequence: abandon the rest
			}
		case p == 39:
			attrs.Fg = DefaultColor
		case p >= 40 && p <= 47:
			attrs.Bg = PaletteColor(p - 40)
		case p == 48:
			if c, consumed, ok := parseExtendedColor(params[i:]); ok {
				attrs.Bg = c
				i += consumed
			} else {
				return
			}
		case p == 49:
			attrs.Bg = DefaultColor
		case p >= 90 && p <= 97:
			attrs.Fg = PaletteColor(p - 90 + 8)
		case p >= 100 && p <= 107:
			attrs.Bg = PaletteColor(p - 100 + 8)
		}
	}
}

// parseExtendedColor parses the SGR 38/48 sub-sequence starting at
// params[0] (the 38 or 48 itself): either "5;N" (palette) or "2;R;G;B"
// (truecolour). Returns the decoded colour, how many extra params were
// consumed beyond params[0], and whether the sequence was well-formed.
func parseExtendedColor(params []int) (Color, int, bool) {
	if len(params) < 2 {
		return Color{}, 0, false
	}
	switch params[1] {
	case 5:
		if len(params) < 3 {
			return Color{}, 0, false
		}
		return PaletteColor(params[2]), 2, true
	case 2:
		if len(params) < 5 {
			return Color{}, 0, false
		}
		return RGBColor(params[2], params[3], params[4]), 4, true
	default:
		return Color{}, 0, false
	}
}
