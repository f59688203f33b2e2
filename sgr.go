package ansihtml

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// sgrPattern matches a complete SGR escape sequence: ESC [ params m.
// Anything that does not match, including unterminated sequences, is
// treated as literal text.
var sgrPattern = regexp.MustCompile(`\x1b\[([0-9;]*)m`)

// parseParams splits an SGR parameter string into codes. An empty string or
// an empty token means code 0 (reset).
func parseParams(raw string) []int {
	parts := strings.Split(raw, ";")
	codes := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			codes = append(codes, 0)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			// Number too large to represent; skip, later codes still apply.
			continue
		}
		codes = append(codes, n)
	}
	return codes
}

// applySGR folds a parsed code sequence into the style and returns the
// updated state. Unknown codes leave the state unchanged.
func applySGR(style Style, codes []int, palette *[256]color.RGBA) Style {
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		switch {
		case code == 0:
			style = Style{}

		case code == 1:
			style.SetFlag(StyleFlagBold)

		case code == 2:
			style.SetFlag(StyleFlagDim)

		case code == 3:
			style.SetFlag(StyleFlagItalic)

		case code == 4:
			style.SetFlag(StyleFlagUnderline)

		case code == 22:
			style.ClearFlag(StyleFlagBold | StyleFlagDim)

		case code == 23:
			style.ClearFlag(StyleFlagItalic)

		case code == 24:
			style.ClearFlag(StyleFlagUnderline)

		case code >= 30 && code <= 37:
			c := resolveIndexed(palette, code-30)
			style.Fg = &c

		case code == 38 || code == 48:
			c, consumed := extendedColor(codes[i+1:], palette)
			i += consumed
			if c == nil {
				continue
			}
			if code == 38 {
				style.Fg = c
			} else {
				style.Bg = c
			}

		case code == 39:
			style.Fg = nil

		case code >= 40 && code <= 47:
			c := resolveIndexed(palette, code-40)
			style.Bg = &c

		case code == 49:
			style.Bg = nil

		case code >= 90 && code <= 97:
			c := resolveIndexed(palette, 8+code-90)
			style.Fg = &c

		case code >= 100 && code <= 107:
			c := resolveIndexed(palette, 8+code-100)
			style.Bg = &c
		}
	}
	return style
}

// extendedColor consumes the sub-parameter window of a 38/48 selector and
// returns the resolved color plus the number of codes consumed. A malformed
// or truncated selector consumes only the mode marker (when present) and
// resolves to nil, leaving the style untouched.
func extendedColor(rest []int, palette *[256]color.RGBA) (*Color, int) {
	if len(rest) == 0 {
		return nil, 0
	}

	switch rest[0] {
	case 5: // 256-color palette index
		if len(rest) < 2 {
			return nil, 1
		}
		n := rest[1]
		if n < 0 || n > 255 {
			return nil, 2
		}
		c := resolveIndexed(palette, n)
		return &c, 2

	case 2: // 24-bit RGB triple
		if len(rest) < 4 {
			return nil, 1
		}
		c := TrueColor(clampChannel(rest[1]), clampChannel(rest[2]), clampChannel(rest[3]))
		return &c, 4
	}

	return nil, 1
}

// clampChannel clamps a parsed channel value to the valid 0-255 range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
