package ansihtml

import "strings"

// StyleFlags is a bitmask of text rendering attributes.
type StyleFlags uint8

const (
	StyleFlagBold StyleFlags = 1 << iota
	StyleFlagDim
	StyleFlagItalic
	StyleFlagUnderline
)

// dimLevel is the opacity applied for SGR dim. A fixed constant rather than
// a faithful terminal dim rendering.
const dimLevel = 0.6

// Style is the cumulative effect of the SGR codes seen so far in one line
// scan. The zero value is the default (unstyled) state. At most one
// foreground and one background color are active at a time; later codes
// overwrite earlier ones.
type Style struct {
	Fg    *Color
	Bg    *Color
	Flags StyleFlags
}

// HasFlag returns true if the specified flag is set.
func (s *Style) HasFlag(flag StyleFlags) bool {
	return s.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (s *Style) SetFlag(flag StyleFlags) {
	s.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (s *Style) ClearFlag(flag StyleFlags) {
	s.Flags &^= flag
}

// IsDefault returns true if no color or attribute is active.
func (s *Style) IsDefault() bool {
	return s.Fg == nil && s.Bg == nil && s.Flags == 0
}

// css renders the style as inline CSS declarations in fixed order:
// color, background-color, bold, italic, underline, dim.
func (s *Style) css() string {
	decls := make([]string, 0, 6)
	if s.Fg != nil {
		decls = append(decls, "color:"+s.Fg.CSS())
	}
	if s.Bg != nil {
		decls = append(decls, "background-color:"+s.Bg.CSS())
	}
	if s.HasFlag(StyleFlagBold) {
		decls = append(decls, "font-weight:bold")
	}
	if s.HasFlag(StyleFlagItalic) {
		decls = append(decls, "font-style:italic")
	}
	if s.HasFlag(StyleFlagUnderline) {
		decls = append(decls, "text-decoration:underline")
	}
	if s.HasFlag(StyleFlagDim) {
		decls = append(decls, "opacity:0.6")
	}
	return strings.Join(decls, ";")
}
