package ansihtml

import (
	"image/color"
	"strings"

	"github.com/unilibs/uniwidth"
)

// LineBreak is the marker used to join converted lines.
const LineBreak = "<br>"

// Converter transcodes terminal-formatted text into HTML with inline styles.
// Converters keep no state between calls and are safe for concurrent use.
type Converter struct {
	palette  *[256]color.RGBA
	padWidth int
}

// Option configures a Converter.
type Option func(*Converter)

// WithPalette overrides the 256-color palette used to resolve indexed colors.
func WithPalette(palette *[256]color.RGBA) Option {
	return func(c *Converter) {
		if palette != nil {
			c.palette = palette
		}
	}
}

// WithPadWidth pads every converted line with plain spaces up to the given
// display width. Zero disables padding.
func WithPadWidth(cols int) Option {
	return func(c *Converter) {
		c.padWidth = cols
	}
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{palette: &DefaultPalette}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = New()

// segment is a run of literal text sharing one style.
type segment struct {
	text  string
	style Style
}

// segments scans one line left to right and splits it into styled runs.
// The style state starts unset and is threaded through each matched SGR
// sequence; text outside any match keeps the style accumulated so far.
func (c *Converter) segments(line string) []segment {
	var segs []segment
	style := Style{}
	last := 0

	for _, m := range sgrPattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			segs = append(segs, segment{text: line[last:m[0]], style: style})
		}
		style = applySGR(style, parseParams(line[m[2]:m[3]]), c.palette)
		last = m[1]
	}

	if last < len(line) {
		segs = append(segs, segment{text: line[last:], style: style})
	}

	return segs
}

// ConvertLine transcodes a single line of terminal-formatted text to HTML.
// Literal text is entity-escaped and wrapped in a styled span whenever the
// accumulated style is non-default. ConvertLine never fails: malformed or
// unsupported sequences degrade to unstyled text.
func (c *Converter) ConvertLine(line string) string {
	var b strings.Builder
	width := 0

	for _, seg := range c.segments(line) {
		if c.padWidth > 0 {
			width += uniwidth.StringWidth(seg.text)
		}

		text := escapeHTML(seg.text)
		if seg.style.IsDefault() {
			b.WriteString(text)
			continue
		}

		b.WriteString(`<span style="`)
		b.WriteString(seg.style.css())
		b.WriteString(`">`)
		b.WriteString(text)
		b.WriteString(`</span>`)
	}

	for width < c.padWidth {
		b.WriteByte(' ')
		width++
	}

	return b.String()
}

// ConvertLines transcodes each line and joins the results with LineBreak.
func (c *Converter) ConvertLines(lines []string) string {
	converted := make([]string, len(lines))
	for i, line := range lines {
		converted[i] = c.ConvertLine(line)
	}
	return strings.Join(converted, LineBreak)
}

// ConvertLine transcodes a single line using the default Converter.
func ConvertLine(line string) string {
	return defaultConverter.ConvertLine(line)
}

// ConvertLines transcodes lines using the default Converter and joins the
// results with LineBreak.
func ConvertLines(lines []string) string {
	return defaultConverter.ConvertLines(lines)
}

// Strip removes SGR escape sequences, returning the plain text.
// No HTML escaping is applied.
func Strip(line string) string {
	return sgrPattern.ReplaceAllString(line, "")
}

// StripLines removes SGR escape sequences from each line.
func StripLines(lines []string) []string {
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = Strip(line)
	}
	return stripped
}

// htmlEscaper escapes the characters that would corrupt the output markup.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
