// Package ansihtml converts terminal-formatted text to HTML with inline styles.
//
// The converter recognizes SGR (Select Graphic Rendition) escape sequences
// and translates colors and text attributes into styled spans, without
// emulating a terminal. It is useful for:
//   - Rendering captured CLI output in web pages and reports
//   - Exporting build or session logs with their original colors
//   - Previewing terminal output in documentation
//
// # Quick Start
//
// Convert a line containing ANSI sequences:
//
//	html := ansihtml.ConvertLine("\x1b[31mHello\x1b[0m World")
//	// `<span style="color:#cd3131">Hello</span> World`
//
// Multiple lines are joined with [LineBreak]:
//
//	html := ansihtml.ConvertLines([]string{"line 1", "line 2"})
//
// # Supported Sequences
//
// The converter handles the SGR family only: reset, bold, dim, italic,
// underline and their cancellations, the 16 named colors (30-37, 40-47,
// 90-97, 100-107), 256-color palette selection (38;5;N, 48;5;N), and
// 24-bit truecolor (38;2;R;G;B, 48;2;R;G;B). Every other escape sequence,
// including malformed or truncated ones, is ignored or passed through as
// literal text; conversion never fails.
//
// This is not a terminal emulator: cursor movement, erase commands, screen
// regions, and alternate buffers are out of scope.
//
// # Colors
//
// Indexed colors resolve against [DefaultPalette], a 256-entry table with
// the standard 16 ANSI colors, the 6x6x6 xterm color cube, and the
// 24-step grayscale ramp. Palette colors render as hex values, truecolor
// triples pass through as rgb() values. Override the palette per converter:
//
//	conv := ansihtml.New(ansihtml.WithPalette(&myPalette))
//
// # Output Safety
//
// Literal text is entity-escaped (&, <, >) so the output can be embedded
// directly in a document body. Use [Strip] to get the plain text instead:
//
//	plain := ansihtml.Strip("\x1b[32mok\x1b[0m") // "ok"
//
// # Image Rendering
//
// The same styled segments can be rasterized to an image, with custom
// TrueType/OpenType fonts via [LoadFont]:
//
//	conv := ansihtml.New()
//	img := conv.RenderImage(lines)
//	png.Encode(w, img)
//
// # Thread Safety
//
// Converters hold only configuration; all scan state is local to each call,
// so a single Converter is safe for concurrent use without locking.
package ansihtml
