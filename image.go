package ansihtml

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/unilibs/uniwidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ImageConfig controls how converted lines are rendered to an image.
type ImageConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// DefaultFG is the color for unstyled text. If nil, uses DefaultForeground.
	DefaultFG *color.RGBA

	// DefaultBG fills the image background. If nil, uses DefaultBackground.
	DefaultBG *color.RGBA
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

// RenderImage rasterizes the lines to an RGBA image using default settings
// (basicfont, default colors).
func (c *Converter) RenderImage(lines []string) *image.RGBA {
	return c.RenderImageWithConfig(lines, &ImageConfig{})
}

// RenderImageWithConfig rasterizes the lines to an RGBA image, applying the
// same style interpretation as ConvertLines. The image is sized to the
// widest line (or the converter's pad width, when larger). Bold and italic
// are not rendered; dim scales the foreground channels by the same constant
// used for the HTML opacity.
func (c *Converter) RenderImageWithConfig(lines []string, cfg *ImageConfig) *image.RGBA {
	if cfg == nil {
		cfg = &ImageConfig{}
	}

	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 || cellHeight == 0 {
		metrics := face.Metrics()
		if cellWidth == 0 {
			// Measure a character to get width
			adv, _ := face.GlyphAdvance('M')
			cellWidth = adv.Ceil()
			if cellWidth == 0 {
				cellWidth = 7 // fallback for basicfont
			}
		}
		if cellHeight == 0 {
			cellHeight = metrics.Height.Ceil()
		}
	}

	defaultFG := cfg.DefaultFG
	if defaultFG == nil {
		defaultFG = &DefaultForeground
	}

	defaultBG := cfg.DefaultBG
	if defaultBG == nil {
		defaultBG = &DefaultBackground
	}

	// Scan all lines up front to size the image.
	cols := c.padWidth
	segLines := make([][]segment, len(lines))
	for i, line := range lines {
		segLines[i] = c.segments(line)
		w := 0
		for _, seg := range segLines[i] {
			w += uniwidth.StringWidth(seg.text)
		}
		if w > cols {
			cols = w
		}
	}
	if cols == 0 {
		cols = 1
	}
	rows := len(lines)
	if rows == 0 {
		rows = 1
	}

	imgWidth := cols * cellWidth
	imgHeight := rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	// Fill background
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, *defaultBG)
		}
	}

	metrics := face.Metrics()
	for row, segs := range segLines {
		x := 0
		y := row * cellHeight
		baseline := y + metrics.Ascent.Ceil()

		for _, seg := range segs {
			fg := *defaultFG
			bg := *defaultBG
			hasBG := false
			if seg.style.Fg != nil {
				fg = color.RGBA{R: seg.style.Fg.R, G: seg.style.Fg.G, B: seg.style.Fg.B, A: 255}
			}
			if seg.style.Bg != nil {
				bg = color.RGBA{R: seg.style.Bg.R, G: seg.style.Bg.G, B: seg.style.Bg.B, A: 255}
				hasBG = true
			}

			// Handle dim
			if seg.style.HasFlag(StyleFlagDim) {
				fg = color.RGBA{
					R: uint8(float64(fg.R) * dimLevel),
					G: uint8(float64(fg.G) * dimLevel),
					B: uint8(float64(fg.B) * dimLevel),
					A: fg.A,
				}
			}

			for _, r := range seg.text {
				w := runeWidth(r)
				if w == 0 {
					continue
				}

				// Fill cell background
				if hasBG {
					for py := 0; py < cellHeight; py++ {
						for px := 0; px < cellWidth*w; px++ {
							if x+px < imgWidth && y+py < imgHeight {
								img.Set(x+px, y+py, bg)
							}
						}
					}
				}

				// Draw character
				if r != ' ' {
					d := &font.Drawer{
						Dst:  img,
						Src:  image.NewUniform(fg),
						Face: face,
						Dot:  fixed.P(x, baseline),
					}
					d.DrawString(string(r))
				}

				// Handle underline
				if seg.style.HasFlag(StyleFlagUnderline) {
					underlineY := baseline + 2
					for px := 0; px < cellWidth*w; px++ {
						if x+px < imgWidth && underlineY < imgHeight {
							img.Set(x+px, underlineY, fg)
						}
					}
				}

				x += cellWidth * w
			}
		}
	}

	return img
}
