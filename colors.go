package ansihtml

import (
	"fmt"
	"image/color"
)

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231)
	// Generated programmatically below

	// Grayscale (232-255)
	// Generated programmatically below
}

func init() {
	// Generate 216 color cube (16-231) using the xterm channel levels
	// (0, 95, 135, 175, 215, 255)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: cubeLevel(r),
					G: cubeLevel(g),
					B: cubeLevel(b),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// cubeLevel converts a cube coordinate (0-5) to its channel value.
func cubeLevel(v int) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(55 + 40*v)
}

// DefaultForeground is the default text color for image rendering (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color for image rendering (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// Color is a resolved, render-ready color value.
type Color struct {
	R, G, B uint8

	// Truecolor marks a color taken verbatim from a 24-bit SGR triple.
	// Truecolor values render in rgb() notation, palette values in hex.
	Truecolor bool
}

// IndexedColor resolves a palette index (0-255) against DefaultPalette.
// Out-of-range indices fall back to white.
func IndexedColor(n int) Color {
	return resolveIndexed(&DefaultPalette, n)
}

// TrueColor wraps a 24-bit RGB triple without transformation.
func TrueColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Truecolor: true}
}

// resolveIndexed resolves a palette index using a custom palette.
func resolveIndexed(palette *[256]color.RGBA, n int) Color {
	if n < 0 || n > 255 {
		return Color{R: 255, G: 255, B: 255}
	}
	c := palette[n]
	return Color{R: c.R, G: c.G, B: c.B}
}

// CSS renders the color as a CSS value: "#rrggbb" for palette colors,
// "rgb(r,g,b)" for truecolor.
func (c Color) CSS() string {
	if c.Truecolor {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
