package render

import "fmt"

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Alpha returns the alpha byte.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Opacity returns the alpha channel normalized to 0.0-1.0.
func (c Color) Opacity() float64 { return float64(c.Alpha()) / 255.0 }

// HexRGB formats the color as "#rrggbb", dropping the alpha channel. SVG
// carries opacity in a separate attribute.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%06x", uint32(c)&0x00FFFFFF)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

// Default chart palette.
var (
	ColorChartBackground = RGB(0x1E, 0x1E, 0x24)
	ColorAxisLine        = RGB(0x9A, 0x9A, 0xA4)
	ColorAxisLabel       = RGB(0xD0, 0xD0, 0xD8)
	ColorSeriesPrimary   = RGB(0x4C, 0x8D, 0xFF)
	ColorSeriesSecondary = RGB(0xFF, 0x8A, 0x4C)
	ColorSeriesTertiary  = RGB(0x5B, 0xC2, 0x6A)
)
