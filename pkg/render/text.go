package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextStyle describes how a line of text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
	Face     font.Face
}

// DefaultTextStyle returns a style using the bundled bitmap face.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Color:    ColorAxisLabel,
		FontSize: 13,
		Face:     basicfont.Face7x13,
	}
}

// resolvedFace falls back to the bundled face when none is set.
func (s TextStyle) resolvedFace() font.Face {
	if s.Face != nil {
		return s.Face
	}
	return basicfont.Face7x13
}

// MeasureText returns the pixel extent of a single line of text in the given
// style. Height is the face's full line height, so empty strings still
// reserve a line.
func MeasureText(text string, style TextStyle) (width, height int) {
	face := style.resolvedFace()
	metrics := face.Metrics()
	width = font.MeasureString(face, text).Ceil()
	height = metrics.Height.Ceil()
	if height == 0 {
		height = (metrics.Ascent + metrics.Descent).Ceil()
	}
	return width, height
}

// TextAscent returns the baseline distance from the top of the line box,
// used to convert a top-left text origin into a baseline origin.
func TextAscent(style TextStyle) int {
	return style.resolvedFace().Metrics().Ascent.Ceil()
}
