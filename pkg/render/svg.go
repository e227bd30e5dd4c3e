package render

import (
	"fmt"
	"strings"

	"github.com/go-chartview/chartview/pkg/geometry"
)

// SVGCanvas records drawing commands as SVG elements. It backs snapshot
// rendering: a widget tree paints into it once and Document returns a
// standalone SVG file.
type SVGCanvas struct {
	width    int
	height   int
	elements []string
}

// NewSVGCanvas creates a recorder for a surface of the given pixel size.
func NewSVGCanvas(width, height int) *SVGCanvas {
	return &SVGCanvas{width: width, height: height}
}

// FillRect implements Canvas.
func (c *SVGCanvas) FillRect(rect geometry.Rect, color Color) {
	if rect.IsEmpty() || color.Alpha() == 0 {
		return
	}
	c.elements = append(c.elements, fmt.Sprintf(
		`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" fill-opacity="%.3f"/>`,
		rect.X, rect.Y, rect.Width, rect.Height, color.HexRGB(), color.Opacity()))
}

// StrokeRect implements Canvas.
func (c *SVGCanvas) StrokeRect(rect geometry.Rect, color Color, strokeWidth float64) {
	if rect.IsEmpty() || color.Alpha() == 0 {
		return
	}
	c.elements = append(c.elements, fmt.Sprintf(
		`<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="%g"/>`,
		rect.X, rect.Y, rect.Width, rect.Height, color.HexRGB(), color.Opacity(), strokeWidth))
}

// DrawLine implements Canvas.
func (c *SVGCanvas) DrawLine(from, to geometry.Point, color Color, strokeWidth float64) {
	if color.Alpha() == 0 {
		return
	}
	c.elements = append(c.elements, fmt.Sprintf(
		`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-opacity="%.3f" stroke-width="%g"/>`,
		from.X, from.Y, to.X, to.Y, color.HexRGB(), color.Opacity(), strokeWidth))
}

// DrawText implements Canvas.
func (c *SVGCanvas) DrawText(text string, origin geometry.Point, style TextStyle) {
	if text == "" || style.Color.Alpha() == 0 {
		return
	}
	size := style.FontSize
	if size <= 0 {
		size = DefaultTextStyle().FontSize
	}
	c.elements = append(c.elements, fmt.Sprintf(
		`<text x="%d" y="%d" fill="%s" font-size="%g" font-family="monospace">%s</text>`,
		origin.X, origin.Y, style.Color.HexRGB(), size, escapeText(text)))
}

// Len returns the number of recorded elements.
func (c *SVGCanvas) Len() int { return len(c.elements) }

// Document returns the recorded commands as a standalone SVG file.
func (c *SVGCanvas) Document() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		c.width, c.height, c.width, c.height)
	b.WriteByte('\n')
	for _, el := range c.elements {
		b.WriteString("  ")
		b.WriteString(el)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string { return textEscaper.Replace(s) }
