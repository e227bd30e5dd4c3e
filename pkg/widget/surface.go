package widget

import (
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/render"
)

// defaultSurfaceExtent is the preferred edge length of a fresh color surface.
const defaultSurfaceExtent = 100

// ColorSurface fills its bounds with a solid color. It is the simplest
// concrete widget and the chart demo's placeholder pane.
type ColorSurface struct {
	*Base
	color render.Color
}

// NewColorSurface creates a surface with a 100x100 preferred size.
func NewColorSurface(queue *dispatch.Queue, color render.Color) *ColorSurface {
	s := &ColorSurface{Base: NewBase(queue), color: color}
	s.PreferredSize().SetPreferredSize(defaultSurfaceExtent, defaultSurfaceExtent, false)
	return s
}

// Color returns the fill color.
func (s *ColorSurface) Color() render.Color { return s.color }

// SetColor replaces the fill color.
func (s *ColorSurface) SetColor(c render.Color) { s.color = c }

// Paint implements Widget.
func (s *ColorSurface) Paint(c render.Canvas) {
	c.FillRect(s.Bounds(), s.color)
	s.PaintChildren(c)
}
