package chart

import (
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/render"
	"github.com/go-chartview/chartview/pkg/scale"
	"github.com/go-chartview/chartview/pkg/widget"
)

// zoomStep is the zoom-level change of one ZoomIn/ZoomOut call.
const zoomStep = 0.05

// Viewport is the chart's plotting area. It references the chart's scale
// transform and translates pixel-space gestures into world-space zoom and
// pan operations.
type Viewport struct {
	*widget.Base
	transform *scale.ScaleTransform
	theme     widget.Theme
}

// NewViewport creates a viewport over the given transform.
func NewViewport(queue *dispatch.Queue, transform *scale.ScaleTransform) *Viewport {
	return &Viewport{
		Base:      widget.NewBase(queue),
		transform: transform,
		theme:     widget.DefaultTheme(),
	}
}

// SetTheme replaces the viewport look.
func (v *Viewport) SetTheme(theme widget.Theme) { v.theme = theme }

// ZoomIn zooms both axes in by one step around the normalized pivot point.
func (v *Viewport) ZoomIn(pivot geometry.PointF) {
	v.transform.XWorld().ZoomIn(zoomStep, pivot.X)
	v.transform.YWorld().ZoomIn(zoomStep, pivot.Y)
}

// ZoomOut zooms both axes out by one step around the normalized pivot point.
func (v *Viewport) ZoomOut(pivot geometry.PointF) {
	v.transform.XWorld().ZoomOut(zoomStep, pivot.X)
	v.transform.YWorld().ZoomOut(zoomStep, pivot.Y)
}

// SetZoomX sets the horizontal zoom level around the normalized pivot.
func (v *Viewport) SetZoomX(zoom, pivot float64) {
	v.transform.XWorld().SetZoomLevel(zoom, pivot)
}

// SetZoomY sets the vertical zoom level around the normalized pivot.
func (v *Viewport) SetZoomY(zoom, pivot float64) {
	v.transform.YWorld().SetZoomLevel(zoom, pivot)
}

// Pan shifts the visible window by a pixel delta. Pixel deltas convert to
// world deltas through the current pixels-per-world-unit density, honoring
// the axis directions (dragging right with a left-to-right X axis moves the
// window left, matching the content-follows-pointer convention).
func (v *Viewport) Pan(deltaPx geometry.Point) {
	bounds := v.Bounds()
	x := v.transform.XWorld()
	y := v.transform.YWorld()

	if bounds.Width > 0 && x.ViewportSize() != 0 {
		worldPerPx := x.ViewportSize() / float64(bounds.Width)
		dx := -float64(deltaPx.X) * worldPerPx
		if v.transform.XDirection == scale.DirectionRightToLeft {
			dx = -dx
		}
		x.Pan(dx)
	}
	if bounds.Height > 0 && y.ViewportSize() != 0 {
		worldPerPx := y.ViewportSize() / float64(bounds.Height)
		dy := -float64(deltaPx.Y) * worldPerPx
		if v.transform.YDirection == scale.DirectionBottomToTop {
			dy = -dy
		}
		y.Pan(dy)
	}
}

// Paint implements widget.Widget.
func (v *Viewport) Paint(c render.Canvas) {
	bounds := v.Bounds()
	c.FillRect(bounds, v.theme.Background)
	c.StrokeRect(bounds, v.theme.Outline, 1)
	v.PaintChildren(c)
}
