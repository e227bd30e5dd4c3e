// Package chart assembles the chart widgets: the chart shell with its axes
// and viewport, and the charting view root that hosts it next to the demo
// panes.
package chart

import (
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/render"
	"github.com/go-chartview/chartview/pkg/scale"
	"github.com/go-chartview/chartview/pkg/widget"
)

// defaultAxisThickness is the pixel depth of the axis strips.
const defaultAxisThickness = 100

// Chart owns the scale transform and splits its bounds into a Y-axis strip
// on the right, an X-axis strip at the bottom, and the viewport taking the
// rest.
type Chart struct {
	*widget.Base
	transform *scale.ScaleTransform
	xAxis     *Axis
	yAxis     *Axis
	viewport  *Viewport

	axisThickness int
}

// NewChart creates a chart with a default transform and its three regions.
func NewChart(queue *dispatch.Queue) *Chart {
	c := &Chart{
		Base:          widget.NewBase(queue),
		transform:     scale.NewScaleTransform(),
		axisThickness: defaultAxisThickness,
	}
	c.xAxis = NewAxis(queue, OrientationX, c.transform)
	c.yAxis = NewAxis(queue, OrientationY, c.transform)
	c.viewport = NewViewport(queue, c.transform)
	c.OwnAndAdd(c.viewport)
	c.OwnAndAdd(c.xAxis)
	c.OwnAndAdd(c.yAxis)
	c.SetLayoutFunc(c.carveRegions)
	return c
}

// Transform returns the chart's scale transform.
func (c *Chart) Transform() *scale.ScaleTransform { return c.transform }

// XAxis returns the horizontal axis widget.
func (c *Chart) XAxis() *Axis { return c.xAxis }

// YAxis returns the vertical axis widget.
func (c *Chart) YAxis() *Axis { return c.yAxis }

// Viewport returns the plotting-area widget.
func (c *Chart) Viewport() *Viewport { return c.viewport }

// AxisThickness returns the pixel depth of the axis strips.
func (c *Chart) AxisThickness() int { return c.axisThickness }

// SetAxisThickness sets the strip depth and re-lays the regions out.
// Non-positive values are ignored.
func (c *Chart) SetAxisThickness(px int) {
	if px <= 0 {
		return
	}
	c.axisThickness = px
	c.carveRegions(c.Bounds())
}

// carveRegions responds to bounds changes. The Y axis takes a full-height
// strip on the right, the X axis a strip along the remaining bottom, the
// viewport everything left over.
func (c *Chart) carveRegions(bounds geometry.Rect) {
	remaining := bounds
	yStrip := remaining.RemoveFromRight(c.axisThickness)
	xStrip := remaining.RemoveFromBottom(c.axisThickness)

	c.yAxis.SetBounds(yStrip)
	c.xAxis.SetBounds(xStrip)
	c.viewport.SetBounds(remaining)
}

// Paint implements widget.Widget.
func (c *Chart) Paint(canvas render.Canvas) {
	canvas.FillRect(c.Bounds(), widget.DefaultTheme().Background)
	c.PaintChildren(canvas)
}
