package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/render"
)

func TestChartCarvesAxisStrips(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)

	c.SetBounds(geometry.Rect{Width: 500, Height: 400})

	assert.Equal(t, geometry.Rect{X: 400, Y: 0, Width: 100, Height: 400}, c.YAxis().Bounds(),
		"Y axis takes a full-height strip on the right")
	assert.Equal(t, geometry.Rect{X: 0, Y: 300, Width: 400, Height: 100}, c.XAxis().Bounds(),
		"X axis takes the bottom of the remainder")
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300}, c.Viewport().Bounds())
}

func TestChartCarvingClampsOnSmallBounds(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)

	c.SetBounds(geometry.Rect{Width: 80, Height: 50})

	assert.Equal(t, 80, c.YAxis().Bounds().Width, "strip clamps to available width")
	assert.True(t, c.Viewport().Bounds().IsEmpty(), "nothing left for the viewport")
}

func TestChartAxisThicknessReflows(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)
	c.SetBounds(geometry.Rect{Width: 500, Height: 400})

	c.SetAxisThickness(50)

	assert.Equal(t, geometry.Rect{X: 0, Y: 0, Width: 450, Height: 350}, c.Viewport().Bounds())

	c.SetAxisThickness(0)
	assert.Equal(t, 50, c.AxisThickness(), "non-positive thickness is ignored")
}

func TestViewportZoomDelegatesToTransform(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)
	v := c.Viewport()

	v.SetZoomX(0.5, 0)
	require.InDelta(t, 0.5, c.Transform().XWorld().ZoomLevel(), 1e-12)
	require.InDelta(t, 0.0, c.Transform().XWorld().ViewportStart(), 1e-12)
	require.InDelta(t, 0.5, c.Transform().XWorld().ViewportEnd(), 1e-12)

	v.SetZoomY(0.25, 0.5)
	require.InDelta(t, 0.25, c.Transform().YWorld().ZoomLevel(), 1e-12)
}

func TestViewportZoomInAtFullZoomIsNoOp(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)
	v := c.Viewport()
	before := c.Transform().XWorld().ViewportStart()

	v.ZoomIn(geometry.PointF{X: 0.5, Y: 0.5})

	assert.Equal(t, before, c.Transform().XWorld().ViewportStart(),
		"zooming in past level 1 must not move the viewport")
	require.InDelta(t, 1.0, c.Transform().XWorld().ZoomLevel(), 1e-12)
}

func TestViewportZoomOutStepsAroundPivot(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)

	c.Viewport().ZoomOut(geometry.PointF{X: 0.5, Y: 0.5})

	x := c.Transform().XWorld()
	require.InDelta(t, 0.95, x.ZoomLevel(), 1e-12)
	require.InDelta(t, 0.025, x.ViewportStart(), 1e-12)
	require.InDelta(t, 0.975, x.ViewportEnd(), 1e-12)
}

func TestViewportPanConvertsPixelsToWorld(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)
	v := c.Viewport()
	v.SetBounds(geometry.Rect{Width: 400, Height: 300})

	x := c.Transform().XWorld()
	require.NoError(t, x.SetWorldRange(0, 100))
	x.SetViewportRange(0, 50)

	// 80 px drag left at 0.125 world units per pixel moves the window
	// right by 10.
	v.Pan(geometry.Point{X: -80})
	require.InDelta(t, 10.0, x.ViewportStart(), 1e-12)
	require.InDelta(t, 60.0, x.ViewportEnd(), 1e-12)

	// A downward drag moves a bottom-to-top Y window up.
	y := c.Transform().YWorld()
	v.Pan(geometry.Point{Y: 30})
	require.InDelta(t, 0.1, y.ViewportStart(), 1e-12)
}

func TestViewportPanOnZeroBoundsIsNoOp(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)
	v := c.Viewport()

	v.Pan(geometry.Point{X: 100, Y: 100})

	assert.Zero(t, c.Transform().XWorld().ViewportStart())
	assert.Zero(t, c.Transform().YWorld().ViewportStart())
}

func TestAxisPaintsTicksAndLabels(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)
	c.SetBounds(geometry.Rect{Width: 500, Height: 400})

	canvas := render.NewSVGCanvas(500, 400)
	c.XAxis().Paint(canvas)
	doc := canvas.Document()

	assert.Greater(t, canvas.Len(), defaultTickCount, "ticks plus labels plus the axis line")
	assert.Contains(t, doc, "<text", "tick labels are drawn")
	assert.Contains(t, doc, ">1</text>", "the unit viewport end labels the last tick")
	assert.Contains(t, doc, ">0.2</text>")
}

func TestAxisLabelsFollowZoom(t *testing.T) {
	queue := dispatch.NewQueue()
	c := NewChart(queue)
	c.SetBounds(geometry.Rect{Width: 500, Height: 400})
	c.Viewport().SetZoomX(0.5, 0)

	canvas := render.NewSVGCanvas(500, 400)
	c.XAxis().Paint(canvas)

	assert.Contains(t, canvas.Document(), ">0.5</text>",
		"zoomed-in X axis ends at unit 0.5")
}

func TestChartingViewTreeAndLayout(t *testing.T) {
	queue := dispatch.NewQueue()
	view := NewChartingView(queue, "demo")

	require.Len(t, view.Children(), 3, "title, pane row, chart")
	assert.Equal(t, "demo", view.Title().Text())

	view.SetBounds(geometry.Rect{Width: 600, Height: 600})

	chartBounds := view.Chart().Bounds()
	assert.Equal(t, 600, chartBounds.Bottom(), "chart takes the leftover height")
	assert.Equal(t, 600, chartBounds.Width, "column stretch fills the width")
	assert.Greater(t, chartBounds.Height, 300)
	assert.Equal(t, 0, view.Title().Bounds().Y, "title sits at the top")
}

func TestChartingViewPaintProducesDocument(t *testing.T) {
	queue := dispatch.NewQueue()
	view := NewChartingView(queue, "demo")
	view.SetBounds(geometry.Rect{Width: 600, Height: 600})

	canvas := render.NewSVGCanvas(600, 600)
	view.Paint(canvas)
	doc := canvas.Document()

	assert.Contains(t, doc, ">demo</text>")
	assert.Contains(t, doc, render.ColorSeriesPrimary.HexRGB(), "color panes are filled")
	assert.Greater(t, canvas.Len(), 10)
}

func TestChartingViewDisposeCascades(t *testing.T) {
	queue := dispatch.NewQueue()
	view := NewChartingView(queue, "demo")
	chart := view.Chart()

	view.Dispose()
	view.Dispose()

	assert.True(t, view.Disposed())
	assert.True(t, chart.Disposed())
	assert.True(t, chart.Viewport().Disposed())
	assert.Empty(t, view.Children())
}
