// Package scale implements the chart coordinate system: one-dimensional
// world/viewport mappings with zoom and pivot-based rescaling, a semantic
// unit layer on top, and the 2D aggregate used by the chart widgets.
//
// The viewport of an AxisTransform is a window within world space, expressed
// in world units. Zoom level is the ratio viewportSize/worldSize and is
// clamped to [0, 1] by the stepped zoom operations: the viewport never grows
// past the full world extent. Because viewport and world share units,
// WorldToViewport and ViewportToWorld are pure translations; converting into
// a semantic unit space is the job of UnitTransform.
package scale

import (
	"math"

	"github.com/go-chartview/chartview/pkg/errors"
)

// AxisTransform maps between a world interval and a viewport interval on a
// single axis. The world range is never degenerate: the constructor and the
// world-range setter reject worldStart == worldEnd, so the zoom-level
// division is always defined.
type AxisTransform struct {
	worldStart    float64
	worldEnd      float64
	viewportStart float64
	viewportEnd   float64
}

// NewAxisTransform creates an axis transform over the given world and
// viewport intervals. It fails if the world range is degenerate.
func NewAxisTransform(worldStart, worldEnd, viewportStart, viewportEnd float64) (*AxisTransform, error) {
	if worldStart == worldEnd {
		return nil, errors.Newf("scale.NewAxisTransform", errors.KindTransform,
			"degenerate world range [%g, %g]", worldStart, worldEnd)
	}
	return &AxisTransform{
		worldStart:    worldStart,
		worldEnd:      worldEnd,
		viewportStart: viewportStart,
		viewportEnd:   viewportEnd,
	}, nil
}

// DefaultAxisTransform creates the identity transform: world [0, 1] mapped
// onto viewport [0, 1].
func DefaultAxisTransform() *AxisTransform {
	return &AxisTransform{worldStart: 0, worldEnd: 1, viewportStart: 0, viewportEnd: 1}
}

// WorldStart returns the start of the world interval.
func (t *AxisTransform) WorldStart() float64 { return t.worldStart }

// WorldEnd returns the end of the world interval.
func (t *AxisTransform) WorldEnd() float64 { return t.worldEnd }

// WorldSize returns the signed world extent.
func (t *AxisTransform) WorldSize() float64 { return t.worldEnd - t.worldStart }

// ViewportStart returns the start of the viewport window, in world units.
func (t *AxisTransform) ViewportStart() float64 { return t.viewportStart }

// ViewportEnd returns the end of the viewport window, in world units.
func (t *AxisTransform) ViewportEnd() float64 { return t.viewportEnd }

// ViewportSize returns the signed viewport extent.
func (t *AxisTransform) ViewportSize() float64 { return t.viewportEnd - t.viewportStart }

// ZoomLevel returns viewportSize / worldSize.
func (t *AxisTransform) ZoomLevel() float64 {
	return t.ViewportSize() / t.WorldSize()
}

// SetWorldRange replaces the world interval. It fails if the new range is
// degenerate, leaving the transform unchanged.
func (t *AxisTransform) SetWorldRange(start, end float64) error {
	if start == end {
		return errors.Newf("scale.AxisTransform.SetWorldRange", errors.KindTransform,
			"degenerate world range [%g, %g]", start, end)
	}
	t.worldStart = start
	t.worldEnd = end
	return nil
}

// SetViewportStart moves the start of the viewport window.
func (t *AxisTransform) SetViewportStart(value float64) { t.viewportStart = value }

// SetViewportEnd moves the end of the viewport window.
func (t *AxisTransform) SetViewportEnd(value float64) { t.viewportEnd = value }

// SetViewportRange replaces the viewport window.
func (t *AxisTransform) SetViewportRange(start, end float64) {
	t.viewportStart = start
	t.viewportEnd = end
}

// SetZoomLevel resizes the viewport to worldSize * zoom, keeping the point at
// fractional position pivot (0 = start, 1 = end) of the current viewport
// fixed.
func (t *AxisTransform) SetZoomLevel(zoom, pivot float64) {
	newViewportSize := t.WorldSize() * zoom
	center := t.viewportStart + t.ViewportSize()*pivot
	t.viewportStart = center - newViewportSize*pivot
	t.viewportEnd = t.viewportStart + newViewportSize
}

// ZoomIn raises the zoom level by step around the pivot. The resulting level
// is clamped to [0, 1]; when clamping leaves the level unchanged this is a
// no-op. The upper clamp caps magnification at the full world extent, a
// policy inherited from the chart design.
func (t *AxisTransform) ZoomIn(step, pivot float64) {
	zoom := t.ZoomLevel()
	next := clamp(zoom+step, 0, 1)
	if next != zoom {
		t.SetZoomLevel(next, pivot)
	}
}

// ZoomOut lowers the zoom level by step around the pivot. It is ZoomIn with
// the step negated.
func (t *AxisTransform) ZoomOut(step, pivot float64) {
	t.ZoomIn(-step, pivot)
}

// Pan shifts the viewport window by delta world units.
func (t *AxisTransform) Pan(delta float64) {
	t.viewportStart += delta
	t.viewportEnd += delta
}

// WorldToViewport converts a world coordinate to a viewport-relative
// coordinate. Viewport and world share units, so this is a translation.
func (t *AxisTransform) WorldToViewport(k float64) float64 {
	return k - t.viewportStart
}

// ViewportToWorld converts a viewport-relative coordinate back to a world
// coordinate.
func (t *AxisTransform) ViewportToWorld(k float64) float64 {
	return t.viewportStart + k
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
