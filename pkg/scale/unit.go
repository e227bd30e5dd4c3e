package scale

import "github.com/go-chartview/chartview/pkg/errors"

// UnitTransform layers a semantic unit range (price, time, ...) over the
// world range of an AxisTransform. Conversions are two-stage: axis viewport
// coordinates and axis world coordinates interpolate linearly into the unit
// range and back.
//
// The transform holds a non-owning reference to its axis: the axis must
// outlive the unit transform. ScaleTransform keeps both inside one aggregate
// so the lifetime rule is structural rather than documented-only.
type UnitTransform struct {
	axis       *AxisTransform
	worldStart float64
	worldEnd   float64
}

// NewUnitTransform creates a unit transform over the given axis with the
// given unit range. It fails on a nil axis or a degenerate unit range.
func NewUnitTransform(axis *AxisTransform, worldStart, worldEnd float64) (*UnitTransform, error) {
	if axis == nil {
		return nil, errors.Newf("scale.NewUnitTransform", errors.KindTransform, "nil axis transform")
	}
	if worldStart == worldEnd {
		return nil, errors.Newf("scale.NewUnitTransform", errors.KindTransform,
			"degenerate unit range [%g, %g]", worldStart, worldEnd)
	}
	return &UnitTransform{axis: axis, worldStart: worldStart, worldEnd: worldEnd}, nil
}

// Axis returns the referenced axis transform.
func (t *UnitTransform) Axis() *AxisTransform { return t.axis }

// WorldStart returns the start of the unit range.
func (t *UnitTransform) WorldStart() float64 { return t.worldStart }

// WorldEnd returns the end of the unit range.
func (t *UnitTransform) WorldEnd() float64 { return t.worldEnd }

// WorldSize returns the signed unit extent.
func (t *UnitTransform) WorldSize() float64 { return t.worldEnd - t.worldStart }

// SetWorldRange replaces the unit range. It fails if the new range is
// degenerate, leaving the transform unchanged.
func (t *UnitTransform) SetWorldRange(start, end float64) error {
	if start == end {
		return errors.Newf("scale.UnitTransform.SetWorldRange", errors.KindTransform,
			"degenerate unit range [%g, %g]", start, end)
	}
	t.worldStart = start
	t.worldEnd = end
	return nil
}

// ViewportStart returns the axis viewport start expressed in unit space.
func (t *UnitTransform) ViewportStart() float64 {
	return t.AxisWorldToUnitWorld(t.axis.ViewportStart())
}

// ViewportEnd returns the axis viewport end expressed in unit space.
func (t *UnitTransform) ViewportEnd() float64 {
	return t.AxisWorldToUnitWorld(t.axis.ViewportEnd())
}

// ViewportSize returns the signed viewport extent in unit space.
func (t *UnitTransform) ViewportSize() float64 {
	return t.ViewportEnd() - t.ViewportStart()
}

// SetViewportStart moves the axis viewport start to the given unit value.
func (t *UnitTransform) SetViewportStart(value float64) {
	t.axis.SetViewportStart(t.UnitWorldToAxisWorld(value))
}

// SetViewportEnd moves the axis viewport end to the given unit value.
func (t *UnitTransform) SetViewportEnd(value float64) {
	t.axis.SetViewportEnd(t.UnitWorldToAxisWorld(value))
}

// ZoomLevel returns viewportSize / worldSize in unit space.
func (t *UnitTransform) ZoomLevel() float64 {
	return t.ViewportSize() / t.WorldSize()
}

// SetZoomLevel delegates to the axis transform; zoom is not reinterpreted in
// unit space.
func (t *UnitTransform) SetZoomLevel(zoom, pivot float64) {
	t.axis.SetZoomLevel(zoom, pivot)
}

// ZoomIn delegates to the axis transform.
func (t *UnitTransform) ZoomIn(step, pivot float64) {
	t.axis.ZoomIn(step, pivot)
}

// ZoomOut delegates to the axis transform.
func (t *UnitTransform) ZoomOut(step, pivot float64) {
	t.axis.ZoomOut(step, pivot)
}

// AxisWorldToUnitWorld converts an axis world coordinate to unit space.
func (t *UnitTransform) AxisWorldToUnitWorld(k float64) float64 {
	return mapValue(k, t.axis.WorldStart(), t.axis.WorldEnd(), t.worldStart, t.worldEnd)
}

// UnitWorldToAxisWorld converts a unit coordinate to axis world space.
func (t *UnitTransform) UnitWorldToAxisWorld(k float64) float64 {
	return mapValue(k, t.worldStart, t.worldEnd, t.axis.WorldStart(), t.axis.WorldEnd())
}

// AxisViewportToUnitViewport converts an axis viewport coordinate to unit
// space, interpolating across the visible window.
func (t *UnitTransform) AxisViewportToUnitViewport(k float64) float64 {
	return mapValue(k, t.axis.ViewportStart(), t.axis.ViewportEnd(), t.worldStart, t.worldEnd)
}

// UnitViewportToAxisViewport converts a unit coordinate to an axis viewport
// coordinate across the visible window.
func (t *UnitTransform) UnitViewportToAxisViewport(k float64) float64 {
	return mapValue(k, t.worldStart, t.worldEnd, t.axis.ViewportStart(), t.axis.ViewportEnd())
}

// mapValue interpolates x from [inMin, inMax] to [outMin, outMax]. The source
// range must be non-degenerate; the constructors and setters above guarantee
// that for world ranges, and callers of the viewport conversions must not
// collapse the viewport window to a point.
func mapValue(x, inMin, inMax, outMin, outMax float64) float64 {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
