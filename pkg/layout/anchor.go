package layout

import "github.com/go-chartview/chartview/pkg/geometry"

// AnchorLayout places a single widget inside a parent rectangle using
// normalized anchors, a pivot and a pixel offset.
//
// Anchors are fractions of the parent extent per edge. When the start and
// end anchors of an axis coincide the axis is non-stretching: the offset's
// Width/Height give a fixed size and the offset's X/Y shift the anchored
// point. When they differ the axis stretches to fill the anchored span, with
// the offset's X/Y as leading margin and Width/Height reused as trailing
// margin.
//
// Borders are stored for symmetry with the widget contract but not yet
// applied by the resolver.
type AnchorLayout struct {
	pivot   geometry.PointF
	offset  geometry.RectF
	borders geometry.Insets
	anchors geometry.Insets
}

// DefaultAnchorLayout returns an anchor layout that stretches over the whole
// parent: anchors {0, 0, 1, 1}, pivot (0.5, 0.5), zero offset.
func DefaultAnchorLayout() AnchorLayout {
	return AnchorLayout{
		pivot:   geometry.PointF{X: 0.5, Y: 0.5},
		anchors: geometry.Insets{Left: 0, Top: 0, Right: 1, Bottom: 1},
	}
}

// Resolve computes the child rectangle for the given parent rectangle.
//
// Per axis: min = parentOrigin + anchorStart*parentSize + offsetStart and
// max = parentOrigin + anchorEnd*parentSize - offsetEnd. A stretching axis
// takes size max-min and position min + (0.5-pivot)*size; a fixed axis takes
// the offset size and position min - pivot*size. Position and size round
// independently with math.Round (ties away from zero), so the right edge of
// the result can differ by one pixel from rounding the exact right edge.
//
// Resolve is a pure function with no error conditions.
func (a *AnchorLayout) Resolve(parent geometry.Rect) geometry.Rect {
	stretchX := a.anchors.Left != a.anchors.Right
	stretchY := a.anchors.Top != a.anchors.Bottom

	parentX := float64(parent.X)
	parentY := float64(parent.Y)
	parentW := float64(parent.Width)
	parentH := float64(parent.Height)

	xMin := parentX + a.anchors.Left*parentW + a.offset.X
	yMin := parentY + a.anchors.Top*parentH + a.offset.Y
	xMax := parentX + a.anchors.Right*parentW - a.offset.Width
	yMax := parentY + a.anchors.Bottom*parentH - a.offset.Height

	var x, y, w, h float64

	if stretchX {
		w = xMax - xMin
		x = xMin + (0.5-a.pivot.X)*w
	} else {
		w = a.offset.Width
		x = xMin - a.pivot.X*w
	}

	if stretchY {
		h = yMax - yMin
		y = yMin + (0.5-a.pivot.Y)*h
	} else {
		h = a.offset.Height
		y = yMin - a.pivot.Y*h
	}

	return geometry.RectF{X: x, Y: y, Width: w, Height: h}.Round()
}

// Pivot returns the normalized pivot point.
func (a *AnchorLayout) Pivot() geometry.PointF { return a.pivot }

// SetPivot sets the normalized pivot point.
func (a *AnchorLayout) SetPivot(p geometry.PointF) *AnchorLayout {
	a.pivot = p
	return a
}

// SetPivotX sets the horizontal pivot.
func (a *AnchorLayout) SetPivotX(x float64) *AnchorLayout {
	a.pivot.X = x
	return a
}

// SetPivotY sets the vertical pivot.
func (a *AnchorLayout) SetPivotY(y float64) *AnchorLayout {
	a.pivot.Y = y
	return a
}

// Offset returns the pixel offset rectangle.
func (a *AnchorLayout) Offset() geometry.RectF { return a.offset }

// SetOffset sets the pixel offset rectangle.
func (a *AnchorLayout) SetOffset(o geometry.RectF) *AnchorLayout {
	a.offset = o
	return a
}

// SetX sets the leading horizontal offset.
func (a *AnchorLayout) SetX(v float64) *AnchorLayout {
	a.offset.X = v
	return a
}

// SetY sets the leading vertical offset.
func (a *AnchorLayout) SetY(v float64) *AnchorLayout {
	a.offset.Y = v
	return a
}

// SetWidth sets the offset width: the fixed width when the X axis is
// anchored, the trailing margin when it stretches.
func (a *AnchorLayout) SetWidth(v float64) *AnchorLayout {
	a.offset.Width = v
	return a
}

// SetHeight sets the offset height: the fixed height when the Y axis is
// anchored, the trailing margin when it stretches.
func (a *AnchorLayout) SetHeight(v float64) *AnchorLayout {
	a.offset.Height = v
	return a
}

// Borders returns the reserved border insets.
func (a *AnchorLayout) Borders() geometry.Insets { return a.borders }

// SetBorders sets the reserved border insets.
func (a *AnchorLayout) SetBorders(b geometry.Insets) *AnchorLayout {
	a.borders = b
	return a
}

// Anchors returns the normalized anchor fractions.
func (a *AnchorLayout) Anchors() geometry.Insets { return a.anchors }

// SetAnchors sets the normalized anchor fractions
// (left/top/right/bottom, each normally in [0, 1]).
func (a *AnchorLayout) SetAnchors(anchors geometry.Insets) *AnchorLayout {
	a.anchors = anchors
	return a
}
