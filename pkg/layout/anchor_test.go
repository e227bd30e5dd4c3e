package layout

import (
	"testing"

	"github.com/go-chartview/chartview/pkg/geometry"
)

func TestAnchorFullStretchIsIdentity(t *testing.T) {
	a := DefaultAnchorLayout()
	parents := []geometry.Rect{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: -20, Y: 13, Width: 640, Height: 480},
		{X: 7, Y: 7, Width: 1, Height: 1},
		{X: 0, Y: 0, Width: 0, Height: 0},
	}
	for _, parent := range parents {
		if got := a.Resolve(parent); got != parent {
			t.Errorf("full-anchor resolve of %+v = %+v, want identity", parent, got)
		}
	}
}

// TestAnchorFixedAxisInvariance verifies that when the anchors coincide on an
// axis, the child's size on that axis equals the offset size regardless of
// the parent extent.
func TestAnchorFixedAxisInvariance(t *testing.T) {
	a := DefaultAnchorLayout()
	a.SetAnchors(geometry.Insets{Left: 0.5, Top: 0, Right: 0.5, Bottom: 1}).
		SetOffset(geometry.RectF{Width: 80, Height: 0})

	for _, parentW := range []int{10, 100, 1000, 12345} {
		parent := geometry.Rect{Width: parentW, Height: 50}
		got := a.Resolve(parent)
		if got.Width != 80 {
			t.Errorf("parent width %d: child width = %d, want 80", parentW, got.Width)
		}
		if got.Height != 50 {
			t.Errorf("parent width %d: stretched height = %d, want 50", parentW, got.Height)
		}
	}
}

func TestAnchorFixedCenteredByPivot(t *testing.T) {
	a := DefaultAnchorLayout()
	a.SetAnchors(geometry.UniformInsets(0.5)).
		SetOffset(geometry.RectF{Width: 100, Height: 50})

	got := a.Resolve(geometry.Rect{X: 0, Y: 0, Width: 200, Height: 200})

	want := geometry.Rect{X: 50, Y: 75, Width: 100, Height: 50}
	if got != want {
		t.Errorf("centered fixed child = %+v, want %+v", got, want)
	}
}

func TestAnchorStretchWithMargins(t *testing.T) {
	a := DefaultAnchorLayout()
	// X/Y act as leading margins, Width/Height as trailing margins when
	// the axis stretches.
	a.SetOffset(geometry.RectF{X: 10, Y: 20, Width: 30, Height: 40})

	got := a.Resolve(geometry.Rect{X: 0, Y: 0, Width: 200, Height: 100})

	want := geometry.Rect{X: 10, Y: 20, Width: 160, Height: 40}
	if got != want {
		t.Errorf("stretched child with margins = %+v, want %+v", got, want)
	}
}

func TestAnchorStretchPivotShiftsPosition(t *testing.T) {
	a := DefaultAnchorLayout()
	a.SetPivot(geometry.PointF{X: 0, Y: 0.5})

	got := a.Resolve(geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})

	// Stretch position is min + (0.5-pivot)*size: pivot 0 shifts right by
	// half the size.
	if got.X != 50 {
		t.Errorf("pivot 0 stretch X = %d, want 50", got.X)
	}
	if got.Y != 0 {
		t.Errorf("pivot 0.5 stretch Y = %d, want 0", got.Y)
	}
}

func TestAnchorFixedPivotAnchorsTrailingEdge(t *testing.T) {
	// Anchor to the parent's right edge, pivot 1: the child's right edge
	// sits on the anchor point.
	a := DefaultAnchorLayout()
	a.SetAnchors(geometry.Insets{Left: 1, Top: 0, Right: 1, Bottom: 0}).
		SetPivot(geometry.PointF{X: 1, Y: 0}).
		SetOffset(geometry.RectF{Width: 40, Height: 20})

	got := a.Resolve(geometry.Rect{X: 0, Y: 0, Width: 300, Height: 100})

	want := geometry.Rect{X: 260, Y: 0, Width: 40, Height: 20}
	if got != want {
		t.Errorf("right-anchored child = %+v, want %+v", got, want)
	}
}

// TestAnchorRoundingIsIndependent documents the rounding rule: position and
// size round independently (math.Round, ties away from zero), so the right
// edge may land one pixel off the directly rounded edge.
func TestAnchorRoundingIsIndependent(t *testing.T) {
	a := DefaultAnchorLayout()
	a.SetAnchors(geometry.Insets{Left: 0.25, Top: 0, Right: 0.75, Bottom: 1})

	got := a.Resolve(geometry.Rect{X: 0, Y: 0, Width: 5, Height: 5})

	// xMin = 1.25 -> 1, width = 2.5 -> 3 (tie rounds away from zero).
	if got.X != 1 || got.Width != 3 {
		t.Errorf("rounded stretch = x %d width %d, want x 1 width 3", got.X, got.Width)
	}
}

func TestAnchorResolveIsPure(t *testing.T) {
	a := DefaultAnchorLayout()
	parent := geometry.Rect{X: 3, Y: 4, Width: 50, Height: 60}

	first := a.Resolve(parent)
	second := a.Resolve(parent)

	if first != second {
		t.Errorf("resolve must be deterministic: %+v vs %+v", first, second)
	}
}
