package layout

import (
	"testing"

	"github.com/go-chartview/chartview/pkg/geometry"
)

// stubWidget is a minimal Participant for layout tests.
type stubWidget struct {
	ps     PreferredSize
	anchor AnchorLayout
	bounds geometry.Rect
}

func newStub(prefW, prefH int) *stubWidget {
	s := &stubWidget{anchor: DefaultAnchorLayout()}
	s.ps.SetPreferredSize(prefW, prefH, false)
	return s
}

func (s *stubWidget) PreferredSize() *PreferredSize  { return &s.ps }
func (s *stubWidget) Anchors() *AnchorLayout         { return &s.anchor }
func (s *stubWidget) Bounds() geometry.Rect          { return s.bounds }
func (s *stubWidget) SetBounds(bounds geometry.Rect) { s.bounds = bounds }

func participants(stubs ...*stubWidget) []Participant {
	out := make([]Participant, len(stubs))
	for i, s := range stubs {
		out[i] = s
	}
	return out
}

func TestValidChildrenFiltersIgnoredAndNil(t *testing.T) {
	a := newStub(10, 10)
	b := newStub(10, 10)
	b.ps.SetIgnoreLayout(true, false)
	c := newStub(10, 10)

	valid := ValidChildren([]Participant{a, nil, b, c})

	if len(valid) != 2 {
		t.Fatalf("expected 2 valid children, got %d", len(valid))
	}
	if valid[0] != Participant(a) || valid[1] != Participant(c) {
		t.Error("valid children should preserve order and skip ignored/nil entries")
	}
}

func TestContainerLayoutSingleChildFillsParent(t *testing.T) {
	child := newStub(10, 10)
	parent := geometry.Rect{X: 5, Y: 7, Width: 300, Height: 200}

	ContainerLayout{}.Apply(parent, participants(child))

	if child.bounds != parent {
		t.Errorf("single child should fill parent, got %+v", child.bounds)
	}
}

func TestContainerLayoutMultipleChildrenUseOwnAnchors(t *testing.T) {
	full := newStub(10, 10)
	fixed := newStub(10, 10)
	fixed.anchor.SetAnchors(geometry.Insets{Left: 0, Top: 0, Right: 0, Bottom: 0}).
		SetPivot(geometry.PointF{X: 0, Y: 0}).
		SetOffset(geometry.RectF{X: 10, Y: 20, Width: 50, Height: 40})
	parent := geometry.Rect{X: 0, Y: 0, Width: 200, Height: 100}

	ContainerLayout{}.Apply(parent, participants(full, fixed))

	if full.bounds != parent {
		t.Errorf("fully anchored child should fill parent, got %+v", full.bounds)
	}
	want := geometry.Rect{X: 10, Y: 20, Width: 50, Height: 40}
	if fixed.bounds != want {
		t.Errorf("anchored child bounds = %+v, want %+v", fixed.bounds, want)
	}
}

func TestContainerLayoutEmptyIsNoOp(t *testing.T) {
	ignored := newStub(10, 10)
	ignored.ps.SetIgnoreLayout(true, false)
	ignored.bounds = geometry.Rect{X: 1, Y: 2, Width: 3, Height: 4}

	ContainerLayout{}.Apply(geometry.Rect{Width: 100, Height: 100}, participants(ignored))

	want := geometry.Rect{X: 1, Y: 2, Width: 3, Height: 4}
	if ignored.bounds != want {
		t.Errorf("ignored child bounds must not change, got %+v", ignored.bounds)
	}
}
