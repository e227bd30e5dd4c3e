// Package layout implements the chartview layout system: the per-widget
// anchor/pivot placement solver, the flexbox-style distribution algorithm,
// and the preferred-size contract that ties them to widgets.
//
// Layout is pull-based and host-driven: when a widget's bounds change, its
// parent layout strategy queries each child's PreferredSize and assigns child
// rectangles. There is no constraint negotiation and no second pass back up
// the tree.
package layout

import "github.com/go-chartview/chartview/pkg/geometry"

// Participant is the capability interface of a layout-managed child.
// Containers hold Participants directly instead of discovering layout
// awareness at layout time.
type Participant interface {
	// PreferredSize returns the child's sizing contract.
	PreferredSize() *PreferredSize
	// Anchors returns the child's own anchor placement, used by the
	// default container layout.
	Anchors() *AnchorLayout
	// Bounds returns the child's current rectangle.
	Bounds() geometry.Rect
	// SetBounds assigns the rectangle computed by the parent layout.
	SetBounds(bounds geometry.Rect)
}

// ParentLayout arranges a set of children within a parent rectangle.
// Implementations mutate child bounds and return nothing; an empty child set
// is always a no-op.
type ParentLayout interface {
	Apply(parent geometry.Rect, children []Participant)
}

// ValidChildren filters out nil participants and those flagged to be ignored
// by layout.
func ValidChildren(children []Participant) []Participant {
	valid := make([]Participant, 0, len(children))
	for _, child := range children {
		if child == nil || child.PreferredSize().IgnoreLayout() {
			continue
		}
		valid = append(valid, child)
	}
	return valid
}

// ContainerLayout is the default parent layout. A single child fills the
// parent rectangle; with several children each one is placed by its own
// anchor layout.
type ContainerLayout struct{}

// Apply implements ParentLayout.
func (ContainerLayout) Apply(parent geometry.Rect, children []Participant) {
	valid := ValidChildren(children)
	switch len(valid) {
	case 0:
	case 1:
		valid[0].SetBounds(parent)
	default:
		for _, child := range valid {
			child.SetBounds(child.Anchors().Resolve(parent))
		}
	}
}
