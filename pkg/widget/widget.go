// Package widget provides the chart toolkit's widget scaffolding: a base
// widget carrying bounds, anchors, preferred size and children, plus the
// small set of concrete widgets the chart shells compose.
//
// All widgets live on a single goroutine together with their dispatch queue.
// Bounds are expressed in one shared pixel space: a parent positions its
// children inside its own rectangle, so painting needs no transform stack.
package widget

import (
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/layout"
	"github.com/go-chartview/chartview/pkg/render"
)

// Widget is the tree node contract. It extends the layout participant
// contract with children, painting and teardown.
type Widget interface {
	layout.Participant

	// Children returns the current child list. Callers must not mutate it.
	Children() []Widget

	// Paint draws the widget and its subtree onto the canvas.
	Paint(c render.Canvas)

	// Dispose releases owned children and cancels pending deferred work.
	// Safe to call more than once.
	Dispose()
}

// Base is the common widget implementation. Concrete widgets embed *Base and
// shadow Paint (and, for composite shells, install a layout func).
type Base struct {
	bounds       geometry.Rect
	anchors      layout.AnchorLayout
	ps           layout.PreferredSize
	borders      geometry.Insets
	parentLayout layout.ParentLayout

	children []Widget
	owned    []Widget

	queue    *dispatch.Queue
	relayout *dispatch.Async

	// relayoutListener is registered on every child's PreferredSize so that
	// child sizing churn re-runs this widget's layout on the next drain.
	relayoutListener *layout.ListenerFunc

	// layoutFunc, when set, replaces ApplyLayout as the response to bounds
	// changes and deferred relayout. Composite widgets use it to carve their
	// own regions before delegating.
	layoutFunc func(geometry.Rect)

	disposed bool
}

// NewBase creates a base widget bound to the given dispatch queue. Preferred
// size changes trigger a coalesced relayout on the queue's next drain.
func NewBase(queue *dispatch.Queue) *Base {
	b := &Base{
		queue:   queue,
		anchors: layout.DefaultAnchorLayout(),
	}
	b.relayout = dispatch.NewAsync(queue, b.layoutNow)
	b.relayoutListener = &layout.ListenerFunc{F: b.relayout.Trigger}
	return b
}

// PreferredSize implements layout.Participant.
func (b *Base) PreferredSize() *layout.PreferredSize { return &b.ps }

// Anchors implements layout.Participant.
func (b *Base) Anchors() *layout.AnchorLayout { return &b.anchors }

// Bounds implements layout.Participant.
func (b *Base) Bounds() geometry.Rect { return b.bounds }

// SetBounds implements layout.Participant. Assigning bounds lays the subtree
// out immediately; deferred relayout exists only for preferred-size churn.
func (b *Base) SetBounds(r geometry.Rect) {
	b.bounds = r
	b.layoutNow()
}

// Borders returns the insets subtracted from the bounds before child layout.
func (b *Base) Borders() geometry.Insets { return b.borders }

// SetBorders sets the child layout insets.
func (b *Base) SetBorders(insets geometry.Insets) {
	b.borders = insets
}

// ParentLayout returns the layout strategy applied to children, nil meaning
// the default ContainerLayout.
func (b *Base) ParentLayout() layout.ParentLayout { return b.parentLayout }

// SetParentLayout replaces the child layout strategy.
func (b *Base) SetParentLayout(pl layout.ParentLayout) {
	b.parentLayout = pl
}

// SetLayoutFunc installs a custom response to bounds changes. A nil func
// restores the default (ParentLayout over the border-inset bounds).
func (b *Base) SetLayoutFunc(f func(geometry.Rect)) {
	b.layoutFunc = f
}

// Queue returns the dispatch queue the widget was created on.
func (b *Base) Queue() *dispatch.Queue { return b.queue }

// Children implements Widget.
func (b *Base) Children() []Widget { return b.children }

// AddChild appends a child without taking ownership. Nil children are
// ignored.
func (b *Base) AddChild(w Widget) {
	if w == nil {
		return
	}
	b.children = append(b.children, w)
	w.PreferredSize().AddListener(b.relayoutListener)
}

// RemoveChild removes a child from the child list. The widget is not
// disposed; ownership, if any, is unaffected.
func (b *Base) RemoveChild(w Widget) {
	for i, child := range b.children {
		if child == w {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.PreferredSize().RemoveListener(b.relayoutListener)
			return
		}
	}
}

// Own takes ownership of a widget without adding it as a child. Owned
// widgets are disposed exactly once when this widget is disposed. Owning the
// same widget twice is a no-op.
func (b *Base) Own(w Widget) {
	if w == nil {
		return
	}
	for _, existing := range b.owned {
		if existing == w {
			return
		}
	}
	b.owned = append(b.owned, w)
}

// OwnAndAdd takes ownership of a widget and appends it as a child.
func (b *Base) OwnAndAdd(w Widget) {
	if w == nil {
		return
	}
	b.Own(w)
	b.AddChild(w)
}

// RequestRelayout schedules a coalesced relayout on the next queue drain.
func (b *Base) RequestRelayout() {
	b.relayout.Trigger()
}

// ApplyLayout runs the parent layout over the children inside the
// border-inset bounds.
func (b *Base) ApplyLayout() {
	content := b.borders.SubtractedFrom(b.bounds)
	pl := b.parentLayout
	if pl == nil {
		pl = layout.ContainerLayout{}
	}
	pl.Apply(content, b.participants())
}

// Paint implements Widget by painting the children. Concrete widgets shadow
// this to draw themselves first, then call PaintChildren.
func (b *Base) Paint(c render.Canvas) {
	b.PaintChildren(c)
}

// PaintChildren paints every child in order.
func (b *Base) PaintChildren(c render.Canvas) {
	for _, child := range b.children {
		child.Paint(c)
	}
}

// Dispose implements Widget. Owned children are disposed exactly once; the
// pending relayout, if any, is permanently canceled.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.relayout.Close()
	for _, child := range b.children {
		child.PreferredSize().RemoveListener(b.relayoutListener)
	}
	owned := b.owned
	b.owned = nil
	b.children = nil
	for _, w := range owned {
		w.Dispose()
	}
}

// Disposed reports whether Dispose has run.
func (b *Base) Disposed() bool { return b.disposed }

func (b *Base) layoutNow() {
	if b.layoutFunc != nil {
		b.layoutFunc(b.bounds)
		return
	}
	b.ApplyLayout()
}

func (b *Base) participants() []layout.Participant {
	out := make([]layout.Participant, len(b.children))
	for i, child := range b.children {
		out[i] = child
	}
	return out
}
