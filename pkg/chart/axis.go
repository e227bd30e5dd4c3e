package chart

import (
	"fmt"

	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/render"
	"github.com/go-chartview/chartview/pkg/scale"
	"github.com/go-chartview/chartview/pkg/widget"
)

// Orientation selects which axis of the scale transform an Axis widget
// renders.
type Orientation int

const (
	// OrientationX renders the horizontal axis along the top of its strip.
	OrientationX Orientation = iota
	// OrientationY renders the vertical axis along the left of its strip.
	OrientationY
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationX:
		return "x"
	case OrientationY:
		return "y"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// defaultTickCount is the number of tick intervals an axis paints.
const defaultTickCount = 5

// Axis paints tick marks and labels for one axis of a shared scale
// transform. The transform is referenced, not owned; the Chart owns it.
type Axis struct {
	*widget.Base
	orientation Orientation
	transform   *scale.ScaleTransform
	theme       widget.Theme
	tickCount   int
}

// NewAxis creates an axis widget for one orientation of the transform.
func NewAxis(queue *dispatch.Queue, orientation Orientation, transform *scale.ScaleTransform) *Axis {
	return &Axis{
		Base:        widget.NewBase(queue),
		orientation: orientation,
		transform:   transform,
		theme:       widget.DefaultTheme(),
		tickCount:   defaultTickCount,
	}
}

// Orientation returns which axis this widget renders.
func (a *Axis) Orientation() Orientation { return a.orientation }

// SetTheme replaces the axis look.
func (a *Axis) SetTheme(theme widget.Theme) { a.theme = theme }

// SetTickCount sets the number of tick intervals. Counts below one are
// ignored.
func (a *Axis) SetTickCount(n int) {
	if n >= 1 {
		a.tickCount = n
	}
}

// unit returns the unit transform for this axis' orientation.
func (a *Axis) unit() *scale.UnitTransform {
	if a.orientation == OrientationX {
		return a.transform.XUnit()
	}
	return a.transform.YUnit()
}

// direction returns the paint direction for this axis' orientation.
func (a *Axis) direction() scale.AxisDirection {
	if a.orientation == OrientationX {
		return a.transform.XDirection
	}
	return a.transform.YDirection
}

// Paint implements widget.Widget. Ticks are placed at equal fractions of the
// visible unit range; labels come from the unit transform so zooming and
// panning move them.
func (a *Axis) Paint(c render.Canvas) {
	bounds := a.Bounds()
	c.FillRect(bounds, a.theme.Background)

	unit := a.unit()
	start := unit.ViewportStart()
	size := unit.ViewportSize()

	style := render.DefaultTextStyle()
	style.Color = a.theme.Text

	for i := 0; i <= a.tickCount; i++ {
		frac := float64(i) / float64(a.tickCount)
		value := start + size*frac
		label := fmt.Sprintf("%.4g", value)

		pos := frac
		switch a.direction() {
		case scale.DirectionRightToLeft, scale.DirectionBottomToTop:
			pos = 1 - frac
		}

		if a.orientation == OrientationX {
			x := bounds.X + int(pos*float64(bounds.Width))
			c.DrawLine(
				geometry.Point{X: x, Y: bounds.Y},
				geometry.Point{X: x, Y: bounds.Y + tickLength},
				a.theme.Outline, 1)
			c.DrawText(label, geometry.Point{X: x + 2, Y: bounds.Y + tickLength + labelGap}, style)
		} else {
			y := bounds.Y + int(pos*float64(bounds.Height))
			c.DrawLine(
				geometry.Point{X: bounds.X, Y: y},
				geometry.Point{X: bounds.X + tickLength, Y: y},
				a.theme.Outline, 1)
			c.DrawText(label, geometry.Point{X: bounds.X + tickLength + 2, Y: y + labelGap}, style)
		}
	}

	if a.orientation == OrientationX {
		c.DrawLine(
			geometry.Point{X: bounds.X, Y: bounds.Y},
			geometry.Point{X: bounds.Right(), Y: bounds.Y},
			a.theme.Outline, 1)
	} else {
		c.DrawLine(
			geometry.Point{X: bounds.X, Y: bounds.Y},
			geometry.Point{X: bounds.X, Y: bounds.Bottom()},
			a.theme.Outline, 1)
	}
	a.PaintChildren(c)
}

const (
	tickLength = 6
	labelGap   = 10
)
