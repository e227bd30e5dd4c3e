package scale

import "fmt"

// AxisDirection describes the orientation of an axis on screen.
type AxisDirection int

const (
	// DirectionLeftToRight runs the X axis left to right.
	DirectionLeftToRight AxisDirection = iota
	// DirectionRightToLeft runs the X axis right to left.
	DirectionRightToLeft
	// DirectionBottomToTop runs the Y axis bottom to top.
	DirectionBottomToTop
	// DirectionTopToBottom runs the Y axis top to bottom.
	DirectionTopToBottom
)

// String returns a human-readable representation of the axis direction.
func (d AxisDirection) String() string {
	switch d {
	case DirectionLeftToRight:
		return "left_to_right"
	case DirectionRightToLeft:
		return "right_to_left"
	case DirectionBottomToTop:
		return "bottom_to_top"
	case DirectionTopToBottom:
		return "top_to_bottom"
	default:
		return fmt.Sprintf("AxisDirection(%d)", int(d))
	}
}

// ScaleTransform is the chart's 2D coordinate system: a world/viewport axis
// transform and a unit transform per axis, plus screen directionality.
//
// The aggregate owns all four transforms. XUnit references XWorld and YUnit
// references YWorld; the pairing is fixed at construction and never rebound,
// which makes the unit transforms' borrow of their axes structurally sound.
type ScaleTransform struct {
	xWorld AxisTransform
	yWorld AxisTransform
	xUnit  UnitTransform
	yUnit  UnitTransform

	// XDirection is DirectionLeftToRight or DirectionRightToLeft.
	XDirection AxisDirection
	// YDirection is DirectionBottomToTop or DirectionTopToBottom.
	YDirection AxisDirection
}

// NewScaleTransform creates a scale transform with identity axes ([0, 1]
// world onto [0, 1] viewport, unit ranges [0, 1]) and the conventional
// directions: X left to right, Y bottom to top.
func NewScaleTransform() *ScaleTransform {
	s := &ScaleTransform{
		xWorld:     *DefaultAxisTransform(),
		yWorld:     *DefaultAxisTransform(),
		XDirection: DirectionLeftToRight,
		YDirection: DirectionBottomToTop,
	}
	s.xUnit = UnitTransform{axis: &s.xWorld, worldStart: 0, worldEnd: 1}
	s.yUnit = UnitTransform{axis: &s.yWorld, worldStart: 0, worldEnd: 1}
	return s
}

// XWorld returns the X axis world/viewport transform.
func (s *ScaleTransform) XWorld() *AxisTransform { return &s.xWorld }

// YWorld returns the Y axis world/viewport transform.
func (s *ScaleTransform) YWorld() *AxisTransform { return &s.yWorld }

// XUnit returns the unit transform bound to the X axis.
func (s *ScaleTransform) XUnit() *UnitTransform { return &s.xUnit }

// YUnit returns the unit transform bound to the Y axis.
func (s *ScaleTransform) YUnit() *UnitTransform { return &s.yUnit }
