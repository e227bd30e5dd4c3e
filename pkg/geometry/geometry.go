// Package geometry provides the pixel-space primitives shared by the layout
// and chart packages: integer rectangles for widget bounds, float rectangles
// for layout offsets, and inset borders.
package geometry

import "math"

// Point represents a 2D point in integer pixel coordinates.
type Point struct {
	X int
	Y int
}

// PointF represents a 2D point or normalized anchor in float coordinates.
type PointF struct {
	X float64
	Y float64
}

// Rect represents a widget rectangle in integer pixel coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.Right() && p.Y < r.Bottom()
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// WithZeroOrigin returns the rectangle moved to (0, 0), keeping its size.
func (r Rect) WithZeroOrigin() Rect {
	return Rect{Width: r.Width, Height: r.Height}
}

// RemoveFromLeft carves a strip of the given width off the left edge.
// The receiver shrinks to the remainder and the carved strip is returned.
func (r *Rect) RemoveFromLeft(amount int) Rect {
	amount = clampSpan(amount, r.Width)
	carved := Rect{X: r.X, Y: r.Y, Width: amount, Height: r.Height}
	r.X += amount
	r.Width -= amount
	return carved
}

// RemoveFromRight carves a strip of the given width off the right edge.
// The receiver shrinks to the remainder and the carved strip is returned.
func (r *Rect) RemoveFromRight(amount int) Rect {
	amount = clampSpan(amount, r.Width)
	carved := Rect{X: r.Right() - amount, Y: r.Y, Width: amount, Height: r.Height}
	r.Width -= amount
	return carved
}

// RemoveFromTop carves a strip of the given height off the top edge.
// The receiver shrinks to the remainder and the carved strip is returned.
func (r *Rect) RemoveFromTop(amount int) Rect {
	amount = clampSpan(amount, r.Height)
	carved := Rect{X: r.X, Y: r.Y, Width: r.Width, Height: amount}
	r.Y += amount
	r.Height -= amount
	return carved
}

// RemoveFromBottom carves a strip of the given height off the bottom edge.
// The receiver shrinks to the remainder and the carved strip is returned.
func (r *Rect) RemoveFromBottom(amount int) Rect {
	amount = clampSpan(amount, r.Height)
	carved := Rect{X: r.X, Y: r.Bottom() - amount, Width: r.Width, Height: amount}
	r.Height -= amount
	return carved
}

func clampSpan(amount, span int) int {
	if amount < 0 {
		return 0
	}
	if amount > span {
		return span
	}
	return amount
}

// RectF represents a rectangle in float coordinates. The layout system uses
// it for anchor offsets, where X/Y act as leading offsets and Width/Height as
// either a fixed size or trailing margins depending on the anchor mode.
type RectF struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Round converts to an integer Rect. Position and size round independently
// with math.Round (ties away from zero), so X+Width of the result may differ
// by one pixel from rounding the right edge directly.
func (r RectF) Round() Rect {
	return Rect{
		X:      int(math.Round(r.X)),
		Y:      int(math.Round(r.Y)),
		Width:  int(math.Round(r.Width)),
		Height: int(math.Round(r.Height)),
	}
}

// Insets represents per-edge values: widget borders, or the normalized
// anchor fractions of an anchor layout.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformInsets creates insets with the same value on every edge.
func UniformInsets(value float64) Insets {
	return Insets{Left: value, Top: value, Right: value, Bottom: value}
}

// SubtractedFrom shrinks the rectangle by the insets on each edge.
// Fractional insets round with math.Round.
func (in Insets) SubtractedFrom(r Rect) Rect {
	left := int(math.Round(in.Left))
	top := int(math.Round(in.Top))
	right := int(math.Round(in.Right))
	bottom := int(math.Round(in.Bottom))
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
}

// IsZero reports whether all edges are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}
