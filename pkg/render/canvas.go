// Package render defines the minimal drawing surface the chart widgets paint
// onto, plus an SVG recorder used by snapshots and the demo command. The host
// application supplies a real Canvas; widgets only ever see the interface.
package render

import "github.com/go-chartview/chartview/pkg/geometry"

// Canvas records or renders drawing commands. Coordinates are in the widget
// tree's pixel space.
type Canvas interface {
	// FillRect fills a rectangle with a solid color.
	FillRect(rect geometry.Rect, color Color)

	// StrokeRect outlines a rectangle.
	StrokeRect(rect geometry.Rect, color Color, strokeWidth float64)

	// DrawLine draws a line segment between two points.
	DrawLine(from, to geometry.Point, color Color, strokeWidth float64)

	// DrawText draws a single line of text with its baseline-left origin at
	// the given point.
	DrawText(text string, origin geometry.Point, style TextStyle)
}
