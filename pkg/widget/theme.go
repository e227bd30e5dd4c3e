package widget

import "github.com/go-chartview/chartview/pkg/render"

// Theme carries the shared look of the chart widgets.
type Theme struct {
	Background   render.Color
	Surface      render.Color
	Outline      render.Color
	Text         render.Color
	Accent       render.Color
	CornerRadius float64
}

// DefaultTheme returns the dark default look.
func DefaultTheme() Theme {
	return Theme{
		Background:   render.ColorChartBackground,
		Surface:      render.RGB(0x2A, 0x2A, 0x32),
		Outline:      render.ColorAxisLine,
		Text:         render.ColorAxisLabel,
		Accent:       render.ColorSeriesPrimary,
		CornerRadius: 4,
	}
}
