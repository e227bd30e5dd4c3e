package chart

import (
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/layout"
	"github.com/go-chartview/chartview/pkg/render"
	"github.com/go-chartview/chartview/pkg/widget"
)

// ChartingView is the root widget: a title label and a row of color panes
// above the chart, stacked in a column. The pane row's flex options are
// configurable; the column itself stretches the chart over the leftover
// height.
type ChartingView struct {
	*widget.Base
	theme widget.Theme

	title *widget.Label
	panes *widget.Base
	chart *Chart
}

// NewChartingView builds the demo tree on the given queue.
func NewChartingView(queue *dispatch.Queue, title string) *ChartingView {
	v := &ChartingView{
		Base:  widget.NewBase(queue),
		theme: widget.DefaultTheme(),
	}

	v.title = widget.NewLabel(queue, title)
	v.OwnAndAdd(v.title)

	v.panes = widget.NewBase(queue)
	v.panes.SetParentLayout(layout.NewFlexLayout(layout.HorizontalItems()))
	for _, color := range []render.Color{
		render.ColorSeriesPrimary,
		render.ColorSeriesSecondary,
		render.ColorSeriesTertiary,
	} {
		v.panes.OwnAndAdd(widget.NewColorSurface(queue, color))
	}
	v.panes.PreferredSize().SetPreferredHeight(110, false)
	v.OwnAndAdd(v.panes)

	v.chart = NewChart(queue)
	v.chart.PreferredSize().SetFlexibleHeight(1, false)
	v.OwnAndAdd(v.chart)

	v.SetParentLayout(layout.NewFlexLayout(layout.Options{
		Direction: layout.DirectionColumn,
		Justify:   layout.JustifyStart,
		Align:     layout.AlignStretch,
		Spacing:   8,
	}))
	return v
}

// Theme returns the view theme.
func (v *ChartingView) Theme() widget.Theme { return v.theme }

// SetTheme replaces the theme and pushes it to the chart regions.
func (v *ChartingView) SetTheme(theme widget.Theme) {
	v.theme = theme
	v.chart.XAxis().SetTheme(theme)
	v.chart.YAxis().SetTheme(theme)
	v.chart.Viewport().SetTheme(theme)
}

// Title returns the title label.
func (v *ChartingView) Title() *widget.Label { return v.title }

// Chart returns the chart shell.
func (v *ChartingView) Chart() *Chart { return v.chart }

// SetPaneOptions replaces the flex options of the color-pane row and
// schedules a relayout.
func (v *ChartingView) SetPaneOptions(opts layout.Options) {
	v.panes.SetParentLayout(layout.NewFlexLayout(opts))
	v.panes.RequestRelayout()
}

// Paint implements widget.Widget.
func (v *ChartingView) Paint(c render.Canvas) {
	c.FillRect(v.Bounds(), v.theme.Background)
	v.PaintChildren(c)
}
