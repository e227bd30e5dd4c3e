package widget

import (
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/render"
)

// Label is a single line of text whose preferred size tracks its content's
// font metrics.
type Label struct {
	*Base
	text  string
	style render.TextStyle
}

// NewLabel creates a label and measures its initial preferred size without
// notifying listeners.
func NewLabel(queue *dispatch.Queue, text string) *Label {
	l := &Label{
		Base:  NewBase(queue),
		text:  text,
		style: render.DefaultTextStyle(),
	}
	w, h := render.MeasureText(text, l.style)
	l.PreferredSize().SetPreferredSize(w, h, false)
	return l
}

// Text returns the label content.
func (l *Label) Text() string { return l.text }

// SetText updates the content and re-measures the preferred size, notifying
// listeners on change.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	w, h := render.MeasureText(text, l.style)
	l.PreferredSize().
		SetPreferredWidth(w, true).
		SetPreferredHeight(h, true)
}

// Style returns the text style.
func (l *Label) Style() render.TextStyle { return l.style }

// SetStyle replaces the text style and re-measures.
func (l *Label) SetStyle(style render.TextStyle) {
	l.style = style
	w, h := render.MeasureText(l.text, l.style)
	l.PreferredSize().
		SetPreferredWidth(w, true).
		SetPreferredHeight(h, true)
}

// Paint implements Widget.
func (l *Label) Paint(c render.Canvas) {
	bounds := l.Bounds()
	origin := geometry.Point{X: bounds.X, Y: bounds.Y + render.TextAscent(l.style)}
	c.DrawText(l.text, origin, l.style)
	l.PaintChildren(c)
}
