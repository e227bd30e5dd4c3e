package widget

import (
	"github.com/go-chartview/chartview/pkg/dispatch"
	"github.com/go-chartview/chartview/pkg/geometry"
	"github.com/go-chartview/chartview/pkg/render"
)

// buttonPadding is the pixel inset between the button edge and its label.
const buttonPadding = 6

// Button wraps a label in a filled, outlined box. Activation is reported
// through an optional OnPress callback invoked by the host's input layer.
type Button struct {
	*Base
	label   *Label
	theme   Theme
	OnPress func()
}

// NewButton creates a button owning its label.
func NewButton(queue *dispatch.Queue, text string) *Button {
	b := &Button{
		Base:  NewBase(queue),
		theme: DefaultTheme(),
	}
	b.label = NewLabel(queue, text)
	b.OwnAndAdd(b.label)
	b.SetBorders(geometry.UniformInsets(buttonPadding))
	b.syncPreferredSize()
	return b
}

// Label returns the owned label.
func (b *Button) Label() *Label { return b.label }

// SetText updates the label and the button's padded preferred size.
func (b *Button) SetText(text string) {
	b.label.SetText(text)
	b.syncPreferredSize()
}

// SetTheme replaces the button's look.
func (b *Button) SetTheme(theme Theme) { b.theme = theme }

// Press invokes the press callback, if any.
func (b *Button) Press() {
	if b.OnPress != nil {
		b.OnPress()
	}
}

// Paint implements Widget.
func (b *Button) Paint(c render.Canvas) {
	bounds := b.Bounds()
	c.FillRect(bounds, b.theme.Surface)
	c.StrokeRect(bounds, b.theme.Outline, 1)
	b.PaintChildren(c)
}

func (b *Button) syncPreferredSize() {
	ps := b.label.PreferredSize()
	b.PreferredSize().SetPreferredSize(
		ps.PreferredWidth()+2*buttonPadding,
		ps.PreferredHeight()+2*buttonPadding,
		true)
}
