package layout

import (
	"fmt"
	"math"

	"github.com/go-chartview/chartview/pkg/geometry"
)

// Direction selects the main axis of a flex arrangement.
type Direction int

const (
	// DirectionRow distributes children horizontally.
	DirectionRow Direction = iota
	// DirectionColumn distributes children vertically.
	DirectionColumn
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionRow:
		return "row"
	case DirectionColumn:
		return "column"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Justify controls distribution along the main axis.
type Justify int

const (
	// JustifyStart packs children at the main-axis start.
	JustifyStart Justify = iota
	// JustifyEnd packs children at the main-axis end.
	JustifyEnd
	// JustifyCenter centers the packed children.
	JustifyCenter
	// JustifySpaceBetween spreads leftover space between children.
	JustifySpaceBetween
	// JustifySpaceAround spreads leftover space around children, with a
	// half-gap before the first and after the last.
	JustifySpaceAround
	// JustifySpaceEvenly spreads leftover space evenly, including a full
	// gap before the first and after the last child.
	JustifySpaceEvenly
	// JustifyStretch forces every child to an equal share of the main
	// axis, overriding preferred sizes (minimums still apply).
	JustifyStretch
)

// String returns a human-readable representation of the justify mode.
func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space_between"
	case JustifySpaceAround:
		return "space_around"
	case JustifySpaceEvenly:
		return "space_evenly"
	case JustifyStretch:
		return "stretch"
	default:
		return fmt.Sprintf("Justify(%d)", int(j))
	}
}

// Align controls placement along the cross axis. The zero value is stretch,
// matching the default of the chart's grouped arrangements.
type Align int

const (
	// AlignStretch sizes children to the full cross extent.
	AlignStretch Align = iota
	// AlignStart places children at the near cross edge.
	AlignStart
	// AlignEnd places children at the far cross edge.
	AlignEnd
	// AlignCenter centers children within the cross extent.
	AlignCenter
)

// String returns a human-readable representation of the align mode.
func (a Align) String() string {
	switch a {
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// WrapMode controls whether children wrap onto new lines.
type WrapMode int

const (
	// NoWrap keeps all children on a single line.
	NoWrap WrapMode = iota
	// Wrap starts a new line when the next child's preferred main extent
	// would overflow the container.
	Wrap
)

// String returns a human-readable representation of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case NoWrap:
		return "no_wrap"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(w))
	}
}

// Options configures a FlexLayout. Immutable per layout pass.
type Options struct {
	Direction Direction
	Justify   Justify
	Align     Align
	Wrap      WrapMode
	Spacing   int // gap between children, >= 0
}

// HorizontalGroup returns options for a row of stretched panes.
func HorizontalGroup() Options {
	return Options{Direction: DirectionRow, Justify: JustifyStretch, Align: AlignStretch}
}

// VerticalGroup returns options for a column of stretched panes.
func VerticalGroup() Options {
	return Options{Direction: DirectionColumn, Justify: JustifyStretch, Align: AlignStretch}
}

// HorizontalItems returns options for a row of discrete items.
func HorizontalItems() Options {
	return Options{Direction: DirectionRow, Justify: JustifySpaceAround, Align: AlignStart}
}

// VerticalItems returns options for a column of discrete items.
func VerticalItems() Options {
	return Options{Direction: DirectionColumn, Justify: JustifySpaceAround, Align: AlignStart}
}

// FlexLayout distributes children along a main axis with justify, align and
// wrap policies, consuming each child's PreferredSize.
type FlexLayout struct {
	options Options
}

// NewFlexLayout creates a flex layout with the given options.
func NewFlexLayout(opts Options) *FlexLayout {
	return &FlexLayout{options: opts}
}

// Options returns the current options.
func (f *FlexLayout) Options() Options { return f.options }

// SetOptions replaces the options for subsequent passes.
func (f *FlexLayout) SetOptions(opts Options) { f.options = opts }

// flexLine is one wrap line: a slice of the valid children plus its cross
// extent (the max preferred cross extent of its members).
type flexLine struct {
	children    []Participant
	crossExtent int
}

// Apply implements ParentLayout: it computes and assigns a rectangle for
// every valid child.
//
// The justify distribution (leading offset, inter-child gap, stretch share)
// is derived once from the totals over all valid children and reused for
// every wrap line. Lines with a different child count therefore reuse the
// globally computed leftover space; this is a deliberate simplification.
// Negative leftover space is propagated arithmetically, producing
// overflowing children rather than an error.
func (f *FlexLayout) Apply(parent geometry.Rect, children []Participant) {
	valid := ValidChildren(children)
	if len(valid) == 0 {
		return
	}

	opts := f.options
	totalPreferredMain := 0
	totalFlexible := 0
	for _, child := range valid {
		ps := child.PreferredSize()
		totalPreferredMain += f.preferredMain(ps)
		totalFlexible += f.flexibleMain(ps)
	}

	n := len(valid)
	mainSize := f.mainExtent(parent)
	crossSize := f.crossExtent(parent)
	remaining := mainSize - totalPreferredMain - (n-1)*opts.Spacing

	lead := 0
	gap := 0
	stretchItems := false
	switch opts.Justify {
	case JustifyEnd:
		lead = remaining
	case JustifyCenter:
		lead = remaining / 2
	case JustifySpaceBetween:
		if n > 1 {
			gap = remaining / (n - 1)
		}
	case JustifySpaceAround:
		gap = remaining / n
		lead = gap / 2
	case JustifySpaceEvenly:
		gap = remaining / (n + 1)
		lead = gap
	case JustifyStretch:
		stretchItems = true
	}

	// Equal share per child under stretch. The integer remainder is handed
	// out one pixel at a time to the leading children so the shares plus
	// spacing fill the container exactly.
	stretchSize := 0
	stretchRemainder := 0
	if stretchItems {
		available := mainSize - (n-1)*opts.Spacing
		stretchSize = available / n
		stretchRemainder = available - stretchSize*n
	}

	lines := f.packLines(valid, mainSize, crossSize)

	crossCursor := f.crossOrigin(parent)
	childIndex := 0
	for lineIndex, line := range lines {
		mainCursor := f.mainOrigin(parent) + lead
		for _, child := range line.children {
			ps := child.PreferredSize()

			sizeMain := 0
			if stretchItems {
				share := stretchSize
				if childIndex < stretchRemainder {
					share++
				}
				sizeMain = max(f.minMain(ps), share)
			} else {
				extra := 0
				if totalFlexible > 0 && f.flexibleMain(ps) > 0 {
					factor := float64(f.flexibleMain(ps)) / float64(totalFlexible)
					extra = int(math.Round(factor * float64(remaining)))
				}
				sizeMain = max(f.minMain(ps), f.preferredMain(ps)+extra)
			}

			posCross := 0
			sizeCross := f.preferredCross(ps)
			switch opts.Align {
			case AlignStretch:
				sizeCross = line.crossExtent
			case AlignCenter:
				posCross = (line.crossExtent - sizeCross) / 2
			case AlignEnd:
				posCross = line.crossExtent - sizeCross
			}

			child.SetBounds(f.makeRect(mainCursor, crossCursor+posCross, sizeMain, sizeCross))
			mainCursor += sizeMain + opts.Spacing + gap
			childIndex++
		}
		if lineIndex < len(lines)-1 {
			crossCursor += line.crossExtent + opts.Spacing
		}
	}
}

// packLines groups the valid children into wrap lines. Without wrapping a
// single line spans the container's cross extent. With wrapping, children
// pack greedily by preferred main extent: a new line starts when the current
// line is non-empty and the next child would overflow the container. Each
// line's cross extent is the max preferred cross extent of its children, so
// a line's first child may still overflow on its own.
func (f *FlexLayout) packLines(valid []Participant, mainSize, crossSize int) []flexLine {
	if f.options.Wrap != Wrap {
		return []flexLine{{children: valid, crossExtent: crossSize}}
	}

	var lines []flexLine
	var current flexLine
	used := 0
	for _, child := range valid {
		ps := child.PreferredSize()
		childMain := f.preferredMain(ps)
		needed := childMain
		if len(current.children) > 0 {
			needed += f.options.Spacing
		}
		if len(current.children) > 0 && used+needed > mainSize {
			lines = append(lines, current)
			current = flexLine{}
			used = 0
			needed = childMain
		}
		current.children = append(current.children, child)
		current.crossExtent = max(current.crossExtent, f.preferredCross(ps))
		used += needed
	}
	if len(current.children) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func (f *FlexLayout) preferredMain(ps *PreferredSize) int {
	if f.options.Direction == DirectionRow {
		return ps.PreferredWidth()
	}
	return ps.PreferredHeight()
}

func (f *FlexLayout) preferredCross(ps *PreferredSize) int {
	if f.options.Direction == DirectionRow {
		return ps.PreferredHeight()
	}
	return ps.PreferredWidth()
}

func (f *FlexLayout) flexibleMain(ps *PreferredSize) int {
	if f.options.Direction == DirectionRow {
		return ps.FlexibleWidth()
	}
	return ps.FlexibleHeight()
}

func (f *FlexLayout) minMain(ps *PreferredSize) int {
	if f.options.Direction == DirectionRow {
		return ps.MinWidth()
	}
	return ps.MinHeight()
}

func (f *FlexLayout) mainExtent(r geometry.Rect) int {
	if f.options.Direction == DirectionRow {
		return r.Width
	}
	return r.Height
}

func (f *FlexLayout) crossExtent(r geometry.Rect) int {
	if f.options.Direction == DirectionRow {
		return r.Height
	}
	return r.Width
}

func (f *FlexLayout) mainOrigin(r geometry.Rect) int {
	if f.options.Direction == DirectionRow {
		return r.X
	}
	return r.Y
}

func (f *FlexLayout) crossOrigin(r geometry.Rect) int {
	if f.options.Direction == DirectionRow {
		return r.Y
	}
	return r.X
}

func (f *FlexLayout) makeRect(mainPos, crossPos, mainSize, crossSize int) geometry.Rect {
	if f.options.Direction == DirectionRow {
		return geometry.Rect{X: mainPos, Y: crossPos, Width: mainSize, Height: crossSize}
	}
	return geometry.Rect{X: crossPos, Y: mainPos, Width: crossSize, Height: mainSize}
}
