package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPriceAxis(t *testing.T) (*AxisTransform, *UnitTransform) {
	t.Helper()
	axis, err := NewAxisTransform(0, 500, 100, 350)
	require.NoError(t, err)
	unit, err := NewUnitTransform(axis, 10_000, 60_000)
	require.NoError(t, err)
	return axis, unit
}

func TestNewUnitTransformValidation(t *testing.T) {
	axis, err := NewAxisTransform(0, 1, 0, 1)
	require.NoError(t, err)

	_, err = NewUnitTransform(nil, 0, 1)
	assert.Error(t, err)

	_, err = NewUnitTransform(axis, 7, 7)
	assert.Error(t, err)
}

func TestUnitWorldRoundTrip(t *testing.T) {
	_, unit := newPriceAxis(t)

	for _, x := range []float64{0, 125, 250, 499.5, -40, 1200} {
		got := unit.UnitWorldToAxisWorld(unit.AxisWorldToUnitWorld(x))
		assert.InDeltaf(t, x, got, 1e-9, "axis world %g", x)
	}
	for _, u := range []float64{10_000, 35_000, 60_000, 9_000} {
		got := unit.AxisWorldToUnitWorld(unit.UnitWorldToAxisWorld(u))
		assert.InDeltaf(t, u, got, 1e-6, "unit world %g", u)
	}
}

func TestUnitWorldEndpointsMap(t *testing.T) {
	_, unit := newPriceAxis(t)

	assert.InDelta(t, 10_000.0, unit.AxisWorldToUnitWorld(0), 1e-9)
	assert.InDelta(t, 60_000.0, unit.AxisWorldToUnitWorld(500), 1e-9)
	assert.InDelta(t, 0.0, unit.UnitWorldToAxisWorld(10_000), 1e-9)
	assert.InDelta(t, 500.0, unit.UnitWorldToAxisWorld(60_000), 1e-9)
}

func TestUnitViewportReportsAxisWindowInUnits(t *testing.T) {
	_, unit := newPriceAxis(t)

	// Axis viewport [100, 350] of world [0, 500] covers 20%..70% of the
	// 50k unit range.
	assert.InDelta(t, 20_000.0, unit.ViewportStart(), 1e-9)
	assert.InDelta(t, 45_000.0, unit.ViewportEnd(), 1e-9)
	assert.InDelta(t, 25_000.0, unit.ViewportSize(), 1e-9)
	assert.InDelta(t, 0.5, unit.ZoomLevel(), 1e-9)
}

func TestUnitSetViewportMovesAxisWindow(t *testing.T) {
	axis, unit := newPriceAxis(t)

	unit.SetViewportStart(10_000)
	unit.SetViewportEnd(35_000)

	assert.InDelta(t, 0.0, axis.ViewportStart(), 1e-9)
	assert.InDelta(t, 250.0, axis.ViewportEnd(), 1e-9)
}

func TestUnitViewportConversions(t *testing.T) {
	_, unit := newPriceAxis(t)

	// Middle of the viewport window maps to the middle of the unit range.
	mid := unit.AxisViewportToUnitViewport(225)
	assert.InDelta(t, 35_000.0, mid, 1e-9)
	assert.InDelta(t, 225.0, unit.UnitViewportToAxisViewport(35_000), 1e-9)
}

func TestUnitZoomDelegatesToAxis(t *testing.T) {
	axis, unit := newPriceAxis(t)

	unit.SetZoomLevel(1.0, 0.0)
	assert.InDelta(t, 1.0, axis.ZoomLevel(), 1e-9)

	unit.ZoomOut(0.5, 0.5)
	assert.InDelta(t, 0.5, axis.ZoomLevel(), 1e-9)

	unit.ZoomIn(0.25, 0.5)
	assert.InDelta(t, 0.75, axis.ZoomLevel(), 1e-9)
}

func TestUnitSetWorldRangeValidation(t *testing.T) {
	_, unit := newPriceAxis(t)

	require.Error(t, unit.SetWorldRange(5, 5))
	assert.Equal(t, 10_000.0, unit.WorldStart())

	require.NoError(t, unit.SetWorldRange(0, 100))
	assert.Equal(t, 100.0, unit.WorldSize())
}
