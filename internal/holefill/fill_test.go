package holefill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroWeight struct{}

func (zeroWeight) Weight(a, b Point) float64 { return 0 }

func TestFillWeighted_UniformNeighbourhood(t *testing.T) {
	g := uniform7(t, Point{Row: 3, Col: 3})
	h := locate(t, g)

	require.NoError(t, NewInpainter(g).FillWeighted(h, nil))
	assert.Equal(t, 0.5, g.Value(Point{Row: 3, Col: 3}))
	assert.False(t, g.Holed())
}

func TestFillWeighted_Ramp(t *testing.T) {
	g := rampGrid(t)
	h := locate(t, g)

	w, err := NewDefaultWeight(DefaultWeightParams())
	require.NoError(t, err)
	require.NoError(t, NewInpainter(g).FillWeighted(h, w))

	want := map[Point]float64{
		{1, 1}: 0.12553137603436457,
		{1, 2}: 0.21398363345567784,
		{2, 1}: 0.21398363345567784,
		{1, 3}: 0.4,
		{2, 2}: 0.4,
		{3, 1}: 0.4,
		{2, 3}: 0.586016366544322,
		{3, 2}: 0.586016366544322,
		{3, 3}: 0.6744686239656353,
	}
	for p, v := range want {
		assert.InDelta(t, v, g.Value(p), 1e-9, "pixel %v", p)
	}
}

func TestFillAverage(t *testing.T) {
	g := rampGrid(t)
	h := locate(t, g)

	require.NoError(t, NewInpainter(g).FillAverage(h))
	for _, p := range h.Pixels {
		assert.InDelta(t, 0.4, g.Value(p), 1e-12, "pixel %v", p)
	}
}

// A planar neighbourhood is reproduced exactly.
func TestFillGradient_Plane(t *testing.T) {
	g := rampGrid(t)
	h := locate(t, g)

	require.NoError(t, NewInpainter(g).FillGradient(h))
	for _, p := range h.Pixels {
		assert.InDelta(t, 0.1*float64(p.Row+p.Col), g.Value(p), 1e-12, "pixel %v", p)
	}
}

func TestFillSpiral_Ramp(t *testing.T) {
	g := rampGrid(t)
	h := locate(t, g)

	require.NoError(t, NewInpainter(g).FillSpiral(h))

	want := map[Point]float64{
		{1, 1}: 0.12,
		{1, 2}: 0.18,
		{1, 3}: 0.36333333333333334,
		{2, 1}: 0.273305291005291,
		{2, 2}: 0.38290251322751323,
		{2, 3}: 0.46866666666666673,
		{3, 1}: 0.43044814814814814,
		{3, 2}: 0.5826888888888889,
		{3, 3}: 0.6447777777777778,
	}
	for p, v := range want {
		assert.InDelta(t, v, g.Value(p), 1e-9, "pixel %v", p)
	}
}

func TestFill_ClearsHole(t *testing.T) {
	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			g := rampGrid(t)
			h := locate(t, g)

			require.NoError(t, NewInpainter(g).Fill(h, s, nil))
			assert.False(t, g.Holed())
			assert.Zero(t, g.HoleCount())

			for _, p := range h.Pixels {
				v := g.Value(p)
				assert.True(t, v >= 0 && v <= 1, "pixel %v = %v", p, v)
			}
			for _, b := range h.Boundary {
				assert.InDelta(t, 0.1*float64(b.Row+b.Col), g.Value(b), 1e-12, "boundary %v changed", b)
			}

			boundary, err := MooreTracer{}.Trace(g)
			assert.NoError(t, err)
			assert.Nil(t, boundary)
		})
	}
}

func TestFill_EdgeHoleLeavesGridUnchanged(t *testing.T) {
	for _, s := range []Strategy{StrategyGradient, StrategySpiral} {
		t.Run(s.String(), func(t *testing.T) {
			g := uniform7(t, pts(0, 0, 0, 1, 1, 0, 1, 1)...)
			h := locate(t, g)
			before := g.Values()

			err := NewInpainter(g).Fill(h, s, nil)
			assert.ErrorIs(t, err, ErrEdgeHole)
			assert.Equal(t, before, g.Values())
			assert.True(t, g.Holed())
		})
	}
}

// Strategies that do not read the corners still fill edge holes.
func TestFill_EdgeHoleWeightedAndAverage(t *testing.T) {
	for _, s := range []Strategy{StrategyWeighted, StrategyAverage} {
		t.Run(s.String(), func(t *testing.T) {
			g := uniform7(t, pts(0, 0, 0, 1, 1, 0, 1, 1)...)
			h := locate(t, g)

			require.NoError(t, NewInpainter(g).Fill(h, s, nil))
			assert.Zero(t, g.HoleCount())
			assert.InDelta(t, 0.5, g.Value(Point{Row: 0, Col: 0}), 1e-12)
		})
	}
}

func TestFillWeighted_DegenerateWeightsAreAtomic(t *testing.T) {
	g := rampGrid(t)
	h := locate(t, g)
	before := g.Values()

	err := NewInpainter(g).FillWeighted(h, zeroWeight{})
	assert.ErrorIs(t, err, ErrInvalidWeight)
	assert.Equal(t, before, g.Values())
	assert.True(t, g.Holed())
}

// A hole spanning the whole grid is bounded on one side only, so its covering
// rectangle holds none of it. No strategy may report success on it.
func TestFill_UncoveredHole(t *testing.T) {
	cases := []struct {
		name             string
		rowStart, rowEnd int
		colStart, colEnd int
	}{
		{"FullWidthRow", 0, 1, 0, 7},
		{"FullHeightColumn", 0, 7, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range Strategies() {
				g := uniform7(t)
				require.NoError(t, g.CreateHole(tc.rowStart, tc.rowEnd, tc.colStart, tc.colEnd))
				h := locate(t, g)
				assert.Empty(t, h.Pixels)
				before := g.Values()

				err := NewInpainter(g).Fill(h, s, nil)
				assert.ErrorIs(t, err, ErrUncoveredHole, s.String())
				assert.Equal(t, before, g.Values(), s.String())
				assert.True(t, g.Holed(), s.String())
			}
		})
	}
}

func TestFill_Errors(t *testing.T) {
	t.Run("NilHole", func(t *testing.T) {
		g := rampGrid(t)
		for _, s := range Strategies() {
			assert.ErrorIs(t, NewInpainter(g).Fill(nil, s, nil), ErrNoHole, s.String())
		}
	})

	t.Run("StaleHole", func(t *testing.T) {
		g := rampGrid(t)
		h := locate(t, g)
		require.NoError(t, g.Set(Point{Row: 0, Col: 0}, Sentinel))

		err := NewInpainter(g).FillAverage(h)
		assert.ErrorIs(t, err, ErrStaleHole)
	})

	t.Run("ForeignHole", func(t *testing.T) {
		h := locate(t, rampGrid(t))
		small := mustGrid(t, [][]float64{{0.1, 0.2}, {0.3, 0.4}})

		err := NewInpainter(small).FillAverage(h)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("EmptyBoundary", func(t *testing.T) {
		g := rampGrid(t)
		h := &Hole{Pixels: pts(2, 2), Cover: NewRect(1, 3, 1, 3)}
		assert.ErrorIs(t, NewInpainter(g).FillAverage(h), ErrEmptyBoundary)
		assert.ErrorIs(t, NewInpainter(g).FillWeighted(h, nil), ErrEmptyBoundary)
	})

	t.Run("UnknownStrategy", func(t *testing.T) {
		g := rampGrid(t)
		h := locate(t, g)
		assert.ErrorIs(t, NewInpainter(g).Fill(h, Strategy(42), nil), ErrUnknownStrategy)
	})
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
	}{
		{"weighted", StrategyWeighted},
		{"Weight", StrategyWeighted},
		{"average", StrategyAverage},
		{" AVG ", StrategyAverage},
		{"gradient", StrategyGradient},
		{"spiral", StrategySpiral},
		{"connected", StrategySpiral},
	}
	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseStrategy("blur")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "Strategy(42)", Strategy(42).String())
}
