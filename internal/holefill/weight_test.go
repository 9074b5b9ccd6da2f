package holefill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChebyshev(t *testing.T) {
	cases := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{3, 1}, 3},
		{Point{5, 2}, Point{1, 9}, 7},
		{Point{2, 2}, Point{1, 1}, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Chebyshev(tc.a, tc.b), "Chebyshev(%v,%v)", tc.a, tc.b)
		assert.Equal(t, tc.want, Chebyshev(tc.b, tc.a), "Chebyshev(%v,%v)", tc.b, tc.a)
	}
}

func TestDefaultWeight(t *testing.T) {
	w, err := NewDefaultWeight(DefaultWeightParams())
	require.NoError(t, err)

	assert.InDelta(t, 1/1e-4, w.Weight(Point{1, 1}, Point{1, 1}), 1e-6)
	assert.InDelta(t, 1/(1e-4+1), w.Weight(Point{1, 1}, Point{2, 2}), 1e-12)
	assert.InDelta(t, 1/(1e-4+32), w.Weight(Point{0, 0}, Point{2, 1}), 1e-12)

	// Farther pixels weigh less.
	assert.Greater(t, w.Weight(Point{0, 0}, Point{1, 0}), w.Weight(Point{0, 0}, Point{2, 0}))
}

func TestDefaultWeight_SetParams(t *testing.T) {
	w, err := NewDefaultWeight(DefaultWeightParams())
	require.NoError(t, err)

	require.NoError(t, w.SetParams(WeightParams{Z: 1, Eps: 0.5}))
	assert.Equal(t, WeightParams{Z: 1, Eps: 0.5}, w.Params())
	assert.InDelta(t, 1/3.5, w.Weight(Point{0, 0}, Point{3, 0}), 1e-12)

	err = w.SetParams(WeightParams{Z: 2, Eps: 0})
	assert.ErrorIs(t, err, ErrInvalidWeight)
	assert.Equal(t, WeightParams{Z: 1, Eps: 0.5}, w.Params(), "invalid params must not be applied")
}

func TestWeightParams_Validate(t *testing.T) {
	cases := []struct {
		name   string
		params WeightParams
		ok     bool
	}{
		{"Default", DefaultWeightParams(), true},
		{"ZeroZ", WeightParams{Z: 0, Eps: 1}, true},
		{"NegativeZ", WeightParams{Z: -1, Eps: 1e-4}, false},
		{"ZeroEps", WeightParams{Z: 5, Eps: 0}, false},
		{"NaNZ", WeightParams{Z: math.NaN(), Eps: 1e-4}, false},
		{"InfEps", WeightParams{Z: 5, Eps: math.Inf(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidWeight)
			}
		})
	}
}
