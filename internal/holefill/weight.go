package holefill

import (
	"fmt"
	"math"
)

// WeightFunc maps a pair of pixels to the influence one has on the other.
type WeightFunc interface {
	Weight(a, b Point) float64
}

// WeightParams configures DefaultWeight.
type WeightParams struct {
	// Z is the distance exponent. Larger values discount far pixels sharply.
	Z float64 `json:"z"`
	// Eps keeps the weight finite at distance zero.
	Eps float64 `json:"eps"`
}

// DefaultWeightParams returns z=5, eps=1e-4.
func DefaultWeightParams() WeightParams {
	return WeightParams{Z: 5, Eps: 1e-4}
}

// Validate checks that the parameters produce finite, positive weights.
func (p WeightParams) Validate() error {
	if math.IsNaN(p.Z) || math.IsInf(p.Z, 0) || p.Z < 0 {
		return fmt.Errorf("%w: z=%v", ErrInvalidWeight, p.Z)
	}
	if math.IsNaN(p.Eps) || math.IsInf(p.Eps, 0) || p.Eps <= 0 {
		return fmt.Errorf("%w: eps=%v", ErrInvalidWeight, p.Eps)
	}
	return nil
}

// DefaultWeight is the inverse-power Chebyshev weighting
//
//	w(a,b) = 1 / (eps + chebyshev(a,b)^z)
type DefaultWeight struct {
	params WeightParams
}

// NewDefaultWeight returns a DefaultWeight for validated params.
func NewDefaultWeight(params WeightParams) (*DefaultWeight, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &DefaultWeight{params: params}, nil
}

// Params returns the current parameters.
func (w *DefaultWeight) Params() WeightParams {
	return w.params
}

// SetParams replaces the parameters in place. Invalid params leave w unchanged.
func (w *DefaultWeight) SetParams(params WeightParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	w.params = params
	return nil
}

// Weight implements WeightFunc.
func (w *DefaultWeight) Weight(a, b Point) float64 {
	d := float64(Chebyshev(a, b))
	return 1 / (w.params.Eps + math.Pow(d, w.params.Z))
}

// Chebyshev returns max(|Δrow|, |Δcol|).
func Chebyshev(a, b Point) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}
