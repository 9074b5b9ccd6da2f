package holefill

import (
	"fmt"
	"math"
	"strings"
)

// Strategy selects how an Inpainter reconstructs hole pixels.
type Strategy int

const (
	// StrategyWeighted interpolates every hole pixel from the whole boundary
	// with a WeightFunc.
	StrategyWeighted Strategy = iota
	// StrategyAverage sets every hole pixel to the boundary mean.
	StrategyAverage
	// StrategyGradient blends the covering rectangle corners.
	StrategyGradient
	// StrategySpiral averages resolved 8-connected neighbours in spiral order.
	StrategySpiral
)

var strategyNames = map[Strategy]string{
	StrategyWeighted: "weighted",
	StrategyAverage:  "average",
	StrategyGradient: "gradient",
	StrategySpiral:   "spiral",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Strategies lists every strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyWeighted, StrategyAverage, StrategyGradient, StrategySpiral}
}

// ParseStrategy resolves a strategy name, case-insensitively. "connected" is
// accepted for the spiral strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "weighted", "weight":
		return StrategyWeighted, nil
	case "average", "avg":
		return StrategyAverage, nil
	case "gradient":
		return StrategyGradient, nil
	case "spiral", "connected":
		return StrategySpiral, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Inpainter fills located holes in a grid.
//
// Each strategy computes every new sample before writing any of them, so a
// failed fill leaves the grid as it was. A successful fill recomputes the
// grid's holed flag; the Hole passed in is stale afterwards.
type Inpainter struct {
	grid *Grid
}

// NewInpainter returns an Inpainter writing into g.
func NewInpainter(g *Grid) *Inpainter {
	return &Inpainter{grid: g}
}

// Fill dispatches to the strategy s. w is only used by StrategyWeighted and
// may be nil there to use the default weighting.
func (in *Inpainter) Fill(h *Hole, s Strategy, w WeightFunc) error {
	switch s {
	case StrategyWeighted:
		return in.FillWeighted(h, w)
	case StrategyAverage:
		return in.FillAverage(h)
	case StrategyGradient:
		return in.FillGradient(h)
	case StrategySpiral:
		return in.FillSpiral(h)
	}
	return fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
}

// FillWeighted sets every hole pixel p to
//
//	Σ w(b,p)·value(b) / Σ w(b,p)
//
// over all boundary pixels b. A nil w uses DefaultWeightParams.
func (in *Inpainter) FillWeighted(h *Hole, w WeightFunc) error {
	if err := in.check(h); err != nil {
		return err
	}
	if len(h.Boundary) == 0 {
		return ErrEmptyBoundary
	}
	if w == nil {
		w = &DefaultWeight{params: DefaultWeightParams()}
	}

	g := in.grid
	values := make([]float64, len(h.Pixels))
	for i, p := range h.Pixels {
		if !g.IsSentinel(p) {
			values[i] = g.Value(p)
			continue
		}
		var num, den float64
		for _, b := range h.Boundary {
			wt := w.Weight(b, p)
			num += wt * g.Value(b)
			den += wt
		}
		if !(den > 0) || math.IsInf(den, 0) {
			return fmt.Errorf("%w: weights at %v sum to %v", ErrInvalidWeight, p, den)
		}
		values[i] = clamp01(num / den)
	}

	in.commit(h.Pixels, values)
	return nil
}

// FillAverage sets every hole pixel to the mean boundary value.
func (in *Inpainter) FillAverage(h *Hole) error {
	if err := in.check(h); err != nil {
		return err
	}
	if len(h.Boundary) == 0 {
		return ErrEmptyBoundary
	}

	var sum float64
	for _, b := range h.Boundary {
		sum += in.grid.Value(b)
	}
	avg := sum / float64(len(h.Boundary))

	values := make([]float64, len(h.Pixels))
	for i := range values {
		values[i] = avg
	}
	in.commit(h.Pixels, values)
	return nil
}

// FillGradient blends the four covering rectangle corners. A pixel no farther
// (Chebyshev) from the top-left corner than from the bottom-right one is
// extrapolated from top-left along the row and column toward top-right and
// bottom-left; otherwise from bottom-right toward the same two corners.
// Results are clamped to [0,1].
//
// It fails with ErrEdgeHole when any corner is a hole pixel.
func (in *Inpainter) FillGradient(h *Hole) error {
	if err := in.check(h); err != nil {
		return err
	}
	if err := in.checkCorners(h.Cover); err != nil {
		return err
	}

	g := in.grid
	rc := h.Cover
	tl, tr := g.Value(rc.TopLeft), g.Value(rc.TopRight)
	bl, br := g.Value(rc.BottomLeft), g.Value(rc.BottomRight)
	width := float64(rc.BottomRight.Col - rc.TopLeft.Col)
	height := float64(rc.BottomRight.Row - rc.TopLeft.Row)

	values := make([]float64, len(h.Pixels))
	for i, p := range h.Pixels {
		var v float64
		if Chebyshev(p, rc.TopLeft) <= Chebyshev(p, rc.BottomRight) {
			v = tl +
				ramp(bl-tl, p.Row-rc.TopLeft.Row, height) +
				ramp(tr-tl, p.Col-rc.TopLeft.Col, width)
		} else {
			v = br +
				ramp(tr-br, rc.BottomRight.Row-p.Row, height) +
				ramp(bl-br, rc.BottomRight.Col-p.Col, width)
		}
		values[i] = clamp01(v)
	}

	in.commit(h.Pixels, values)
	return nil
}

// FillSpiral walks the covering rectangle in spiral order and sets each hole
// pixel to the mean of its in-bounds 8-connected neighbours that are not holed
// at that moment. Pixels filled earlier in the walk count as resolved, so the
// fill grows inward ring by ring.
//
// It fails with ErrEdgeHole when any corner is a hole pixel.
func (in *Inpainter) FillSpiral(h *Hole) error {
	if err := in.check(h); err != nil {
		return err
	}
	if err := in.checkCorners(h.Cover); err != nil {
		return err
	}

	g := in.grid
	filled := make(map[Point]float64, len(h.Pixels))
	valueAt := func(p Point) float64 {
		if v, ok := filled[p]; ok {
			return v
		}
		return g.Value(p)
	}

	var points []Point
	var values []float64
	for s := NewSpiral(h.Cover); s.HasNext(); {
		p := s.Next()
		if valueAt(p) != Sentinel {
			continue
		}

		var sum float64
		n := 0
		for _, off := range directionOffsets {
			q, ok := g.Offset(p, off[0], off[1])
			if !ok {
				continue
			}
			if v := valueAt(q); v != Sentinel {
				sum += v
				n++
			}
		}
		if n == 0 {
			return fmt.Errorf("%w: no resolved neighbour at %v", ErrEdgeHole, p)
		}
		v := sum / float64(n)
		filled[p] = v
		points = append(points, p)
		values = append(values, v)
	}

	in.commit(points, values)
	return nil
}

// check validates that h belongs to the grid, still describes it and has
// pixels to fill.
func (in *Inpainter) check(h *Hole) error {
	if h == nil {
		return ErrNoHole
	}
	g := in.grid
	for _, p := range h.Cover.Corners() {
		if !g.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: covering rectangle corner %v", ErrOutOfBounds, p)
		}
	}
	for _, p := range h.Pixels {
		if !g.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: hole pixel %v", ErrOutOfBounds, p)
		}
	}
	for _, b := range h.Boundary {
		if !g.InBounds(b.Row, b.Col) {
			return fmt.Errorf("%w: boundary pixel %v", ErrOutOfBounds, b)
		}
		if g.IsSentinel(b) {
			return fmt.Errorf("%w: boundary pixel %v", ErrStaleHole, b)
		}
	}
	if len(h.Pixels) == 0 {
		return fmt.Errorf("%w: %v..%v", ErrUncoveredHole, h.Cover.TopLeft, h.Cover.BottomRight)
	}
	return nil
}

func (in *Inpainter) checkCorners(rc Rect) error {
	for _, p := range rc.Corners() {
		if in.grid.IsSentinel(p) {
			return fmt.Errorf("%w: corner %v", ErrEdgeHole, p)
		}
	}
	return nil
}

// commit writes values to points and refreshes the holed flag.
func (in *Inpainter) commit(points []Point, values []float64) {
	g := in.grid
	for i, p := range points {
		g.values[p.Row*g.cols+p.Col] = values[i]
	}
	g.refreshHoled()
}

// ramp returns delta scaled by offset/span, or 0 for a degenerate span.
func ramp(delta float64, offset int, span float64) float64 {
	if span == 0 {
		return 0
	}
	return delta * float64(offset) / span
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
