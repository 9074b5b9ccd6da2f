package imaging

import (
	"fmt"
	"math"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// FillQuality compares filled samples with the samples they replaced.
type FillQuality struct {
	// Pixels is the number of compared pixels.
	Pixels int `json:"pixels"`

	// Unfilled counts requested pixels that still hold the hole sentinel.
	// They are excluded from the error measures.
	Unfilled int `json:"unfilled"`

	MAE      float64 `json:"mae"`
	RMSE     float64 `json:"rmse"`
	MaxError float64 `json:"max_error"`
}

// CompareFill measures how closely cur matches ref at points. Both grids must
// have the same dimensions.
func CompareFill(ref, cur *holefill.Grid, points []holefill.Point) (*FillQuality, error) {
	if ref.Rows() != cur.Rows() || ref.Cols() != cur.Cols() {
		return nil, fmt.Errorf("grid dimensions differ: %dx%d vs %dx%d",
			ref.Rows(), ref.Cols(), cur.Rows(), cur.Cols())
	}

	q := &FillQuality{}
	var absSum, sqSum float64
	for _, p := range points {
		if !cur.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: %v", holefill.ErrOutOfBounds, p)
		}
		if cur.IsSentinel(p) || ref.IsSentinel(p) {
			q.Unfilled++
			continue
		}
		d := math.Abs(cur.Value(p) - ref.Value(p))
		absSum += d
		sqSum += d * d
		if d > q.MaxError {
			q.MaxError = d
		}
		q.Pixels++
	}

	if q.Pixels > 0 {
		q.MAE = absSum / float64(q.Pixels)
		q.RMSE = math.Sqrt(sqSum / float64(q.Pixels))
	}
	return q, nil
}
