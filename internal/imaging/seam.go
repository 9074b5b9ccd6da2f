package imaging

import (
	"fmt"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// SeamResult summarizes the Sobel gradient magnitude inside a rectangle.
//
// Values are normalized to [0,1]. A fill that blends into its surroundings
// keeps Mean close to Baseline; a visible seam raises Mean and Max.
type SeamResult struct {
	// Mean is the average gradient magnitude over the rectangle.
	Mean float64 `json:"mean"`

	// Max is the largest gradient magnitude in the rectangle.
	Max float64 `json:"max"`

	// Baseline is the average gradient magnitude over the whole grid.
	Baseline float64 `json:"baseline"`

	// Pixels is the number of pixels measured.
	Pixels int `json:"pixels"`
}

// SeamStrength measures edge energy over rc using bild's Sobel operator.
// Hole samples are measured as white, so an unfilled hole scores high.
func SeamStrength(g *holefill.Grid, rc holefill.Rect) (*SeamResult, error) {
	for _, p := range rc.Corners() {
		if !g.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: rectangle corner %v", holefill.ErrOutOfBounds, p)
		}
	}

	edges := effect.Sobel(GridImage(g))
	bounds := edges.Bounds()
	magnitude := func(row, col int) float64 {
		return float64(edges.Pix[edges.PixOffset(bounds.Min.X+col, bounds.Min.Y+row)]) / 255
	}

	var total float64
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			total += magnitude(r, c)
		}
	}

	res := &SeamResult{Baseline: total / float64(g.Rows()*g.Cols())}
	var sum float64
	for r := rc.TopLeft.Row; r <= rc.BottomRight.Row; r++ {
		for c := rc.TopLeft.Col; c <= rc.BottomRight.Col; c++ {
			m := magnitude(r, c)
			sum += m
			if m > res.Max {
				res.Max = m
			}
			res.Pixels++
		}
	}
	if res.Pixels > 0 {
		res.Mean = sum / float64(res.Pixels)
	}
	return res, nil
}
