package imaging

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// PixelSample describes one grid sample.
type PixelSample struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"` // normalized sample, or -1 for a hole pixel
	Gray  uint8   `json:"gray"`  // 8-bit level as it would be saved
	Hex   string  `json:"hex"`   // "#rrggbb" of Gray
	Holed bool    `json:"holed"`
}

// SamplePixels reads the grid at every point, in input order. It fails
// without partial results if any point is outside the grid.
func SamplePixels(g *holefill.Grid, points []holefill.Point) ([]PixelSample, error) {
	out := make([]PixelSample, 0, len(points))
	for _, p := range points {
		px, err := g.Get(p.Row, p.Col)
		if err != nil {
			return nil, fmt.Errorf("sample %v: %w", p, err)
		}
		level := grayLevel(px.Value)
		v := float64(level) / 255
		out = append(out, PixelSample{
			Row:   p.Row,
			Col:   p.Col,
			Value: px.Value,
			Gray:  level,
			Hex:   colorful.Color{R: v, G: v, B: v}.Hex(),
			Holed: px.Holed(),
		})
	}
	return out, nil
}
