package holefill

import (
	"fmt"
	"math"
)

// Sentinel marks a holed sample. It is never a legitimate normalized intensity.
const Sentinel = -1.0

// Point addresses a pixel in a Grid.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Pixel is a snapshot of a grid sample together with its coordinates.
type Pixel struct {
	Point
	Value float64 `json:"value"`
}

// Holed reports whether the snapshot holds the sentinel.
func (p Pixel) Holed() bool {
	return p.Value == Sentinel
}

// Grid is a fixed-size row-major arena of normalized samples.
//
// The zero value is not usable; construct grids with NewGrid or NewUniformGrid.
type Grid struct {
	rows, cols int
	values     []float64
	holed      bool
}

// NewGrid copies a rectangular slice of samples into a new Grid.
//
// Every sample must lie in [0,1] or equal Sentinel. The holed flag is set when
// any sample is the sentinel.
func NewGrid(samples [][]float64) (*Grid, error) {
	if len(samples) == 0 || len(samples[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(samples), len(samples[0])

	g := &Grid{rows: rows, cols: cols, values: make([]float64, rows*cols)}
	for r, row := range samples {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			if v != Sentinel && (v < 0 || v > 1 || math.IsNaN(v)) {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrSampleRange, v, r, c)
			}
			if v == Sentinel {
				g.holed = true
			}
			g.values[r*cols+c] = v
		}
	}
	return g, nil
}

// NewUniformGrid returns a rows×cols grid with every sample set to v.
func NewUniformGrid(rows, cols int, v float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if v != Sentinel && (v < 0 || v > 1) {
		return nil, fmt.Errorf("%w: %v", ErrSampleRange, v)
	}
	g := &Grid{rows: rows, cols: cols, values: make([]float64, rows*cols), holed: v == Sentinel}
	for i := range g.values {
		g.values[i] = v
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Holed reports whether the grid is known to contain sentinel samples.
func (g *Grid) Holed() bool { return g.holed }

// InBounds reports whether (row, col) addresses a pixel of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the pixel at (row, col).
func (g *Grid) Get(row, col int) (Pixel, error) {
	if !g.InBounds(row, col) {
		return Pixel{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return Pixel{Point: Point{Row: row, Col: col}, Value: g.values[row*g.cols+col]}, nil
}

// Offset returns the point dRow rows and dCol columns away from origin, or
// false when that point falls outside the grid.
func (g *Grid) Offset(origin Point, dRow, dCol int) (Point, bool) {
	p := Point{Row: origin.Row + dRow, Col: origin.Col + dCol}
	if p.Row < 0 || p.Row >= g.rows || p.Col < 0 || p.Col >= g.cols {
		return Point{}, false
	}
	return p, true
}

// Value returns the sample at p. p must be in bounds.
func (g *Grid) Value(p Point) float64 {
	return g.values[p.Row*g.cols+p.Col]
}

// IsSentinel reports whether the in-bounds point p is holed.
func (g *Grid) IsSentinel(p Point) bool {
	return g.Value(p) == Sentinel
}

// Set stores v at p. Storing the sentinel marks the grid as holed.
func (g *Grid) Set(p Point, v float64) error {
	if !g.InBounds(p.Row, p.Col) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	if v != Sentinel && (v < 0 || v > 1 || math.IsNaN(v)) {
		return fmt.Errorf("%w: %v at %v", ErrSampleRange, v, p)
	}
	g.values[p.Row*g.cols+p.Col] = v
	if v == Sentinel {
		g.holed = true
	}
	return nil
}

// CreateHole sets every pixel of the half-open rectangle
// [rowStart,rowEnd)×[colStart,colEnd) to the sentinel.
//
// The rectangle is validated before any pixel changes.
func (g *Grid) CreateHole(rowStart, rowEnd, colStart, colEnd int) error {
	if rowStart >= rowEnd || colStart >= colEnd {
		return fmt.Errorf("%w: rows [%d,%d) cols [%d,%d)", ErrInvalidRect, rowStart, rowEnd, colStart, colEnd)
	}
	if rowStart < 0 || colStart < 0 || rowEnd > g.rows || colEnd > g.cols {
		return fmt.Errorf("%w: rows [%d,%d) cols [%d,%d) in %dx%d grid",
			ErrOutOfBounds, rowStart, rowEnd, colStart, colEnd, g.rows, g.cols)
	}

	for r := rowStart; r < rowEnd; r++ {
		for c := colStart; c < colEnd; c++ {
			g.values[r*g.cols+c] = Sentinel
		}
	}
	g.holed = true
	return nil
}

// HoleCount returns the number of sentinel samples in the whole grid.
func (g *Grid) HoleCount() int {
	n := 0
	for _, v := range g.values {
		if v == Sentinel {
			n++
		}
	}
	return n
}

// refreshHoled recomputes the holed flag from the samples.
func (g *Grid) refreshHoled() {
	g.holed = g.HoleCount() > 0
}

// Values returns a copy of the samples as rows.
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.rows)
	for r := range out {
		out[r] = make([]float64, g.cols)
		copy(out[r], g.values[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	values := make([]float64, len(g.values))
	copy(values, g.values)
	return &Grid{rows: g.rows, cols: g.cols, values: values, holed: g.holed}
}
