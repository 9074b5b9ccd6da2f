package holefill

import "fmt"

// Rect is the axis-aligned covering rectangle of a boundary, given by the
// grid points at its four corners. Rows come first: TopRight is
// (minRow, maxCol) and BottomLeft is (maxRow, minCol).
type Rect struct {
	TopLeft     Point `json:"top_left"`
	TopRight    Point `json:"top_right"`
	BottomLeft  Point `json:"bottom_left"`
	BottomRight Point `json:"bottom_right"`
}

// NewRect returns the rectangle spanning rows [minRow,maxRow] and columns
// [minCol,maxCol], inclusive.
func NewRect(minRow, maxRow, minCol, maxCol int) Rect {
	return Rect{
		TopLeft:     Point{Row: minRow, Col: minCol},
		TopRight:    Point{Row: minRow, Col: maxCol},
		BottomLeft:  Point{Row: maxRow, Col: minCol},
		BottomRight: Point{Row: maxRow, Col: maxCol},
	}
}

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.BottomRight.Row - r.TopLeft.Row + 1 }

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.BottomRight.Col - r.TopLeft.Col + 1 }

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.Row >= r.TopLeft.Row && p.Row <= r.BottomRight.Row &&
		p.Col >= r.TopLeft.Col && p.Col <= r.BottomRight.Col
}

// Corners returns the corners in TopLeft, TopRight, BottomLeft, BottomRight order.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.TopLeft, r.TopRight, r.BottomLeft, r.BottomRight}
}

// Spiral returns a fresh spiral traversal of the rectangle.
func (r Rect) Spiral() *Spiral {
	return NewSpiral(r)
}

// Hole is a located hole: its boundary, its interior pixels and its covering
// rectangle. A Hole describes the grid at the time it was located and is stale
// once the hole has been filled.
type Hole struct {
	Boundary Boundary `json:"boundary"`
	Pixels   []Point  `json:"pixels"`
	Cover    Rect     `json:"cover"`
}

// Locate derives the covering rectangle and the interior pixels of the hole
// enclosed by boundary. It returns nil for an empty boundary and
// ErrOutOfBounds when a boundary point lies outside g.
//
// Interior pixels are the sentinel pixels inside the rectangle, in row-major order.
// A hole spanning the full grid width or height is bounded on one side only;
// its rectangle then holds no interior pixel and fills reject it with
// ErrUncoveredHole.
func Locate(g *Grid, boundary Boundary) (*Hole, error) {
	if len(boundary) == 0 {
		return nil, nil
	}
	for _, p := range boundary {
		if !g.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: boundary point %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
		}
	}

	minRow, maxRow := boundary[0].Row, boundary[0].Row
	minCol, maxCol := boundary[0].Col, boundary[0].Col
	for _, p := range boundary[1:] {
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col < minCol {
			minCol = p.Col
		}
		if p.Col > maxCol {
			maxCol = p.Col
		}
	}
	cover := NewRect(minRow, maxRow, minCol, maxCol)

	var pixels []Point
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			p := Point{Row: r, Col: c}
			if g.IsSentinel(p) {
				pixels = append(pixels, p)
			}
		}
	}

	return &Hole{Boundary: boundary, Pixels: pixels, Cover: cover}, nil
}

// FindHole traces the hole in g with t and locates it. It returns nil and a
// nil error when the grid has no hole.
func FindHole(g *Grid, t Tracer) (*Hole, error) {
	if t == nil {
		t = MooreTracer{}
	}
	boundary, err := t.Trace(g)
	if err != nil {
		return nil, err
	}
	return Locate(g, boundary)
}
