package holefill

// Direction is one of the eight Moore neighbours, numbered clockwise from west.
//
//	+----+----+----+
//	| NW | N  | NE |
//	| 1  | 2  | 3  |
//	+----+----+----+
//	| W  |    | E  |
//	| 0  |    | 4  |
//	+----+----+----+
//	| SW | S  | SE |
//	| 7  | 6  | 5  |
//	+----+----+----+
type Direction int

const (
	West Direction = iota
	NorthWest
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
)

// directionOffsets holds the (dRow, dCol) step for each Direction.
var directionOffsets = [8][2]int{
	{0, -1},  // W
	{-1, -1}, // NW
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
}

var directionNames = [8]string{"W", "NW", "N", "NE", "E", "SE", "S", "SW"}

func (d Direction) String() string {
	if d < 0 || d > SouthWest {
		return "Direction(?)"
	}
	return directionNames[d]
}

// next returns the direction one step clockwise.
func (d Direction) next() Direction {
	return (d + 1) % 8
}

// Backtrack rotations, counted against an index that has already advanced by one.
const (
	backtrackStraight = 5
	backtrackDiagonal = 4
)

// Boundary is an ordered closed walk of non-hole pixels around one hole.
// Order is trace order; each point appears once.
type Boundary []Point

// Contains reports whether p is part of the boundary.
func (b Boundary) Contains(p Point) bool {
	for _, q := range b {
		if q == p {
			return true
		}
	}
	return false
}

// Tracer finds the boundary of the hole in a grid.
//
// Implementations return a nil boundary and nil error when the grid holds no
// sentinel sample.
type Tracer interface {
	Trace(g *Grid) (Boundary, error)
}

// MooreTracer traces the 8-connected border of the first hole found in
// row-major order using Moore-Neighbor tracing with backtracking.
//
// Tracing stops on Jacob's criterion: the first boundary pixel is reached
// again while entering from the same direction as the first time. Checking the
// pixel alone would stop early around one-pixel-wide enclaves.
//
// MooreTracer holds no state; a single value may trace many grids concurrently.
type MooreTracer struct{}

// Trace implements Tracer.
func (MooreTracer) Trace(g *Grid) (Boundary, error) {
	seed, ok := firstHoled(g)
	if !ok {
		return nil, nil
	}

	// A hole entered from the left edge would make the first westward probe
	// leave the grid, so start from the end of the holed run facing east.
	start := West
	if seed.Col == 0 {
		seed = endOfHoledRun(g, seed)
		start = East
	}

	w := &mooreWalk{grid: g, dir: start}
	budget := 8*g.rows*g.cols + 8
	cur := seed

	first, ok := w.step(cur)
	for steps := 0; ok && g.IsSentinel(first); steps++ {
		if steps >= budget {
			return nil, ErrTraceDiverged
		}
		w.backtrack()
		cur = first
		first, ok = w.step(cur)
	}
	if !ok {
		return nil, ErrTraceDiverged
	}
	firstDir := w.dir

	boundary := Boundary{first}
	seen := map[Point]struct{}{first: {}}

	cand, ok := w.step(cur)
	for steps := 0; !(ok && cand == first && w.dir == firstDir); steps++ {
		// (pixel, direction) pairs are finite and the walk is deterministic, so
		// exceeding the pair count means it cycles without closing.
		if !ok || steps >= budget {
			return nil, ErrTraceDiverged
		}
		if g.IsSentinel(cand) {
			w.backtrack()
			cur = cand
		} else if _, dup := seen[cand]; !dup {
			seen[cand] = struct{}{}
			boundary = append(boundary, cand)
		}
		cand, ok = w.step(cur)
	}

	return boundary, nil
}

// mooreWalk carries the running direction of one trace.
type mooreWalk struct {
	grid *Grid
	dir  Direction
}

// step returns the next in-bounds clockwise neighbour of p starting at the
// running direction, advancing the direction past it. It returns false only
// when p has no in-bounds neighbour at all.
func (w *mooreWalk) step(p Point) (Point, bool) {
	for i := 0; i < 8; i++ {
		off := directionOffsets[w.dir]
		w.dir = w.dir.next()
		if q, ok := w.grid.Offset(p, off[0], off[1]); ok {
			return q, true
		}
	}
	return Point{}, false
}

// backtrack turns the running direction back toward the last connected pixel
// after stepping onto a hole pixel.
func (w *mooreWalk) backtrack() {
	if w.dir%2 == 1 {
		w.dir = (w.dir + backtrackStraight) % 8
	} else {
		w.dir = (w.dir + backtrackDiagonal) % 8
	}
}

// firstHoled scans in row-major order for the first sentinel sample.
func firstHoled(g *Grid) (Point, bool) {
	for i, v := range g.values {
		if v == Sentinel {
			return Point{Row: i / g.cols, Col: i % g.cols}, true
		}
	}
	return Point{}, false
}

// endOfHoledRun walks forward in row-major order from p, wrapping to column 0
// of the next row, and returns the last sentinel pixel before a non-hole one.
func endOfHoledRun(g *Grid, p Point) Point {
	for {
		next, ok := rowMajorNext(g, p)
		if !ok || !g.IsSentinel(next) {
			return p
		}
		p = next
	}
}

func rowMajorNext(g *Grid, p Point) (Point, bool) {
	if p.Col+1 < g.cols {
		return Point{Row: p.Row, Col: p.Col + 1}, true
	}
	if p.Row+1 < g.rows {
		return Point{Row: p.Row + 1, Col: 0}, true
	}
	return Point{}, false
}
