package holefill

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// H is shorthand for the sentinel in literal test grids.
const H = Sentinel

func mustGrid(t testing.TB, rows [][]float64) *Grid {
	t.Helper()
	g, err := NewGrid(rows)
	require.NoError(t, err)
	return g
}

// uniform7 returns a 7×7 grid of 0.5 with the given points erased.
func uniform7(t testing.TB, holes ...Point) *Grid {
	t.Helper()
	g, err := NewUniformGrid(7, 7, 0.5)
	require.NoError(t, err)
	for _, p := range holes {
		require.NoError(t, g.Set(p, Sentinel))
	}
	return g
}

// rampGrid returns a 5×5 grid with value 0.1*(row+col) and a 3×3 hole in the middle.
func rampGrid(t testing.TB) *Grid {
	t.Helper()
	rows := make([][]float64, 5)
	for r := range rows {
		rows[r] = make([]float64, 5)
		for c := range rows[r] {
			rows[r][c] = 0.1 * float64(r+c)
		}
	}
	g := mustGrid(t, rows)
	require.NoError(t, g.CreateHole(1, 4, 1, 4))
	return g
}

func locate(t testing.TB, g *Grid) *Hole {
	t.Helper()
	h, err := FindHole(g, MooreTracer{})
	require.NoError(t, err)
	require.NotNil(t, h)
	return h
}

func pts(coords ...int) []Point {
	out := make([]Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, Point{Row: coords[i], Col: coords[i+1]})
	}
	return out
}
