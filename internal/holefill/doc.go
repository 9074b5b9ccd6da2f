// Package holefill locates a hole of erased samples inside a normalized
// grayscale grid, traces its boundary and reconstructs the interior.
//
// # Data Model
//
// A Grid is a dense row-major arena of float64 samples in [0,1]. The reserved
// value Sentinel (-1) marks a pixel as part of the hole. Boundaries and holes
// never copy samples; they hold Point coordinates into the Grid, so a fill
// written through the Grid is visible to every holder of those coordinates.
//
// Coordinates are (Row, Col), 0-based, with (0,0) at the top-left corner.
// Rows grow downward and columns grow rightward.
//
// # Pipeline
//
//	Grid -> MooreTracer -> Boundary -> Locate -> Hole -> Inpainter -> Grid
//
// The tracer walks the 8-connected border of the first hole it finds using
// Moore-Neighbor tracing with backtracking and Jacob's stopping criterion.
// Locate derives the covering rectangle and the interior pixels, and one of
// four strategies fills the interior:
//   - weighted: inverse-distance weighting over the whole boundary
//   - average: the boundary mean for every hole pixel
//   - gradient: bilinear blend of the covering rectangle corners
//   - spiral: 8-connected neighbour mean, visited in spiral order
//
// The gradient and spiral strategies need the four rectangle corners to be
// real samples and fail with ErrEdgeHole when the hole touches the image edge
// at a corner.
//
// Every strategy computes into a scratch buffer and commits only on success,
// so a failed fill leaves the grid untouched.
//
// # Thread Safety
//
// Grid and Session carry no internal locking; one pipeline may run per grid at
// a time. MooreTracer keeps no state between calls and may be shared freely.
//
// # Example
//
//	g, _ := holefill.NewGrid(rows)
//	s := holefill.NewSession(g)
//	_ = s.CreateHole(10, 20, 10, 20)
//	if err := s.Fill(holefill.StrategyWeighted, nil); err != nil {
//	    log.Fatal(err)
//	}
package holefill
