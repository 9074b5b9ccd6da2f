package holefill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpiral_Order(t *testing.T) {
	cases := []struct {
		name string
		rect Rect
		want []Point
	}{
		{"Square3", NewRect(0, 2, 0, 2), pts(0, 0, 0, 1, 0, 2, 1, 2, 2, 2, 2, 1, 2, 0, 1, 0, 1, 1)},
		{"Square2", NewRect(4, 5, 4, 5), pts(4, 4, 4, 5, 5, 5, 5, 4)},
		{"SingleRow", NewRect(1, 1, 0, 2), pts(1, 0, 1, 1, 1, 2)},
		{"SingleCol", NewRect(0, 2, 3, 3), pts(0, 3, 1, 3, 2, 3)},
		{"SinglePixel", NewRect(2, 2, 2, 2), pts(2, 2)},
		{"Wide", NewRect(0, 1, 0, 3), pts(0, 0, 0, 1, 0, 2, 0, 3, 1, 3, 1, 2, 1, 1, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpiral(tc.rect)
			assert.Equal(t, len(tc.want), s.Len())

			var got []Point
			for s.HasNext() {
				got = append(got, s.Next())
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSpiral_CoversRectangleOnce(t *testing.T) {
	rect := NewRect(1, 5, 2, 8)
	got := rect.Spiral().Positions()
	assert.Len(t, got, rect.Width()*rect.Height())

	seen := make(map[Point]bool)
	for i, p := range got {
		assert.True(t, rect.Contains(p), "%v outside %v", p, rect)
		assert.False(t, seen[p], "%v visited twice", p)
		seen[p] = true
		if i > 0 {
			prev := got[i-1]
			d := abs(prev.Row-p.Row) + abs(prev.Col-p.Col)
			assert.Equal(t, 1, d, "step %d: %v -> %v not adjacent", i, prev, p)
		}
	}
}

func TestSpiral_Restartable(t *testing.T) {
	s := NewSpiral(NewRect(0, 3, 0, 3))
	first := s.Positions()

	// Positions does not consume.
	assert.True(t, s.HasNext())

	for i := 0; i < 5; i++ {
		s.Next()
	}
	s.Reset()
	assert.Equal(t, first, s.Positions())

	// Independent instances replay the same order.
	assert.Equal(t, first, NewSpiral(NewRect(0, 3, 0, 3)).Positions())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
