package holefill

type spiralSide int

const (
	sideRight spiralSide = iota
	sideDown
	sideLeft
	sideUp
)

// Spiral visits every position of a rectangle in clockwise spiral order:
// right along the top row, down the right column, left along the bottom row,
// up the left column, then one ring inward.
//
// Each visited position is 4-adjacent to the one before it, so a fill that
// walks the spiral always has at least one resolved neighbour.
//
//	s := NewSpiral(rect)
//	for s.HasNext() {
//	    p := s.Next()
//	    ...
//	}
type Spiral struct {
	rect Rect

	top, bottom, left, right int
	pos                      Point
	side                     spiralSide
	remaining                int
}

// NewSpiral returns a traversal positioned at the top-left corner of r.
func NewSpiral(r Rect) *Spiral {
	s := &Spiral{rect: r}
	s.Reset()
	return s
}

// Reset rewinds the traversal to its first position.
func (s *Spiral) Reset() {
	s.top, s.bottom = s.rect.TopLeft.Row, s.rect.BottomRight.Row
	s.left, s.right = s.rect.TopLeft.Col, s.rect.BottomRight.Col
	s.pos = s.rect.TopLeft
	s.side = sideRight
	s.remaining = s.Len()
}

// Len returns the total number of positions, rows×cols of the rectangle.
func (s *Spiral) Len() int {
	h, w := s.rect.Height(), s.rect.Width()
	if h <= 0 || w <= 0 {
		return 0
	}
	return h * w
}

// HasNext reports whether positions remain.
func (s *Spiral) HasNext() bool {
	return s.remaining > 0
}

// Next returns the current position and advances. It must only be called
// while HasNext is true.
func (s *Spiral) Next() Point {
	p := s.pos
	s.remaining--
	if s.remaining > 0 {
		s.advance()
	}
	return p
}

// advance moves one cell along the current side, turning and shrinking the
// finished edge inward when the side is exhausted.
func (s *Spiral) advance() {
	for turns := 0; turns < 4; turns++ {
		switch s.side {
		case sideRight:
			if s.pos.Col < s.right {
				s.pos.Col++
				return
			}
			s.top++
			s.side = sideDown
		case sideDown:
			if s.pos.Row < s.bottom {
				s.pos.Row++
				return
			}
			s.right--
			s.side = sideLeft
		case sideLeft:
			if s.pos.Col > s.left {
				s.pos.Col--
				return
			}
			s.bottom--
			s.side = sideUp
		case sideUp:
			if s.pos.Row > s.top {
				s.pos.Row--
				return
			}
			s.left++
			s.side = sideRight
		}
	}
}

// Positions returns the whole remaining sequence without consuming s.
func (s *Spiral) Positions() []Point {
	c := *s
	out := make([]Point, 0, c.remaining)
	for c.HasNext() {
		out = append(out, c.Next())
	}
	return out
}
