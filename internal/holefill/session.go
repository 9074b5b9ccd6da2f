package holefill

import "fmt"

// Session runs the hole pipeline over one grid: create a hole, locate it and
// fill it. It caches the located hole until the grid changes.
//
// A Session is not safe for concurrent use.
type Session struct {
	grid      *Grid
	reference *Grid
	tracer    Tracer
	weight    *DefaultWeight
	hole      *Hole
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithTracer replaces the default MooreTracer.
func WithTracer(t Tracer) SessionOption {
	return func(s *Session) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithWeightParams sets the parameters used by FillWeighted when none are
// given. Invalid params are ignored.
func WithWeightParams(p WeightParams) SessionOption {
	return func(s *Session) {
		_ = s.weight.SetParams(p)
	}
}

// NewSession wraps g. A copy of g is kept as the reference image for
// comparing fills against the samples as loaded.
func NewSession(g *Grid, opts ...SessionOption) *Session {
	s := &Session{
		grid:      g,
		reference: g.Clone(),
		tracer:    MooreTracer{},
		weight:    &DefaultWeight{params: DefaultWeightParams()},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the working grid.
func (s *Session) Grid() *Grid { return s.grid }

// Reference returns the grid as it was when the session started.
func (s *Session) Reference() *Grid { return s.reference }

// Hole returns the cached hole, or nil when none has been located since the
// grid last changed.
func (s *Session) Hole() *Hole { return s.hole }

// Weight returns the session's default weight function. Its parameters may be
// changed with SetParams at any time.
func (s *Session) Weight() *DefaultWeight { return s.weight }

// CreateHole erases the half-open rectangle [rowStart,rowEnd)×[colStart,colEnd)
// and drops the cached hole.
func (s *Session) CreateHole(rowStart, rowEnd, colStart, colEnd int) error {
	if err := s.grid.CreateHole(rowStart, rowEnd, colStart, colEnd); err != nil {
		return err
	}
	s.hole = nil
	return nil
}

// FindBoundary traces the hole boundary. It returns nil when the grid has no hole.
func (s *Session) FindBoundary() (Boundary, error) {
	return s.tracer.Trace(s.grid)
}

// FindHole locates the hole and caches it. It returns nil when the grid has
// no hole.
func (s *Session) FindHole() (*Hole, error) {
	h, err := FindHole(s.grid, s.tracer)
	if err != nil {
		return nil, err
	}
	s.hole = h
	return h, nil
}

// FillWeighted fills the hole with DefaultWeight using params.
func (s *Session) FillWeighted(params WeightParams) error {
	w, err := NewDefaultWeight(params)
	if err != nil {
		return err
	}
	return s.fill(StrategyWeighted, w)
}

// FillAverage fills the hole with the boundary mean.
func (s *Session) FillAverage() error {
	return s.fill(StrategyAverage, nil)
}

// FillGradient fills the hole from the covering rectangle corners.
func (s *Session) FillGradient() error {
	return s.fill(StrategyGradient, nil)
}

// FillSpiral fills the hole ring by ring from resolved neighbours.
func (s *Session) FillSpiral() error {
	return s.fill(StrategySpiral, nil)
}

// Fill runs strategy. params overrides the session weight parameters for
// StrategyWeighted when non-nil.
func (s *Session) Fill(strategy Strategy, params *WeightParams) error {
	if strategy == StrategyWeighted && params != nil {
		return s.FillWeighted(*params)
	}
	var w WeightFunc
	if strategy == StrategyWeighted {
		w = s.weight
	}
	return s.fill(strategy, w)
}

func (s *Session) fill(strategy Strategy, w WeightFunc) error {
	h := s.hole
	if h == nil {
		var err error
		if h, err = s.FindHole(); err != nil {
			return fmt.Errorf("locate hole: %w", err)
		}
		if h == nil {
			return ErrNoHole
		}
	}

	if err := NewInpainter(s.grid).Fill(h, strategy, w); err != nil {
		return fmt.Errorf("%s fill: %w", strategy, err)
	}
	s.hole = nil
	return nil
}
