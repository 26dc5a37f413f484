// Package editor holds the state of an interactive triangle editing session:
// the partial input, its solutions, the chosen solution and the viewport.
// All methods are safe for concurrent use.
package editor

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/render"
	"github.com/philipparndt/gotri/pkg/solver"
)

var (
	ErrInvalidSide  = errors.New("side must be a finite number greater than 0")
	ErrInvalidAngle = errors.New("angle must be between 0 and 180 degrees")
	ErrNoSolution   = errors.New("current input has no solution")
	ErrUnknownField = errors.New("unknown field")
)

// fallbackSides stand in for unknown sides when the input has no solution
var fallbackSides = geometry.NewSides(100, 120, 90)

// Options configures a new session
type Options struct {
	Defaults    geometry.Sides
	Viewport    render.Viewport
	RoundPlaces int

	Grid      bool
	Construct bool
	Snap45    bool
	ShowAlt   bool

	Logger *zap.Logger
}

// DefaultOptions returns the standard session setup
func DefaultOptions() Options {
	return Options{
		Defaults:    geometry.NewSides(100, 140, 160),
		Viewport:    render.NewViewport(),
		RoundPlaces: 3,
	}
}

// Session is the editing state behind a triangle view
type Session struct {
	mu     sync.Mutex
	id     uuid.UUID
	logger *zap.Logger
	opts   Options

	input     solver.Input
	solutions []solver.Solution
	chosen    int
	view      render.Viewport

	grid      bool
	construct bool
	snap45    bool
	showAlt   bool
}

// New creates a session with the default sides as input
func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Session{
		id:   uuid.New(),
		opts: opts,
	}
	s.logger = opts.Logger.With(zap.String("session", s.id.String()))
	s.reset()
	return s
}

// ID identifies the session in logs
func (s *Session) ID() string {
	return s.id.String()
}

func (s *Session) reset() {
	s.input = solver.Input{
		SideA: solver.Known(s.opts.Defaults.A),
		SideB: solver.Known(s.opts.Defaults.B),
		SideC: solver.Known(s.opts.Defaults.C),
	}
	s.view = s.opts.Viewport
	s.grid = s.opts.Grid
	s.construct = s.opts.Construct
	s.snap45 = s.opts.Snap45
	s.showAlt = s.opts.ShowAlt
	s.solve()
}

// solve recomputes the solutions and selects the first one
func (s *Session) solve() {
	s.solutions = solver.Solve(s.input)
	s.chosen = 0
	s.logger.Debug("solved",
		zap.Stringer("input", s.input),
		zap.Stringer("case", solver.Classify(s.input)),
		zap.Int("solutions", len(s.solutions)))
}

// Reset restores the default input, view and toggles
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
}

// Input returns a copy of the current partial input
func (s *Session) Input() solver.Input {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := s.input
	for _, p := range []**float64{&in.SideA, &in.SideB, &in.SideC, &in.AngleA, &in.AngleB, &in.AngleC} {
		if *p != nil {
			*p = solver.Known(**p)
		}
	}
	return in
}

// SetInput replaces the whole input, as when loading a file
func (s *Session) SetInput(in solver.Input) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = in
	s.solve()
}

// Solutions returns all solutions of the current input
func (s *Session) Solutions() []solver.Solution {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]solver.Solution(nil), s.solutions...)
}

// Chosen returns the index of the displayed solution
func (s *Session) Chosen() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chosen
}

// Viewport returns the current viewport
func (s *Session) Viewport() render.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view
}

// SetSide sets side "a", "b" or "c" and re-solves
func (s *Session) SetSide(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s=%v", ErrInvalidSide, name, v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	field, err := sideField(&s.input, name)
	if err != nil {
		return err
	}
	*field = solver.Known(v)
	s.solve()
	return nil
}

// SetAngle sets angle "A", "B" or "C" in degrees and re-solves
func (s *Session) SetAngle(name string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v >= 180 {
		return fmt.Errorf("%w: %s=%v", ErrInvalidAngle, name, v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	field, err := angleField(&s.input, name)
	if err != nil {
		return err
	}
	*field = solver.Known(v)
	s.solve()
	return nil
}

// ClearField marks a side or angle as unknown and re-solves
func (s *Session) ClearField(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	field, err := sideField(&s.input, name)
	if err != nil {
		if field, err = angleField(&s.input, name); err != nil {
			return err
		}
	}
	*field = nil
	s.solve()
	return nil
}

func sideField(in *solver.Input, name string) (**float64, error) {
	switch name {
	case "a":
		return &in.SideA, nil
	case "b":
		return &in.SideB, nil
	case "c":
		return &in.SideC, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func angleField(in *solver.Input, name string) (**float64, error) {
	switch name {
	case "A":
		return &in.AngleA, nil
	case "B":
		return &in.AngleB, nil
	case "C":
		return &in.AngleC, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Cycle shows the next solution
func (s *Session) Cycle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.solutions) == 0 {
		return ErrNoSolution
	}
	s.chosen = (s.chosen + 1) % len(s.solutions)
	return nil
}

// ZoomIn enlarges the drawing
func (s *Session) ZoomIn() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.ZoomIn()
}

// ZoomOut shrinks the drawing
func (s *Session) ZoomOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.ZoomOut()
}

// Zoom applies a relative scroll zoom
func (s *Session) Zoom(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Zoom(delta)
}

// Fit restores the initial scale
func (s *Session) Fit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.Scale = s.opts.Viewport.Scale
}

// ToggleGrid switches the background grid and returns the new state
func (s *Session) ToggleGrid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = !s.grid
	return s.grid
}

// ToggleConstruct switches the construction lines and returns the new state
func (s *Session) ToggleConstruct() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.construct = !s.construct
	return s.construct
}

// ToggleSnap switches 45° snapping after drags and returns the new state
func (s *Session) ToggleSnap() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap45 = !s.snap45
	return s.snap45
}

// ToggleAlt switches drawing of the second solution and returns the new state
func (s *Session) ToggleAlt() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showAlt = !s.showAlt
	return s.showAlt
}

// Toggles is a snapshot of the display switches
type Toggles struct {
	Grid      bool
	Construct bool
	Snap45    bool
	ShowAlt   bool
}

// Toggles returns the current display switches
func (s *Session) Toggles() Toggles {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Toggles{
		Grid:      s.grid,
		Construct: s.construct,
		Snap45:    s.snap45,
		ShowAlt:   s.showAlt,
	}
}
