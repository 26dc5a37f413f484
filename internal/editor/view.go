package editor

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/render"
	"github.com/philipparndt/gotri/pkg/solver"
)

// Current returns the displayed triangle. Without a solution it is a
// placeholder built from the known sides, filled up with fixed defaults, and
// marked Fallback.
func (s *Session) Current() render.Shape {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current()
}

func (s *Session) current() render.Shape {
	if len(s.solutions) > 0 {
		sol := s.solutions[s.chosen]
		return render.Shape{
			Solution: sol,
			Points:   s.view.Place(geometry.NewSides(sol.A, sol.B, sol.C)),
		}
	}

	sides := fallbackSides
	for i, p := range s.input.Sides() {
		if p == nil {
			continue
		}
		switch i {
		case 0:
			sides.A = *p
		case 1:
			sides.B = *p
		case 2:
			sides.C = *p
		}
	}

	pts := s.view.Place(sides)
	angles := pts.Angles()
	return render.Shape{
		Solution: solver.Solution{
			A: sides.A, B: sides.B, C: sides.C,
			AngleA: angles[0], AngleB: angles[1], AngleC: angles[2],
		},
		Points:   pts,
		Fallback: true,
	}
}

// Frame returns a snapshot for drawing
func (s *Session) Frame() render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := render.Frame{
		Primary:   s.current(),
		Scale:     s.view.Scale,
		Grid:      s.grid,
		Construct: s.construct,
	}
	if s.showAlt && len(s.solutions) == 2 {
		alt := s.solutions[1-s.chosen]
		f.Alternate = &render.Shape{
			Solution: alt,
			Points:   s.view.Place(geometry.NewSides(alt.A, alt.B, alt.C)),
		}
	}
	return f
}

// HitTest finds the vertex or edge under a screen position
func (s *Session) HitTest(p geometry.Vector2) render.Target {
	return render.HitTest(s.Current().Points, p)
}

// HitVertexForAngle finds the vertex whose angle a double click at p edits
func (s *Session) HitVertexForAngle(p geometry.Vector2) (int, bool) {
	return render.HitVertex(s.Current().Points, p, render.AngleHitRadius)
}

// DragVertex moves vertex 0=A, 1=B or 2=C to a screen position. Moving A
// pans the drawing. Moving B or C turns the input into the three side
// lengths of the dragged shape, rounded to the configured places.
func (s *Session) DragVertex(vertex int, to geometry.Vector2) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vertex == 0 {
		s.view.Anchor = to
		return nil
	}

	pts := s.current().Points
	switch vertex {
	case 1:
		pts.B = to
	case 2:
		pts.C = to
	default:
		return fmt.Errorf("invalid vertex %d", vertex)
	}

	scale := s.view.Scale
	sides := pts.Sides()
	a := s.round(sides.A / scale)
	b := s.round(sides.B / scale)
	c := s.round(sides.C / scale)
	for _, v := range []float64{a, b, c} {
		if v <= 0 {
			return fmt.Errorf("%w: dragged onto another vertex", ErrInvalidSide)
		}
	}

	s.input = solver.Input{SideA: solver.Known(a), SideB: solver.Known(b), SideC: solver.Known(c)}
	s.solve()

	if s.snap45 {
		if err := s.applySnap(); err != nil {
			s.logger.Debug("snap skipped", zap.Error(err))
		}
	}
	return nil
}

func (s *Session) round(v float64) float64 {
	p := math.Pow(10, float64(s.opts.RoundPlaces))
	return math.Round(v*p) / p
}

// ApplySnap rounds angles A and B of the displayed solution to the nearest
// multiple of 45° and derives C. Side c is kept.
func (s *Session) ApplySnap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applySnap()
}

func (s *Session) applySnap() error {
	if len(s.solutions) == 0 {
		return ErrNoSolution
	}
	sol := s.solutions[s.chosen]

	a := snap45(sol.AngleA)
	b := snap45(sol.AngleB)
	c := 180 - a - b
	if c <= 0 {
		return fmt.Errorf("%w: snapped angles A=%v B=%v leave no room for C", ErrInvalidAngle, a, b)
	}

	s.input = solver.Input{
		SideC:  solver.Known(sol.C),
		AngleA: solver.Known(a),
		AngleB: solver.Known(b),
		AngleC: solver.Known(c),
	}
	s.solve()
	return nil
}

// snap45 rounds to the nearest multiple of 45°, at least 45°
func snap45(deg float64) float64 {
	return math.Max(45, math.Round(deg/45)*45)
}
