package solver

import (
	"fmt"
	"math"
	"strings"
)

const (
	// AngleSumTolerance is the allowed deviation of A+B+C from 180 degrees.
	AngleSumTolerance = 1e-5

	// UnitTolerance is how far the law of sines ratio may exceed 1 in the
	// ambiguous case before the input is treated as infeasible.
	UnitTolerance = 1e-12
)

// Input is a partial triangle. A nil field is unknown.
type Input struct {
	SideA  *float64 `yaml:"a,omitempty" json:"a,omitempty"`
	SideB  *float64 `yaml:"b,omitempty" json:"b,omitempty"`
	SideC  *float64 `yaml:"c,omitempty" json:"c,omitempty"`
	AngleA *float64 `yaml:"A,omitempty" json:"A,omitempty"`
	AngleB *float64 `yaml:"B,omitempty" json:"B,omitempty"`
	AngleC *float64 `yaml:"C,omitempty" json:"C,omitempty"`
}

// Known returns a pointer to v, for building an Input inline.
func Known(v float64) *float64 {
	return &v
}

// Sides returns the side fields indexed 0=a, 1=b, 2=c.
func (in Input) Sides() [3]*float64 {
	return [3]*float64{in.SideA, in.SideB, in.SideC}
}

// Angles returns the angle fields indexed 0=A, 1=B, 2=C.
func (in Input) Angles() [3]*float64 {
	return [3]*float64{in.AngleA, in.AngleB, in.AngleC}
}

// KnownSides returns how many sides are set.
func (in Input) KnownSides() int {
	return countKnown(in.Sides())
}

// KnownAngles returns how many angles are set.
func (in Input) KnownAngles() int {
	return countKnown(in.Angles())
}

// WithoutAngles returns a copy of the input with all angles unknown.
func (in Input) WithoutAngles() Input {
	in.AngleA, in.AngleB, in.AngleC = nil, nil, nil
	return in
}

func (in Input) String() string {
	names := [6]string{"a", "b", "c", "A", "B", "C"}
	fields := [6]*float64{in.SideA, in.SideB, in.SideC, in.AngleA, in.AngleB, in.AngleC}

	parts := make([]string, 0, len(fields))
	for i, f := range fields {
		if f != nil {
			parts = append(parts, fmt.Sprintf("%s=%g", names[i], *f))
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func countKnown(fields [3]*float64) int {
	n := 0
	for _, f := range fields {
		if f != nil {
			n++
		}
	}
	return n
}

// Solution is a fully determined triangle. Angles are in degrees.
type Solution struct {
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
	C float64 `yaml:"c" json:"c"`

	AngleA float64 `yaml:"A" json:"A"`
	AngleB float64 `yaml:"B" json:"B"`
	AngleC float64 `yaml:"C" json:"C"`
}

// Sides returns a, b, c.
func (s Solution) Sides() [3]float64 {
	return [3]float64{s.A, s.B, s.C}
}

// Angles returns A, B, C in degrees.
func (s Solution) Angles() [3]float64 {
	return [3]float64{s.AngleA, s.AngleB, s.AngleC}
}

// Input returns the solution as a fully specified Input.
func (s Solution) Input() Input {
	return Input{
		SideA:  Known(s.A),
		SideB:  Known(s.B),
		SideC:  Known(s.C),
		AngleA: Known(s.AngleA),
		AngleB: Known(s.AngleB),
		AngleC: Known(s.AngleC),
	}
}

// Valid reports whether the solution describes a real, non-degenerate
// triangle.
func (s Solution) Valid() bool {
	values := [6]float64{s.A, s.B, s.C, s.AngleA, s.AngleB, s.AngleC}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return math.Abs(s.AngleA+s.AngleB+s.AngleC-180) <= AngleSumTolerance
}

func (s Solution) String() string {
	return fmt.Sprintf("a=%.3f b=%.3f c=%.3f A=%.3f° B=%.3f° C=%.3f°",
		s.A, s.B, s.C, s.AngleA, s.AngleB, s.AngleC)
}
