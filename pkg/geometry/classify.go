package geometry

import "math"

const (
	// SideTolerance is the difference below which two sides count as equal.
	SideTolerance = 1e-6

	// RightTolerance bounds |x²+y²-z²| for a right triangle, z the longest side.
	RightTolerance = 1e-3
)

// SideKind classifies a triangle by its side lengths
type SideKind int

const (
	Scalene SideKind = iota
	Isosceles
	Equilateral
)

func (k SideKind) String() string {
	switch k {
	case Equilateral:
		return "Equilateral"
	case Isosceles:
		return "Isosceles"
	default:
		return "Scalene"
	}
}

// AngleKind classifies a triangle by its largest angle
type AngleKind int

const (
	Acute AngleKind = iota
	Right
	Obtuse
)

func (k AngleKind) String() string {
	switch k {
	case Right:
		return "Right"
	case Obtuse:
		return "Obtuse"
	default:
		return "Acute"
	}
}

// Classification combines both kinds
type Classification struct {
	Sides SideKind
	Angle AngleKind
}

func (c Classification) String() string {
	return c.Sides.String() + ", " + c.Angle.String()
}

// Classify determines the side and angle kind of the triangle
func (s Sides) Classify() Classification {
	sorted := s.Sorted()
	x, y, z := sorted[0], sorted[1], sorted[2]

	near := func(p, q float64) bool { return math.Abs(p-q) < SideTolerance }

	var c Classification
	switch {
	case near(x, y) && near(y, z):
		c.Sides = Equilateral
	case near(x, y) || near(y, z) || near(x, z):
		c.Sides = Isosceles
	default:
		c.Sides = Scalene
	}

	legs := x*x + y*y
	switch {
	case math.Abs(legs-z*z) < RightTolerance:
		c.Angle = Right
	case legs > z*z:
		c.Angle = Acute
	default:
		c.Angle = Obtuse
	}

	return c
}
