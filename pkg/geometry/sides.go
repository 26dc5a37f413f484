package geometry

import (
	"math"
	"sort"
)

// Sides holds the three side lengths of a triangle, a opposite vertex A and
// so on.
type Sides struct {
	A, B, C float64
}

// NewSides creates a new set of side lengths
func NewSides(a, b, c float64) Sides {
	return Sides{A: a, B: b, C: c}
}

// Perimeter returns a + b + c
func (s Sides) Perimeter() float64 {
	return s.A + s.B + s.C
}

// Semiperimeter returns half the perimeter
func (s Sides) Semiperimeter() float64 {
	return s.Perimeter() / 2
}

// Area returns the area by Heron's formula. Lengths that violate the
// triangle inequality give 0.
func (s Sides) Area() float64 {
	p := s.Semiperimeter()
	return math.Sqrt(math.Max(0, p*(p-s.A)*(p-s.B)*(p-s.C)))
}

// Sorted returns the lengths in ascending order
func (s Sides) Sorted() [3]float64 {
	sorted := []float64{s.A, s.B, s.C}
	sort.Float64s(sorted)
	return [3]float64{sorted[0], sorted[1], sorted[2]}
}

// Inradius returns the radius of the inscribed circle
func (s Sides) Inradius() float64 {
	p := s.Semiperimeter()
	if p == 0 {
		return 0
	}
	return s.Area() / p
}

// Circumradius returns the radius of the circumscribed circle, +Inf for a
// degenerate triangle
func (s Sides) Circumradius() float64 {
	area := s.Area()
	if area == 0 {
		return math.Inf(1)
	}
	return s.A * s.B * s.C / (4 * area)
}

// Altitudes returns the heights onto a, b and c
func (s Sides) Altitudes() [3]float64 {
	area := s.Area()
	return [3]float64{altitude(area, s.A), altitude(area, s.B), altitude(area, s.C)}
}

func altitude(area, base float64) float64 {
	if base == 0 {
		return 0
	}
	return 2 * area / base
}

// Medians returns the median lengths from A, B and C
func (s Sides) Medians() [3]float64 {
	median := func(x, y, opposite float64) float64 {
		return 0.5 * math.Sqrt(math.Max(0, 2*x*x+2*y*y-opposite*opposite))
	}
	return [3]float64{
		median(s.B, s.C, s.A),
		median(s.A, s.C, s.B),
		median(s.A, s.B, s.C),
	}
}
