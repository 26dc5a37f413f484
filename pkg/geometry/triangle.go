package geometry

import "math"

// Points holds the vertex positions of a placed triangle
type Points struct {
	A, B, C Vector2
}

// Place lays out a triangle with the given sides in screen space. A sits at
// anchor, B lies on the horizontal through A at distance c, and C is the
// intersection of the circles of radius b around A and a around B that lies
// above the baseline (smaller y). Lengths are multiplied by scale.
//
// Side lengths that do not close a triangle still produce points: the
// circle intersection height is clamped to 0, putting C on the baseline.
func Place(s Sides, anchor Vector2, scale float64) Points {
	a := anchor
	b := anchor.Add(NewVector2(s.C*scale, 0))
	r0 := s.B * scale // around A
	r1 := s.A * scale // around B

	delta := b.Sub(a)
	d := delta.Length()
	if d < 1e-6 {
		return Points{A: a, B: b, C: NewVector2(a.X, a.Y-r0)}
	}

	along := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h2 := r0*r0 - along*along
	if h2 < 0 {
		h2 = 0
	}

	unit := delta.Mul(1 / d)
	mid := a.Add(unit.Mul(along))
	offset := unit.Perp().Mul(math.Sqrt(h2))

	c1 := mid.Add(offset)
	c2 := mid.Sub(offset)
	c := c2
	if c1.Y < c2.Y {
		c = c1
	}
	return Points{A: a, B: b, C: c}
}

// Vertices returns A, B, C in order
func (p Points) Vertices() [3]Vector2 {
	return [3]Vector2{p.A, p.B, p.C}
}

// Sides returns the edge lengths a=|BC|, b=|CA|, c=|AB|
func (p Points) Sides() Sides {
	return Sides{
		A: p.B.Distance(p.C),
		B: p.C.Distance(p.A),
		C: p.A.Distance(p.B),
	}
}

// Area returns the area from the cross product of two edges
func (p Points) Area() float64 {
	return math.Abs(p.B.Sub(p.A).Cross(p.C.Sub(p.A))) / 2
}

// Perimeter returns the total length of all edges
func (p Points) Perimeter() float64 {
	return p.Sides().Perimeter()
}

// Angles returns the interior angles at A, B and C in degrees
func (p Points) Angles() [3]float64 {
	angle := func(at, q, r Vector2) float64 {
		u := q.Sub(at).Normalize()
		v := r.Sub(at).Normalize()
		cos := math.Max(-1, math.Min(1, u.Dot(v)))
		return math.Acos(cos) * 180 / math.Pi
	}
	return [3]float64{
		angle(p.A, p.B, p.C),
		angle(p.B, p.C, p.A),
		angle(p.C, p.A, p.B),
	}
}

// Bounds returns the bounding box of the three vertices
func (p Points) Bounds() BoundingBox {
	return BoundsOf(p.A, p.B, p.C)
}
