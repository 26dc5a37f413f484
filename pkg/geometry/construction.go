package geometry

import "math"

const (
	// parallelTolerance is the determinant below which two lines are treated
	// as parallel.
	parallelTolerance = 1e-9

	degenerateTolerance = 1e-12
)

// Midpoint returns the point halfway between p and q
func Midpoint(p, q Vector2) Vector2 {
	return p.Add(q).Mul(0.5)
}

// LineIntersection intersects the line through p1, p2 with the line through
// p3, p4. ok is false for parallel lines.
func LineIntersection(p1, p2, p3, p4 Vector2) (point Vector2, ok bool) {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < parallelTolerance {
		return Vector2{}, false
	}

	c12 := p1.X*p2.Y - p1.Y*p2.X
	c34 := p3.X*p4.Y - p3.Y*p4.X
	return Vector2{
		X: (c12*(p3.X-p4.X) - (p1.X-p2.X)*c34) / denom,
		Y: (c12*(p3.Y-p4.Y) - (p1.Y-p2.Y)*c34) / denom,
	}, true
}

// FootOfPerpendicular projects p onto the line through a and b
func FootOfPerpendicular(p, a, b Vector2) Vector2 {
	v := b.Sub(a)
	lenSq := v.Dot(v)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(v) / lenSq
	return a.Add(v.Mul(t))
}

// DistanceToSegment returns the distance from p to the segment a-b
func DistanceToSegment(p, a, b Vector2) float64 {
	v := b.Sub(a)
	w := p.Sub(a)

	c1 := v.Dot(w)
	if c1 <= 0 {
		return p.Distance(a)
	}
	c2 := v.Dot(v)
	if c2 <= c1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(v.Mul(c1 / c2)))
}

// BisectorPoint returns a point on the internal angle bisector at v, the
// angle spanned towards p1 and p2. The segment length is (b+c)/4·scale but
// at least 30. ok is false when v coincides with a neighbour.
func BisectorPoint(v, p1, p2 Vector2, scale float64) (point Vector2, ok bool) {
	b := v.Distance(p1)
	c := v.Distance(p2)
	if b < degenerateTolerance || c < degenerateTolerance {
		return Vector2{}, false
	}

	dir := p1.Sub(v).Mul(1 / b).Add(p2.Sub(v).Mul(1 / c))
	mag := dir.Length()
	if mag < degenerateTolerance {
		return Vector2{}, false
	}

	length := math.Max(30, (b+c)/4*scale)
	return v.Add(dir.Mul(length / mag)), true
}

// Centroid returns the intersection of the medians
func (p Points) Centroid() Vector2 {
	return p.A.Add(p.B).Add(p.C).Mul(1.0 / 3.0)
}

// Incenter returns the intersection of the angle bisectors
func (p Points) Incenter() (Vector2, bool) {
	s := p.Sides()
	sum := s.Perimeter()
	if sum < degenerateTolerance {
		return Vector2{}, false
	}
	return p.A.Mul(s.A).Add(p.B.Mul(s.B)).Add(p.C.Mul(s.C)).Mul(1 / sum), true
}

// Circumcenter returns the intersection of the perpendicular bisectors
func (p Points) Circumcenter() (Vector2, bool) {
	mAB := Midpoint(p.A, p.B)
	mBC := Midpoint(p.B, p.C)
	perpAB := p.B.Sub(p.A).Perp()
	perpBC := p.C.Sub(p.B).Perp()
	return LineIntersection(mAB, mAB.Add(perpAB), mBC, mBC.Add(perpBC))
}

// Orthocenter returns the intersection of the altitudes
func (p Points) Orthocenter() (Vector2, bool) {
	footA := FootOfPerpendicular(p.A, p.B, p.C)
	footB := FootOfPerpendicular(p.B, p.C, p.A)
	return LineIntersection(p.A, footA, p.B, footB)
}

// AltitudeFeet returns the feet of the altitudes from A, B and C
func (p Points) AltitudeFeet() [3]Vector2 {
	return [3]Vector2{
		FootOfPerpendicular(p.A, p.B, p.C),
		FootOfPerpendicular(p.B, p.C, p.A),
		FootOfPerpendicular(p.C, p.A, p.B),
	}
}

// EdgeMidpoints returns the midpoints of BC, CA and AB
func (p Points) EdgeMidpoints() [3]Vector2 {
	return [3]Vector2{
		Midpoint(p.B, p.C),
		Midpoint(p.C, p.A),
		Midpoint(p.A, p.B),
	}
}
