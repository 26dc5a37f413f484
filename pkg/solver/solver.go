package solver

import "math"

// Solve returns every triangle consistent with in. The result is empty when
// the input is infeasible or does not determine a triangle. When two
// solutions exist (the ambiguous SSA case), index 0 holds the branch whose
// solved angle is acute and index 1 the supplementary branch.
func Solve(in Input) []Solution {
	c := Classify(in)
	s := newState(in)

	switch {
	case c == SSS:
		s.solveSSS()
	case c == AAS:
		s.solveAngles()
	case c.IsSAS():
		s.solveSAS(c.sasIncluded())
	case c.IsSSA():
		angle, other := c.ssaIndices()
		s.solveSSA(angle, other)
	}

	return s.solutions
}

// state carries the known values of one Solve call. Unknown entries are NaN
// and never read by the case that was dispatched.
type state struct {
	sides     [3]float64
	angles    [3]float64 // degrees
	solutions []Solution
}

func newState(in Input) *state {
	s := &state{}
	for i, f := range in.Sides() {
		s.sides[i] = valueOrNaN(f)
	}
	for i, f := range in.Angles() {
		s.angles[i] = valueOrNaN(f)
	}
	return s
}

func valueOrNaN(f *float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return *f
}

// push appends the candidate if it is a valid triangle.
func (s *state) push(sides, angles [3]float64) {
	sol := Solution{
		A: sides[0], B: sides[1], C: sides[2],
		AngleA: angles[0], AngleB: angles[1], AngleC: angles[2],
	}
	if sol.Valid() {
		s.solutions = append(s.solutions, sol)
	}
}

func (s *state) solveSSS() {
	var angles [3]float64
	angles[0] = cosineRuleAngle(s.sides, 0)
	angles[1] = cosineRuleAngle(s.sides, 1)
	angles[2] = 180 - angles[0] - angles[1]
	s.push(s.sides, angles)
}

func (s *state) solveAngles() {
	angles := s.angles
	for i := range angles {
		if math.IsNaN(angles[i]) {
			angles[i] = 180 - angles[(i+1)%3] - angles[(i+2)%3]
		}
	}

	for i, side := range s.sides {
		if math.IsNaN(side) {
			continue
		}
		k := side / sinDeg(angles[i])
		var sides [3]float64
		for j := range sides {
			if j == i {
				sides[j] = side
			} else {
				sides[j] = k * sinDeg(angles[j])
			}
		}
		s.push(sides, angles)
		return
	}
}

// solveSAS solves for the side opposite the included angle at index m, then
// the angle at the next vertex by the cosine rule, then the last angle.
func (s *state) solveSAS(m int) {
	j, k := (m+1)%3, (m+2)%3
	sides := s.sides
	sides[m] = math.Sqrt(sides[j]*sides[j] + sides[k]*sides[k] -
		2*sides[j]*sides[k]*cosDeg(s.angles[m]))

	var angles [3]float64
	angles[m] = s.angles[m]
	angles[j] = cosineRuleAngle(sides, j)
	angles[k] = 180 - angles[m] - angles[j]
	s.push(sides, angles)
}

// solveSSA handles the ambiguous case: the angle at index x and its opposite
// side are known, as is side y. Both arcsine branches for the angle opposite
// y are generated and then filtered.
func (s *state) solveSSA(x, y int) {
	z := 3 - x - y
	known := s.angles[x]

	ratio := s.sides[y] * sinDeg(known) / s.sides[x]
	if math.Abs(ratio) > 1+UnitTolerance {
		return
	}

	first := toDeg(math.Asin(clamp(ratio)))
	branches := []float64{first, 180 - first}
	if branches[1]-branches[0] <= AngleSumTolerance {
		// A right angle opposite y: both branches describe the same triangle.
		branches = branches[:1]
	}

	k := s.sides[x] / sinDeg(known)
	for _, theta := range branches {
		rest := 180 - known - theta
		if !(rest > 0) {
			continue
		}

		var sides, angles [3]float64
		sides[x], sides[y], sides[z] = s.sides[x], s.sides[y], k*sinDeg(rest)
		angles[x], angles[y], angles[z] = known, theta, rest
		s.push(sides, angles)
	}
}

// cosineRuleAngle returns the angle opposite sides[i] in degrees.
func cosineRuleAngle(sides [3]float64, i int) float64 {
	p, q := sides[(i+1)%3], sides[(i+2)%3]
	return toDeg(math.Acos(clamp((p*p + q*q - sides[i]*sides[i]) / (2 * p * q))))
}

// clamp limits x to [-1, 1]. NaN passes through.
func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

func sinDeg(deg float64) float64 { return math.Sin(toRad(deg)) }
func cosDeg(deg float64) float64 { return math.Cos(toRad(deg)) }
