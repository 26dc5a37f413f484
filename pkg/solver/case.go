package solver

// Case identifies which congruence pattern an Input matches.
type Case int

const (
	Underdetermined Case = iota
	SSS
	AAS // two or more angles, scaled by the first known side

	// SAS: the named angle is the included one and its opposite side is unknown.
	SASIncludedA
	SASIncludedB
	SASIncludedC

	// SSA: angle X and its opposite side are known together with side y;
	// the angle opposite y is solved for.
	SSAAngleAWithB
	SSAAngleAWithC
	SSAAngleBWithA
	SSAAngleBWithC
	SSAAngleCWithA
	SSAAngleCWithB
)

var caseNames = map[Case]string{
	Underdetermined: "underdetermined",
	SSS:             "SSS",
	AAS:             "AAS",
	SASIncludedA:    "SAS(A)",
	SASIncludedB:    "SAS(B)",
	SASIncludedC:    "SAS(C)",
	SSAAngleAWithB:  "SSA(A,a,b)",
	SSAAngleAWithC:  "SSA(A,a,c)",
	SSAAngleBWithA:  "SSA(B,b,a)",
	SSAAngleBWithC:  "SSA(B,b,c)",
	SSAAngleCWithA:  "SSA(C,c,a)",
	SSAAngleCWithB:  "SSA(C,c,b)",
}

func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsSAS reports whether c is one of the three SAS orientations.
func (c Case) IsSAS() bool {
	return c >= SASIncludedA && c <= SASIncludedC
}

// IsSSA reports whether c is one of the six ambiguous orientations.
func (c Case) IsSSA() bool {
	return c >= SSAAngleAWithB && c <= SSAAngleCWithB
}

// sasIncluded returns the index of the included angle.
func (c Case) sasIncluded() int {
	return int(c - SASIncludedA)
}

// ssaIndices returns the known angle index and the other known side index.
func (c Case) ssaIndices() (angle, other int) {
	switch c {
	case SSAAngleAWithB:
		return 0, 1
	case SSAAngleAWithC:
		return 0, 2
	case SSAAngleBWithA:
		return 1, 0
	case SSAAngleBWithC:
		return 1, 2
	case SSAAngleCWithA:
		return 2, 0
	default:
		return 2, 1
	}
}

var sasCases = [3]Case{SASIncludedA, SASIncludedB, SASIncludedC}

// ssaCases is indexed by [known angle][other side].
var ssaCases = [3][3]Case{
	{Underdetermined, SSAAngleAWithB, SSAAngleAWithC},
	{SSAAngleBWithA, Underdetermined, SSAAngleBWithC},
	{SSAAngleCWithA, SSAAngleCWithB, Underdetermined},
}

// Classify determines the congruence case from which fields are known.
// Values are not inspected.
func Classify(in Input) Case {
	sides := in.Sides()
	angles := in.Angles()
	ns, na := countKnown(sides), countKnown(angles)

	switch {
	case ns == 3:
		return SSS
	case na >= 2:
		return AAS
	case ns == 2 && na == 1:
		missing := indexOf(sides, false)
		angle := indexOf(angles, true)
		if angle == missing {
			return sasCases[angle]
		}
		// The other known side is neither the missing one nor the one
		// opposite the known angle.
		other := 3 - missing - angle
		return ssaCases[angle][other]
	default:
		return Underdetermined
	}
}

// indexOf returns the first index whose presence matches known.
func indexOf(fields [3]*float64, known bool) int {
	for i, f := range fields {
		if (f != nil) == known {
			return i
		}
	}
	return -1
}
