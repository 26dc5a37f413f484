package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/solver"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func solve345(t *testing.T) solver.Solution {
	t.Helper()
	sols := solver.Solve(solver.Input{
		SideA: solver.Known(3),
		SideB: solver.Known(4),
		SideC: solver.Known(5),
	})
	require.Len(t, sols, 1)
	return sols[0]
}

func TestAnalyzeRightTriangle(t *testing.T) {
	r := Analyze(solve345(t))

	assert.Equal(t, "Scalene, Right", r.Classification.String())
	assert.InDelta(t, 6.0, r.Area, 1e-9)
	assert.InDelta(t, 12.0, r.Perimeter, 1e-9)
	assert.InDelta(t, 1.0, r.Inradius, 1e-9)
	assert.InDelta(t, 2.5, r.Circumradius, 1e-9)

	if diff := cmp.Diff([3]float64{4, 3, 2.4}, r.Altitudes, approx); diff != "" {
		t.Errorf("altitudes mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 2.5, r.Medians[2], 1e-9)
}

func TestAnalyzeCenters(t *testing.T) {
	r := Analyze(solve345(t))

	require.NotNil(t, r.Centers.Incenter)
	require.NotNil(t, r.Centers.Circumcenter)
	require.NotNil(t, r.Centers.Orthocenter)

	// The right angle is at C, so the orthocenter is C and the circumcenter
	// is the midpoint of the hypotenuse AB.
	if diff := cmp.Diff(r.Points.C, *r.Centers.Orthocenter, approx); diff != "" {
		t.Errorf("orthocenter mismatch (-want +got):\n%s", diff)
	}
	mid := geometry.Midpoint(r.Points.A, r.Points.B)
	if diff := cmp.Diff(mid, *r.Centers.Circumcenter, approx); diff != "" {
		t.Errorf("circumcenter mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, r.Inradius, -r.Centers.Incenter.Y, 1e-9)
}

func TestAnalyzeEdges(t *testing.T) {
	r := Analyze(solve345(t))

	require.Len(t, r.Edges, 3)
	assert.Equal(t, "c", r.LongestEdge().Name)
	assert.Equal(t, "a", r.ShortestEdge().Name)

	for _, e := range r.Edges {
		assert.InDelta(t, e.Length, e.Start.Distance(e.End), 1e-9, "edge %s", e.Name)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500 units", FormatMeasurement(1.5, ""))
	assert.Equal(t, "2.000 mm", FormatMeasurement(2, "mm"))
	assert.Equal(t, "36.87°", FormatAngle(36.8699))
	assert.Equal(t, "(1.000, -2.500)", FormatVector(geometry.NewVector2(1, -2.5)))
	assert.Equal(t, "n/a", FormatCenter(nil))
}
