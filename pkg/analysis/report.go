package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/solver"
)

// EdgeInfo contains information about one edge of the triangle
type EdgeInfo struct {
	Name   string // "a", "b" or "c"
	Start  geometry.Vector2
	End    geometry.Vector2
	Length float64
}

// Centers holds the classical triangle centers. A center is nil when the
// placed triangle is too degenerate to construct it.
type Centers struct {
	Centroid     geometry.Vector2
	Incenter     *geometry.Vector2
	Circumcenter *geometry.Vector2
	Orthocenter  *geometry.Vector2
}

// Report contains the derived measurements of a solved triangle
type Report struct {
	Solution       solver.Solution
	Classification geometry.Classification
	Area           float64
	Perimeter      float64
	Inradius       float64
	Circumradius   float64
	Altitudes      [3]float64 // heights onto a, b, c
	Medians        [3]float64 // from A, B, C

	// Points is the triangle placed with A at the origin and B on the
	// positive x axis, in screen orientation (C has negative y).
	Points  geometry.Points
	Edges   []EdgeInfo
	Centers Centers
}

// Analyze performs the full analysis of a solution
func Analyze(sol solver.Solution) *Report {
	sides := geometry.NewSides(sol.A, sol.B, sol.C)
	points := geometry.Place(sides, geometry.Vector2{}, 1)

	report := &Report{
		Solution:       sol,
		Classification: sides.Classify(),
		Area:           sides.Area(),
		Perimeter:      sides.Perimeter(),
		Inradius:       sides.Inradius(),
		Circumradius:   sides.Circumradius(),
		Altitudes:      sides.Altitudes(),
		Medians:        sides.Medians(),
		Points:         points,
		Edges: []EdgeInfo{
			{Name: "a", Start: points.B, End: points.C, Length: sol.A},
			{Name: "b", Start: points.C, End: points.A, Length: sol.B},
			{Name: "c", Start: points.A, End: points.B, Length: sol.C},
		},
	}

	report.Centers.Centroid = points.Centroid()
	if p, ok := points.Incenter(); ok {
		report.Centers.Incenter = &p
	}
	if p, ok := points.Circumcenter(); ok {
		report.Centers.Circumcenter = &p
	}
	if p, ok := points.Orthocenter(); ok {
		report.Centers.Orthocenter = &p
	}

	return report
}

// LongestEdge returns the longest edge of the triangle
func (r *Report) LongestEdge() EdgeInfo {
	return sortedEdges(r.Edges)[len(r.Edges)-1]
}

// ShortestEdge returns the shortest edge of the triangle
func (r *Report) ShortestEdge() EdgeInfo {
	return sortedEdges(r.Edges)[0]
}

func sortedEdges(edges []EdgeInfo) []EdgeInfo {
	sorted := make([]EdgeInfo, len(edges))
	copy(sorted, edges)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length < sorted[j].Length
	})
	return sorted
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatAngle formats an angle in degrees
func FormatAngle(degrees float64) string {
	return fmt.Sprintf("%.2f°", degrees)
}

// FormatVector formats a 2D point
func FormatVector(v geometry.Vector2) string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// FormatCenter formats an optional center, "n/a" when it does not exist
func FormatCenter(v *geometry.Vector2) string {
	if v == nil {
		return "n/a"
	}
	return FormatVector(*v)
}
