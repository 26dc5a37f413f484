package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/philipparndt/gotri/pkg/analysis"
	"github.com/philipparndt/gotri/pkg/solver"
)

// result is the machine readable outcome of one input
type result struct {
	Input     solver.Input      `json:"input"`
	Case      string            `json:"case"`
	Solutions []solver.Solution `json:"solutions"`
}

func newResult(in solver.Input) result {
	solutions := solver.Solve(in)
	if solutions == nil {
		solutions = []solver.Solution{}
	}
	return result{
		Input:     in,
		Case:      solver.Classify(in).String(),
		Solutions: solutions,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// printResult writes a human readable report of every solution
func printResult(w io.Writer, r result) {
	fmt.Fprintf(w, "%s %s\n", caseStyle.Render(r.Case), r.Input)

	switch len(r.Solutions) {
	case 0:
		printWarning(w, "  no triangle satisfies this input")
		return
	case 2:
		printWarning(w, "  ambiguous: two triangles satisfy this input")
	}

	for i, sol := range r.Solutions {
		fmt.Fprintln(w)
		printHeading(w, fmt.Sprintf("Solution %d", i+1))
		printReport(w, analysis.Analyze(sol))
	}
}

func printReport(w io.Writer, r *analysis.Report) {
	sol := r.Solution
	printField(w, "Sides", fmt.Sprintf("a=%.3f  b=%.3f  c=%.3f", sol.A, sol.B, sol.C))
	printField(w, "Angles", fmt.Sprintf("A=%s  B=%s  C=%s",
		analysis.FormatAngle(sol.AngleA), analysis.FormatAngle(sol.AngleB), analysis.FormatAngle(sol.AngleC)))
	printField(w, "Type", r.Classification.String())
	printField(w, "Area", analysis.FormatMeasurement(r.Area, "square units"))
	printField(w, "Perimeter", analysis.FormatMeasurement(r.Perimeter, ""))
	printField(w, "Inradius", analysis.FormatMeasurement(r.Inradius, ""))
	printField(w, "Circumradius", analysis.FormatMeasurement(r.Circumradius, ""))
	printField(w, "Altitudes", fmt.Sprintf("h_a=%.3f  h_b=%.3f  h_c=%.3f", r.Altitudes[0], r.Altitudes[1], r.Altitudes[2]))
	printField(w, "Medians", fmt.Sprintf("m_a=%.3f  m_b=%.3f  m_c=%.3f", r.Medians[0], r.Medians[1], r.Medians[2]))
	printField(w, "Centroid", analysis.FormatVector(r.Centers.Centroid))
	printField(w, "Incenter", analysis.FormatCenter(r.Centers.Incenter))
	printField(w, "Circumcenter", analysis.FormatCenter(r.Centers.Circumcenter))
	printField(w, "Orthocenter", analysis.FormatCenter(r.Centers.Orthocenter))
}
