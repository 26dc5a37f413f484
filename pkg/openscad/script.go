package openscad

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// Script returns an OpenSCAD program extruding the triangle to the given
// thickness. The points are in screen orientation (y down) and are scaled
// by 1/scale back to units with A at the origin.
func Script(pts geometry.Points, scale, thickness float64) string {
	s := pts.Sides()

	var b strings.Builder
	fmt.Fprintf(&b, "// triangle a=%.3f b=%.3f c=%.3f\n", s.A/scale, s.B/scale, s.C/scale)
	fmt.Fprintf(&b, "linear_extrude(height = %.3f)\n", thickness)
	b.WriteString("  polygon(points = [")
	for i, p := range pts.Vertices() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%.3f, %.3f]", (p.X-pts.A.X)/scale, (pts.A.Y-p.Y)/scale)
	}
	b.WriteString("]);\n")
	return b.String()
}
