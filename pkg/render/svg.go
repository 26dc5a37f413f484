package render

import (
	"bufio"
	"fmt"
	"io"
)

const svgStroke = "#163aa2"

// SVG writes the primary triangle of the frame as three line elements
func SVG(w io.Writer, frame Frame, width, height int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)

	v := frame.Primary.Points.Vertices()
	for i := range v {
		a, b := v[i], v[(i+1)%3]
		fmt.Fprintf(bw, "  <line x1=\"%.3f\" y1=\"%.3f\" x2=\"%.3f\" y2=\"%.3f\" stroke=\"%s\" stroke-width=\"4\" stroke-linecap=\"round\"/>\n",
			a.X, a.Y, b.X, b.Y, svgStroke)
	}

	fmt.Fprintln(bw, "</svg>")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}
