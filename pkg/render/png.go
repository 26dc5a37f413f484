package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/solver"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func labelFont(size float64) (text.Face, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("failed to load font: %w", fontErr)
	}
	return fontSource.Face(size), nil
}

// PNG draws the frame and writes it as PNG
func PNG(w io.Writer, frame Frame, style Style) error {
	dc, err := draw(frame, style)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Image draws the frame into an image
func Image(frame Frame, style Style) (image.Image, error) {
	dc, err := draw(frame, style)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	return dc.Image(), nil
}

// painter wraps a gg context and keeps the first drawing error
type painter struct {
	dc    *gg.Context
	style Style
	err   error
}

func (p *painter) check(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}

func (p *painter) color(hex string, alpha float64) {
	c := gg.Hex(hex)
	c.A *= alpha
	p.dc.SetColor(c.Color())
}

func (p *painter) line(a, b geometry.Vector2) {
	p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	p.check(p.dc.Stroke())
}

func (p *painter) dot(at geometry.Vector2, r float64) {
	p.dc.DrawCircle(at.X, at.Y, r)
	p.check(p.dc.Fill())
}

func draw(frame Frame, style Style) (*gg.Context, error) {
	if style.Width <= 0 || style.Height <= 0 {
		return nil, errors.New("image size must be positive")
	}

	face, err := labelFont(style.FontSize)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(style.Width, style.Height)
	dc.ClearWithColor(gg.Hex(style.Background))
	dc.SetFont(face)

	p := &painter{dc: dc, style: style}

	if frame.Grid {
		p.grid()
	}
	if frame.Alternate != nil {
		p.triangle(*frame.Alternate, style.AlternateAlpha, false)
	}
	if frame.Construct && !frame.Primary.Fallback {
		p.construction(frame.Primary.Points, frame.Scale)
	}
	p.triangle(frame.Primary, 1, true)

	if p.err != nil {
		dc.Close()
		return nil, fmt.Errorf("failed to draw triangle: %w", p.err)
	}
	return dc, nil
}

func (p *painter) grid() {
	step := p.style.GridStep
	if step <= 0 {
		return
	}

	w, h := float64(p.style.Width), float64(p.style.Height)
	p.color(p.style.GridColor, 1)
	p.dc.SetLineWidth(1)
	for x := 0.0; x <= w; x += step {
		p.line(geometry.NewVector2(x, 0), geometry.NewVector2(x, h))
	}
	for y := 0.0; y <= h; y += step {
		p.line(geometry.NewVector2(0, y), geometry.NewVector2(w, y))
	}
}

func (p *painter) triangle(shape Shape, alpha float64, labels bool) {
	pts := shape.Points
	edge := p.style.EdgeColor
	if shape.Fallback {
		edge = p.style.FallbackColor
	}

	p.color(edge, alpha)
	p.dc.SetLineWidth(p.style.EdgeWidth)
	if shape.Fallback {
		p.dc.SetDash(10, 6)
	}
	p.dc.MoveTo(pts.A.X, pts.A.Y)
	p.dc.LineTo(pts.B.X, pts.B.Y)
	p.dc.LineTo(pts.C.X, pts.C.Y)
	p.dc.ClosePath()
	p.check(p.dc.Stroke())
	p.dc.ClearDash()

	p.color(p.style.VertexColor, alpha)
	for _, v := range pts.Vertices() {
		p.dot(v, p.style.VertexRadius)
	}

	if labels {
		p.labels(shape)
	}
}

func (p *painter) labels(shape Shape) {
	pts := shape.Points
	centroid := pts.Centroid()
	vertices := pts.Vertices()
	names := [3]string{"A", "B", "C"}

	p.color(p.style.LabelColor, 1)

	// Vertex names sit outside the triangle, angle values inside
	for i, v := range vertices {
		out := awayFrom(v, centroid, p.style.VertexRadius+12)
		p.dc.DrawStringAnchored(names[i], out.X, out.Y, 0.5, 0.5)

		if shape.Fallback {
			continue
		}
		in := awayFrom(v, centroid, -34)
		p.dc.DrawStringAnchored(FormatAngleLabel(shape.Solution.Angles()[i]), in.X, in.Y, 0.5, 0.5)
	}

	if shape.Fallback {
		return
	}
	for i, mid := range pts.EdgeMidpoints() {
		at := awayFrom(mid, centroid, 16)
		p.dc.DrawStringAnchored(FormatSideLabel(shape.Solution.Sides()[i]), at.X, at.Y, 0.5, 0.5)
	}
}

// awayFrom moves p by dist along the direction from center to p. A negative
// distance moves towards center.
func awayFrom(p, center geometry.Vector2, dist float64) geometry.Vector2 {
	dir := p.Sub(center)
	if dir.Length() == 0 {
		return p
	}
	return p.Add(dir.Normalize().Mul(dist))
}

func (p *painter) construction(pts geometry.Points, scale float64) {
	vertices := pts.Vertices()
	mids := pts.EdgeMidpoints()
	feet := pts.AltitudeFeet()

	p.dc.SetLineWidth(1.5)

	p.color(p.style.MedianColor, 1)
	p.dc.SetDash(6, 4)
	for i, v := range vertices {
		p.line(v, mids[i])
	}
	p.dc.ClearDash()

	p.color(p.style.AltitudeColor, 1)
	for i, v := range vertices {
		p.line(v, feet[i])
	}

	p.color(p.style.BisectorColor, 1)
	for i, v := range vertices {
		end, ok := geometry.BisectorPoint(v, vertices[(i+1)%3], vertices[(i+2)%3], scale)
		if ok {
			p.line(v, end)
		}
	}

	p.color(p.style.CenterColor, 1)
	p.dot(pts.Centroid(), 3)
	for _, center := range []func() (geometry.Vector2, bool){pts.Incenter, pts.Circumcenter, pts.Orthocenter} {
		if c, ok := center(); ok && finite(c) {
			p.dot(c, 3)
		}
	}
}

func finite(v geometry.Vector2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// FormatSideLabel formats a side length for the drawing
func FormatSideLabel(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// FormatAngleLabel formats an angle for the drawing
func FormatAngleLabel(deg float64) string {
	return fmt.Sprintf("%.2f°", deg)
}

// FitFrame frames a solution with a viewport fitted to the style's canvas
func FitFrame(sol solver.Solution, alt *solver.Solution, style Style) Frame {
	sides := geometry.NewSides(sol.A, sol.B, sol.C)
	return NewFrame(FitViewport(sides, style.Width, style.Height, 60), sol, alt)
}
