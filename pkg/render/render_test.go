package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/solver"
)

func solution345() solver.Solution {
	return solver.Solve(solver.Input{
		SideA: solver.Known(3),
		SideB: solver.Known(4),
		SideC: solver.Known(5),
	})[0]
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport()
	assert.Equal(t, DefaultScale, v.Scale)
	assert.Equal(t, DefaultAnchor, v.Anchor)

	p := geometry.NewVector2(12.5, -3)
	back := v.ToUnits(v.ToScreen(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestViewportZoom(t *testing.T) {
	v := NewViewport()

	v.ZoomIn()
	assert.InDelta(t, DefaultScale*ZoomFactor, v.Scale, 1e-9)
	v.ZoomOut()
	assert.InDelta(t, DefaultScale, v.Scale, 1e-9)

	for i := 0; i < 200; i++ {
		v.ZoomOut()
	}
	assert.Equal(t, MinScale, v.Scale)
}

func TestFitViewport(t *testing.T) {
	sides := geometry.NewSides(300, 400, 500)
	v := FitViewport(sides, 800, 600, 50)

	b := v.Place(sides).Bounds()
	assert.GreaterOrEqual(t, b.Min.X, 50-1e-9)
	assert.GreaterOrEqual(t, b.Min.Y, 50-1e-9)
	assert.LessOrEqual(t, b.Max.X, 750+1e-9)
	assert.LessOrEqual(t, b.Max.Y, 550+1e-9)

	center := b.Center()
	assert.InDelta(t, 400, center.X, 1e-9)
	assert.InDelta(t, 300, center.Y, 1e-9)
}

func TestFitViewportDegenerate(t *testing.T) {
	v := FitViewport(geometry.NewSides(1, 1, 2), 800, 600, 50)
	assert.Equal(t, NewViewport(), v)
}

func TestHitTest(t *testing.T) {
	pts := geometry.Points{
		A: geometry.NewVector2(100, 300),
		B: geometry.NewVector2(300, 300),
		C: geometry.NewVector2(200, 100),
	}

	tests := []struct {
		name string
		at   geometry.Vector2
		want Target
	}{
		{"vertex A", geometry.NewVector2(105, 295), Target{Kind: Vertex, Index: 0}},
		{"vertex C", geometry.NewVector2(200, 111), Target{Kind: Vertex, Index: 2}},
		{"edge c", geometry.NewVector2(200, 308), Target{Kind: Edge, Index: 2}},
		{"nothing", geometry.NewVector2(200, 250), Target{Kind: None, Index: -1}},
		{"too far", geometry.NewVector2(200, 320), Target{Kind: None, Index: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HitTest(pts, tt.at))
		})
	}
}

func TestNewFrame(t *testing.T) {
	sol := solution345()
	alt := sol
	f := NewFrame(NewViewport(), sol, &alt)

	require.NotNil(t, f.Alternate)
	assert.Equal(t, DefaultAnchor, f.Primary.Points.A)
	assert.InDelta(t, 10, f.Primary.Points.A.Distance(f.Primary.Points.B), 1e-9)
	assert.False(t, f.Bounds().Empty())
}

func TestSVG(t *testing.T) {
	f := NewFrame(NewViewport(), solution345(), nil)

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, f, 640, 480))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, `width="640" height="480"`)
	assert.Equal(t, 3, strings.Count(out, "<line "))
	assert.Equal(t, 3, strings.Count(out, `stroke="#163aa2" stroke-width="4"`))
	assert.Contains(t, out, `x1="160.000" y1="420.000" x2="170.000" y2="420.000"`)
}

func TestPNG(t *testing.T) {
	style := DefaultStyle()
	style.Width, style.Height = 320, 240

	sol := solution345()
	f := FitFrame(sol, nil, style)
	f.Construct = true

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, f, style))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	// Corner shows the background
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.InDelta(t, 0xf8, r>>8, 2)
	assert.InDelta(t, 0xfa, g>>8, 2)
	assert.InDelta(t, 0xfc, b>>8, 2)
}

func TestPNGInvalidSize(t *testing.T) {
	style := DefaultStyle()
	style.Width = 0

	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, NewFrame(NewViewport(), solution345(), nil), style))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "3.000", FormatSideLabel(3))
	assert.Equal(t, "36.87°", FormatAngleLabel(36.869897))
}
