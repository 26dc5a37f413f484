package render

// Style controls colors and sizes of the raster output. Colors are hex
// strings as accepted by gg.Hex.
type Style struct {
	Width  int
	Height int

	Background string
	GridColor  string
	GridStep   float64

	EdgeColor    string
	EdgeWidth    float64
	VertexColor  string
	VertexRadius float64
	LabelColor   string
	FontSize     float64

	// AlternateAlpha is the opacity of the second solution
	AlternateAlpha float64
	FallbackColor  string

	MedianColor   string
	AltitudeColor string
	BisectorColor string
	CenterColor   string
}

// DefaultStyle returns the standard look
func DefaultStyle() Style {
	return Style{
		Width:  800,
		Height: 600,

		Background: "#f8fafc",
		GridColor:  "#e2e8f0",
		GridStep:   25,

		EdgeColor:    "#163aa2",
		EdgeWidth:    4,
		VertexColor:  "#163aa2",
		VertexRadius: 8,
		LabelColor:   "#0f172a",
		FontSize:     14,

		AlternateAlpha: 0.32,
		FallbackColor:  "#94a3b8",

		MedianColor:   "#f97316",
		AltitudeColor: "#16a34a",
		BisectorColor: "#9333ea",
		CenterColor:   "#dc2626",
	}
}
