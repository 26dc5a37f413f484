package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/philipparndt/gotri/internal/editor"
	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/render"
)

// TriangleView draws an editor session and turns pointer input into edits.
// Dragging a vertex moves it, tapping an edge edits its length, double
// tapping near a vertex edits its angle and scrolling zooms.
type TriangleView struct {
	widget.BaseWidget

	session *editor.Session
	style   render.Style
	logger  *zap.Logger
	raster  *canvas.Raster
	window  fyne.Window

	dragging  int // vertex index, -1 when not dragging
	isDragged bool

	onChange func()
}

// NewTriangleView creates a view of the session. A nil logger disables
// logging.
func NewTriangleView(session *editor.Session, style render.Style, logger *zap.Logger) *TriangleView {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := &TriangleView{
		session:  session,
		style:    style,
		logger:   logger,
		dragging: -1,
	}
	v.raster = canvas.NewRaster(v.draw)
	v.raster.SetMinSize(fyne.NewSize(400, 400))
	v.ExtendBaseWidget(v)
	return v
}

// SetWindow sets the parent window for edit dialogs
func (v *TriangleView) SetWindow(w fyne.Window) {
	v.window = w
}

// SetOnChange sets the callback invoked after every edit
func (v *TriangleView) SetOnChange(callback func()) {
	v.onChange = callback
}

// Session returns the edited session
func (v *TriangleView) Session() *editor.Session {
	return v.session
}

// CreateRenderer creates the renderer for the widget
func (v *TriangleView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// draw renders at the widget's logical size so that frame coordinates match
// pointer positions. Fyne scales the image to the raster's pixel size.
func (v *TriangleView) draw(w, h int) image.Image {
	size := v.Size()
	style := v.style
	style.Width = int(size.Width)
	style.Height = int(size.Height)
	if style.Width <= 0 || style.Height <= 0 {
		style.Width, style.Height = w, h
	}

	img, err := render.Image(v.session.Frame(), style)
	if err != nil {
		v.logger.Error("failed to draw triangle", zap.Error(err))
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return img
}

// changed redraws and notifies the listener
func (v *TriangleView) changed() {
	v.Refresh()
	if v.onChange != nil {
		v.onChange()
	}
}

func toVector(p fyne.Position) geometry.Vector2 {
	return geometry.NewVector2(float64(p.X), float64(p.Y))
}

// Dragged handles mouse drag events for moving vertices
func (v *TriangleView) Dragged(event *fyne.DragEvent) {
	if !v.isDragged {
		v.isDragged = true
		start := event.Position.Subtract(event.Dragged)
		target := v.session.HitTest(toVector(start))
		if target.Kind == render.Vertex {
			v.dragging = target.Index
		}
	}
	if v.dragging < 0 {
		return
	}

	if err := v.session.DragVertex(v.dragging, toVector(event.Position)); err != nil {
		v.logger.Debug("drag rejected", zap.Int("vertex", v.dragging), zap.Error(err))
		return
	}
	v.changed()
}

// DragEnd handles the end of a drag event
func (v *TriangleView) DragEnd() {
	v.dragging = -1
	v.isDragged = false
}

// Tapped edits the side under the pointer
func (v *TriangleView) Tapped(event *fyne.PointEvent) {
	target := v.session.HitTest(toVector(event.Position))
	if target.Kind != render.Edge {
		return
	}
	v.EditField(sideNames[target.Index])
}

// DoubleTapped edits the angle at the vertex under the pointer
func (v *TriangleView) DoubleTapped(event *fyne.PointEvent) {
	if i, ok := v.session.HitVertexForAngle(toVector(event.Position)); ok {
		v.EditField(angleNames[i])
	}
}

// Scrolled handles scroll events for zooming
func (v *TriangleView) Scrolled(event *fyne.ScrollEvent) {
	v.session.Zoom(float64(event.Scrolled.DY) * 0.001)
	v.changed()
}

// HandleKey runs the shortcut bound to a key and reports whether one exists
func (v *TriangleView) HandleKey(key fyne.KeyName) bool {
	s := v.session
	switch key {
	case fyne.KeyPlus, fyne.KeyEqual:
		s.ZoomIn()
	case fyne.KeyMinus:
		s.ZoomOut()
	case fyne.KeyF:
		s.Fit()
	case fyne.KeyN, fyne.KeyTab:
		if err := s.Cycle(); err != nil {
			v.logger.Debug("cycle skipped", zap.Error(err))
		}
	case fyne.KeyG:
		s.ToggleGrid()
	case fyne.KeyK:
		s.ToggleConstruct()
	case fyne.KeyS:
		s.ToggleSnap()
	case fyne.KeyA:
		s.ToggleAlt()
	case fyne.KeyQ:
		if err := s.ApplySnap(); err != nil {
			v.showError(err)
		}
	case fyne.KeyR:
		s.Reset()
	default:
		return false
	}
	v.changed()
	return true
}
