package main

import (
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/philipparndt/gotri/internal/config"
	"github.com/philipparndt/gotri/internal/editor"
	"github.com/philipparndt/gotri/internal/inputfile"
	"github.com/philipparndt/gotri/pkg/analysis"
	"github.com/philipparndt/gotri/pkg/render"
	"github.com/philipparndt/gotri/pkg/solver"
	"github.com/philipparndt/gotri/pkg/viewer"
	"github.com/philipparndt/gotri/pkg/watcher"
)

type App struct {
	window  fyne.Window
	cfg     *config.Config
	logger  *zap.Logger
	session *editor.Session
	view    *viewer.TriangleView
	watcher *watcher.FileWatcher
	info    *SolutionInfo
}

type SolutionInfo struct {
	inputLabel    *widget.Label
	caseLabel     *widget.Label
	solutionLabel *widget.Label
	reportLabel   *widget.Label
	snapCheck     *widget.Check
	gridCheck     *widget.Check
	constructChk  *widget.Check
	altCheck      *widget.Check
}

func main() {
	path := os.Getenv("GOTRI_CONFIG")
	if path == "" {
		path = "gotri.yaml"
	}
	cfg, err := config.Load(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	zc := zap.NewProductionConfig()
	level, _ := cfg.Logging.ZapLevel()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := app.New()
	w := a.NewWindow("GoTri - Triangle Solver")

	appInstance := &App{
		window: w,
		cfg:    cfg,
		logger: logger,
	}
	appInstance.setupMainUI()

	// Check if an input file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	}

	w.SetOnClosed(appInstance.close)
	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	opts := editor.DefaultOptions()
	opts.Defaults = a.cfg.DefaultSides()
	opts.Viewport = a.cfg.Viewport()
	opts.RoundPlaces = a.cfg.Editor.RoundPlaces
	opts.Grid = a.cfg.Render.Grid
	opts.Construct = a.cfg.Render.Construct
	opts.Snap45 = a.cfg.Editor.Snap45
	opts.ShowAlt = a.cfg.Editor.ShowAlt
	opts.Logger = a.logger
	a.session = editor.New(opts)

	a.view = viewer.NewTriangleView(a.session, a.cfg.Style(), a.logger)
	a.view.SetWindow(a.window)
	a.view.SetOnChange(a.updateInfo)

	a.info = &SolutionInfo{
		inputLabel:    widget.NewLabel(""),
		caseLabel:     widget.NewLabel(""),
		solutionLabel: widget.NewLabel(""),
		reportLabel:   widget.NewLabel(""),
	}
	a.info.caseLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.info.gridCheck = widget.NewCheck("Grid", func(bool) { a.toggle(a.session.ToggleGrid) })
	a.info.constructChk = widget.NewCheck("Construction lines", func(bool) { a.toggle(a.session.ToggleConstruct) })
	a.info.snapCheck = widget.NewCheck("Snap to 45° after drag", func(bool) { a.toggle(a.session.ToggleSnap) })
	a.info.altCheck = widget.NewCheck("Show second solution", func(bool) { a.toggle(a.session.ToggleAlt) })
	a.syncChecks()

	editButtons := container.NewGridWithColumns(3)
	for _, field := range []string{"a", "b", "c", "A", "B", "C"} {
		editButtons.Add(widget.NewButton("Edit "+field, func() { a.view.EditField(field) }))
	}

	nextButton := widget.NewButton("Next Solution", func() {
		if err := a.session.Cycle(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.refresh()
	})
	snapButton := widget.NewButton("Snap Angles to 45°", func() {
		if err := a.session.ApplySnap(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.refresh()
	})
	resetButton := widget.NewButton("Reset", func() {
		a.session.Reset()
		a.syncChecks()
		a.refresh()
	})
	openButton := widget.NewButton("Open Input File", a.showFileDialog)
	exportButton := widget.NewButton("Export PNG", a.showExportDialog)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag a vertex to reshape, drag A to move\n" +
			"• Click an edge to edit its length\n" +
			"• Double click a vertex to edit its angle\n" +
			"• Scroll or +/- to zoom, F to fit\n" +
			"• N cycles between two solutions",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Input:"),
		a.info.inputLabel,
		a.info.caseLabel,
		widget.NewSeparator(),
		widget.NewLabel("Solution:"),
		a.info.solutionLabel,
		a.info.reportLabel,
		widget.NewSeparator(),
		editButtons,
		nextButton,
		snapButton,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		a.info.gridCheck,
		a.info.constructChk,
		a.info.snapCheck,
		a.info.altCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		exportButton,
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, a.view)
	a.window.SetContent(content)

	a.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if a.view.HandleKey(event.Name) {
			a.syncChecks()
		}
	})

	a.updateInfo()
}

// toggle flips a session switch from a check box. The check box already
// shows the new state, so only the drawing needs updating.
func (a *App) toggle(flip func() bool) {
	flip()
	a.view.Refresh()
}

// syncChecks sets the check boxes from the session without firing their
// callbacks
func (a *App) syncChecks() {
	t := a.session.Toggles()
	set := func(c *widget.Check, v bool) {
		if c == nil || c.Checked == v {
			return
		}
		onChanged := c.OnChanged
		c.OnChanged = nil
		c.SetChecked(v)
		c.OnChanged = onChanged
	}
	set(a.info.gridCheck, t.Grid)
	set(a.info.constructChk, t.Construct)
	set(a.info.snapCheck, t.Snap45)
	set(a.info.altCheck, t.ShowAlt)
}

func (a *App) refresh() {
	a.view.Refresh()
	a.updateInfo()
}

func (a *App) updateInfo() {
	in := a.session.Input()
	a.info.inputLabel.SetText(in.String())

	solutions := a.session.Solutions()
	caseText := solver.Classify(in).String()
	switch len(solutions) {
	case 0:
		caseText += ": no solution"
	case 2:
		caseText += fmt.Sprintf(": solution %d of 2", a.session.Chosen()+1)
	}
	a.info.caseLabel.SetText(caseText)

	cur := a.session.Current()
	if cur.Fallback {
		a.info.solutionLabel.SetText("Showing a placeholder triangle")
		a.info.reportLabel.SetText("")
		return
	}

	sol := cur.Solution
	a.info.solutionLabel.SetText(fmt.Sprintf(
		"a = %.3f\nb = %.3f\nc = %.3f\nA = %s\nB = %s\nC = %s",
		sol.A, sol.B, sol.C,
		analysis.FormatAngle(sol.AngleA), analysis.FormatAngle(sol.AngleB), analysis.FormatAngle(sol.AngleC),
	))

	r := analysis.Analyze(sol)
	a.info.reportLabel.SetText(strings.Join([]string{
		"Type: " + r.Classification.String(),
		"Area: " + analysis.FormatMeasurement(r.Area, "square units"),
		"Perimeter: " + analysis.FormatMeasurement(r.Perimeter, ""),
		"Inradius: " + analysis.FormatMeasurement(r.Inradius, ""),
		"Circumradius: " + analysis.FormatMeasurement(r.Circumradius, ""),
	}, "\n"))
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

// loadFile loads the first input of a file and reloads it on every change
func (a *App) loadFile(filename string) {
	if err := a.reload(filename); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	fw, err := watcher.NewFileWatcher(a.cfg.GetDebounce(), a.logger)
	if err != nil {
		a.logger.Warn("file watching disabled", zap.Error(err))
		return
	}
	if err := fw.Watch([]string{filename}, func(path string) {
		fyne.Do(func() {
			if err := a.reload(path); err != nil {
				a.logger.Warn("reload failed", zap.String("file", path), zap.Error(err))
			}
		})
	}); err != nil {
		fw.Close()
		a.logger.Warn("file watching disabled", zap.Error(err))
		return
	}
	fw.Start()
	a.watcher = fw
}

func (a *App) reload(filename string) error {
	inputs, err := inputfile.Load(filename)
	if err != nil {
		return fmt.Errorf("failed to load input file: %w", err)
	}
	a.session.SetInput(inputs[0])
	a.window.SetTitle("GoTri - " + filename)
	a.refresh()
	return nil
}

func (a *App) showExportDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		size := a.view.Size()
		style := a.cfg.Style()
		style.Width, style.Height = int(size.Width), int(size.Height)
		if err := render.PNG(writer, a.session.Frame(), style); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

func (a *App) close() {
	if a.watcher != nil {
		a.watcher.Close()
	}
}
