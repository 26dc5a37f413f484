package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

var (
	sideNames  = [3]string{"a", "b", "c"}
	angleNames = [3]string{"A", "B", "C"}
)

// fieldValue returns the current input value of a field as text, empty when
// the field is unknown
func (v *TriangleView) fieldValue(field string) string {
	in := v.session.Input()
	var p *float64
	switch field {
	case "a":
		p = in.SideA
	case "b":
		p = in.SideB
	case "c":
		p = in.SideC
	case "A":
		p = in.AngleA
	case "B":
		p = in.AngleB
	case "C":
		p = in.AngleC
	}
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// ApplyText applies an edit as typed by the user. Empty text marks the
// field unknown.
func (v *TriangleView) ApplyText(field, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return v.session.ClearField(field)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", text)
	}

	if strings.ToLower(field) == field {
		return v.session.SetSide(field, value)
	}
	return v.session.SetAngle(field, value)
}

// EditField opens a dialog to edit a side or angle. Without a window the
// request is ignored.
func (v *TriangleView) EditField(field string) {
	if v.window == nil {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(v.fieldValue(field))
	entry.SetPlaceHolder("empty = unknown")

	label := "Side " + field
	if strings.ToUpper(field) == field {
		label = "Angle " + field + " (°)"
	}

	items := []*widget.FormItem{widget.NewFormItem(label, entry)}
	dialog.ShowForm("Edit "+field, "Apply", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		if err := v.ApplyText(field, entry.Text); err != nil {
			v.showError(err)
			return
		}
		v.logger.Debug("field edited", zap.String("field", field), zap.String("value", entry.Text))
		v.changed()
	}, v.window)
}

func (v *TriangleView) showError(err error) {
	v.logger.Debug("edit rejected", zap.Error(err))
	if v.window != nil {
		dialog.ShowError(err, v.window)
	}
}
