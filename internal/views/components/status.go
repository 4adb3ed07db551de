package components

import (
	"tag-editor/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// FileLabel shows the name of the caption being edited. Its colour is the
// only dirty indicator: default text when clean, warning colour once edited.
type FileLabel struct {
	label *widget.Label
	state models.EditState
}

func NewFileLabel() *FileLabel {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Truncation = fyne.TextTruncateEllipsis

	return &FileLabel{label: label, state: models.Clean}
}

func (fl *FileLabel) SetFile(name string) {
	fl.label.SetText(name)
}

func (fl *FileLabel) SetState(state models.EditState) {
	fl.state = state
	if state == models.Modified {
		fl.label.Importance = widget.WarningImportance
	} else {
		fl.label.Importance = widget.MediumImportance
	}
	fl.label.Refresh()
}

func (fl *FileLabel) State() models.EditState {
	return fl.state
}

func (fl *FileLabel) Text() string {
	return fl.label.Text
}

func (fl *FileLabel) GetLabel() *widget.Label {
	return fl.label
}
