package components

import (
	"tag-editor/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NavigationKey maps the pair navigation keys to a direction. PageUp moves
// to the next pair and PageDown to the previous one.
func NavigationKey(name fyne.KeyName) (models.Direction, bool) {
	switch name {
	case fyne.KeyPageUp:
		return models.Next, true
	case fyne.KeyPageDown:
		return models.Previous, true
	default:
		return 0, false
	}
}

// CaptionEntry is a multi-line entry that hands the navigation keys to a
// handler instead of scrolling its own text.
type CaptionEntry struct {
	widget.Entry

	onNavigate func(models.Direction)
}

func NewCaptionEntry() *CaptionEntry {
	entry := &CaptionEntry{}
	entry.MultiLine = true
	entry.Wrapping = fyne.TextWrapWord
	entry.ExtendBaseWidget(entry)
	return entry
}

func (e *CaptionEntry) SetNavigateHandler(handler func(models.Direction)) {
	e.onNavigate = handler
}

func (e *CaptionEntry) TypedKey(key *fyne.KeyEvent) {
	if direction, ok := NavigationKey(key.Name); ok {
		if e.onNavigate != nil {
			e.onNavigate(direction)
		}
		return
	}
	e.Entry.TypedKey(key)
}
