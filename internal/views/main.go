package views

import (
	"fmt"
	"image/color"

	"tag-editor/internal/models"
	"tag-editor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	WindowTitle      = "DB Image Tag Editor"
	SaveButtonHeight = 100
)

// DefaultWindowSize matches the editor's historical 800x600 window.
var DefaultWindowSize = fyne.NewSize(800, 600)

// MainView is the caption editing window: file name on top, the caption in
// the middle and a tall Save button at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	fileLabel     *components.FileLabel
	editor        *components.CaptionEntry
	saveButton    *widget.Button

	// loading suppresses edit notifications while a caption is put in place.
	loading bool

	navigateHandler func(models.Direction)
	saveHandler     func()
	editHandler     func()
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.fileLabel = components.NewFileLabel()
	mv.editor = components.NewCaptionEntry()
	mv.saveButton = widget.NewButton("Save", nil)
}

func (mv *MainView) buildLayout() {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, SaveButtonHeight))

	mv.mainContainer = container.NewBorder(
		mv.fileLabel.GetLabel(),
		container.NewStack(spacer, mv.saveButton),
		nil,
		nil,
		mv.editor,
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers routes widget events to the handlers the controller
// installs. Navigation keys arrive either from the focused editor or, when
// nothing has focus, from the window canvas.
func (mv *MainView) setupEventHandlers() {
	mv.editor.SetNavigateHandler(mv.navigate)
	mv.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if direction, ok := components.NavigationKey(key.Name); ok {
			mv.navigate(direction)
		}
	})

	mv.editor.OnChanged = func(string) {
		if mv.loading || mv.editHandler == nil {
			return
		}
		mv.editHandler()
	}

	mv.saveButton.OnTapped = func() {
		if mv.saveHandler != nil {
			mv.saveHandler()
		}
	}
}

func (mv *MainView) navigate(direction models.Direction) {
	if mv.navigateHandler != nil {
		mv.navigateHandler(direction)
	}
}

func (mv *MainView) SetNavigateHandler(handler func(models.Direction)) {
	mv.navigateHandler = handler
}

func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

func (mv *MainView) SetEditHandler(handler func()) {
	mv.editHandler = handler
}

// SetCaption replaces the editor content and shows name in the file label.
// It does not count as an edit.
func (mv *MainView) SetCaption(name, text string) {
	mv.loading = true
	mv.editor.SetText(text)
	mv.loading = false

	mv.fileLabel.SetFile(name)
}

func (mv *MainView) Caption() string {
	return mv.editor.Text
}

func (mv *MainView) SetEditState(state models.EditState) {
	mv.fileLabel.SetState(state)
}

func (mv *MainView) EditState() models.EditState {
	return mv.fileLabel.State()
}

func (mv *MainView) FileName() string {
	return mv.fileLabel.Text()
}

// SetPosition shows the 1-based position of the current pair in the title.
func (mv *MainView) SetPosition(index, total int) {
	mv.window.SetTitle(fmt.Sprintf("%s (%d/%d)", WindowTitle, index+1, total))
}

// ReleaseFocus takes keyboard focus away from the editor so that keys
// reach the window-level handler.
func (mv *MainView) ReleaseFocus() {
	mv.window.Canvas().Unfocus()
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetEditor() *components.CaptionEntry {
	return mv.editor
}

func (mv *MainView) GetSaveButton() *widget.Button {
	return mv.saveButton
}

func (mv *MainView) Show() {
	mv.window.Show()
}
