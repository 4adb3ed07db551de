package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ViewerBackground is the dark backdrop behind the displayed image.
var ViewerBackground = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

// ImageDisplay renders one image centered on a dark background, with a
// one-line description underneath.
type ImageDisplay struct {
	container *fyne.Container
	image     *canvas.Image
	info      *widget.Label

	hasImage bool
}

func NewImageDisplay() *ImageDisplay {
	display := &ImageDisplay{}
	display.createComponents()
	display.setupLayout()
	return display
}

func (id *ImageDisplay) createComponents() {
	id.image = canvas.NewImageFromImage(nil)
	id.image.FillMode = canvas.ImageFillContain
	id.image.ScaleMode = canvas.ImageScaleSmooth

	id.info = widget.NewLabel("")
	id.info.Alignment = fyne.TextAlignCenter
	id.info.Truncation = fyne.TextTruncateEllipsis
}

func (id *ImageDisplay) setupLayout() {
	id.container = container.NewStack(
		canvas.NewRectangle(ViewerBackground),
		container.NewBorder(
			nil,
			id.info,
			nil, nil,
			container.NewCenter(id.image),
		),
	)
}

// SetImage shows img at the given on-screen size. A nil img clears the display.
func (id *ImageDisplay) SetImage(img image.Image, size fyne.Size, summary string) {
	if img == nil {
		id.Clear()
		return
	}

	id.image.Image = img
	id.image.SetMinSize(size)
	id.hasImage = true
	id.info.SetText(summary)
	id.image.Refresh()
	id.container.Refresh()
}

// Clear removes the current image and its description.
func (id *ImageDisplay) Clear() {
	id.image.Image = nil
	id.image.SetMinSize(fyne.NewSize(0, 0))
	id.hasImage = false
	id.info.SetText("")
	id.image.Refresh()
	id.container.Refresh()
}

func (id *ImageDisplay) HasImage() bool {
	return id.hasImage
}

func (id *ImageDisplay) Image() image.Image {
	return id.image.Image
}

func (id *ImageDisplay) DisplaySize() fyne.Size {
	return id.image.MinSize()
}

func (id *ImageDisplay) Info() string {
	return id.info.Text
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}
