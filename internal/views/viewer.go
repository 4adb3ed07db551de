package views

import (
	"image"

	"tag-editor/internal/views/components"

	"fyne.io/fyne/v2"
)

const (
	// ViewerInset is kept free around the image inside the viewer window.
	ViewerInset = 50
)

// DefaultViewerSize is used for the viewer window when it is first created.
var DefaultViewerSize = fyne.NewSize(640, 640)

// ImageViewer owns the separate window showing the image of the current
// pair. The window is created on first use and reused afterwards; its
// position and size are left to the user.
type ImageViewer struct {
	app     fyne.App
	window  fyne.Window
	display *components.ImageDisplay
	visible bool
}

func NewImageViewer(app fyne.App) *ImageViewer {
	return &ImageViewer{app: app}
}

func (iv *ImageViewer) ensureWindow() {
	if iv.window != nil {
		return
	}

	iv.display = components.NewImageDisplay()
	iv.window = iv.app.NewWindow("")
	iv.window.SetContent(iv.display.GetContainer())
	iv.window.Resize(DefaultViewerSize)
	iv.window.SetCloseIntercept(func() {
		iv.visible = false
		iv.window.Hide()
	})
}

// Open prepares the viewer for a new image: the window exists, carries
// the image name as title, and the previous image is gone.
func (iv *ImageViewer) Open(title string) {
	iv.ensureWindow()
	iv.window.SetTitle(title)
	iv.display.Clear()
}

// Show brings the window up if it is not already on screen.
func (iv *ImageViewer) Show() {
	iv.ensureWindow()
	if iv.visible {
		return
	}
	iv.visible = true
	iv.window.Show()
}

// Available reports the room for the image in pixels, after the inset.
func (iv *ImageViewer) Available() (width, height int, scale float32) {
	iv.ensureWindow()

	size := iv.window.Canvas().Size()
	if size.Width <= ViewerInset || size.Height <= ViewerInset {
		size = DefaultViewerSize
	}
	scale = iv.window.Canvas().Scale()
	if scale <= 0 {
		scale = 1
	}

	width = int((size.Width - ViewerInset) * scale)
	height = int((size.Height - ViewerInset) * scale)
	return width, height, scale
}

// Display draws img, already scaled to pixels, at its natural on-screen size.
func (iv *ImageViewer) Display(img image.Image, scale float32, summary string) {
	iv.ensureWindow()
	if img == nil {
		iv.display.Clear()
		return
	}
	if scale <= 0 {
		scale = 1
	}

	bounds := img.Bounds()
	size := fyne.NewSize(float32(bounds.Dx())/scale, float32(bounds.Dy())/scale)
	iv.display.SetImage(img, size, summary)
}

func (iv *ImageViewer) Clear() {
	if iv.display != nil {
		iv.display.Clear()
	}
}

func (iv *ImageViewer) Created() bool {
	return iv.window != nil
}

func (iv *ImageViewer) Visible() bool {
	return iv.visible
}

func (iv *ImageViewer) Image() image.Image {
	if iv.display == nil {
		return nil
	}
	return iv.display.Image()
}

func (iv *ImageViewer) Info() string {
	if iv.display == nil {
		return ""
	}
	return iv.display.Info()
}

func (iv *ImageViewer) GetWindow() fyne.Window {
	return iv.window
}

func (iv *ImageViewer) Close() {
	if iv.window == nil {
		return
	}
	iv.visible = false
	iv.window.Close()
	iv.window = nil
	iv.display = nil
}
