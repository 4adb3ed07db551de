package views

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageViewer_CreatedLazilyAndReused(t *testing.T) {
	viewer := NewImageViewer(test.NewTempApp(t))
	assert.False(t, viewer.Created())

	viewer.Open("a.jpg")
	require.True(t, viewer.Created())
	first := viewer.GetWindow()
	assert.Equal(t, "a.jpg", first.Title())

	viewer.Open("b.jpg")
	assert.Same(t, first, viewer.GetWindow())
	assert.Equal(t, "b.jpg", first.Title())
}

func TestImageViewer_KeepsGeometry(t *testing.T) {
	viewer := NewImageViewer(test.NewTempApp(t))
	viewer.Open("a.jpg")
	viewer.Show()
	viewer.GetWindow().Resize(DefaultViewerSize.AddWidthHeight(100, 40))
	size := viewer.GetWindow().Canvas().Size()

	viewer.Open("b.jpg")
	viewer.Display(imaging.New(300, 150, color.White), 1, "300×150")
	viewer.Show()

	assert.Equal(t, size, viewer.GetWindow().Canvas().Size())
}

func TestImageViewer_DisplayAndClear(t *testing.T) {
	viewer := NewImageViewer(test.NewTempApp(t))
	viewer.Open("a.jpg")

	img := imaging.New(200, 100, color.White)
	viewer.Display(img, 2, "200×100 · jpeg")
	assert.Same(t, img, viewer.Image())
	assert.Equal(t, "200×100 · jpeg", viewer.Info())
	assert.InDelta(t, 100, viewer.display.DisplaySize().Width, 0.01)
	assert.InDelta(t, 50, viewer.display.DisplaySize().Height, 0.01)

	viewer.Open("b.jpg")
	assert.Nil(t, viewer.Image())
	assert.Equal(t, "", viewer.Info())
}

func TestImageViewer_Available(t *testing.T) {
	viewer := NewImageViewer(test.NewTempApp(t))
	viewer.Open("a.jpg")

	width, height, scale := viewer.Available()

	assert.Equal(t, float32(1), scale)
	assert.Equal(t, int(DefaultViewerSize.Width)-ViewerInset, width)
	assert.Equal(t, int(DefaultViewerSize.Height)-ViewerInset, height)
}

func TestImageViewer_ShowOnce(t *testing.T) {
	viewer := NewImageViewer(test.NewTempApp(t))
	assert.False(t, viewer.Visible())

	viewer.Show()
	viewer.Show()
	assert.True(t, viewer.Visible())

	viewer.Close()
	assert.False(t, viewer.Visible())
}
