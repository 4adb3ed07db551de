package models

import (
	"fmt"
	"image"
	"strings"
	"time"
)

// ImageData is a decoded image together with the metadata shown under it in
// the viewer.
type ImageData struct {
	Path   string
	Image  image.Image
	Width  int
	Height int
	Format string
	Taken  time.Time
	Camera string
}

// Summary renders the one-line description shown in the viewer.
func (d *ImageData) Summary() string {
	if d == nil || d.Image == nil {
		return ""
	}

	parts := []string{fmt.Sprintf("%d×%d", d.Width, d.Height)}
	if d.Format != "" {
		parts = append(parts, d.Format)
	}
	if !d.Taken.IsZero() {
		parts = append(parts, d.Taken.Format("2006-01-02 15:04"))
	}
	if d.Camera != "" {
		parts = append(parts, d.Camera)
	}
	return strings.Join(parts, " · ")
}
