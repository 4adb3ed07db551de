package services

import (
	"fmt"
	"image"
	"os"
	"strings"

	"tag-editor/internal/logger"
	"tag-editor/internal/models"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp"
)

// ImageService decodes the images paired with captions and scales them for
// the viewer.
type ImageService struct {
	logger logger.Logger
}

func NewImageService(log logger.Logger) *ImageService {
	return &ImageService{logger: log}
}

// LoadImage decodes the file at path with its EXIF orientation applied.
func (is *ImageService) LoadImage(path string) (*models.ImageData, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	data := &models.ImageData{
		Path:   path,
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	if format, err := imaging.FormatFromFilename(path); err == nil {
		data.Format = strings.ToLower(format.String())
	}
	is.readExif(data)

	return data, nil
}

// readExif fills capture time and camera model when the file carries EXIF.
func (is *ImageService) readExif(data *models.ImageData) {
	f, err := os.Open(data.Path)
	if err != nil {
		return
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		is.logger.Debug("ImageService", "no exif data", map[string]interface{}{
			"path": data.Path,
		})
		return
	}

	if taken, err := x.DateTime(); err == nil {
		data.Taken = taken
	}
	if tag, err := x.Get(exif.Model); err == nil {
		if model, err := tag.StringVal(); err == nil {
			data.Camera = strings.TrimSpace(model)
		}
	}
}

// ScaleToFit shrinks img to fit inside maxWidth×maxHeight pixels keeping its
// aspect ratio. Images that already fit are returned unchanged.
func (is *ImageService) ScaleToFit(img image.Image, maxWidth, maxHeight int) image.Image {
	if img == nil || maxWidth <= 0 || maxHeight <= 0 {
		return img
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return img
	}
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}
