package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tag-editor/internal/logger"
	"tag-editor/internal/models"
)

// Scanner finds caption files in a directory that have an image sitting next
// to them under the same base name.
type Scanner struct {
	textExt  string
	imageExt string
	logger   logger.Logger
}

func NewScanner(textExt, imageExt string, log logger.Logger) *Scanner {
	return &Scanner{
		textExt:  textExt,
		imageExt: imageExt,
		logger:   log,
	}
}

// Scan lists dir non-recursively and returns the matched pairs in listing
// order. Captions without an image are skipped. An empty result is reported
// as models.ErrNoPairs.
func (s *Scanner) Scan(dir string) ([]models.Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	pairs := make([]models.Pair, 0, len(entries))
	skipped := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, s.textExt) {
			continue
		}

		imageName := strings.TrimSuffix(name, s.textExt) + s.imageExt
		imagePath := filepath.Join(dir, imageName)
		if !fileExists(imagePath) {
			skipped++
			s.logger.Debug("Scanner", "caption has no image", map[string]interface{}{
				"caption": name,
				"image":   imageName,
			})
			continue
		}

		pairs = append(pairs, models.Pair{
			TextPath:  filepath.Join(dir, name),
			ImagePath: imagePath,
		})
	}

	s.logger.Info("Scanner", "directory scanned", map[string]interface{}{
		"dir":     dir,
		"pairs":   len(pairs),
		"skipped": skipped,
	})

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w in %s (%s + %s)", models.ErrNoPairs, dir, s.textExt, s.imageExt)
	}
	return pairs, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
