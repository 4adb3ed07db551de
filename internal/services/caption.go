package services

import (
	"fmt"
	"os"

	"tag-editor/internal/logger"
	"tag-editor/internal/models"
)

// CaptionService reads and writes caption files. Content is passed through
// byte for byte.
type CaptionService struct {
	logger logger.Logger
}

func NewCaptionService(log logger.Logger) *CaptionService {
	return &CaptionService{logger: log}
}

func (cs *CaptionService) Load(pair models.Pair) (string, error) {
	data, err := os.ReadFile(pair.TextPath)
	if err != nil {
		return "", fmt.Errorf("failed to read caption: %w", err)
	}

	cs.logger.Debug("CaptionService", "caption loaded", map[string]interface{}{
		"path":  pair.TextPath,
		"bytes": len(data),
	})
	return string(data), nil
}

// Save overwrites the caption in place. The existing file mode is kept; a
// missing file is created.
func (cs *CaptionService) Save(pair models.Pair, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(pair.TextPath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(pair.TextPath, []byte(text), mode); err != nil {
		return fmt.Errorf("failed to write caption: %w", err)
	}

	cs.logger.Info("CaptionService", "caption saved", map[string]interface{}{
		"path":  pair.TextPath,
		"bytes": len(text),
	})
	return nil
}
