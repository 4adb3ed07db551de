// Package config turns command-line flags and environment variables into
// the editor's runtime configuration.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

const (
	DefaultDir      = "."
	DefaultTextExt  = ".txt"
	DefaultImageExt = ".jpg"
	DefaultLogLevel = "info"
)

type Config struct {
	// Dir is scanned non-recursively for caption/image pairs.
	Dir      string
	TextExt  string
	ImageExt string
	LogLevel string
	LogJSON  bool
}

func Default() Config {
	return Config{
		Dir:      DefaultDir,
		TextExt:  DefaultTextExt,
		ImageExt: DefaultImageExt,
		LogLevel: DefaultLogLevel,
	}
}

// Validate normalises the extensions and rejects combinations that cannot
// form pairs.
func (c *Config) Validate() error {
	c.TextExt = NormalizeExt(c.TextExt, DefaultTextExt)
	c.ImageExt = NormalizeExt(c.ImageExt, DefaultImageExt)
	if strings.TrimSpace(c.Dir) == "" {
		c.Dir = DefaultDir
	}

	if c.TextExt == c.ImageExt {
		return fmt.Errorf("text and image extensions must differ (both %q)", c.TextExt)
	}
	return nil
}

// NormalizeExt ensures ext has exactly one leading dot. Empty input yields
// fallback.
func NormalizeExt(ext, fallback string) string {
	ext = strings.TrimLeft(strings.TrimSpace(ext), ".")
	if ext == "" {
		return fallback
	}
	return "." + ext
}

// NewCommand builds the root command. run receives the validated
// configuration and owns the rest of the process lifetime.
func NewCommand(name, version string, run func(ctx context.Context, cfg Config) error) *cli.Command {
	cfg := Default()

	return &cli.Command{
		Name:      name,
		Usage:     "Review and edit caption files next to their images",
		ArgsUsage: "[dir]",
		Version:   version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "text-ext",
				Usage:       "extension of caption files",
				Sources:     cli.EnvVars("TAG_EDITOR_TEXT_EXT"),
				Value:       DefaultTextExt,
				Destination: &cfg.TextExt,
			},
			&cli.StringFlag{
				Name:        "image-ext",
				Usage:       "extension of the paired image files",
				Sources:     cli.EnvVars("TAG_EDITOR_IMAGE_EXT"),
				Value:       DefaultImageExt,
				Destination: &cfg.ImageExt,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("TAG_EDITOR_LOG_LEVEL"),
				Value:       DefaultLogLevel,
				Destination: &cfg.LogLevel,
			},
			&cli.BoolFlag{
				Name:        "log-json",
				Usage:       "write logs as JSON",
				Sources:     cli.EnvVars("TAG_EDITOR_LOG_JSON"),
				Destination: &cfg.LogJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() > 1 {
				return fmt.Errorf("expected at most one directory, got %d arguments", c.NArg())
			}
			if c.Args().Present() {
				cfg.Dir = c.Args().First()
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}
