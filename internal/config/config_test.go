package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	var got Config
	cmd := NewCommand("tag-editor", "test", func(_ context.Context, cfg Config) error {
		got = cfg
		return nil
	})
	err := cmd.Run(context.Background(), append([]string{"tag-editor"}, args...))
	return got, err
}

func TestNewCommand_Defaults(t *testing.T) {
	cfg, err := runCommand(t)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestNewCommand_FlagsAndDir(t *testing.T) {
	cfg, err := runCommand(t, "--text-ext", "caption", "--image-ext", ".PNG", "--log-level", "debug", "--log-json", "/data/set")
	require.NoError(t, err)

	assert.Equal(t, Config{
		Dir:      "/data/set",
		TextExt:  ".caption",
		ImageExt: ".PNG",
		LogLevel: "debug",
		LogJSON:  true,
	}, cfg)
}

func TestNewCommand_Environment(t *testing.T) {
	t.Setenv("TAG_EDITOR_IMAGE_EXT", "webp")
	t.Setenv("TAG_EDITOR_LOG_LEVEL", "warn")

	cfg, err := runCommand(t)
	require.NoError(t, err)

	assert.Equal(t, ".webp", cfg.ImageExt)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ".txt", cfg.TextExt)
}

func TestNewCommand_Rejects(t *testing.T) {
	t.Run("too many dirs", func(t *testing.T) {
		_, err := runCommand(t, "one", "two")
		assert.Error(t, err)
	})

	t.Run("same extensions", func(t *testing.T) {
		_, err := runCommand(t, "--image-ext", "txt")
		assert.ErrorContains(t, err, "must differ")
	})
}

func TestNormalizeExt(t *testing.T) {
	a := assert.New(t)

	a.Equal(".txt", NormalizeExt("txt", ".x"))
	a.Equal(".txt", NormalizeExt(".txt", ".x"))
	a.Equal(".txt", NormalizeExt("..txt", ".x"))
	a.Equal(".tar.gz", NormalizeExt(".tar.gz", ".x"))
	a.Equal(".x", NormalizeExt("  ", ".x"))
}
