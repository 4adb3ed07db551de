package models

import (
	"errors"
	"path/filepath"
)

// ErrNoPairs is returned when a directory holds no caption with a matching image.
var ErrNoPairs = errors.New("no caption/image pairs found")

// Pair links a caption text file with the image it describes. Both paths
// share a base name and differ only in extension.
type Pair struct {
	TextPath  string
	ImagePath string
}

// TextName returns the caption file name without its directory.
func (p Pair) TextName() string {
	return filepath.Base(p.TextPath)
}

// ImageName returns the image file name without its directory.
func (p Pair) ImageName() string {
	return filepath.Base(p.ImagePath)
}

// Direction selects which neighbour Navigate moves to.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "unknown"
	}
}

// EditState is the visual dirty indicator of the caption being edited. It is
// never consulted before navigating or saving.
type EditState int

const (
	Clean EditState = iota
	Modified
)

func (s EditState) String() string {
	if s == Modified {
		return "modified"
	}
	return "clean"
}
