// Package render turns a geometry scene into an image file.
//
// Every encoder draws the ViewSize×ViewSize logical square onto a
// size×size canvas.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tiliavir/dial/internal/geometry"
)

// Encoder writes scene as a size×size image to w.
type Encoder func(w io.Writer, scene geometry.Group, size int) error

// Formats lists the supported output formats.
var Formats = []string{"svg", "png"}

// ForFormat returns the encoder registered for name ("svg" or "png").
func ForFormat(name string) (Encoder, error) {
	switch strings.ToLower(name) {
	case "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	default:
		return nil, fmt.Errorf("unknown format %q: use one of %s", name, strings.Join(Formats, ", "))
	}
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	return "." + strings.ToLower(format)
}

func checkSize(size int) error {
	if size < 1 {
		return fmt.Errorf("image size must be positive, got %d", size)
	}
	return nil
}
