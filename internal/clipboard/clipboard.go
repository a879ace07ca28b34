// Package clipboard publishes exported drawings to the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"os"
)

var (
	// ErrEmpty is returned when there is nothing to copy.
	ErrEmpty = errors.New("nothing to copy")
	// ErrNotPNG is returned when image data is not an encoded PNG.
	ErrNotPNG = errors.New("clipboard image is not a PNG")

	errNoDisplay = errors.New("clipboard needs DISPLAY or WAYLAND_DISPLAY")
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// WritePNG publishes encoded PNG data as a clipboard image.
func WritePNG(data []byte) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	if !bytes.HasPrefix(data, pngSignature) {
		return ErrNotPNG
	}
	return writeImage(data)
}

// WriteText publishes text, such as a data URL, to the clipboard.
func WriteText(text string) error {
	if text == "" {
		return ErrEmpty
	}
	return writeText(text)
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
