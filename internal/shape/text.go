package shape

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Text metrics. Labels are set in a 24 unit sans-serif face and a text box
// is one line tall.
const (
	FontSize   = 24
	LineHeight = 24
)

var measureMu sync.Mutex

var measureFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: FontSize, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	return face, nil
})

// MeasureText returns the advance width of text in surface units. When the
// face cannot be loaded every rune counts as half an em.
func MeasureText(text string) float64 {
	face, err := measureFace()
	if err != nil {
		return float64(utf8.RuneCountInString(text)) * FontSize / 2
	}
	measureMu.Lock()
	defer measureMu.Unlock()
	return float64(font.MeasureString(face, text)) / 64
}
