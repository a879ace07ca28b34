package clipboard

import (
	"errors"
	"testing"
)

func TestWriteRejectsBadInput(t *testing.T) {
	if err := WritePNG(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if err := WritePNG([]byte("GIF89a")); !errors.Is(err, ErrNotPNG) {
		t.Fatalf("expected ErrNotPNG, got %v", err)
	}
	if err := WriteText(""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}
