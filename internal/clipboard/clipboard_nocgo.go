//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"sync"
)

var (
	initOnce sync.Once
	initErr  error
)

// The X11 and Wayland backends are C libraries.
var errCGODisabled = errors.New("clipboard needs a cgo build")

func ensureInit() error {
	initOnce.Do(func() {
		initErr = errNoDisplay
		if hasDisplay() {
			initErr = errCGODisabled
		}
	})
	return initErr
}

func writeImage([]byte) error { return ensureInit() }

func writeText(string) error { return ensureInit() }
