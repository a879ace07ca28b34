//go:build !linux && !darwin && !windows

package platform

// Notify does nothing where there is no notification center to talk to.
func Notify(string, string, Options) error { return nil }
