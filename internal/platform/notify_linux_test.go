//go:build linux

package platform

import "testing"

func TestReplaceIDsByTag(t *testing.T) {
	if got := replaces("export"); got != 0 {
		t.Fatalf("expected no id before any notification, got %d", got)
	}
	remember("export", 7)
	remember("", 9)
	remember("copy", 8)
	if got := replaces("export"); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	remember("export", 11)
	if got := replaces("export"); got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
	if got := replaces(""); got != 0 {
		t.Fatalf("untagged notifications must not replace, got %d", got)
	}
}

func TestOptionDefaults(t *testing.T) {
	var o Options
	if o.timeout() != DefaultTimeout {
		t.Fatalf("unexpected timeout %v", o.timeout())
	}
	if o.appName() != "Roughboard" {
		t.Fatalf("unexpected app name %q", o.appName())
	}
}
