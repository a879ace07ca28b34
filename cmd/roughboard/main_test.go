package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/roughboard/internal/config"
	"github.com/example/roughboard/internal/notify"
)

func testRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	r := newRootWith(config.New(), notify.New(notify.DefaultPreferences()))
	var out bytes.Buffer
	r.stdout = &out
	r.stderr = &bytes.Buffer{}
	return r, &out
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "gestures.txt")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}

const boxScript = `# a red box and a line
tool rectangle
color red
down 10 10
move 40 30
up 40 30
tool line
down 0 0
move 50 50
up 50 50
`

func TestRunWithoutCommand(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "Usage: roughboard"; !strings.Contains(uerr.Error(), want) {
		t.Fatalf("expected help to contain %q, got %q", want, uerr.Error())
	}
	if !strings.Contains(uerr.Error(), "-theme") {
		t.Fatalf("expected flags in help, got %q", uerr.Error())
	}
}

func TestUnknownCommand(t *testing.T) {
	r, _ := testRoot(t)
	var uerr *UsageError
	if err := r.Run([]string{"paint"}); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestReplayWritesPNG(t *testing.T) {
	r, _ := testRoot(t)
	out := filepath.Join(t.TempDir(), "box.png")
	args := []string{"replay", "-width", "80", "-height", "60", "-output", out, writeScript(t, boxScript)}
	if err := r.Run(args); err != nil {
		t.Fatalf("replay: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestReplayExportDir(t *testing.T) {
	r, _ := testRoot(t)
	dir := t.TempDir()
	r.config.ExportDir = dir
	if err := r.Run([]string{"replay", "-output", "rel.pdf", writeScript(t, boxScript)}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "rel.pdf"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("not a pdf: %q", data[:8])
	}
}

func TestReplayDataURL(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"replay", "-data-url", "-width", "20", "-height", "20", writeScript(t, boxScript)}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.HasPrefix(out.String(), "data:image/png;base64,") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestReplayReportsLine(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run([]string{"replay", "-data-url", writeScript(t, "tool line\nwobble 1 2\n")})
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "line 2"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestReplayRejectsBadDefaults(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run([]string{"replay", "-tool", "eraser", writeScript(t, boxScript)})
	if err == nil || !strings.Contains(err.Error(), "eraser") {
		t.Fatalf("expected unknown tool error, got %v", err)
	}
}

func TestThemePrecedence(t *testing.T) {
	t.Setenv("ROUGHBOARD_THEME", "dark")
	r, _ := testRoot(t)
	r.config.Theme = "chalk"
	if got := r.loadTheme().Name; got != "Dark" {
		t.Fatalf("env should win over config, got %q", got)
	}
	r.themeName = "default"
	if got := r.loadTheme().Name; got != "Default" {
		t.Fatalf("flag should win over env, got %q", got)
	}
}

func TestColorsListsPaletteAndThemes(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"colors"}); err != nil {
		t.Fatalf("colors: %v", err)
	}
	for _, want := range []string{"* 4: black", "red", "#FF0000", "dark", "rectangle"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in %q", want, out.String())
		}
	}
}

func TestConfigPrintAndSave(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"config", "print"}); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out.String(), "[canvas]") {
		t.Fatalf("unexpected config %q", out.String())
	}

	r, _ = testRoot(t)
	path := filepath.Join(t.TempDir(), "nested", "config.rc")
	if err := r.Run([]string{"config", "save", path}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != out.String() {
		t.Fatalf("saved config differs from printed config")
	}
}

func TestVersion(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := out.String(); got != "roughboard version dev\n" {
		t.Fatalf("unexpected version %q", got)
	}
}
