package appstate

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/clipboard"
	"github.com/example/roughboard/internal/hittest"
	"github.com/example/roughboard/internal/notify"
	"github.com/example/roughboard/internal/render"
	"github.com/example/roughboard/internal/shape"
)

const messageDuration = 2 * time.Second

// session ties a board to its renderer and outputs. It is owned by the
// event goroutine.
type session struct {
	board    *board.Board
	renderer *render.Renderer
	notifier *notify.Notifier
	output   string

	// copyPNG and copyText publish to the clipboard.
	copyPNG  func([]byte) error
	copyText func(string) error

	canvas       image.Image
	dirty        bool
	cursor       hittest.Cursor
	message      string
	messageUntil time.Time
}

func newSession(b *board.Board, r *render.Renderer, n *notify.Notifier, output string) *session {
	s := &session{
		board:    b,
		renderer: r,
		notifier: n,
		output:   output,
		copyPNG:  clipboard.WritePNG,
		copyText: clipboard.WriteText,
		dirty:    true,
	}
	b.History().OnChange(func(shape.Collection) { s.dirty = true })
	return s
}

// frame returns the rendered canvas, redrawing it when the shapes changed.
// The shape open for editing is left to the text overlay.
func (s *session) frame() (image.Image, error) {
	if !s.dirty && s.canvas != nil {
		return s.canvas, nil
	}
	skip := -1
	if id, ok := s.board.EditingID(); ok {
		skip = id
	}
	if err := s.renderer.Draw(s.board.Shapes(), skip); err != nil {
		return nil, err
	}
	s.canvas = s.renderer.Image()
	s.dirty = false
	return s.canvas, nil
}

func (s *session) invalidate() { s.dirty = true }

func (s *session) say(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageUntil = time.Now().Add(messageDuration)
	log.Print(s.message)
}

func (s *session) activeMessage(now time.Time) string {
	if s.message != "" && now.Before(s.messageUntil) {
		return s.message
	}
	return ""
}

func (s *session) dismissMessage() bool {
	if s.activeMessage(time.Now()) == "" {
		return false
	}
	s.messageUntil = time.Time{}
	return true
}

// pointerDown, pointerMove and pointerUp forward canvas coordinates to the
// board.
func (s *session) pointerDown(x, y float64) error {
	before := s.board.State()
	if err := s.board.PointerDown(x, y); err != nil {
		return err
	}
	if s.board.State() != before {
		s.invalidate()
	}
	return nil
}

func (s *session) pointerMove(x, y float64) error {
	cursor, err := s.board.PointerMove(x, y)
	if err != nil {
		return err
	}
	s.cursor = cursor
	return nil
}

func (s *session) pointerUp(x, y float64) error {
	before := s.board.State()
	if err := s.board.PointerUp(x, y); err != nil {
		return err
	}
	if s.board.State() != before {
		s.invalidate()
	}
	return nil
}

func (s *session) commitText() error {
	if err := s.board.CommitText(); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *session) exportPath(ext string) string {
	out := s.output
	if out == "" {
		out = render.DefaultExportName
	}
	if ext != "" {
		out = strings.TrimSuffix(out, filepath.Ext(out)) + ext
	}
	return out
}

// export writes the canvas to the output file. Failures are reported but
// never touch the board.
func (s *session) export() {
	if _, err := s.frame(); err != nil {
		log.Printf("export: %v", err)
		return
	}
	path := s.exportPath("")
	if err := s.renderer.Export(path); err != nil {
		log.Printf("export: %v", err)
		s.say("export failed")
		return
	}
	s.say("exported %s", path)
	s.notifier.Export(path, len(s.board.Shapes()))
}

func (s *session) exportPDF() {
	path := s.exportPath(".pdf")
	w, h := s.renderer.Size()
	var buf bytes.Buffer
	if err := render.ExportPDF(s.board.Shapes(), &buf, float64(w), float64(h)); err != nil {
		log.Printf("export: %v", err)
		s.say("export failed")
		return
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Printf("export: %v", err)
		s.say("export failed")
		return
	}
	s.say("exported %s", path)
	s.notifier.Export(path, len(s.board.Shapes()))
}

// copyImage publishes the canvas as PNG.
func (s *session) copyImage() {
	if _, err := s.frame(); err != nil {
		log.Printf("copy: %v", err)
		return
	}
	var buf bytes.Buffer
	if err := s.renderer.EncodePNG(&buf); err != nil {
		log.Printf("copy: %v", err)
		return
	}
	if err := s.copyPNG(buf.Bytes()); err != nil {
		log.Printf("copy: %v", err)
		s.say("copy failed")
		return
	}
	s.say("image copied to clipboard")
	s.notifier.Copy("image", len(s.board.Shapes()))
}

// copyDataURL publishes the canvas as a data URL.
func (s *session) copyDataURL() {
	if _, err := s.frame(); err != nil {
		log.Printf("copy: %v", err)
		return
	}
	url, err := s.renderer.DataURL()
	if err != nil {
		log.Printf("copy: %v", err)
		return
	}
	if err := s.copyText(url); err != nil {
		log.Printf("copy: %v", err)
		s.say("copy failed")
		return
	}
	s.say("data URL copied to clipboard")
	s.notifier.Copy("data URL", len(s.board.Shapes()))
}
