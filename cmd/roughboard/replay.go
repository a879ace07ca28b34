package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/roughboard/internal/clipboard"
	"github.com/example/roughboard/internal/render"
)

// replayCmd runs a gesture script without a window and exports the result.
type replayCmd struct {
	*root
	fs          *flag.FlagSet
	board       boardFlags
	script      string
	dataURL     bool
	toClipboard bool
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *replayCmd) Program() string {
	return c.root.program + " replay"
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	c := &replayCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	r.bindBoardFlags(fs, &c.board)
	fs.BoolVar(&c.dataURL, "data-url", false, "print the drawing as a PNG data URL instead of writing a file")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "also copy the PNG to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	c.script = fs.Arg(0)
	return c, nil
}

func (c *replayCmd) Run() error {
	b, err := c.newBoard(c.board)
	if err != nil {
		return err
	}
	if err := replayFile(b, c.script); err != nil {
		return err
	}
	shapes := b.Shapes()

	out := c.exportPath(c.board.output)
	if strings.EqualFold(filepath.Ext(out), ".pdf") && !c.dataURL {
		var buf bytes.Buffer
		if err := render.ExportPDF(shapes, &buf, float64(c.board.width), float64(c.board.height)); err != nil {
			return err
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("%w: %w", render.ErrExport, err)
		}
		fmt.Fprintf(c.stderr, "exported %d shapes to %s\n", len(shapes), out)
		c.notifier.Export(out, len(shapes))
		return nil
	}

	r, err := render.New(c.board.width, c.board.height, render.WithBackground(c.activeTheme.Canvas))
	if err != nil {
		return err
	}
	defer r.Close()
	if err := r.Draw(shapes, -1); err != nil {
		return err
	}

	if c.toClipboard {
		var buf bytes.Buffer
		if err := r.EncodePNG(&buf); err != nil {
			return err
		}
		if err := clipboard.WritePNG(buf.Bytes()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		c.notifier.Copy("image", len(shapes))
	}

	if c.dataURL {
		url, err := r.DataURL()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, url)
		return nil
	}
	if err := r.Export(out); err != nil {
		return err
	}
	fmt.Fprintf(c.stderr, "exported %d shapes to %s\n", len(shapes), out)
	c.notifier.Export(out, len(shapes))
	return nil
}
