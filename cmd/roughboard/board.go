package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/render"
	"github.com/example/roughboard/internal/script"
	"github.com/example/roughboard/internal/shape"
)

// boardFlags are the board settings shared by draw and replay.
type boardFlags struct {
	tool   string
	color  string
	filled bool
	width  int
	height int
	output string
}

func (r *root) bindBoardFlags(fs *flag.FlagSet, bf *boardFlags) {
	d := r.config.Defaults
	fs.StringVar(&bf.tool, "tool", d.Tool, "initial tool (selection, line, rectangle, brush, text)")
	fs.StringVar(&bf.color, "color", d.Color, "initial color (black, red, orange, green)")
	fs.BoolVar(&bf.filled, "filled", d.Filled, "fill rectangles")
	fs.IntVar(&bf.width, "width", r.config.Canvas.Width, "canvas width")
	fs.IntVar(&bf.height, "height", r.config.Canvas.Height, "canvas height")
	fs.StringVar(&bf.output, "output", render.DefaultExportName, "export file")
}

// newBoard builds a board from the flags.
func (r *root) newBoard(bf boardFlags) (*board.Board, error) {
	tool, err := board.ParseTool(bf.tool)
	if err != nil {
		return nil, err
	}
	col, err := shape.ParseColor(bf.color)
	if err != nil {
		return nil, err
	}
	if bf.width <= 0 || bf.height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", bf.width, bf.height)
	}
	opts := []board.Option{board.WithTool(tool), board.WithStyle(shape.Style{Color: col, Filled: bf.filled})}
	if l := r.logger(); l != nil {
		opts = append(opts, board.WithLogger(l))
	}
	return board.New(opts...), nil
}

// exportPath places relative output names in the configured export
// directory.
func (r *root) exportPath(out string) string {
	if out == "" {
		out = render.DefaultExportName
	}
	if filepath.IsAbs(out) || r.config.ExportDir == "" {
		return out
	}
	return filepath.Join(r.config.ExportDir, out)
}

// replayFile runs the script at path against b. "-" reads stdin.
func replayFile(b *board.Board, path string) error {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	cmds, err := script.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := script.Run(b, cmds); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
