package main

import (
	"flag"

	"github.com/example/roughboard/internal/appstate"
)

// drawCmd opens the interactive window.
type drawCmd struct {
	*root
	fs     *flag.FlagSet
	board  boardFlags
	script string
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func (d *drawCmd) Program() string {
	return d.root.program + " draw"
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	r.bindBoardFlags(fs, &d.board)
	fs.StringVar(&d.script, "script", "", "replay a gesture script before opening the window")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: d}
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	b, err := d.newBoard(d.board)
	if err != nil {
		return err
	}
	if d.script != "" {
		if err := replayFile(b, d.script); err != nil {
			return err
		}
	}
	st := appstate.New(
		appstate.WithBoard(b),
		appstate.WithTheme(d.activeTheme),
		appstate.WithOutput(d.exportPath(d.board.output)),
		appstate.WithNotifier(d.notifier),
		appstate.WithCanvasSize(d.board.width, d.board.height),
	)
	st.Run()
	return nil
}
