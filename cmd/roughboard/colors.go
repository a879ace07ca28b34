package main

import (
	"flag"
	"fmt"

	"github.com/muesli/termenv"

	"github.com/example/roughboard/internal/board"
	"github.com/example/roughboard/internal/shape"
	"github.com/example/roughboard/internal/theme"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Program() string {
	return c.root.program + " colors"
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	out := termenv.NewOutput(c.stdout)
	def, _ := shape.ParseColor(c.config.Defaults.Color)

	fmt.Fprintln(c.stdout, "palette (* marks the default color):")
	for i, col := range shape.Colors() {
		marker := " "
		if col == def {
			marker = "*"
		}
		hex := theme.Hex(col.RGBA())
		swatch := out.String("  ").Background(out.Color(hex))
		fmt.Fprintf(c.stdout, "%s %d: %-8s %s %s\n", marker, i+1, col, hex, swatch)
	}

	fmt.Fprintln(c.stdout, "tools:")
	for _, t := range board.Tools() {
		fmt.Fprintf(c.stdout, "  %s\n", t)
	}

	fmt.Fprintln(c.stdout, "themes:")
	loader := theme.NewLoader()
	for _, name := range theme.Names() {
		t, err := loader.Load(name)
		if err != nil {
			fmt.Fprintf(c.stdout, "  %-8s %v\n", name, err)
			continue
		}
		canvas := out.String("    ").Background(out.Color(theme.Hex(t.Canvas)))
		ink := out.String(" Aa ").Foreground(out.Color(theme.Hex(t.Foreground))).Background(out.Color(theme.Hex(t.Background)))
		fmt.Fprintf(c.stdout, "  %-8s %s%s\n", name, canvas, ink)
	}
	return nil
}
