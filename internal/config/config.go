package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/roughboard/internal/theme"
)

// Default canvas size in surface units.
const (
	DefaultWidth  = 690
	DefaultHeight = 550
)

// Notify holds notification settings.
type Notify struct {
	Export bool `toml:"export"`
	Copy   bool `toml:"copy"`
}

// Canvas holds the drawing surface size.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Defaults holds the tool and style a new board starts with.
type Defaults struct {
	Tool   string `toml:"tool"`
	Color  string `toml:"color"`
	Filled bool   `toml:"filled"`
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	ExportDir string
	Canvas    Canvas
	Defaults  Defaults
	Notify    Notify
	Themes    map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // Default to empty to allow fallback to Env/Default
		Canvas: Canvas{Width: DefaultWidth, Height: DefaultHeight},
		Defaults: Defaults{
			Tool:  "rectangle",
			Color: "black",
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "export_dir = %s\n", c.ExportDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	sb.WriteString("\n")

	sb.WriteString("[defaults]\n")
	fmt.Fprintf(&sb, "tool = %s\n", c.Defaults.Tool)
	fmt.Fprintf(&sb, "color = %s\n", c.Defaults.Color)
	fmt.Fprintf(&sb, "filled = %v\n", c.Defaults.Filled)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	themeNames := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Key, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
