package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/example/roughboard/internal/theme"
)

// Parse reads configuration in RC format from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	// Context for parsing
	var currentSection string
	var currentTheme *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if themeName, ok := strings.CutPrefix(currentSection, "theme."); ok {
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		// Parse Key = Value or Key: Value
		var key, value string
		var ok bool
		if key, value, ok = strings.Cut(line, "="); !ok {
			if key, value, ok = strings.Cut(line, ":"); !ok {
				continue
			}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		// Remove quotes if present
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentTheme != nil:
			err = theme.SetField(currentTheme, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case currentSection == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case currentSection == "defaults":
			err = setDefaultsField(&cfg.Defaults, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, cfg.expand()
}

// tomlFile mirrors Config for TOML input. Themes are tables of hex strings.
type tomlFile struct {
	Theme     string                       `toml:"theme"`
	ExportDir string                       `toml:"export_dir"`
	Canvas    *Canvas                      `toml:"canvas"`
	Defaults  *Defaults                    `toml:"defaults"`
	Notify    *Notify                      `toml:"notify"`
	Themes    map[string]map[string]string `toml:"theme_defs"`
}

// ParseTOML reads configuration in TOML format. Custom themes live under
// [theme_defs.<name>] since "theme" names the active one.
func ParseTOML(r io.Reader) (*Config, error) {
	cfg := New()
	var f tomlFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	cfg.Theme = f.Theme
	cfg.ExportDir = f.ExportDir
	if f.Canvas != nil {
		if f.Canvas.Width > 0 {
			cfg.Canvas.Width = f.Canvas.Width
		}
		if f.Canvas.Height > 0 {
			cfg.Canvas.Height = f.Canvas.Height
		}
	}
	if f.Defaults != nil {
		if f.Defaults.Tool != "" {
			cfg.Defaults.Tool = f.Defaults.Tool
		}
		if f.Defaults.Color != "" {
			cfg.Defaults.Color = f.Defaults.Color
		}
		cfg.Defaults.Filled = f.Defaults.Filled
	}
	if f.Notify != nil {
		cfg.Notify = *f.Notify
	}
	for name, fields := range f.Themes {
		t := theme.Default()
		t.Name = name
		for k, v := range fields {
			if err := theme.SetField(t, k, v); err != nil {
				return nil, fmt.Errorf("error in theme %s: %w", name, err)
			}
		}
		cfg.Themes[name] = t
	}
	return cfg, cfg.expand()
}

func (c *Config) expand() error {
	if c.ExportDir == "" {
		return nil
	}
	dir, err := homedir.Expand(c.ExportDir)
	if err != nil {
		return fmt.Errorf("export_dir: %w", err)
	}
	c.ExportDir = dir
	return nil
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "export_dir":
		cfg.ExportDir = value
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "export":
		n.Export = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid size for key %s: %q", key, value)
	}
	switch strings.ToLower(key) {
	case "width":
		c.Width = n
	case "height":
		c.Height = n
	}
	return nil
}

func setDefaultsField(d *Defaults, key, value string) error {
	switch strings.ToLower(key) {
	case "tool":
		d.Tool = value
	case "color":
		d.Color = value
	case "filled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		d.Filled = b
	}
	return nil
}
