package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// EnvPath names a config file to use ahead of the usual locations.
const EnvPath = "ROUGHBOARD_CONFIG"

// parsers picks a parser by file extension. Anything else is rc.
var parsers = map[string]func(io.Reader) (*Config, error){
	".toml": ParseTOML,
}

// Loader finds and reads the configuration file.
type Loader struct {
	Version      string // Build version; "dev" also looks in the working directory
	OverridePath string // Set at compile time
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Candidates lists the files Load considers, most preferred first.
func (l *Loader) Candidates() []string {
	var out []string
	for _, p := range []string{l.OverridePath, os.Getenv(EnvPath)} {
		if p == "" {
			continue
		}
		if x, err := homedir.Expand(p); err == nil {
			out = append(out, x)
		}
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			out = append(out, filepath.Join(wd, ".roughboardrc"))
		}
	}
	for _, name := range []string{"config.rc", "config.toml", "roughboard.rc"} {
		out = append(out, filepath.Join(DefaultDir(), name))
	}
	return out
}

// GetConfigPath returns the first candidate that exists, or "" when there
// is none.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.Candidates() {
		if exists(p) {
			return p
		}
	}
	return ""
}

// Load reads the configuration, falling back to defaults when no file
// exists.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parse, ok := parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		parse = Parse
	}
	return parse(f)
}

// DefaultDir is where the configuration normally lives.
func DefaultDir() string {
	home, _ := homedir.Dir()
	return filepath.Join(home, ".config", "roughboard")
}

// Save writes cfg in rc format to path, creating parent directories.
func Save(cfg *Config, path string) error {
	p, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(cfg.String()), 0o644)
}

func exists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
