// Package config loads and validates the game configuration.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up by Loader.LoadDefault
const DefaultFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads, parses and validates the named config file
func (l *Loader) Load(name string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.displayPath(name), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.displayPath(name), err)
	}
	return cfg, nil
}

// displayPath is name as seen from outside the loader's filesystem
func (l *Loader) displayPath(name string) string {
	return path.Join(l.basePath, name)
}

// LoadDefault loads game.yaml
func (l *Loader) LoadDefault() (*Config, error) {
	return l.Load(DefaultFile)
}

// LoadFile loads a config from an arbitrary path on disk
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default, so omitted keys keep their
// built-in values, then validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
