// Package config holds process-wide constants and the bytegen.yaml project
// file.
//
// A project file names the type sources the CLI loads into its type pool
// and the class file version code is generated for:
//
//	target: "17"
//	implicit: true
//	color: auto
//	sources:
//	  types: [types/core.yaml]
//	  proto: [api/user.proto]
//	  proto_paths: [api]
//	  sqlite: build/types.db
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/bytegen/internal/bytecode"
)

// Color modes for CLI listings
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the top-level bytegen.yaml configuration.
type Config struct {
	// Target is the Java release code is generated for ("1.8", "17").
	// Defaults to DefaultJavaVersion.
	Target string `yaml:"target,omitempty"`

	// Implicit enables implicit unboxing and down casts in the CLI's
	// assignment mode unless overridden by a flag.
	Implicit bool `yaml:"implicit,omitempty"`

	// Color selects listing colors: auto (terminal only), always, never.
	Color string `yaml:"color,omitempty"`

	// Sources lists where type descriptions are loaded from.
	Sources Sources `yaml:"sources,omitempty"`

	// Version is the parsed Target; filled in by ParseConfig.
	Version bytecode.ClassFileVersion `yaml:"-"`

	// Dir is the directory containing the config file; relative source
	// paths are resolved against it.
	Dir string `yaml:"-"`
}

// Sources lists type-pool inputs.
type Sources struct {
	// Types are YAML type description files.
	Types []string `yaml:"types,omitempty"`

	// Proto are .proto files whose messages become generated classes.
	Proto []string `yaml:"proto,omitempty"`

	// ProtoPaths are import paths for resolving proto imports.
	ProtoPaths []string `yaml:"proto_paths,omitempty"`

	// SQLite is a type database written by `bytegen export`.
	SQLite string `yaml:"sqlite,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	cfg.Version, _ = bytecode.ParseJavaVersion(cfg.Target)
	return cfg
}

// LoadConfig reads and parses a bytegen.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses bytegen.yaml content from bytes.
// The path argument is used for error messages and relative paths.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(path)
	return &cfg, nil
}

// FindConfig searches for bytegen.yaml starting from dir and walking up
// to parent directories. Returns an empty path if none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	version, err := bytecode.ParseJavaVersion(c.Target)
	if err != nil {
		return fmt.Errorf("%s: target: %w", path, err)
	}
	c.Version = version

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color: unknown mode %q (want auto, always or never)", path, c.Color)
	}

	seen := make(map[string]bool)
	for i, p := range c.Sources.Types {
		if p == "" {
			return fmt.Errorf("%s: sources.types[%d]: empty path", path, i)
		}
		if seen[p] {
			return fmt.Errorf("%s: sources.types[%d]: %q listed twice", path, i, p)
		}
		seen[p] = true
	}
	for i, p := range c.Sources.Proto {
		if p == "" {
			return fmt.Errorf("%s: sources.proto[%d]: empty path", path, i)
		}
	}
	if len(c.Sources.ProtoPaths) > 0 && len(c.Sources.Proto) == 0 {
		return fmt.Errorf("%s: sources.proto_paths given without sources.proto", path)
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if c.Target == "" {
		c.Target = DefaultJavaVersion
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// Resolve makes a source path absolute relative to the config directory.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir == "" {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// ProtoImportPaths returns proto import paths resolved against Dir,
// defaulting to Dir itself.
func (c *Config) ProtoImportPaths() []string {
	if len(c.Sources.ProtoPaths) == 0 {
		if c.Dir == "" {
			return []string{"."}
		}
		return []string{c.Dir}
	}
	paths := make([]string, len(c.Sources.ProtoPaths))
	for i, p := range c.Sources.ProtoPaths {
		paths[i] = c.Resolve(p)
	}
	return paths
}
