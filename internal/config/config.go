package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the persistent defaults for runetab. Command-line flags
// override every field.
type Config struct {
	Format      []string `toml:"format,omitempty"`
	Theme       string   `toml:"theme"`
	Color       string   `toml:"color"`
	StreamChunk int      `toml:"stream_chunk"`
	BufferChunk int      `toml:"buffer_chunk"`
	Decimal     bool     `toml:"decimal"`
	Names       bool     `toml:"names"`
	Rigid       bool     `toml:"rigid"`
	Merge       bool     `toml:"merge"`
	Oneline     bool     `toml:"oneline"`
}

const (
	defaultConfigPath  = "~/.config/runetab/config.toml"
	defaultTheme       = "default"
	defaultColor       = "auto"
	defaultStreamChunk = 4
	defaultBufferChunk = 4096
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:       defaultTheme,
		Color:       defaultColor,
		StreamChunk: defaultStreamChunk,
		BufferChunk: defaultBufferChunk,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path (the default path when empty), falling back
// to defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg to path (the default path when empty), creating
// directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	cfg.normalize()
	bytes, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Theme = strings.TrimSpace(c.Theme)
	if c.Theme == "" {
		c.Theme = defaultTheme
	}
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = defaultColor
	}
	if c.StreamChunk <= 0 {
		c.StreamChunk = defaultStreamChunk
	}
	if c.BufferChunk <= 0 {
		c.BufferChunk = defaultBufferChunk
	}
	var format []string
	for _, f := range c.Format {
		if f = strings.TrimSpace(f); f != "" {
			format = append(format, f)
		}
	}
	c.Format = format
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
