package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FontSpec is one manifest entry describing a font to embed
type FontSpec struct {
	Symbol string `yaml:"symbol"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Label  string `yaml:"label,omitempty"`
}

// Config is the fontembed.yaml manifest
type Config struct {
	Fonts []FontSpec `yaml:"fonts"`

	// Rendering
	BytesPerRow int `yaml:"bytes_per_row"`

	// Watch mode
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		Fonts:           []FontSpec{},
		BytesPerRow:     16,
		WatchDebounceMS: 500,
		ColorTheme:      "auto",
	}
}

// Load reads a manifest from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing manifest is not an error; defaults apply
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.BytesPerRow <= 0 {
		cfg.BytesPerRow = 16
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the manifest to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

// FindFont returns the manifest entry with the given symbol, or nil
func (c *Config) FindFont(symbol string) *FontSpec {
	for i := range c.Fonts {
		if c.Fonts[i].Symbol == symbol {
			return &c.Fonts[i]
		}
	}
	return nil
}

// AddFont appends a manifest entry, rejecting duplicate symbols
func (c *Config) AddFont(spec FontSpec) error {
	if c.FindFont(spec.Symbol) != nil {
		return fmt.Errorf("symbol '%s' already exists in manifest", spec.Symbol)
	}
	c.Fonts = append(c.Fonts, spec)
	return nil
}
