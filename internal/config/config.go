package config

import (
	"fmt"
	"os"

	"github.com/san-kum/rollgrid/internal/grid"
	"github.com/san-kum/rollgrid/internal/slides"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth   = 1600.0
	DefaultHeight  = 900.0
	DefaultFPS     = 60
	DefaultTheme   = "midnight"
	DefaultVariant = "extended"
)

type Config struct {
	Variant  string            `yaml:"variant"`
	Slides   []string          `yaml:"slides"`
	Story    string            `yaml:"story"`
	Theme    string            `yaml:"theme"`
	FPS      int               `yaml:"fps"`
	Viewport ViewportConfig    `yaml:"viewport"`
	Bindings map[string]string `yaml:"bindings"`
	Log      LogConfig         `yaml:"log"`
	Export   ExportConfig      `yaml:"export"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type ExportConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// DefaultBindings maps each trigger id to the key that fires it.
func DefaultBindings() map[string]string {
	b := make(map[string]string, len(slides.All))
	for _, s := range slides.All {
		b[s.ID()] = fmt.Sprintf("%d", int(s))
	}
	return b
}

func DefaultConfig() *Config {
	return &Config{
		Variant:  DefaultVariant,
		Theme:    DefaultTheme,
		FPS:      DefaultFPS,
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		Bindings: DefaultBindings(),
		Log:      LogConfig{Level: "info"},
		Export:   ExportConfig{Background: "#1b1b1b", Text: "#ffffff"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetViewport returns the configured viewport, falling back to the
// defaults for non-positive sizes.
func (c *Config) GetViewport() grid.Viewport {
	vp := grid.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
	if vp.Width <= 0 {
		vp.Width = DefaultWidth
	}
	if vp.Height <= 0 {
		vp.Height = DefaultHeight
	}
	return vp
}

// EnabledSlides resolves the explicit slide list, or the variant's list
// when none is given.
func (c *Config) EnabledSlides() ([]slides.Slide, error) {
	names := c.Slides
	if len(names) == 0 {
		variant := c.Variant
		if variant == "" {
			variant = DefaultVariant
		}
		preset := GetPreset(variant)
		if preset == nil {
			return nil, fmt.Errorf("unknown variant: %s (available: %v)", variant, ListPresets())
		}
		names = preset.Slides
	}
	out := make([]slides.Slide, 0, len(names))
	for _, n := range names {
		s, err := slides.ParseSlide(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
