package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid value")

type CameraSpec struct {
	X   float64 `yaml:"x"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type LabelSpec struct {
	FontSize       float64 `yaml:"font_size"`
	CharWidth      float64 `yaml:"char_width"`
	BaselineOffset float64 `yaml:"baseline_offset"`
}

type PaletteSpec struct {
	Background    string  `yaml:"background"`
	Directory     string  `yaml:"directory"`
	File          string  `yaml:"file"`
	AccessDenied  string  `yaml:"access_denied"`
	Selected      string  `yaml:"selected"`
	Label         string  `yaml:"label"`
	SelectedLabel string  `yaml:"selected_label"`
	Outline       string  `yaml:"outline"`
	OutlineWidth  float64 `yaml:"outline_width"`
}

type KeyRepeatSpec struct {
	Delay    int `yaml:"delay"`
	Interval int `yaml:"interval"`
}

// Config holds every tunable of the viewer.
type Config struct {
	FOV             float64 `yaml:"fov"`
	MoveStep        float64 `yaml:"move_step"`
	TurnStep        float64 `yaml:"turn_step"`
	TowerBaseWidth  float64 `yaml:"tower_base_width"`
	TowerBaseHeight float64 `yaml:"tower_base_height"`
	TowerSpacing    float64 `yaml:"tower_spacing"`

	Camera                CameraSpec `yaml:"camera"`
	FallbackViewportWidth float64    `yaml:"fallback_viewport_width"`

	Label   LabelSpec   `yaml:"label"`
	Palette PaletteSpec `yaml:"palette"`

	ShowFiles    bool   `yaml:"show_files"`
	FilterScript string `yaml:"filter_script"`

	// Keys maps a command name such as "turn_left" to ebiten key names.
	Keys      map[string][]string `yaml:"keys"`
	KeyRepeat KeyRepeatSpec       `yaml:"key_repeat"`

	// Path is the file this config was read from; empty for the embedded default.
	Path string `yaml:"-"`
}

// Default mirrors the embedded skyline.yaml.
func Default() Config {
	return Config{
		FOV:             800,
		MoveStep:        20,
		TurnStep:        0.05,
		TowerBaseWidth:  100,
		TowerBaseHeight: 150,
		TowerSpacing:    200,
		Camera:          CameraSpec{X: 0, Z: -500, Yaw: 0},

		FallbackViewportWidth: 1600,

		Label: LabelSpec{FontSize: 14, CharWidth: 7, BaselineOffset: 20},
		Palette: PaletteSpec{
			Background:    "black",
			Directory:     "cyan",
			File:          "gray",
			AccessDenied:  "red",
			Selected:      "lime",
			Label:         "white",
			SelectedLabel: "yellow",
			Outline:       "white",
			OutlineWidth:  1,
		},
		FilterScript: "scripts/filter.tengo",
		Keys: map[string][]string{
			"move_forward":  {"W", "ArrowUp"},
			"move_backward": {"S", "ArrowDown"},
			"strafe_left":   {"A"},
			"strafe_right":  {"D"},
			"turn_left":     {"ArrowLeft"},
			"turn_right":    {"ArrowRight"},
		},
		KeyRepeat: KeyRepeatSpec{Delay: 18, Interval: 3},
	}
}

// LoadConfig reads path, or the embedded default when path is empty. Fields
// missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	name := path
	if name == "" {
		name = DefaultName
	}
	data, err := Load(name)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", name, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", name, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	keys := cfg.Keys
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Keys == nil {
		cfg.Keys = keys
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would break projection or layout.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"fov", c.FOV},
		{"move_step", c.MoveStep},
		{"turn_step", c.TurnStep},
		{"tower_base_width", c.TowerBaseWidth},
		{"tower_base_height", c.TowerBaseHeight},
		{"fallback_viewport_width", c.FallbackViewportWidth},
		{"label.font_size", c.Label.FontSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}
	if c.TowerSpacing < 0 {
		return fmt.Errorf("%w: tower_spacing must not be negative, got %v", ErrInvalid, c.TowerSpacing)
	}
	if c.KeyRepeat.Delay < 0 || c.KeyRepeat.Interval < 0 {
		return fmt.Errorf("%w: key_repeat values must not be negative", ErrInvalid)
	}
	if _, err := c.Palette.Resolve(); err != nil {
		return err
	}
	return nil
}
