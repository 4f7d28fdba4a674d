// Package config holds the engine settings shared by scenes, cameras and the
// frame host. Settings are plain YAML documents and can be persisted per user
// through gdata.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings configures the viewport, cameras and debug behavior of the runtime.
// Viewport sizes are in world units, not pixels.
type Settings struct {
	ViewportWidth  float32 `yaml:"viewportWidth"`
	ViewportHeight float32 `yaml:"viewportHeight"`
	PixelsPerUnit  float32 `yaml:"pixelsPerUnit"`

	CameraFieldOfView float32 `yaml:"cameraFieldOfView"`
	CameraNear        float32 `yaml:"cameraNear"`
	CameraFar         float32 `yaml:"cameraFar"`

	BackgroundColor string `yaml:"backgroundColor"`
	DebugRender     bool   `yaml:"debugRender"`
	LogLevel        string `yaml:"logLevel"`

	WindowTitle  string `yaml:"windowTitle"`
	WindowWidth  int    `yaml:"windowWidth"`
	WindowHeight int    `yaml:"windowHeight"`
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		ViewportWidth:     20,
		ViewportHeight:    12,
		PixelsPerUnit:     32,
		CameraFieldOfView: 67,
		CameraNear:        1,
		CameraFar:         300,
		BackgroundColor:   "#000000",
		DebugRender:       false,
		LogLevel:          "info",
		WindowTitle:       "scenekit",
		WindowWidth:       640,
		WindowHeight:      384,
	}
}

// Parse decodes YAML settings. Fields missing from data keep their defaults.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	return s, nil
}

// Load reads and parses a YAML settings file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("failed to load settings file %s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// Validate reports every invalid field joined into one error.
func (s Settings) Validate() error {
	var errs []error
	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", s.ViewportWidth, s.ViewportHeight))
	}
	if s.PixelsPerUnit <= 0 {
		errs = append(errs, fmt.Errorf("pixelsPerUnit must be positive, got %v", s.PixelsPerUnit))
	}
	if s.CameraNear <= 0 || s.CameraFar <= s.CameraNear {
		errs = append(errs, fmt.Errorf("camera clip range invalid: near=%v far=%v", s.CameraNear, s.CameraFar))
	}
	if _, err := ParseColor(s.BackgroundColor); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Background returns the parsed background color, or black when the setting
// is malformed.
func (s Settings) Background() color.RGBA {
	c, err := ParseColor(s.BackgroundColor)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

// Level returns the configured log level, defaulting to info.
func (s Settings) Level() slog.Level {
	l, err := ParseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ParseLevel maps debug, info, warn and error to their slog levels.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}
