// Package config holds the settings of a render and reads them from TOML or YAML files
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/df07/go-parallel-pathtracer/pkg/scheduler"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for unreadable or out-of-range settings
var ErrInvalidConfig = errors.New("config: invalid configuration")

// RenderConfig is everything needed to render one scene to one file
type RenderConfig struct {
	Scene       string  `toml:"scene" yaml:"scene"`
	Width       int     `toml:"width" yaml:"width"`
	AspectRatio float64 `toml:"aspect_ratio" yaml:"aspect_ratio"`

	SamplesPerPixel int `toml:"samples_per_pixel" yaml:"samples_per_pixel"`
	MaxDepth        int `toml:"max_depth" yaml:"max_depth"`
	BatchSize       int `toml:"batch_size" yaml:"batch_size"` // Pixels per work unit; 0 means one row

	Scheduler string `toml:"scheduler" yaml:"scheduler"`
	Workers   int    `toml:"workers" yaml:"workers"` // 0 means one per CPU
	Seed      int64  `toml:"seed" yaml:"seed"`

	Output  string `toml:"output" yaml:"output"`   // May contain {scene} and {time} placeholders
	Texture string `toml:"texture" yaml:"texture"` // Image for scenes that need one
}

// Default returns sensible default values
func Default() RenderConfig {
	return RenderConfig{
		Scene:           "default",
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Scheduler:       scheduler.KindPool,
		Seed:            42,
		Output:          "output/{scene}/render_{time}.png",
	}
}

// Height derives the image height from the width and aspect ratio, at least 1
func (c RenderConfig) Height() int {
	if c.AspectRatio <= 0 {
		return max(1, c.Width)
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// OutputPath returns Output with {scene} and {time} filled in
func (c RenderConfig) OutputPath(now time.Time) string {
	return strings.NewReplacer(
		"{scene}", c.Scene,
		"{time}", now.Format("20060102_150405"),
	).Replace(c.Output)
}

// Validate checks every setting is usable
func (c RenderConfig) Validate() error {
	var problems []string
	if c.Scene == "" {
		problems = append(problems, "scene is empty")
	}
	if c.Width < 1 {
		problems = append(problems, fmt.Sprintf("width %d < 1", c.Width))
	}
	if c.AspectRatio <= 0 {
		problems = append(problems, fmt.Sprintf("aspect ratio %g <= 0", c.AspectRatio))
	}
	if c.SamplesPerPixel < 1 {
		problems = append(problems, fmt.Sprintf("samples per pixel %d < 1", c.SamplesPerPixel))
	}
	if c.MaxDepth < 1 {
		problems = append(problems, fmt.Sprintf("max depth %d < 1", c.MaxDepth))
	}
	if c.BatchSize < 0 {
		problems = append(problems, fmt.Sprintf("batch size %d < 0", c.BatchSize))
	}
	if c.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers %d < 0", c.Workers))
	}
	if !slices.Contains(scheduler.Kinds(), c.Scheduler) {
		problems = append(problems, fmt.Sprintf("scheduler %q is not one of %s", c.Scheduler, strings.Join(scheduler.Kinds(), ", ")))
	}
	if c.Output == "" {
		problems = append(problems, "output is empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Merge returns base with every non-zero field of override applied on top
func Merge(base, override RenderConfig) (RenderConfig, error) {
	out := base
	if err := copier.CopyWithOption(&out, &override, copier.Option{IgnoreEmpty: true}); err != nil {
		return base, fmt.Errorf("failed to merge config: %w", err)
	}
	return out, nil
}

// Load reads a .toml, .yaml or .yml file and merges it over Default
func Load(path string) (RenderConfig, error) {
	loaded, err := Read(path)
	if err != nil {
		return RenderConfig{}, err
	}
	return Merge(Default(), loaded)
}

// Read decodes a .toml, .yaml or .yml file without applying defaults.
// Unknown keys are rejected.
func Read(path string) (RenderConfig, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("failed to expand config path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	loaded, err := Decode(data, filepath.Ext(expanded))
	if err != nil {
		return RenderConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return loaded, nil
}

// Decode parses data in the format named by ext (".toml", ".yaml" or ".yml")
func Decode(data []byte, ext string) (RenderConfig, error) {
	var c RenderConfig
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return c, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		return c, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, ext)
	}
	return c, nil
}

// TOML renders the configuration as a TOML document
func (c RenderConfig) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
