package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const (
	DefaultScene        = "default"
	DefaultOutputDir    = "output"
	DefaultOutputFormat = "png"
	DefaultScenesDir    = "scenes"
	DefaultViewportSize = 2.0
	DefaultSeed         = 42
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	Scene        string `json:"scene"`         // built-in scene name or .json path
	OutputDir    string `json:"output_dir"`    // renders go to <output_dir>/<scene>/
	OutputFormat string `json:"output_format"` // png, jpeg, bmp, tga or webp
	ScenesDir    string `json:"scenes_dir"`    // searched for *.json scenes when listing

	// Render settings
	ImageSize    int      `json:"image_size"`
	ViewportSize float64  `json:"viewport_size"` // world width covered by the image
	MaxDepth     *int     `json:"max_depth"`
	Workers      int      `json:"workers"`
	TileSize     int      `json:"tile_size"`
	Seed         *int64   `json:"seed"`
	Supersample  int      `json:"supersample"`
	ToneMin      *float64 `json:"tone_min"`
	ToneMax      *float64 `json:"tone_max"`
	AutoToneMin  bool     `json:"auto_tone_min"` // take the lower bound from the image instead of 0
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean the flag was not given.
type Flags struct {
	Scene       string
	OutputDir   string
	Format      string
	Size        int
	MaxDepth    *int
	Workers     int
	Seed        *int64
	Supersample int
}

// Default returns a fully resolved config
func Default() Config {
	var c Config
	c.Resolve(Flags{})
	return c
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flags and fills empty fields with defaults.
// CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.OutputFormat = flags.Format
	}
	if flags.Size > 0 {
		c.ImageSize = flags.Size
	}
	if flags.MaxDepth != nil {
		depth := *flags.MaxDepth
		c.MaxDepth = &depth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != nil {
		seed := *flags.Seed
		c.Seed = &seed
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}

	if c.Scene == "" {
		c.Scene = DefaultScene
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.ScenesDir == "" {
		c.ScenesDir = DefaultScenesDir
	}
	if c.ImageSize <= 0 {
		c.ImageSize = renderer.DefaultImageSize
	}
	if c.ViewportSize <= 0 {
		c.ViewportSize = DefaultViewportSize
	}
	if c.MaxDepth == nil {
		depth := renderer.DefaultMaxDepth
		c.MaxDepth = &depth
	}
	if c.TileSize <= 0 {
		c.TileSize = renderer.DefaultTileSize
	}
	if c.Seed == nil {
		seed := int64(DefaultSeed)
		c.Seed = &seed
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.ToneMin == nil && !c.AutoToneMin {
		toneMin := 0.0
		c.ToneMin = &toneMin
	}
}

// Validate reports every invalid setting of a resolved config
func (c Config) Validate() error {
	var errs []error
	switch c.OutputFormat {
	case "png", "jpeg", "jpg", "bmp", "tga", "webp":
	default:
		errs = append(errs, fmt.Errorf("unsupported output format %q", c.OutputFormat))
	}
	if c.ImageSize <= 0 {
		errs = append(errs, fmt.Errorf("image_size must be positive, got %d", c.ImageSize))
	}
	if c.ViewportSize <= 0 {
		errs = append(errs, fmt.Errorf("viewport_size must be positive, got %g", c.ViewportSize))
	}
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative, got %d", *c.MaxDepth))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.ToneMin != nil && c.ToneMax != nil && *c.ToneMax <= *c.ToneMin {
		errs = append(errs, fmt.Errorf("tone_max (%g) must be greater than tone_min (%g)", *c.ToneMax, *c.ToneMin))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RendererConfig converts a resolved config into render settings
func (c Config) RendererConfig() renderer.Config {
	cfg := renderer.DefaultConfig()
	cfg.ImageSize = c.ImageSize
	cfg.UnitPerPixel = c.ViewportSize / float64(c.ImageSize)
	if c.MaxDepth != nil {
		cfg.MaxDepth = *c.MaxDepth
	}
	cfg.Workers = c.Workers
	cfg.TileSize = c.TileSize
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	cfg.Supersample = c.Supersample
	cfg.ToneMin = c.ToneMin
	cfg.ToneMax = c.ToneMax
	return cfg
}

// SceneOutputDir is the directory renders of sceneName are written to
func (c Config) SceneOutputDir(sceneName string) string {
	return filepath.Join(c.OutputDir, sceneName)
}
