package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	DefaultImageSize = 250
	DefaultMaxDepth  = 5
	DefaultTileSize  = 32
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains the construction-time render settings
type Config struct {
	ImageSize    int      // Output is ImageSize×ImageSize pixels
	UnitPerPixel float64  // World units between adjacent pixels on the image plane
	MaxDepth     int      // Rays deeper than this stop reflecting
	Workers      int      // Parallel workers (0 = use CPU count)
	TileSize     int      // Side of a square tile in pixels
	Seed         int64    // Base seed; tile i uses Seed+i
	Supersample  int      // Render at Supersample× resolution and scale down (<= 1 disables)
	ToneMin      *float64 // Lower tone-map bound; nil uses the buffer minimum
	ToneMax      *float64 // Upper tone-map bound; nil uses the buffer maximum
}

// DefaultConfig returns a 250×250 render over a 2×2 viewport, with black as
// the lower tone-map bound
func DefaultConfig() Config {
	toneMin := 0.0
	return Config{
		ImageSize:    DefaultImageSize,
		UnitPerPixel: 2.0 / DefaultImageSize,
		MaxDepth:     DefaultMaxDepth,
		Workers:      0,
		TileSize:     DefaultTileSize,
		Seed:         42,
		Supersample:  1,
		ToneMin:      &toneMin,
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.ImageSize <= 0:
		return fmt.Errorf("image size must be positive, got %d", c.ImageSize)
	case c.UnitPerPixel <= 0:
		return fmt.Errorf("unit per pixel must be positive, got %g", c.UnitPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Supersample < 0:
		return fmt.Errorf("supersample must not be negative, got %d", c.Supersample)
	}
	return nil
}

// Render traces the scene through the camera and returns the tone-mapped image.
// Tiles are shaded in parallel; the result is identical for any worker count.
// Once ctx is done no further tiles are started and ctx.Err() is returned.
func Render(ctx context.Context, s *scene.Scene, camera *geometry.Camera, cfg Config, logger core.Logger) (*image.RGBA, RenderStats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	start := time.Now()
	factor := max(1, cfg.Supersample)
	size := cfg.ImageSize * factor
	unitPerPixel := cfg.UnitPerPixel / float64(factor)

	buf := NewFloatImage(size, size)
	tiles := NewTileGrid(size, size, cfg.TileSize, cfg.Seed)

	pool := NewWorkerPool(ctx, s, camera, cfg.MaxDepth, cfg.Workers, len(tiles))
	pool.Start()

	logger.Printf("Rendering %dx%d (%d tiles, %d workers, max depth %d)...\n",
		size, size, len(tiles), pool.NumWorkers(), cfg.MaxDepth)

	for i, tile := range tiles {
		pool.Submit(TileTask{
			Tile:         tile,
			TaskID:       i,
			Buffer:       buf,
			UnitPerPixel: unitPerPixel,
		})
	}
	pool.Stop()

	var stats RenderStats
	done, skipped := 0, 0
	progressStep := max(1, len(tiles)/10)
	for result := range pool.Results() {
		if result.Skipped {
			skipped++
			continue
		}
		stats.Add(result.Stats)
		done++
		if done%progressStep == 0 {
			logger.Printf("  %d/%d tiles\n", done, len(tiles))
		}
	}
	stats.Duration = time.Since(start)

	if skipped > 0 || done < len(tiles) {
		logger.Printf("Rendering cancelled after %d/%d tiles\n", done, len(tiles))
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, errors.New("render stopped before all tiles finished")
	}

	img, err := ToneMap(buf, cfg.ToneMin, cfg.ToneMax)
	if err != nil {
		return nil, stats, err
	}
	if factor > 1 {
		img = Downsample(img, cfg.ImageSize, cfg.ImageSize)
	}

	logger.Printf("Render completed in %v: %d primary rays, %.2f rays/pixel, depth %d, luminance %.3f\n",
		stats.Duration, stats.PrimaryRays, stats.RaysPerPixel(), stats.MaxDepth, CalculateAverageLuminance(img))

	return img, stats, nil
}
