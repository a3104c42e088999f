package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Tile represents a square region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a tile whose generator is seeded with seed+id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}

// RenderTile shades every pixel inside the tile into buf.
// Tiles never overlap, so concurrent calls on distinct tiles are safe.
func (rt *Raytracer) RenderTile(tile *Tile, buf *FloatImage, unitPerPixel float64) RenderStats {
	rt.ResetStats()
	sampler := core.NewRandomSampler(tile.Random)
	size := buf.Width

	for py := tile.Bounds.Min.Y; py < tile.Bounds.Max.Y; py++ {
		for px := tile.Bounds.Min.X; px < tile.Bounds.Max.X; px++ {
			buf.Set(px, py, rt.ShadePixel(px, py, size, unitPerPixel, sampler))
		}
	}

	pixels := tile.Bounds.Dx() * tile.Bounds.Dy()
	return RenderStats{
		TotalPixels: pixels,
		PrimaryRays: pixels,
		ShadeCalls:  rt.shadeCalls,
		MaxDepth:    rt.deepest,
		Tiles:       1,
	}
}
