package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Pixels shaded, including supersampled pixels
	PrimaryRays int           // Camera rays cast
	ShadeCalls  int           // Rays shaded, primary and reflected
	MaxDepth    int           // Deepest ray chain reached
	Tiles       int           // Tiles completed
	Duration    time.Duration // Wall time of the whole render
}

// Add merges the stats of one tile into s
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.ShadeCalls += other.ShadeCalls
	s.MaxDepth = max(s.MaxDepth, other.MaxDepth)
	s.Tiles += other.Tiles
}

// RaysPerPixel is the average number of shaded rays per primary ray
func (s RenderStats) RaysPerPixel() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.ShadeCalls) / float64(s.PrimaryRays)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return total / float64(pixels)
}
