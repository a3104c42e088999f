package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

var (
	// ErrEmptyImage is returned when tone mapping a buffer with no pixels
	ErrEmptyImage = errors.New("tone map: empty image")
	// ErrDegenerateRange is returned when the mapping range has max <= min
	ErrDegenerateRange = errors.New("tone map: degenerate range")
)

// ToneMap linearly maps buf onto 8-bit channels:
// out = round(255·(v − min)/(max − min)), clamped to [0, 255].
// A nil bound is taken from the buffer's channel range.
func ToneMap(buf *FloatImage, minValue, maxValue *float64) (*image.RGBA, error) {
	lo, hi, ok := buf.ChannelRange()
	if !ok {
		return nil, ErrEmptyImage
	}
	if minValue != nil {
		lo = *minValue
	}
	if maxValue != nil {
		hi = *maxValue
	}
	if !(hi > lo) {
		return nil, fmt.Errorf("%w: min %g, max %g", ErrDegenerateRange, lo, hi)
	}

	scale := 255 / (hi - lo)
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: mapChannel(c.X, lo, scale),
				G: mapChannel(c.Y, lo, scale),
				B: mapChannel(c.Z, lo, scale),
				A: 255,
			})
		}
	}
	return img, nil
}

func mapChannel(v, lo, scale float64) uint8 {
	out := math.Round((v - lo) * scale)
	if math.IsNaN(out) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, out)))
}
