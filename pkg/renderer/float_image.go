package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// FloatImage is a row-major buffer of linear radiance, origin top-left
type FloatImage struct {
	Width, Height int
	Pix           []core.Vec3
}

// NewFloatImage creates a black width×height buffer
func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{
		Width:  width,
		Height: height,
		Pix:    make([]core.Vec3, width*height),
	}
}

// At returns the radiance at (x, y)
func (f *FloatImage) At(x, y int) core.Vec3 {
	return f.Pix[y*f.Width+x]
}

// Set stores the radiance at (x, y)
func (f *FloatImage) Set(x, y int, c core.Vec3) {
	f.Pix[y*f.Width+x] = c
}

// ChannelRange returns the smallest and largest channel value in the buffer.
// ok is false for an empty buffer.
func (f *FloatImage) ChannelRange() (lo, hi float64, ok bool) {
	if len(f.Pix) == 0 {
		return 0, 0, false
	}
	lo, hi = f.Pix[0].X, f.Pix[0].X
	for _, c := range f.Pix {
		lo = min(lo, c.MinComponent())
		hi = max(hi, c.MaxComponent())
	}
	return lo, hi, true
}
