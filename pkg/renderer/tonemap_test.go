package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func ptr(v float64) *float64 { return &v }

func TestToneMap_LinearMapping(t *testing.T) {
	buf := NewFloatImage(3, 1)
	buf.Set(0, 0, core.NewVec3(0, 0, 0))
	buf.Set(1, 0, core.NewVec3(1, 1, 1))
	buf.Set(2, 0, core.NewVec3(2, 2, 2))

	img, err := ToneMap(buf, ptr(0), ptr(2))
	if err != nil {
		t.Fatalf("ToneMap failed: %v", err)
	}

	if got := img.RGBAAt(0, 0).R; got != 0 {
		t.Errorf("Min should map to 0, got %d", got)
	}
	if got := img.RGBAAt(1, 0).R; got != 127 && got != 128 {
		t.Errorf("Midpoint should map to 127 or 128, got %d", got)
	}
	if got := img.RGBAAt(2, 0).R; got != 255 {
		t.Errorf("Max should map to 255, got %d", got)
	}
	if got := img.RGBAAt(1, 0).A; got != 255 {
		t.Errorf("Alpha should be opaque, got %d", got)
	}
}

func TestToneMap_Bounds(t *testing.T) {
	buf := NewFloatImage(2, 2)
	buf.Set(0, 0, core.NewVec3(0.5, 1, 1.5))
	buf.Set(1, 0, core.NewVec3(3, 3, 3))
	buf.Set(0, 1, core.NewVec3(-1, 0, 0))
	buf.Set(1, 1, core.NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		min, max *float64
		x, y     int
		expected [3]uint8
	}{
		{"both from buffer", nil, nil, 1, 0, [3]uint8{255, 255, 255}},
		{"both from buffer min", nil, nil, 0, 1, [3]uint8{0, 64, 64}},
		{"explicit min", ptr(0), nil, 0, 0, [3]uint8{43, 85, 128}},
		{"clamped above", ptr(0), ptr(1), 1, 0, [3]uint8{255, 255, 255}},
		{"clamped below", ptr(0), ptr(1), 0, 1, [3]uint8{0, 0, 0}},
		{"explicit max", nil, ptr(1), 1, 1, [3]uint8{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ToneMap(buf, tt.min, tt.max)
			if err != nil {
				t.Fatalf("ToneMap failed: %v", err)
			}
			c := img.RGBAAt(tt.x, tt.y)
			got := [3]uint8{c.R, c.G, c.B}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestToneMap_Errors(t *testing.T) {
	flat := NewFloatImage(2, 2)
	for i := range flat.Pix {
		flat.Pix[i] = core.NewVec3(0.5, 0.5, 0.5)
	}

	tests := []struct {
		name     string
		buf      *FloatImage
		min, max *float64
		expected error
	}{
		{"empty", NewFloatImage(0, 0), nil, nil, ErrEmptyImage},
		{"flat without bounds", flat, nil, nil, ErrDegenerateRange},
		{"max below min", flat, ptr(1), ptr(0), ErrDegenerateRange},
		{"min equals buffer max", flat, ptr(0.5), nil, ErrDegenerateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToneMap(tt.buf, tt.min, tt.max)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}

	if _, err := ToneMap(flat, ptr(0), nil); err != nil {
		t.Errorf("Flat buffer with explicit min should map, got %v", err)
	}
}

func TestFloatImage_ChannelRange(t *testing.T) {
	buf := NewFloatImage(2, 1)
	buf.Set(0, 0, core.NewVec3(0.2, -0.5, 4))
	buf.Set(1, 0, core.NewVec3(1, 1, 1))

	lo, hi, ok := buf.ChannelRange()
	if !ok || lo != -0.5 || hi != 4 {
		t.Errorf("Expected range [-0.5, 4], got [%f, %f] ok=%v", lo, hi, ok)
	}
	if _, _, ok := NewFloatImage(0, 0).ChannelRange(); ok {
		t.Error("Empty buffer should report no range")
	}
}
