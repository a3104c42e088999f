package core

import (
	"math"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D out of range: %f", v)
		}
		s := sampler.Get2D()
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("Get2D out of range: %v", s)
		}
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(3)
	b := NewSeededSampler(3)
	for i := 0; i < 10; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Samplers with equal seeds diverged")
		}
	}
}

func TestSampleInUnitBall(t *testing.T) {
	sampler := NewSeededSampler(1)
	const n = 20000
	var mean Vec3
	for i := 0; i < n; i++ {
		p := SampleInUnitBall(sampler)
		if p.LengthSquared() > 1 {
			t.Fatalf("Sample %v outside unit ball", p)
		}
		mean = mean.Add(p)
	}
	mean = mean.Multiply(1.0 / n)
	if mean.Length() > 0.02 {
		t.Errorf("Expected mean near origin, got %v", mean)
	}
}

func TestSampleSquare(t *testing.T) {
	if got := SampleSquare(NewVec2(0, 1)); got != NewVec2(-1, 1) {
		t.Errorf("Expected (-1, 1), got %v", got)
	}
	if got := SampleSquare(NewVec2(0.5, 0.5)); got != NewVec2(0, 0) {
		t.Errorf("Expected (0, 0), got %v", got)
	}
}

func TestBallLattice(t *testing.T) {
	tests := []struct {
		n     int
		count int
	}{
		{0, 0},
		{1, 1},
		{3, 27},
		{5, 125},
	}

	for _, tt := range tests {
		points := BallLattice(tt.n)
		if len(points) != tt.count {
			t.Errorf("BallLattice(%d): expected %d points, got %d", tt.n, tt.count, len(points))
		}
		var mean Vec3
		for _, p := range points {
			if p.Length() > 1+1e-12 {
				t.Errorf("BallLattice(%d): point %v outside unit ball", tt.n, p)
			}
			mean = mean.Add(p)
		}
		if len(points) > 1 && mean.Multiply(1/float64(len(points))).Length() > 1e-9 {
			t.Errorf("BallLattice(%d): expected symmetric lattice, mean %v", tt.n, mean)
		}
	}
}

func TestBallLattice_MeanSquaredRadius(t *testing.T) {
	// E[r²] for a uniform ball is 3/5.
	points := BallLattice(12)
	var sum float64
	for _, p := range points {
		sum += p.LengthSquared()
	}
	got := sum / float64(len(points))
	if math.Abs(got-0.6) > 0.01 {
		t.Errorf("Expected mean squared radius near 0.6, got %f", got)
	}
}
