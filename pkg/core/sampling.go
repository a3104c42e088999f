package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Every stochastic call receives the sampler explicitly so that each render
// worker can own an independent generator.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleInUnitBall returns a point distributed uniformly inside the unit ball
func SampleInUnitBall(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		// Accept if inside unit ball
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// SampleSquare maps a 2D sample in [0,1)² onto the square [-1,1]²
func SampleSquare(sample Vec2) Vec2 {
	return NewVec2(2*sample.X-1, 2*sample.Y-1)
}

// BallLattice returns n³ deterministic points covering the unit ball.
// Radii follow the cube root of stratified values so that shells carry equal
// volume, and directions cover the sphere with equal-area strata.
func BallLattice(n int) []Vec3 {
	if n <= 0 {
		return nil
	}
	points := make([]Vec3, 0, n*n*n)
	fn := float64(n)
	for i := 0; i < n; i++ {
		r := math.Cbrt((float64(i) + 0.5) / fn)
		for j := 0; j < n; j++ {
			cosTheta := 1 - 2*(float64(j)+0.5)/fn
			sinTheta := math.Sqrt(max(0, 1-cosTheta*cosTheta))
			for k := 0; k < n; k++ {
				phi := 2 * math.Pi * (float64(k) + 0.5) / fn
				points = append(points, NewVec3(
					r*sinTheta*math.Cos(phi),
					r*sinTheta*math.Sin(phi),
					r*cosTheta,
				))
			}
		}
	}
	return points
}
