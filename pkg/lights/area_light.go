package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// AreaSampling selects how an area light integrates over its patch
type AreaSampling string

const (
	// AreaSamplingMonteCarlo averages K uniform random positions on the patch
	AreaSamplingMonteCarlo AreaSampling = "monte_carlo"
	// AreaSamplingGrid averages a fixed (2M+1)×(2M+1) grid; reproducible across runs
	AreaSamplingGrid AreaSampling = "grid"
)

const (
	DefaultMonteCarloSamples = 121
	DefaultGridHalfWidth     = 4
)

// AreaLight is a square emitter. The canonical patch is the local square
// {(0, u, v) : u, v ∈ [-1, 1]} placed in the world by Transform.
// Each sampled position is evaluated like a point light.
type AreaLight struct {
	Transform core.Similarity
	Intensity core.Vec3
	Sampling  AreaSampling
	Density   int // K for Monte Carlo, M for the grid

	grid []core.Vec3 // world-space grid positions
}

// NewAreaLight creates an area light. Any sampling other than Monte Carlo
// uses the grid. A non-positive density selects the default for the strategy.
func NewAreaLight(transform core.Similarity, intensity core.Vec3, sampling AreaSampling, density int) *AreaLight {
	if sampling != AreaSamplingMonteCarlo {
		sampling = AreaSamplingGrid
	}
	if density <= 0 {
		if sampling == AreaSamplingMonteCarlo {
			density = DefaultMonteCarloSamples
		} else {
			density = DefaultGridHalfWidth
		}
	}

	al := &AreaLight{
		Transform: transform,
		Intensity: intensity,
		Sampling:  sampling,
		Density:   density,
	}
	if sampling == AreaSamplingGrid {
		al.grid = gridPositions(transform, density)
	}
	return al
}

func (al *AreaLight) Type() LightType {
	return LightTypeArea
}

// SampleCount returns the number of shadow rays per Illuminate call
func (al *AreaLight) SampleCount() int {
	if al.Sampling == AreaSamplingGrid {
		return len(al.grid)
	}
	return al.Density
}

// Illuminate implements core.Light
func (al *AreaLight) Illuminate(point, normal core.Vec3, scene core.Scene, sampler core.Sampler) core.Vec3 {
	if al.Sampling == AreaSamplingGrid {
		return al.illuminateGrid(point, normal, scene)
	}
	return al.illuminateMonteCarlo(point, normal, scene, sampler)
}

func (al *AreaLight) illuminateMonteCarlo(point, normal core.Vec3, scene core.Scene, sampler core.Sampler) core.Vec3 {
	var sum core.Vec3
	for i := 0; i < al.Density; i++ {
		uv := core.SampleSquare(sampler.Get2D())
		position := al.Transform.Apply(core.NewVec3(0, uv.X, uv.Y))
		sum = sum.Add(illuminateFrom(position, al.Intensity, point, normal, scene))
	}
	return sum.Multiply(1.0 / float64(al.Density))
}

func (al *AreaLight) illuminateGrid(point, normal core.Vec3, scene core.Scene) core.Vec3 {
	var sum core.Vec3
	for _, position := range al.grid {
		sum = sum.Add(illuminateFrom(position, al.Intensity, point, normal, scene))
	}
	return sum.Multiply(1.0 / float64(len(al.grid)))
}

// gridPositions places (2m+1)² points at u, v = i/m for i in [-m, m]
func gridPositions(transform core.Similarity, m int) []core.Vec3 {
	side := 2*m + 1
	positions := make([]core.Vec3, 0, side*side)
	for i := -m; i <= m; i++ {
		u := float64(i) / float64(m)
		for j := -m; j <= m; j++ {
			v := float64(j) / float64(m)
			positions = append(positions, transform.Apply(core.NewVec3(0, u, v)))
		}
	}
	return positions
}
