package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ReflectionSampling selects how a rough mirror spreads its reflection
type ReflectionSampling string

const (
	// ReflectionSamplingMonteCarlo perturbs the mirror direction with N random unit-ball samples
	ReflectionSamplingMonteCarlo ReflectionSampling = "monte_carlo"
	// ReflectionSamplingStratified perturbs it with a fixed n×n×n lattice over the unit ball,
	// n being the largest axis count with n³ <= N
	ReflectionSamplingStratified ReflectionSampling = "stratified"
)

const DefaultReflectiveSamples = 16

// Reflective is a rough mirror. Each reflection is the ideal mirror direction
// plus a ball perturbation of radius Roughness, renormalized.
type Reflective struct {
	Roughness float64
	Samples   int // N, the most reflection rays cast per hit
	Sampling  ReflectionSampling

	lattice []core.Vec3
}

// NewReflective creates a Monte Carlo rough mirror
func NewReflective(roughness float64, samples int) *Reflective {
	return NewReflectiveWithSampling(roughness, samples, ReflectionSamplingMonteCarlo)
}

// NewReflectiveWithSampling creates a rough mirror with an explicit sampling strategy
func NewReflectiveWithSampling(roughness float64, samples int, sampling ReflectionSampling) *Reflective {
	if samples <= 0 {
		samples = DefaultReflectiveSamples
	}
	if roughness < 0 {
		roughness = 0
	}
	if sampling != ReflectionSamplingStratified {
		sampling = ReflectionSamplingMonteCarlo
	}

	r := &Reflective{Roughness: roughness, Samples: samples, Sampling: sampling}
	if sampling == ReflectionSamplingStratified {
		r.lattice = core.BallLattice(latticeAxis(samples))
	}
	return r
}

// latticeAxis returns the largest n >= 1 with n³ <= samples
func latticeAxis(samples int) int {
	n := max(1, int(math.Cbrt(float64(samples))))
	for (n+1)*(n+1)*(n+1) <= samples {
		n++
	}
	for n > 1 && n*n*n > samples {
		n--
	}
	return n
}

// BounceCount returns the number of reflection rays cast per hit
func (r *Reflective) BounceCount() int {
	if r.Sampling == ReflectionSamplingStratified {
		return len(r.lattice)
	}
	return r.Samples
}

func (r *Reflective) Type() MaterialType {
	return MaterialTypeReflective
}

// ComputeLight returns one bounce per perturbation, each weighted by 1/count
func (r *Reflective) ComputeLight(ctx ShadingContext, hit core.HitInfo) Shading {
	if ctx.Exhausted() {
		return skylightOnly(ctx)
	}

	mirror := core.Reflect(hit.Incoming, hit.Normal)

	var noise []core.Vec3
	if r.Sampling == ReflectionSamplingStratified {
		noise = r.lattice
	} else {
		noise = make([]core.Vec3, r.Samples)
		for i := range noise {
			noise[i] = core.SampleInUnitBall(ctx.Sampler)
		}
	}

	weight := 1.0 / float64(len(noise))
	bounces := make([]Bounce, 0, len(noise))
	for _, n := range noise {
		dir := mirror.Add(n.Multiply(r.Roughness)).Normalize()
		if dir.LengthSquared() == 0 {
			dir = mirror
		}
		bounces = append(bounces, Bounce{
			Direction: dir,
			Weight:    core.NewVec3(weight, weight, weight),
		})
	}
	return Shading{Bounces: bounces}
}
