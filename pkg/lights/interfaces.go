package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeArea        LightType = "area"
)

// Light is the closed set of scene lights: PointLight, DirectionalLight and AreaLight.
//
// When a surface faces away from a light, or a shadow ray is blocked, Illuminate
// returns the scene's skylight color rather than black. Unlit surfaces therefore
// read the ambient term. This is an artistic choice; a physically based light
// would return zero.
type Light interface {
	core.Light
	Type() LightType
}

// occlusionEpsilon is how much shorter than the light distance a shadow hit
// must be before it counts as a blocker
const occlusionEpsilon = 1e-4
