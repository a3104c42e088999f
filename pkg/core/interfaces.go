package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitInfo describes where a ray struck a surface
type HitInfo struct {
	Incoming Vec3    // Unit direction of the incoming ray
	Distance float64 // Distance along the ray, always positive
	Point    Vec3    // Intersection point
	Normal   Vec3    // Unit outward surface normal
}

// Light computes the radiance a light delivers to a surface point,
// already attenuated by visibility and orientation but not by the receiving
// material's albedo.
type Light interface {
	Illuminate(point, normal Vec3, scene Scene, sampler Sampler) Vec3
}

// Scene is the read-only view of a scene used by lights and materials.
// It is declared here to avoid import cycles between the scene package and
// the lights and materials it holds.
type Scene interface {
	// Raycast returns the nearest hit along the ray, ignoring hits at distance <= HitEpsilon
	Raycast(origin, direction Vec3) (HitInfo, bool)
	// Lights returns the scene lights in insertion order
	Lights() []Light
	// Skylight is the radiance of any ray that escapes the scene
	Skylight() Vec3
}

// HitEpsilon is the minimum accepted hit distance; it keeps secondary rays
// from re-hitting the surface they start on.
const HitEpsilon = 1e-6

// RayCastInfo counts the bounces of one ray chain. It is a value type and is
// copied into every recursive call.
type RayCastInfo struct {
	depth int
}

// NewRayCastInfo returns the state of a chain before its primary ray is cast
func NewRayCastInfo() RayCastInfo {
	return RayCastInfo{}
}

// Next returns the state for the next ray in the chain
func (r RayCastInfo) Next() RayCastInfo {
	return RayCastInfo{depth: r.depth + 1}
}

// Depth is the number of rays cast so far in this chain
func (r RayCastInfo) Depth() int {
	return r.depth
}
