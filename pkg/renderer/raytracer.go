package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer shades rays against a scene. A Raytracer is not safe for
// concurrent use; each worker owns one.
type Raytracer struct {
	scene    *scene.Scene
	camera   *geometry.Camera
	maxDepth int

	shadeCalls int // counted since the last ResetStats
	deepest    int
}

// NewRaytracer creates a raytracer for the scene and camera with the given bounce limit
func NewRaytracer(s *scene.Scene, camera *geometry.Camera, maxDepth int) *Raytracer {
	return &Raytracer{
		scene:    s,
		camera:   camera,
		maxDepth: maxDepth,
	}
}

// Shade returns the light travelling back along the ray from origin in direction.
// info is the state of the chain before this ray; Shade casts the next ray in it.
// Rays that escape return the scene skylight.
func (rt *Raytracer) Shade(origin, direction core.Vec3, info core.RayCastInfo, sampler core.Sampler) core.Vec3 {
	info = info.Next()
	rt.shadeCalls++
	rt.deepest = max(rt.deepest, info.Depth())

	hit, obj, ok := rt.scene.NearestHit(origin, direction)
	if !ok {
		return rt.scene.Skylight()
	}

	shading := obj.Material.ComputeLight(material.ShadingContext{
		Scene:    rt.scene,
		Info:     info,
		MaxDepth: rt.maxDepth,
		Sampler:  sampler,
	}, hit)

	color := shading.Direct
	for _, bounce := range shading.Bounces {
		incoming := rt.Shade(hit.Point, bounce.Direction, info, sampler)
		color = color.Add(incoming.MultiplyVec(bounce.Weight))
	}
	return color
}

// ShadePixel traces the primary ray through pixel (px, py) of a size×size image
func (rt *Raytracer) ShadePixel(px, py, size int, unitPerPixel float64, sampler core.Sampler) core.Vec3 {
	half := size / 2
	direction := rt.camera.RayAtPixel(px, py, unitPerPixel, half, half)
	return rt.Shade(rt.camera.Position, direction, core.NewRayCastInfo(), sampler)
}

// ResetStats clears the per-tile counters
func (rt *Raytracer) ResetStats() {
	rt.shadeCalls = 0
	rt.deepest = 0
}
