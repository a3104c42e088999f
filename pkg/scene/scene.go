package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Object pairs a shape with the material used to shade it
type Object struct {
	Shape    geometry.Shape
	Material material.Material
}

// NewObject creates a scene object. A nil material falls back to white diffuse.
func NewObject(shape geometry.Shape, mat material.Material) Object {
	if mat == nil {
		mat = material.NewDiffuse(core.NewVec3(1, 1, 1))
	}
	return Object{Shape: shape, Material: mat}
}

// Scene holds everything a render reads: ordered objects, ordered lights and
// the skylight returned by rays that escape. It must not be modified while a
// render is running.
//
// Hit queries scan every object linearly.
type Scene struct {
	objects  []Object
	lights   []lights.Light
	shading  []core.Light // same lights, as seen by materials
	skylight core.Vec3
}

// NewScene creates a scene. Nil slices become empty lists; the zero skylight is black.
func NewScene(objects []Object, sceneLights []lights.Light, skylight core.Vec3) *Scene {
	s := &Scene{
		objects:  make([]Object, 0, len(objects)),
		lights:   make([]lights.Light, 0, len(sceneLights)),
		shading:  make([]core.Light, 0, len(sceneLights)),
		skylight: skylight,
	}
	s.AppendObjects(objects...)
	s.AppendLights(sceneLights...)
	return s
}

// AddObject appends a single object built from shape and material
func (s *Scene) AddObject(shape geometry.Shape, mat material.Material) {
	s.objects = append(s.objects, NewObject(shape, mat))
}

// AddLight appends a single light
func (s *Scene) AddLight(light lights.Light) {
	s.lights = append(s.lights, light)
	s.shading = append(s.shading, light)
}

// AppendObjects appends objects in order
func (s *Scene) AppendObjects(objects ...Object) {
	for _, o := range objects {
		s.AddObject(o.Shape, o.Material)
	}
}

// AppendLights appends lights in order
func (s *Scene) AppendLights(sceneLights ...lights.Light) {
	for _, l := range sceneLights {
		s.AddLight(l)
	}
}

// SetSkylight replaces the ambient color
func (s *Scene) SetSkylight(skylight core.Vec3) {
	s.skylight = skylight
}

// Objects returns the scene objects in insertion order
func (s *Scene) Objects() []Object {
	return s.objects
}

// SceneLights returns the lights with their concrete variant information
func (s *Scene) SceneLights() []lights.Light {
	return s.lights
}

// Lights implements core.Scene
func (s *Scene) Lights() []core.Light {
	return s.shading
}

// Skylight implements core.Scene
func (s *Scene) Skylight() core.Vec3 {
	return s.skylight
}

// NearestHit returns the closest hit along the ray and the object that was hit.
// Hits at distance <= core.HitEpsilon are ignored; on ties the object added
// first wins.
func (s *Scene) NearestHit(origin, direction core.Vec3) (core.HitInfo, *Object, bool) {
	var closest core.HitInfo
	var hitObject *Object
	for i := range s.objects {
		hit, ok := s.objects[i].Shape.Intersect(origin, direction)
		if !ok || hit.Distance <= core.HitEpsilon {
			continue
		}
		if hitObject == nil || hit.Distance < closest.Distance {
			closest = hit
			hitObject = &s.objects[i]
		}
	}
	return closest, hitObject, hitObject != nil
}

// Raycast implements core.Scene
func (s *Scene) Raycast(origin, direction core.Vec3) (core.HitInfo, bool) {
	hit, _, ok := s.NearestHit(origin, direction)
	return hit, ok
}
