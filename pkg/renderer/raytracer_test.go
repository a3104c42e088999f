package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SpyMaterial delegates to another material and records the deepest ray it shades
type SpyMaterial struct {
	inner    material.Material
	calls    int
	maxDepth int
}

func (s *SpyMaterial) Type() material.MaterialType { return s.inner.Type() }

func (s *SpyMaterial) ComputeLight(ctx material.ShadingContext, hit core.HitInfo) material.Shading {
	s.calls++
	s.maxDepth = max(s.maxDepth, ctx.Info.Depth())
	return s.inner.ComputeLight(ctx, hit)
}

// SilentLogger discards all output
type SilentLogger struct{}

func (SilentLogger) Printf(format string, args ...interface{}) {}

func identityCamera() *geometry.Camera {
	return geometry.NewCamera(core.Vec3{}, core.IdentityRotation())
}

func TestShade_MissReturnsSkylight(t *testing.T) {
	skylight := core.NewVec3(0.1, 0.2, 0.3)
	s := scene.NewScene(nil, nil, skylight)
	rt := NewRaytracer(s, identityCamera(), 3)

	color := rt.Shade(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewRayCastInfo(), core.NewSeededSampler(1))
	if !color.Equals(skylight) {
		t.Errorf("Expected skylight %v, got %v", skylight, color)
	}
	if rt.shadeCalls != 1 {
		t.Errorf("Expected 1 shade call, got %d", rt.shadeCalls)
	}
}

func TestShade_FacingMirrorsTerminate(t *testing.T) {
	skylight := core.NewVec3(0.25, 0.5, 0.75)
	spy := &SpyMaterial{inner: material.NewPerfectReflective(core.NewVec3(1, 1, 1))}

	s := scene.NewScene(nil, nil, skylight)
	s.AddObject(geometry.NewInfinitePlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0)), spy)
	s.AddObject(geometry.NewInfinitePlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0)), spy)

	const limit = 2
	rt := NewRaytracer(s, identityCamera(), limit)
	color := rt.Shade(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewRayCastInfo(), core.NewSeededSampler(1))

	if !color.Equals(skylight) {
		t.Errorf("Expected skylight %v after the chain ends, got %v", skylight, color)
	}
	if spy.maxDepth != limit+1 {
		t.Errorf("Expected deepest shaded ray at depth %d, got %d", limit+1, spy.maxDepth)
	}
	if spy.calls != limit+1 {
		t.Errorf("Expected %d material calls, got %d", limit+1, spy.calls)
	}
	if rt.deepest != limit+1 {
		t.Errorf("Expected raytracer depth %d, got %d", limit+1, rt.deepest)
	}
}

func TestShade_TintedMirrorWeightsBounce(t *testing.T) {
	// A mirror floor reflecting a ray into an empty sky
	skylight := core.NewVec3(1, 1, 1)
	tint := core.NewVec3(0.5, 0.25, 1)
	s := scene.NewScene(nil, nil, skylight)
	s.AddObject(geometry.NewInfinitePlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)), material.NewPerfectReflective(tint))

	rt := NewRaytracer(s, identityCamera(), 5)
	color := rt.Shade(core.Vec3{}, core.NewVec3(1, 0, -1).Normalize(), core.NewRayCastInfo(), core.NewSeededSampler(1))

	if !color.Equals(tint) {
		t.Errorf("Expected tint %v, got %v", tint, color)
	}
}

func TestShade_DiffuseUnderPointLight(t *testing.T) {
	s := scene.NewScene(nil, nil, core.Vec3{})
	s.AddObject(geometry.NewSphere(core.NewVec3(3, 0, 0), 1), material.NewDiffuse(core.NewVec3(1, 0.5, 0)))
	s.AddLight(lights.NewPointLight(core.Vec3{}, core.NewVec3(1, 1, 1)))

	rt := NewRaytracer(s, identityCamera(), 3)
	color := rt.Shade(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewRayCastInfo(), core.NewSeededSampler(1))

	// Hit at distance 2 facing the light: 1/2² · albedo
	expected := core.NewVec3(0.25, 0.125, 0)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestShadePixel_CenterRay(t *testing.T) {
	s := scene.NewScene(nil, nil, core.Vec3{})
	s.AddObject(geometry.NewSphere(core.NewVec3(3, 0, 0), 1), material.NewDiffuse(core.NewVec3(1, 1, 1)))
	s.AddLight(lights.NewPointLight(core.Vec3{}, core.NewVec3(1, 1, 1)))
	rt := NewRaytracer(s, identityCamera(), 3)

	center := rt.ShadePixel(8, 8, 16, 0.125, core.NewSeededSampler(1))
	if math.Abs(center.X-0.25) > 1e-9 {
		t.Errorf("Expected center pixel 0.25, got %v", center)
	}
	corner := rt.ShadePixel(0, 0, 16, 0.125, core.NewSeededSampler(1))
	if !corner.Equals(core.Vec3{}) {
		t.Errorf("Expected corner pixel to miss, got %v", corner)
	}
}
