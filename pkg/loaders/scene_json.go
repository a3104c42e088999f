package loaders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SceneFile is the persisted form of a scene and its camera.
// Rotations are stored as quaternions [w, x, y, z]; hand-written files may
// give Euler angles [roll, pitch, yaw] in radians instead.
type SceneFile struct {
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Camera      CameraJSON   `json:"camera"`
	Skylight    [3]float64   `json:"skylight"`
	Objects     []ObjectJSON `json:"objects"`
	Lights      []LightJSON  `json:"lights"`
}

// CameraJSON is the persisted camera
type CameraJSON struct {
	Position [3]float64  `json:"position"`
	Rotation *[4]float64 `json:"rotation,omitempty"`
	Euler    *[3]float64 `json:"euler,omitempty"`
}

// ObjectJSON is one persisted object
type ObjectJSON struct {
	Shape    ShapeJSON    `json:"shape"`
	Material MaterialJSON `json:"material"`
}

// ShapeJSON holds the fields of every shape variant, selected by Type
type ShapeJSON struct {
	Type   geometry.ShapeType `json:"type"`
	Center *[3]float64        `json:"center,omitempty"` // sphere, disc
	Point  *[3]float64        `json:"point,omitempty"`  // plane
	Normal *[3]float64        `json:"normal,omitempty"` // plane, disc
	Radius float64            `json:"radius,omitempty"` // sphere, disc
}

// MaterialJSON holds the fields of every material variant, selected by Type
type MaterialJSON struct {
	Type      material.MaterialType       `json:"type"`
	Albedo    *[3]float64                 `json:"albedo,omitempty"`    // diffuse
	Roughness float64                     `json:"roughness,omitempty"` // reflective
	Samples   int                         `json:"samples,omitempty"`   // reflective
	Sampling  material.ReflectionSampling `json:"sampling,omitempty"`  // reflective
	Tint      *[3]float64                 `json:"tint,omitempty"`      // perfect_reflective
}

// LightJSON holds the fields of every light variant, selected by Type
type LightJSON struct {
	Type        lights.LightType    `json:"type"`
	Intensity   *[3]float64         `json:"intensity,omitempty"`
	Position    *[3]float64         `json:"position,omitempty"`    // point
	Direction   *[3]float64         `json:"direction,omitempty"`   // directional
	Translation *[3]float64         `json:"translation,omitempty"` // area
	Rotation    *[4]float64         `json:"rotation,omitempty"`    // area
	Euler       *[3]float64         `json:"euler,omitempty"`       // area
	Scale       float64             `json:"scale,omitempty"`       // area
	Sampling    lights.AreaSampling `json:"sampling,omitempty"`    // area
	Density     int                 `json:"density,omitempty"`     // area
}

// LoadScene reads a scene file
func LoadScene(path string) (*scene.Scene, *geometry.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read scene file: %v", ErrIO, err)
	}
	s, camera, err := DecodeScene(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, camera, nil
}

// SaveScene writes a scene file, creating missing parent directories
func SaveScene(path string, s *scene.Scene, camera *geometry.Camera) error {
	var buf bytes.Buffer
	if err := EncodeScene(&buf, s, camera); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrIO, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: failed to write scene file: %v", ErrIO, err)
	}
	return nil
}

// DecodeScene parses a scene document. Nothing is returned unless the whole
// document is valid.
func DecodeScene(r io.Reader) (*scene.Scene, *geometry.Camera, error) {
	var file SceneFile
	src := &readErrRecorder{r: r}
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		if src.err != nil {
			return nil, nil, fmt.Errorf("%w: failed to read scene: %v", ErrIO, src.err)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return file.Build()
}

// readErrRecorder remembers the first read failure so that it is reported as
// ErrIO rather than a malformed document
type readErrRecorder struct {
	r   io.Reader
	err error
}

func (rr *readErrRecorder) Read(p []byte) (int, error) {
	n, err := rr.r.Read(p)
	if err != nil && err != io.EOF && rr.err == nil {
		rr.err = err
	}
	return n, err
}

// Build converts the persisted form into a scene and camera
func (f SceneFile) Build() (*scene.Scene, *geometry.Camera, error) {
	rotation, err := decodeRotation(f.Camera.Rotation, f.Camera.Euler)
	if err != nil {
		return nil, nil, fmt.Errorf("camera: %w", err)
	}
	camera := geometry.NewCamera(vec(f.Camera.Position), rotation)

	s := scene.NewScene(nil, nil, vec(f.Skylight))
	for i, o := range f.Objects {
		shape, err := o.Shape.build()
		if err != nil {
			return nil, nil, fmt.Errorf("object %d: %w", i, err)
		}
		mat, err := o.Material.build()
		if err != nil {
			return nil, nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.AddObject(shape, mat)
	}
	for i, l := range f.Lights {
		light, err := l.build()
		if err != nil {
			return nil, nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(light)
	}
	return s, camera, nil
}

// EncodeScene writes the scene document as indented JSON
func EncodeScene(w io.Writer, s *scene.Scene, camera *geometry.Camera) error {
	file, err := NewSceneFile(s, camera)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

// NewSceneFile converts a scene and camera into the persisted form
func NewSceneFile(s *scene.Scene, camera *geometry.Camera) (SceneFile, error) {
	if s == nil || camera == nil {
		return SceneFile{}, fmt.Errorf("%w: scene and camera are required", ErrEncode)
	}

	rotation := quat(camera.Rotation())
	file := SceneFile{
		Camera:   CameraJSON{Position: arr(camera.Position), Rotation: &rotation},
		Skylight: arr(s.Skylight()),
		Objects:  make([]ObjectJSON, 0, len(s.Objects())),
		Lights:   make([]LightJSON, 0, len(s.SceneLights())),
	}

	for i, o := range s.Objects() {
		shape, err := encodeShape(o.Shape)
		if err != nil {
			return SceneFile{}, fmt.Errorf("object %d: %w", i, err)
		}
		mat, err := encodeMaterial(o.Material)
		if err != nil {
			return SceneFile{}, fmt.Errorf("object %d: %w", i, err)
		}
		file.Objects = append(file.Objects, ObjectJSON{Shape: shape, Material: mat})
	}
	for i, l := range s.SceneLights() {
		light, err := encodeLight(l)
		if err != nil {
			return SceneFile{}, fmt.Errorf("light %d: %w", i, err)
		}
		file.Lights = append(file.Lights, light)
	}
	return file, nil
}

func (sj ShapeJSON) build() (geometry.Shape, error) {
	switch sj.Type {
	case geometry.ShapeTypeSphere:
		if sj.Center == nil || !(sj.Radius > 0) {
			return nil, fmt.Errorf("%w: sphere needs a center and a positive radius", ErrDecode)
		}
		return geometry.NewSphere(vec(*sj.Center), sj.Radius), nil
	case geometry.ShapeTypeInfinitePlane:
		normal, err := requireDirection(sj.Normal, "plane normal")
		if err != nil {
			return nil, err
		}
		if sj.Point == nil {
			return nil, fmt.Errorf("%w: plane needs a point", ErrDecode)
		}
		return geometry.NewInfinitePlane(vec(*sj.Point), normal), nil
	case geometry.ShapeTypeDisc:
		normal, err := requireDirection(sj.Normal, "disc normal")
		if err != nil {
			return nil, err
		}
		if sj.Center == nil || !(sj.Radius > 0) {
			return nil, fmt.Errorf("%w: disc needs a center and a positive radius", ErrDecode)
		}
		return geometry.NewDisc(vec(*sj.Center), normal, sj.Radius), nil
	}
	return nil, fmt.Errorf("%w: unknown shape type %q", ErrDecode, sj.Type)
}

func (mj MaterialJSON) build() (material.Material, error) {
	switch mj.Type {
	case material.MaterialTypeDiffuse:
		if mj.Albedo == nil {
			return nil, fmt.Errorf("%w: diffuse needs an albedo", ErrDecode)
		}
		return material.NewDiffuse(vec(*mj.Albedo)), nil
	case material.MaterialTypeReflective:
		switch mj.Sampling {
		case "", material.ReflectionSamplingMonteCarlo, material.ReflectionSamplingStratified:
		default:
			return nil, fmt.Errorf("%w: unknown reflection sampling %q", ErrDecode, mj.Sampling)
		}
		if mj.Roughness < 0 || mj.Samples < 0 {
			return nil, fmt.Errorf("%w: reflective roughness and samples must not be negative", ErrDecode)
		}
		return material.NewReflectiveWithSampling(mj.Roughness, mj.Samples, mj.Sampling), nil
	case material.MaterialTypePerfectReflective:
		tint := core.NewVec3(1, 1, 1)
		if mj.Tint != nil {
			tint = vec(*mj.Tint)
		}
		return material.NewPerfectReflective(tint), nil
	}
	return nil, fmt.Errorf("%w: unknown material type %q", ErrDecode, mj.Type)
}

func (lj LightJSON) build() (lights.Light, error) {
	intensity := core.NewVec3(1, 1, 1)
	if lj.Intensity != nil {
		intensity = vec(*lj.Intensity)
	}

	switch lj.Type {
	case lights.LightTypePoint:
		if lj.Position == nil {
			return nil, fmt.Errorf("%w: point light needs a position", ErrDecode)
		}
		return lights.NewPointLight(vec(*lj.Position), intensity), nil
	case lights.LightTypeDirectional:
		direction, err := requireDirection(lj.Direction, "light direction")
		if err != nil {
			return nil, err
		}
		return lights.NewDirectionalLight(direction, intensity), nil
	case lights.LightTypeArea:
		switch lj.Sampling {
		case "", lights.AreaSamplingMonteCarlo, lights.AreaSamplingGrid:
		default:
			return nil, fmt.Errorf("%w: unknown area sampling %q", ErrDecode, lj.Sampling)
		}
		if lj.Translation == nil || !(lj.Scale > 0) {
			return nil, fmt.Errorf("%w: area light needs a translation and a positive scale", ErrDecode)
		}
		if lj.Density < 0 {
			return nil, fmt.Errorf("%w: area light density must not be negative", ErrDecode)
		}
		rotation, err := decodeRotation(lj.Rotation, lj.Euler)
		if err != nil {
			return nil, err
		}
		transform := core.NewSimilarity(vec(*lj.Translation), rotation, lj.Scale)
		return lights.NewAreaLight(transform, intensity, lj.Sampling, lj.Density), nil
	}
	return nil, fmt.Errorf("%w: unknown light type %q", ErrDecode, lj.Type)
}

func encodeShape(shape geometry.Shape) (ShapeJSON, error) {
	switch s := shape.(type) {
	case *geometry.Sphere:
		center := arr(s.Center)
		return ShapeJSON{Type: s.Type(), Center: &center, Radius: s.Radius}, nil
	case *geometry.InfinitePlane:
		point, normal := arr(s.Point), arr(s.Normal)
		return ShapeJSON{Type: s.Type(), Point: &point, Normal: &normal}, nil
	case *geometry.Disc:
		center, normal := arr(s.Center), arr(s.Normal)
		return ShapeJSON{Type: s.Type(), Center: &center, Normal: &normal, Radius: s.Radius()}, nil
	}
	return ShapeJSON{}, fmt.Errorf("%w: unsupported shape %T", ErrEncode, shape)
}

func encodeMaterial(mat material.Material) (MaterialJSON, error) {
	switch m := mat.(type) {
	case *material.Diffuse:
		albedo := arr(m.Albedo)
		return MaterialJSON{Type: m.Type(), Albedo: &albedo}, nil
	case *material.Reflective:
		return MaterialJSON{Type: m.Type(), Roughness: m.Roughness, Samples: m.Samples, Sampling: m.Sampling}, nil
	case *material.PerfectReflective:
		tint := arr(m.Tint)
		return MaterialJSON{Type: m.Type(), Tint: &tint}, nil
	}
	return MaterialJSON{}, fmt.Errorf("%w: unsupported material %T", ErrEncode, mat)
}

func encodeLight(light lights.Light) (LightJSON, error) {
	switch l := light.(type) {
	case *lights.PointLight:
		position, intensity := arr(l.Position), arr(l.Intensity)
		return LightJSON{Type: l.Type(), Position: &position, Intensity: &intensity}, nil
	case *lights.DirectionalLight:
		direction, intensity := arr(l.Direction), arr(l.Intensity)
		return LightJSON{Type: l.Type(), Direction: &direction, Intensity: &intensity}, nil
	case *lights.AreaLight:
		translation, intensity := arr(l.Transform.Translation), arr(l.Intensity)
		rotation := quat(l.Transform.Rotation)
		return LightJSON{
			Type:        l.Type(),
			Intensity:   &intensity,
			Translation: &translation,
			Rotation:    &rotation,
			Scale:       l.Transform.Scale,
			Sampling:    l.Sampling,
			Density:     l.Density,
		}, nil
	}
	return LightJSON{}, fmt.Errorf("%w: unsupported light %T", ErrEncode, light)
}

func decodeRotation(q *[4]float64, euler *[3]float64) (core.Rotation, error) {
	switch {
	case q != nil && euler != nil:
		return core.Rotation{}, fmt.Errorf("%w: give either rotation or euler, not both", ErrDecode)
	case q != nil:
		if q[0] == 0 && q[1] == 0 && q[2] == 0 && q[3] == 0 {
			return core.Rotation{}, fmt.Errorf("%w: zero rotation quaternion", ErrDecode)
		}
		return core.NewRotationFromQuat(q[0], q[1], q[2], q[3]), nil
	case euler != nil:
		return core.NewRotationFromEuler(euler[0], euler[1], euler[2]), nil
	}
	return core.IdentityRotation(), nil
}

func requireDirection(v *[3]float64, what string) (core.Vec3, error) {
	if v == nil {
		return core.Vec3{}, fmt.Errorf("%w: missing %s", ErrDecode, what)
	}
	d := vec(*v)
	if !d.IsFinite() || d.LengthSquared() == 0 {
		return core.Vec3{}, fmt.Errorf("%w: %s must be a finite non-zero vector", ErrDecode, what)
	}
	return d, nil
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func arr(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func quat(r core.Rotation) [4]float64 {
	w, x, y, z := r.Quat()
	return [4]float64{w, x, y, z}
}
