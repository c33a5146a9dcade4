package scene

import (
	"fmt"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/integrator"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Objects    *geometry.ObjectList  // Objects in the scene
	World      geometry.SceneObject  // Acceleration structure over Objects, built by Preprocess
	Camera     renderer.CameraConfig // Camera placement
	Background integrator.Background // Radiance for rays that escape
	Sampling   SamplingConfig        // Settings the scene looks best with
}

// SamplingConfig holds the image settings a scene was framed for.
// Zero fields leave the choice to the caller.
type SamplingConfig struct {
	AspectRatio     float64 // Image width / height
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
}

// Options are inputs some scenes need
type Options struct {
	Seed    int64  // Seeds random placement and noise tables
	Texture string // Image file for textured scenes
}

func newScene(name string, camera renderer.CameraConfig, background integrator.Background) *Scene {
	return &Scene{
		Name:       name,
		Objects:    geometry.NewObjectList(),
		Camera:     camera,
		Background: background,
	}
}

// skyBackground is the blue-to-white gradient used by the outdoor scenes
func skyBackground() integrator.Background {
	return integrator.GradientBackground{
		Bottom: core.NewVec3(1.0, 1.0, 1.0), // White horizon
		Top:    core.NewVec3(0.5, 0.7, 1.0), // Blue sky
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.SceneObject) {
	s.Objects.Add(objects...)
}

// AddSphere adds a sphere with the given material
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Add(geometry.NewShapeObject(geometry.NewSphere(center, radius), mat))
}

// AddQuad adds a parallelogram with the given material
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat material.Material) {
	s.Add(geometry.NewShapeObject(geometry.NewQuad(corner, u, v), mat))
}

// AddSphereLight adds a spherical emitter
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	s.AddSphere(center, radius, material.NewEmissive(emission))
}

// AddQuadLight adds a rectangular area emitter
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission core.Vec3) {
	s.AddQuad(corner, u, v, material.NewEmissive(emission))
}

// NewGroundQuad creates a large horizontal quad centered at the given point with normal +Y.
// It stands in for an infinite ground plane so the scene keeps finite bounds.
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) geometry.SceneObject {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0, size², 0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewShapeObject(geometry.NewQuad(corner, u, v), mat)
}

// Preprocess builds the BVH over the scene's objects and installs it as World
func (s *Scene) Preprocess() error {
	bvh, err := geometry.NewBVHFromList(s.Objects)
	if err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}
	s.World = bvh

	core.Logger().Debug("scene ready", "scene", s.Name, "objects", bvh.Len())
	return nil
}
