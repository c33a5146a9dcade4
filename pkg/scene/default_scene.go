package scene

import (
	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom:     core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:       core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:           core.NewVec3(0, 1, 0),
		VFov:         40.0, // Narrower field of view for focus effect
		DefocusAngle: 1.0,  // Shallow depth of field
	}

	s := newScene("default", camera, skyBackground())
	s.Sampling = SamplingConfig{AspectRatio: 16.0 / 9.0, SamplesPerPixel: 200, MaxDepth: 50}

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	// Glass coating over a red base
	coatedRed := material.NewLayered(glass, lambertianRed)

	s.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, coatedRed)
	s.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	s.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	s.AddSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	// Hollow glass sphere with a blue sphere inside
	s.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	s.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass)
	s.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen))

	// Warm sun high to the side
	s.AddSphereLight(core.NewVec3(30, 30.5, 15), 10, core.NewVec3(15.0, 14.0, 13.0))

	return s, nil
}
