package scene

import (
	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/integrator"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
)

// cornellSize is the edge length of the standard 555-unit Cornell box
const cornellSize = 555.0

// NewCornellScene creates a classic Cornell box scene with quad walls, a ceiling light
// and two rotated boxes
func NewCornellScene(Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom: core.NewVec3(278, 278, -800), // Outside the open front of the box
		LookAt:   core.NewVec3(278, 278, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40.0,
	}

	// Only the light illuminates the box
	s := newScene("cornell", camera, integrator.SolidBackground{})
	s.Sampling = SamplingConfig{AspectRatio: 1.0, SamplesPerPixel: 200, MaxDepth: 50}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	x := core.NewVec3(cornellSize, 0, 0)
	y := core.NewVec3(0, cornellSize, 0)
	z := core.NewVec3(0, 0, cornellSize)

	s.AddQuad(core.NewVec3(cornellSize, 0, 0), y, z, green) // Right wall, YZ plane at x=555
	s.AddQuad(core.NewVec3(0, 0, 0), y, z, red)             // Left wall, YZ plane at x=0
	s.AddQuad(core.NewVec3(0, 0, 0), x, z, white)           // Floor
	s.AddQuad(core.NewVec3(0, cornellSize, 0), x, z, white) // Ceiling
	s.AddQuad(core.NewVec3(0, 0, cornellSize), x, y, white) // Back wall

	// Ceiling light, slightly below the ceiling
	s.AddQuadLight(
		core.NewVec3(213, cornellSize-1, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		core.NewVec3(15, 15, 15),
	)

	// Boxes are built at the origin then turned and moved into place
	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295)))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65)))

	return s, nil
}
