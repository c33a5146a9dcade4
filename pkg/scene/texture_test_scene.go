package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/integrator"
	"github.com/df07/go-parallel-pathtracer/pkg/loaders"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
)

// ErrMissingTexture is returned by scenes that need Options.Texture when it is empty
var ErrMissingTexture = errors.New("scene: texture path required")

// maxTextureSize bounds the longest side of loaded textures
const maxTextureSize = 2048

func texturedCamera(lookFrom core.Vec3) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom: lookFrom,
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     20,
	}
}

// NewCheckerScene creates two large spheres sharing a 3D checker texture
func NewCheckerScene(Options) (*Scene, error) {
	s := newScene("checker", texturedCamera(core.NewVec3(13, 2, 3)), skyBackground())
	s.Sampling = SamplingConfig{AspectRatio: 16.0 / 9.0, SamplesPerPixel: 100, MaxDepth: 50}

	checker := material.NewTexturedLambertian(
		material.NewSolidChecker(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	s.AddSphere(core.NewVec3(0, -10, 0), 10, checker)
	s.AddSphere(core.NewVec3(0, 10, 0), 10, checker)

	return s, nil
}

// perlinMarble is a white marble texture whose noise tables come from seed
func perlinMarble(seed int64) material.ColorSource {
	noise := material.NewPerlin(rand.New(rand.NewSource(seed)))
	return material.NewNoise(material.NewSolidColor(core.NewVec3(1, 1, 1)), noise, 4)
}

// NewPerlinScene creates a marbled sphere resting on a marbled ground sphere
func NewPerlinScene(opts Options) (*Scene, error) {
	s := newScene("perlin", texturedCamera(core.NewVec3(13, 2, 3)), skyBackground())
	s.Sampling = SamplingConfig{AspectRatio: 16.0 / 9.0, SamplesPerPixel: 100, MaxDepth: 50}

	marble := material.NewTexturedLambertian(perlinMarble(opts.Seed))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, marble)
	s.AddSphere(core.NewVec3(0, 2, 0), 2, marble)

	return s, nil
}

// NewSimpleLightScene lights the marble spheres with a rectangular and a spherical emitter in the dark
func NewSimpleLightScene(opts Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom: core.NewVec3(26, 3, 6),
		LookAt:   core.NewVec3(0, 2, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     20,
	}
	s := newScene("simple-light", camera, integrator.SolidBackground{})
	s.Sampling = SamplingConfig{AspectRatio: 16.0 / 9.0, SamplesPerPixel: 100, MaxDepth: 50}

	marble := material.NewTexturedLambertian(perlinMarble(opts.Seed))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, marble)
	s.AddSphere(core.NewVec3(0, 2, 0), 2, marble)

	s.AddQuadLight(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), core.NewVec3(4, 4, 4))
	s.AddSphereLight(core.NewVec3(0, 7, 0), 2, core.NewVec3(4, 4, 4))

	return s, nil
}

// NewEarthScene wraps the image at opts.Texture around a sphere
func NewEarthScene(opts Options) (*Scene, error) {
	if opts.Texture == "" {
		return nil, fmt.Errorf("%w: the earth scene maps an image onto its globe", ErrMissingTexture)
	}
	img, err := loaders.LoadImageScaled(opts.Texture, maxTextureSize)
	if err != nil {
		return nil, fmt.Errorf("earth texture: %w", err)
	}

	s := newScene("earth", texturedCamera(core.NewVec3(0, 0, 12)), skyBackground())
	s.Sampling = SamplingConfig{AspectRatio: 16.0 / 9.0, SamplesPerPixel: 100, MaxDepth: 50}

	surface := material.NewImageTexture(img.Width, img.Height, img.Pixels)
	s.AddSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(surface))

	return s, nil
}
