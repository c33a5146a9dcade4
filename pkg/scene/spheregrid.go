package scene

import (
	"math"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := core.DegreesToRadians(h)

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cone responses
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	rgb := core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	)
	return rgb.Clamp(0, 1)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 20

// NewSphereGridScene creates a grid of metal spheres whose hue varies along X and chroma along Z.
// The scene is large and flat, so it exercises BVH construction more than shading.
func NewSphereGridScene(Options) (*Scene, error) {
	camera := renderer.CameraConfig{
		LookFrom:     core.NewVec3(4.5, 6, 18),
		LookAt:       core.NewVec3(4.5, 0.8, 4.5), // Center of the grid
		Up:           core.NewVec3(0, 1, 0),
		VFov:         40.0,
		DefocusAngle: 0.2,
	}

	s := newScene("sphere-grid", camera, skyBackground())
	s.Sampling = SamplingConfig{AspectRatio: 16.0 / 9.0, SamplesPerPixel: 100, MaxDepth: 40}

	// Sun-like light high to the side
	s.AddSphereLight(core.NewVec3(20, 25, 20), 8, core.NewVec3(12.0, 11.5, 10.0))
	s.Add(NewGroundQuad(core.NewVec3(4.5, 0, 4.5), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	// Fit the grid into a 9x9 area around x=z=4.5
	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	radius := max(0.02, min(0.35, spacing*0.35))

	const (
		baseLightness = 0.65
		minChroma     = 0.05 // Near gray
		maxChroma     = 0.25 // Vivid
	)

	for i := range sphereGridSize {
		for j := range sphereGridSize {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := float64(i) / float64(sphereGridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(sphereGridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			s.AddSphere(core.NewVec3(x, radius, z), radius,
				material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness))
		}
	}

	return s, nil
}
