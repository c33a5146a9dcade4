package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
)

// DefaultEpsilon is the minimum hit distance, which keeps scattered rays off their own surface
const DefaultEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	Background Background
	Epsilon    float64
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A nil background is black.
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	if background == nil {
		background = SolidBackground{}
	}
	return &PathTracingIntegrator{
		Background: background,
		Epsilon:    DefaultEpsilon,
	}
}

// RayColor computes the color for a single ray, following at most depth bounces
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.SceneObject, depth int, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(pt.Epsilon, math.Inf(1)), random)
	if !isHit {
		return pt.Background.ColorFor(ray)
	}

	var colorEmitted core.Vec3
	if hit.Emits {
		colorEmitted = hit.Emission
	}

	// Material absorbed the ray, only return emitted light
	if !hit.Scattered {
		return colorEmitted
	}

	incoming := pt.RayColor(hit.Scatter.Scattered, world, depth-1, random)
	return colorEmitted.Add(hit.Scatter.Attenuation.MultiplyVec(incoming))
}
