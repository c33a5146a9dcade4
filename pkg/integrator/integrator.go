package integrator

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world.
	// random is exclusive to the caller for the duration of the call.
	RayColor(ray core.Ray, world geometry.SceneObject, depth int, random *rand.Rand) core.Vec3
}

// Background gives the color seen by rays that escape the scene
type Background interface {
	ColorFor(ray core.Ray) core.Vec3
}

// SolidBackground is the same color in every direction
type SolidBackground struct {
	Color core.Vec3
}

// ColorFor returns the solid color
func (b SolidBackground) ColorFor(ray core.Ray) core.Vec3 {
	return b.Color
}

// GradientBackground blends from Bottom to Top along the ray's vertical direction
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// ColorFor returns a gradient color based on ray direction
func (b GradientBackground) ColorFor(ray core.Ray) core.Vec3 {
	// Map y from [-1, 1] to [0, 1]
	a := 0.5 * (ray.Direction.Y + 1.0)
	return b.Bottom.Multiply(1.0 - a).Add(b.Top.Multiply(a))
}
