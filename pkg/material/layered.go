package material

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Layered represents a material with two layers - an outer and inner material.
// Light hits the outer layer first, then if it scatters inward, hits the inner layer.
// This simulates coatings, films, or other layered surface treatments.
type Layered struct {
	Outer Scatterer // Outer layer material (e.g., coating, surface treatment)
	Inner Scatterer // Inner layer material (e.g., base material)
}

// NewLayered creates a new layered material
func NewLayered(outer, inner Scatterer) *Layered {
	return &Layered{
		Outer: outer,
		Inner: inner,
	}
}

// Scatter implements two-step scattering through the outer then the inner layer
func (l *Layered) Scatter(rayIn core.Ray, hit SurfaceHit, random *rand.Rand) (ScatterResult, bool) {
	outerResult, outerScatters := l.Outer.Scatter(rayIn, hit, random)
	if !outerScatters {
		return ScatterResult{}, false
	}

	// Scattered outward from the outer layer: only the coating interacts
	normal, _ := hit.FaceNormal(rayIn)
	if outerResult.Scattered.Direction.Dot(normal) >= 0 {
		return outerResult, true
	}

	// The ray penetrated the coating and hits the base at the same point
	innerRay := core.NewRayUnit(hit.Point, outerResult.Scattered.Direction)
	innerResult, innerScatters := l.Inner.Scatter(innerRay, hit, random)
	if !innerScatters {
		return outerResult, true
	}

	return ScatterResult{
		Scattered:   innerResult.Scattered,
		Attenuation: outerResult.Attenuation.MultiplyVec(innerResult.Attenuation),
	}, true
}
