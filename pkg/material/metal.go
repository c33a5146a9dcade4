package material

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: max(0, min(1, fuzzness))}
}

// Scatter reflects the ray, perturbed by Fuzzness. Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit SurfaceHit, random *rand.Rand) (ScatterResult, bool) {
	normal, _ := hit.FaceNormal(rayIn)
	reflected := reflect(rayIn.Direction, normal)

	if m.Fuzzness > 0 {
		reflected = reflected.Normalize().Add(core.RandomUnitVector(random).Multiply(m.Fuzzness))
	}

	if reflected.Dot(normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
