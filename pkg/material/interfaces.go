package material

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Material is any value describing how a surface interacts with light.
// It may implement Scatterer, Emitter, both, or neither (a pure absorber).
type Material interface{}

// Scatterer is implemented by materials that reflect or refract incoming light
type Scatterer interface {
	Scatter(rayIn core.Ray, hit SurfaceHit, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit(hit SurfaceHit, random *rand.Rand) (core.Vec3, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// SurfaceHit is the geometric information a material sees at an intersection
type SurfaceHit struct {
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit normal pointing out of the surface
	UV     core.Vec2 // Surface parameterization for texture lookup
}

// FaceNormal returns the normal facing against the ray and whether the ray hit the front face
func (h SurfaceHit) FaceNormal(ray core.Ray) (core.Vec3, bool) {
	if ray.Direction.Dot(h.Normal) < 0 {
		return h.Normal, true
	}
	return h.Normal.Negate(), false
}

// Capabilities resolves the optional capabilities of a material once.
// Either result is nil when the material lacks that capability.
func Capabilities(m Material) (Scatterer, Emitter) {
	s, _ := m.(Scatterer)
	e, _ := m.(Emitter)
	return s, e
}
