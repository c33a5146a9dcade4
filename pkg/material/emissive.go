package material

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Emissive represents a diffuse light-emitting material. It never scatters.
type Emissive struct {
	Emission ColorSource // Emitted light color
	Scale    float64     // Intensity multiplier
}

// NewEmissive creates a new emissive material with a solid emission color
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission), Scale: 1}
}

// NewTexturedEmissive creates an emissive material whose color comes from a texture
func NewTexturedEmissive(emission ColorSource, scale float64) *Emissive {
	return &Emissive{Emission: emission, Scale: scale}
}

// Emit returns the emitted light for this material
func (e *Emissive) Emit(hit SurfaceHit, random *rand.Rand) (core.Vec3, bool) {
	return e.Emission.Evaluate(hit.UV, hit.Point, random).Multiply(e.Scale), true
}
