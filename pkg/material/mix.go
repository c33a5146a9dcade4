package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Mix represents a material that probabilistically chooses between two materials
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2

	scatter1, scatter2 Scatterer
	emit1, emit2       Emitter
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	// Clamp ratio to valid range
	ratio = math.Max(0.0, math.Min(ratio, 1.0))

	m := &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     ratio,
	}
	m.scatter1, m.emit1 = Capabilities(material1)
	m.scatter2, m.emit2 = Capabilities(material2)
	return m
}

// Scatter delegates to one of the two materials, chosen at random by Ratio
func (m *Mix) Scatter(rayIn core.Ray, hit SurfaceHit, random *rand.Rand) (ScatterResult, bool) {
	s := m.scatter1
	if random.Float64() < m.Ratio {
		s = m.scatter2
	}
	if s == nil {
		return ScatterResult{}, false
	}
	return s.Scatter(rayIn, hit, random)
}

// Emit blends the emission of whichever materials emit
func (m *Mix) Emit(hit SurfaceHit, random *rand.Rand) (core.Vec3, bool) {
	var total core.Vec3
	emits := false
	if m.emit1 != nil {
		if e, ok := m.emit1.Emit(hit, random); ok {
			total = total.Add(e.Multiply(1 - m.Ratio))
			emits = true
		}
	}
	if m.emit2 != nil {
		if e, ok := m.emit2.Emit(hit, random); ok {
			total = total.Add(e.Multiply(m.Ratio))
			emits = true
		}
	}
	return total, emits
}
