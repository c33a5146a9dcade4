package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	assert.Equal(t, 1.0, NewMetal(core.NewVec3(1, 1, 1), 2.5).Fuzzness)
	assert.Equal(t, 0.0, NewMetal(core.NewVec3(1, 1, 1), -1).Fuzzness)
	assert.Equal(t, 0.3, NewMetal(core.NewVec3(1, 1, 1), 0.3).Fuzzness)
}

func TestMetal_PerfectReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0)
	random := rand.New(rand.NewSource(42))

	hit := SurfaceHit{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scatter, ok := metal.Scatter(ray, hit, random)
	require.True(t, ok)

	expected := core.NewVec3(1, 1, 0).Normalize()
	assert.InDelta(t, 0, scatter.Scattered.Direction.Subtract(expected).Length(), 1e-9)
	assert.Equal(t, metal.Albedo, scatter.Attenuation)
}

func TestMetal_FuzzyNeverScattersBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	random := rand.New(rand.NewSource(7))

	hit := SurfaceHit{Normal: core.NewVec3(0, 1, 0)}
	// Grazing incidence makes absorption likely
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))

	absorbed := 0
	for i := 0; i < 500; i++ {
		scatter, ok := metal.Scatter(ray, hit, random)
		if !ok {
			absorbed++
			continue
		}
		if scatter.Scattered.Direction.Y <= 0 {
			t.Fatalf("Scattered ray below surface: %v", scatter.Scattered.Direction)
		}
	}
	assert.Greater(t, absorbed, 0, "grazing fuzzy reflections should sometimes be absorbed")
}

func TestReflect(t *testing.T) {
	got := reflect(core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	assert.Equal(t, core.NewVec3(1, 1, 0), got)
	assert.InDelta(t, math.Sqrt2, got.Length(), 1e-12)
}
