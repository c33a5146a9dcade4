package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDielectric_AlwaysScattersWithWhiteAttenuation(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	hit := SurfaceHit{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))

	reflected, refracted := 0, 0
	for i := 0; i < 1000; i++ {
		scatter, ok := glass.Scatter(ray, hit, random)
		require.True(t, ok)
		assert.Equal(t, core.NewVec3(1, 1, 1), scatter.Attenuation)
		assert.InDelta(t, 1, scatter.Scattered.Direction.Length(), 1e-9)
		if scatter.Scattered.Direction.Y > 0 {
			reflected++
		} else {
			refracted++
		}
	}
	assert.Greater(t, refracted, reflected, "refraction dominates at 45 degrees from air")
	assert.Greater(t, reflected, 0)
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(1))

	// Exiting the glass at a steep angle: sin(theta) * 1.5 > 1
	hit := SurfaceHit{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, -0.2, -1), core.NewVec3(0, 0.2, 1))

	for i := 0; i < 100; i++ {
		scatter, ok := glass.Scatter(ray, hit, random)
		require.True(t, ok)
		assert.Less(t, scatter.Scattered.Direction.Y, 0.0, "must reflect back into the glass")
	}
}

func TestReflectance(t *testing.T) {
	// Normal incidence on glass: ((1-1.5)/(1+1.5))^2 = 0.04
	assert.InDelta(t, 0.04, Reflectance(1, 1/1.5), 1e-9)
	// Grazing incidence reflects everything
	assert.InDelta(t, 1, Reflectance(0, 1/1.5), 1e-9)
	assert.False(t, math.IsNaN(Reflectance(0.5, 1.5)))
}
