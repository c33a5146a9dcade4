package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestEmissive_Emit(t *testing.T) {
	light := NewTexturedEmissive(NewSolidColor(core.NewVec3(1, 0.5, 0.25)), 4)
	color, ok := light.Emit(SurfaceHit{}, rand.New(rand.NewSource(1)))
	assert.True(t, ok)
	assert.Equal(t, core.NewVec3(4, 2, 1), color)
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		scatters bool
		emits    bool
	}{
		{"lambertian", NewLambertian(core.NewVec3(1, 1, 1)), true, false},
		{"metal", NewMetal(core.NewVec3(1, 1, 1), 0), true, false},
		{"dielectric", NewDielectric(1.5), true, false},
		{"emissive", NewEmissive(core.NewVec3(1, 1, 1)), false, true},
		{"mix", NewMix(NewDielectric(1.5), NewEmissive(core.NewVec3(1, 1, 1)), 0.5), true, true},
		{"absorber", struct{}{}, false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := Capabilities(tt.material)
			assert.Equal(t, tt.scatters, s != nil)
			assert.Equal(t, tt.emits, e != nil)
		})
	}
}
