package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestImageTextureEvaluate(t *testing.T) {
	// 2x2 image: top row red, green; bottom row blue, white
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)
	white := core.NewVec3(1, 1, 1)
	texture := NewImageTexture(2, 2, []core.Vec3{red, green, blue, white})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left", core.NewVec2(0.25, 0.25), blue},
		{"bottom-right", core.NewVec2(0.75, 0.25), white},
		{"top-left", core.NewVec2(0.25, 0.75), red},
		{"top-right", core.NewVec2(0.75, 0.75), green},
		{"exact corner", core.NewVec2(1, 1), green},
		{"clamped below", core.NewVec2(-3, -3), blue},
		{"clamped above", core.NewVec2(5, 5), green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, texture.Evaluate(tt.uv, core.Vec3{}, nil))
		})
	}
}

func TestImageTexture_MissingPixels(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	assert.Equal(t, missingTextureColor, texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}, nil))
}

func TestChecker(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewSolidChecker(1, even, odd)

	assert.Equal(t, even, checker.Evaluate(core.Vec2{}, core.NewVec3(0.5, 0.5, 0.5), nil))
	assert.Equal(t, odd, checker.Evaluate(core.Vec2{}, core.NewVec3(1.5, 0.5, 0.5), nil))
	assert.Equal(t, odd, checker.Evaluate(core.Vec2{}, core.NewVec3(-0.5, 0.5, 0.5), nil))
	assert.Equal(t, even, checker.Evaluate(core.Vec2{}, core.NewVec3(-0.5, -0.5, 0.5), nil))
}

func TestPerlin_RangeAndDeterminism(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(11)))
	b := NewPerlin(rand.New(rand.NewSource(11)))
	random := rand.New(rand.NewSource(12))

	for i := 0; i < 500; i++ {
		p := core.RandomVec3(random, -20, 20)
		n := a.Noise(p)
		assert.Equal(t, n, b.Noise(p))
		assert.LessOrEqual(t, n, 1.0+1e-9)
		assert.GreaterOrEqual(t, n, -1.0-1e-9)
		assert.GreaterOrEqual(t, a.Turbulence(p, DefaultTurbulenceDepth), 0.0)
	}
}

func TestNoise_StaysWithinBase(t *testing.T) {
	noise := NewNoise(NewSolidColor(core.NewVec3(1, 1, 1)), NewPerlin(rand.New(rand.NewSource(2))), 4)
	random := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		c := noise.Evaluate(core.Vec2{}, core.RandomVec3(random, -5, 5), nil)
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.LessOrEqual(t, c.X, 1.0)
	}
}
