package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBound(random *rand.Rand) Bound {
	return NewBoundFromPoints(RandomVec3(random, -10, 10), RandomVec3(random, -10, 10))
}

func TestBound_UnionIdempotent(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		b := randomBound(random)
		assert.Equal(t, b, b.Union(b))
		assert.Equal(t, b, b.Union(EmptyBound))
	}
}

func TestBound_UnionAssociativeAndCommutative(t *testing.T) {
	random := rand.New(rand.NewSource(8))
	for i := 0; i < 100; i++ {
		a, b, c := randomBound(random), randomBound(random), randomBound(random)
		assert.Equal(t, a.Union(b).Union(c), a.Union(b.Union(c)))
		assert.Equal(t, a.Union(b), b.Union(a))
	}
}

func TestBound_FromPointsOrderIndependent(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(-1, 2, -3)
	assert.Equal(t, NewBoundFromPoints(a, b), NewBoundFromPoints(b, a))
	assert.Equal(t, NewInterval(-1, 1), NewBoundFromPoints(a, b).X)
}

func TestBound_PadFlatAxis(t *testing.T) {
	flat := NewBoundFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	padded := flat.Pad()

	assert.Equal(t, flat.X, padded.X)
	assert.Equal(t, flat.Z, padded.Z)
	assert.InDelta(t, BoundPadding, padded.Y.Size(), 1e-12)
	assert.InDelta(t, 0, padded.Y.Min+padded.Y.Max, 1e-12)
}

func TestBound_Hit(t *testing.T) {
	box := NewBoundFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"Straight through", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"Pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"Origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3)), true},
		{"Parallel inside slab", NewRay(NewVec3(0.5, 0, 5), NewVec3(0, 0, -1)), true},
		{"Parallel outside slab", NewRay(NewVec3(1.5, 0, 5), NewVec3(0, 0, -1)), false},
		{"Diagonal miss", NewRay(NewVec3(3, 0, 5), NewVec3(0, 1, -1)), false},
		{"Diagonal hit", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"Grazing face", NewRay(NewVec3(1, 0, 5), NewVec3(0, 0, -1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, box.Hit(tt.ray))
		})
	}
}

func TestBound_HitEmptyAndFlat(t *testing.T) {
	ray := NewRay(NewVec3(0, 5, 0), NewVec3(0, -1, 0))
	assert.False(t, EmptyBound.Hit(ray))

	// A quad-like bound only becomes reliably hittable once padded
	flat := NewBoundFromPoints(NewVec3(-1, 0, -1), NewVec3(1, 0, 1)).Pad()
	assert.True(t, flat.Hit(ray))
	assert.True(t, flat.Hit(NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))))
}

func TestBound_Shift(t *testing.T) {
	b := NewBoundFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	shifted := b.Shift(NewVec3(2, -1, 0.5))
	assert.Equal(t, NewBoundFromPoints(NewVec3(2, -1, 0.5), NewVec3(3, 0, 1.5)), shifted)
}

func TestBound_RotateEnclosesRotatedCorners(t *testing.T) {
	random := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		b := randomBound(random)
		axis := NewRay(RandomVec3(random, -3, 3), RandomUnitVector(random))
		rot := NewRotation(axis, RandomInRange(random, -math.Pi, math.Pi))
		rotated := b.Rotate(rot)
		require.False(t, rotated.IsEmpty())

		for _, c := range b.Corners() {
			p := rot.Point(c)
			const eps = 1e-9
			assert.True(t, rotated.X.Expand(eps).Contains(p.X))
			assert.True(t, rotated.Y.Expand(eps).Contains(p.Y))
			assert.True(t, rotated.Z.Expand(eps).Contains(p.Z))
		}
	}
}

func TestBound_RotateQuarterTurn(t *testing.T) {
	b := NewBoundFromPoints(NewVec3(0, 0, 0), NewVec3(2, 1, 1))
	rot := NewRotation(NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)), math.Pi/2)
	rotated := b.Rotate(rot)

	assert.InDelta(t, 0, rotated.X.Min, 1e-9)
	assert.InDelta(t, 1, rotated.X.Max, 1e-9)
	assert.InDelta(t, -2, rotated.Z.Min, 1e-9)
	assert.InDelta(t, 0, rotated.Z.Max, 1e-9)
	assert.InDelta(t, b.Y.Min, rotated.Y.Min, 1e-9)
	assert.InDelta(t, b.Y.Max, rotated.Y.Max, 1e-9)
}
