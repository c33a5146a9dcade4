package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_RoundTrip(t *testing.T) {
	child := NewShapeObject(NewSphere(core.NewVec3(0, 0, 0), 1), nil)
	offset := core.NewVec3(3, 1, -2)
	moved := NewTranslate(child, offset)
	random := rand.New(rand.NewSource(11))

	hits := 0
	for i := 0; i < 500; i++ {
		origin := core.RandomVec3(random, -5, 5).Add(offset)
		// Aim roughly at the moved sphere so a good share of rays hit
		target := offset.Add(core.RandomInUnitSphere(random).Multiply(1.5))
		ray := core.NewRay(origin, target.Subtract(origin))
		local := core.NewRayUnit(ray.Origin.Subtract(offset), ray.Direction)

		got, ok := moved.Hit(ray, testInterval, random)
		want, wantOK := child.Hit(local, testInterval, random)
		require.Equal(t, wantOK, ok)
		if !ok {
			continue
		}
		hits++
		assert.InDelta(t, want.T, got.T, 1e-9)
		assert.True(t, vecClose(want.Point.Add(offset), got.Point, 1e-9))
		assert.True(t, vecClose(want.Normal, got.Normal, 1e-12))
	}
	assert.Greater(t, hits, 100)
}

func TestTranslate_MovesScatteredOrigin(t *testing.T) {
	child := NewShapeObject(NewSphere(core.NewVec3(0, 0, 0), 1), material.NewLambertian(core.NewVec3(1, 1, 1)))
	moved := NewTranslate(child, core.NewVec3(10, 0, 0))
	ray := core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1))

	hit, ok := moved.Hit(ray, testInterval, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	require.True(t, hit.Scattered)
	assert.True(t, vecClose(core.NewVec3(10, 0, 1), hit.Point, 1e-9))
	assert.True(t, vecClose(hit.Point, hit.Scatter.Scattered.Origin, 1e-9))
}

func TestTranslate_Bounds(t *testing.T) {
	child := NewShapeObject(NewSphere(core.NewVec3(0, 0, 0), 1), nil)
	moved := NewTranslate(child, core.NewVec3(1, 2, 3))
	assert.Equal(t, child.Bounds().Shift(core.NewVec3(1, 2, 3)), moved.Bounds())
}

func TestRotate_QuarterTurnAboutY(t *testing.T) {
	child := NewShapeObject(NewSphere(core.NewVec3(2, 0, 0), 0.5), material.NewLambertian(core.NewVec3(1, 1, 1)))
	turned := NewRotateY(child, 90)

	// +90 degrees about +Y carries +X onto -Z
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := turned.Hit(ray, testInterval, rand.New(rand.NewSource(2)))
	require.True(t, ok)
	assert.InDelta(t, 6.5, hit.T, 1e-9)
	assert.True(t, vecClose(core.NewVec3(0, 0, -1.5), hit.Point, 1e-9))
	assert.True(t, vecClose(core.NewVec3(0, 0, 1), hit.Normal, 1e-9))
	require.True(t, hit.Scattered)
	assert.True(t, vecClose(hit.Point, hit.Scatter.Scattered.Origin, 1e-9))

	// The unrotated position is now empty
	away := core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))
	_, ok = turned.Hit(away, testInterval, rand.New(rand.NewSource(2)))
	assert.False(t, ok)
}

func TestRotate_RoundTrip(t *testing.T) {
	child := NewShapeObject(NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0)), nil)
	axis := core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(1, 1, 0))
	turned := NewRotate(child, axis, math.Pi/5)
	inverse := core.NewRotation(axis, -math.Pi/5)
	forward := core.NewRotation(axis, math.Pi/5)
	random := rand.New(rand.NewSource(5))

	hits := 0
	for i := 0; i < 500; i++ {
		origin := core.RandomVec3(random, -4, 4)
		ray := core.NewRay(origin, core.RandomUnitVector(random))

		got, ok := turned.Hit(ray, testInterval, random)
		want, wantOK := child.Hit(inverse.Ray(ray), testInterval, random)
		require.Equal(t, wantOK, ok)
		if !ok {
			continue
		}
		hits++
		assert.InDelta(t, want.T, got.T, 1e-9)
		assert.True(t, vecClose(forward.Point(want.Point), got.Point, 1e-9))
		assert.True(t, vecClose(forward.Vector(want.Normal), got.Normal, 1e-9))
	}
	assert.Greater(t, hits, 0)
}

func TestRotate_BoundsEncloseChild(t *testing.T) {
	child := NewShapeObject(NewSphere(core.NewVec3(2, 0, 0), 0.5), nil)
	turned := NewRotateY(child, 90)
	b := turned.Bounds()

	assert.InDelta(t, -0.5, b.X.Min, 1e-9)
	assert.InDelta(t, 0.5, b.X.Max, 1e-9)
	assert.InDelta(t, -2.5, b.Z.Min, 1e-9)
	assert.InDelta(t, -1.5, b.Z.Max, 1e-9)

	// A looser bound for non-right angles still contains every surface point
	oblique := NewRotateY(child, 30)
	random := rand.New(rand.NewSource(9))
	rot := core.NewRotation(core.NewRayUnit(core.Vec3{}, core.NewVec3(0, 1, 0)), core.DegreesToRadians(30))
	ob := oblique.Bounds()
	const slack = 1e-9
	for i := 0; i < 200; i++ {
		p := rot.Point(core.NewVec3(2, 0, 0).Add(core.RandomUnitVector(random).Multiply(0.5)))
		inside := ob.X.Expand(slack).Contains(p.X) &&
			ob.Y.Expand(slack).Contains(p.Y) &&
			ob.Z.Expand(slack).Contains(p.Z)
		assert.True(t, inside, "point %v outside %v", p, ob)
	}
}

func TestTransforms_Compose(t *testing.T) {
	child := NewShapeObject(NewSphere(core.NewVec3(1, 0, 0), 0.25), nil)
	composed := NewTranslate(NewRotateY(child, 180), core.NewVec3(0, 0, -3))

	// Rotating 180 degrees puts the sphere at (-1, 0, 0), the translate moves it to (-1, 0, -3)
	ray := core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := composed.Hit(ray, testInterval, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.InDelta(t, 2.75, hit.T, 1e-9)
	assert.True(t, vecClose(core.NewVec3(-1, 0, -2.75), hit.Point, 1e-9))
}
