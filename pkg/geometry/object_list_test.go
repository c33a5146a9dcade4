package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectList_ClosestHit(t *testing.T) {
	near := NewShapeObject(NewSphere(core.NewVec3(0, 0, -2), 0.5), nil)
	far := NewShapeObject(NewSphere(core.NewVec3(0, 0, -6), 0.5), nil)
	list := NewObjectList(far, near)
	assert.Equal(t, 2, list.Len())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := list.Hit(ray, testInterval, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.InDelta(t, 1.5, hit.T, 1e-9)

	_, ok = list.Hit(ray, core.NewInterval(0.001, 1), rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestObjectList_TieKeepsFirst(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))
	first := NewShapeObject(quad, material.NewEmissive(core.NewVec3(1, 0, 0)))
	second := NewShapeObject(quad, material.NewEmissive(core.NewVec3(0, 1, 0)))
	list := NewObjectList(first, second)

	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit, ok := list.Hit(ray, testInterval, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(1, 0, 0), hit.Emission)
}

func TestObjectList_Bounds(t *testing.T) {
	list := NewObjectList()
	assert.True(t, list.Bounds().IsEmpty())

	a := NewShapeObject(NewSphere(core.NewVec3(-2, 0, 0), 1), nil)
	b := NewShapeObject(NewSphere(core.NewVec3(3, 1, 0), 1), nil)
	list.Add(a, b)
	assert.Equal(t, a.Bounds().Union(b.Bounds()), list.Bounds())
	assert.Len(t, list.SceneObjects(), 2)
}
