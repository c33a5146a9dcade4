package geometry

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
)

// Box is an axis-aligned box made up of six outward-facing quads sharing one material.
// Rotated boxes are built by wrapping a Box in Rotate.
type Box struct {
	Min, Max core.Vec3
	sides    *ObjectList
}

// NewBox creates the box spanning two opposite corners a and b
func NewBox(a, b core.Vec3, mat material.Material) *Box {
	lo := a.Min(b)
	hi := a.Max(b)

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	// Edge order gives each face an outward normal
	faces := []*Quad{
		NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy),          // front (+z)
		NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy), // back (-z)
		NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy), // right (+x)
		NewQuad(lo, dz, dy),                                      // left (-x)
		NewQuad(core.NewVec3(lo.X, hi.Y, lo.Z), dz, dx),          // top (+y)
		NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dz.Negate(), dx), // bottom (-y)
	}

	sides := NewObjectList()
	for _, f := range faces {
		sides.Add(NewShapeObject(f, mat))
	}
	return &Box{Min: lo, Max: hi, sides: sides}
}

// Hit tests the ray against all six faces
func (b *Box) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	return b.sides.Hit(ray, interval, random)
}

// Bounds returns the union of the faces' bounds
func (b *Box) Bounds() core.Bound {
	return b.sides.Bounds()
}
