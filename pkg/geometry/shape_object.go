package geometry

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
)

// ShapeObject pairs one shape with one material
type ShapeObject struct {
	Shape    Shape
	Material material.Material

	scatterer material.Scatterer
	emitter   material.Emitter
}

// NewShapeObject creates a scene object from a shape and a material.
// The material's capabilities are resolved here, once.
func NewShapeObject(shape Shape, mat material.Material) *ShapeObject {
	o := &ShapeObject{Shape: shape, Material: mat}
	o.scatterer, o.emitter = material.Capabilities(mat)
	return o
}

// Hit asks the shape for the intersection, then the material for scatter and emission
func (o *ShapeObject) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	t, ok := o.Shape.HitDistance(ray, interval)
	if !ok {
		return HitContext{}, false
	}

	point := ray.At(t)
	hit := HitContext{
		HitInfo: HitInfo{
			T:      t,
			Point:  point,
			Normal: o.Shape.NormalAt(point),
			UV:     o.Shape.UVAt(point),
		},
	}

	surface := hit.Surface()
	if o.scatterer != nil {
		hit.Scatter, hit.Scattered = o.scatterer.Scatter(ray, surface, random)
	}
	if o.emitter != nil {
		hit.Emission, hit.Emits = o.emitter.Emit(surface, random)
	}
	return hit, true
}

// Bounds returns the shape's bound
func (o *ShapeObject) Bounds() core.Bound {
	return o.Shape.Bounds()
}
