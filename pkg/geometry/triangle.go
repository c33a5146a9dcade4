package geometry

import (
	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
	bound      core.Bound
}

// NewTriangle creates a new triangle from three vertices.
// The normal follows the right-hand rule over V0, V1, V2.
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bound = core.NewBoundFromPoints(v0, v1).
		Union(core.NewBoundFromPoints(v2, v2)).
		Pad()
	return t
}

// HitDistance uses the Möller-Trumbore algorithm
func (t *Triangle) HitDistance(ray core.Ray, interval core.Interval) (float64, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	tParam := f * edge2.Dot(q)
	if !interval.Surrounds(tParam) {
		return 0, false
	}
	return tParam, true
}

// NormalAt returns the cached face normal
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return t.normal
}

// UVAt returns the barycentric coordinates of the point relative to V1 and V2
func (t *Triangle) UVAt(point core.Vec3) core.Vec2 {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	p := point.Subtract(t.V0)

	d11 := edge1.Dot(edge1)
	d12 := edge1.Dot(edge2)
	d22 := edge2.Dot(edge2)
	dp1 := p.Dot(edge1)
	dp2 := p.Dot(edge2)
	denom := d11*d22 - d12*d12
	if denom == 0 {
		return core.Vec2{}
	}
	return core.NewVec2((d22*dp1-d12*dp2)/denom, (d11*dp2-d12*dp1)/denom)
}

// Bounds returns the cached padded bound
func (t *Triangle) Bounds() core.Bound {
	return t.bound
}
