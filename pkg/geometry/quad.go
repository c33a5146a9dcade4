package geometry

import (
	"math"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // Unit normal (U × V normalized)
	D      float64   // Plane equation constant: normal · p = D
	W      core.Vec3 // Cached n / (n · n) with n = U × V, for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(corner),
		W:      n.Multiply(1.0 / n.Dot(n)),
	}
}

// HitDistance intersects the plane of the quad and checks the planar coordinates are in [0, 1]
func (q *Quad) HitDistance(ray core.Ray, interval core.Interval) (float64, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if !interval.Surrounds(t) {
		return 0, false
	}

	alpha, beta := q.planar(ray.At(t))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, false
	}
	return t, true
}

func (q *Quad) planar(point core.Vec3) (float64, float64) {
	hitVector := point.Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	return alpha, beta
}

// NormalAt returns the constant quad normal
func (q *Quad) NormalAt(point core.Vec3) core.Vec3 {
	return q.Normal
}

// UVAt returns the planar coordinates of the point along U and V
func (q *Quad) UVAt(point core.Vec3) core.Vec2 {
	alpha, beta := q.planar(point)
	return core.NewVec2(alpha, beta)
}

// Bounds returns the padded bound of all four corners
func (q *Quad) Bounds() core.Bound {
	b := core.NewBoundFromPoints(q.Corner, q.Corner.Add(q.U).Add(q.V))
	b = b.Union(core.NewBoundFromPoints(q.Corner.Add(q.U), q.Corner.Add(q.V)))
	return b.Pad()
}
