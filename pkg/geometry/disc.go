package geometry

import (
	"math"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center core.Vec3 // Center of the disc
	Normal core.Vec3 // Normal vector (pointing "up" from the disc)
	Radius float64   // Radius of the disc
	Right  core.Vec3 // Right vector (perpendicular to normal)
	Up     core.Vec3 // Up vector (perpendicular to normal and right)
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	normalNormalized := normal.Normalize()

	// Create orthogonal vectors
	var right core.Vec3
	if math.Abs(normalNormalized.X) > 0.1 {
		right = core.NewVec3(0, 1, 0)
	} else {
		right = core.NewVec3(1, 0, 0)
	}
	right = right.Cross(normalNormalized).Normalize()
	up := normalNormalized.Cross(right).Normalize()

	return &Disc{
		Center: center,
		Normal: normalNormalized,
		Radius: radius,
		Right:  right,
		Up:     up,
	}
}

// HitDistance intersects the disc's plane and checks the distance from the center
func (d *Disc) HitDistance(ray core.Ray, interval core.Interval) (float64, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return 0, false // Ray is parallel to disc
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if !interval.Surrounds(t) {
		return 0, false
	}

	if ray.At(t).Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return 0, false
	}
	return t, true
}

// NormalAt returns the disc normal
func (d *Disc) NormalAt(point core.Vec3) core.Vec3 {
	return d.Normal
}

// UVAt maps the disc onto the unit square along Right and Up
func (d *Disc) UVAt(point core.Vec3) core.Vec2 {
	p := point.Subtract(d.Center)
	return core.NewVec2(
		0.5+0.5*p.Dot(d.Right)/d.Radius,
		0.5+0.5*p.Dot(d.Up)/d.Radius,
	)
}

// Bounds encloses the square spanned by Right and Up around the center
func (d *Disc) Bounds() core.Bound {
	rightExtent := d.Right.Multiply(d.Radius)
	upExtent := d.Up.Multiply(d.Radius)

	b := core.NewBoundFromPoints(
		d.Center.Add(rightExtent).Add(upExtent),
		d.Center.Subtract(rightExtent).Subtract(upExtent),
	)
	b = b.Union(core.NewBoundFromPoints(
		d.Center.Add(rightExtent).Subtract(upExtent),
		d.Center.Subtract(rightExtent).Add(upExtent),
	))
	return b.Pad()
}
