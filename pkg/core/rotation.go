package core

import "math"

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RotateVector rotates v by angle radians about the unit axis using Rodrigues' formula
func RotateVector(v, axis Vec3, angle float64) Vec3 {
	return rotate(v, axis, math.Sin(angle), math.Cos(angle))
}

func rotate(v, axis Vec3, sin, cos float64) Vec3 {
	return v.Multiply(cos).
		Add(axis.Cross(v).Multiply(sin)).
		Add(axis.Multiply(axis.Dot(v) * (1 - cos)))
}

// Rotation is a rotation by a fixed angle about an axis line in space.
// The line passes through Axis.Origin along the unit Axis.Direction.
type Rotation struct {
	Axis  Ray
	Angle float64
	sin   float64
	cos   float64
}

// NewRotation creates a rotation of angle radians about axis
func NewRotation(axis Ray, angle float64) Rotation {
	return Rotation{
		Axis:  NewRay(axis.Origin, axis.Direction),
		Angle: angle,
		sin:   math.Sin(angle),
		cos:   math.Cos(angle),
	}
}

// Inverse returns the rotation by the negated angle about the same axis
func (r Rotation) Inverse() Rotation {
	return Rotation{Axis: r.Axis, Angle: -r.Angle, sin: -r.sin, cos: r.cos}
}

// Vector rotates a direction; the axis position does not affect directions
func (r Rotation) Vector(v Vec3) Vec3 {
	return rotate(v, r.Axis.Direction, r.sin, r.cos)
}

// Point rotates a point about the axis line
func (r Rotation) Point(p Vec3) Vec3 {
	return r.Axis.Origin.Add(r.Vector(p.Subtract(r.Axis.Origin)))
}

// Ray rotates a ray's origin as a point and its direction as a vector
func (r Rotation) Ray(ray Ray) Ray {
	return NewRayUnit(r.Point(ray.Origin), r.Vector(ray.Direction))
}
