package geometry

import (
	"math"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius flips the normal
// inward, which models the inner wall of a hollow glass sphere.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// HitDistance solves the ray-sphere quadratic and returns the nearest root inside the interval
func (s *Sphere) HitDistance(ray core.Ray, interval core.Interval) (float64, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !interval.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !interval.Surrounds(root) {
			return 0, false
		}
	}
	return root, true
}

// NormalAt returns (point - center) / radius
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// UVAt maps the point to longitude u and latitude v, both in [0, 1]
func (s *Sphere) UVAt(point core.Vec3) core.Vec2 {
	p := point.Subtract(s.Center).Normalize()
	theta := math.Acos(max(-1, min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// Bounds returns center +/- |radius| on every axis, padded so a degenerate sphere still has volume
func (s *Sphere) Bounds() core.Bound {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewBoundFromPoints(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	).Pad()
}
