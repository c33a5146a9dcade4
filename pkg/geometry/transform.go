package geometry

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Translate moves a child object by a fixed offset
type Translate struct {
	Object SceneObject
	Offset core.Vec3
	bound  core.Bound
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object SceneObject, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bound:  object.Bounds().Shift(offset),
	}
}

// Hit moves the ray into the child's frame, then moves the hit back out
func (t *Translate) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	local := core.NewRayUnit(ray.Origin.Subtract(t.Offset), ray.Direction)

	hit, ok := t.Object.Hit(local, interval, random)
	if !ok {
		return HitContext{}, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	if hit.Scattered {
		hit.Scatter.Scattered.Origin = hit.Scatter.Scattered.Origin.Add(t.Offset)
	}
	return hit, true
}

// Bounds returns the child's bound shifted by the offset
func (t *Translate) Bounds() core.Bound {
	return t.bound
}

// Rotate turns a child object about an axis line
type Rotate struct {
	Object   SceneObject
	Rotation core.Rotation
	inverse  core.Rotation
	bound    core.Bound
}

// NewRotate wraps object so it appears rotated by angle radians about axis
func NewRotate(object SceneObject, axis core.Ray, angle float64) *Rotate {
	rotation := core.NewRotation(axis, angle)
	return &Rotate{
		Object:   object,
		Rotation: rotation,
		inverse:  rotation.Inverse(),
		bound:    object.Bounds().Rotate(rotation),
	}
}

// NewRotateY rotates object by degrees about the vertical line through the origin
func NewRotateY(object SceneObject, degrees float64) *Rotate {
	axis := core.NewRayUnit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	return NewRotate(object, axis, core.DegreesToRadians(degrees))
}

// Hit rotates the ray by the inverse angle, then rotates the hit forward
func (r *Rotate) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	hit, ok := r.Object.Hit(r.inverse.Ray(ray), interval, random)
	if !ok {
		return HitContext{}, false
	}

	hit.Point = r.Rotation.Point(hit.Point)
	hit.Normal = r.Rotation.Vector(hit.Normal)
	if hit.Scattered {
		hit.Scatter.Scattered = r.Rotation.Ray(hit.Scatter.Scattered)
	}
	return hit, true
}

// Bounds returns the axis-aligned bound of the child's rotated corners
func (r *Rotate) Bounds() core.Bound {
	return r.bound
}
