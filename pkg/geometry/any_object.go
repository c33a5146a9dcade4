package geometry

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// AnyObject is a type-erased handle to a SceneObject. Copies of a handle share
// the same underlying object, which lives as long as any handle refers to it.
// The zero AnyObject hits nothing and has an empty bound.
type AnyObject struct {
	object SceneObject
}

// NewAnyObject wraps object. Wrapping a handle returns that handle rather than nesting.
func NewAnyObject(object SceneObject) AnyObject {
	switch o := object.(type) {
	case AnyObject:
		return o
	case *AnyObject:
		if o == nil {
			return AnyObject{}
		}
		return *o
	}
	return AnyObject{object: object}
}

// Object returns the wrapped object, or nil for the zero handle
func (a AnyObject) Object() SceneObject {
	return a.object
}

// IsZero reports whether the handle wraps nothing
func (a AnyObject) IsZero() bool {
	return a.object == nil
}

// Hit forwards to the wrapped object
func (a AnyObject) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	if a.object == nil {
		return HitContext{}, false
	}
	return a.object.Hit(ray, interval, random)
}

// Bounds forwards to the wrapped object
func (a AnyObject) Bounds() core.Bound {
	if a.object == nil {
		return core.EmptyBound
	}
	return a.object.Bounds()
}
