package geometry

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// ObjectList is a flat collection of objects tested one by one
type ObjectList struct {
	objects []AnyObject
	bound   core.Bound
}

// NewObjectList creates a list holding objects
func NewObjectList(objects ...SceneObject) *ObjectList {
	l := &ObjectList{bound: core.EmptyBound}
	l.Add(objects...)
	return l
}

// Add appends objects to the list
func (l *ObjectList) Add(objects ...SceneObject) {
	for _, o := range objects {
		h := NewAnyObject(o)
		l.objects = append(l.objects, h)
		l.bound = l.bound.Union(h.Bounds())
	}
}

// Objects returns the handles in insertion order. Callers must not modify the slice.
func (l *ObjectList) Objects() []AnyObject {
	return l.objects
}

// SceneObjects returns a fresh slice of the handles as SceneObjects
func (l *ObjectList) SceneObjects() []SceneObject {
	out := make([]SceneObject, len(l.objects))
	for i, o := range l.objects {
		out[i] = o
	}
	return out
}

// Len returns the number of objects in the list
func (l *ObjectList) Len() int {
	return len(l.objects)
}

// Hit tests every object and keeps the closest hit. On equal distance the earlier object wins.
func (l *ObjectList) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	var closest HitContext
	found := false
	search := interval

	for _, o := range l.objects {
		hit, ok := o.Hit(ray, search, random)
		if !ok || (found && hit.T >= closest.T) {
			continue
		}
		closest = hit
		found = true
		search.Max = hit.T
	}
	return closest, found
}

// Bounds returns the union of every object's bound
func (l *ObjectList) Bounds() core.Bound {
	return l.bound
}
