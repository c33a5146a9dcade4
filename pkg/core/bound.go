package core

import "math"

// BoundPadding is the minimum thickness of every axis of a padded Bound
const BoundPadding = 0.0001

// Bound represents an axis-aligned bounding box as one interval per axis
type Bound struct {
	X, Y, Z Interval
}

// EmptyBound contains no point and is the identity for Union
var EmptyBound = Bound{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewBound creates a bound from per-axis intervals
func NewBound(x, y, z Interval) Bound {
	return Bound{X: x, Y: y, Z: z}
}

// NewBoundFromPoints creates the bound spanned by two diagonal corners, given in any order
func NewBoundFromPoints(a, b Vec3) Bound {
	return Bound{
		X: Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Y: Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Z: Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	}
}

// Axis returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (b Bound) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// IsEmpty reports whether any axis is empty
func (b Bound) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty()
}

// Min returns the minimum corner
func (b Bound) Min() Vec3 {
	return Vec3{b.X.Min, b.Y.Min, b.Z.Min}
}

// Max returns the maximum corner
func (b Bound) Max() Vec3 {
	return Vec3{b.X.Max, b.Y.Max, b.Z.Max}
}

// Center returns the center point of the bound
func (b Bound) Center() Vec3 {
	return b.Min().Add(b.Max()).Multiply(0.5)
}

// Union returns the smallest bound enclosing both b and other
func (b Bound) Union(other Bound) Bound {
	return Bound{
		X: Union(b.X, other.X),
		Y: Union(b.Y, other.Y),
		Z: Union(b.Z, other.Z),
	}
}

// Pad expands every axis thinner than BoundPadding to that thickness
func (b Bound) Pad() Bound {
	pad := func(i Interval) Interval {
		if i.Size() < BoundPadding {
			return i.Expand(BoundPadding)
		}
		return i
	}
	return Bound{X: pad(b.X), Y: pad(b.Y), Z: pad(b.Z)}
}

// Shift translates the bound by offset
func (b Bound) Shift(offset Vec3) Bound {
	return Bound{
		X: b.X.Shift(offset.X),
		Y: b.Y.Shift(offset.Y),
		Z: b.Z.Shift(offset.Z),
	}
}

// Corners returns the eight corners of the bound
func (b Bound) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x, y, z := b.X.Min, b.Y.Min, b.Z.Min
		if i&1 != 0 {
			x = b.X.Max
		}
		if i&2 != 0 {
			y = b.Y.Max
		}
		if i&4 != 0 {
			z = b.Z.Max
		}
		corners[i] = Vec3{x, y, z}
	}
	return corners
}

// Rotate returns the axis-aligned bound enclosing b rotated by rot.
// The result may be looser than the rotated box but never excludes it.
func (b Bound) Rotate(rot Rotation) Bound {
	if b.IsEmpty() {
		return b
	}
	corners := b.Corners()
	lo := rot.Point(corners[0])
	hi := lo
	for _, c := range corners[1:] {
		p := rot.Point(c)
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return NewBoundFromPoints(lo, hi)
}

// Hit tests if a ray intersects the bound using the slab method.
// A ray parallel to a slab is tested for containment instead of divided.
func (b Bound) Hit(ray Ray) bool {
	if b.IsEmpty() {
		return false
	}
	t := UniverseInterval
	for axis := 0; axis < 3; axis++ {
		t = Intersect(t, slabRange(b.Axis(axis), ray.Origin.Index(axis), ray.Direction.Index(axis)))
		if t.IsEmpty() {
			return false
		}
	}
	return t.Max >= 0
}

// slabRange returns the ray parameters for which the ray lies inside one slab
func slabRange(slab Interval, origin, direction float64) Interval {
	if direction == 0 {
		if slab.Contains(origin) {
			return UniverseInterval
		}
		return EmptyInterval
	}
	invDirection := 1.0 / direction
	t0 := (slab.Min - origin) * invDirection
	t1 := (slab.Max - origin) * invDirection
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return Interval{Min: t0, Max: t1}
}
