package geometry

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/material"
)

// Shape is pure geometry: it knows where a ray meets it but nothing about light
type Shape interface {
	// HitDistance returns the nearest ray parameter within interval where the ray meets the shape
	HitDistance(ray core.Ray, interval core.Interval) (float64, bool)
	// NormalAt returns the unit outward normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// UVAt returns the surface parameterization at a point on the surface
	UVAt(point core.Vec3) core.Vec2
	// Bounds returns a bound enclosing the shape
	Bounds() core.Bound
}

// SceneObject is anything a ray can hit: shapes paired with materials, transform
// wrappers, collections and acceleration structures.
type SceneObject interface {
	// Hit returns the nearest intersection within interval, or false.
	// random is exclusive to the calling goroutine.
	Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool)
	// Bounds returns a bound enclosing every point Hit can report
	Bounds() core.Bound
}

// HitInfo contains geometric information about a ray-object intersection
type HitInfo struct {
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit outward surface normal
	UV     core.Vec2 // Surface parameterization
}

// HitContext bundles a hit with the outcome of the material at that point
type HitContext struct {
	HitInfo
	Scatter   material.ScatterResult
	Scattered bool // Scatter is valid
	Emission  core.Vec3
	Emits     bool // Emission is valid
}

// Surface returns the view of the hit passed to materials
func (h HitInfo) Surface() material.SurfaceHit {
	return material.SurfaceHit{Point: h.Point, Normal: h.Normal, UV: h.UV}
}
