package geometry

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Hook observes every intersection query made against a DebugObject.
// Hooks are called from render workers concurrently.
type Hook interface {
	OnHit(ray core.Ray, hit HitContext, ok bool)
}

// HookFunc adapts a function to the Hook interface
type HookFunc func(ray core.Ray, hit HitContext, ok bool)

// OnHit calls f
func (f HookFunc) OnHit(ray core.Ray, hit HitContext, ok bool) { f(ray, hit, ok) }

// NoopHook ignores every query
type NoopHook struct{}

// OnHit does nothing
func (NoopHook) OnHit(core.Ray, HitContext, bool) {}

// CountingHook counts queries and hits
type CountingHook struct {
	queries atomic.Int64
	hits    atomic.Int64
}

// OnHit records the query
func (c *CountingHook) OnHit(ray core.Ray, hit HitContext, ok bool) {
	c.queries.Add(1)
	if ok {
		c.hits.Add(1)
	}
}

// Queries returns the number of intersection queries seen
func (c *CountingHook) Queries() int64 { return c.queries.Load() }

// Hits returns the number of queries that hit
func (c *CountingHook) Hits() int64 { return c.hits.Load() }

// LogHook writes each hit to the package logger under a tag
type LogHook struct {
	Tag   string
	Level slog.Level
}

// OnHit logs hits; misses are skipped
func (h LogHook) OnHit(ray core.Ray, hit HitContext, ok bool) {
	if !ok {
		return
	}
	logger := core.Logger()
	if !logger.Enabled(context.Background(), h.Level) {
		return
	}
	logger.Log(context.Background(), h.Level, "hit",
		"tag", h.Tag,
		"origin", ray.Origin,
		"direction", ray.Direction,
		"t", hit.T,
		"point", hit.Point,
		"normal", hit.Normal,
		"scattered", hit.Scattered,
		"emits", hit.Emits,
	)
}

// DebugObject forwards to a child object and reports every query to a hook
type DebugObject struct {
	Object SceneObject
	Hook   Hook
}

// NewDebugObject wraps object with hook; a nil hook means NoopHook
func NewDebugObject(object SceneObject, hook Hook) *DebugObject {
	if hook == nil {
		hook = NoopHook{}
	}
	return &DebugObject{Object: object, Hook: hook}
}

// Hit forwards to the child and reports the result
func (d *DebugObject) Hit(ray core.Ray, interval core.Interval, random *rand.Rand) (HitContext, bool) {
	hit, ok := d.Object.Hit(ray, interval, random)
	d.Hook.OnHit(ray, hit, ok)
	return hit, ok
}

// Bounds returns the child's bound
func (d *DebugObject) Bounds() core.Bound {
	return d.Object.Bounds()
}
