package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Checker alternates between two color sources in a 3D checkerboard
type Checker struct {
	InvScale float64
	Even     ColorSource
	Odd      ColorSource
}

// NewChecker creates a checker pattern whose cells are scale units wide
func NewChecker(scale float64, even, odd ColorSource) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewSolidChecker creates a checker pattern of two solid colors
func NewSolidChecker(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate picks Even or Odd by the parity of the cell containing point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3, random *rand.Rand) core.Vec3 {
	x := int(math.Floor(c.InvScale * point.X))
	y := int(math.Floor(c.InvScale * point.Y))
	z := int(math.Floor(c.InvScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point, random)
	}
	return c.Odd.Evaluate(uv, point, random)
}

// Noise modulates a base color source with marbled Perlin turbulence
type Noise struct {
	Base  ColorSource
	Noise *Perlin
	Scale float64
}

// NewNoise creates a marble-like noise texture
func NewNoise(base ColorSource, noise *Perlin, scale float64) *Noise {
	return &Noise{Base: base, Noise: noise, Scale: scale}
}

// Evaluate returns base * 0.5 * (1 + sin(s.z + 10*turbulence(s))) with s = scale*point
func (n *Noise) Evaluate(uv core.Vec2, point core.Vec3, random *rand.Rand) core.Vec3 {
	s := point.Multiply(n.Scale)
	factor := 0.5 * (1 + math.Sin(s.Z+10*n.Noise.Turbulence(s, DefaultTurbulenceDepth)))
	return n.Base.Evaluate(uv, point, random).Multiply(factor)
}
