package renderer

import (
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// PixelArea describes one pixel on the focus plane
type PixelArea struct {
	Center core.Vec3
	DeltaU core.Vec3
	DeltaV core.Vec3
}

// PixelSampler chooses the points inside a pixel that rays are traced through
type PixelSampler interface {
	// Sample returns at least one point in the pixel's area
	Sample(area PixelArea, random *rand.Rand) []core.Vec3
}

// DeltaSampler jitters N points uniformly within the pixel
type DeltaSampler struct {
	N int
}

// Sample returns N points offset from the center by up to half a pixel on each axis
func (s DeltaSampler) Sample(area PixelArea, random *rand.Rand) []core.Vec3 {
	n := max(s.N, 1)
	points := make([]core.Vec3, n)
	for i := range points {
		du := random.Float64() - 0.5
		dv := random.Float64() - 0.5
		points[i] = area.Center.Add(area.DeltaU.Multiply(du)).Add(area.DeltaV.Multiply(dv))
	}
	return points
}

// IdentitySampler always samples the pixel center
type IdentitySampler struct{}

// Sample returns the center only
func (IdentitySampler) Sample(area PixelArea, random *rand.Rand) []core.Vec3 {
	return []core.Vec3{area.Center}
}
