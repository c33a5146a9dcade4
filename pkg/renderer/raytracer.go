package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/integrator"
	"github.com/df07/go-parallel-pathtracer/pkg/scheduler"
)

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
	BatchSize       int // Pixels per scheduled unit; 0 means one image row
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Renderer traces a camera's view of a world into an image
type Renderer struct {
	camera     *Camera
	integrator integrator.Integrator
	sampler    PixelSampler
	config     Config
}

// NewRenderer creates a renderer. Pixels are sampled with a DeltaSampler of
// config.SamplesPerPixel points unless SetSampler replaces it.
func NewRenderer(camera *Camera, integ integrator.Integrator, config Config) *Renderer {
	return &Renderer{
		camera:     camera,
		integrator: integ,
		sampler:    DeltaSampler{N: config.SamplesPerPixel},
		config:     config,
	}
}

// SetSampler replaces the pixel sampler
func (r *Renderer) SetSampler(sampler PixelSampler) {
	r.sampler = sampler
}

// Render fills img with one bulk submission on sched and waits for it.
// Each unit writes a disjoint run of pixels in row-major order.
func (r *Renderer) Render(ctx context.Context, sched scheduler.Scheduler, world geometry.SceneObject, img Image) (RenderStats, error) {
	width, height := img.Width(), img.Height()
	if cw, ch := r.camera.Size(); cw != width || ch != height {
		return RenderStats{}, fmt.Errorf("%w: camera is %dx%d but image is %dx%d", ErrInvalidCamera, cw, ch, width, height)
	}

	batch := r.config.BatchSize
	if batch <= 0 {
		batch = width
	}
	pixels := width * height
	units := (pixels + batch - 1) / batch

	stats := RenderStats{Pixels: pixels, Units: units, Workers: sched.Workers()}
	logger := core.Logger()
	logger.Info("render started",
		"width", width,
		"height", height,
		"samples", r.config.SamplesPerPixel,
		"depth", r.config.MaxDepth,
		"units", units,
		"workers", stats.Workers,
	)

	var samples atomic.Int64
	start := time.Now()
	task := sched.Bulk(ctx, units, func(unit int, random *rand.Rand) error {
		first := unit * batch
		last := min(first+batch, pixels)
		var traced int64
		for p := first; p < last; p++ {
			x, y := p%width, p/width
			color, n := r.renderPixel(x, y, world, random)
			img.Set(x, y, color)
			traced += int64(n)
		}
		samples.Add(traced)
		return nil
	})

	err := task.Wait()
	stats.Samples = samples.Load()
	stats.Duration = time.Since(start)
	if err != nil {
		logger.Warn("render failed", "error", err, "elapsed", stats.Duration)
		return stats, fmt.Errorf("render: %w", err)
	}

	logger.Info("render finished", "samples", stats.Samples, "elapsed", stats.Duration)
	return stats, nil
}

// renderPixel averages the samples of one pixel. All of a pixel's rays start
// from the same point on the defocus disk.
func (r *Renderer) renderPixel(x, y int, world geometry.SceneObject, random *rand.Rand) (core.Vec3, int) {
	deltaU, deltaV := r.camera.PixelDeltas()
	area := PixelArea{Center: r.camera.PixelCenter(x, y), DeltaU: deltaU, DeltaV: deltaV}

	origin := r.camera.SampleOrigin(random)
	points := r.sampler.Sample(area, random)

	colorAccum := core.Vec3{}
	for _, p := range points {
		ray := core.NewRay(origin, p.Subtract(origin))
		colorAccum = colorAccum.Add(r.integrator.RayColor(ray, world, r.config.MaxDepth, random))
	}
	return colorAccum.Multiply(1.0 / float64(len(points))), len(points)
}
