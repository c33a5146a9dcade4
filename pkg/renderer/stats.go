package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Pixels   int           // Total number of pixels rendered
	Samples  int64         // Total number of camera rays traced
	Units    int           // Number of scheduled work units
	Workers  int           // Units the scheduler can run at once
	Duration time.Duration // Wall time of the render
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Samples) / float64(s.Pixels)
}

// SamplesPerSecond returns the tracing throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Samples) / s.Duration.Seconds()
}
