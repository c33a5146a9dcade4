package scene

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrUnknownScene is returned by Create for names with no registered scene
var ErrUnknownScene = errors.New("scene: unknown scene")

// suggestThreshold is the minimum similarity for a "did you mean" hint
const suggestThreshold = 0.5

// Factory builds a scene. The returned scene has not been preprocessed.
type Factory func(opts Options) (*Scene, error)

var registry = map[string]Factory{
	"default":        NewDefaultScene,
	"cornell":        NewCornellScene,
	"random-spheres": NewRandomSpheresScene,
	"sphere-grid":    NewSphereGridScene,
	"checker":        NewCheckerScene,
	"perlin":         NewPerlinScene,
	"simple-light":   NewSimpleLightScene,
	"earth":          NewEarthScene,
	"shapes":         NewShapesScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Create builds the named scene and its BVH
func Create(name string, opts Options) (*Scene, error) {
	factory, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		if guess := Suggest(name); guess != "" {
			return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownScene, name, guess)
		}
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}

	s, err := factory(opts)
	if err != nil {
		return nil, err
	}
	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

// Suggest returns the registered name closest to name by Levenshtein similarity,
// or "" when nothing is close enough
func Suggest(name string) string {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false

	best, bestScore := "", 0.0
	for _, candidate := range Names() {
		score := strutil.Similarity(name, candidate, metric)
		if score >= suggestThreshold && score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best
}
