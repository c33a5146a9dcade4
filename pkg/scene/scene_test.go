package scene

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/integrator"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
	"github.com/df07/go-parallel-pathtracer/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// texturedScenes need a texture file and are covered separately
var texturedScenes = []string{"earth"}

func writeTexture(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := range 4 {
		for x := range 8 {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "earthmap.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestNames(t *testing.T) {
	names := Names()
	assert.True(t, slices.IsSorted(names))
	for _, want := range []string{"default", "cornell", "random-spheres", "checker", "perlin", "simple-light", "earth"} {
		assert.Contains(t, names, want)
	}
}

func TestCreate_AllScenes(t *testing.T) {
	for _, name := range Names() {
		if slices.Contains(texturedScenes, name) {
			continue
		}
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, Options{Seed: 1})
			require.NoError(t, err)

			assert.Equal(t, name, s.Name)
			require.NotNil(t, s.World)
			assert.Positive(t, s.Objects.Len())
			assert.False(t, s.World.Bounds().IsEmpty())
			assert.NotNil(t, s.Background)
			assert.Positive(t, s.Sampling.AspectRatio)

			_, err = renderer.NewCamera(s.Camera, 16, 9)
			assert.NoError(t, err)
		})
	}
}

// Every scene renders a tiny, finite image through the whole pipeline
func TestCreate_Renders(t *testing.T) {
	sched, err := scheduler.New(scheduler.Config{Kind: scheduler.KindInline, Seed: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sched.Close() })

	for _, name := range Names() {
		if slices.Contains(texturedScenes, name) {
			continue
		}
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, Options{Seed: 1})
			require.NoError(t, err)

			camera, err := renderer.NewCamera(s.Camera, 6, 4)
			require.NoError(t, err)
			r := renderer.NewRenderer(camera, integrator.NewPathTracingIntegrator(s.Background),
				renderer.Config{SamplesPerPixel: 1, MaxDepth: 4})
			img := renderer.NewMemoryImage(6, 4)

			_, err = r.Render(t.Context(), sched, s.World, img)
			require.NoError(t, err)
			for y := range 4 {
				for x := range 6 {
					assert.True(t, img.At(x, y).IsFinite(), "pixel (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	_, err := Create("cornel", Options{})
	require.ErrorIs(t, err, ErrUnknownScene)
	assert.Contains(t, err.Error(), `did you mean "cornell"`)

	_, err = Create("zzzzzzzzzz", Options{})
	require.ErrorIs(t, err, ErrUnknownScene)
	assert.NotContains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "available")
}

func TestCreate_NameIsNormalized(t *testing.T) {
	s, err := Create("  Cornell ", Options{})
	require.NoError(t, err)
	assert.Equal(t, "cornell", s.Name)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"defualt", "default"},
		{"PERLIN", "perlin"},
		{"random-sphere", "random-spheres"},
		{"simple_light", "simple-light"},
		{"qqqqqqqqqqqq", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Suggest(tt.input), tt.input)
	}
}

func TestEarth(t *testing.T) {
	_, err := Create("earth", Options{})
	assert.ErrorIs(t, err, ErrMissingTexture)

	_, err = Create("earth", Options{Texture: filepath.Join(t.TempDir(), "missing.png")})
	assert.Error(t, err)

	s, err := Create("earth", Options{Texture: writeTexture(t)})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Objects.Len())

	// The camera looks straight at the textured globe
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(s.Camera.LookFrom, s.Camera.LookAt.Subtract(s.Camera.LookFrom))
	hit, ok := s.World.Hit(ray, core.Interval{Min: 0.001, Max: 100}, random)
	require.True(t, ok)
	assert.InDelta(t, 10.0, hit.T, 1e-9)
}

func TestRandomSpheres_Deterministic(t *testing.T) {
	a, err := Create("random-spheres", Options{Seed: 9})
	require.NoError(t, err)
	b, err := Create("random-spheres", Options{Seed: 9})
	require.NoError(t, err)
	c, err := Create("random-spheres", Options{Seed: 10})
	require.NoError(t, err)

	assert.Equal(t, a.Objects.Len(), b.Objects.Len())
	for i, obj := range a.Objects.Objects() {
		assert.Equal(t, obj.Bounds(), b.Objects.Objects()[i].Bounds())
	}
	assert.NotEqual(t, a.Objects.Objects()[5].Bounds(), c.Objects.Objects()[5].Bounds())
}

// The rotated and translated boxes stay inside the room
func TestCornell_BoxesInsideRoom(t *testing.T) {
	s, err := Create("cornell", Options{})
	require.NoError(t, err)

	objects := s.Objects.Objects()
	room := core.NewBoundFromPoints(core.NewVec3(0, 0, 0), core.NewVec3(cornellSize, cornellSize, cornellSize))
	for _, box := range objects[len(objects)-2:] {
		b := box.Bounds()
		for axis := range 3 {
			assert.GreaterOrEqual(t, b.Axis(axis).Min, room.Axis(axis).Min-1e-3)
			assert.LessOrEqual(t, b.Axis(axis).Max, room.Axis(axis).Max+1e-3)
		}
	}
	assert.Equal(t, integrator.SolidBackground{}, s.Background)
}

func TestNewGroundQuad_FacesUp(t *testing.T) {
	ground := NewGroundQuad(core.NewVec3(0, 0, 0), 10, nil)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(1, 5, 1), core.NewVec3(0, -1, 0))
	hit, ok := ground.Hit(ray, core.Interval{Min: 0.001, Max: 100}, random)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
	assert.InDelta(t, 1.0, hit.Normal.Y, 1e-9)
}

func TestOKLCHToRGB(t *testing.T) {
	// Zero chroma is a neutral gray
	gray := oklchToRGB(0.6, 0, 123)
	assert.InDelta(t, gray.X, gray.Y, 1e-6)
	assert.InDelta(t, gray.Y, gray.Z, 1e-6)

	for h := 0.0; h < 360; h += 30 {
		c := oklchToRGB(0.65, 0.25, h)
		for axis := range 3 {
			assert.GreaterOrEqual(t, c.Index(axis), 0.0)
			assert.LessOrEqual(t, c.Index(axis), 1.0)
		}
	}
}
