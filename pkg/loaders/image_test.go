package loaders

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// testPattern is a 2x2 image: white, red on top; green, blue below
func testPattern() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func writeImage(t *testing.T, name string, img image.Image, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f, img))
	return path
}

func assertColor(t *testing.T, want, got core.Vec3, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 0.01, msg)
	assert.InDelta(t, want.Y, got.Y, 0.01, msg)
	assert.InDelta(t, want.Z, got.Z, 0.01, msg)
}

func TestLoadImage_Formats(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		encode func(io.Writer, image.Image) error
	}{
		{"png", "pattern.png", png.Encode},
		{"bmp", "pattern.bmp", bmp.Encode},
		{"tiff", "pattern.tiff", func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := LoadImage(writeImage(t, tt.file, testPattern(), tt.encode))
			require.NoError(t, err)

			assert.Equal(t, 2, data.Width)
			assert.Equal(t, 2, data.Height)
			require.Len(t, data.Pixels, 4)

			// Row-major, top row first
			assertColor(t, core.NewVec3(1, 1, 1), data.Pixels[0], "top-left white")
			assertColor(t, core.NewVec3(1, 0, 0), data.Pixels[1], "top-right red")
			assertColor(t, core.NewVec3(0, 1, 0), data.Pixels[2], "bottom-left green")
			assertColor(t, core.NewVec3(0, 0, 1), data.Pixels[3], "bottom-right blue")
		})
	}
}

// A file whose header is not an image is rejected before decoding, whatever its name
func TestLoadImage_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("just some text, not pixels"), 0o644))

	_, err := LoadImage(path)
	assert.ErrorIs(t, err, ErrNotImage)

	empty := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadImage(empty)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLoadImage_NotFound(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nonexistent.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadImageScaled(t *testing.T) {
	gray := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := range 4 {
		for x := range 8 {
			gray.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	path := writeImage(t, "wide.png", gray, png.Encode)

	shrunk, err := LoadImageScaled(path, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, shrunk.Width)
	assert.Equal(t, 2, shrunk.Height)
	assert.InDelta(t, 128.0/255.0, shrunk.Pixels[0].X, 0.02)

	// Images already within the limit are untouched
	same, err := LoadImageScaled(path, 100)
	require.NoError(t, err)
	assert.Equal(t, 8, same.Width)
	assert.Equal(t, 4, same.Height)
}
