package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// Image is a random-access grid of linear colors. Row 0 is the top.
type Image interface {
	Width() int
	Height() int
	At(x, y int) core.Vec3
	Set(x, y int, c core.Vec3)
}

// MemoryImage stores pixels row-major in one slice.
// Concurrent Set calls are safe as long as they touch different pixels.
type MemoryImage struct {
	width, height int
	pixels        []core.Vec3
}

// NewMemoryImage creates a black image
func NewMemoryImage(width, height int) *MemoryImage {
	return &MemoryImage{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (m *MemoryImage) Width() int { return m.width }

// Height returns the image height in pixels
func (m *MemoryImage) Height() int { return m.height }

// At returns the color of pixel (x, y)
func (m *MemoryImage) At(x, y int) core.Vec3 {
	return m.pixels[y*m.width+x]
}

// Set stores the color of pixel (x, y)
func (m *MemoryImage) Set(x, y int, c core.Vec3) {
	m.pixels[y*m.width+x] = c
}

// Quantize converts a linear color to 8-bit sRGB-ish channels using gamma 2
func Quantize(c core.Vec3) (r, g, b uint8) {
	c = c.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return uint8(255.999 * c.X), uint8(255.999 * c.Y), uint8(255.999 * c.Z)
}

// ToRGBA converts an image to gamma-corrected 8-bit RGBA
func ToRGBA(img Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := Quantize(img.At(x, y))
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}
