// Package export writes rendered images to disk
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output extensions no encoder handles
var ErrUnsupportedFormat = errors.New("export: unsupported image format")

// Format is an output image encoding
type Format string

// Supported formats
const (
	FormatPNG  Format = "png"
	FormatPPM  Format = "ppm"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".ppm":
		return FormatPPM, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WritePPM writes img as a plain-text P3 pixmap, gamma corrected
func WritePPM(w io.Writer, img renderer.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := renderer.Quantize(img.At(x, y))
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}
	return bw.Flush()
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img renderer.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return png.Encode(w, renderer.ToRGBA(img))
	case FormatBMP:
		return bmp.Encode(w, renderer.ToRGBA(img))
	case FormatTIFF:
		return tiff.Encode(w, renderer.ToRGBA(img), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save encodes img into the file at path, creating parent directories.
// A leading ~ expands to the home directory. It returns the expanded path.
func Save(path string, img renderer.Image) (string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand output path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Encode(file, img, format); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}

	core.Logger().Debug("image saved", "path", expanded, "format", format)
	return expanded, nil
}
