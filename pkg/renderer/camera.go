package renderer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned for camera settings that cannot produce an image
var ErrInvalidCamera = errors.New("renderer: invalid camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction; zero means +Y
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Cone angle of rays through each pixel, in degrees; 0 is a pinhole
	FocusDistance float64   // Distance to the plane of perfect focus; 0 or less means |LookAt - LookFrom|
}

// Camera generates rays for rendering
type Camera struct {
	config   CameraConfig
	width    int
	height   int
	center   core.Vec3
	pixel00  core.Vec3 // Center of the top-left pixel
	deltaU   core.Vec3 // Offset to the pixel to the right
	deltaV   core.Vec3 // Offset to the pixel below
	defocusU core.Vec3 // Defocus disk horizontal radius
	defocusV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera for a width x height image
func NewCamera(config CameraConfig, width, height int) (*Camera, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidCamera, width, height)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("%w: vertical field of view %g", ErrInvalidCamera, config.VFov)
	}

	view := config.LookAt.Subtract(config.LookFrom)
	if view.NearZero() {
		return nil, fmt.Errorf("%w: look-from and look-at coincide", ErrInvalidCamera)
	}
	up := config.Up
	if up.NearZero() {
		up = core.NewVec3(0, 1, 0)
	}
	right := view.Cross(up)
	if right.NearZero() {
		return nil, fmt.Errorf("%w: up %v is parallel to the view direction", ErrInvalidCamera, up)
	}

	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = view.Length()
	}

	// Orthonormal basis: u right, vUp up, w forward
	w := view.Normalize()
	u := right.Normalize()
	vUp := u.Cross(w)

	h := math.Tan(core.DegreesToRadians(config.VFov) / 2)
	viewportHeight := 2 * h * focusDist
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Viewport edges run left to right and top to bottom
	viewportU := u.Multiply(viewportWidth)
	viewportV := vUp.Multiply(-viewportHeight)
	deltaU := viewportU.Divide(float64(width))
	deltaV := viewportV.Divide(float64(height))

	topLeft := config.LookFrom.
		Add(w.Multiply(focusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	defocusRadius := focusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle)/2)

	return &Camera{
		config:   config,
		width:    width,
		height:   height,
		center:   config.LookFrom,
		pixel00:  topLeft.Add(deltaU.Add(deltaV).Multiply(0.5)),
		deltaU:   deltaU,
		deltaV:   deltaV,
		defocusU: u.Multiply(defocusRadius),
		defocusV: vUp.Multiply(defocusRadius),
	}, nil
}

// Size returns the image size the camera was built for
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// PixelCenter returns the point on the focus plane at the center of pixel (i, j).
// Row j = 0 is the top of the image.
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00.
		Add(c.deltaU.Multiply(float64(i))).
		Add(c.deltaV.Multiply(float64(j)))
}

// PixelDeltas returns the offsets between horizontally and vertically adjacent pixels
func (c *Camera) PixelDeltas() (core.Vec3, core.Vec3) {
	return c.deltaU, c.deltaV
}

// SampleOrigin returns a ray origin on the defocus disk, or the camera center for a pinhole camera
func (c *Camera) SampleOrigin(random *rand.Rand) core.Vec3 {
	if c.config.DefocusAngle <= 0 {
		return c.center
	}
	p := core.RandomInUnitDisk(random)
	return c.center.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
}

// GetRay generates a ray through a random point of pixel (i, j)
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	origin := c.SampleOrigin(random)
	target := c.PixelCenter(i, j).
		Add(c.deltaU.Multiply(random.Float64() - 0.5)).
		Add(c.deltaV.Multiply(random.Float64() - 0.5))
	return core.NewRay(origin, target.Subtract(origin))
}
