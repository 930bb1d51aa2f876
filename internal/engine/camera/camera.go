// Package camera provides the orbit camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/buildsight/bimview/internal/engine/picking"
	"github.com/buildsight/bimview/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Projection
	FovY   float32
	Near   float32
	Far    float32
	aspect float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        20.0,
		RotationX:       0.5,
		RotationY:       0.0,
		MinDistance:     0.5,
		MaxDistance:     5000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            0.785398, // 45 degrees
		Near:            0.1,
		Far:             10000.0,
		aspect:          16.0 / 9.0,
	}
}

// SetViewport updates the aspect ratio from the viewport size.
func (c *OrbitCamera) SetViewport(width, height int) {
	if height > 0 {
		c.aspect = float32(width) / float32(height)
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewDirection returns the normalized direction the camera looks along.
func (c *OrbitCamera) ViewDirection() math.Vec3 {
	return c.Center.Sub(c.Position()).Normalize()
}

// ViewMatrix returns the view matrix.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{X: 0, Y: 1, Z: 0})
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	proj := math.Perspective(c.FovY, c.aspect, c.Near, c.Far)
	return proj.Mul(c.ViewMatrix())
}

// Ray returns the world-space ray through the given normalized device
// coordinates, by unprojecting the near and far points with the inverse
// view-projection matrix.
func (c *OrbitCamera) Ray(ndc math.Vec2) picking.Ray {
	inv := c.ViewProjection().Inverse()

	nearWorld := inv.MulVec4(math.Vec4{ndc.X, ndc.Y, -1.0, 1.0})
	farWorld := inv.MulVec4(math.Vec4{ndc.X, ndc.Y, 1.0, 1.0})

	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return picking.Ray{Origin: origin, Direction: dir}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitToBounds adjusts center and distance to view the given bounding box.
func (c *OrbitCamera) FitToBounds(box picking.AABB) {
	if box.IsEmpty() {
		return
	}
	c.Center = box.Center()

	size := box.Size()
	maxSize := size.X
	if size.Y > maxSize {
		maxSize = size.Y
	}
	if size.Z > maxSize {
		maxSize = size.Z
	}

	// Distance so the box fits the vertical field of view with some slack.
	c.Distance = maxSize / (2 * float32(gomath.Tan(float64(c.FovY)/2))) * 1.5
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
}
