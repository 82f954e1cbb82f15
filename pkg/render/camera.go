package render

import (
	"math"

	"github.com/alexgoldie09/stardrift/pkg/math3d"
)

// Camera projects world-space points onto the screen. It is positioned
// with LookAt or Orbit rather than by mutating fields, so the cached
// view matrix always matches the orientation.
type Camera struct {
	position math3d.Vec3
	pitch    float64 // rotation around X in radians, positive looks up
	yaw      float64 // rotation around Y in radians

	fov    float64 // vertical field of view in radians
	aspect float64 // width / height
	near   float64
	far    float64

	view      math3d.Mat4
	proj      math3d.Mat4
	viewProj  math3d.Mat4
	viewDirty bool
	projDirty bool
	vpDirty   bool
}

// NewCamera creates a camera at (0, 0, 10) looking down -Z, with a 60
// degree vertical field of view.
func NewCamera() *Camera {
	return &Camera{
		position:  math3d.V3(0, 0, 10),
		fov:       math.Pi / 3,
		aspect:    16.0 / 9.0,
		near:      0.1,
		far:       1000,
		viewDirty: true,
		projDirty: true,
		vpDirty:   true,
	}
}

// Position returns the camera's world-space position.
func (c *Camera) Position() math3d.Vec3 {
	return c.position
}

// Forward returns the direction the camera is facing.
func (c *Camera) Forward() math3d.Vec3 {
	return math3d.V3(
		-math.Sin(c.yaw)*math.Cos(c.pitch),
		math.Sin(c.pitch),
		-math.Cos(c.yaw)*math.Cos(c.pitch),
	)
}

// SetFOV sets the vertical field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.fov = fov
	c.projDirty = true
}

// SetAspectRatio sets the width / height ratio of the viewport.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.aspect = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.near = near
	c.far = far
	c.projDirty = true
}

// LookAt places the camera at eye pointing toward target, with no roll.
// Looking at the camera's own position leaves the orientation level.
func (c *Camera) LookAt(eye, target math3d.Vec3) {
	dir := target.Sub(eye).Normalize()

	c.position = eye
	c.pitch = math.Asin(math3d.Clamp(dir.Y, -1, 1))
	c.yaw = math.Atan2(-dir.X, -dir.Z)
	c.viewDirty = true
}

// Orbit places the camera on a sphere around target: distance away,
// rotated by yaw around the Y axis and raised by pitch (radians), and
// pointed back at the target.
func (c *Camera) Orbit(target math3d.Vec3, distance, yaw, pitch float64) {
	offset := math3d.V3(
		distance*math.Cos(pitch)*math.Sin(yaw),
		distance*math.Sin(pitch),
		distance*math.Cos(pitch)*math.Cos(yaw),
	)
	c.LookAt(target.Add(offset), target)
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		rot := math3d.RotateX(-c.pitch).Mul(math3d.RotateY(-c.yaw))
		c.view = rot.Mul(math3d.Translate(c.position.Negate()))
		c.viewDirty = false
		c.vpDirty = true
	}
	return c.view
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.proj = math3d.Perspective(c.fov, c.aspect, c.near, c.far)
		c.projDirty = false
		c.vpDirty = true
	}
	return c.proj
}

// ViewProjectionMatrix returns the combined world-to-clip transform.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	view, proj := c.ViewMatrix(), c.ProjectionMatrix()
	if c.vpDirty {
		c.viewProj = proj.Mul(view)
		c.vpDirty = false
	}
	return c.viewProj
}

// Project transforms a world point to screen coordinates. Points
// outside the viewport keep their off-screen coordinates; ok is false
// only behind the camera.
func (c *Camera) Project(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y float64, ok bool) {
	clip := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(worldPos, 1))
	if clip.W <= 0 {
		return 0, 0, false
	}

	ndc := clip.PerspectiveDivide()
	x = (ndc.X + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float64(screenHeight) // screen y grows downward
	return x, y, true
}
