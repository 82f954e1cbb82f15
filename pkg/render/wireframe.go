package render

import (
	"math"

	"github.com/alexgoldie09/stardrift/pkg/math3d"
)

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3D draws a line in 3D space, clipped to the viewport.
// Lines crossing the near plane are dropped rather than clipped.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	x1, y1, ok1 := w.camera.Project(p1, w.fb.Width, w.fb.Height)
	x2, y2, ok2 := w.camera.Project(p2, w.fb.Width, w.fb.Height)
	if !ok1 || !ok2 {
		return
	}

	cx1, cy1, cx2, cy2, ok := clipToViewport(x1, y1, x2, y2, w.fb.Width, w.fb.Height)
	if !ok {
		return
	}
	w.fb.DrawLine(cx1, cy1, cx2, cy2, color)
}

// clipToViewport clips the segment (x1,y1)-(x2,y2) to [0,w-1]x[0,h-1]
// using the Liang-Barsky algorithm. Returns the clipped endpoints, and
// false when the segment lies fully outside.
func clipToViewport(x1, y1, x2, y2 float64, w, h int) (float64, float64, float64, float64, bool) {
	dx := x2 - x1
	dy := y2 - y1

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1},               // left
		{dx, float64(w-1) - x1}, // right
		{-dy, y1},               // top
		{dy, float64(h-1) - y1}, // bottom
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// boxEdges pairs up the corner indices produced by boxCorners.
var boxEdges = [12][2]int{
	// Back face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// Front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// Connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func boxCorners(min, max math3d.Vec3) [8]math3d.Vec3 {
	return [8]math3d.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
}

// DrawBox draws the 12 edges of an axis-aligned box.
func (w *Wireframe) DrawBox(min, max math3d.Vec3, color Color) {
	corners := boxCorners(min, max)
	for _, e := range boxEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], color)
	}
}

// DrawSphere draws a sphere as three orthogonal rings, one per
// principal plane, each approximated by the given number of segments.
func (w *Wireframe) DrawSphere(center math3d.Vec3, radius float64, segments int, color Color) {
	if segments < 3 {
		segments = 3
	}
	step := 2 * math.Pi / float64(segments)

	for i := 0; i < segments; i++ {
		a0 := float64(i) * step
		a1 := a0 + step
		c0, s0 := math.Cos(a0), math.Sin(a0)
		c1, s1 := math.Cos(a1), math.Sin(a1)

		w.DrawLine3D(
			center.Add(math3d.V3(c0, s0, 0).Scale(radius)),
			center.Add(math3d.V3(c1, s1, 0).Scale(radius)),
			color,
		)
		w.DrawLine3D(
			center.Add(math3d.V3(c0, 0, s0).Scale(radius)),
			center.Add(math3d.V3(c1, 0, s1).Scale(radius)),
			color,
		)
		w.DrawLine3D(
			center.Add(math3d.V3(0, c0, s0).Scale(radius)),
			center.Add(math3d.V3(0, c1, s1).Scale(radius)),
			color,
		)
	}
}

// DrawEdges draws a mesh edge list after transforming its vertices.
// Edges referencing out-of-range vertices are skipped.
func (w *Wireframe) DrawEdges(vertices []math3d.Vec3, edges [][2]int, transform math3d.Mat4, color Color) {
	world := make([]math3d.Vec3, len(vertices))
	for i, v := range vertices {
		world[i] = transform.MulVec3(v)
	}

	for _, e := range edges {
		if e[0] < 0 || e[0] >= len(world) || e[1] < 0 || e[1] >= len(world) {
			continue
		}
		w.DrawLine3D(world[e[0]], world[e[1]], color)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float64, color Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), color)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), color)
	}
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float64, color Color) {
	halfSize := size / 2
	w.DrawLine3D(
		math3d.V3(pos.X-halfSize, pos.Y, pos.Z),
		math3d.V3(pos.X+halfSize, pos.Y, pos.Z),
		color,
	)
	w.DrawLine3D(
		math3d.V3(pos.X, pos.Y-halfSize, pos.Z),
		math3d.V3(pos.X, pos.Y+halfSize, pos.Z),
		color,
	)
	w.DrawLine3D(
		math3d.V3(pos.X, pos.Y, pos.Z-halfSize),
		math3d.V3(pos.X, pos.Y, pos.Z+halfSize),
		color,
	)
}
