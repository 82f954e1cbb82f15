// stardrift - Terminal broadphase playground
// Watch wireframe bodies drift, bounce and collide inside a box.
//
// Controls:
//
//	Mouse drag  - Orbit the camera (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch the orbit up/down
//	A/D         - Yaw the orbit left/right
//	Space       - Pause/resume the simulation
//	G           - Toggle the reference grid
//	B           - Toggle the world box
//	R           - Reset the camera orbit
//	?           - Toggle HUD overlay (FPS, scene name, contact count)
//	+/-         - Adjust zoom
//	Esc/Q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/alexgoldie09/stardrift/pkg/math3d"
	"github.com/alexgoldie09/stardrift/pkg/models"
	"github.com/alexgoldie09/stardrift/pkg/physics"
	"github.com/alexgoldie09/stardrift/pkg/render"
)

var (
	scenePath    = flag.String("scene", "", "Path to YAML scene file")
	modelPath    = flag.String("model", "", "Path to GLB model drawn for each body")
	targetFPS    = flag.Int("fps", 60, "Target FPS")
	bgColor      = flag.String("bg", "8,10,16", "Background color (R,G,B)")
	bodyCount    = flag.Int("n", 12, "Number of random bodies when the scene has none")
	randomSeed   = flag.Int64("seed", 0, "Random scene seed (0 = time-based)")
	snapshotPath = flag.String("snapshot", "", "Render one frame to a PNG file and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "stardrift - Terminal broadphase playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: stardrift [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit the camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Orbit pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Space       - Pause simulation\n")
		fmt.Fprintf(os.Stderr, "  G           - Toggle grid\n")
		fmt.Fprintf(os.Stderr, "  B           - Toggle world box\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset camera\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc/Q       - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Camera orbit limits.
const (
	minZoom       = 4.0
	maxZoom       = 120.0
	zoomStep      = 0.4
	maxOrbitPitch = 1.45 // radians, just short of the poles
)

// OrbitAxis tracks position and velocity for one orbit parameter with spring decay
type OrbitAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewOrbitAxis creates an axis with harmonica spring for smooth velocity decay
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0 using spring
func (a *OrbitAxis) Update() {
	a.Position += a.Velocity

	// Use spring to animate velocity toward 0 (smooth deceleration)
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// AddImpulse nudges the axis velocity.
func (a *OrbitAxis) AddImpulse(v float64) {
	a.Velocity += v
}

// OrbitState holds the camera orbit with harmonica spring physics
type OrbitState struct {
	Yaw, Pitch, Zoom OrbitAxis
	fps              int
}

func NewOrbitState(fps int, distance, pitch float64) *OrbitState {
	s := &OrbitState{
		Yaw:   NewOrbitAxis(fps),
		Pitch: NewOrbitAxis(fps),
		Zoom:  NewOrbitAxis(fps),
		fps:   fps,
	}
	s.Pitch.Position = pitch
	s.Zoom.Position = distance
	return s
}

func (s *OrbitState) Update() {
	s.Yaw.Update()
	s.Pitch.Update()
	s.Zoom.Update()

	s.Pitch.Position = math3d.Clamp(s.Pitch.Position, -maxOrbitPitch, maxOrbitPitch)
	s.Zoom.Position = math3d.Clamp(s.Zoom.Position, minZoom, maxZoom)
}

func (s *OrbitState) ApplyImpulse(yaw, pitch, zoom float64) {
	s.Yaw.Velocity += yaw
	s.Pitch.Velocity += pitch
	s.Zoom.Velocity += zoom
}

func (s *OrbitState) Reset(distance, pitch float64) {
	s.Yaw = NewOrbitAxis(s.fps)
	s.Pitch = NewOrbitAxis(s.fps)
	s.Zoom = NewOrbitAxis(s.fps)
	s.Pitch.Position = pitch
	s.Zoom.Position = distance
}

// ViewState holds all view-related settings (UI state, not library code)
type ViewState struct {
	Paused   bool // Whether the simulation is frozen
	ShowGrid bool // Whether to draw the reference grid
	ShowBox  bool // Whether to draw the world box
	ShowHUD  bool // Whether to show the HUD overlay
}

// NewViewState creates default view state
func NewViewState() *ViewState {
	return &ViewState{
		ShowGrid: true,
		ShowBox:  true,
		ShowHUD:  true,
	}
}

// Body is one drifting object in the playground. It satisfies
// physics.Owner so its bounding sphere can track it in the world.
type Body struct {
	pos, vel, scale math3d.Vec3
	orientation     math3d.Quat
	spinAxis        math3d.Vec3
	spinRate        float64 // degrees per second
	padding         float64

	bound     *physics.Bound
	colliding bool
}

func (b *Body) Position() math3d.Vec3 { return b.pos }

func (b *Body) Scale() math3d.Vec3 { return b.scale }

// Update advances the body by dt seconds: drift, bounce off the box
// walls, and spin around the body axis.
func (b *Body) Update(dt float64, bounds physics.Box) {
	b.pos = b.pos.Add(b.vel.Scale(dt))

	if b.pos.X < bounds.Min.X {
		b.pos.X = bounds.Min.X
		b.vel = b.vel.Reflect(math3d.Right())
	} else if b.pos.X > bounds.Max.X {
		b.pos.X = bounds.Max.X
		b.vel = b.vel.Reflect(math3d.Right())
	}
	if b.pos.Y < bounds.Min.Y {
		b.pos.Y = bounds.Min.Y
		b.vel = b.vel.Reflect(math3d.Up())
	} else if b.pos.Y > bounds.Max.Y {
		b.pos.Y = bounds.Max.Y
		b.vel = b.vel.Reflect(math3d.Up())
	}
	if b.pos.Z < bounds.Min.Z {
		b.pos.Z = bounds.Min.Z
		b.vel = b.vel.Reflect(math3d.Forward())
	} else if b.pos.Z > bounds.Max.Z {
		b.pos.Z = bounds.Max.Z
		b.vel = b.vel.Reflect(math3d.Forward())
	}

	if b.spinRate != 0 {
		spin := math3d.QuatAxisAngle(b.spinAxis, b.spinRate*dt)
		b.orientation = spin.Mul(b.orientation).Normalize()
	}
}

// Transform is the body's local-to-world matrix.
func (b *Body) Transform() math3d.Mat4 {
	t := math3d.Transform{
		Position: b.pos,
		Rotation: b.orientation,
		Scale:    b.scale,
	}
	return t.Mat4()
}

// HUD renders an overlay with scene info and toggles
type HUD struct {
	sceneName string
	bodyCount int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a new HUD
func NewHUD(sceneName string, bodyCount int) *HUD {
	return &HUD{
		sceneName: sceneName,
		bodyCount: bodyCount,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, viewState *ViewState, contacts int) {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		fgRed     = "\x1b[91m"
		clearLine = "\x1b[2K"
	)

	// Helper to position cursor
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	// Paused always shows its indicator
	if viewState.Paused {
		pausedMsg := fmt.Sprintf("%s%s%s ▮▮ PAUSED - Space to resume %s",
			bgBlack, bold, fgYellow, reset)
		pausedCol := max((width-30)/2, 1)
		fmt.Print(moveTo(height, pausedCol) + pausedMsg)
	}

	// If HUD is disabled, we're done (lines already cleared)
	if !viewState.ShowHUD {
		return
	}

	// Top left: FPS
	fpsStr := fmt.Sprintf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)
	fmt.Print(fpsStr)

	// Top middle: scene name
	titleStr := fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.sceneName, reset)
	titleCol := max((width-len(h.sceneName)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + titleStr)

	// Top right: body count
	bodyStr := fmt.Sprintf("%s%s%s %d bodies %s", bgBlack, fgCyan, bold, h.bodyCount, reset)
	bodyCol := max(width-14, 1)
	fmt.Print(moveTo(1, bodyCol) + bodyStr)

	// The bottom row belongs to the paused indicator while frozen
	if viewState.Paused {
		return
	}

	// Bottom: display toggles
	checkGrid := "[ ]"
	if viewState.ShowGrid {
		checkGrid = "[✓]"
	}
	checkBox := "[ ]"
	if viewState.ShowBox {
		checkBox = "[✓]"
	}
	toggleStr := fmt.Sprintf("%s%s %s Grid  %s Box %s", bgBlack, fgWhite, checkGrid, checkBox, reset)
	fmt.Print(moveTo(height, 1) + toggleStr)

	// Contact count (right side of bottom)
	contactColor := dim + fgYellow
	if contacts > 0 {
		contactColor = bold + fgRed
	}
	contactStr := fmt.Sprintf("%s%s %d touching %s", bgBlack, contactColor, contacts, reset)
	contactCol := max(width-14, 1)
	fmt.Print(moveTo(height, contactCol) + contactStr)
}

func run() error {
	// Parse background color
	var bgR, bgG, bgB uint8 = 8, 10, 16
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	// Load or generate the scene
	var scene *Scene
	var err error
	if *scenePath != "" {
		scene, err = LoadScene(*scenePath)
		if err != nil {
			return err
		}
	} else {
		scene = RandomScene(*bodyCount, pickSeed(*randomSeed))
	}

	// A scene file without bodies still gets a population
	if len(scene.Bodies) == 0 {
		seed := scene.Seed
		if seed == 0 {
			seed = pickSeed(*randomSeed)
		}
		scene.Bodies = RandomScene(*bodyCount, seed).Bodies
	}

	bodies, bounds := scene.Build()

	world := physics.NewWorld()
	for _, b := range bodies {
		b.bound = physics.NewBound(b, b.padding)
		world.Register(b.bound)
	}

	// Optional mesh drawn in place of bounding spheres
	var mesh *models.Mesh
	var meshEdges [][2]int
	if *modelPath != "" {
		loader := models.NewGLTFLoader()
		loader.Normalize = true
		mesh, err = loader.Load(*modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		meshEdges = mesh.Edges()
	}

	viewState := NewViewState()

	if *snapshotPath != "" {
		return renderSnapshot(*snapshotPath, scene, bodies, bounds, world, mesh, meshEdges, viewState, bgR, bgG, bgB)
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// Create renderer
	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	// Create camera
	camera := render.NewCamera()
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	camera.SetFOV(math.Pi / 3)
	camera.SetClipPlanes(0.1, 500)

	wireframe := render.NewWireframe(camera, fb)

	orbitTarget := bounds.Center()
	startDistance := scene.Camera.Distance
	startPitch := math3d.DegToRad(scene.Camera.Pitch)
	orbit := NewOrbitState(*targetFPS, startDistance, startPitch)

	// Create HUD
	hud := NewHUD(scene.Name, len(bodies))

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputOrbit := struct{ yaw, pitch float64 }{}
	const orbitStrength = 2.0

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				wireframe = render.NewWireframe(camera, fb)
				camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
					cancel()
					return
				case ev.MatchString("r"):
					orbit.Reset(startDistance, startPitch)
				case ev.MatchString("w", "up"):
					inputOrbit.pitch = orbitStrength
				case ev.MatchString("s", "down"):
					inputOrbit.pitch = -orbitStrength
				case ev.MatchString("a", "left"):
					inputOrbit.yaw = -orbitStrength
				case ev.MatchString("d", "right"):
					inputOrbit.yaw = orbitStrength
				case ev.MatchString("+", "="):
					orbit.Zoom.AddImpulse(-zoomStep)
				case ev.MatchString("-", "_"):
					orbit.Zoom.AddImpulse(zoomStep)
				case ev.MatchString("space"):
					viewState.Paused = !viewState.Paused
				case ev.MatchString("g"):
					viewState.ShowGrid = !viewState.ShowGrid
				case ev.MatchString("b"):
					viewState.ShowBox = !viewState.ShowBox
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					// Toggle HUD
					viewState.ShowHUD = !viewState.ShowHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputOrbit.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputOrbit.yaw = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					orbit.ApplyImpulse(float64(dx)*0.02, float64(dy)*0.02, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					orbit.Zoom.AddImpulse(-zoomStep)
				case uv.MouseWheelDown:
					orbit.Zoom.AddImpulse(zoomStep)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Apply orbit input and decay it (key release events unreliable)
		orbit.ApplyImpulse(inputOrbit.yaw*dt, inputOrbit.pitch*dt, 0)
		inputOrbit.yaw *= 0.9
		inputOrbit.pitch *= 0.9

		// Update springs (harmonica handles timing internally)
		orbit.Update()
		camera.Orbit(orbitTarget, orbit.Zoom.Position, orbit.Yaw.Position, orbit.Pitch.Position)

		// Advance the simulation
		if !viewState.Paused {
			for _, b := range bodies {
				b.Update(dt, bounds)
			}
		}
		contacts := markCollisions(world, bodies)

		// Render
		fb.Clear(render.RGB(bgR, bgG, bgB))
		drawScene(wireframe, camera, bodies, bounds, mesh, meshEdges, viewState)

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, viewState, contacts)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// markCollisions flags every body whose bound currently touches another
// registered bound, and returns how many are touching.
func markCollisions(world *physics.World, bodies []*Body) int {
	n := 0
	for _, b := range bodies {
		_, hit := world.FirstHit(b.bound)
		b.colliding = hit
		if hit {
			n++
		}
	}
	return n
}

// drawScene draws one frame of the playground. Bodies outside the
// camera frustum are skipped.
func drawScene(wf *render.Wireframe, camera *render.Camera, bodies []*Body, bounds physics.Box, mesh *models.Mesh, meshEdges [][2]int, viewState *ViewState) {
	if viewState.ShowGrid {
		size := math.Max(bounds.Size().X, bounds.Size().Z)
		wf.DrawGrid(size, 2, render.ColorDarkGray)
	}
	if viewState.ShowBox {
		wf.DrawBox(bounds.Min, bounds.Max, render.RGB(90, 100, 140))
	}
	wf.DrawAxes(2)

	frustum := camera.Frustum()
	for _, b := range bodies {
		s := b.bound.Sphere()
		if !frustum.IntersectsSphere(s.Center, s.Radius) {
			continue
		}

		c := render.RGB(90, 220, 160)
		if b.colliding {
			c = render.RGB(250, 90, 70)
		}

		if mesh != nil {
			wf.DrawEdges(mesh.Vertices, meshEdges, b.Transform(), c)
		} else {
			wf.DrawSphere(s.Center, s.Radius, 14, c)
		}

		// Spin pointer makes the body's orientation visible.
		tip := b.pos.Add(b.orientation.Rotate(math3d.Up()).Scale(s.Radius))
		wf.DrawLine3D(b.pos, tip, render.RGB(240, 220, 120))
	}
}

// renderSnapshot draws a single frame offscreen and writes it as PNG.
func renderSnapshot(path string, scene *Scene, bodies []*Body, bounds physics.Box, world *physics.World, mesh *models.Mesh, meshEdges [][2]int, viewState *ViewState, bgR, bgG, bgB uint8) error {
	const width, height = 240, 136

	fb := render.NewFramebuffer(width, height)
	fb.Clear(render.RGB(bgR, bgG, bgB))

	camera := render.NewCamera()
	camera.SetAspectRatio(float64(width) / float64(height))
	camera.SetFOV(math.Pi / 3)
	camera.SetClipPlanes(0.1, 500)
	camera.Orbit(bounds.Center(), scene.Camera.Distance, 0.7, math3d.DegToRad(scene.Camera.Pitch))

	markCollisions(world, bodies)

	wf := render.NewWireframe(camera, fb)
	drawScene(wf, camera, bodies, bounds, mesh, meshEdges, viewState)

	return fb.SavePNG(path)
}

func pickSeed(flagSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
