package main

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexgoldie09/stardrift/pkg/math3d"
	"github.com/alexgoldie09/stardrift/pkg/physics"
)

// Scene describes the initial playground: the world box, the camera
// orbit, and the bodies drifting inside.
type Scene struct {
	Name   string     `yaml:"name"`
	Seed   int64      `yaml:"seed"`
	Bounds BoundsSpec `yaml:"bounds"`
	Camera CameraSpec `yaml:"camera"`
	Bodies []BodySpec `yaml:"bodies"`
}

// BoundsSpec is the axis-aligned world box bodies bounce inside.
type BoundsSpec struct {
	Min math3d.Vec3 `yaml:"min"`
	Max math3d.Vec3 `yaml:"max"`
}

// CameraSpec is the starting camera orbit.
type CameraSpec struct {
	Distance float64 `yaml:"distance"`
	Pitch    float64 `yaml:"pitch"` // degrees
}

// BodySpec is one body's starting state.
type BodySpec struct {
	Position math3d.Vec3 `yaml:"position"`
	Velocity math3d.Vec3 `yaml:"velocity"`
	Scale    math3d.Vec3 `yaml:"scale"`
	SpinAxis math3d.Vec3 `yaml:"spin_axis"`
	SpinRate float64     `yaml:"spin_rate"` // degrees per second
	Padding  float64     `yaml:"padding"`
}

// LoadScene reads a YAML scene description. Unknown fields are
// rejected so typos in scene files surface instead of silently
// producing defaults.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var s Scene
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}

	s.applyDefaults()
	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.Name == "" {
		s.Name = "scene"
	}
	if s.Bounds.Min == (math3d.Vec3{}) && s.Bounds.Max == (math3d.Vec3{}) {
		s.Bounds.Min = math3d.V3(-8, -8, -8)
		s.Bounds.Max = math3d.V3(8, 8, 8)
	}
	if s.Camera.Distance == 0 {
		s.Camera.Distance = s.Bounds.Max.Sub(s.Bounds.Min).Len() * 0.9
	}
	if s.Camera.Pitch == 0 {
		s.Camera.Pitch = 18
	}
	for i := range s.Bodies {
		if s.Bodies[i].Scale == (math3d.Vec3{}) {
			s.Bodies[i].Scale = math3d.One3()
		}
	}
}

// Build converts the scene description into runtime bodies and the
// world box they drift in.
func (s *Scene) Build() ([]*Body, physics.Box) {
	bounds := physics.NewBox(s.Bounds.Min, s.Bounds.Max)

	bodies := make([]*Body, 0, len(s.Bodies))
	for _, spec := range s.Bodies {
		bodies = append(bodies, &Body{
			pos:         spec.Position,
			vel:         spec.Velocity,
			scale:       spec.Scale,
			orientation: math3d.QuatIdentity(),
			spinAxis:    spec.SpinAxis,
			spinRate:    spec.SpinRate,
			padding:     spec.Padding,
		})
	}

	return bodies, bounds
}

// RandomScene builds a reproducible scene of n drifting bodies.
func RandomScene(n int, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))

	s := &Scene{Name: fmt.Sprintf("random-%d", seed), Seed: seed}
	s.applyDefaults()

	span := s.Bounds.Max.Sub(s.Bounds.Min)
	for i := 0; i < n; i++ {
		// Spawn inside the middle 80% of the box so nothing starts
		// embedded in a wall.
		pos := s.Bounds.Min.Add(math3d.V3(
			span.X*(0.1+0.8*rng.Float64()),
			span.Y*(0.1+0.8*rng.Float64()),
			span.Z*(0.1+0.8*rng.Float64()),
		))
		size := 0.6 + 1.2*rng.Float64()

		s.Bodies = append(s.Bodies, BodySpec{
			Position: pos,
			Velocity: randomDir(rng).Scale(1 + 2*rng.Float64()),
			Scale:    math3d.V3(size, size, size),
			SpinAxis: randomDir(rng),
			SpinRate: 20 + 70*rng.Float64(),
			Padding:  0.1,
		})
	}

	return s
}

// randomDir returns a uniformly distributed unit vector, by rejection
// sampling inside the unit ball.
func randomDir(rng *rand.Rand) math3d.Vec3 {
	for {
		v := math3d.V3(
			rng.Float64()*2-1,
			rng.Float64()*2-1,
			rng.Float64()*2-1,
		)
		if l := v.LenSq(); l > 1e-6 && l <= 1 {
			return v.Normalize()
		}
	}
}
