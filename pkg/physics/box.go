package physics

import "github.com/alexgoldie09/stardrift/pkg/math3d"

// Box is an axis-aligned box, used as the play volume bodies drift
// inside.
type Box struct {
	Min, Max math3d.Vec3
}

// NewBox creates a box from two corners.
func NewBox(min, max math3d.Vec3) Box {
	return Box{Min: min, Max: max}
}

// Center returns the box center.
func (b Box) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box dimensions.
func (b Box) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside the box (faces inclusive).
func (b Box) Contains(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
