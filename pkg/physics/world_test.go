package physics

import (
	"fmt"
	"math"
	"testing"

	"github.com/alexgoldie09/stardrift/pkg/math3d"
)

type stubOwner struct {
	pos   math3d.Vec3
	scale math3d.Vec3
}

func (s *stubOwner) Position() math3d.Vec3 { return s.pos }
func (s *stubOwner) Scale() math3d.Vec3    { return s.scale }

func TestBoundSphereTracksOwner(t *testing.T) {
	owner := &stubOwner{pos: math3d.V3(1, 2, 3), scale: math3d.V3(2, 0, 0)}
	b := NewBound(owner, 0.5)

	s := b.Sphere()
	if s.Center != owner.pos {
		t.Errorf("center = %v, want %v", s.Center, owner.pos)
	}
	if math.Abs(s.Radius-1.5) > 1e-9 {
		t.Errorf("radius = %v, want 1.5", s.Radius)
	}

	// The sphere is derived from the owner on every call, so moving the
	// owner moves the bound without re-registering.
	owner.pos = math3d.V3(9, 9, 9)
	if got := b.Sphere().Center; got != owner.pos {
		t.Errorf("center after move = %v, want %v", got, owner.pos)
	}
}

func TestWorldRegisterIdempotent(t *testing.T) {
	w := NewWorld()
	b := NewBound(&stubOwner{scale: math3d.V3(1, 0, 0)}, 0)

	w.Register(b)
	w.Register(b)

	if got := w.Len(); got != 1 {
		t.Fatalf("Len after double register = %d, want 1", got)
	}
	count := 0
	for _, reg := range w.Bounds() {
		if reg == b {
			count++
		}
	}
	if count != 1 {
		t.Errorf("bound appears %d times, want 1", count)
	}
}

func TestWorldUnregister(t *testing.T) {
	w := NewWorld()
	a := NewBound(&stubOwner{pos: math3d.V3(0, 0, 0), scale: math3d.V3(2, 0, 0)}, 0)
	b := NewBound(&stubOwner{pos: math3d.V3(0.5, 0, 0), scale: math3d.V3(2, 0, 0)}, 0)

	w.Register(a)
	w.Register(b)

	if _, ok := w.FirstHit(a); !ok {
		t.Fatal("expected overlap before unregister")
	}

	w.Unregister(b)
	if got := w.Len(); got != 1 {
		t.Fatalf("Len after unregister = %d, want 1", got)
	}
	if hit, ok := w.FirstHit(a); ok {
		t.Errorf("removed bound still reported: %+v", hit)
	}

	// Removing a bound that was never registered changes nothing.
	w.Unregister(NewBound(&stubOwner{}, 0))
	if got := w.Len(); got != 1 {
		t.Errorf("Len after stray unregister = %d, want 1", got)
	}
}

func TestWorldFirstHit(t *testing.T) {
	w := NewWorld()

	// Unit-diameter spheres spaced 10 apart: none touch.
	var bounds []*Bound
	for i := 0; i < 4; i++ {
		b := NewBound(&stubOwner{pos: math3d.V3(float64(i)*10, 0, 0), scale: math3d.V3(1, 0, 0)}, 0)
		bounds = append(bounds, b)
		w.Register(b)
	}

	if hit, ok := w.FirstHit(bounds[0]); ok {
		t.Fatalf("expected no hit, got %+v", hit)
	}

	// Two overlapping candidates: the scan reports the earliest registered.
	near := NewBound(&stubOwner{pos: math3d.V3(10.5, 0, 0), scale: math3d.V3(2, 0, 0)}, 0)
	w.Register(near)
	hit, ok := w.FirstHit(near)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit != bounds[1] {
		t.Errorf("hit = %+v, want the bound at x=10", hit.Owner.Position())
	}

	// A bound never collides with itself even when alone.
	solo := NewWorld()
	only := NewBound(&stubOwner{scale: math3d.V3(5, 0, 0)}, 0)
	solo.Register(only)
	if hit, ok := solo.FirstHit(only); ok {
		t.Errorf("bound collided with itself: %+v", hit)
	}
}

func BenchmarkWorldFirstHit(b *testing.B) {
	for _, n := range []int{16, 128, 1024} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			w := NewWorld()
			var probe *Bound
			for i := 0; i < n; i++ {
				bd := NewBound(&stubOwner{
					pos:   math3d.V3(float64(i)*3, 0, 0),
					scale: math3d.V3(1, 1, 1),
				}, 0)
				w.Register(bd)
				if i == n/2 {
					probe = bd
				}
			}
			for b.Loop() {
				w.FirstHit(probe)
			}
		})
	}
}
