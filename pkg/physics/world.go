package physics

import "github.com/alexgoldie09/stardrift/pkg/math3d"

// Owner supplies the live position and scale a bound derives its sphere
// from. Bodies implement this; tests can use any stub.
type Owner interface {
	Position() math3d.Vec3
	Scale() math3d.Vec3
}

// Bound ties a sphere to an owner. The sphere follows the owner: its
// center is the owner's position and its radius is derived from the
// owner's scale plus the Extra padding, re-read on every query.
type Bound struct {
	Owner Owner
	Extra float64
}

// NewBound creates a bound for the given owner with extra radius padding.
func NewBound(owner Owner, extra float64) *Bound {
	return &Bound{Owner: owner, Extra: extra}
}

// Sphere returns the bound's current world-space sphere.
func (b *Bound) Sphere() Sphere {
	return Sphere{
		Center: b.Owner.Position(),
		Radius: BoundingRadius(b.Owner.Scale(), b.Extra),
	}
}

// World owns the set of active bounds and answers proximity queries
// against it. Each simulation owns its own World; there is no global
// registry, so independent worlds never see each other's bounds.
//
// World is not safe for concurrent use. It is built for a
// single-threaded frame loop: registrations and removals take effect
// immediately, so they are visible to the next scan.
type World struct {
	bounds []*Bound
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Register adds b to the world. Registering an already-present bound is
// a no-op, so activation code may call it unconditionally.
func (w *World) Register(b *Bound) {
	for _, r := range w.bounds {
		if r == b {
			return
		}
	}
	w.bounds = append(w.bounds, b)
}

// Unregister removes b if present; absent bounds are a no-op.
func (w *World) Unregister(b *Bound) {
	for i, r := range w.bounds {
		if r == b {
			w.bounds = append(w.bounds[:i], w.bounds[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered bounds.
func (w *World) Len() int {
	return len(w.bounds)
}

// Bounds returns the registered bounds in scan order. The slice is the
// world's own; callers must not mutate it.
func (w *World) Bounds() []*Bound {
	return w.bounds
}

// FirstHit scans the registered bounds in order and returns the first
// one overlapping b, skipping b itself. It stops at the first hit
// rather than collecting every overlap; cost is O(n) per call.
func (w *World) FirstHit(b *Bound) (*Bound, bool) {
	s := b.Sphere()
	for _, r := range w.bounds {
		if r == b {
			continue
		}
		if s.Intersects(r.Sphere()) {
			return r, true
		}
	}
	return nil, false
}
