package geom

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultPickRadius is the tolerance band that makes an idealized line
// pickable in practice; an infinitesimally thin segment can never be hit.
const DefaultPickRadius float32 = 0.3

// Segment is the line segment from A to B, pickable within PickRadius of the
// segment.
type Segment struct {
	A          rl.Vector3
	B          rl.Vector3
	PickRadius float32
}

// NewSegment validates the endpoints. A non-positive pickRadius selects
// DefaultPickRadius.
func NewSegment(a, b rl.Vector3, pickRadius float32) (*Segment, error) {
	if rl.Vector3Length(rl.Vector3Subtract(b, a)) < Epsilon {
		return nil, fmt.Errorf("segment endpoints coincide at %v: %w", a, ErrDegenerate)
	}
	if pickRadius <= 0 {
		pickRadius = DefaultPickRadius
	}
	return &Segment{A: a, B: b, PickRadius: pickRadius}, nil
}

// Raycast finds the closest approach between the ray and the infinite line
// through A and B, clamps the line parameter to the segment, and accepts the
// hit when the ray passes within PickRadius. A ray parallel to the segment
// misses.
func (s *Segment) Raycast(ray Ray) (Hit, bool) {
	u := ray.Direction
	v := rl.Vector3Subtract(s.B, s.A)
	w := rl.Vector3Subtract(ray.Origin, s.A)

	uu := rl.Vector3DotProduct(u, u)
	uv := rl.Vector3DotProduct(u, v)
	vv := rl.Vector3DotProduct(v, v)
	uw := rl.Vector3DotProduct(u, w)
	vw := rl.Vector3DotProduct(v, w)

	if uu < Epsilon*Epsilon || vv < Epsilon*Epsilon {
		return Hit{}, false
	}
	// denom = |u|^2 |v|^2 sin^2(angle); testing against Epsilon*uu*vv keeps
	// the parallel rejection invariant to direction scale.
	denom := uu*vv - uv*uv
	if denom < Epsilon*uu*vv {
		return Hit{}, false
	}

	// Parameter along the segment line, clamped to [0,1].
	sc := (uu*vw - uv*uw) / denom
	if sc < 0 {
		sc = 0
	}
	if sc > 1 {
		sc = 1
	}
	closest := rl.Vector3Add(s.A, rl.Vector3Scale(v, sc))

	// Parameter along the ray toward the clamped point.
	t := rl.Vector3DotProduct(rl.Vector3Subtract(closest, ray.Origin), u) / uu
	if t < 0 {
		return Hit{}, false
	}

	onRay := ray.At(t)
	if rl.Vector3Length(rl.Vector3Subtract(closest, onRay)) > s.PickRadius {
		return Hit{}, false
	}
	return Hit{Point: onRay, T: t}, true
}
