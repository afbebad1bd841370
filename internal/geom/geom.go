// Package geom provides the closed-form ray intersection solvers a gizmo
// system picks against: plane, sphere, segment, cube and cone.
//
// All solvers share one contract: substitute the ray equation p = o + d*t
// into the shape's surface equation, solve for t, reject t < 0, and return
// the surface point. Solvers are pure and safe to call concurrently.
package geom

import (
	"errors"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Epsilon is the threshold below which denominators and vector lengths are
// treated as degenerate (ray parallel to a plane, zero-length axis). Hosts
// may tune it before registering geometry.
var Epsilon float32 = 1e-6

// ErrDegenerate reports a zero-length normal/axis vector or a non-positive
// extent passed to a shape constructor.
var ErrDegenerate = errors.New("geom: degenerate shape parameter")

// Ray is a half-line in world space. Direction need not be normalized; every
// solver scales t by the direction's own length, so callers must use the same
// direction when turning a t back into a point.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
}

// Hit is a successful raycast: the surface point and the ray parameter that
// produced it.
type Hit struct {
	Point rl.Vector3
	T     float32
}

// Raycastable is the single capability every pickable shape exposes.
type Raycastable interface {
	Raycast(ray Ray) (Hit, bool)
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
