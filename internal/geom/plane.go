package geom

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane is an infinite plane through Center with the given Normal.
type Plane struct {
	Normal rl.Vector3
	Center rl.Vector3
}

// NewPlane validates the normal and returns the plane. A zero-length normal
// is a precondition violation, not something the solver papers over.
func NewPlane(normal, center rl.Vector3) (*Plane, error) {
	if rl.Vector3Length(normal) < Epsilon {
		return nil, fmt.Errorf("plane normal %v: %w", normal, ErrDegenerate)
	}
	return &Plane{Normal: normal, Center: center}, nil
}

// Raycast solves n.(center - origin) / n.direction for t. Misses when the
// ray runs parallel to the plane (denominator below Epsilon) or the
// intersection lies behind the ray origin.
func (p *Plane) Raycast(ray Ray) (Hit, bool) {
	denom := rl.Vector3DotProduct(ray.Direction, p.Normal)
	if absf(denom) < Epsilon {
		return Hit{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p.Center, ray.Origin), p.Normal) / denom
	if t < 0 {
		return Hit{}, false
	}
	return Hit{Point: ray.At(t), T: t}, true
}
