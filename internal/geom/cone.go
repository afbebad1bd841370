package geom

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cone is a finite cone with its apex at Center. Axis carries both the
// direction and the height: the base disc of radius Radius sits at
// Center + Axis.
type Cone struct {
	Center rl.Vector3
	Axis   rl.Vector3
	Radius float32
}

func NewCone(center, axis rl.Vector3, radius float32) (*Cone, error) {
	if rl.Vector3Length(axis) < Epsilon {
		return nil, fmt.Errorf("cone axis %v: %w", axis, ErrDegenerate)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("cone radius %g: %w", radius, ErrDegenerate)
	}
	return &Cone{Center: center, Axis: axis, Radius: radius}, nil
}

// Raycast substitutes the ray into the implicit cone equation and solves the
// quadratic, rejecting roots behind the origin, beyond the finite height
// range, or on the mirror nappe. The nearer valid root wins.
func (c *Cone) Raycast(ray Ray) (Hit, bool) {
	height := rl.Vector3Length(c.Axis)
	if height < Epsilon || c.Radius <= 0 {
		return Hit{}, false
	}
	axis := rl.Vector3Scale(c.Axis, 1/height)

	co := rl.Vector3Subtract(ray.Origin, c.Center)
	dv := rl.Vector3DotProduct(ray.Direction, axis)
	cv := rl.Vector3DotProduct(co, axis)

	// k = tan^2 of the half-angle: base radius over height.
	tan := c.Radius / height
	k := tan * tan

	dd := rl.Vector3DotProduct(ray.Direction, ray.Direction)
	a := dd - (1+k)*dv*dv
	b := 2 * (rl.Vector3DotProduct(ray.Direction, co) - (1+k)*dv*cv)
	cc := rl.Vector3DotProduct(co, co) - (1+k)*cv*cv

	if dd < Epsilon*Epsilon || absf(a) < Epsilon*dd {
		// Ray runs along the cone surface.
		return Hit{}, false
	}
	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return Hit{}, false
	}
	sq := sqrtf(discriminant)

	t := (-b - sq) / (2 * a)
	if !c.validRoot(ray, axis, height, t) {
		t = (-b + sq) / (2 * a)
		if !c.validRoot(ray, axis, height, t) {
			return Hit{}, false
		}
	}
	return Hit{Point: ray.At(t), T: t}, true
}

// validRoot rejects roots behind the ray origin and points outside the
// apex-to-base height range, which also discards the mirror nappe.
func (c *Cone) validRoot(ray Ray, axis rl.Vector3, height, t float32) bool {
	if t < 0 {
		return false
	}
	point := ray.At(t)
	h := rl.Vector3DotProduct(rl.Vector3Subtract(point, c.Center), axis)
	return h >= -Epsilon && h <= height+Epsilon
}
