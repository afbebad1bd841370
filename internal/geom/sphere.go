package geom

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sphere is a sphere of Radius around Center.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func NewSphere(center rl.Vector3, radius float32) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius %g: %w", radius, ErrDegenerate)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Raycast solves the quadratic |o + d*t - center|^2 = r^2 and returns the
// smallest non-negative root, so a ray passing through the sphere reports the
// near surface and a ray starting inside reports the exit point.
func (s *Sphere) Raycast(ray Ray) (Hit, bool) {
	if s.Radius <= 0 {
		return Hit{}, false
	}
	oc := rl.Vector3Subtract(ray.Origin, s.Center)
	a := rl.Vector3DotProduct(ray.Direction, ray.Direction)
	if a < Epsilon*Epsilon {
		return Hit{}, false
	}
	b := 2 * rl.Vector3DotProduct(oc, ray.Direction)
	c := rl.Vector3DotProduct(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}

	sq := sqrtf(discriminant)
	t := (-b - sq) / (2 * a)
	if t < 0 {
		t = (-b + sq) / (2 * a)
	}
	if t < 0 {
		return Hit{}, false
	}
	return Hit{Point: ray.At(t), T: t}, true
}
