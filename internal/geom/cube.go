package geom

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cube is an axis-aligned box around Center.
type Cube struct {
	Center rl.Vector3
	Width  float32
	Height float32
	Depth  float32
}

func NewCube(center rl.Vector3, width, height, depth float32) (*Cube, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("cube size %gx%gx%g: %w", width, height, depth, ErrDegenerate)
	}
	return &Cube{Center: center, Width: width, Height: height, Depth: depth}, nil
}

// Raycast runs the slab method: intersect the ray against the three pairs of
// bounding planes, intersect the per-axis intervals, and accept when the
// resulting interval is non-empty with a non-negative near bound. Rays
// starting inside the box do not hit it.
func (c *Cube) Raycast(ray Ray) (Hit, bool) {
	if c.Width <= 0 || c.Height <= 0 || c.Depth <= 0 {
		return Hit{}, false
	}
	half := rl.Vector3{X: c.Width / 2, Y: c.Height / 2, Z: c.Depth / 2}
	lo := rl.Vector3Subtract(c.Center, half)
	hi := rl.Vector3Add(c.Center, half)

	origin := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	mins := [3]float32{lo.X, lo.Y, lo.Z}
	maxs := [3]float32{hi.X, hi.Y, hi.Z}

	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		if absf(dir[axis]) < Epsilon {
			// Ray parallel to this slab: must already lie inside it.
			if origin[axis] < mins[axis] || origin[axis] > maxs[axis] {
				return Hit{}, false
			}
			continue
		}
		t1 := (mins[axis] - origin[axis]) / dir[axis]
		t2 := (maxs[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmin > tmax || tmin < 0 {
		return Hit{}, false
	}
	return Hit{Point: ray.At(tmin), T: tmin}, true
}
