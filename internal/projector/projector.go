// Package projector is the bridge between screen space and world space: it
// turns normalized device coordinates plus camera state into world rays and
// projects screen points onto arbitrary world planes.
package projector

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gizmo3d/internal/geom"
)

// ErrNoProjection reports that a screen coordinate has no projection onto the
// requested plane, typically because the plane is edge-on to the view.
var ErrNoProjection = errors.New("projector: no projection onto plane")

// Camera is an immutable per-pass snapshot of camera state. ViewToWorld is
// the inverse of the combined view-then-projection transform; Position is the
// camera's world position and the origin of every generated ray.
type Camera struct {
	Position    rl.Vector3
	ViewToWorld rl.Matrix
}

// FromMatrices composes view and projection and stores the inverse.
func FromMatrices(position rl.Vector3, view, projection rl.Matrix) Camera {
	return Camera{
		Position:    position,
		ViewToWorld: rl.MatrixInvert(rl.MatrixMultiply(view, projection)),
	}
}

// FromRaylibCamera builds the snapshot most raylib hosts want: a perspective
// projection matching the window's aspect ratio and the camera's field of
// view.
func FromRaylibCamera(cam rl.Camera3D, screenWidth, screenHeight int32) Camera {
	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	aspect := float32(screenWidth) / float32(screenHeight)
	projection := rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, 0.01, 1000)
	return FromMatrices(cam.Position, view, projection)
}

// ScreenToRay converts a normalized device coordinate (-1..1 on both axes,
// +Y up) into a world-space ray: the NDC point on the near plane is pulled
// back into world space and the ray runs from the camera through it.
func (c Camera) ScreenToRay(ndc rl.Vector2) (geom.Ray, error) {
	near, ok := transformPoint(c.ViewToWorld, rl.Vector3{X: ndc.X, Y: ndc.Y, Z: -1})
	if !ok {
		return geom.Ray{}, fmt.Errorf("unprojecting %v: %w", ndc, geom.ErrDegenerate)
	}
	direction := rl.Vector3Subtract(near, c.Position)
	if rl.Vector3Length(direction) < geom.Epsilon {
		return geom.Ray{}, fmt.Errorf("near plane collapses onto camera: %w", geom.ErrDegenerate)
	}
	return geom.Ray{Origin: c.Position, Direction: direction}, nil
}

// ProjectOntoPlane casts the screen coordinate's ray against the given plane
// and returns the world-space intersection. The edge-on case propagates as
// ErrNoProjection rather than a garbage point; drag code built on top must
// handle it.
func (c Camera) ProjectOntoPlane(ndc rl.Vector2, planeNormal, planeCenter rl.Vector3) (rl.Vector3, error) {
	if rl.Vector3Length(planeNormal) < geom.Epsilon {
		return rl.Vector3{}, fmt.Errorf("plane normal %v: %w", planeNormal, geom.ErrDegenerate)
	}
	ray, err := c.ScreenToRay(ndc)
	if err != nil {
		return rl.Vector3{}, err
	}
	plane := geom.Plane{Normal: planeNormal, Center: planeCenter}
	hit, ok := plane.Raycast(ray)
	if !ok {
		return rl.Vector3{}, ErrNoProjection
	}
	return hit.Point, nil
}

// transformPoint applies a full 4x4 transform including the perspective
// divide, which rl.Vector3Transform skips.
func transformPoint(m rl.Matrix, v rl.Vector3) (rl.Vector3, bool) {
	x := m.M0*v.X + m.M4*v.Y + m.M8*v.Z + m.M12
	y := m.M1*v.X + m.M5*v.Y + m.M9*v.Z + m.M13
	z := m.M2*v.X + m.M6*v.Y + m.M10*v.Z + m.M14
	w := m.M3*v.X + m.M7*v.Y + m.M11*v.Z + m.M15

	if absf(w) < geom.Epsilon {
		return rl.Vector3{}, false
	}
	inv := 1 / w
	return rl.Vector3{X: x * inv, Y: y * inv, Z: z * inv}, true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
