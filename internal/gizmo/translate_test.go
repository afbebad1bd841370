package gizmo

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gizmo3d/internal/geom"
	"gizmo3d/internal/projector"
)

// sideCamera sits at (5,0,0) looking at the origin with a 90 degree fov and
// square aspect. On the x=0 plane, NDC y maps to world +Y and NDC x maps to
// world -Z, one NDC unit spanning five world units.
func sideCamera() projector.Camera {
	view := rl.MatrixLookAt(rl.Vector3{X: 5}, rl.Vector3{}, rl.Vector3{Y: 1})
	projection := rl.MatrixPerspective(90*rl.Deg2rad, 1, 0.01, 1000)
	return projector.FromMatrices(rl.Vector3{X: 5}, view, projection)
}

func approx(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) < tolerance
}

func approxVec(a, b rl.Vector3, tolerance float32) bool {
	return approx(a.X, b.X, tolerance) && approx(a.Y, b.Y, tolerance) && approx(a.Z, b.Z, tolerance)
}

func newArrow(t *testing.T, sys *System) *TranslationArrow {
	t.Helper()
	arrow, err := NewTranslationArrow(sys, rl.Vector3{}, rl.Vector3{Y: 1}, 0.5)
	if err != nil {
		t.Fatalf("NewTranslationArrow failed: %v", err)
	}
	return arrow
}

func TestTranslationRoundTrip(t *testing.T) {
	sys := NewSystem(sideCamera())
	arrow := newArrow(t, sys)
	arrow.PlaneNormal = rl.Vector3{X: 1}

	var moved rl.Vector3
	arrow.OnMove = func(delta rl.Vector3) { moved = delta }

	// Press at the screen center, which projects to the arrow base, then
	// drag to the coordinate that projects to (0,0,2) on the x=0 plane.
	sys.HandleCursorMoved(0, 0)
	if sys.Target() != arrow.Entry() {
		t.Fatal("expected the arrow shaft to be hovered")
	}
	sys.HandleButtonPressed()
	sys.HandleCursorMoved(-0.4, 0)
	sys.HandleButtonReleased()

	seg := arrow.Segment()
	if !approxVec(seg.A, rl.Vector3{Z: 2}, 1e-2) {
		t.Errorf("expected A=(0,0,2), got %v", seg.A)
	}
	if !approxVec(seg.B, rl.Vector3{Y: 1, Z: 2}, 1e-2) {
		t.Errorf("expected B=(0,1,2), got %v", seg.B)
	}
	if !approxVec(moved, rl.Vector3{Z: 2}, 1e-2) {
		t.Errorf("expected reported delta (0,0,2), got %v", moved)
	}
}

func TestTranslationAxisConstrained(t *testing.T) {
	sys := NewSystem(sideCamera())
	arrow := newArrow(t, sys)
	arrow.PlaneNormal = rl.Vector3{X: 1}
	arrow.Constrained = true

	sys.HandleCursorMoved(0, 0)
	sys.HandleButtonPressed()
	// Free-plane delta would be (0,1,2); the axis constraint keeps only the
	// +Y component.
	sys.HandleCursorMoved(-0.4, 0.2)

	seg := arrow.Segment()
	if !approxVec(seg.A, rl.Vector3{Y: 1}, 1e-2) {
		t.Errorf("expected A=(0,1,0), got %v", seg.A)
	}
	if !approxVec(seg.B, rl.Vector3{Y: 2}, 1e-2) {
		t.Errorf("expected B=(0,2,0), got %v", seg.B)
	}
}

func TestTranslationCameraFacingPlane(t *testing.T) {
	sys := NewSystem(sideCamera())
	arrow := newArrow(t, sys)
	// PlaneNormal left zero: press builds a camera-facing plane containing
	// the arrow axis, which from this viewpoint is the x=0 plane again.

	sys.HandleCursorMoved(0, 0)
	sys.HandleButtonPressed()
	sys.HandleCursorMoved(-0.4, 0)

	seg := arrow.Segment()
	if !approxVec(seg.A, rl.Vector3{Z: 2}, 1e-2) {
		t.Errorf("expected A=(0,0,2), got %v", seg.A)
	}
}

func TestTranslationTipFollows(t *testing.T) {
	sys := NewSystem(sideCamera())
	arrow := newArrow(t, sys)
	arrow.PlaneNormal = rl.Vector3{X: 1}
	if err := arrow.AddTip(0.12); err != nil {
		t.Fatalf("AddTip failed: %v", err)
	}

	sys.HandleCursorMoved(0, 0)
	sys.HandleButtonPressed()
	sys.HandleCursorMoved(-0.4, 0)

	cone := arrow.Tip().Shape.(*geom.Cone)
	if !approxVec(cone.Center, rl.Vector3{Y: 1.35, Z: 2}, 1e-2) {
		t.Errorf("expected tip apex (0,1.35,2), got %v", cone.Center)
	}
}

func TestTranslationGrabFromTip(t *testing.T) {
	sys := NewSystem(sideCamera())
	// Narrow shaft so the pick near the arrowhead resolves to the tip cone
	// instead of the shaft's tolerance band.
	arrow, err := NewTranslationArrow(sys, rl.Vector3{}, rl.Vector3{Y: 1}, 0.1)
	if err != nil {
		t.Fatalf("NewTranslationArrow failed: %v", err)
	}
	arrow.PlaneNormal = rl.Vector3{X: 1}
	if err := arrow.AddTip(0.12); err != nil {
		t.Fatalf("AddTip failed: %v", err)
	}

	// NDC y=0.25 projects to (0,1.25,0), inside the tip cone's height range.
	sys.HandleCursorMoved(0, 0.25)
	if sys.Target() != arrow.Tip() {
		t.Fatal("expected the tip cone to be hovered")
	}
	sys.HandleButtonPressed()
	sys.HandleCursorMoved(-0.4, 0.25)

	seg := arrow.Segment()
	if !approxVec(seg.A, rl.Vector3{Z: 2}, 1e-2) {
		t.Errorf("tip drag should translate the shaft, got A=%v", seg.A)
	}
}

func TestTranslationEdgeOnPlaneHolds(t *testing.T) {
	sys := NewSystem(sideCamera())
	arrow := newArrow(t, sys)
	// A plane containing the view axis: every projection fails, so the drag
	// never arms and the arrow stays put.
	arrow.PlaneNormal = rl.Vector3{Y: 1}

	sys.HandleCursorMoved(0, 0)
	sys.HandleButtonPressed()
	sys.HandleCursorMoved(-0.4, 0)

	seg := arrow.Segment()
	if !approxVec(seg.A, rl.Vector3{}, 1e-4) {
		t.Errorf("edge-on drag plane must not move the arrow, got A=%v", seg.A)
	}
}

func TestSetEndpointsSyncsTip(t *testing.T) {
	sys := NewSystem(sideCamera())
	arrow := newArrow(t, sys)
	if err := arrow.AddTip(0.12); err != nil {
		t.Fatalf("AddTip failed: %v", err)
	}

	arrow.SetEndpoints(rl.Vector3{X: 1}, rl.Vector3{X: 1, Y: 2})

	cone := arrow.Tip().Shape.(*geom.Cone)
	if !approxVec(cone.Center, rl.Vector3{X: 1, Y: 2.35}, 1e-4) {
		t.Errorf("expected tip apex (1,2.35,0), got %v", cone.Center)
	}
	if !approxVec(cone.Axis, rl.Vector3{Y: -0.35}, 1e-4) {
		t.Errorf("expected tip axis (0,-0.35,0), got %v", cone.Axis)
	}
}
