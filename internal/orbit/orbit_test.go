package orbit

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a-b))) < tolerance
}

func TestPitchClamps(t *testing.T) {
	cam := New(rl.Vector3{}, 10)

	cam.ApplyLook(0, -10000)
	if cam.Pitch != 89 {
		t.Errorf("expected pitch clamped to 89, got %v", cam.Pitch)
	}
	cam.ApplyLook(0, 10000)
	if cam.Pitch != -89 {
		t.Errorf("expected pitch clamped to -89, got %v", cam.Pitch)
	}
}

func TestPositionOnOrbitSphere(t *testing.T) {
	cam := New(rl.Vector3{}, 10)
	cam.Yaw = 0
	cam.Pitch = 0

	pos := cam.Position()
	if !approx(pos.X, -10, 1e-4) || !approx(pos.Y, 0, 1e-4) || !approx(pos.Z, 0, 1e-4) {
		t.Errorf("yaw 0: expected (-10,0,0), got %v", pos)
	}

	cam.Yaw = 90
	pos = cam.Position()
	if !approx(pos.X, 0, 1e-3) || !approx(pos.Z, -10, 1e-3) {
		t.Errorf("yaw 90: expected (0,0,-10), got %v", pos)
	}

	if d := rl.Vector3Length(rl.Vector3Subtract(pos, cam.Target)); !approx(d, 10, 1e-3) {
		t.Errorf("eye should stay on the orbit sphere, distance %v", d)
	}
}

func TestZoomSpringConverges(t *testing.T) {
	cam := New(rl.Vector3{}, 10)

	// One wheel notch back, then let the spring settle.
	cam.StepZoom(-1)
	for i := 0; i < 300; i++ {
		cam.StepZoom(0)
	}
	if !approx(cam.Distance(), 11.2, 1e-2) {
		t.Errorf("expected spring to settle at 11.2, got %v", cam.Distance())
	}
}

func TestZoomGoalClamps(t *testing.T) {
	cam := New(rl.Vector3{}, 10)

	for i := 0; i < 50; i++ {
		cam.StepZoom(10)
	}
	for i := 0; i < 300; i++ {
		cam.StepZoom(0)
	}
	if !approx(cam.Distance(), cam.MinDistance, 1e-2) {
		t.Errorf("expected distance clamped near %v, got %v", cam.MinDistance, cam.Distance())
	}
}
