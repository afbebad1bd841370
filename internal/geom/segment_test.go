package geom

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewSegmentValidation(t *testing.T) {
	p := rl.Vector3{X: 1, Y: 2, Z: 3}
	if _, err := NewSegment(p, p, 0.3); !errors.Is(err, ErrDegenerate) {
		t.Errorf("coincident endpoints: expected ErrDegenerate, got %v", err)
	}

	seg, err := NewSegment(rl.Vector3{}, rl.Vector3{Y: 1}, 0)
	if err != nil {
		t.Fatalf("NewSegment failed: %v", err)
	}
	if seg.PickRadius != DefaultPickRadius {
		t.Errorf("expected default pick radius %f, got %f", DefaultPickRadius, seg.PickRadius)
	}
}

func TestSegmentRaycastHit(t *testing.T) {
	seg, err := NewSegment(rl.Vector3{}, rl.Vector3{Y: 1}, 0.3)
	if err != nil {
		t.Fatalf("NewSegment failed: %v", err)
	}

	ray := Ray{Origin: rl.Vector3{X: 5, Y: 0.5}, Direction: rl.Vector3{X: -1}}
	hit, ok := seg.Raycast(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if !approx(hit.T, 5, 1e-5) {
		t.Errorf("expected t=5, got %f", hit.T)
	}
	if !approxVec(hit.Point, rl.Vector3{Y: 0.5}, 1e-5) {
		t.Errorf("expected hit at (0,0.5,0), got %v", hit.Point)
	}
}

func TestSegmentRaycastToleranceBoundary(t *testing.T) {
	seg := &Segment{B: rl.Vector3{Y: 1}, PickRadius: 0.3}

	within := Ray{Origin: rl.Vector3{X: 5, Y: 0.5, Z: 0.29}, Direction: rl.Vector3{X: -1}}
	if _, ok := seg.Raycast(within); !ok {
		t.Error("expected hit just inside the pick radius")
	}

	outside := Ray{Origin: rl.Vector3{X: 5, Y: 0.5, Z: 0.31}, Direction: rl.Vector3{X: -1}}
	if _, ok := seg.Raycast(outside); ok {
		t.Error("expected miss just outside the pick radius")
	}
}

func TestSegmentRaycastClampsToEndpoints(t *testing.T) {
	seg := &Segment{B: rl.Vector3{Y: 1}, PickRadius: 0.3}

	// Closest line point lies past B; after clamping, the ray passes a full
	// unit away from the endpoint.
	ray := Ray{Origin: rl.Vector3{X: 5, Y: 2}, Direction: rl.Vector3{X: -1}}
	if _, ok := seg.Raycast(ray); ok {
		t.Error("expected miss beyond the clamped endpoint")
	}

	// A generous tolerance turns the same ray into an endpoint hit.
	seg.PickRadius = 1.5
	hit, ok := seg.Raycast(ray)
	if !ok {
		t.Fatal("expected endpoint hit with large pick radius")
	}
	if !approx(hit.T, 5, 1e-5) {
		t.Errorf("expected t=5, got %f", hit.T)
	}
}

func TestSegmentRaycastMisses(t *testing.T) {
	seg := &Segment{B: rl.Vector3{Y: 1}, PickRadius: 0.3}

	tests := []struct {
		name string
		ray  Ray
	}{
		{"parallel to segment", Ray{Origin: rl.Vector3{X: 0.1}, Direction: rl.Vector3{Y: 1}}},
		{"behind origin", Ray{Origin: rl.Vector3{X: -5, Y: 0.5}, Direction: rl.Vector3{X: -1}}},
		{"zero direction", Ray{Origin: rl.Vector3{X: 5, Y: 0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := seg.Raycast(tt.ray); ok {
				t.Error("expected miss")
			}
		})
	}
}
