// Package orbit provides the demo's orbit camera: yaw/pitch around a target
// point with spring-smoothed wheel zoom.
package orbit

import (
	"math"

	"github.com/charmbracelet/harmonica"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	Target      rl.Vector3
	Yaw         float32
	Pitch       float32
	MinDistance float32
	MaxDistance float32
	LookSpeed   float32
	ZoomSpeed   float32

	spring   harmonica.Spring
	zoom     float64
	zoomVel  float64
	zoomGoal float64
}

func New(target rl.Vector3, distance float32) *Camera {
	return &Camera{
		Target:      target,
		Yaw:         -135.0,
		Pitch:       -30.0,
		MinDistance: 2.0,
		MaxDistance: 40.0,
		LookSpeed:   0.25,
		ZoomSpeed:   1.2,
		spring:      harmonica.NewSpring(harmonica.FPS(60), 6.0, 0.9),
		zoom:        float64(distance),
		zoomGoal:    float64(distance),
	}
}

// Update polls raylib input: right-button drag orbits, the wheel retargets the
// zoom spring, and one spring step runs per frame.
func (c *Camera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.ApplyLook(delta.X, delta.Y)
	}
	c.StepZoom(rl.GetMouseWheelMove())
}

// ApplyLook orbits by a cursor delta in pixels.
func (c *Camera) ApplyLook(dx, dy float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch -= dy * c.LookSpeed

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// StepZoom folds a wheel movement into the zoom goal and advances the spring
// one frame. The goal clamps to [MinDistance, MaxDistance]; the spring eases
// the actual distance toward it.
func (c *Camera) StepZoom(wheel float32) {
	c.zoomGoal -= float64(wheel) * float64(c.ZoomSpeed)
	if c.zoomGoal < float64(c.MinDistance) {
		c.zoomGoal = float64(c.MinDistance)
	}
	if c.zoomGoal > float64(c.MaxDistance) {
		c.zoomGoal = float64(c.MaxDistance)
	}
	c.zoom, c.zoomVel = c.spring.Update(c.zoom, c.zoomVel, c.zoomGoal)
}

// Distance returns the current (sprung) distance from target to eye.
func (c *Camera) Distance() float32 {
	return float32(c.zoom)
}

// Position returns the eye point on the orbit sphere.
func (c *Camera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	return rl.Vector3{
		X: c.Target.X - float32(math.Cos(yawRad)*math.Cos(pitchRad))*c.Distance(),
		Y: c.Target.Y - float32(math.Sin(pitchRad))*c.Distance(),
		Z: c.Target.Z - float32(math.Sin(yawRad)*math.Cos(pitchRad))*c.Distance(),
	}
}

func (c *Camera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
