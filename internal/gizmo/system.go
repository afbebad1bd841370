// Package gizmo is the picking and dispatch core of an interactive 3D gizmo
// system: a registry of pickable geometry and a state machine that raycasts
// the cursor against it and routes press/drag/release events to the closest
// hit.
//
// The package is single-threaded by contract: each event entry point runs to
// completion before the next is delivered, and callbacks execute inline on
// the delivering goroutine. Hosts with concurrent input must serialize event
// delivery at the boundary.
package gizmo

import (
	"errors"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gizmo3d/internal/geom"
	"gizmo3d/internal/projector"
)

// ErrRemoved reports an operation on an entry that has already been removed.
var ErrRemoved = errors.New("gizmo: entry already removed")

// System owns the registered geometry and the interaction state machine.
// Target and pressed are tracked separately: hovering retargets on every
// cursor move, but an active drag stays latched to the entry that received
// the press no matter what the cursor passes over.
type System struct {
	cam projector.Camera

	entries []*Interactable
	nextUID uint64

	mouse      rl.Vector2
	buttonDown bool

	target  *Interactable
	pressed *Interactable

	// Registry mutations requested from inside a callback are deferred so an
	// in-progress pass never iterates a mutated slice.
	inPass        bool
	pendingAdds   []*Interactable
	pendingRemove []*Interactable
}

// NewSystem creates a system with the given initial camera snapshot.
func NewSystem(cam projector.Camera) *System {
	return &System{cam: cam}
}

// SetCamera refreshes the camera snapshot. Hosts call this at least once per
// cursor event, before delivering it.
func (s *System) SetCamera(cam projector.Camera) {
	s.cam = cam
}

// Camera returns the current camera snapshot.
func (s *System) Camera() projector.Camera {
	return s.cam
}

// Target returns the entry currently under the cursor, or nil. Useful for
// hover highlighting.
func (s *System) Target() *Interactable {
	return s.target
}

// PressedEntry returns the entry latched by the last button press, or nil.
func (s *System) PressedEntry() *Interactable {
	return s.pressed
}

// Mouse returns the last cursor position delivered to the system.
func (s *System) Mouse() rl.Vector2 {
	return s.mouse
}

// ButtonDown reports whether the button is currently held.
func (s *System) ButtonDown() bool {
	return s.buttonDown
}

// Entries returns the live entries in insertion order. The slice is the
// system's own; callers must not mutate it.
func (s *System) Entries() []*Interactable {
	return s.entries
}

// FindByUID resolves a UID to its entry, or nil if unknown or removed.
func (s *System) FindByUID(uid uint64) *Interactable {
	if uid == 0 {
		return nil
	}
	for _, it := range s.entries {
		if it.UID == uid {
			return it
		}
	}
	return nil
}

// CreatePlane registers an infinite plane.
func (s *System) CreatePlane(normal, center rl.Vector3, cb Callbacks) (*Interactable, error) {
	shape, err := geom.NewPlane(normal, center)
	if err != nil {
		return nil, err
	}
	return s.add(shape, cb), nil
}

// CreateSphere registers a sphere.
func (s *System) CreateSphere(center rl.Vector3, radius float32, cb Callbacks) (*Interactable, error) {
	shape, err := geom.NewSphere(center, radius)
	if err != nil {
		return nil, err
	}
	return s.add(shape, cb), nil
}

// CreateSegment registers a line segment pickable within pickRadius
// (non-positive selects geom.DefaultPickRadius).
func (s *System) CreateSegment(a, b rl.Vector3, pickRadius float32, cb Callbacks) (*Interactable, error) {
	shape, err := geom.NewSegment(a, b, pickRadius)
	if err != nil {
		return nil, err
	}
	return s.add(shape, cb), nil
}

// CreateCube registers an axis-aligned cube.
func (s *System) CreateCube(center rl.Vector3, width, height, depth float32, cb Callbacks) (*Interactable, error) {
	shape, err := geom.NewCube(center, width, height, depth)
	if err != nil {
		return nil, err
	}
	return s.add(shape, cb), nil
}

// CreateCone registers a cone with its apex at center and base radius at the
// far end of axis.
func (s *System) CreateCone(center, axis rl.Vector3, radius float32, cb Callbacks) (*Interactable, error) {
	shape, err := geom.NewCone(center, axis, radius)
	if err != nil {
		return nil, err
	}
	return s.add(shape, cb), nil
}

func (s *System) add(shape geom.Raycastable, cb Callbacks) *Interactable {
	s.nextUID++
	it := &Interactable{UID: s.nextUID, Shape: shape}
	it.Pressed.AddListener(cb.OnPress)
	it.Released.AddListener(cb.OnRelease)
	it.Dragged.AddListener(cb.OnDrag)

	if s.inPass {
		s.pendingAdds = append(s.pendingAdds, it)
	} else {
		s.entries = append(s.entries, it)
	}
	return it
}

// Remove unregisters the entry. Removing from inside a callback is deferred
// to the end of the delivering event; removing an entry twice returns
// ErrRemoved and changes nothing.
func (s *System) Remove(it *Interactable) error {
	if it == nil || it.removed {
		return ErrRemoved
	}
	it.removed = true
	if s.inPass {
		s.pendingRemove = append(s.pendingRemove, it)
		return nil
	}
	s.detach(it)
	return nil
}

func (s *System) detach(it *Interactable) {
	for i, e := range s.entries {
		if e == it {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	if s.target == it {
		s.target = nil
	}
	// A pressed entry that disappears mid-drag is dropped without a synthetic
	// release: callbacks never fire on removed entries.
	if s.pressed == it {
		s.pressed = nil
	}
}

func (s *System) flushPending() {
	for _, it := range s.pendingRemove {
		s.detach(it)
	}
	s.pendingRemove = s.pendingRemove[:0]

	s.entries = append(s.entries, s.pendingAdds...)
	s.pendingAdds = s.pendingAdds[:0]
}

// HandleCursorMoved processes a cursor move in normalized device coordinates.
// It recomputes the hovered target and, while the button is down, dispatches
// drag to the pressed entry — never to whatever the cursor is over now.
func (s *System) HandleCursorMoved(x, y float32) {
	s.mouse = rl.Vector2{X: x, Y: y}

	s.inPass = true
	s.target = s.pick()
	if s.buttonDown && s.pressed != nil {
		s.pressed.Dragged.Invoke(s.mouse)
	}
	s.inPass = false
	s.flushPending()
}

// HandleButtonPressed latches the hovered entry as pressed and fires its
// press callback. Pressing over empty space is a no-op.
func (s *System) HandleButtonPressed() {
	s.buttonDown = true
	if s.target == nil {
		return
	}
	s.inPass = true
	s.pressed = s.target
	s.pressed.Pressed.Invoke()
	s.inPass = false
	s.flushPending()
}

// HandleButtonReleased fires the pressed entry's release callback exactly
// once and clears the latch. Releasing with no active press is a no-op.
func (s *System) HandleButtonReleased() {
	s.buttonDown = false
	if s.pressed == nil {
		return
	}
	s.inPass = true
	s.pressed.Released.Invoke()
	s.inPass = false
	s.pressed = nil
	s.flushPending()
}

// pick raycasts the cursor against every live entry and returns the one whose
// hit point lies closest to the camera. Ties go to the earliest-registered
// entry; entries whose geometry has degenerated are skipped rather than
// aborting the pass.
func (s *System) pick() *Interactable {
	ray, err := s.cam.ScreenToRay(s.mouse)
	if err != nil {
		return nil
	}

	var best *Interactable
	bestDist := float32(math.MaxFloat32)
	for _, it := range s.entries {
		if it.removed || it.Shape == nil {
			continue
		}
		hit, ok := it.Shape.Raycast(ray)
		if !ok {
			continue
		}
		dist := rl.Vector3Length(rl.Vector3Subtract(hit.Point, s.cam.Position))
		if dist < bestDist {
			bestDist = dist
			best = it
		}
	}
	return best
}
