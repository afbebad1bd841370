package gizmo

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gizmo3d/internal/geom"
)

// Interactable pairs one pickable shape with the callback slots the dispatch
// engine fires. The pointer itself is the handle: callers keep it to mutate
// the shape between frames, attach extra listeners, or remove the entry.
type Interactable struct {
	// UID identifies the entry for the lifetime of its System (0 = none).
	UID uint64

	// Shape is the picked geometry. Mutating its fields (e.g. a sphere's
	// Center) through the handle is the supported way to move geometry
	// between frames.
	Shape geom.Raycastable

	// Pressed fires when a button press lands on this entry while hovered.
	Pressed Event
	// Released fires when the button is released after a press on this
	// entry, wherever the cursor is by then.
	Released Event
	// Dragged fires with the current cursor position on every cursor move
	// while this entry is pressed, even when the cursor has left its surface.
	Dragged EventWithArg[rl.Vector2]

	removed bool
}

// Removed reports whether the entry has been removed from its system.
// Operations through a removed handle are no-ops.
func (it *Interactable) Removed() bool {
	return it.removed
}

// Callbacks are the initial listeners attached at creation. Any slot may be
// nil.
type Callbacks struct {
	OnPress   func()
	OnRelease func()
	OnDrag    func(screen rl.Vector2)
}
