package gizmo

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gizmo3d/internal/geom"
)

const tipLength float32 = 0.35

// TranslationArrow is the worked example built on the core: a pickable shaft
// segment (optionally capped with a cone tip) that translates itself by the
// cursor's projected delta on a drag plane and reports each move to its
// owner.
type TranslationArrow struct {
	// PlaneNormal fixes the drag plane through the arrow base. Leave zero to
	// build a camera-facing plane containing the arrow axis at press time.
	PlaneNormal rl.Vector3
	// Constrained restricts the translation to the arrow's own direction.
	Constrained bool
	// OnMove, when set, receives the cumulative world-space delta from the
	// grab point on every drag step.
	OnMove func(delta rl.Vector3)

	sys   *System
	entry *Interactable
	tip   *Interactable

	dragging    bool
	dragNormal  rl.Vector3
	dragPoint   rl.Vector3
	grab        rl.Vector3
	initA       rl.Vector3
	initB       rl.Vector3
	initTipApex rl.Vector3
}

// NewTranslationArrow registers a shaft segment from a to b. A non-positive
// pickRadius selects geom.DefaultPickRadius.
func NewTranslationArrow(sys *System, a, b rl.Vector3, pickRadius float32) (*TranslationArrow, error) {
	arrow := &TranslationArrow{sys: sys}
	entry, err := sys.CreateSegment(a, b, pickRadius, Callbacks{
		OnPress:   arrow.press,
		OnRelease: arrow.release,
		OnDrag:    arrow.drag,
	})
	if err != nil {
		return nil, err
	}
	arrow.entry = entry
	return arrow, nil
}

// AddTip registers a cone arrowhead past B, sharing the shaft's callbacks so
// grabbing the tip drags the arrow too.
func (a *TranslationArrow) AddTip(radius float32) error {
	seg := a.segment()
	dir := rl.Vector3Normalize(rl.Vector3Subtract(seg.B, seg.A))
	apex := rl.Vector3Add(seg.B, rl.Vector3Scale(dir, tipLength))
	axis := rl.Vector3Scale(dir, -tipLength)

	tip, err := a.sys.CreateCone(apex, axis, radius, Callbacks{
		OnPress:   a.press,
		OnRelease: a.release,
		OnDrag:    a.drag,
	})
	if err != nil {
		return err
	}
	a.tip = tip
	return nil
}

// Entry returns the shaft's registry handle.
func (a *TranslationArrow) Entry() *Interactable {
	return a.entry
}

// Tip returns the arrowhead handle, or nil when no tip was added.
func (a *TranslationArrow) Tip() *Interactable {
	return a.tip
}

// Segment returns the shaft geometry for drawing or repositioning.
func (a *TranslationArrow) Segment() *geom.Segment {
	return a.segment()
}

// SetEndpoints moves the arrow (and its tip) outside of a drag.
func (a *TranslationArrow) SetEndpoints(from, to rl.Vector3) {
	seg := a.segment()
	seg.A = from
	seg.B = to
	a.syncTip()
}

func (a *TranslationArrow) segment() *geom.Segment {
	seg, _ := a.entry.Shape.(*geom.Segment)
	return seg
}

func (a *TranslationArrow) syncTip() {
	if a.tip == nil {
		return
	}
	cone, ok := a.tip.Shape.(*geom.Cone)
	if !ok {
		return
	}
	seg := a.segment()
	dir := rl.Vector3Normalize(rl.Vector3Subtract(seg.B, seg.A))
	cone.Center = rl.Vector3Add(seg.B, rl.Vector3Scale(dir, tipLength))
	cone.Axis = rl.Vector3Scale(dir, -tipLength)
}

func (a *TranslationArrow) press() {
	seg := a.segment()
	if seg == nil {
		return
	}
	a.initA = seg.A
	a.initB = seg.B
	if a.tip != nil {
		if cone, ok := a.tip.Shape.(*geom.Cone); ok {
			a.initTipApex = cone.Center
		}
	}

	a.dragPoint = seg.A
	a.dragNormal = a.PlaneNormal
	if rl.Vector3Length(a.dragNormal) < geom.Epsilon {
		// Camera-facing plane that still contains the arrow axis, so axis
		// motion maps 1:1 onto the plane.
		cam := a.sys.Camera()
		view := rl.Vector3Normalize(rl.Vector3Subtract(seg.A, cam.Position))
		axis := rl.Vector3Normalize(rl.Vector3Subtract(seg.B, seg.A))
		side := rl.Vector3CrossProduct(view, axis)
		a.dragNormal = rl.Vector3Normalize(rl.Vector3CrossProduct(axis, side))
	}

	grab, err := a.sys.Camera().ProjectOntoPlane(a.sys.Mouse(), a.dragNormal, a.dragPoint)
	if err != nil {
		// Plane edge-on at press: the drag never arms.
		return
	}
	a.grab = grab
	a.dragging = true
}

func (a *TranslationArrow) drag(screen rl.Vector2) {
	if !a.dragging {
		return
	}
	seg := a.segment()
	if seg == nil {
		return
	}

	point, err := a.sys.Camera().ProjectOntoPlane(screen, a.dragNormal, a.dragPoint)
	if err != nil {
		// Plane went edge-on mid-drag: hold position rather than jump.
		return
	}
	delta := rl.Vector3Subtract(point, a.grab)
	if a.Constrained {
		axis := rl.Vector3Normalize(rl.Vector3Subtract(a.initB, a.initA))
		delta = rl.Vector3Scale(axis, rl.Vector3DotProduct(delta, axis))
	}

	seg.A = rl.Vector3Add(a.initA, delta)
	seg.B = rl.Vector3Add(a.initB, delta)
	if a.tip != nil {
		if cone, ok := a.tip.Shape.(*geom.Cone); ok {
			cone.Center = rl.Vector3Add(a.initTipApex, delta)
		}
	}
	if a.OnMove != nil {
		a.OnMove(delta)
	}
}

func (a *TranslationArrow) release() {
	a.dragging = false
}
