// Command gizmodemo hosts the gizmo system in a raylib window: three pickable
// demo shapes, a translation gizmo on the selected one, and an orbit camera.
//
// Controls: left mouse picks and drags, right mouse orbits, wheel zooms.
package main

import (
	"encoding/json"
	"log"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"gizmo3d/internal/geom"
	"gizmo3d/internal/gizmo"
	"gizmo3d/internal/orbit"
	"gizmo3d/internal/projector"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	prefsFile    = "gizmodemo.json"
)

type prefs struct {
	PickRadius     float32 `json:"pickRadius"`
	Epsilon        float32 `json:"epsilon"`
	CameraDistance float32 `json:"cameraDistance"`
}

func loadPrefs() prefs {
	p := prefs{
		PickRadius:     geom.DefaultPickRadius,
		CameraDistance: 10,
	}
	data, err := os.ReadFile(prefsFile)
	if err != nil {
		return p // No prefs file, defaults are fine
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Failed to parse %s: %v", prefsFile, err)
		return p
	}
	if p.Epsilon > 0 {
		geom.Epsilon = p.Epsilon
	}
	if p.CameraDistance <= 0 {
		p.CameraDistance = 10
	}
	return p
}

type shapeKind int

const (
	shapeSphere shapeKind = iota
	shapeCube
	shapeCone
)

type demoObject struct {
	name  string
	kind  shapeKind
	pos   rl.Vector3
	color rl.Color
	entry *gizmo.Interactable
}

// syncShape pushes pos back into the registered pick geometry.
func (o *demoObject) syncShape() {
	switch s := o.entry.Shape.(type) {
	case *geom.Sphere:
		s.Center = o.pos
	case *geom.Cube:
		s.Center = o.pos
	case *geom.Cone:
		s.Center = rl.Vector3Add(o.pos, rl.Vector3{Y: 1})
		s.Axis = rl.Vector3{Y: -1}
	}
}

type demo struct {
	cam *orbit.Camera
	sys *gizmo.System

	objects  []*demoObject
	selected *demoObject
	dragBase rl.Vector3

	arrows      []*gizmo.TranslationArrow
	constrained bool

	hoverPulse *gween.Tween
	hoverAlpha float32
	lastHover  *gizmo.Interactable
}

func newDemo(p prefs) *demo {
	d := &demo{
		cam:         orbit.New(rl.Vector3{}, p.CameraDistance),
		constrained: true,
		hoverAlpha:  1,
	}
	cam3d := d.cam.Raylib()
	d.sys = gizmo.NewSystem(projector.FromRaylibCamera(cam3d, screenWidth, screenHeight))

	d.addSphere("sphere", rl.Vector3{X: -3, Y: 0.75}, rl.NewColor(230, 140, 60, 255))
	d.addCube("cube", rl.Vector3{Y: 0.5}, rl.NewColor(90, 170, 230, 255))
	d.addCone("cone", rl.Vector3{X: 3}, rl.NewColor(170, 110, 220, 255))

	d.buildArrows(p.PickRadius)
	d.selectObject(d.objects[0])
	return d
}

func (d *demo) addSphere(name string, pos rl.Vector3, color rl.Color) {
	obj := &demoObject{name: name, kind: shapeSphere, pos: pos, color: color}
	entry, err := d.sys.CreateSphere(pos, 0.75, gizmo.Callbacks{
		OnPress: func() { d.selectObject(obj) },
	})
	if err != nil {
		log.Fatalf("registering %s: %v", name, err)
	}
	obj.entry = entry
	d.objects = append(d.objects, obj)
}

func (d *demo) addCube(name string, pos rl.Vector3, color rl.Color) {
	obj := &demoObject{name: name, kind: shapeCube, pos: pos, color: color}
	entry, err := d.sys.CreateCube(pos, 1, 1, 1, gizmo.Callbacks{
		OnPress: func() { d.selectObject(obj) },
	})
	if err != nil {
		log.Fatalf("registering %s: %v", name, err)
	}
	obj.entry = entry
	d.objects = append(d.objects, obj)
}

func (d *demo) addCone(name string, pos rl.Vector3, color rl.Color) {
	obj := &demoObject{name: name, kind: shapeCone, pos: pos, color: color}
	apex := rl.Vector3Add(pos, rl.Vector3{Y: 1})
	entry, err := d.sys.CreateCone(apex, rl.Vector3{Y: -1}, 0.6, gizmo.Callbacks{
		OnPress: func() { d.selectObject(obj) },
	})
	if err != nil {
		log.Fatalf("registering %s: %v", name, err)
	}
	obj.entry = entry
	d.objects = append(d.objects, obj)
}

// buildArrows registers the three axis arrows. Each arrow snapshots the
// selected object's position at press time and replays its cumulative drag
// delta onto the object.
func (d *demo) buildArrows(pickRadius float32) {
	axes := []rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}}
	for _, axis := range axes {
		arrow, err := gizmo.NewTranslationArrow(d.sys, rl.Vector3{}, axis, pickRadius)
		if err != nil {
			log.Fatalf("registering axis arrow: %v", err)
		}
		if err := arrow.AddTip(0.12); err != nil {
			log.Fatalf("registering arrow tip: %v", err)
		}
		arrow.Constrained = d.constrained
		arrow.OnMove = func(delta rl.Vector3) {
			if d.selected == nil {
				return
			}
			d.selected.pos = rl.Vector3Add(d.dragBase, delta)
			d.selected.syncShape()
		}
		snapshot := func() {
			if d.selected != nil {
				d.dragBase = d.selected.pos
			}
		}
		arrow.Entry().Pressed.AddListener(snapshot)
		arrow.Tip().Pressed.AddListener(snapshot)
		d.arrows = append(d.arrows, arrow)
	}
}

func (d *demo) selectObject(obj *demoObject) {
	d.selected = obj
	d.placeArrows()
}

// placeArrows moves the three arrows onto the selected object.
func (d *demo) placeArrows() {
	if d.selected == nil {
		return
	}
	base := d.selected.pos
	axes := []rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}}
	for i, arrow := range d.arrows {
		tip := rl.Vector3Add(base, rl.Vector3Scale(axes[i], 1.5))
		arrow.SetEndpoints(base, tip)
	}
}

func (d *demo) update() {
	d.cam.Update()

	cam3d := d.cam.Raylib()
	d.sys.SetCamera(projector.FromRaylibCamera(cam3d, screenWidth, screenHeight))

	mouse := rl.GetMousePosition()
	ndcX := 2*mouse.X/screenWidth - 1
	ndcY := 1 - 2*mouse.Y/screenHeight
	d.sys.HandleCursorMoved(ndcX, ndcY)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		d.sys.HandleButtonPressed()
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		d.sys.HandleButtonReleased()
		// Drag ended: snap the arrows back onto the object so shafts and tips
		// line up again.
		d.placeArrows()
	}

	d.updateHoverPulse()
}

func (d *demo) updateHoverPulse() {
	hover := d.sys.Target()
	if hover != d.lastHover {
		d.lastHover = hover
		if hover != nil {
			d.hoverPulse = gween.New(0.35, 1, 0.4, ease.OutQuad)
		} else {
			d.hoverPulse = nil
			d.hoverAlpha = 1
		}
	}
	if d.hoverPulse != nil {
		alpha, done := d.hoverPulse.Update(rl.GetFrameTime())
		d.hoverAlpha = alpha
		if done {
			d.hoverPulse = nil
		}
	}
}

func (d *demo) objectColor(obj *demoObject) rl.Color {
	if d.sys.Target() == obj.entry {
		return rl.Fade(rl.White, d.hoverAlpha)
	}
	if d.selected == obj {
		return rl.Fade(obj.color, 1)
	}
	return rl.Fade(obj.color, 0.85)
}

func (d *demo) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 33, 255))

	rl.BeginMode3D(d.cam.Raylib())
	rl.DrawGrid(20, 1)

	for _, obj := range d.objects {
		color := d.objectColor(obj)
		switch obj.kind {
		case shapeSphere:
			rl.DrawSphere(obj.pos, 0.75, color)
		case shapeCube:
			rl.DrawCube(obj.pos, 1, 1, 1, color)
		case shapeCone:
			apex := rl.Vector3Add(obj.pos, rl.Vector3{Y: 1})
			rl.DrawCylinderEx(obj.pos, apex, 0.6, 0, 24, color)
		}
	}

	arrowColors := []rl.Color{rl.Red, rl.Green, rl.Blue}
	for i, arrow := range d.arrows {
		color := arrowColors[i]
		if d.sys.Target() == arrow.Entry() || d.sys.Target() == arrow.Tip() {
			color = rl.Yellow
		}
		seg := arrow.Segment()
		rl.DrawCylinderEx(seg.A, seg.B, 0.04, 0.04, 12, color)
		if cone, ok := arrow.Tip().Shape.(*geom.Cone); ok {
			base := rl.Vector3Add(cone.Center, cone.Axis)
			rl.DrawCylinderEx(base, cone.Center, cone.Radius, 0, 12, color)
		}
	}
	rl.EndMode3D()

	d.drawToolbar()
	rl.EndDrawing()
}

func (d *demo) drawToolbar() {
	panel := rl.NewRectangle(10, 10, 240, 90)
	rl.DrawRectangleRec(panel, rl.Fade(rl.Black, 0.5))

	was := d.constrained
	d.constrained = gui.CheckBox(rl.NewRectangle(20, 20, 20, 20), "Axis constrained", d.constrained)
	if d.constrained != was {
		for _, arrow := range d.arrows {
			arrow.Constrained = d.constrained
		}
	}

	status := "hover: none"
	if hover := d.sys.Target(); hover != nil {
		status = "hover: " + d.nameFor(hover)
	}
	gui.Label(rl.NewRectangle(20, 45, 220, 20), status)
	if d.selected != nil {
		gui.Label(rl.NewRectangle(20, 70, 220, 20), "selected: "+d.selected.name)
	}
}

func (d *demo) nameFor(entry *gizmo.Interactable) string {
	for _, obj := range d.objects {
		if obj.entry == entry {
			return obj.name
		}
	}
	names := []string{"x arrow", "y arrow", "z arrow"}
	for i, arrow := range d.arrows {
		if arrow.Entry() == entry || arrow.Tip() == entry {
			return names[i]
		}
	}
	return "?"
}

func main() {
	p := loadPrefs()

	rl.InitWindow(screenWidth, screenHeight, "gizmo3d demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	d := newDemo(p)
	for !rl.WindowShouldClose() {
		d.update()
		d.draw()
	}
}
