// Package editor turns pointer, wheel and key input into edits of a Layer.
//
// Input positions are in screen space. The editor converts them to world
// space through the layer camera before hit testing or editing shapes.
package editor

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/camera"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

// Mode is the gesture currently in progress.
type Mode int

const (
	ModeNone Mode = iota
	ModeDrawShape
	ModeDragShape
	ModeDragAnchor
	ModePan
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeDrawShape:
		return "draw"
	case ModeDragShape:
		return "drag shape"
	case ModeDragAnchor:
		return "drag anchor"
	case ModePan:
		return "pan"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// DrawMode selects the kind of shape a new gesture creates.
type DrawMode int

const (
	DrawRectangle DrawMode = iota
	DrawCircle
	DrawPolygon
)

func (d DrawMode) String() string {
	switch d {
	case DrawRectangle:
		return "rectangle"
	case DrawCircle:
		return "circle"
	case DrawPolygon:
		return "polygon"
	}
	return fmt.Sprintf("DrawMode(%d)", int(d))
}

const (
	defaultColor          = "5555ff"
	defaultZoomIn         = 1.1
	defaultZoomOut        = 0.9
	defaultClickThreshold = 5
)

// Editor is the pointer state machine for one drawing surface. It is not
// safe for concurrent use.
type Editor struct {
	layer  *Layer
	camera *camera.Camera

	mode     Mode
	drawMode DrawMode

	color          string
	zoomIn         float64
	zoomOut        float64
	clickThreshold float64
	newID          func() string
	logger         *log.Logger

	start    geom.Point
	button   mouse.Button
	drawing  shape.Shape
	baseline shape.Shape
	polygon  *shape.Polygon
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithColor sets the colour given to newly drawn shapes.
func WithColor(c string) Option { return func(e *Editor) { e.color = c } }

// WithZoomFactors sets the scale multipliers for one wheel step.
func WithZoomFactors(in, out float64) Option {
	return func(e *Editor) {
		if in > 0 {
			e.zoomIn = in
		}
		if out > 0 {
			e.zoomOut = out
		}
	}
}

// WithClickThreshold sets the screen distance under which a draw gesture is
// treated as a click and discarded.
func WithClickThreshold(d float64) Option { return func(e *Editor) { e.clickThreshold = d } }

// WithIDGenerator sets the function used to label new shapes.
func WithIDGenerator(fn func() string) Option { return func(e *Editor) { e.newID = fn } }

// WithLogger routes gesture diagnostics to l.
func WithLogger(l *log.Logger) Option { return func(e *Editor) { e.logger = l } }

// WithDrawMode sets the initial draw mode.
func WithDrawMode(d DrawMode) Option { return func(e *Editor) { e.drawMode = d } }

// New creates an editor for layer.
func New(layer *Layer, opts ...Option) *Editor {
	e := &Editor{
		layer:          layer,
		camera:         layer.Camera(),
		color:          defaultColor,
		zoomIn:         defaultZoomIn,
		zoomOut:        defaultZoomOut,
		clickThreshold: defaultClickThreshold,
		newID:          uuid.NewString,
		logger:         log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Editor) Layer() *Layer { return e.layer }

// Mode returns the gesture in progress.
func (e *Editor) Mode() Mode { return e.mode }

func (e *Editor) DrawMode() DrawMode { return e.drawMode }

// SetDrawMode changes the kind of shape the next gesture creates. It does
// not affect a gesture in progress.
func (e *Editor) SetDrawMode(d DrawMode) { e.drawMode = d }

// Pending returns the polygon being built, or nil.
func (e *Editor) Pending() *shape.Polygon {
	e.dropRemovedPolygon()
	return e.polygon
}

// dropRemovedPolygon forgets the polygon being built once something else
// has taken it out of the layer.
func (e *Editor) dropRemovedPolygon() {
	if e.polygon != nil && e.layer.IndexOf(e.polygon) < 0 {
		e.polygon = nil
	}
}

// PointerDown starts a gesture at the screen position p. Presses of other
// buttons are ignored until the gesture in progress ends.
func (e *Editor) PointerDown(p geom.Point, b mouse.Button, mods key.Modifiers) {
	if e.mode != ModeNone && b != e.button {
		return
	}
	e.start, e.button = p, b
	e.dropRemovedPolygon()
	coord := e.camera.ToWorld(p)
	switch b {
	case mouse.ButtonLeft:
		e.leftDown(coord, mods)
	case mouse.ButtonRight:
		e.FinishPolygon()
	case mouse.ButtonMiddle:
		e.camera.Save(p)
		e.mode = ModePan
	}
}

func (e *Editor) leftDown(coord geom.Point, mods key.Modifiers) {
	if mods&key.ModControl != 0 {
		e.FinishPolygon()
		e.layer.Select(e.layer.HitTest(coord))
		return
	}

	if e.polygon != nil && e.drawMode == DrawPolygon {
		e.polygon.Append(coord)
		return
	}

	if g := e.layer.Group(); g != nil {
		if i := e.layer.HitAnchor(coord); i >= 0 {
			g.Save(i)
			e.mode = ModeDragAnchor
			return
		}
		if shape.Contains(g.Shape(), coord) {
			g.Save(-1)
			e.mode = ModeDragShape
			return
		}
	}

	e.layer.Deselect()
	switch e.drawMode {
	case DrawRectangle, DrawCircle:
		e.FinishPolygon()
		var s shape.Shape
		if e.drawMode == DrawRectangle {
			s = shape.NewRectangle(coord.X, coord.Y, 0, 0)
		} else {
			s = shape.NewCircle(coord.X, coord.Y, 0)
		}
		e.decorate(s)
		e.layer.Add(s)
		e.drawing = s
		e.baseline = shape.Clone(s)
		e.mode = ModeDrawShape
	case DrawPolygon:
		poly := shape.NewPolygon(coord, coord)
		e.decorate(poly)
		e.layer.Add(poly)
		e.polygon = poly
	}
}

func (e *Editor) decorate(s shape.Shape) {
	s.SetColor(e.color)
	s.SetLabel("")
	if e.newID != nil {
		s.SetID(e.newID())
	}
}

// PointerMove continues the current gesture at the screen position p.
func (e *Editor) PointerMove(p geom.Point) {
	coord := e.camera.ToWorld(p)
	switch e.mode {
	case ModePan:
		e.camera.MoveTo(p)
	case ModeDragAnchor:
		if g := e.layer.Group(); g != nil {
			if err := g.DragResize(coord); err != nil {
				e.abort("drag anchor", err)
			}
		}
	case ModeDragShape:
		if g := e.layer.Group(); g != nil && g.Snapshot() != nil {
			shape.Move(g.Snapshot(), g.Shape(), coord.Sub(e.camera.ToWorld(e.start)))
		}
	case ModeDrawShape:
		e.drawTo(coord)
	default:
		if e.Pending() != nil {
			e.polygon.SetLast(coord)
		}
	}
}

func (e *Editor) drawTo(coord geom.Point) {
	switch s := e.drawing.(type) {
	case *shape.Rectangle:
		base := e.baseline.(*shape.Rectangle)
		corner := geom.Pt(base.X()-base.Width()*0.5, base.Y()-base.Height()*0.5)
		lo := geom.Pt(min(corner.X, coord.X), min(corner.Y, coord.Y))
		hi := geom.Pt(max(corner.X, coord.X), max(corner.Y, coord.Y))
		c := lo.Midpoint(hi)
		s.Set(c.X, c.Y, hi.X-lo.X, hi.Y-lo.Y)
	case *shape.Circle:
		s.SetRadius(coord.Distance(e.baseline.(*shape.Circle).Center()))
	}
}

// PointerUp ends the current gesture at the screen position p.
func (e *Editor) PointerUp(p geom.Point) {
	e.button = 0
	if e.mode == ModeDrawShape {
		if p.Distance(e.start) <= e.clickThreshold && e.drawing != nil {
			e.layer.Remove(e.drawing)
		}
		e.drawing, e.baseline = nil, nil
	}
	if g := e.layer.Group(); g != nil {
		g.Restore()
	}
	e.mode = ModeNone
}

// Wheel zooms around the screen position p. Positive deltas zoom in.
func (e *Editor) Wheel(p geom.Point, delta float64) {
	if delta == 0 {
		return
	}
	factor := e.zoomOut
	if delta > 0 {
		factor = e.zoomIn
	}
	if err := e.camera.ZoomTo(e.camera.Scale()*factor, p); err != nil {
		e.logger.Printf("zoom: %v", err)
	}
}

// FinishPolygon ends polygon building. The rubber band vertex is dropped;
// a polygon left with fewer than three vertices is discarded.
func (e *Editor) FinishPolygon() {
	poly := e.Pending()
	if poly == nil {
		return
	}
	e.polygon = nil
	if poly.Len()-1 < 3 {
		e.layer.Remove(poly)
		return
	}
	poly.PopBack()
}

// Cancel abandons any gesture, discards a polygon being built and clears
// the selection.
func (e *Editor) Cancel() {
	if e.Pending() != nil {
		e.layer.Remove(e.polygon)
		e.polygon = nil
	}
	if e.mode == ModeDrawShape && e.drawing != nil {
		e.layer.Remove(e.drawing)
	}
	e.drawing, e.baseline = nil, nil
	if g := e.layer.Group(); g != nil {
		g.Restore()
	}
	e.mode = ModeNone
	e.layer.Deselect()
}

// DeleteSelected removes the selected shape.
func (e *Editor) DeleteSelected() bool {
	s := e.layer.Selected()
	if s == nil {
		return false
	}
	if e.mode == ModeDragShape || e.mode == ModeDragAnchor {
		e.mode = ModeNone
	}
	if p, ok := s.(*shape.Polygon); ok && p == e.polygon {
		e.polygon = nil
	}
	return e.layer.Remove(s)
}

func (e *Editor) abort(what string, err error) {
	e.logger.Printf("%s: %v", what, err)
	if g := e.layer.Group(); g != nil {
		g.Restore()
	}
	e.mode = ModeNone
}

// HandleMouse dispatches a window mouse event.
func (e *Editor) HandleMouse(ev mouse.Event) {
	p := geom.Pt(float64(ev.X), float64(ev.Y))
	switch ev.Direction {
	case mouse.DirPress:
		if ev.Button.IsWheel() {
			e.Wheel(p, wheelDelta(ev.Button))
			return
		}
		e.PointerDown(p, ev.Button, ev.Modifiers)
	case mouse.DirRelease:
		if ev.Button.IsWheel() || (e.mode != ModeNone && ev.Button != e.button) {
			return
		}
		e.PointerUp(p)
	case mouse.DirStep:
		e.Wheel(p, wheelDelta(ev.Button))
	case mouse.DirNone:
		e.PointerMove(p)
	}
}

func wheelDelta(b mouse.Button) float64 {
	switch b {
	case mouse.ButtonWheelUp:
		return 1
	case mouse.ButtonWheelDown:
		return -1
	}
	return 0
}

// HandleKey applies editor key bindings and reports whether the key was
// consumed. Keys with Control held are left to the host.
func (e *Editor) HandleKey(ev key.Event) bool {
	if ev.Direction != key.DirPress || ev.Modifiers&key.ModControl != 0 {
		return false
	}
	switch ev.Code {
	case key.Code1, key.CodeKeypad1:
		e.SetDrawMode(DrawRectangle)
	case key.Code2, key.CodeKeypad2:
		e.SetDrawMode(DrawCircle)
	case key.Code3, key.CodeKeypad3:
		e.SetDrawMode(DrawPolygon)
	case key.Code0, key.CodeKeypad0:
		e.camera.Reset()
	case key.CodeDeleteForward, key.CodeDeleteBackspace:
		return e.DeleteSelected()
	case key.CodeEscape:
		e.Cancel()
	default:
		switch ev.Rune {
		case '1':
			e.SetDrawMode(DrawRectangle)
		case '2':
			e.SetDrawMode(DrawCircle)
		case '3':
			e.SetDrawMode(DrawPolygon)
		case '0':
			e.camera.Reset()
		default:
			return false
		}
	}
	return true
}
