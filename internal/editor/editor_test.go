package editor

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/camera"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

const eps = 1e-9

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func newEditor(opts ...Option) *Editor {
	n := 0
	ids := WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("shape-%d", n)
	})
	return New(NewLayer(camera.New()), append([]Option{ids}, opts...)...)
}

func press(e *Editor, x, y float64) {
	e.PointerDown(geom.Pt(x, y), mouse.ButtonLeft, 0)
}

func drag(e *Editor, x0, y0, x1, y1 float64) {
	press(e, x0, y0)
	e.PointerMove(geom.Pt(x1, y1))
	e.PointerUp(geom.Pt(x1, y1))
}

func TestClickDiscardsShape(t *testing.T) {
	for _, mode := range []DrawMode{DrawRectangle, DrawCircle} {
		e := newEditor(WithDrawMode(mode))
		press(e, 50, 50)
		if e.Layer().Len() != 1 || e.Mode() != ModeDrawShape {
			t.Fatalf("%v: shape not created on press", mode)
		}
		e.PointerMove(geom.Pt(52, 51))
		e.PointerUp(geom.Pt(52, 51))
		if e.Layer().Len() != 0 {
			t.Errorf("%v: click left %d shapes", mode, e.Layer().Len())
		}
		if e.Mode() != ModeNone {
			t.Errorf("%v: mode = %v", mode, e.Mode())
		}
	}
}

func TestDrawRectangle(t *testing.T) {
	e := newEditor()
	drag(e, 50, 50, 20, 10)
	if e.Layer().Len() != 1 {
		t.Fatalf("shapes = %d", e.Layer().Len())
	}
	r := e.Layer().At(0).(*shape.Rectangle)
	if r.Center() != geom.Pt(35, 30) || r.Width() != 30 || r.Height() != 40 || r.Rotation() != 0 {
		t.Fatalf("rect = %v", r)
	}
	if r.Color() != "5555ff" || r.ID() != "shape-1" || r.Label() != "" {
		t.Fatalf("metadata color=%q id=%q label=%q", r.Color(), r.ID(), r.Label())
	}
}

func TestDrawUsesWorldCoordinates(t *testing.T) {
	e := newEditor(WithColor("red"))
	e.Layer().Camera().Set(10, 20, 2)
	drag(e, 10, 20, 50, 60)
	r := e.Layer().At(0).(*shape.Rectangle)
	if r.Center() != geom.Pt(10, 10) || r.Width() != 20 || r.Height() != 20 {
		t.Fatalf("rect = %v", r)
	}
	if r.Color() != "red" {
		t.Fatalf("color = %q", r.Color())
	}
}

func TestDrawCircle(t *testing.T) {
	e := newEditor(WithDrawMode(DrawCircle))
	press(e, 10, 10)
	e.PointerMove(geom.Pt(13, 14))
	c := e.Layer().At(0).(*shape.Circle)
	if c.Radius() != 5 {
		t.Fatalf("radius = %v", c.Radius())
	}
	e.PointerMove(geom.Pt(40, 50))
	e.PointerUp(geom.Pt(40, 50))
	if c.Radius() != 50 || c.Center() != geom.Pt(10, 10) {
		t.Fatalf("circle = %v", c)
	}
}

func TestBuildPolygon(t *testing.T) {
	e := newEditor(WithDrawMode(DrawPolygon))
	steps := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	for i, p := range steps {
		if i > 0 {
			e.PointerMove(p)
		}
		press(e, p.X, p.Y)
		e.PointerUp(p)
	}
	e.PointerMove(geom.Pt(0, 10))
	poly := e.Pending()
	if poly == nil || poly.Len() != 4 {
		t.Fatalf("pending polygon = %v", poly)
	}
	if last, _ := poly.Last(); last != geom.Pt(0, 10) {
		t.Fatalf("rubber band vertex = %v", last)
	}

	e.PointerDown(geom.Pt(0, 10), mouse.ButtonRight, 0)
	if e.Pending() != nil {
		t.Fatal("right click did not finish the polygon")
	}
	if e.Layer().Len() != 1 || poly.Len() != 3 {
		t.Fatalf("finished polygon has %d points", poly.Len())
	}
	for i, p := range steps {
		if poly.At(i) != p {
			t.Errorf("vertex %d = %v, want %v", i, poly.At(i), p)
		}
	}
}

func TestAbortShortPolygon(t *testing.T) {
	e := newEditor(WithDrawMode(DrawPolygon))
	press(e, 0, 0)
	e.PointerUp(geom.Pt(0, 0))
	e.PointerMove(geom.Pt(10, 0))
	press(e, 10, 0)
	e.PointerUp(geom.Pt(10, 0))
	e.PointerDown(geom.Pt(10, 0), mouse.ButtonRight, 0)
	if e.Layer().Len() != 0 || e.Pending() != nil {
		t.Fatalf("short polygon kept: %d shapes", e.Layer().Len())
	}
}

func TestSwitchingModeFinishesPolygon(t *testing.T) {
	e := newEditor(WithDrawMode(DrawPolygon))
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)} {
		e.PointerMove(p)
		press(e, p.X, p.Y)
		e.PointerUp(p)
	}
	e.SetDrawMode(DrawRectangle)
	drag(e, 100, 100, 120, 120)
	if e.Layer().Len() != 2 {
		t.Fatalf("shapes = %d, want 2", e.Layer().Len())
	}
	if poly := e.Layer().At(0).(*shape.Polygon); poly.Len() != 4 {
		t.Fatalf("polygon has %d points, want 4", poly.Len())
	}
}

func TestCtrlClickSelects(t *testing.T) {
	e := newEditor()
	r := shape.NewRectangle(50, 50, 20, 20)
	e.Layer().Add(r)

	e.PointerDown(geom.Pt(55, 55), mouse.ButtonLeft, key.ModControl)
	e.PointerUp(geom.Pt(55, 55))
	if e.Layer().Selected() != r {
		t.Fatal("ctrl click did not select")
	}
	if e.Layer().Len() != 1 {
		t.Fatal("ctrl click created a shape")
	}

	e.PointerDown(geom.Pt(500, 500), mouse.ButtonLeft, key.ModControl)
	e.PointerUp(geom.Pt(500, 500))
	if e.Layer().Selected() != nil {
		t.Fatal("ctrl click on empty space kept the selection")
	}
}

func TestDragSelectedShape(t *testing.T) {
	e := newEditor()
	p := shape.NewPolygon(geom.Pt(0, 0), geom.Pt(20, 0), geom.Pt(10, 20))
	e.Layer().Add(p)
	e.Layer().Select(0)

	press(e, 10, 5)
	if e.Mode() != ModeDragShape {
		t.Fatalf("mode = %v, want drag shape", e.Mode())
	}
	e.PointerMove(geom.Pt(15, 10))
	e.PointerMove(geom.Pt(20, 15))
	e.PointerUp(geom.Pt(20, 15))
	if p.At(0) != geom.Pt(10, 10) || p.At(2) != geom.Pt(20, 30) {
		t.Fatalf("moved polygon = %v", p.Points())
	}
	if e.Layer().Len() != 1 || e.Layer().Group().Saved() {
		t.Fatal("drag left extra state behind")
	}
}

func TestDragAnchorResizes(t *testing.T) {
	e := newEditor()
	r := shape.NewRectangle(50, 50, 20, 20)
	e.Layer().Add(r)
	e.Layer().Select(0)

	press(e, 61, 59)
	if e.Mode() != ModeDragAnchor {
		t.Fatalf("mode = %v, want drag anchor", e.Mode())
	}
	e.PointerMove(geom.Pt(70, 80))
	e.PointerUp(geom.Pt(70, 80))
	if !near(r.Center(), geom.Pt(55, 60)) || math.Abs(r.Width()-30) > eps || math.Abs(r.Height()-40) > eps {
		t.Fatalf("rect = %v", r)
	}
	if g := e.Layer().Group(); g.Saved() || g.Selected() != -1 {
		t.Fatal("anchor state not restored")
	}
}

func TestDragRotateHandle(t *testing.T) {
	e := newEditor()
	r := shape.NewRectangle(0, 0, 10, 10)
	e.Layer().Add(r)
	e.Layer().Camera().Set(100, 100, 1)
	e.Layer().Select(0)

	handle, _ := shape.RectangleAnchor(r, shape.RotateHandle)
	s := e.Layer().Camera().ToScreen(handle)
	press(e, s.X, s.Y)
	e.PointerMove(geom.Pt(150, 100))
	e.PointerUp(geom.Pt(150, 100))
	if math.Abs(r.Rotation()-90) > 1e-9 {
		t.Fatalf("rotation = %v, want 90", r.Rotation())
	}
}

func TestClickOutsideSelectionStartsNewShape(t *testing.T) {
	e := newEditor()
	e.Layer().Add(shape.NewRectangle(0, 0, 10, 10))
	e.Layer().Select(0)
	drag(e, 100, 100, 140, 140)
	if e.Layer().Len() != 2 || e.Layer().Selected() != nil {
		t.Fatalf("len=%d selected=%v", e.Layer().Len(), e.Layer().Selected())
	}
}

func TestMiddleButtonPans(t *testing.T) {
	e := newEditor()
	e.PointerDown(geom.Pt(100, 100), mouse.ButtonMiddle, 0)
	e.PointerMove(geom.Pt(120, 90))
	e.PointerUp(geom.Pt(120, 90))
	cam := e.Layer().Camera()
	if cam.X() != 20 || cam.Y() != -10 || cam.Scale() != 1 {
		t.Fatalf("camera = %v", cam)
	}
	if e.Layer().Len() != 0 {
		t.Fatal("pan created a shape")
	}
}

func TestWheelZoomsAroundCursor(t *testing.T) {
	e := newEditor()
	cam := e.Layer().Camera()
	q := geom.Pt(100, 100)
	before := cam.ToWorld(q)

	e.HandleMouse(mouse.Event{X: 100, Y: 100, Button: mouse.ButtonWheelUp, Direction: mouse.DirStep})
	if math.Abs(cam.Scale()-1.1) > eps {
		t.Fatalf("scale = %v, want 1.1", cam.Scale())
	}
	e.HandleMouse(mouse.Event{X: 100, Y: 100, Button: mouse.ButtonWheelDown, Direction: mouse.DirStep})
	if math.Abs(cam.Scale()-0.99) > eps {
		t.Fatalf("scale = %v, want 0.99", cam.Scale())
	}
	if !near(cam.ToWorld(q), before) {
		t.Fatalf("pivot moved: %v -> %v", before, cam.ToWorld(q))
	}
}

func TestHandleMouseGesture(t *testing.T) {
	e := newEditor()
	e.HandleMouse(mouse.Event{X: 10, Y: 10, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	e.HandleMouse(mouse.Event{X: 30, Y: 40, Direction: mouse.DirNone})
	e.HandleMouse(mouse.Event{X: 30, Y: 40, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	if e.Layer().Len() != 1 {
		t.Fatalf("shapes = %d", e.Layer().Len())
	}
	r := e.Layer().At(0).(*shape.Rectangle)
	if r.Width() != 20 || r.Height() != 30 {
		t.Fatalf("rect = %v", r)
	}
}

func TestKeys(t *testing.T) {
	e := newEditor()
	keyPress := func(c key.Code, r rune, m key.Modifiers) bool {
		return e.HandleKey(key.Event{Code: c, Rune: r, Modifiers: m, Direction: key.DirPress})
	}

	if !keyPress(key.Code2, '2', 0) || e.DrawMode() != DrawCircle {
		t.Fatalf("key 2: draw mode %v", e.DrawMode())
	}
	if !keyPress(key.Code3, '3', 0) || e.DrawMode() != DrawPolygon {
		t.Fatalf("key 3: draw mode %v", e.DrawMode())
	}
	if !keyPress(key.Code1, '1', 0) || e.DrawMode() != DrawRectangle {
		t.Fatalf("key 1: draw mode %v", e.DrawMode())
	}
	if keyPress(key.CodeS, 's', key.ModControl) {
		t.Fatal("ctrl shortcuts belong to the host")
	}
	if e.HandleKey(key.Event{Code: key.Code2, Rune: '2', Direction: key.DirRelease}) {
		t.Fatal("key release consumed")
	}

	e.Layer().Camera().Set(5, 5, 3)
	keyPress(key.Code0, '0', 0)
	if cam := e.Layer().Camera(); cam.X() != 0 || cam.Scale() != 1 {
		t.Fatalf("key 0 did not reset camera: %v", cam)
	}

	r := shape.NewRectangle(0, 0, 10, 10)
	e.Layer().Add(r)
	if keyPress(key.CodeDeleteForward, 0, 0) {
		t.Fatal("delete without selection consumed")
	}
	e.Layer().Select(0)
	if !keyPress(key.CodeDeleteBackspace, 0, 0) || e.Layer().Len() != 0 {
		t.Fatal("backspace did not delete the selection")
	}
}

func TestEscapeDiscardsPolygon(t *testing.T) {
	e := newEditor(WithDrawMode(DrawPolygon))
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)} {
		e.PointerMove(p)
		press(e, p.X, p.Y)
		e.PointerUp(p)
	}
	e.Layer().Add(shape.NewCircle(100, 100, 5))
	e.Layer().Select(1)
	e.HandleKey(key.Event{Code: key.CodeEscape, Direction: key.DirPress})
	if e.Pending() != nil || e.Layer().Len() != 1 || e.Layer().Selected() != nil {
		t.Fatalf("escape left len=%d pending=%v selected=%v", e.Layer().Len(), e.Pending(), e.Layer().Selected())
	}
}

func TestDeletedPolygonStopsGrowing(t *testing.T) {
	e := newEditor(WithDrawMode(DrawPolygon))
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(40, 0), geom.Pt(40, 40)} {
		e.PointerMove(p)
		press(e, p.X, p.Y)
		e.PointerUp(p)
	}
	e.PointerMove(geom.Pt(0, 40))

	e.PointerDown(geom.Pt(30, 10), mouse.ButtonLeft, key.ModControl)
	e.PointerUp(geom.Pt(30, 10))
	if e.Pending() != nil {
		t.Fatal("ctrl click left the polygon pending")
	}
	if !e.HandleKey(key.Event{Code: key.CodeDeleteForward, Direction: key.DirPress}) {
		t.Fatal("delete did not remove the selected polygon")
	}
	if e.Layer().Len() != 0 || e.Pending() != nil {
		t.Fatalf("after delete: len=%d pending=%v", e.Layer().Len(), e.Pending())
	}

	for _, p := range []geom.Point{geom.Pt(100, 100), geom.Pt(140, 100), geom.Pt(140, 140)} {
		press(e, p.X, p.Y)
		e.PointerUp(p)
	}
	poly := e.Pending()
	if poly == nil || e.Layer().IndexOf(poly) != 0 {
		t.Fatalf("new clicks did not start a visible polygon: len=%d", e.Layer().Len())
	}
	if poly.Len() != 4 || poly.At(0) != geom.Pt(100, 100) {
		t.Fatalf("new polygon = %v", poly.Points())
	}
}

func TestRemovedPolygonIsForgotten(t *testing.T) {
	e := newEditor(WithDrawMode(DrawPolygon))
	press(e, 0, 0)
	e.PointerUp(geom.Pt(0, 0))
	old := e.Pending()
	e.Layer().Remove(old)
	if e.Pending() != nil {
		t.Fatal("removed polygon still pending")
	}

	press(e, 50, 50)
	e.PointerUp(geom.Pt(50, 50))
	if p := e.Pending(); p == nil || p == old || e.Layer().Len() != 1 {
		t.Fatalf("click after removal: len=%d", e.Layer().Len())
	}

	e.Layer().Replace(nil)
	e.PointerMove(geom.Pt(60, 60))
	if e.Pending() != nil {
		t.Fatal("replaced polygon still pending")
	}
}

func TestClickInsideSelectedPendingPolygonAddsVertex(t *testing.T) {
	e := newEditor(WithDrawMode(DrawPolygon))
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(40, 0), geom.Pt(40, 40)} {
		e.PointerMove(p)
		press(e, p.X, p.Y)
		e.PointerUp(p)
	}
	e.Layer().Select(0)

	e.PointerMove(geom.Pt(30, 10))
	press(e, 30, 10)
	if e.Mode() != ModeNone {
		t.Fatalf("mode = %v, want none", e.Mode())
	}
	e.PointerUp(geom.Pt(30, 10))
	poly := e.Pending()
	if poly == nil || poly.Len() != 5 {
		t.Fatalf("pending polygon = %v", poly)
	}
	e.PointerMove(geom.Pt(20, 30))
	if last, _ := poly.Last(); last != geom.Pt(20, 30) {
		t.Fatalf("rubber band vertex = %v", last)
	}
}

func TestOtherButtonsIgnoredMidGesture(t *testing.T) {
	e := newEditor()
	cam := e.Layer().Camera()
	x, y := cam.X(), cam.Y()
	e.HandleMouse(mouse.Event{X: 10, Y: 10, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	e.HandleMouse(mouse.Event{X: 200, Y: 200, Direction: mouse.DirNone})
	for _, b := range []mouse.Button{mouse.ButtonRight, mouse.ButtonMiddle} {
		e.HandleMouse(mouse.Event{X: 200, Y: 200, Button: b, Direction: mouse.DirPress})
		if e.Mode() != ModeDrawShape {
			t.Fatalf("button %v press changed mode to %v", b, e.Mode())
		}
		e.HandleMouse(mouse.Event{X: 200, Y: 200, Button: b, Direction: mouse.DirRelease})
		if e.Mode() != ModeDrawShape {
			t.Fatalf("button %v release ended the gesture", b)
		}
	}
	e.HandleMouse(mouse.Event{X: 200, Y: 200, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	if e.Layer().Len() != 1 {
		t.Fatalf("rectangle discarded: shapes = %d", e.Layer().Len())
	}
	r := e.Layer().At(0).(*shape.Rectangle)
	if r.Width() != 190 || r.Height() != 190 {
		t.Fatalf("rect = %v", r)
	}
	if cam.X() != x || cam.Y() != y {
		t.Fatalf("camera moved to %v", cam)
	}
}
