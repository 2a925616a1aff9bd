package anchor

import (
	"errors"
	"math"
	"testing"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

const eps = 1e-9

func near(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestGroupFollowsShape(t *testing.T) {
	c := shape.NewCircle(0, 0, 10)
	g := New(c)
	defer g.Dispose()
	n := 0
	g.Subscribe(func() { n++ })

	c.SetRadius(20)
	if got := g.Anchors()[1]; got != geom.Pt(20, 0) {
		t.Fatalf("right anchor = %v, want (20, 0)", got)
	}
	if n != 1 {
		t.Fatalf("notifications = %d, want 1", n)
	}

	g.Dispose()
	c.SetRadius(30)
	if n != 1 || g.Len() != 0 {
		t.Fatalf("group still bound after Dispose")
	}
}

func TestPolygonHandleCountTracksVertices(t *testing.T) {
	p := shape.NewPolygon(geom.Pt(0, 0), geom.Pt(1, 0))
	g := New(p)
	defer g.Dispose()
	p.Append(geom.Pt(1, 1))
	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
}

func TestHitTestPrefersLast(t *testing.T) {
	p := shape.NewPolygon(geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(50, 50))
	g := New(p)
	defer g.Dispose()
	if i := g.HitTest(geom.Pt(1, 0), Radius); i != 1 {
		t.Fatalf("HitTest = %d, want 1", i)
	}
	if i := g.HitTest(geom.Pt(20, 20), Radius); i != -1 {
		t.Fatalf("HitTest = %d, want -1", i)
	}
}

func TestSelectIgnoresInvalid(t *testing.T) {
	g := New(shape.NewCircle(0, 0, 1))
	defer g.Dispose()
	g.Select(2)
	g.Select(7)
	g.Select(-3)
	if g.Selected() != 2 {
		t.Fatalf("Selected = %d, want 2", g.Selected())
	}
}

func TestDragWithoutSave(t *testing.T) {
	g := New(shape.NewCircle(0, 0, 1))
	defer g.Dispose()
	if err := g.DragResize(geom.Pt(3, 3)); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved, got %v", err)
	}
	g.Save(0)
	g.Restore()
	if err := g.DragResize(geom.Pt(3, 3)); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved after Restore, got %v", err)
	}
	if g.Selected() != -1 {
		t.Fatalf("Restore kept selection %d", g.Selected())
	}
}

func TestSaveCapturesAnchor(t *testing.T) {
	r := shape.NewRectangle(0, 0, 10, 10)
	g := New(r)
	defer g.Dispose()
	g.Save(4)
	if p, ok := g.SavedAnchor(); !ok || p != geom.Pt(5, 5) {
		t.Fatalf("SavedAnchor = %v, %v", p, ok)
	}
	r.SetX(100)
	if g.Snapshot().(*shape.Rectangle).X() != 0 {
		t.Fatalf("snapshot follows live shape")
	}
}

func TestCircleDrag(t *testing.T) {
	c := shape.NewCircle(10, 10, 1)
	g := New(c)
	defer g.Dispose()
	g.Save(1)
	if err := g.DragResize(geom.Pt(13, 14)); err != nil {
		t.Fatal(err)
	}
	if c.Radius() != 5 {
		t.Fatalf("radius = %v, want 5", c.Radius())
	}
}

func TestPolygonDrag(t *testing.T) {
	p := shape.NewPolygon(geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(5, 5))
	g := New(p)
	defer g.Dispose()
	g.Save(2)
	g.DragResize(geom.Pt(5, 9))
	if p.At(2) != geom.Pt(5, 9) {
		t.Fatalf("vertex = %v", p.At(2))
	}
}

func TestResizeKeepsOppositeFixed(t *testing.T) {
	for _, rot := range []float64{0, 30, 90, 200, 315} {
		for i := 0; i < 8; i++ {
			r := shape.NewRectangle(100, 80, 40, 20)
			r.SetRotation(rot)
			g := New(r)
			o := shape.OppositeAnchor(i)
			before, _ := shape.RectangleAnchor(r, o)
			handle, _ := shape.RectangleAnchor(r, i)

			// Pull the handle further away from the centre so the
			// rectangle grows without flipping.
			out := handle.Sub(r.Center()).Scale(0.5)
			g.Save(i)
			if err := g.DragResize(handle.Add(out)); err != nil {
				t.Fatalf("rot %v handle %d: %v", rot, i, err)
			}
			after, _ := shape.RectangleAnchor(r, o)
			if !near(before, after) {
				t.Errorf("rot %v handle %d: fixed anchor %d moved %v -> %v", rot, i, o, before, after)
			}
			if r.Rotation() != geom.NormalizeAngle(rot) {
				t.Errorf("rot %v handle %d: rotation changed to %v", rot, i, r.Rotation())
			}
			g.Dispose()
		}
	}
}

func TestResizeCorner(t *testing.T) {
	r := shape.NewRectangle(5, 5, 10, 10)
	g := New(r)
	defer g.Dispose()
	g.Save(4)
	g.DragResize(geom.Pt(20, 30))
	if r.Center() != geom.Pt(10, 15) || r.Width() != 20 || r.Height() != 30 {
		t.Fatalf("resized to %v", r)
	}
}

func TestResizeEdgeKeepsOtherDimension(t *testing.T) {
	r := shape.NewRectangle(0, 0, 10, 10)
	g := New(r)
	defer g.Dispose()
	g.Save(3)
	g.DragResize(geom.Pt(15, 40))
	if !near(r.Center(), geom.Pt(5, 0)) || math.Abs(r.Width()-20) > eps || r.Height() != 10 {
		t.Fatalf("resized to %v", r)
	}
}

func TestRotateHandle(t *testing.T) {
	r := shape.NewRectangle(0, 0, 10, 10)
	r.SetRotation(10)
	g := New(r)
	defer g.Dispose()
	g.Save(shape.RotateHandle)
	if err := g.DragResize(geom.Pt(30, 0)); err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Rotation()-90) > 1e-9 {
		t.Fatalf("rotation = %v, want 90", r.Rotation())
	}
	g.DragResize(geom.Pt(-30, 0))
	if math.Abs(r.Rotation()-270) > 1e-9 {
		t.Fatalf("rotation = %v, want 270", r.Rotation())
	}
}
