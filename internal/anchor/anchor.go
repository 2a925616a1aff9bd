// Package anchor tracks the handles of the selected shape and applies
// resize, rotate and vertex drags against a snapshot taken when the drag
// started.
package anchor

import (
	"errors"
	"fmt"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/observe"
	"github.com/example/sketchpad/internal/shape"
)

// Radius is the on-screen radius of a handle.
const Radius = 5

// ErrNotSaved is returned by DragResize when Save has not been called.
var ErrNotSaved = errors.New("anchor drag without saved state")

// Group holds the handles of one shape. Handles are recomputed whenever the
// shape changes until Dispose is called.
type Group struct {
	shape    shape.Shape
	anchors  []geom.Point
	selected int

	saved       shape.Shape
	savedAnchor geom.Point
	hasAnchor   bool

	cancel  func()
	changed observe.Subject
}

// New binds a group to s.
func New(s shape.Shape) *Group {
	g := &Group{shape: s, selected: -1}
	g.refresh()
	g.cancel = s.Subscribe(func() {
		g.refresh()
		g.changed.Emit()
	})
	return g
}

func (g *Group) refresh() { g.anchors = shape.Anchors(g.shape) }

// Shape returns the bound shape.
func (g *Group) Shape() shape.Shape { return g.shape }

// Anchors returns a copy of the current handle positions in world space.
func (g *Group) Anchors() []geom.Point { return append([]geom.Point(nil), g.anchors...) }

func (g *Group) Len() int { return len(g.anchors) }

// Selected returns the selected handle or -1.
func (g *Group) Selected() int { return g.selected }

// Saved reports whether a drag snapshot is held.
func (g *Group) Saved() bool { return g.saved != nil }

// Snapshot returns the shape as it was when Save was called.
func (g *Group) Snapshot() shape.Shape { return g.saved }

// SavedAnchor returns the selected handle position captured by Save.
func (g *Group) SavedAnchor() (geom.Point, bool) { return g.savedAnchor, g.hasAnchor }

// Subscribe registers fn to run whenever the handles move.
func (g *Group) Subscribe(fn func()) (cancel func()) { return g.changed.Subscribe(fn) }

// HitTest returns the topmost handle within radius of p, or -1. Later
// handles win over earlier ones.
func (g *Group) HitTest(p geom.Point, radius float64) int {
	for i := len(g.anchors) - 1; i >= 0; i-- {
		if shape.InCircle(p, g.anchors[i], radius) {
			return i
		}
	}
	return -1
}

// Select marks handle i as selected. Out of range indexes are ignored.
func (g *Group) Select(i int) {
	if i < 0 || i >= len(g.anchors) {
		return
	}
	g.selected = i
}

// Save selects handle i, or keeps the current selection when i is -1, and
// snapshots the shape as the baseline for DragResize.
func (g *Group) Save(i int) {
	if i != -1 {
		g.Select(i)
	}
	g.hasAnchor = false
	if g.selected >= 0 && g.selected < len(g.anchors) {
		g.savedAnchor = g.anchors[g.selected]
		g.hasAnchor = true
	}
	g.saved = shape.Clone(g.shape)
}

// Restore drops the snapshot and the handle selection.
func (g *Group) Restore() {
	g.saved = nil
	g.hasAnchor = false
	g.selected = -1
}

// DragResize moves the selected handle to p.
func (g *Group) DragResize(p geom.Point) error {
	if g.saved == nil {
		return ErrNotSaved
	}
	switch s := g.shape.(type) {
	case *shape.Rectangle:
		start, ok := g.saved.(*shape.Rectangle)
		if !ok {
			return fmt.Errorf("snapshot is %v: %w", g.saved.Kind(), shape.ErrUnknownKind)
		}
		if g.selected == shape.RotateHandle {
			RotateRectangle(start, s, p)
			return nil
		}
		return ResizeRectangle(start, s, g.selected, p)
	case *shape.Circle:
		s.SetRadius(p.Distance(s.Center()))
	case *shape.Polygon:
		s.SetAt(g.selected, p)
	}
	return nil
}

// Dispose stops tracking the shape.
func (g *Group) Dispose() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.anchors = nil
	g.Restore()
}

// ResizeRectangle drags handle i of the start rectangle to p and writes the
// result into r. The handle opposite i keeps its position. Indexes outside
// 0..7 are ignored.
func ResizeRectangle(start, r *shape.Rectangle, i int, p geom.Point) error {
	o := shape.OppositeAnchor(i)
	if o < 0 {
		return nil
	}
	fixed, _ := shape.RectangleAnchor(start, o)
	diagonal := p.Sub(fixed)

	if i%2 == 0 {
		proj, perp, err := geom.Decompose(geom.AngleVector(start.Rotation()), diagonal)
		if err != nil {
			return err
		}
		c := fixed.Midpoint(p)
		r.Set(c.X, c.Y, perp.Length(), proj.Length())
		return nil
	}

	offset := 90.0
	if i == 1 || i == 5 {
		offset = 0
	}
	proj, _, err := geom.Decompose(geom.AngleVector(start.Rotation()+offset), diagonal)
	if err != nil {
		return err
	}
	c := fixed.Midpoint(fixed.Add(proj))
	w, h := start.Width(), start.Height()
	if offset == 0 {
		h = proj.Length()
	} else {
		w = proj.Length()
	}
	r.Set(c.X, c.Y, w, h)
	return nil
}

// RotateRectangle turns r so its up direction points from the start centre
// towards p.
func RotateRectangle(start, r *shape.Rectangle, p geom.Point) {
	delta := geom.ClockwiseAngle(geom.AngleVector(start.Rotation()), p.Sub(start.Center()))
	r.SetRotation(start.Rotation() + delta)
}
