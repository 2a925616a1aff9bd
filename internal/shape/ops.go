package shape

import (
	"fmt"
	"math"

	"github.com/example/sketchpad/internal/geom"
)

// Clone returns a detached copy of s, metadata included. Subscribers are
// not copied. It panics on shape types outside this package.
func Clone(s Shape) Shape {
	switch v := s.(type) {
	case *Rectangle:
		c := &Rectangle{x: v.x, y: v.y, width: v.width, height: v.height, rotation: v.rotation}
		c.copyMeta(&v.base)
		return c
	case *Circle:
		c := &Circle{x: v.x, y: v.y, radius: v.radius}
		c.copyMeta(&v.base)
		return c
	case *Polygon:
		c := NewPolygon(v.points...)
		c.copyMeta(&v.base)
		return c
	}
	panic(fmt.Errorf("clone %T: %w", s, ErrUnknownKind))
}

// Move writes ref displaced by delta into target. Both shapes must be of
// the same kind; otherwise nothing happens and false is returned.
func Move(ref, target Shape, delta geom.Vector) bool {
	switch r := ref.(type) {
	case *Rectangle:
		t, ok := target.(*Rectangle)
		if !ok {
			return false
		}
		t.SetCenter(r.Center().Add(delta))
		return true
	case *Circle:
		t, ok := target.(*Circle)
		if !ok {
			return false
		}
		t.SetCenter(r.Center().Add(delta))
		return true
	case *Polygon:
		t, ok := target.(*Polygon)
		if !ok {
			return false
		}
		moved := make([]geom.Point, len(r.points))
		for i, p := range r.points {
			moved[i] = p.Add(delta)
		}
		t.SetPoints(moved)
		return true
	}
	return false
}

// Bounds returns the axis-aligned box around s, rotation included. Empty
// polygons report ok=false.
func Bounds(s Shape) (lo, hi geom.Point, ok bool) {
	var pts []geom.Point
	switch v := s.(type) {
	case *Rectangle:
		for i := 0; i < 8; i += 2 {
			p, _ := RectangleAnchor(v, i)
			pts = append(pts, p)
		}
	case *Circle:
		return geom.Pt(v.x-v.radius, v.y-v.radius), geom.Pt(v.x+v.radius, v.y+v.radius), true
	case *Polygon:
		pts = v.points
	}
	if len(pts) == 0 {
		return geom.Point{}, geom.Point{}, false
	}
	lo = geom.Pt(math.Inf(1), math.Inf(1))
	hi = geom.Pt(math.Inf(-1), math.Inf(-1))
	for _, p := range pts {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi, true
}
