package shape

import (
	"math"

	"github.com/example/sketchpad/internal/geom"
)

const (
	// RectangleAnchors is the number of handles on a rectangle: four
	// corners, four edge midpoints and the rotate handle.
	RectangleAnchors = 9
	// CircleAnchors is the number of cardinal handles on a circle.
	CircleAnchors = 4
	// RotateHandle is the index of the rectangle rotate handle.
	RotateHandle = 8
	// RotateHandleOffset is the distance of the rotate handle beyond the
	// top edge, in world units.
	RotateHandleOffset = 15
)

// opposite maps a rectangle handle to the handle that stays fixed while it
// is dragged.
var opposite = [8]int{4, 5, 6, 7, 0, 1, 2, 3}

// OppositeAnchor returns the handle across the rectangle from i, or -1 for
// indexes outside 0..7.
func OppositeAnchor(i int) int {
	if i < 0 || i >= len(opposite) {
		return -1
	}
	return opposite[i]
}

// RectangleAnchor returns handle i of r. Unrotated, handles run clockwise
// from the top-left corner: 0 top-left, 1 top, 2 top-right, 3 right,
// 4 bottom-right, 5 bottom, 6 bottom-left, 7 left, and 8 sits above the top
// edge.
func RectangleAnchor(r *Rectangle, i int) (geom.Point, bool) {
	theta := -geom.Radians(r.rotation)
	cos, sin := math.Cos(theta), math.Sin(theta)
	cx, cy := r.x, r.y
	rw, rh := r.width*0.5, r.height*0.5
	switch i {
	case 0:
		return geom.Pt(cx-rw*cos-rh*sin, cy+rw*sin-rh*cos), true
	case 1:
		return geom.Pt(cx-rh*sin, cy-rh*cos), true
	case 2:
		return geom.Pt(cx+rw*cos-rh*sin, cy-rw*sin-rh*cos), true
	case 3:
		return geom.Pt(cx+rw*cos, cy-rw*sin), true
	case 4:
		return geom.Pt(cx+rw*cos+rh*sin, cy-rw*sin+rh*cos), true
	case 5:
		return geom.Pt(cx+rh*sin, cy+rh*cos), true
	case 6:
		return geom.Pt(cx-rw*cos+rh*sin, cy+rw*sin+rh*cos), true
	case 7:
		return geom.Pt(cx-rw*cos, cy+rw*sin), true
	case RotateHandle:
		far := rh + RotateHandleOffset
		return geom.Pt(cx-far*sin, cy-far*cos), true
	}
	return geom.Point{}, false
}

// CircleAnchor returns handle i of c: 0 top, 1 right, 2 bottom, 3 left.
func CircleAnchor(c *Circle, i int) (geom.Point, bool) {
	switch i {
	case 0:
		return geom.Pt(c.x, c.y-c.radius), true
	case 1:
		return geom.Pt(c.x+c.radius, c.y), true
	case 2:
		return geom.Pt(c.x, c.y+c.radius), true
	case 3:
		return geom.Pt(c.x-c.radius, c.y), true
	}
	return geom.Point{}, false
}

// Anchors returns every handle of s in index order. Polygons expose one
// handle per vertex.
func Anchors(s Shape) []geom.Point {
	switch v := s.(type) {
	case *Rectangle:
		out := make([]geom.Point, RectangleAnchors)
		for i := range out {
			out[i], _ = RectangleAnchor(v, i)
		}
		return out
	case *Circle:
		out := make([]geom.Point, CircleAnchors)
		for i := range out {
			out[i], _ = CircleAnchor(v, i)
		}
		return out
	case *Polygon:
		return v.Points()
	}
	return nil
}
