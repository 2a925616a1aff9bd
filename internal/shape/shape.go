// Package shape defines the editable shapes of a sketch: rectangles, circles
// and polygons. Every setter notifies subscribers after the change is applied.
package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/observe"
)

// ErrUnknownKind is returned for shape kinds outside Rectangle, Circle and
// Polygon.
var ErrUnknownKind = errors.New("unknown shape kind")

// Kind identifies a shape variant.
type Kind int

const (
	KindRectangle Kind = iota + 1
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names used in scene files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rect", "rectangle":
		return KindRectangle, nil
	case "circle":
		return KindCircle, nil
	case "polygon":
		return KindPolygon, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Shape is implemented by *Rectangle, *Circle and *Polygon only.
type Shape interface {
	Kind() Kind
	Label() string
	SetLabel(string)
	Color() string
	SetColor(string)
	ID() string
	SetID(string)
	// Subscribe registers fn to run after every change to the shape.
	Subscribe(fn func()) (cancel func())

	meta() *base
}

type base struct {
	label   string
	color   string
	id      string
	changed observe.Subject
}

func (b *base) Label() string { return b.label }
func (b *base) Color() string { return b.color }
func (b *base) ID() string { return b.id }

func (b *base) SetLabel(v string) { b.label = v; b.changed.Emit() }
func (b *base) SetColor(v string) { b.color = v; b.changed.Emit() }
func (b *base) SetID(v string) { b.id = v; b.changed.Emit() }

func (b *base) Subscribe(fn func()) func() { return b.changed.Subscribe(fn) }

func (b *base) meta() *base { return b }

func (b *base) copyMeta(o *base) {
	b.label, b.color, b.id = o.label, o.color, o.id
}

// Rectangle is centred on (X, Y) and rotated clockwise by Rotation degrees.
type Rectangle struct {
	base
	x, y          float64
	width, height float64
	rotation      float64
}

// NewRectangle returns an unrotated rectangle centred on (x, y).
func NewRectangle(x, y, width, height float64) *Rectangle {
	return &Rectangle{x: x, y: y, width: nonNegative(width), height: nonNegative(height)}
}

func (r *Rectangle) Kind() Kind { return KindRectangle }
func (r *Rectangle) X() float64 { return r.x }
func (r *Rectangle) Y() float64 { return r.y }
func (r *Rectangle) Width() float64 { return r.width }
func (r *Rectangle) Height() float64 { return r.height }
func (r *Rectangle) Rotation() float64 { return r.rotation }
func (r *Rectangle) Center() geom.Point { return geom.Pt(r.x, r.y) }
func (r *Rectangle) SetX(v float64) { r.x = v; r.changed.Emit() }
func (r *Rectangle) SetY(v float64) { r.y = v; r.changed.Emit() }
func (r *Rectangle) SetWidth(v float64) { r.width = nonNegative(v); r.changed.Emit() }
func (r *Rectangle) SetHeight(v float64) { r.height = nonNegative(v); r.changed.Emit() }

// SetRotation stores v normalized to [0, 360).
func (r *Rectangle) SetRotation(v float64) {
	r.rotation = geom.NormalizeAngle(v)
	r.changed.Emit()
}

// SetCenter moves the rectangle without resizing it.
func (r *Rectangle) SetCenter(p geom.Point) {
	r.x, r.y = p.X, p.Y
	r.changed.Emit()
}

// Set updates position and size with a single notification.
func (r *Rectangle) Set(x, y, width, height float64) {
	r.x, r.y = x, y
	r.width, r.height = nonNegative(width), nonNegative(height)
	r.changed.Emit()
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("rect(%g,%g %gx%g @%g)", r.x, r.y, r.width, r.height, r.rotation)
}

// Circle is centred on (X, Y).
type Circle struct {
	base
	x, y   float64
	radius float64
}

// NewCircle returns a circle centred on (x, y).
func NewCircle(x, y, radius float64) *Circle {
	return &Circle{x: x, y: y, radius: nonNegative(radius)}
}

func (c *Circle) Kind() Kind { return KindCircle }
func (c *Circle) X() float64 { return c.x }
func (c *Circle) Y() float64 { return c.y }
func (c *Circle) Radius() float64 { return c.radius }
func (c *Circle) Center() geom.Point { return geom.Pt(c.x, c.y) }
func (c *Circle) SetX(v float64) { c.x = v; c.changed.Emit() }
func (c *Circle) SetY(v float64) { c.y = v; c.changed.Emit() }
func (c *Circle) SetRadius(v float64) { c.radius = nonNegative(v); c.changed.Emit() }

func (c *Circle) SetCenter(p geom.Point) {
	c.x, c.y = p.X, p.Y
	c.changed.Emit()
}

func (c *Circle) String() string {
	return fmt.Sprintf("circle(%g,%g r%g)", c.x, c.y, c.radius)
}

// Polygon is an ordered list of vertices. The closing edge is implied.
type Polygon struct {
	base
	points []geom.Point
}

// NewPolygon returns a polygon with a copy of points.
func NewPolygon(points ...geom.Point) *Polygon {
	return &Polygon{points: append([]geom.Point(nil), points...)}
}

func (p *Polygon) Kind() Kind { return KindPolygon }
func (p *Polygon) Len() int { return len(p.points) }

// Points returns a copy of the vertices.
func (p *Polygon) Points() []geom.Point {
	return append([]geom.Point(nil), p.points...)
}

// At returns vertex i. It panics if i is out of range.
func (p *Polygon) At(i int) geom.Point { return p.points[i] }

// Last returns the final vertex, or false when the polygon is empty.
func (p *Polygon) Last() (geom.Point, bool) {
	if len(p.points) == 0 {
		return geom.Point{}, false
	}
	return p.points[len(p.points)-1], true
}

// SetAt replaces vertex i. Out of range indexes are ignored.
func (p *Polygon) SetAt(i int, pt geom.Point) {
	if i < 0 || i >= len(p.points) {
		return
	}
	p.points[i] = pt
	p.changed.Emit()
}

// SetLast replaces the final vertex.
func (p *Polygon) SetLast(pt geom.Point) { p.SetAt(len(p.points)-1, pt) }

func (p *Polygon) Append(pt geom.Point) {
	p.points = append(p.points, pt)
	p.changed.Emit()
}

// PopBack removes and returns the final vertex.
func (p *Polygon) PopBack() (geom.Point, bool) {
	if len(p.points) == 0 {
		return geom.Point{}, false
	}
	last := p.points[len(p.points)-1]
	p.points = p.points[:len(p.points)-1]
	p.changed.Emit()
	return last, true
}

// SetPoints replaces every vertex with a copy of pts.
func (p *Polygon) SetPoints(pts []geom.Point) {
	p.points = append(p.points[:0], pts...)
	p.changed.Emit()
}

func (p *Polygon) String() string {
	return fmt.Sprintf("polygon(%d points)", len(p.points))
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
