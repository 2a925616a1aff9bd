// Package geom holds the 2D point and vector primitives shared by the editor.
//
// Coordinates follow the screen convention: x increases to the right and y
// increases downwards. Angles are in degrees and measured clockwise from
// "up", so 0 degrees is the vector (0, -1).
package geom

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// ErrZeroVector is returned when a direction vector has no length.
var ErrZeroVector = errors.New("zero length direction vector")

// Point is a position.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add displaces p by v.
func (p Point) Add(v Vector) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector { return Vector{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Vector is a displacement.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{x, y}.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

func (v Vector) Add(w Vector) Vector { return Vector{X: v.X + w.X, Y: v.Y + w.Y} }
func (v Vector) Sub(w Vector) Vector { return Vector{X: v.X - w.X, Y: v.Y - w.Y} }
func (v Vector) Scale(s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }
func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y }
func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }
func (v Vector) String() string { return fmt.Sprintf("<%g, %g>", v.X, v.Y) }

// Normalize returns the unit vector pointing along v.
func (v Vector) Normalize() (Vector, error) {
	l := v.Length()
	if l == 0 {
		return Vector{}, ErrZeroVector
	}
	return Vector{X: v.X / l, Y: v.Y / l}, nil
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// AngleVector returns the unit vector for a clockwise angle from "up".
func AngleVector(deg float64) Vector {
	rad := Radians(deg)
	return Vector{X: math.Sin(rad), Y: -math.Cos(rad)}
}

// Decompose splits diagonal into its projection onto direction and the
// remaining perpendicular component.
func Decompose(direction, diagonal Vector) (projection, perpendicular Vector, err error) {
	u, err := direction.Normalize()
	if err != nil {
		return Vector{}, Vector{}, fmt.Errorf("decompose %v: %w", diagonal, err)
	}
	projection = u.Scale(diagonal.Dot(u))
	return projection, diagonal.Sub(projection), nil
}

// NormalizeAngle maps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}
	return d
}

// ClockwiseAngle returns the clockwise rotation in [0, 360) that turns v1
// onto v2.
func ClockwiseAngle(v1, v2 Vector) float64 {
	return NormalizeAngle((math.Atan2(v2.Y, v2.X) - math.Atan2(v1.Y, v1.X)) * 180 / math.Pi)
}

// Apply maps p through the affine matrix m.
func Apply(m f64.Aff3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}
