// Package camera implements the pan and zoom transform between world space
// and screen space.
package camera

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/observe"
)

// ErrInvalidScale is returned when a zoom would leave the camera with a
// non-positive or non-finite scale.
var ErrInvalidScale = errors.New("camera scale must be positive and finite")

// Camera maps world coordinates to the screen as screen = world*scale + offset.
type Camera struct {
	x, y  float64
	scale float64

	saved   bool
	cachedX float64
	cachedY float64
	cachedS float64
	cursor  geom.Point

	changed observe.Subject
}

// New returns a camera at the origin with a scale of one.
func New() *Camera {
	return &Camera{scale: 1}
}

func (c *Camera) X() float64 { return c.x }
func (c *Camera) Y() float64 { return c.y }
func (c *Camera) Scale() float64 { return c.scale }

// Set replaces the camera state.
func (c *Camera) Set(x, y, scale float64) error {
	if !validScale(scale) {
		return fmt.Errorf("set scale %v: %w", scale, ErrInvalidScale)
	}
	c.x, c.y, c.scale = x, y, scale
	c.changed.Emit()
	return nil
}

// ToWorld converts a screen position to world coordinates.
func (c *Camera) ToWorld(p geom.Point) geom.Point {
	return geom.Point{X: (p.X - c.x) / c.scale, Y: (p.Y - c.y) / c.scale}
}

// ToScreen converts a world position to screen coordinates.
func (c *Camera) ToScreen(p geom.Point) geom.Point {
	return geom.Point{X: p.X*c.scale + c.x, Y: p.Y*c.scale + c.y}
}

// ZoomTo changes the scale while keeping pivot, a screen position, fixed.
func (c *Camera) ZoomTo(target float64, pivot geom.Point) error {
	if !validScale(target) {
		return fmt.Errorf("zoom to %v: %w", target, ErrInvalidScale)
	}
	ratio := target / c.scale
	c.x = pivot.X + (c.x-pivot.X)*ratio
	c.y = pivot.Y + (c.y-pivot.Y)*ratio
	c.scale = target
	c.changed.Emit()
	return nil
}

// Save records the current offset and the cursor at the start of a pan.
func (c *Camera) Save(cursor geom.Point) {
	c.saved = true
	c.cachedX, c.cachedY, c.cachedS = c.x, c.y, c.scale
	c.cursor = cursor
}

// MoveTo pans so the saved cursor position follows end. It does nothing
// unless Save has been called.
func (c *Camera) MoveTo(end geom.Point) {
	if !c.saved {
		return
	}
	c.x = c.cachedX + end.X - c.cursor.X
	c.y = c.cachedY + end.Y - c.cursor.Y
	c.changed.Emit()
}

// Reset returns the camera to the origin at scale one and drops any pan
// snapshot.
func (c *Camera) Reset() {
	c.x, c.y, c.scale = 0, 0, 1
	c.saved = false
	c.cachedX, c.cachedY, c.cachedS = 0, 0, 0
	c.cursor = geom.Point{}
	c.changed.Emit()
}

// Fit scales and centres the world box lo..hi inside a width by height
// viewport, leaving margin screen units on every side. The scale never
// exceeds one.
func (c *Camera) Fit(lo, hi geom.Point, width, height, margin float64) error {
	w, h := hi.X-lo.X, hi.Y-lo.Y
	avail := geom.Vec(width-2*margin, height-2*margin)
	if w < 0 || h < 0 || avail.X <= 0 || avail.Y <= 0 {
		return fmt.Errorf("fit %v..%v into %gx%g: %w", lo, hi, width, height, ErrInvalidScale)
	}
	scale := 1.0
	if w > 0 {
		scale = min(scale, avail.X/w)
	}
	if h > 0 {
		scale = min(scale, avail.Y/h)
	}
	mid := lo.Midpoint(hi)
	return c.Set(width/2-mid.X*scale, height/2-mid.Y*scale, scale)
}

// Subscribe registers fn to run after every change.
func (c *Camera) Subscribe(fn func()) (cancel func()) { return c.changed.Subscribe(fn) }

// Transform returns the world to screen matrix.
func (c *Camera) Transform() f64.Aff3 {
	return f64.Aff3{
		c.scale, 0, c.x,
		0, c.scale, c.y,
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf("camera(x=%g y=%g scale=%g)", c.x, c.y, c.scale)
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}
