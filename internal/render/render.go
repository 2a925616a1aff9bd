// Package render draws an editor.Scene onto an image or into SVG.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
	"github.com/example/sketchpad/internal/theme"
)

// Tile is the edge length of a checkerboard square in pixels.
const Tile = 15

// labelMargin is how far outside the canvas a label anchor may sit and still
// be drawn.
const labelMargin = 1 << 16

// Options controls how a scene is drawn.
type Options struct {
	Theme *theme.Theme
	// Transparent skips the checkerboard.
	Transparent bool
	// Stroke is the outline width in pixels. Zero means 1.
	Stroke float64
	// HideAnchors leaves selection handles out, for exports.
	HideAnchors bool
	Shadow      ShadowOptions
}

func (o Options) theme() *theme.Theme {
	if o.Theme == nil {
		return theme.Default()
	}
	return o.Theme
}

func (o Options) stroke() float64 {
	if o.Stroke <= 0 {
		return 1
	}
	return o.Stroke
}

// Image allocates a width by height canvas and draws sc on it.
func Image(sc editor.Scene, width, height int, opts Options) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	Draw(dst, sc, opts)
	return dst
}

// Draw paints sc onto dst. Scene coordinates are relative to the top-left
// corner of dst.
func Draw(dst *image.RGBA, sc editor.Scene, opts Options) {
	th := opts.theme()
	if !opts.Transparent {
		Checkerboard(dst, th.CheckerDark, th.CheckerLight)
	}

	target := dst
	if opts.Shadow.Opacity > 0 {
		target = image.NewRGBA(dst.Bounds())
	}
	r := newRasterizer(dst.Bounds())
	for _, it := range sc.Items {
		width := opts.stroke()
		if it.Selected {
			width *= 2
		}
		outline := it.Points
		if it.Kind == shape.KindCircle {
			outline = circlePoints(it.Center, it.Radius)
		}
		r.fill(target, outline, it.Fill)
		r.stroke(target, outline, width, it.Stroke)
	}
	if target != dst {
		castShadow(dst, target, opts.Shadow)
		draw.Draw(dst, dst.Bounds(), target, dst.Bounds().Min, draw.Over)
	}

	for _, it := range sc.Items {
		if it.Label != "" {
			drawLabel(dst, it, th.Label)
		}
	}

	if opts.HideAnchors {
		return
	}
	for _, p := range sc.Anchors {
		r.fill(dst, circlePoints(p, sc.AnchorRadius), th.Anchor)
	}
}

// Checkerboard fills dst with alternating Tile sized squares.
func Checkerboard(dst *image.RGBA, a, b color.RGBA) {
	bounds := dst.Bounds()
	ua, ub := image.NewUniform(a), image.NewUniform(b)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += Tile {
		for x := bounds.Min.X; x < bounds.Max.X; x += Tile {
			src := ub
			if ((x-bounds.Min.X)/Tile+(y-bounds.Min.Y)/Tile)%2 == 0 {
				src = ua
			}
			cell := image.Rect(x, y, x+Tile, y+Tile).Intersect(bounds)
			draw.Draw(dst, cell, src, image.Point{}, draw.Src)
		}
	}
}

type rasterizer struct {
	z      *vector.Rasterizer
	bounds image.Rectangle
}

func newRasterizer(b image.Rectangle) *rasterizer {
	return &rasterizer{z: vector.NewRasterizer(b.Dx(), b.Dy()), bounds: b}
}

func (r *rasterizer) fill(dst *image.RGBA, pts []geom.Point, c color.RGBA) {
	if c.A == 0 {
		return
	}
	pts = clip(pts, float64(r.bounds.Dx()), float64(r.bounds.Dy()))
	if len(pts) < 3 {
		return
	}
	r.z.Reset(r.bounds.Dx(), r.bounds.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(dst, r.bounds, image.NewUniform(premultiply(c)), image.Point{})
}

// stroke outlines the closed path through pts with one square-capped quad
// per edge.
func (r *rasterizer) stroke(dst *image.RGBA, pts []geom.Point, width float64, c color.RGBA) {
	if len(pts) < 2 || c.A == 0 {
		return
	}
	w, h := float64(r.bounds.Dx()), float64(r.bounds.Dy())
	r.z.Reset(r.bounds.Dx(), r.bounds.Dy())
	r.z.DrawOp = draw.Over
	half := width / 2
	drawn := false
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if len(pts) == 2 && i == 1 {
			break
		}
		dir, err := b.Sub(a).Normalize()
		if err != nil {
			continue
		}
		along := dir.Scale(half)
		across := geom.Vec(-dir.Y, dir.X).Scale(half)
		a, b = a.Add(along.Scale(-1)), b.Add(along)
		quad := clip([]geom.Point{a.Add(across), b.Add(across), b.Add(across.Scale(-1)), a.Add(across.Scale(-1))}, w, h)
		if len(quad) < 3 {
			continue
		}
		r.z.MoveTo(float32(quad[0].X), float32(quad[0].Y))
		for _, p := range quad[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
		drawn = true
	}
	if drawn {
		r.z.Draw(dst, r.bounds, image.NewUniform(premultiply(c)), image.Point{})
	}
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 0xff),
		G: uint8(uint32(c.G) * a / 0xff),
		B: uint8(uint32(c.B) * a / 0xff),
		A: c.A,
	}
}

// circlePoints approximates a circle with a polygon fine enough that the
// error stays under a quarter pixel.
func circlePoints(c geom.Point, radius float64) []geom.Point {
	if radius <= 0 {
		return nil
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-0.25/math.Max(radius, 0.25))))
	n = max(12, min(n, 720))
	pts := make([]geom.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Pt(c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a))
	}
	return pts
}

func drawLabel(dst *image.RGBA, it editor.Item, c color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	width := d.MeasureString(it.Label)
	ascent := face.Metrics().Ascent

	var at geom.Point
	switch {
	case it.Kind == shape.KindCircle:
		at = it.Center
	case len(it.Points) > 0:
		lo := it.Points[0]
		for _, p := range it.Points[1:] {
			if p.Y < lo.Y || (p.Y == lo.Y && p.X < lo.X) {
				lo = p
			}
		}
		at = geom.Pt(lo.X+4, lo.Y+4)
	default:
		return
	}
	// Anchors far off the canvas would overflow the 26.6 fixed-point dot.
	b := dst.Bounds()
	if !(at.X >= -labelMargin && at.Y >= -labelMargin &&
		at.X <= float64(b.Dx())+labelMargin && at.Y <= float64(b.Dy())+labelMargin) {
		return
	}

	x, y := fixed.Int26_6(at.X*64), fixed.Int26_6(at.Y*64)
	if it.Kind == shape.KindCircle {
		x -= width / 2
		y += ascent / 2
	} else {
		y += ascent
	}
	d.Dot = fixed.Point26_6{X: x + fixed.I(b.Min.X), Y: y + fixed.I(b.Min.Y)}
	d.DrawString(it.Label)
}
