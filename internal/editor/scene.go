package editor

import (
	"image/color"

	"github.com/example/sketchpad/internal/anchor"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
	"github.com/example/sketchpad/internal/theme"
)

// FillAlpha is the alpha of shape interiors; strokes are opaque.
const FillAlpha = 0x22

// Item is one shape in screen space.
type Item struct {
	Kind shape.Kind
	// Points outlines rectangles and polygons.
	Points []geom.Point
	// Center and Radius describe circles.
	Center geom.Point
	Radius float64

	// Stroke and Fill hold straight, not premultiplied, alpha.
	Stroke   color.RGBA
	Fill     color.RGBA
	Label    string
	Selected bool
}

// Scene is everything a renderer needs to draw one frame.
type Scene struct {
	Items        []Item
	Anchors      []geom.Point
	AnchorRadius float64
}

// Scene projects the layer through its camera.
func (l *Layer) Scene() Scene {
	m := l.camera.Transform()
	sc := Scene{Items: make([]Item, 0, len(l.shapes)), AnchorRadius: anchor.Radius}
	sel := l.Selected()
	for _, s := range l.shapes {
		stroke, err := theme.ParseColor(s.Color())
		if err != nil {
			stroke = l.fallback
		}
		stroke.A = 0xff
		fill := stroke
		fill.A = FillAlpha
		it := Item{Kind: s.Kind(), Stroke: stroke, Fill: fill, Label: s.Label(), Selected: s == sel}
		switch v := s.(type) {
		case *shape.Rectangle:
			it.Points = make([]geom.Point, 0, 4)
			for i := 0; i < 8; i += 2 {
				p, _ := shape.RectangleAnchor(v, i)
				it.Points = append(it.Points, geom.Apply(m, p))
			}
		case *shape.Circle:
			it.Center = geom.Apply(m, v.Center())
			it.Radius = v.Radius() * l.camera.Scale()
		case *shape.Polygon:
			pts := v.Points()
			for i := range pts {
				pts[i] = geom.Apply(m, pts[i])
			}
			it.Points = pts
		}
		sc.Items = append(sc.Items, it)
	}
	if l.group != nil {
		for _, p := range l.group.Anchors() {
			sc.Anchors = append(sc.Anchors, geom.Apply(m, p))
		}
	}
	return sc
}

// SetFallbackColor sets the colour drawn for shapes without a valid colour
// of their own.
func (l *Layer) SetFallbackColor(c color.RGBA) {
	l.fallback = c
	l.changed.Emit()
}
