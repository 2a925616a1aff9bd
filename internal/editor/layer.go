package editor

import (
	"image/color"

	"github.com/example/sketchpad/internal/anchor"
	"github.com/example/sketchpad/internal/camera"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/observe"
	"github.com/example/sketchpad/internal/shape"
)

// Layer owns the shapes of a sketch, their draw order and the current
// selection. It re-emits a single change notification for any change to
// the camera, the collection, a shape or the selection handles.
type Layer struct {
	camera *camera.Camera
	shapes []shape.Shape
	cancel []func()

	group       *anchor.Group
	groupCancel func()

	cameraCancel func()
	changed      observe.Subject
	fallback     color.RGBA
}

// NewLayer returns an empty layer viewed through cam.
func NewLayer(cam *camera.Camera) *Layer {
	l := &Layer{camera: cam, fallback: color.RGBA{0xee, 0xee, 0xee, 0xff}}
	l.cameraCancel = cam.Subscribe(l.changed.Emit)
	return l
}

func (l *Layer) Camera() *camera.Camera { return l.camera }

func (l *Layer) Len() int { return len(l.shapes) }

// At returns the shape at draw position i.
func (l *Layer) At(i int) shape.Shape { return l.shapes[i] }

// Shapes returns the shapes in draw order.
func (l *Layer) Shapes() []shape.Shape { return append([]shape.Shape(nil), l.shapes...) }

// IndexOf returns the draw position of s or -1.
func (l *Layer) IndexOf(s shape.Shape) int {
	for i, v := range l.shapes {
		if v == s {
			return i
		}
	}
	return -1
}

// Add appends s on top of the other shapes.
func (l *Layer) Add(s shape.Shape) {
	l.attach(s)
	l.changed.Emit()
}

func (l *Layer) attach(s shape.Shape) {
	l.shapes = append(l.shapes, s)
	l.cancel = append(l.cancel, s.Subscribe(func() {
		// The selected shape reports through its anchor group so the
		// handles are current when listeners run.
		if l.group != nil && l.group.Shape() == s {
			return
		}
		l.changed.Emit()
	}))
}

// Remove deletes s, deselecting it first when needed.
func (l *Layer) Remove(s shape.Shape) bool {
	i := l.IndexOf(s)
	if i < 0 {
		return false
	}
	if l.group != nil && l.group.Shape() == s {
		l.dropGroup()
	}
	l.cancel[i]()
	l.shapes = append(l.shapes[:i], l.shapes[i+1:]...)
	l.cancel = append(l.cancel[:i], l.cancel[i+1:]...)
	l.changed.Emit()
	return true
}

// Replace swaps the whole collection, for example after loading a scene.
func (l *Layer) Replace(shapes []shape.Shape) {
	l.dropGroup()
	for _, c := range l.cancel {
		c()
	}
	l.shapes, l.cancel = nil, nil
	for _, s := range shapes {
		l.attach(s)
	}
	l.changed.Emit()
}

// HitTest returns the topmost shape containing the world point p, or -1.
func (l *Layer) HitTest(p geom.Point) int {
	for i := len(l.shapes) - 1; i >= 0; i-- {
		if shape.Contains(l.shapes[i], p) {
			return i
		}
	}
	return -1
}

// HitAnchor returns the handle of the selected shape under the world point
// p, or -1. Handles keep a constant size on screen.
func (l *Layer) HitAnchor(p geom.Point) int {
	if l.group == nil {
		return -1
	}
	return l.group.HitTest(p, anchor.Radius/l.camera.Scale())
}

// Select makes the shape at i the selection. Invalid indexes deselect.
func (l *Layer) Select(i int) {
	if i < 0 || i >= len(l.shapes) {
		l.Deselect()
		return
	}
	if l.group != nil && l.group.Shape() == l.shapes[i] {
		return
	}
	l.dropGroup()
	l.group = anchor.New(l.shapes[i])
	l.groupCancel = l.group.Subscribe(l.changed.Emit)
	l.changed.Emit()
}

// Deselect clears the selection.
func (l *Layer) Deselect() {
	if l.group == nil {
		return
	}
	l.dropGroup()
	l.changed.Emit()
}

func (l *Layer) dropGroup() {
	if l.group == nil {
		return
	}
	l.groupCancel()
	l.group.Dispose()
	l.group, l.groupCancel = nil, nil
}

// Selected returns the selected shape, or nil.
func (l *Layer) Selected() shape.Shape {
	if l.group == nil {
		return nil
	}
	return l.group.Shape()
}

// SelectedIndex returns the draw position of the selection or -1.
func (l *Layer) SelectedIndex() int {
	if l.group == nil {
		return -1
	}
	return l.IndexOf(l.group.Shape())
}

// Group returns the handles of the selected shape, or nil.
func (l *Layer) Group() *anchor.Group { return l.group }

// Subscribe registers fn to run after any visible change.
func (l *Layer) Subscribe(fn func()) (cancel func()) { return l.changed.Subscribe(fn) }

// Close detaches the layer from the camera and every shape.
func (l *Layer) Close() {
	l.dropGroup()
	for i, c := range l.cancel {
		c()
		l.cancel[i] = func() {}
	}
	if l.cameraCancel != nil {
		l.cameraCancel()
		l.cameraCancel = nil
	}
}
