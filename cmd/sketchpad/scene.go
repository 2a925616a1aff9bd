package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/example/sketchpad/internal/camera"
	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
)

// loadShapes reads a scene document from path, or stdin for "-".
func loadShapes(path string) ([]shape.Shape, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	shapes, err := shape.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	return shapes, nil
}

// loadLayer builds a layer holding the scene in path. A missing file
// yields an empty layer when allowMissing is set.
func loadLayer(path string, allowMissing bool) (*editor.Layer, error) {
	l := editor.NewLayer(camera.New())
	if path == "" {
		return l, nil
	}
	shapes, err := loadShapes(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return nil, err
	}
	l.Replace(shapes)
	return l, nil
}

// sceneBounds returns the world box covering every shape.
func sceneBounds(shapes []shape.Shape) (lo, hi geom.Point, ok bool) {
	for _, s := range shapes {
		a, b, sok := shape.Bounds(s)
		if !sok {
			continue
		}
		if !ok {
			lo, hi, ok = a, b, true
			continue
		}
		lo = geom.Pt(min(lo.X, a.X), min(lo.Y, a.Y))
		hi = geom.Pt(max(hi.X, b.X), max(hi.Y, b.Y))
	}
	return lo, hi, ok
}
