package shape

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/example/sketchpad/internal/geom"
)

// ErrMissingField is returned when a scene entry lacks a value its kind
// requires.
var ErrMissingField = errors.New("missing field")

// Document is the on-disk form of a scene.
type Document struct {
	Shapes []Record `json:"shapes"`
}

// Record is one shape in a Document. Pointer fields distinguish an absent
// value from zero.
type Record struct {
	Type     string        `json:"type"`
	X        *float64      `json:"x,omitempty"`
	Y        *float64      `json:"y,omitempty"`
	Width    *float64      `json:"width,omitempty"`
	Height   *float64      `json:"height,omitempty"`
	Rotation *float64      `json:"rotation,omitempty"`
	Radius   *float64      `json:"radius,omitempty"`
	Points   []PointRecord `json:"points,omitempty"`
	Color    string        `json:"color,omitempty"`
	Label    string        `json:"label,omitempty"`
	ID       string        `json:"id,omitempty"`
}

type PointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Decode reads a scene document. Entries of an unknown type are skipped.
func Decode(r io.Reader) ([]Shape, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return FromDocument(doc)
}

// Unmarshal is Decode over a byte slice.
func Unmarshal(data []byte) ([]Shape, error) {
	return Decode(bytes.NewReader(data))
}

// FromDocument builds shapes from parsed records.
func FromDocument(doc Document) ([]Shape, error) {
	out := make([]Shape, 0, len(doc.Shapes))
	for i, rec := range doc.Shapes {
		s, err := rec.Shape()
		if errors.Is(err, ErrUnknownKind) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Shape converts the record into a live shape.
func (rec Record) Shape() (Shape, error) {
	kind, err := ParseKind(rec.Type)
	if err != nil {
		return nil, err
	}
	var s Shape
	switch kind {
	case KindRectangle:
		if err := require(rec.Type, "x", rec.X, "y", rec.Y, "width", rec.Width, "height", rec.Height); err != nil {
			return nil, err
		}
		r := NewRectangle(*rec.X, *rec.Y, *rec.Width, *rec.Height)
		if rec.Rotation != nil {
			r.rotation = geom.NormalizeAngle(*rec.Rotation)
		}
		s = r
	case KindCircle:
		if err := require(rec.Type, "x", rec.X, "y", rec.Y, "radius", rec.Radius); err != nil {
			return nil, err
		}
		s = NewCircle(*rec.X, *rec.Y, *rec.Radius)
	case KindPolygon:
		pts := make([]geom.Point, len(rec.Points))
		for i, p := range rec.Points {
			pts[i] = geom.Pt(p.X, p.Y)
		}
		s = NewPolygon(pts...)
	}
	b := s.meta()
	b.color, b.label, b.id = rec.Color, rec.Label, rec.ID
	return s, nil
}

func require(kind string, pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if v, _ := pairs[i+1].(*float64); v == nil {
			return fmt.Errorf("%s: %w %q", kind, ErrMissingField, pairs[i])
		}
	}
	return nil
}

// ToRecord captures the current state of s.
func ToRecord(s Shape) Record {
	rec := Record{Type: s.Kind().String(), Color: s.Color(), Label: s.Label(), ID: s.ID()}
	switch v := s.(type) {
	case *Rectangle:
		rec.X, rec.Y = ptr(v.x), ptr(v.y)
		rec.Width, rec.Height = ptr(v.width), ptr(v.height)
		if v.rotation != 0 {
			rec.Rotation = ptr(v.rotation)
		}
	case *Circle:
		rec.X, rec.Y = ptr(v.x), ptr(v.y)
		rec.Radius = ptr(v.radius)
	case *Polygon:
		rec.Points = make([]PointRecord, len(v.points))
		for i, p := range v.points {
			rec.Points[i] = PointRecord{X: p.X, Y: p.Y}
		}
	}
	return rec
}

// ToDocument captures every shape in order.
func ToDocument(shapes []Shape) Document {
	doc := Document{Shapes: make([]Record, len(shapes))}
	for i, s := range shapes {
		doc.Shapes[i] = ToRecord(s)
	}
	return doc
}

// Encode writes shapes as an indented scene document.
func Encode(w io.Writer, shapes []Shape) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(shapes)); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Marshal is Encode into a byte slice.
func Marshal(shapes []Shape) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, shapes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ptr(v float64) *float64 { return &v }
