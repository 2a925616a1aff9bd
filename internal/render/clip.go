package render

import "github.com/example/sketchpad/internal/geom"

// clip cuts the polygon pts to the rectangle [0,w]x[0,h].
func clip(pts []geom.Point, w, h float64) []geom.Point {
	inside := func(p geom.Point) bool {
		return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
	}
	all := true
	for _, p := range pts {
		if !inside(p) {
			all = false
			break
		}
	}
	if all {
		return pts
	}

	edges := []struct {
		in  func(geom.Point) bool
		cut func(a, b geom.Point) geom.Point
	}{
		{func(p geom.Point) bool { return p.X >= 0 }, func(a, b geom.Point) geom.Point { return atX(a, b, 0) }},
		{func(p geom.Point) bool { return p.X <= w }, func(a, b geom.Point) geom.Point { return atX(a, b, w) }},
		{func(p geom.Point) bool { return p.Y >= 0 }, func(a, b geom.Point) geom.Point { return atY(a, b, 0) }},
		{func(p geom.Point) bool { return p.Y <= h }, func(a, b geom.Point) geom.Point { return atY(a, b, h) }},
	}
	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]geom.Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.in(cur):
				if !e.in(prev) {
					out = append(out, e.cut(prev, cur))
				}
				out = append(out, cur)
			case e.in(prev):
				out = append(out, e.cut(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b geom.Point, x float64) geom.Point {
	t := (x - a.X) / (b.X - a.X)
	return geom.Pt(x, a.Y+t*(b.Y-a.Y))
}

func atY(a, b geom.Point, y float64) geom.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return geom.Pt(a.X+t*(b.X-a.X), y)
}
