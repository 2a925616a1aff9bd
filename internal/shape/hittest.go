package shape

import "github.com/example/sketchpad/internal/geom"

// Contains reports whether p lies inside s.
func Contains(s Shape, p geom.Point) bool {
	switch v := s.(type) {
	case *Rectangle:
		return InRectangle(p, v)
	case *Circle:
		return InCircle(p, v.Center(), v.radius)
	case *Polygon:
		return InPolygon(p, v.points)
	}
	return false
}

// InRectangle tests p against the unrotated bounds of r. Rotation is not
// taken into account.
func InRectangle(p geom.Point, r *Rectangle) bool {
	hw, hh := r.width*0.5, r.height*0.5
	return p.X >= r.x-hw && p.X <= r.x+hw &&
		p.Y >= r.y-hh && p.Y <= r.y+hh
}

// InCircle reports whether p is within radius of center, edge included.
func InCircle(p, center geom.Point, radius float64) bool {
	return center.Distance(p) <= radius
}

// InPolygon uses the even-odd crossing rule.
func InPolygon(p geom.Point, points []geom.Point) bool {
	in := false
	for i, j := 0, len(points)-1; i < len(points); j, i = i, i+1 {
		pi, pj := points[i], points[j]
		if ((pi.Y <= p.Y && p.Y < pj.Y) || (pj.Y <= p.Y && p.Y < pi.Y)) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}
	return in
}
