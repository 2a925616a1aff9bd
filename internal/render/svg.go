package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
	"github.com/example/sketchpad/internal/theme"
)

// WriteSVG writes sc as a width by height SVG document. The checkerboard
// is replaced by a plain background unless opts.Transparent is set.
func WriteSVG(w io.Writer, sc editor.Scene, width, height int, opts Options) error {
	th := opts.theme()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	if !opts.Transparent {
		canvas.Rect(0, 0, width, height, "fill:"+theme.Hex(th.CheckerDark))
	}

	stroke := opts.stroke()
	for _, it := range sc.Items {
		sw := stroke
		if it.Selected {
			sw *= 2
		}
		style := fmt.Sprintf("fill:%s;fill-opacity:%.3f;stroke:%s;stroke-width:%g",
			rgb(it.Fill), float64(it.Fill.A)/0xff, rgb(it.Stroke), sw)
		switch it.Kind {
		case shape.KindCircle:
			canvas.Circle(round(it.Center.X), round(it.Center.Y), round(it.Radius), style)
		default:
			if len(it.Points) == 0 {
				continue
			}
			xs, ys := coords(it.Points)
			canvas.Polygon(xs, ys, style)
		}
		if it.Label != "" {
			x, y := labelAnchor(it)
			canvas.Text(x, y, it.Label, "font-family:monospace;font-size:12px;fill:"+theme.Hex(th.Label))
		}
	}

	if !opts.HideAnchors {
		for _, p := range sc.Anchors {
			canvas.Circle(round(p.X), round(p.Y), round(sc.AnchorRadius), "fill:"+theme.Hex(th.Anchor))
		}
	}
	canvas.End()
	return ew.err
}

func labelAnchor(it editor.Item) (int, int) {
	if it.Kind == shape.KindCircle {
		return round(it.Center.X), round(it.Center.Y)
	}
	lo := it.Points[0]
	for _, p := range it.Points[1:] {
		if p.Y < lo.Y || (p.Y == lo.Y && p.X < lo.X) {
			lo = p
		}
	}
	return round(lo.X + 4), round(lo.Y + 16)
}

func coords(pts []geom.Point) ([]int, []int) {
	xs, ys := make([]int, len(pts)), make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = round(p.X), round(p.Y)
	}
	return xs, ys
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func round(v float64) int { return int(math.Round(v)) }

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
