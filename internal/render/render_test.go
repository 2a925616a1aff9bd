package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/example/sketchpad/internal/camera"
	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/geom"
	"github.com/example/sketchpad/internal/shape"
	"github.com/example/sketchpad/internal/theme"
)

func redSquare() *editor.Layer {
	l := editor.NewLayer(camera.New())
	r := shape.NewRectangle(40, 40, 40, 40)
	r.SetColor("ff0000")
	l.Add(r)
	return l
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestCheckerboard(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	a := color.RGBA{0x33, 0x33, 0x33, 0xff}
	b := color.RGBA{0x66, 0x66, 0x66, 0xff}
	Checkerboard(img, a, b)
	for _, c := range []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, a}, {14, 14, a}, {15, 0, b}, {0, 15, b}, {15, 15, a}, {39, 39, a},
	} {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestDrawFillsAndStrokes(t *testing.T) {
	img := Image(redSquare().Scene(), 100, 100, Options{Transparent: true})

	inside := img.RGBAAt(40, 40)
	if inside.A < 0x20 || inside.A > 0x24 || inside.G != 0 || inside.R != inside.A {
		t.Errorf("fill pixel = %v", inside)
	}
	if edge := img.RGBAAt(20, 40); edge.A < 0x40 || edge.R < edge.G {
		t.Errorf("stroke pixel = %v", edge)
	}
	if out := img.RGBAAt(80, 80); out.A != 0 {
		t.Errorf("outside pixel = %v", out)
	}
}

func TestDrawClipsOffscreenShapes(t *testing.T) {
	l := editor.NewLayer(camera.New())
	c := shape.NewCircle(50, 50, 500)
	c.SetColor("00ff00")
	l.Add(c)
	img := Image(l.Scene(), 60, 60, Options{Transparent: true})
	for _, p := range []image.Point{{0, 0}, {59, 0}, {30, 30}, {59, 59}} {
		if img.RGBAAt(p.X, p.Y).A == 0 {
			t.Errorf("pixel %v not covered", p)
		}
	}
}

func TestDrawAnchors(t *testing.T) {
	l := redSquare()
	l.Select(0)
	th := theme.Default()

	img := Image(l.Scene(), 100, 100, Options{Theme: th})
	if got := img.RGBAAt(20, 20); !near(got, th.Anchor) {
		t.Errorf("anchor pixel = %v, want %v", got, th.Anchor)
	}

	img = Image(l.Scene(), 100, 100, Options{Theme: th, HideAnchors: true})
	if got := img.RGBAAt(20, 20); near(got, th.Anchor) {
		t.Errorf("anchor drawn with HideAnchors")
	}
}

func TestDrawShadow(t *testing.T) {
	sc := redSquare().Scene()
	plain := Image(sc, 100, 100, Options{Transparent: true})
	if plain.RGBAAt(63, 63).A != 0 {
		t.Fatal("unexpected paint below the shape")
	}
	shadowed := Image(sc, 100, 100, Options{
		Transparent: true,
		Shadow:      ShadowOptions{Offset: image.Pt(5, 5), Opacity: 1},
	})
	if got := shadowed.RGBAAt(63, 63); got.A == 0 || got.R != 0 {
		t.Fatalf("shadow pixel = %v", got)
	}
}

func TestDrawLabel(t *testing.T) {
	l := editor.NewLayer(camera.New())
	r := shape.NewRectangle(50, 50, 80, 40)
	r.SetLabel("WWW")
	l.Add(r)
	with := Image(l.Scene(), 100, 100, Options{Transparent: true})
	r.SetLabel("")
	without := Image(l.Scene(), 100, 100, Options{Transparent: true})

	diff := 0
	for y := 30; y < 50; y++ {
		for x := 10; x < 50; x++ {
			if with.RGBAAt(x, y) != without.RGBAAt(x, y) {
				diff++
			}
		}
	}
	if diff == 0 {
		t.Fatal("label not drawn inside the top-left corner")
	}
}

func TestDrawLabelFarOffCanvas(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	blank := func(img *image.RGBA) bool {
		for _, v := range img.Pix {
			if v != 0 {
				return false
			}
		}
		return true
	}

	// 2^26 px is 2^32 in 26.6 fixed point, which wraps back onto the canvas.
	far := float64(1<<26) + 50
	for _, it := range []editor.Item{
		{Kind: shape.KindCircle, Center: geom.Pt(far, 50), Label: "WWW"},
		{Kind: shape.KindCircle, Center: geom.Pt(50, -far), Label: "WWW"},
		{Kind: shape.KindCircle, Center: geom.Pt(math.NaN(), 50), Label: "WWW"},
		{Kind: shape.KindRectangle, Points: []geom.Point{geom.Pt(far, far), geom.Pt(far+10, far)}, Label: "WWW"},
	} {
		dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
		drawLabel(dst, it, white)
		if !blank(dst) {
			t.Errorf("label at %v %v drawn on the canvas", it.Center, it.Points)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	drawLabel(dst, editor.Item{Kind: shape.KindCircle, Center: geom.Pt(50, 50), Label: "WWW"}, white)
	if blank(dst) {
		t.Fatal("label at the centre not drawn")
	}
}

func TestClip(t *testing.T) {
	tri := []geom.Point{geom.Pt(-10, 5), geom.Pt(5, 5), geom.Pt(5, -10)}
	got := clip(tri, 10, 10)
	if len(got) < 3 {
		t.Fatalf("clip removed the visible part: %v", got)
	}
	for _, p := range got {
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Errorf("point %v outside the clip box", p)
		}
	}
	if got := clip([]geom.Point{geom.Pt(20, 20), geom.Pt(30, 20), geom.Pt(30, 30)}, 10, 10); len(got) != 0 {
		t.Errorf("fully outside polygon kept: %v", got)
	}
	inside := []geom.Point{geom.Pt(1, 1), geom.Pt(2, 1), geom.Pt(2, 2)}
	if got := clip(inside, 10, 10); len(got) != 3 {
		t.Errorf("inside polygon changed: %v", got)
	}
}

func TestBlurGraySpreads(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 9, 1))
	src.Pix[4] = 90
	out := blurGray(src, 1)
	if out.Pix[3] != 30 || out.Pix[4] != 30 || out.Pix[5] != 30 || out.Pix[2] != 0 {
		t.Fatalf("blurred row = %v", out.Pix)
	}
}
