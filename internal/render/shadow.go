package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by shapes onto the canvas.
// A zero Opacity disables it.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a soft shadow suited to exported sketches.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(4, 4),
		Opacity: 0.45,
	}
}

// castShadow darkens dst under the blurred, offset alpha of layer. dst and
// layer share bounds.
func castShadow(dst, layer *image.RGBA, opts ShadowOptions) {
	bounds := layer.Bounds()
	if bounds.Empty() || opts.Opacity <= 0 {
		return
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)

	mask := image.NewGray(bounds.Sub(bounds.Min))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if a := layer.RGBAAt(x, y).A; a != 0 {
				mask.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: a})
			}
		}
	}
	blurred := blurGray(mask, radius)

	alpha := uint8(opacity*255 + 0.5)
	if alpha == 0 {
		return
	}
	at := blurred.Bounds().Add(bounds.Min).Add(opts.Offset)
	draw.DrawMask(dst, at, image.NewUniform(color.RGBA{0, 0, 0, alpha}), image.Point{}, blurred, image.Point{}, draw.Over)
}

// blurGray applies a separable box blur using running sums.
func blurGray(src *image.Gray, radius int) *image.Gray {
	bounds := src.Bounds()
	if radius <= 0 {
		out := image.NewGray(bounds)
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := bounds.Dx(), bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		out := tmp.Pix[y*tmp.Stride:]
		for x := 0; x < w; x++ {
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
			out[x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return dst
}
