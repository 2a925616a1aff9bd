package app

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/render"
)

func (a *App) drawFrame(s screen.Screen, w screen.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		a.logger.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	a.paint(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// paint draws the canvas and the status line into dst.
func (a *App) paint(dst *image.RGBA) {
	bounds := dst.Bounds()
	canvas := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, max(bounds.Max.Y-statusHeight, bounds.Min.Y))
	render.Draw(dst.SubImage(canvas).(*image.RGBA), a.editor.Layer().Scene(), render.Options{Theme: a.theme})

	bar := image.Rect(bounds.Min.X, canvas.Max.Y, bounds.Max.X, bounds.Max.Y)
	draw.Draw(dst, bar, image.NewUniform(a.theme.Background), image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(a.theme.Foreground), Face: basicfont.Face7x13}
	d.Dot = fixed.P(bar.Min.X+6, bar.Min.Y+14)
	d.DrawString(a.Status())
}

// Status is the text of the status line.
func (a *App) Status() string {
	ed := a.editor
	l := ed.Layer()
	s := fmt.Sprintf("%s | zoom %.0f%% | %d shapes", ed.DrawMode(), l.Camera().Scale()*100, l.Len())
	if sel := l.Selected(); sel != nil {
		s += " | selected " + sel.Kind().String()
		if lbl := sel.Label(); lbl != "" {
			s += fmt.Sprintf(" %q", lbl)
		}
	}
	if a.message != "" && a.now().Before(a.messageUntil) {
		s += " | " + a.message
	}
	return s
}
