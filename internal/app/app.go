// Package app hosts an editor in a shiny window.
package app

import (
	"image"
	"io"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/theme"
)

const (
	statusHeight    = 20
	messageDuration = 3 * time.Second
)

// App is the interactive host for one editor.
type App struct {
	Title      string
	Width      int
	Height     int
	ScenePath  string
	ExportPath string

	editor   *editor.Editor
	theme    *theme.Theme
	notifier *notify.Notifier
	logger   *log.Logger

	writeImage func(image.Image) error
	writeScene func([]byte) error
	readScene  func() ([]byte, error)

	message      string
	messageUntil time.Time
	now          func() time.Time
	after        func(time.Duration, func())

	updateCh chan struct{}
}

// Option modifies an App during creation.
type Option func(*App)

func WithTitle(title string) Option { return func(a *App) { a.Title = title } }

// WithSize sets the initial window size in pixels.
func WithSize(w, h int) Option {
	return func(a *App) {
		if w > 0 {
			a.Width = w
		}
		if h > 0 {
			a.Height = h
		}
	}
}

func WithTheme(t *theme.Theme) Option { return func(a *App) { a.theme = t } }

func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.notifier = n } }

// WithScenePath sets where Ctrl+S writes the scene document.
func WithScenePath(p string) Option { return func(a *App) { a.ScenePath = p } }

// WithExportPath sets where Ctrl+E writes the rendered PNG.
func WithExportPath(p string) Option { return func(a *App) { a.ExportPath = p } }

func WithLogger(l *log.Logger) Option { return func(a *App) { a.logger = l } }

// New wraps ed in a window host.
func New(ed *editor.Editor, opts ...Option) *App {
	a := &App{
		Title:      "Sketchpad",
		Width:      1024,
		Height:     768,
		ScenePath:  "sketch.json",
		editor:     ed,
		theme:      theme.Default(),
		logger:     log.New(io.Discard, "", 0),
		writeImage: clipboard.WriteImage,
		writeScene: clipboard.WriteScene,
		readScene:  clipboard.ReadScene,
		now:        time.Now,
		after:      func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		updateCh:   make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	ed.Layer().SetFallbackColor(a.theme.Shape)
	return a
}

// Editor returns the hosted editor.
func (a *App) Editor() *editor.Editor { return a.editor }

// NotifyChanged requests a repaint.
func (a *App) NotifyChanged() {
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

// Main runs the window loop on s until the window is closed.
func (a *App) Main(s screen.Screen) {
	width, height := a.Width, a.Height
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height + statusHeight, Title: a.Title})
	if err != nil {
		a.logger.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	cancel := a.editor.Layer().Subscribe(a.NotifyChanged)
	defer cancel()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx-statusHeight
			a.Width, a.Height = width, max(height, 1)
			w.Send(paint.Event{})
		case paint.Event:
			a.drawFrame(s, w, width, height+statusHeight)
		case mouse.Event:
			a.editor.HandleMouse(e)
		case key.Event:
			if a.HandleKey(e) {
				w.Send(paint.Event{})
			}
		case error:
			a.logger.Printf("window: %v", e)
		}
	}
}

// HandleKey applies host shortcuts first and passes everything else to the
// editor. It reports whether the frame needs repainting.
func (a *App) HandleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	if e.Modifiers&key.ModControl != 0 {
		return a.shortcut(e)
	}
	return a.editor.HandleKey(e)
}

func (a *App) shortcut(e key.Event) bool {
	var (
		what string
		err  error
	)
	switch e.Code {
	case key.CodeS:
		what, err = "save", a.Save()
	case key.CodeE:
		what, err = "export", a.Export()
	case key.CodeC:
		if e.Modifiers&key.ModShift != 0 {
			what, err = "copy scene", a.CopyScene()
		} else {
			what, err = "copy image", a.CopyImage()
		}
	case key.CodeV:
		what, err = "paste", a.Paste()
	default:
		return false
	}
	if err != nil {
		a.logger.Printf("%s: %v", what, err)
		a.flash(what + " failed: " + err.Error())
	}
	return true
}

func (a *App) flash(msg string) {
	a.message = msg
	a.messageUntil = a.now().Add(messageDuration)
	a.after(messageDuration, a.NotifyChanged)
}

// Snapshot renders the current view without selection handles.
func (a *App) Snapshot() *image.RGBA {
	return render.Image(a.editor.Layer().Scene(), a.Width, a.Height, render.Options{Theme: a.theme, HideAnchors: true})
}
