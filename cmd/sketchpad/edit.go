package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/example/sketchpad/internal/app"
	"github.com/example/sketchpad/internal/editor"
	"github.com/example/sketchpad/internal/shape"
)

type editCmd struct {
	*root
	fs     *flag.FlagSet
	file   string
	output string
	width  int
	height int
	color  string
	mode   string
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	cfg := r.config
	cmd := &editCmd{root: r.subcommand("edit"), fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.file, "file", defaultScenePath(cfg.SaveDir), "scene document to open and save")
	fs.StringVar(&cmd.output, "output", "", "PNG written by Ctrl+E (default: -file with a .png extension)")
	fs.IntVar(&cmd.width, "width", cfg.View.Width, "window width")
	fs.IntVar(&cmd.height, "height", cfg.View.Height, "window height")
	fs.StringVar(&cmd.color, "color", cfg.DefaultColor, "colour of new shapes")
	fs.StringVar(&cmd.mode, "mode", "rect", "initial draw mode (rect, circle, polygon)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func defaultScenePath(dir string) string {
	if dir == "" {
		return "sketch.json"
	}
	return filepath.Join(dir, "sketch.json")
}

func (e *editCmd) Run() error {
	mode, err := parseDrawMode(e.mode)
	if err != nil {
		return err
	}
	layer, err := loadLayer(e.file, true)
	if err != nil {
		return err
	}
	logger := log.New(os.Stderr, "sketchpad: ", log.LstdFlags)
	view := e.config.View
	ed := editor.New(layer,
		editor.WithColor(e.color),
		editor.WithDrawMode(mode),
		editor.WithZoomFactors(view.ZoomIn, view.ZoomOut),
		editor.WithClickThreshold(view.ClickThreshold),
		editor.WithLogger(logger),
	)
	a := app.New(ed,
		app.WithTitle("Sketchpad - "+filepath.Base(e.file)),
		app.WithSize(e.width, e.height),
		app.WithTheme(e.theme()),
		app.WithNotifier(e.notifier),
		app.WithScenePath(e.file),
		app.WithExportPath(e.output),
		app.WithLogger(logger),
	)
	a.Run()
	layer.Close()
	return nil
}

func parseDrawMode(s string) (editor.DrawMode, error) {
	k, err := shape.ParseKind(s)
	if err != nil {
		return 0, err
	}
	switch k {
	case shape.KindCircle:
		return editor.DrawCircle, nil
	case shape.KindPolygon:
		return editor.DrawPolygon, nil
	}
	return editor.DrawRectangle, nil
}
