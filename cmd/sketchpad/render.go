package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/sketchpad/internal/render"
)

type renderCmd struct {
	*root
	fs          *flag.FlagSet
	file        string
	output      string
	width       int
	height      int
	fit         bool
	margin      float64
	shadow      bool
	transparent bool
	selected    int
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	cmd := &renderCmd{root: r.subcommand("render"), fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.file, "file", "", "scene document to render (- for stdin)")
	fs.StringVar(&cmd.output, "output", "", "output file; the extension picks PNG or SVG")
	fs.IntVar(&cmd.width, "width", 800, "output width in pixels")
	fs.IntVar(&cmd.height, "height", 600, "output height in pixels")
	fs.BoolVar(&cmd.fit, "fit", false, "scale and centre the scene to fill the output")
	fs.Float64Var(&cmd.margin, "margin", 16, "space kept around the scene with -fit")
	fs.BoolVar(&cmd.shadow, "shadow", false, "draw a drop shadow under shapes (PNG only)")
	fs.BoolVar(&cmd.transparent, "transparent", false, "leave out the checkerboard")
	fs.IntVar(&cmd.selected, "select", -1, "index of a shape to draw with its handles")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cmd.file == "" || cmd.output == "" || fs.NArg() > 0 {
		return nil, &UsageError{of: cmd}
	}
	if cmd.width <= 0 || cmd.height <= 0 {
		return nil, fmt.Errorf("output size must be positive, got %dx%d", cmd.width, cmd.height)
	}
	return cmd, nil
}

func (c *renderCmd) Run() error {
	layer, err := loadLayer(c.file, false)
	if err != nil {
		return err
	}
	defer layer.Close()

	if c.fit {
		if lo, hi, ok := sceneBounds(layer.Shapes()); ok {
			if err := layer.Camera().Fit(lo, hi, float64(c.width), float64(c.height), c.margin); err != nil {
				return fmt.Errorf("fit scene: %w", err)
			}
		}
	}
	if c.selected >= 0 {
		if c.selected >= layer.Len() {
			return fmt.Errorf("select %d: scene has %d shapes", c.selected, layer.Len())
		}
		layer.Select(c.selected)
	}

	opts := render.Options{Theme: c.theme(), Transparent: c.transparent}
	if c.shadow {
		opts.Shadow = render.DefaultShadowOptions()
	}

	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(c.output)); ext {
	case ".png":
		if err := png.Encode(&buf, render.Image(layer.Scene(), c.width, c.height, opts)); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case ".svg":
		if err := render.WriteSVG(&buf, layer.Scene(), c.width, c.height, opts); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (want .png or .svg)", ext)
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.output, err)
	}
	c.notifier.Export(c.output)
	return nil
}
