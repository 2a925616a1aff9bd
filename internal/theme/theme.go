package theme

import (
	"image/color"
	"sort"
	"strings"
)

// Theme defines the colours used to draw the canvas.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // Status bar background
	Foreground color.RGBA // Status bar text

	// Canvas
	CheckerLight color.RGBA
	CheckerDark  color.RGBA

	// Shapes
	Shape  color.RGBA // Used when a shape has no colour of its own
	Label  color.RGBA
	Anchor color.RGBA // Selection handles
}

// Default returns the dark checkerboard theme.
func Default() *Theme {
	return &Theme{
		Name:         "Default",
		Background:   color.RGBA{0x22, 0x22, 0x22, 0xff},
		Foreground:   color.RGBA{0xee, 0xee, 0xee, 0xff},
		CheckerLight: color.RGBA{0x66, 0x66, 0x66, 0xff},
		CheckerDark:  color.RGBA{0x33, 0x33, 0x33, 0xff},
		Shape:        color.RGBA{0xee, 0xee, 0xee, 0xff},
		Label:        color.RGBA{0xff, 0xff, 0xff, 0xff},
		Anchor:       color.RGBA{0x1e, 0x90, 0xff, 0xff}, // dodgerblue
	}
}

// Light returns a theme for bright surroundings.
func Light() *Theme {
	return &Theme{
		Name:         "Light",
		Background:   color.RGBA{220, 220, 220, 255},
		Foreground:   color.RGBA{0, 0, 0, 255},
		CheckerLight: color.RGBA{220, 220, 220, 255},
		CheckerDark:  color.RGBA{192, 192, 192, 255},
		Shape:        color.RGBA{0x33, 0x33, 0x33, 0xff},
		Label:        color.RGBA{0, 0, 0, 255},
		Anchor:       color.RGBA{0x1e, 0x90, 0xff, 0xff},
	}
}

var builtin = map[string]func() *Theme{
	"default": Default,
	"dark":    Default,
	"light":   Light,
}

// Builtin returns the named built-in theme.
func Builtin(name string) (*Theme, bool) {
	fn, ok := builtin[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// Names lists the built-in themes.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
