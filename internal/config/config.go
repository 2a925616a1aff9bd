package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// View holds window and gesture settings for the editor.
type View struct {
	Width          int
	Height         int
	ZoomIn         float64
	ZoomOut        float64
	ClickThreshold float64
}

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Export bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Theme        string
	SaveDir      string
	DefaultColor string
	View         View
	Notify       Notify
	Themes       map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:        "", // empty lets the environment or the built-in default win
		DefaultColor: "5555ff",
		View: View{
			Width:          1024,
			Height:         768,
			ZoomIn:         1.1,
			ZoomOut:        0.9,
			ClickThreshold: 5,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// ResolveTheme returns the theme called name, preferring [theme.<name>]
// sections over the loader's built-in and on-disk themes.
func (c *Config) ResolveTheme(name string, loader *theme.Loader) (*theme.Theme, error) {
	if t, ok := c.Themes[name]; ok {
		return t, nil
	}
	if loader == nil {
		loader = theme.NewLoader()
	}
	return loader.Load(name)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.DefaultColor != "" {
		fmt.Fprintf(&sb, "default_color = %s\n", c.DefaultColor)
	}
	sb.WriteString("\n")

	sb.WriteString("[view]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.View.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.View.Height)
	fmt.Fprintf(&sb, "zoom_in = %g\n", c.View.ZoomIn)
	fmt.Fprintf(&sb, "zoom_out = %g\n", c.View.ZoomOut)
	fmt.Fprintf(&sb, "click_threshold = %g\n", c.View.ClickThreshold)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
