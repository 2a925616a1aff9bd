package app

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/sketchpad/internal/shape"
)

// Save writes the scene document to ScenePath.
func (a *App) Save() error {
	data, err := shape.Marshal(a.editor.Layer().Shapes())
	if err != nil {
		return err
	}
	if err := writeFile(a.ScenePath, data); err != nil {
		return err
	}
	a.notifier.Save(a.ScenePath)
	a.flash("saved " + a.ScenePath)
	return nil
}

// Export writes the current view as PNG to ExportPath, or next to
// ScenePath when no export path is set.
func (a *App) Export() error {
	path := a.exportPath()
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.Snapshot()); err != nil {
		return err
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return err
	}
	a.notifier.Export(path)
	a.flash("exported " + path)
	return nil
}

func (a *App) exportPath() string {
	if a.ExportPath != "" {
		return a.ExportPath
	}
	return strings.TrimSuffix(a.ScenePath, filepath.Ext(a.ScenePath)) + ".png"
}

// CopyImage publishes the current view to the clipboard.
func (a *App) CopyImage() error {
	img := a.Snapshot()
	if err := a.writeImage(img); err != nil {
		return err
	}
	a.notifier.Copy("image", img)
	a.flash("copied image")
	return nil
}

// CopyScene publishes the scene document to the clipboard.
func (a *App) CopyScene() error {
	data, err := shape.Marshal(a.editor.Layer().Shapes())
	if err != nil {
		return err
	}
	if err := a.writeScene(data); err != nil {
		return err
	}
	a.notifier.Copy("scene", nil)
	a.flash("copied scene")
	return nil
}

// Paste adds the shapes of a scene document on the clipboard on top of the
// existing ones.
func (a *App) Paste() error {
	data, err := a.readScene()
	if err != nil {
		return err
	}
	shapes, err := shape.Unmarshal(data)
	if err != nil {
		return err
	}
	for _, s := range shapes {
		a.editor.Layer().Add(s)
	}
	a.flash(fmt.Sprintf("pasted %d shapes", len(shapes)))
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
