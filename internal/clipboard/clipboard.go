// Package clipboard publishes rendered sketches and scene documents to the
// system clipboard.
package clipboard

import (
	"bytes"
	"errors"
)

// SceneMIME is the clipboard target scene documents are offered under, in
// addition to plain UTF-8 text.
const SceneMIME = "application/x-sketchpad+json"

// ErrNoScene is returned by ReadScene when the clipboard holds nothing that
// looks like a scene document.
var ErrNoScene = errors.New("clipboard does not contain a scene")

// sceneBytes trims what text targets add around a document and rejects
// anything that is not a JSON object.
func sceneBytes(data []byte) ([]byte, error) {
	data = bytes.TrimRight(data, "\x00")
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, ErrNoScene
	}
	return data, nil
}
