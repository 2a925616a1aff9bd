//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard operations are not supported on this platform")

func WriteImage(image.Image) error { return errUnsupported }

func WriteScene([]byte) error { return errUnsupported }

func ReadScene() ([]byte, error) { return nil, errUnsupported }
