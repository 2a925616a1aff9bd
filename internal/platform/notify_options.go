// Package platform delivers desktop notifications through whatever the host
// provides: the freedesktop D-Bus service, Notification Center or toasts.
package platform

import (
	"strings"
	"time"
)

// DefaultAppName is reported to the notification service when Options
// leaves AppName empty.
const DefaultAppName = "Sketchpad"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout is how long the notification stays up. Zero uses five seconds.
	Timeout time.Duration
}

func (o Options) appName() string {
	if name := strings.TrimSpace(o.AppName); name != "" {
		return name
	}
	return DefaultAppName
}

func (o Options) timeoutMillis() int32 {
	if o.Timeout <= 0 {
		return 5000
	}
	return int32(o.Timeout / time.Millisecond)
}
