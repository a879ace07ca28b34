package platform

import "time"

// DefaultTimeout is how long a notification stays up when Options does not
// say otherwise.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender to the notification center.
	AppName string
	// IconPath, when non-empty, points to an image file shown with the
	// notification if the platform supports it.
	IconPath string
	// Timeout is how long the notification stays up; zero means DefaultTimeout.
	Timeout time.Duration
	// Tag groups notifications. Where the platform allows it a notification
	// replaces the previous one with the same tag, so repeated exports do
	// not pile up.
	Tag string
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "Roughboard"
	}
	return o.AppName
}
