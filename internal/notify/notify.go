// Package notify announces exports and clipboard copies through the desktop
// notification center.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/roughboard/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventExport emits a notification when the drawing is written to disk.
	EventExport Event = "export"
	// EventCopy emits a notification when the drawing is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
//
// Template may use these placeholders:
//
//	{path}    absolute path of the exported file
//	{name}    base name of the exported file
//	{shapes}  how many shapes the drawing holds, e.g. "3 shapes"
//	{what}    what was copied, e.g. "image" or "data URL"
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "Roughboard",
		Events: map[Event]EventPreference{
			EventExport: {Template: "Exported {shapes} to {name}"},
			EventCopy:   {Template: "Copied {shapes} as {what}"},
		},
	}
}

var envTemplates = map[Event]string{
	EventExport: "ROUGHBOARD_NOTIFY_EXPORT_TEXT",
	EventCopy:   "ROUGHBOARD_NOTIFY_COPY_TEXT",
}

// LoadPreferences reads overrides from the environment.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("ROUGHBOARD_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for event, key := range envTemplates {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Events[event] = EventPreference{Template: v}
		}
	}
	return prefs
}

// Sender delivers a formatted notification.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications based on the configured preferences.
// A nil Notifier is silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
}

// New creates a new Notifier using the provided preferences. Every event
// starts disabled.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// WithSender replaces the platform notifier, mainly for tests.
func (n *Notifier) WithSender(s Sender) *Notifier {
	n.send = s
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Export announces that a drawing of the given number of shapes was written
// to path. PNG exports use the file itself as the notification icon.
func (n *Notifier) Export(path string, shapes int) {
	if !n.enabledFor(EventExport) {
		return
	}
	opts := platform.Options{AppName: n.prefs.Title, Tag: string(EventExport)}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
		if _, err := os.Stat(abs); err == nil && strings.EqualFold(filepath.Ext(abs), ".png") {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventExport, strings.NewReplacer(
		"{path}", path,
		"{name}", filepath.Base(path),
		"{shapes}", countShapes(shapes),
	), opts)
}

// Copy announces that a drawing was copied to the clipboard as what.
func (n *Notifier) Copy(what string, shapes int) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(what) == "" {
		what = "image"
	}
	n.dispatch(EventCopy, strings.NewReplacer(
		"{what}", what,
		"{shapes}", countShapes(shapes),
	), platform.Options{AppName: n.prefs.Title, Tag: string(EventCopy)})
}

func countShapes(n int) string {
	switch n {
	case 0:
		return "an empty drawing"
	case 1:
		return "1 shape"
	}
	return fmt.Sprintf("%d shapes", n)
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, fill *strings.Replacer, opts platform.Options) {
	pref := n.prefs.Events[event]
	body := strings.TrimSpace(fill.Replace(pref.Template))
	if body == "" || n.send == nil {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
