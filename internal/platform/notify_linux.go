//go:build linux

package platform

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

// shown maps a tag to the id the notification server gave its last
// notification.
var shown struct {
	sync.Mutex
	ids map[string]uint32
}

func replaces(tag string) uint32 {
	shown.Lock()
	defer shown.Unlock()
	return shown.ids[tag]
}

func remember(tag string, id uint32) {
	if tag == "" {
		return
	}
	shown.Lock()
	defer shown.Unlock()
	if shown.ids == nil {
		shown.ids = map[string]uint32{}
	}
	shown.ids[tag] = id
}

// Notify sends a desktop notification over the session bus.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	var replaceID uint32
	if opts.Tag != "" {
		replaceID = replaces(opts.Tag)
	}
	hints := map[string]dbus.Variant{
		"category": dbus.MakeVariant("transfer.complete"),
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		opts.appName(), replaceID, opts.IconPath, title, body, []string{}, hints, int32(opts.timeout().Milliseconds()))
	if call.Err != nil {
		return call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return err
	}
	remember(opts.Tag, id)
	return nil
}
