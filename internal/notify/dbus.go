//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName      = "org.freedesktop.Notifications"
	busPath      = "/org/freedesktop/Notifications"
	busInterface = "org.freedesktop.Notifications"

	appName      = "Chorus"
	desktopEntry = "chorus"
)

// caller is the part of dbus.BusObject used to reach the notification
// daemon.
type caller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

type busNotifier struct {
	obj caller
}

// New connects to the session bus. Without one, recommendations are not
// announced and a no-op Notifier is returned.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nop{}, nil //nolint:nilerr // desktop notifications are optional
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

// Notify shows n, replacing n.ReplacesID when the daemon still has it.
func (b *busNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
		"category":      dbus.MakeVariant(hintCategory),
	}

	// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout
	call := b.obj.Call(busInterface+".Notify", 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body, []string{}, hints, n.Timeout)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close dismisses the notification id. Zero is never a live id.
func (b *busNotifier) Close(id uint32) error {
	if id == 0 {
		return nil
	}
	return b.obj.Call(busInterface+".CloseNotification", 0, id).Err
}
