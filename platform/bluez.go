package platform

import (
	"github.com/godbus/dbus/v5"

	"github.com/haakonleg/watchface-sway/internal/logger"
	"github.com/haakonleg/watchface-sway/ui"
)

const (
	bluezDest   = "org.bluez"
	bluezDevice = "org.bluez.Device1"
)

type managedObjects map[dbus.ObjectPath]map[string]map[string]dbus.Variant

// BluezConnectivity reports whether any paired Bluetooth device is
// connected. It renders monochrome.
type BluezConnectivity struct {
	connectionWatcher
}

func NewBluezConnectivity(conn *dbus.Conn, dispatcher Dispatcher, log *logger.Logger) *BluezConnectivity {
	return &BluezConnectivity{
		connectionWatcher: newConnectionWatcher(conn, dispatcher, log),
	}
}

func (b *BluezConnectivity) Name() string {
	return "bluez"
}

func (b *BluezConnectivity) ColorScheme() ColorScheme {
	return ColorScheme{
		Background: ui.ColorBlack,
		Hours:      ui.ColorWhite,
		Text:       ui.ColorWhite,
	}
}

func (b *BluezConnectivity) Peek() bool {
	var objects managedObjects
	obj := b.conn.Object(bluezDest, "/")
	if err := busCall(obj, "org.freedesktop.DBus.ObjectManager.GetManagedObjects", &objects); err != nil {
		b.log.Warnw("failed to query bluez", "err", err)
		return false
	}
	return anyDeviceConnected(objects)
}

func (b *BluezConnectivity) Subscribe(handler ConnectionHandler) {
	b.subscribe(handler, b.Peek, isBluezDeviceSignal,
		dbus.WithMatchSender(bluezDest),
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	)
}

func (b *BluezConnectivity) Unsubscribe() {
	b.unsubscribe()
}

func isBluezDeviceSignal(sig *dbus.Signal) bool {
	if sig.Name != "org.freedesktop.DBus.Properties.PropertiesChanged" || len(sig.Body) == 0 {
		return false
	}
	iface, ok := sig.Body[0].(string)
	return ok && iface == bluezDevice
}

func anyDeviceConnected(objects managedObjects) bool {
	for _, ifaces := range objects {
		props, ok := ifaces[bluezDevice]
		if !ok {
			continue
		}
		if v, ok := props["Connected"]; ok {
			if connected, ok := v.Value().(bool); ok && connected {
				return true
			}
		}
	}
	return false
}
