package platform

import (
	"github.com/godbus/dbus/v5"

	"github.com/haakonleg/watchface-sway/internal/logger"
	"github.com/haakonleg/watchface-sway/ui"
)

const (
	nmDest  = "org.freedesktop.NetworkManager"
	nmPath  = dbus.ObjectPath("/org/freedesktop/NetworkManager")
	nmIface = "org.freedesktop.NetworkManager"

	// NM_STATE_CONNECTED_GLOBAL
	nmStateConnectedGlobal uint32 = 70
)

// NetworkManagerConnectivity reports whether NetworkManager has global
// connectivity. It renders the hours in color.
type NetworkManagerConnectivity struct {
	connectionWatcher
}

func NewNetworkManagerConnectivity(conn *dbus.Conn, dispatcher Dispatcher, log *logger.Logger) *NetworkManagerConnectivity {
	return &NetworkManagerConnectivity{
		connectionWatcher: newConnectionWatcher(conn, dispatcher, log),
	}
}

func (n *NetworkManagerConnectivity) Name() string {
	return "networkmanager"
}

func (n *NetworkManagerConnectivity) ColorScheme() ColorScheme {
	return ColorScheme{
		Background: ui.ColorBlack,
		Hours:      ui.ColorVividCerulean,
		Text:       ui.ColorWhite,
	}
}

func (n *NetworkManagerConnectivity) Peek() bool {
	props, err := getAllProperties(n.conn, nmDest, nmPath, nmIface)
	if err != nil {
		n.log.Warnw("failed to call NetworkManager", "err", err)
		return false
	}

	v, ok := props["State"]
	if !ok {
		return false
	}
	state, _ := v.Value().(uint32)
	return nmConnected(state)
}

func (n *NetworkManagerConnectivity) Subscribe(handler ConnectionHandler) {
	n.subscribe(handler, n.Peek, isNMStateSignal,
		dbus.WithMatchObjectPath(nmPath),
		dbus.WithMatchInterface(nmIface),
		dbus.WithMatchMember("StateChanged"),
	)
}

func (n *NetworkManagerConnectivity) Unsubscribe() {
	n.unsubscribe()
}

func isNMStateSignal(sig *dbus.Signal) bool {
	return sig.Path == nmPath && sig.Name == nmIface+".StateChanged"
}

func nmConnected(state uint32) bool {
	return state >= nmStateConnectedGlobal
}
