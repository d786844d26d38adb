package platform

import (
	"context"
	"errors"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/haakonleg/watchface-sway/internal/logger"
)

const callTimeout = 100 * time.Millisecond

var errTimeout = errors.New("timeout")

// busCall calls method on obj and stores the reply in result, giving up
// after callTimeout.
func busCall(obj dbus.BusObject, method string, result interface{}, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	resultCh := make(chan *dbus.Call, 1)
	obj.GoWithContext(ctx, method, 0, resultCh, args...)

	select {
	case <-ctx.Done():
		return errTimeout

	case call := <-resultCh:
		if call.Err != nil {
			return call.Err
		}
		return call.Store(result)
	}
}

func getAllProperties(conn *dbus.Conn, dest string, path dbus.ObjectPath, iface string) (map[string]dbus.Variant, error) {
	var props map[string]dbus.Variant
	err := busCall(conn.Object(dest, path), "org.freedesktop.DBus.Properties.GetAll", &props, iface)
	return props, err
}

// signalWatch forwards matching bus signals to a callback until stopped.
// The callback receives the watch context, which is cancelled by stop, so
// anything it posts can check whether the subscription is still live.
type signalWatch struct {
	conn    *dbus.Conn
	options []dbus.MatchOption
	signals chan *dbus.Signal
	cancel  context.CancelFunc
}

func watchSignals(conn *dbus.Conn, log *logger.Logger, onSignal func(context.Context, *dbus.Signal), options ...dbus.MatchOption) (*signalWatch, error) {
	if err := conn.AddMatchSignal(options...); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &signalWatch{
		conn:    conn,
		options: options,
		signals: make(chan *dbus.Signal, 10),
		cancel:  cancel,
	}
	conn.Signal(w.signals)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-w.signals:
				if !ok {
					log.Warnw("dbus signal channel closed")
					return
				}
				onSignal(ctx, sig)
			}
		}
	}()

	return w, nil
}

func (w *signalWatch) stop() {
	w.conn.RemoveSignal(w.signals)
	// the match rule goes away with the connection if this fails
	_ = w.conn.RemoveMatchSignal(w.options...)
	w.cancel()
}
