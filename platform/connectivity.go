package platform

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/haakonleg/watchface-sway/internal/config"
	"github.com/haakonleg/watchface-sway/internal/logger"
)

// NewConnectivity returns the adapter for a configured variant.
func NewConnectivity(variant string, conn *dbus.Conn, dispatcher Dispatcher, log *logger.Logger) (Connectivity, error) {
	switch variant {
	case config.VariantBluez:
		return NewBluezConnectivity(conn, dispatcher, log), nil
	case config.VariantNetworkManager:
		return NewNetworkManagerConnectivity(conn, dispatcher, log), nil
	default:
		return nil, fmt.Errorf("unknown connectivity variant %q", variant)
	}
}

// connectionWatcher re-reads the connection state whenever a matching
// signal arrives and posts the handler only when the state changed.
// Subscribing always posts the current state once, since it may differ
// from what the caller peeked earlier.
type connectionWatcher struct {
	conn       *dbus.Conn
	dispatcher Dispatcher
	log        *logger.Logger

	// startWatch forwards matching bus signals to onSignal until stopped.
	startWatch func(onSignal func(context.Context, *dbus.Signal), options ...dbus.MatchOption) (stopper, error)

	mu     sync.Mutex
	watch  stopper
	cancel context.CancelFunc

	// postMu orders peeks with their posts so a stale state never lands
	// after a newer one.
	postMu sync.Mutex
	last   bool
}

type stopper interface {
	stop()
}

func newConnectionWatcher(conn *dbus.Conn, dispatcher Dispatcher, log *logger.Logger) connectionWatcher {
	return connectionWatcher{
		conn:       conn,
		dispatcher: dispatcher,
		log:        log,
		startWatch: func(onSignal func(context.Context, *dbus.Signal), options ...dbus.MatchOption) (stopper, error) {
			watch, err := watchSignals(conn, log, onSignal, options...)
			if err != nil {
				return nil, err
			}
			return watch, nil
		},
	}
}

func (w *connectionWatcher) subscribe(handler ConnectionHandler, peek func() bool, relevant func(*dbus.Signal) bool, options ...dbus.MatchOption) {
	w.unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())

	onSignal := func(_ context.Context, sig *dbus.Signal) {
		if relevant(sig) {
			w.refresh(ctx, handler, peek, false)
		}
	}

	watch, err := w.startWatch(onSignal, options...)
	if err != nil {
		w.log.Errorw("failed to subscribe to connection state", "err", err)
	}

	w.mu.Lock()
	w.watch = watch
	w.cancel = cancel
	w.mu.Unlock()

	w.refresh(ctx, handler, peek, true)
}

// refresh peeks the state and posts it when it changed or when force is set.
// Posted events are dropped once ctx is cancelled.
func (w *connectionWatcher) refresh(ctx context.Context, handler ConnectionHandler, peek func() bool, force bool) {
	w.postMu.Lock()
	defer w.postMu.Unlock()

	connected := peek()
	if !force && connected == w.last {
		return
	}
	w.last = connected

	if !force {
		w.log.Infow("connection changed", "connected", connected)
	}
	w.dispatcher.Post(func() {
		if ctx.Err() == nil {
			handler(connected)
		}
	})
}

func (w *connectionWatcher) unsubscribe() {
	w.mu.Lock()
	watch, cancel := w.watch, w.cancel
	w.watch, w.cancel = nil, nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if watch != nil {
		watch.stop()
	}
}
