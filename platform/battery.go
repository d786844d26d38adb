package platform

import (
	"context"
	"math"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/haakonleg/watchface-sway/internal/logger"
)

const (
	upowerDest    = "org.freedesktop.UPower"
	upowerDevice  = "org.freedesktop.UPower.Device"
	upowerDisplay = dbus.ObjectPath("/org/freedesktop/UPower/devices/DisplayDevice")
)

// UPower device states
const (
	upowerCharging      uint32 = 1
	upowerFullyCharged  uint32 = 4
	upowerPendingCharge uint32 = 5
)

// UPowerBattery reports the UPower display device, the aggregate of all
// system batteries.
type UPowerBattery struct {
	conn       *dbus.Conn
	dispatcher Dispatcher
	log        *logger.Logger

	mu    sync.Mutex
	watch *signalWatch
}

func NewUPowerBattery(conn *dbus.Conn, dispatcher Dispatcher, log *logger.Logger) *UPowerBattery {
	return &UPowerBattery{conn: conn, dispatcher: dispatcher, log: log}
}

// Peek returns the current charge state. If UPower cannot be reached the
// battery is reported full and unplugged.
func (b *UPowerBattery) Peek() BatteryChargeState {
	props, err := getAllProperties(b.conn, upowerDest, upowerDisplay, upowerDevice)
	if err != nil {
		b.log.Warnw("failed to read battery state", "err", err)
		return BatteryChargeState{Percent: 100}
	}
	return chargeStateFromProps(props)
}

func (b *UPowerBattery) Subscribe(handler BatteryHandler) {
	b.Unsubscribe()

	onSignal := func(ctx context.Context, sig *dbus.Signal) {
		if sig.Path != upowerDisplay || sig.Name != "org.freedesktop.DBus.Properties.PropertiesChanged" {
			return
		}

		state := b.Peek()
		b.dispatcher.Post(func() {
			if ctx.Err() == nil {
				handler(state)
			}
		})
	}

	watch, err := watchSignals(b.conn, b.log, onSignal,
		dbus.WithMatchObjectPath(upowerDisplay),
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	)
	if err != nil {
		b.log.Errorw("failed to subscribe to battery state", "err", err)
		return
	}

	b.mu.Lock()
	b.watch = watch
	b.mu.Unlock()
}

func (b *UPowerBattery) Unsubscribe() {
	b.mu.Lock()
	watch := b.watch
	b.watch = nil
	b.mu.Unlock()

	if watch != nil {
		watch.stop()
	}
}

func chargeStateFromProps(props map[string]dbus.Variant) BatteryChargeState {
	state := BatteryChargeState{}

	if v, ok := props["Percentage"]; ok {
		if percent, ok := v.Value().(float64); ok {
			state.Percent = uint8(math.Round(math.Max(0, math.Min(100, percent))))
		}
	}

	if v, ok := props["State"]; ok {
		if s, ok := v.Value().(uint32); ok {
			state.IsCharging = s == upowerCharging
			state.IsPlugged = s == upowerCharging || s == upowerFullyCharged || s == upowerPendingCharge
		}
	}

	return state
}
