// Package platform provides the host services a watch face consumes: a
// tick timer, battery state and connectivity state. Handlers are never
// called directly from a service goroutine; they are posted to a
// Dispatcher so they run on the UI event loop.
package platform

import (
	"time"

	"github.com/haakonleg/watchface-sway/ui"
)

// Dispatcher runs fn on the event loop. ui.App implements it.
type Dispatcher interface {
	Post(fn func())
}

type TimeUnits int

const (
	SecondUnit TimeUnits = iota
	MinuteUnit
	HourUnit
	DayUnit
)

func (u TimeUnits) String() string {
	switch u {
	case SecondUnit:
		return "second"
	case MinuteUnit:
		return "minute"
	case HourUnit:
		return "hour"
	default:
		return "day"
	}
}

type TickHandler func(t time.Time, units TimeUnits)

type Clock interface {
	Now() time.Time
	Is24h() bool
	SubscribeTick(units TimeUnits, handler TickHandler)
	UnsubscribeTick()
}

type BatteryChargeState struct {
	Percent    uint8
	IsCharging bool
	IsPlugged  bool
}

type BatteryHandler func(state BatteryChargeState)

type Battery interface {
	Peek() BatteryChargeState
	Subscribe(handler BatteryHandler)
	Unsubscribe()
}

type ConnectionHandler func(connected bool)

// ColorScheme is the set of colors a connectivity variant renders with.
type ColorScheme struct {
	Background ui.Color
	Hours      ui.Color
	Text       ui.Color
}

// Connectivity is implemented once per host variant.
type Connectivity interface {
	Name() string
	Peek() bool
	Subscribe(handler ConnectionHandler)
	Unsubscribe()
	ColorScheme() ColorScheme
}
