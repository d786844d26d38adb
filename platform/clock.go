package platform

import (
	"context"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/haakonleg/watchface-sway/internal/logger"
)

// HourFormatSource reports the user's 12/24 hour preference.
type HourFormatSource interface {
	Is24h() bool
}

// StaticHourFormat is a fixed preference.
type StaticHourFormat bool

func (s StaticHourFormat) Is24h() bool {
	return bool(s)
}

// PortalHourFormat reads org.gnome.desktop.interface clock-format through
// the xdg desktop portal on every call.
type PortalHourFormat struct {
	conn     *dbus.Conn
	fallback bool
	log      *logger.Logger
}

func NewPortalHourFormat(conn *dbus.Conn, fallback bool, log *logger.Logger) *PortalHourFormat {
	return &PortalHourFormat{conn: conn, fallback: fallback, log: log}
}

func (p *PortalHourFormat) Is24h() bool {
	var value dbus.Variant
	obj := p.conn.Object("org.freedesktop.portal.Desktop", "/org/freedesktop/portal/desktop")
	if err := busCall(obj, "org.freedesktop.portal.Settings.Read", &value, "org.gnome.desktop.interface", "clock-format"); err != nil {
		p.log.Debugw("clock-format not available", "err", err)
		return p.fallback
	}

	return parseClockFormat(value, p.fallback)
}

// parseClockFormat unwraps the portal reply, which older portals nest in
// a second variant.
func parseClockFormat(value dbus.Variant, fallback bool) bool {
	for {
		inner, ok := value.Value().(dbus.Variant)
		if !ok {
			break
		}
		value = inner
	}

	switch value.Value() {
	case "24h":
		return true
	case "12h":
		return false
	default:
		return fallback
	}
}

// TickService delivers a tick at every boundary of the subscribed unit.
type TickService struct {
	dispatcher Dispatcher
	hourFormat HourFormatSource
	now        func() time.Time
	log        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewClock(dispatcher Dispatcher, hourFormat HourFormatSource, log *logger.Logger) *TickService {
	return &TickService{
		dispatcher: dispatcher,
		hourFormat: hourFormat,
		now:        time.Now,
		log:        log,
	}
}

func (c *TickService) Now() time.Time {
	return c.now()
}

func (c *TickService) Is24h() bool {
	return c.hourFormat.Is24h()
}

// SubscribeTick replaces any previous subscription.
func (c *TickService) SubscribeTick(units TimeUnits, handler TickHandler) {
	c.UnsubscribeTick()

	ctx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	c.log.Debugw("subscribed to tick", "units", units)
	go c.run(ctx, units, handler)
}

func (c *TickService) UnsubscribeTick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *TickService) run(ctx context.Context, units TimeUnits, handler TickHandler) {
	for {
		now := c.now()
		timer := time.NewTimer(nextBoundary(now, units).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case <-timer.C:
			t := c.now()
			c.dispatcher.Post(func() {
				// unsubscribed while queued
				if ctx.Err() == nil {
					handler(t, units)
				}
			})
		}
	}
}

// nextBoundary returns the start of the next second, minute, hour or day
// after t in t's location.
func nextBoundary(t time.Time, units TimeUnits) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()

	switch units {
	case SecondUnit:
		return time.Date(y, mo, d, h, mi, s+1, 0, loc)
	case MinuteUnit:
		return time.Date(y, mo, d, h, mi+1, 0, 0, loc)
	case HourUnit:
		return time.Date(y, mo, d, h+1, 0, 0, 0, loc)
	default:
		return time.Date(y, mo, d+1, 0, 0, 0, 0, loc)
	}
}
