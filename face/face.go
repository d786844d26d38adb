// Package face is the watch face screen: hours and minutes in the middle,
// connection and battery captions on top, date at the bottom.
package face

import (
	"time"

	"github.com/haakonleg/watchface-sway/internal/logger"
	"github.com/haakonleg/watchface-sway/platform"
	"github.com/haakonleg/watchface-sway/resources"
	"github.com/haakonleg/watchface-sway/ui"
)

const (
	fontHeight    = 48
	gap           = 3
	offset        = 12
	minutesHeight = 50
	captionHeight = 34

	connectionY = 20
	batteryY    = 30
	dateY       = 130
)

// batteryPlaceholder is shown until the first battery reading.
const batteryPlaceholder = "100% charged"

// Face owns the layers and fonts of the screen between Load and Unload.
type Face struct {
	clock      platform.Clock
	battery    platform.Battery
	connection platform.Connectivity
	months     platform.MonthNames
	fonts      *ui.FontRegistry
	log        *logger.Logger

	hoursLayer      *ui.TextLayer
	minutesLayer    *ui.TextLayer
	dateLayer       *ui.TextLayer
	connectionLayer *ui.TextLayer
	batteryLayer    *ui.TextLayer

	fontBold48  *ui.Font
	fontLight48 *ui.Font
}

func New(clock platform.Clock, battery platform.Battery, connection platform.Connectivity, months platform.MonthNames, fonts *ui.FontRegistry, log *logger.Logger) *Face {
	return &Face{
		clock:      clock,
		battery:    battery,
		connection: connection,
		months:     months,
		fonts:      fonts,
		log:        log,
	}
}

// NewWindow creates the face's window with its load and unload handlers.
func (f *Face) NewWindow() *ui.Window {
	w := ui.NewWindow()
	w.SetBackgroundColor(f.connection.ColorScheme().Background)
	w.SetHandlers(ui.WindowHandlers{
		Load:   f.Load,
		Unload: f.Unload,
	})
	return w
}

func (f *Face) Load(w *ui.Window) {
	root := w.RootLayer()
	bounds := root.Frame()
	width := bounds.Size.W
	scheme := f.connection.ColorScheme()

	top := (bounds.Size.H - (2*fontHeight + gap)) / 2

	f.hoursLayer = ui.NewTextLayer(ui.NewRect(0, top, width, fontHeight))
	f.hoursLayer.SetName("hours")
	f.hoursLayer.SetTextColor(scheme.Hours)
	f.hoursLayer.SetBackgroundColor(ui.ColorClear)
	f.fontBold48 = f.loadFont(resources.FontOpenSansBold48)
	f.hoursLayer.SetFont(f.fontBold48)
	f.hoursLayer.SetTextAlignment(ui.AlignCenter)

	f.minutesLayer = ui.NewTextLayer(ui.NewRect(0, top+gap+fontHeight-offset, width, minutesHeight))
	f.minutesLayer.SetName("minutes")
	f.minutesLayer.SetTextColor(scheme.Text)
	f.minutesLayer.SetBackgroundColor(ui.ColorClear)
	f.fontLight48 = f.loadFont(resources.FontOpenSansLight48)
	f.minutesLayer.SetFont(f.fontLight48)
	f.minutesLayer.SetTextAlignment(ui.AlignCenter)

	f.connectionLayer = f.newCaption("connection", connectionY, width, scheme)
	f.dateLayer = f.newCaption("date", dateY, width, scheme)

	f.handleConnection(f.connection.Peek())

	f.batteryLayer = f.newCaption("battery", batteryY, width, scheme)
	f.batteryLayer.SetText(batteryPlaceholder)

	// show the time right away instead of waiting for the first tick
	f.handleMinuteTick(f.clock.Now(), platform.MinuteUnit)

	f.clock.SubscribeTick(platform.MinuteUnit, f.handleMinuteTick)
	f.battery.Subscribe(f.handleBattery)
	f.connection.Subscribe(f.handleConnection)

	root.AddChild(f.dateLayer)
	root.AddChild(f.hoursLayer)
	root.AddChild(f.minutesLayer)
	root.AddChild(f.connectionLayer)
	root.AddChild(f.batteryLayer)

	f.handleBattery(f.battery.Peek())

	f.log.Infow("watch face loaded", "bounds", bounds, "connectivity", f.connection.Name())
}

func (f *Face) Unload(w *ui.Window) {
	f.clock.UnsubscribeTick()
	f.battery.Unsubscribe()
	f.connection.Unsubscribe()

	for _, layer := range []*ui.TextLayer{f.dateLayer, f.hoursLayer, f.minutesLayer, f.connectionLayer, f.batteryLayer} {
		layer.Destroy()
	}
	f.dateLayer, f.hoursLayer, f.minutesLayer, f.connectionLayer, f.batteryLayer = nil, nil, nil, nil, nil

	f.fonts.Unload(f.fontBold48)
	f.fonts.Unload(f.fontLight48)
	f.fontBold48, f.fontLight48 = nil, nil

	f.log.Infow("watch face unloaded")
}

func (f *Face) newCaption(name string, y int, width int, scheme platform.ColorScheme) *ui.TextLayer {
	layer := ui.NewTextLayer(ui.NewRect(0, y, width, captionHeight))
	layer.SetName(name)
	layer.SetTextColor(scheme.Text)
	layer.SetBackgroundColor(ui.ColorClear)
	layer.SetFont(ui.SystemFont(ui.FontKeyGothic18))
	layer.SetTextAlignment(ui.AlignCenter)
	return layer
}

// loadFont returns nil when the resource is missing; the layer then
// renders with the bar font.
func (f *Face) loadFont(id resources.ID) *ui.Font {
	font, err := f.fonts.LoadCustom(id)
	if err != nil {
		f.log.Errorw("failed to load font", "id", id, "err", err)
		return nil
	}
	return font
}

func (f *Face) handleMinuteTick(t time.Time, units platform.TimeUnits) {
	hours, minutes, date := FormatTime(t, f.clock.Is24h(), f.months)

	f.hoursLayer.SetText(hours)
	f.minutesLayer.SetText(minutes)
	f.dateLayer.SetText(date)
}

func (f *Face) handleBattery(state platform.BatteryChargeState) {
	f.batteryLayer.SetText(FormatBattery(state.Percent, state.IsCharging))
}

func (f *Face) handleConnection(connected bool) {
	f.connectionLayer.SetText(FormatConnection(connected))
}
