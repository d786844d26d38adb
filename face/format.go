package face

import (
	"fmt"
	"time"

	"github.com/haakonleg/watchface-sway/platform"
)

// Upper bounds of the text regions, in characters.
const (
	MaxHoursLen   = 2
	MaxMinutesLen = 2
	MaxDateLen    = 6
	MaxBatteryLen = len("100% charged")
)

// FormatTime returns the hours, minutes and date text for t.
// In 12 hour mode the hour is still zero padded and carries no am/pm marker.
func FormatTime(t time.Time, use24Hour bool, months platform.MonthNames) (string, string, string) {
	hour := t.Hour()
	if !use24Hour {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	hours := fmt.Sprintf("%02d", hour)
	minutes := fmt.Sprintf("%02d", t.Minute())
	date := truncate(fmt.Sprintf("%02d %s", t.Day(), months.Abbrev(t.Month())), MaxDateLen)

	return hours, minutes, date
}

// FormatBattery returns the battery caption. Charging overrides the percentage.
func FormatBattery(percent uint8, isCharging bool) string {
	if isCharging {
		return "charging"
	}
	return fmt.Sprintf("%d%% charged", percent)
}

func FormatConnection(connected bool) string {
	if connected {
		return "connected"
	}
	return "disconnected"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
