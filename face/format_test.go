package face

import (
	"regexp"
	"testing"
	"time"

	"github.com/haakonleg/watchface-sway/platform"
)

var twoDigits = regexp.MustCompile(`^\d{2}$`)

func TestFormatTimeHours(t *testing.T) {
	cases := []struct {
		hour   int
		want24 string
		want12 string
	}{
		{0, "00", "12"},
		{1, "01", "01"},
		{9, "09", "09"},
		{11, "11", "11"},
		{12, "12", "12"},
		{13, "13", "01"},
		{23, "23", "11"},
	}

	for _, c := range cases {
		tm := time.Date(2026, time.March, 9, c.hour, 5, 0, 0, time.UTC)

		hours, _, _ := FormatTime(tm, true, platform.EnglishMonths)
		if hours != c.want24 {
			t.Errorf("24h hour %d = %q, want %q", c.hour, hours, c.want24)
		}

		hours, _, _ = FormatTime(tm, false, platform.EnglishMonths)
		if hours != c.want12 {
			t.Errorf("12h hour %d = %q, want %q", c.hour, hours, c.want12)
		}
	}
}

func TestFormatTimeAllMinutes(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 24*60; i++ {
		tm := start.Add(time.Duration(i) * time.Minute)

		for _, use24 := range []bool{true, false} {
			hours, minutes, date := FormatTime(tm, use24, platform.EnglishMonths)

			if !twoDigits.MatchString(hours) || len(hours) > MaxHoursLen {
				t.Fatalf("%v: hours %q not two digits", tm, hours)
			}
			if !twoDigits.MatchString(minutes) || len(minutes) > MaxMinutesLen {
				t.Fatalf("%v: minutes %q not two digits", tm, minutes)
			}
			if len([]rune(date)) > MaxDateLen {
				t.Fatalf("%v: date %q too long", tm, date)
			}
		}
	}

	_, minutes, _ := FormatTime(time.Date(2026, time.January, 1, 7, 5, 0, 0, time.UTC), true, platform.EnglishMonths)
	if minutes != "05" {
		t.Errorf("minute 5 = %q, want %q", minutes, "05")
	}
}

func TestFormatTimeDate(t *testing.T) {
	german := platform.LocaleMonths("de_DE.UTF-8")
	french := platform.LocaleMonths("fr_FR.UTF-8")

	cases := []struct {
		name   string
		tm     time.Time
		months platform.MonthNames
		want   string
	}{
		{"english", time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), platform.EnglishMonths, "09 Mar"},
		{"two digit day", time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), platform.EnglishMonths, "31 Dec"},
		{"german", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), german, "01 Mär"},
		{"long abbreviation is cut", time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC), french, "14 fév"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, date := FormatTime(c.tm, true, c.months); date != c.want {
				t.Errorf("date = %q, want %q", date, c.want)
			}
		})
	}
}

func TestFormatBattery(t *testing.T) {
	cases := []struct {
		percent  uint8
		charging bool
		want     string
	}{
		{87, false, "87% charged"},
		{5, true, "charging"},
		{100, true, "charging"},
		{0, false, "0% charged"},
		{100, false, "100% charged"},
	}

	for _, c := range cases {
		got := FormatBattery(c.percent, c.charging)
		if got != c.want {
			t.Errorf("FormatBattery(%d, %v) = %q, want %q", c.percent, c.charging, got, c.want)
		}
		if len(got) > MaxBatteryLen {
			t.Errorf("FormatBattery(%d, %v) exceeds %d characters", c.percent, c.charging, MaxBatteryLen)
		}
	}

	if MaxBatteryLen != 12 {
		t.Errorf("MaxBatteryLen = %d, want 12", MaxBatteryLen)
	}
}

func TestFormatConnection(t *testing.T) {
	if got := FormatConnection(true); got != "connected" {
		t.Errorf("FormatConnection(true) = %q", got)
	}
	if got := FormatConnection(false); got != "disconnected" {
		t.Errorf("FormatConnection(false) = %q", got)
	}
}

func TestFormattersAreIdempotent(t *testing.T) {
	tm := time.Date(2026, time.October, 19, 14, 42, 0, 0, time.UTC)

	h1, m1, d1 := FormatTime(tm, false, platform.EnglishMonths)
	h2, m2, d2 := FormatTime(tm, false, platform.EnglishMonths)
	if h1 != h2 || m1 != m2 || d1 != d2 {
		t.Errorf("FormatTime not stable: %q %q %q / %q %q %q", h1, m1, d1, h2, m2, d2)
	}
	if FormatBattery(42, false) != FormatBattery(42, false) {
		t.Errorf("FormatBattery not stable")
	}
	if FormatConnection(true) != FormatConnection(true) {
		t.Errorf("FormatConnection not stable")
	}
}
