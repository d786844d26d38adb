package platform

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// MonthNames holds the abbreviated month names of a locale, January first.
type MonthNames [12]string

func (m MonthNames) Abbrev(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return m[month-1]
}

var EnglishMonths = MonthNames{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var supportedTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Norwegian,
}

var monthTables = []MonthNames{
	EnglishMonths,
	{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	{"jan", "feb", "mar", "apr", "mai", "jun", "jul", "aug", "sep", "okt", "nov", "des"},
}

var matcher = language.NewMatcher(supportedTags)

// LocaleMonths returns the month abbreviations for locale, a POSIX locale
// name such as de_DE.UTF-8 or a BCP 47 tag. An empty locale is taken from
// LC_ALL, LC_TIME or LANG. Unknown locales get English.
func LocaleMonths(locale string) MonthNames {
	if locale == "" {
		locale = envLocale()
	}

	tag, err := language.Parse(posixToBCP47(locale))
	if err != nil {
		return EnglishMonths
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return EnglishMonths
	}
	return monthTables[idx]
}

func envLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// posixToBCP47 turns "nb_NO.UTF-8@euro" into "nb-NO"
func posixToBCP47(locale string) string {
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		locale = locale[:idx]
	}
	if locale == "C" || locale == "POSIX" {
		return "en"
	}
	return strings.ReplaceAll(locale, "_", "-")
}
