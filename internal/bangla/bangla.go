// Package bangla renders times, dates and numbers for the Bengali
// (Bangladesh) locale.
package bangla

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is the canonical Bengali (Bangladesh) language tag. It is used as
// the fallback tag for speech requests when no matching voice is installed.
var Locale = language.MustParse("bn-BD")

// LanguageName is the English name of the language as reported by CLDR.
// Voice matching uses it as one of its two tokens.
var LanguageName = display.English.Languages().Name(language.Bengali)

// Bengali digits zero through nine.
var digits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// Digits renders n using the Bengali numeral system. Negative numbers keep
// the ASCII minus sign. Grouping separators are never inserted; clock and
// calendar values read as plain digit runs.
func Digits(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Hour12 maps a 24-hour clock hour to its 12-hour display value.
// Midnight and noon both map to 12.
func Hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

// TimePhrase builds the spoken announcement for t:
//
//	এখন সময় <hour>টা [<minute> মিনিট]
//
// The minute clause is omitted entirely on the hour; "zero minutes" is
// never rendered.
func TimePhrase(t time.Time) string {
	var b strings.Builder
	b.WriteString("এখন সময় ")
	b.WriteString(Digits(Hour12(t.Hour())))
	b.WriteString("টা")
	if m := t.Minute(); m > 0 {
		b.WriteString(" ")
		b.WriteString(Digits(m))
		b.WriteString(" মিনিট")
	}
	return b.String()
}

// DayPart returns the Bengali word for the part of day the hour falls in.
// Bengali does not use AM/PM; the day is divided into named spans instead.
func DayPart(hour int) string {
	switch {
	case hour >= 4 && hour < 6:
		return "ভোর"
	case hour >= 6 && hour < 12:
		return "সকাল"
	case hour >= 12 && hour < 15:
		return "দুপুর"
	case hour >= 15 && hour < 18:
		return "বিকাল"
	case hour >= 18 && hour < 20:
		return "সন্ধ্যা"
	default:
		return "রাত"
	}
}

// FormatTime renders t as a 12-hour display string with a day-part prefix,
// e.g. "রাত ১১:০৫:৩০".
func FormatTime(t time.Time) string {
	var b strings.Builder
	b.WriteString(DayPart(t.Hour()))
	b.WriteString(" ")
	b.WriteString(Digits(Hour12(t.Hour())))
	b.WriteString(":")
	b.WriteString(pad2(t.Minute()))
	b.WriteString(":")
	b.WriteString(pad2(t.Second()))
	return b.String()
}

func pad2(n int) string {
	s := Digits(n)
	if n < 10 {
		return "০" + s
	}
	return s
}
