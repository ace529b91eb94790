package bangla

import (
	"strings"
	"time"
)

// Weekday names, Sunday first to line up with time.Weekday.
var weekdays = [7]string{
	"রবিবার",
	"সোমবার",
	"মঙ্গলবার",
	"বুধবার",
	"বৃহস্পতিবার",
	"শুক্রবার",
	"শনিবার",
}

// Gregorian month names, January first to line up with time.Month.
var months = [12]string{
	"জানুয়ারি",
	"ফেব্রুয়ারি",
	"মার্চ",
	"এপ্রিল",
	"মে",
	"জুন",
	"জুলাই",
	"আগস্ট",
	"সেপ্টেম্বর",
	"অক্টোবর",
	"নভেম্বর",
	"ডিসেম্বর",
}

// Weekday returns the Bengali name for d.
func Weekday(d time.Weekday) string {
	return weekdays[d]
}

// Month returns the Bengali name for m.
func Month(m time.Month) string {
	return months[m-1]
}

// FormatDate renders t as a long-form Bengali date, e.g.
// "রবিবার, ২৩ আগস্ট ২০২৬".
func FormatDate(t time.Time) string {
	var b strings.Builder
	b.WriteString(Weekday(t.Weekday()))
	b.WriteString(", ")
	b.WriteString(Digits(t.Day()))
	b.WriteString(" ")
	b.WriteString(Month(t.Month()))
	b.WriteString(" ")
	b.WriteString(Digits(t.Year()))
	return b.String()
}
