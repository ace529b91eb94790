package bangla

import (
	"strings"
	"testing"
	"time"
)

// TestHour12 tests the 24-hour to 12-hour mapping.
func TestHour12(t *testing.T) {
	tests := []struct {
		hour     int
		expected int
	}{
		{0, 12},
		{1, 1},
		{11, 11},
		{12, 12},
		{13, 1},
		{18, 6},
		{23, 11},
	}

	for _, tt := range tests {
		if got := Hour12(tt.hour); got != tt.expected {
			t.Errorf("Hour12(%d) = %d, want %d", tt.hour, got, tt.expected)
		}
	}
}

// TestHour12FullDay verifies the h%12 contract over every hour of the day.
func TestHour12FullDay(t *testing.T) {
	for h := 0; h < 24; h++ {
		want := h % 12
		if want == 0 {
			want = 12
		}
		if got := Hour12(h); got != want {
			t.Errorf("Hour12(%d) = %d, want %d", h, got, want)
		}
	}
}

// TestDigits tests Bengali numeral rendering.
func TestDigits(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "০"},
		{5, "৫"},
		{12, "১২"},
		{59, "৫৯"},
		{2026, "২০২৬"},
		{-7, "-৭"},
	}

	for _, tt := range tests {
		if got := Digits(tt.n); got != tt.expected {
			t.Errorf("Digits(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

// TestTimePhrase tests spoken phrase construction.
func TestTimePhrase(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		minute   int
		expected string
	}{
		{
			name:     "afternoon with minutes",
			hour:     13,
			minute:   5,
			expected: "এখন সময় ১টা ৫ মিনিট",
		},
		{
			name:     "on the hour omits minute clause",
			hour:     9,
			minute:   0,
			expected: "এখন সময় ৯টা",
		},
		{
			name:     "midnight maps to twelve",
			hour:     0,
			minute:   30,
			expected: "এখন সময় ১২টা ৩০ মিনিট",
		},
		{
			name:     "noon on the hour",
			hour:     12,
			minute:   0,
			expected: "এখন সময় ১২টা",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2026, time.August, 23, tt.hour, tt.minute, 0, 0, time.UTC)
			if got := TimePhrase(at); got != tt.expected {
				t.Errorf("TimePhrase() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestTimePhraseNeverSaysZeroMinutes verifies the minute clause is absent,
// not rendered as zero, for every on-the-hour time.
func TestTimePhraseNeverSaysZeroMinutes(t *testing.T) {
	for h := 0; h < 24; h++ {
		at := time.Date(2026, time.January, 1, h, 0, 0, 0, time.UTC)
		phrase := TimePhrase(at)
		if strings.Contains(phrase, "মিনিট") {
			t.Errorf("hour %d: phrase %q contains a minute clause", h, phrase)
		}
		if strings.Contains(phrase, "০ মিনিট") {
			t.Errorf("hour %d: phrase %q renders zero minutes", h, phrase)
		}
	}
}

// TestDayPart tests day-part words across the day.
func TestDayPart(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "রাত"},
		{4, "ভোর"},
		{7, "সকাল"},
		{11, "সকাল"},
		{12, "দুপুর"},
		{14, "দুপুর"},
		{16, "বিকাল"},
		{18, "সন্ধ্যা"},
		{21, "রাত"},
		{23, "রাত"},
	}

	for _, tt := range tests {
		if got := DayPart(tt.hour); got != tt.expected {
			t.Errorf("DayPart(%d) = %q, want %q", tt.hour, got, tt.expected)
		}
	}
}

// TestFormatTime tests the display clock string.
func TestFormatTime(t *testing.T) {
	at := time.Date(2026, time.August, 23, 23, 5, 9, 0, time.UTC)
	want := "রাত ১১:০৫:০৯"
	if got := FormatTime(at); got != want {
		t.Errorf("FormatTime() = %q, want %q", got, want)
	}
}

// TestFormatDate tests the long-form date string.
func TestFormatDate(t *testing.T) {
	tests := []struct {
		date     time.Time
		expected string
	}{
		{
			date:     time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC), // a Sunday
			expected: "রবিবার, ২৩ আগস্ট ২০২৬",
		},
		{
			date:     time.Date(2026, time.February, 6, 0, 0, 0, 0, time.UTC), // a Friday
			expected: "শুক্রবার, ৬ ফেব্রুয়ারি ২০২৬",
		},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.date); got != tt.expected {
			t.Errorf("FormatDate(%v) = %q, want %q", tt.date, got, tt.expected)
		}
	}
}

// TestLanguageName verifies the CLDR-derived matching token.
func TestLanguageName(t *testing.T) {
	if LanguageName != "Bengali" {
		t.Errorf("LanguageName = %q, want %q", LanguageName, "Bengali")
	}
}

// TestLocaleTag verifies the fallback speech tag.
func TestLocaleTag(t *testing.T) {
	if got := Locale.String(); got != "bn-BD" {
		t.Errorf("Locale = %q, want %q", got, "bn-BD")
	}
}
