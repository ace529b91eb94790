package speech

import (
	"strings"

	"github.com/banglaghori/banglaghori/internal/bangla"
)

// matchTokens are the two case-insensitive tokens a voice locale tag can
// carry for the target language: the ISO 639 code and the English name.
var matchTokens = func() []string {
	base, _ := bangla.Locale.Base()
	return []string{base.String(), strings.ToLower(bangla.LanguageName)}
}()

// matchesBengali reports whether a locale tag refers to a Bengali voice.
func matchesBengali(tag string) bool {
	tag = strings.ToLower(tag)
	for _, tok := range matchTokens {
		if strings.Contains(tag, tok) {
			return true
		}
	}
	return false
}

// HasBengaliVoice reports whether at least one descriptor in the inventory
// matches the target language. Absence is not an error; it only drives an
// advisory notice.
func HasBengaliVoice(voices []Voice) bool {
	for _, v := range voices {
		if matchesBengali(v.Language) {
			return true
		}
	}
	return false
}

// FindVoice returns the first descriptor matching the target language, or
// nil when the inventory has none.
func FindVoice(voices []Voice) *Voice {
	for i := range voices {
		if matchesBengali(voices[i].Language) {
			v := voices[i]
			return &v
		}
	}
	return nil
}
