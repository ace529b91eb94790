package espeak

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/banglaghori/banglaghori/internal/speech"
)

// parseVoices reads `espeak-ng --voices` output into voice descriptors.
// The format is columnar:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  bn             --/M      Bengali            bea/bn
//
// The language column is the locale tag and the file column is the handle
// passed back with -v.
func parseVoices(out []byte) []speech.Voice {
	var voices []speech.Voice

	scanner := bufio.NewScanner(bytes.NewReader(out))
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if strings.Contains(line, "Language") {
				continue
			}
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		voices = append(voices, speech.Voice{
			ID:       fields[4],
			Name:     fields[3],
			Language: fields[1],
			Gender:   parseGender(fields[2]),
		})
	}

	return voices
}

// parseGender extracts the gender letter from espeak's Age/Gender column
// ("--/M", "23/F", "--/-").
func parseGender(field string) string {
	_, g, ok := strings.Cut(field, "/")
	if !ok {
		return ""
	}
	switch g {
	case "M":
		return "male"
	case "F":
		return "female"
	default:
		return ""
	}
}
