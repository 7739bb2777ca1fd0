package search

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sawaari/sawaari/pkg/util"
)

// DateHintExtractor pulls an implicit travel date out of a free-text
// location phrase, in English ("on 17th november") or Hindi
// ("17 नवंबर को"). Voice transcriptions routinely glue the date onto the
// destination, so on success the matched fragment is stripped and the
// remainder returned as the effective destination.
type DateHintExtractor struct {
	Now func() time.Time
}

var englishDatePattern = regexp.MustCompile(`(?i)\s*\bon\s+(\d{1,2})(?:st|nd|rd|th)?\s+(january|february|march|april|may|june|july|august|september|october|november|december)\b`)

var hindiDatePattern = regexp.MustCompile(`\s*(\d{1,2})(?:\s+तारीख|\s+को)?\s+([\p{Devanagari}]+)`)

var englishMonths = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var hindiMonths = map[string]int{
	"जनवरी": 0, "फरवरी": 1, "मार्च": 2, "अप्रैल": 3, "मई": 4, "जून": 5,
	"जुलाई": 6, "अगस्त": 7, "सितंबर": 8, "अक्टूबर": 9, "नवंबर": 10, "दिसंबर": 11,
}

// relativeDateWords are checked before the dated patterns, longest
// phrase first so "day after tomorrow" is not swallowed by "tomorrow".
var relativeDateWords = []struct {
	word   string
	offset int
}{
	{"day after tomorrow", 2},
	{"परसों", 2},
	{"tomorrow", 1},
	{"कल", 1},
	{"today", 0},
	{"आज", 0},
}

// Extract returns the text with any recognised date fragment removed,
// plus the date as YYYY-MM-DD. When no date is found (or the day/month
// combination is not a real date) the original text comes back
// untouched with an empty date.
func (e DateHintExtractor) Extract(text string) (string, string) {
	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}

	if cleaned, date, ok := e.extractRelative(text, now); ok {
		return cleaned, date
	}

	if match := englishDatePattern.FindStringSubmatchIndex(text); match != nil {
		day, _ := strconv.Atoi(text[match[2]:match[3]])
		monthName := strings.ToLower(text[match[4]:match[5]])

		monthIndex := -1
		for i, name := range englishMonths {
			if name == monthName {
				monthIndex = i
				break
			}
		}

		if date, ok := buildDate(now.Year(), monthIndex, day); ok {
			return stripMatch(text, match[0], match[1]), date
		}

		return text, ""
	}

	if match := hindiDatePattern.FindStringSubmatchIndex(text); match != nil {
		day, _ := strconv.Atoi(text[match[2]:match[3]])
		monthName := text[match[4]:match[5]]

		monthIndex, known := hindiMonths[monthName]
		if !known {
			return text, ""
		}

		if date, ok := buildDate(now.Year(), monthIndex, day); ok {
			return stripMatch(text, match[0], match[1]), date
		}
	}

	return text, ""
}

func (e DateHintExtractor) extractRelative(text string, now time.Time) (string, string, bool) {
	lower := strings.ToLower(text)

	for _, relative := range relativeDateWords {
		index := strings.Index(lower, relative.word)
		if index < 0 {
			continue
		}

		date := util.FormatDate(now.AddDate(0, 0, relative.offset))
		return stripMatch(text, index, index+len(relative.word)), date, true
	}

	return text, "", false
}

// buildDate validates the day/month pair against the current year.
// time.Date normalises overflow (31 april becomes 1 may) so a changed
// day or month means the spoken date never existed.
func buildDate(year int, monthIndex int, day int) (string, bool) {
	if monthIndex < 0 || monthIndex > 11 {
		return "", false
	}

	month := time.Month(monthIndex + 1)
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	if date.Day() != day || date.Month() != month {
		return "", false
	}

	return util.FormatDate(date), true
}

func stripMatch(text string, start int, end int) string {
	return strings.TrimSpace(text[:start] + text[end:])
}
