package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)
}

func TestExtractEnglishDates(t *testing.T) {
	extractor := DateHintExtractor{Now: fixedNow}

	tests := []struct {
		name         string
		text         string
		expectedText string
		expectedDate string
	}{
		{"plain", "mumbai on 15 november", "mumbai", "2025-11-15"},
		{"ordinal suffix", "mumbai on 17th november", "mumbai", "2025-11-17"},
		{"first", "pune on 1st june", "pune", "2025-06-01"},
		{"second", "pune on 2nd june", "pune", "2025-06-02"},
		{"third", "pune on 3rd june", "pune", "2025-06-03"},
		{"mixed case month", "agra on 5 JANUARY", "agra", "2025-01-05"},
		{"surrounding text", "going to goa on 9 may with family", "going to goa with family", "2025-05-09"},
		{"no date", "mumbai central", "mumbai central", ""},
		{"unknown month", "mumbai on 15 smarch", "mumbai on 15 smarch", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleaned, date := extractor.Extract(tc.text)

			assert.Equal(t, tc.expectedText, cleaned)
			assert.Equal(t, tc.expectedDate, date)
		})
	}
}

func TestExtractEnglishAllMonths(t *testing.T) {
	extractor := DateHintExtractor{Now: fixedNow}

	for i, month := range englishMonths {
		text := fmt.Sprintf("jaipur on 15 %s", month)

		cleaned, date := extractor.Extract(text)

		assert.Equal(t, "jaipur", cleaned)
		assert.Equal(t, fmt.Sprintf("2025-%02d-15", i+1), date)
	}
}

func TestExtractEnglishInvalidDay(t *testing.T) {
	extractor := DateHintExtractor{Now: fixedNow}

	// June only has 30 days so the phrase is left untouched
	cleaned, date := extractor.Extract("goa on 31 june")

	assert.Equal(t, "goa on 31 june", cleaned)
	assert.Equal(t, "", date)
}

func TestExtractHindiDates(t *testing.T) {
	extractor := DateHintExtractor{Now: fixedNow}

	tests := []struct {
		name         string
		text         string
		expectedText string
		expectedDate string
	}{
		{"plain", "जयपुर 15 जनवरी", "जयपुर", "2025-01-15"},
		{"with tareekh", "जयपुर 15 तारीख जनवरी", "जयपुर", "2025-01-15"},
		{"with ko", "दिल्ली 17 को नवंबर", "दिल्ली", "2025-11-17"},
		{"trailing ko kept", "दिल्ली 17 नवंबर को", "दिल्ली को", "2025-11-17"},
		{"unknown month word", "दिल्ली 17 रेलगाड़ी", "दिल्ली 17 रेलगाड़ी", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleaned, date := extractor.Extract(tc.text)

			assert.Equal(t, tc.expectedText, cleaned)
			assert.Equal(t, tc.expectedDate, date)
		})
	}
}

func TestExtractHindiAllMonths(t *testing.T) {
	extractor := DateHintExtractor{Now: fixedNow}

	for monthName, monthIndex := range hindiMonths {
		for _, day := range []int{1, 14, 28} {
			text := fmt.Sprintf("आगरा %d %s", day, monthName)

			cleaned, date := extractor.Extract(text)

			assert.Equal(t, "आगरा", cleaned)
			assert.Equal(t, fmt.Sprintf("2025-%02d-%02d", monthIndex+1, day), date)
		}
	}
}

func TestExtractHindiInvalidDay(t *testing.T) {
	extractor := DateHintExtractor{Now: fixedNow}

	// अप्रैल (april) has 30 days
	cleaned, date := extractor.Extract("आगरा 31 अप्रैल")

	assert.Equal(t, "आगरा 31 अप्रैल", cleaned)
	assert.Equal(t, "", date)
}

func TestExtractRelativeDates(t *testing.T) {
	extractor := DateHintExtractor{Now: fixedNow}

	tests := []struct {
		name         string
		text         string
		expectedText string
		expectedDate string
	}{
		{"today", "mumbai today", "mumbai", "2025-03-10"},
		{"tomorrow", "mumbai tomorrow", "mumbai", "2025-03-11"},
		{"day after tomorrow", "mumbai day after tomorrow", "mumbai", "2025-03-12"},
		{"hindi aaj", "मुंबई आज", "मुंबई", "2025-03-10"},
		{"hindi kal", "मुंबई कल", "मुंबई", "2025-03-11"},
		{"hindi parson", "मुंबई परसों", "मुंबई", "2025-03-12"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleaned, date := extractor.Extract(tc.text)

			assert.Equal(t, tc.expectedText, cleaned)
			assert.Equal(t, tc.expectedDate, date)
		})
	}
}
