package extract

import (
	"regexp"
	"time"
)

// dateFormat pairs a locating regex with the time layouts that can parse its
// match. The list order is the documented disambiguation heuristic: slash and
// dot separated numerics read month-first, dash separated numerics read
// day-first, and textual months follow. First successful format wins.
type dateFormat struct {
	re      *regexp.Regexp
	layouts []string
}

var dateFormats = []dateFormat{
	// MM/DD/YYYY and MM.DD.YYYY
	{
		re:      regexp.MustCompile(`\b(\d{1,2}[/.]\d{1,2}[/.]\d{4})\b`),
		layouts: []string{"1/2/2006", "1.2.2006"},
	},
	// DD-MM-YYYY
	{
		re:      regexp.MustCompile(`\b(\d{1,2}-\d{1,2}-\d{4})\b`),
		layouts: []string{"2-1-2006"},
	},
	// Month DD, YYYY
	{
		re:      regexp.MustCompile(`\b([A-Za-z]{3,9}\.?\s+\d{1,2},?\s+\d{4})\b`),
		layouts: []string{"January 2, 2006", "January 2 2006", "Jan 2, 2006", "Jan 2 2006"},
	},
	// DD Month YYYY
	{
		re:      regexp.MustCompile(`\b(\d{1,2}\s+[A-Za-z]{3,9}\.?\s+\d{4})\b`),
		layouts: []string{"2 January 2006", "2 Jan 2006"},
	},
}

// extractDate finds the first date the format list can both locate and
// parse, normalized to YYYY-MM-DD.
func extractDate(text string) (string, bool) {
	for _, df := range dateFormats {
		for _, raw := range df.re.FindAllString(text, -1) {
			for _, layout := range df.layouts {
				if t, err := time.Parse(layout, raw); err == nil {
					return t.Format("2006-01-02"), true
				}
			}
		}
	}
	return "", false
}
