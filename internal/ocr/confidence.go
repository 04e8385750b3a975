package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish = regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b|\b20\d{2}\b`)
	reCurrish = regexp.MustCompile(`\b(usd|eur|gbp|cad|aud|inr|jpy)\b|[$£€]`)
	reAmtish  = regexp.MustCompile(`\b\d{1,3}(,\d{3})*\.\d{2}\b|\b\d+\.\d{2}\b`)
)

// heuristicConfidence scores decoded text by whether it looks like an
// invoice at all: date-ish, currency-ish and amount-ish tokens each add a
// little, as does having enough content to parse.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reDateish.MatchString(txtL) {
		score += 0.2
	}
	if reCurrish.MatchString(txtL) {
		score += 0.15
	}
	if reAmtish.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
