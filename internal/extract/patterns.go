package extract

import (
	"regexp"
	"strings"
)

// patternFn is one extraction alternative: it either recovers a raw string
// value from the text or reports no match. Per field the alternatives run in
// a fixed order and the first hit wins, scanning the text top to bottom.
type patternFn func(text string) (string, bool)

func firstMatch(text string, fns []patternFn) (string, bool) {
	for _, fn := range fns {
		if v, ok := fn(text); ok {
			return v, true
		}
	}
	return "", false
}

// regexGroup builds a patternFn returning the first capture group of re.
func regexGroup(re *regexp.Regexp) patternFn {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}
}

var (
	// vendor patterns stay on a single line; \s would let a match swallow
	// whole paragraphs across newlines
	reVendorSuffix = regexp.MustCompile(`(?i)([A-Z][A-Za-z &.]+(?:LIMITED|LTD|COMPANY|CORP|INC|LLC))\b`)
	reVendorCaps   = regexp.MustCompile(`([A-Z][A-Za-z &.]{10,50})`)
	reDigitsOnly   = regexp.MustCompile(`^[\d\s\-.,/]+$`)

	reInvHeader  = regexp.MustCompile(`(?im)INVOICE(?:[ \t]+NUMBER|[ \t]+NO\.?)?[ \t]*[#:]*[ \t]*([A-Z0-9-]{3,20})`)
	reInvShort   = regexp.MustCompile(`(?im)\bINV[ \t]*[#:]+[ \t]*([A-Z0-9-]{3,20})`)
	reInvNo      = regexp.MustCompile(`(?im)\bNO[ \t]*[#:.]+[ \t]*([A-Z0-9-]{3,20})`)
	reInvDashed  = regexp.MustCompile(`(?m)(?:^|\s)([A-Z]{2,4}-\d{4,8})(?:\s|$)`)
	reBareNumber = regexp.MustCompile(`^\d{8}$`)

	// money amount with optional symbol and thousands separators
	moneyGroup = `[$£€₹¥]?\s*([\d,]+(?:\.\d{1,2})?)`

	reTotalDue   = regexp.MustCompile(`(?i)TOTAL\s+DUE\s*:?\s*` + moneyGroup)
	reGrandTotal = regexp.MustCompile(`(?i)GRAND\s*TOTAL\s*:?\s*` + moneyGroup)
	reAmountDue  = regexp.MustCompile(`(?i)AMOUNT\s+DUE\s*:?\s*` + moneyGroup)
	reTotal      = regexp.MustCompile(`(?i)\bTOTAL\s*:?\s*` + moneyGroup)
)

// vendorPatterns look for a company-suffixed name first, then any long
// capitalized run, then fall back to the first substantial line of the
// document.
var vendorPatterns = []patternFn{
	regexGroup(reVendorSuffix),
	regexGroup(reVendorCaps),
	firstSubstantialLine,
}

// invoiceNumberPatterns, in precedence order. Candidates that are bare
// 8-digit runs are rejected since those are usually dates or phone fragments.
var invoiceNumberPatterns = []patternFn{
	filtered(reInvHeader),
	filtered(reInvShort),
	filtered(reInvNo),
	filtered(reInvDashed),
}

// grandTotalPatterns: the more specific labels outrank the generic TOTAL.
var grandTotalPatterns = []patternFn{
	regexGroup(reTotalDue),
	regexGroup(reGrandTotal),
	regexGroup(reAmountDue),
	regexGroup(reTotal),
}

// filtered wraps re with the invoice-number sanity filter, walking every
// match of the pattern until one passes.
func filtered(re *regexp.Regexp) patternFn {
	return func(text string) (string, bool) {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v := strings.TrimSpace(m[1])
			if len(v) >= 3 && len(v) <= 20 && !reBareNumber.MatchString(v) {
				return v, true
			}
		}
		return "", false
	}
}

func firstSubstantialLine(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	n := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n++
		if n > 5 {
			break
		}
		if len(line) > 10 && !reDigitsOnly.MatchString(line) {
			return line, true
		}
	}
	return "", false
}
