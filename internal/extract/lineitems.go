package extract

import (
	"regexp"
	"strings"

	"github.com/Khanna-Aman/tesseract-invoice-ocr/internal/entity"
)

// A line item row must carry all four columns on a single line:
// description, quantity, unit price, amount. Rows missing a column are
// dropped entirely rather than partially captured.
var reLineItem = regexp.MustCompile(
	`^\s*(\S.*?\S)\s+(\d+(?:\.\d+)?)\s+[$£€₹¥]?\s*([\d,]+\.\d{2})\s+[$£€₹¥]?\s*([\d,]+\.\d{2})\s*$`)

// extractLineItems scans the text line by line for the tabular item pattern.
func extractLineItems(text string) []entity.LineItem {
	var items []entity.LineItem
	for _, line := range strings.Split(text, "\n") {
		m := reLineItem.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, okQ := parseAmount(m[2])
		unit, okU := parseAmount(m[3])
		amount, okA := parseAmount(m[4])
		if !okQ || !okU || !okA {
			continue
		}
		desc := strings.TrimSpace(m[1])
		items = append(items, entity.LineItem{
			Description: entity.StringPtr(desc),
			Quantity:    entity.DecimalPtr(qty),
			UnitPrice:   entity.DecimalPtr(unit),
			Amount:      entity.DecimalPtr(amount),
		})
	}
	return items
}
