package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLineItems(t *testing.T) {
	text := `Description Qty Price Amount
Widget Alpha 2 10.00 20.00
Consulting retainer 1 1,500.00 1,500.00
`
	items := extractLineItems(text)
	require.Len(t, items, 2)

	assert.Equal(t, "Widget Alpha", *items[0].Description)
	assert.Equal(t, "2", items[0].Quantity.String())
	assert.Equal(t, "10.00", items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "20.00", items[0].Amount.StringFixed(2))

	assert.Equal(t, "Consulting retainer", *items[1].Description)
	assert.Equal(t, "1500.00", items[1].UnitPrice.StringFixed(2))
}

// A row missing any column is dropped entirely rather than partially
// captured. Known limitation of the single-line tabular pattern.
func TestLineItemMissingColumnIsDropped(t *testing.T) {
	text := `Widget Alpha 2 10.00 20.00
Gadget Beta 15.00
Shipping 1 5.00
`
	items := extractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget Alpha", *items[0].Description)
}

func TestLineItemsWithCurrencySymbols(t *testing.T) {
	items := extractLineItems("Widget Alpha 2 $10.00 $20.00")
	require.Len(t, items, 1)
	assert.Equal(t, "20.00", items[0].Amount.StringFixed(2))
}

func TestLineItemsEmptyText(t *testing.T) {
	assert.Empty(t, extractLineItems(""))
}
