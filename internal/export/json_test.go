package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAuditDocumentShape(t *testing.T) {
	runID := uuid.New()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	b, err := BuildAuditDocument(testRecords(), runID, now)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))

	meta := doc["metadata"].(map[string]any)
	assert.Equal(t, runID.String(), meta["run_id"])
	assert.Equal(t, float64(2), meta["total_invoices"])
	assert.Equal(t, "2024-01-15T12:00:00Z", meta["processing_timestamp"])
	assert.NotEmpty(t, meta["tool_version"])

	invoices := doc["invoices"].([]any)
	require.Len(t, invoices, 2)

	first := invoices[0].(map[string]any)
	assert.Equal(t, "Acme Supplies Limited", first["vendor_name"])
	assert.Equal(t, float64(1250), first["grand_total"], "monetary values are JSON numbers")
	assert.Equal(t, "...", first["raw_ocr_text"])

	val := first["validation"].(map[string]any)
	assert.Equal(t, true, val["is_valid"])
	assert.Equal(t, float64(1), val["completeness_score"])

	// unset fields serialize as null, never fabricated values
	second := invoices[1].(map[string]any)
	assert.Nil(t, second["vendor_name"])
	assert.Nil(t, second["grand_total"])
	mf := second["validation"].(map[string]any)["missing_fields"].([]any)
	assert.Contains(t, mf, "invoice_number")
}

func TestAuditDocumentMatchesSchema(t *testing.T) {
	b, err := BuildAuditDocument(testRecords(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildAuditJSONSchema(), b))
}

func TestSchemaRejectsMalformedDocument(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildAuditJSONSchema(), []byte(`{"invoices": []}`))
	assert.Error(t, err, "missing metadata must fail validation")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.json")
	require.NoError(t, NewService(nil).WriteJSON(testRecords(), uuid.New(), time.Now(), path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	assert.NoError(t, json.Unmarshal(b, &doc))
}

func TestWriteJSONFailsOnUnwritablePath(t *testing.T) {
	err := NewService(nil).WriteJSON(testRecords(), uuid.New(), time.Now(),
		filepath.Join(t.TempDir(), "missing", "audit.json"))
	assert.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.xlsx")
	require.NoError(t, NewService(nil).WriteXLSX(testRecords(), path))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}
