package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildAuditJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// audit document, as a generic map. The exporter validates the marshaled
// document against it before anything touches disk, so a malformed export is
// a bug surfaced at run time rather than a corrupt artifact.
func BuildAuditJSONSchema() map[string]any {
	nullableString := map[string]any{"type": []string{"string", "null"}}
	nullableNumber := map[string]any{"type": []string{"number", "null"}}

	lineItem := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"description": nullableString,
			"quantity":    nullableNumber,
			"unit_price":  nullableNumber,
			"amount":      nullableNumber,
		},
	}

	validation := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"completeness_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"is_valid":           map[string]any{"type": "boolean"},
			"missing_fields":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{"completeness_score", "is_valid", "missing_fields"},
	}

	invoice := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"invoice_id":     map[string]any{"type": "integer", "minimum": 1},
			"file_name":      map[string]any{"type": "string"},
			"vendor_name":    nullableString,
			"invoice_number": nullableString,
			"invoice_date":   map[string]any{"type": []string{"string", "null"}, "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"currency":       map[string]any{"type": []string{"string", "null"}, "minLength": 3, "maxLength": 3},
			"grand_total":    nullableNumber,
			"line_items":     map[string]any{"type": "array", "items": lineItem},
			"validation":     validation,
			"raw_ocr_text":   map[string]any{"type": "string"},
		},
		"required": []string{"invoice_id", "file_name", "line_items", "validation", "raw_ocr_text"},
	}

	metadata := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"run_id":               map[string]any{"type": "string"},
			"total_invoices":       map[string]any{"type": "integer", "minimum": 0},
			"processing_timestamp": map[string]any{"type": "string"},
			"tool_version":         map[string]any{"type": "string"},
		},
		"required": []string{"run_id", "total_invoices", "processing_timestamp", "tool_version"},
	}

	return map[string]any{
		"type":       "object",
		"properties": map[string]any{"metadata": metadata, "invoices": map[string]any{"type": "array", "items": invoice}},
		"required":   []string{"metadata", "invoices"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
