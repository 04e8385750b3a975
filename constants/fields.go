package constants

// Field names as they appear in exports and in missing_fields lists.
const (
	FieldVendorName    = "vendor_name"
	FieldInvoiceNumber = "invoice_number"
	FieldInvoiceDate   = "invoice_date"
	FieldCurrency      = "currency"
	FieldGrandTotal    = "grand_total"
)

// RequiredFields are the fields counted by the completeness score, in the
// order they are reported when missing.
var RequiredFields = []string{
	FieldVendorName,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldGrandTotal,
}

// FileStatus is the per-file outcome reported in the run summary.
type FileStatus string

const (
	FileStatusSuccess FileStatus = "SUCCESS" // OCR + extraction completed
	FileStatusPartial FileStatus = "PARTIAL" // record emitted with degraded/empty text
	FileStatusSkipped FileStatus = "SKIPPED" // file unreadable, no record emitted
)
