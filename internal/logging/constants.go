package logging

// Field names shared by every log entry of the application.
const (
	FieldFile          = "file_path"
	FieldParser        = "parser"
	FieldBookID        = "book_id"
	FieldAccount       = "account"
	FieldAccountID     = "account_id"
	FieldTransactionID = "transaction_id"
	FieldSplitID       = "split_id"
	FieldReport        = "report"
	FieldFormat        = "format"
	FieldPeriod        = "period"
	FieldYear          = "year"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)

// Log formats understood by NewLogrusAdapter.
const (
	FormatText = "text"
	FormatJSON = "json"
)
