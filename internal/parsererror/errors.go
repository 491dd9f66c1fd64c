package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an error where the input does not conform
// to the expected ledger structure.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("invalid format: %s. Expected: %s", e.Msg, e.ExpectedFormat)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents an error where a required element could not be
// extracted, even though the document itself is well formed.
type DataExtractionError struct {
	Entity    string
	ID        string
	FieldName string
	Reason    string
}

func (e *DataExtractionError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("data extraction failed for %s '%s' field '%s': %s",
			e.Entity, e.ID, e.FieldName, e.Reason)
	}
	return fmt.Sprintf("data extraction failed for %s field '%s': %s",
		e.Entity, e.FieldName, e.Reason)
}

// ReferenceError represents a broken reference between ledger records: an unknown
// parent account, a split posted to an unknown account or a duplicated id.
type ReferenceError struct {
	Entity string
	ID     string
	Field  string
	Ref    string
	Reason string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s '%s': %s '%s' %s", e.Entity, e.ID, e.Field, e.Ref, e.Reason)
}
