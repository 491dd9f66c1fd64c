package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	fields := []string{
		FieldFile, FieldParser, FieldBookID, FieldAccount, FieldAccountID,
		FieldTransactionID, FieldSplitID, FieldReport, FieldFormat, FieldPeriod,
		FieldYear, FieldOperation, FieldError, FieldDuration, FieldCount,
		FieldDelimiter, FieldInputFile, FieldOutputFile,
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		assert.NotEmpty(t, f)
		assert.False(t, seen[f], "duplicate field name %q", f)
		seen[f] = true
	}
}

func TestF(t *testing.T) {
	assert.Equal(t, Field{Key: FieldCount, Value: 3}, F(FieldCount, 3))
}
