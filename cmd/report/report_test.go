package report_test

import (
	"testing"

	"fjacquet/gnc-reports/cmd/report"

	"github.com/stretchr/testify/assert"
)

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", report.Cmd.Use)
	assert.Contains(t, report.Cmd.Long, "HTML")
	assert.NotNil(t, report.Cmd.RunE)
	assert.NotNil(t, report.Cmd.Flags().Lookup("all"))
}
