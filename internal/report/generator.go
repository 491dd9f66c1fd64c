package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/gnc-reports/internal/common"
	"fjacquet/gnc-reports/internal/logging"

	"gopkg.in/yaml.v3"
)

// Output formats understood by ReportGenerator.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Formats lists every output format in display order.
var Formats = []string{FormatText, FormatHTML, FormatJSON, FormatYAML, FormatCSV}

// Report is implemented by every computed report.
type Report interface {
	Text() string
	HTML(caption string) string
	Document() any
}

// csvReport is implemented by the reports that have a tabular CSV form.
type csvReport interface {
	CSVRows() []LedgerRowDocument
}

// ReportGenerator renders reports in the supported output formats.
type ReportGenerator struct {
	logger    logging.Logger
	delimiter rune
}

// NewReportGenerator creates a generator writing CSV with the default delimiter.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{
		logger:    logger.WithField("component", "ReportGenerator"),
		delimiter: common.DefaultDelimiter,
	}
}

// SetDelimiter sets the CSV field separator.
func (g *ReportGenerator) SetDelimiter(delim rune) {
	g.delimiter = delim
}

// Delimiter returns the CSV field separator.
func (g *ReportGenerator) Delimiter() rune {
	return g.delimiter
}

// GenerateReport renders report in format. caption titles the HTML table and is
// ignored by the other formats. CSV is only available for account registers.
func (g *ReportGenerator) GenerateReport(report Report, format, caption string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return []byte(report.Text() + "\n"), nil
	case FormatHTML:
		return []byte(report.HTML(caption) + "\n"), nil
	case FormatJSON:
		return g.generateJSONReport(report)
	case FormatYAML:
		return g.generateYAMLReport(report)
	case FormatCSV:
		return g.generateCSVReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(report Report) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(report.Document(), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(jsonReport, '\n'), nil
}

func (g *ReportGenerator) generateYAMLReport(report Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report.Document()); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush YAML report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateCSVReport(report Report) ([]byte, error) {
	tabular, ok := report.(csvReport)
	if !ok {
		return nil, fmt.Errorf("format %s is only supported for account registers", FormatCSV)
	}
	var buf bytes.Buffer
	if err := common.WriteCSV(&buf, tabular.CSVRows(), g.delimiter); err != nil {
		g.logger.WithError(err).Error("Failed to write CSV report")
		return nil, err
	}
	return buf.Bytes(), nil
}
