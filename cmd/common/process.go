// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"time"

	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/fileutils"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/parser"
	"fjacquet/gnc-reports/internal/report"
	"fjacquet/gnc-reports/internal/validation"
)

// LoadBook parses the ledger at path with p. When validate is set the file is
// first probed with p.ValidateFormat.
func LoadBook(p parser.FullParser, path string, validate bool, log logging.Logger) (*models.Book, error) {
	p.SetLogger(log)

	if err := validation.IsValidLedgerPath(path); err != nil {
		return nil, err
	}

	if validate {
		log.Debug("Validating format...", logging.F(logging.FieldFile, path))
		valid, err := p.ValidateFormat(path)
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, fmt.Errorf("the file is not a valid GnuCash book: %s", path)
		}
	}

	book, err := p.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}
	return book, nil
}

// ResolveFormat returns the format given on the command line, else the
// configured one, else text.
func ResolveFormat(flag, configured string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return report.FormatText
}

// WriteReport renders r in format and writes it to outputFile, or to w when
// outputFile is empty.
func WriteReport(w io.Writer, gen *report.ReportGenerator, r report.Report, format, caption, outputFile string, log logging.Logger) error {
	data, err := gen.GenerateReport(r, format, caption)
	if err != nil {
		return err
	}

	if outputFile == "" {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	if err := fileutils.WriteFile(outputFile, data, 0600); err != nil {
		return err
	}
	log.Info("Report written",
		logging.F(logging.FieldOutputFile, outputFile),
		logging.F(logging.FieldFormat, format))
	return nil
}

// ParseDateFlag parses the value of the date flag name, returning fallback
// when the flag is empty.
func ParseDateFlag(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := dateutils.ParseDateString(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return t, nil
}

// ParseRange parses the --from and --to flags into an inclusive range. Missing
// bounds stay open.
func ParseRange(from, to string) (time.Time, time.Time, error) {
	start, err := ParseDateFlag("from", from, dateutils.MinDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDateFlag("to", to, dateutils.MaxDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from %s is after --to %s", dateutils.ToISODate(start), dateutils.ToISODate(end))
	}
	return start, end, nil
}
