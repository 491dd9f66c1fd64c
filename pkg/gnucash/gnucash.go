// Package gnucash provides functions to render GnuCash books as reports without
// going through the command line.
package gnucash

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fjacquet/gnc-reports/internal/batch"
	"fjacquet/gnc-reports/internal/config"
	"fjacquet/gnc-reports/internal/gncparser"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/parsererror"
	"fjacquet/gnc-reports/internal/report"
)

var logger = logging.NewLogrusAdapter("warn", "text")

// ConvertBook writes the full report of the GnuCash book ledgerFile to outFile
// in format (html, text, json or yaml).
func ConvertBook(ledgerFile, outFile, format string) error {
	cfg := config.DefaultConfig()

	book, err := gncparser.NewParser(logger).ParseFile(ledgerFile)
	if err != nil {
		return fmt.Errorf("error reading ledger file: %w", err)
	}

	full := report.NewBookReport(book, cfg.Report.BalanceYears, cfg.Report.IncludeZero)
	data, err := report.NewReportGenerator(logger).GenerateReport(full, format, book.ID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outFile, data, 0600); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	return nil
}

// ConvertBookToHTML writes the full HTML report of ledgerFile to htmlFile.
func ConvertBookToHTML(ledgerFile, htmlFile string) error {
	return ConvertBook(ledgerFile, htmlFile, report.FormatHTML)
}

// BatchConvert renders the HTML report of every ledger file in inputDir into
// outputDir and returns how many were written. Every file is attempted; the
// error joins the failures.
func BatchConvert(inputDir, outputDir string) (int, error) {
	cfg := config.DefaultConfig()
	runner := batch.NewRunner(gncparser.NewParser(logger), report.NewReportGenerator(logger), logger)

	results, err := runner.Run(context.Background(), inputDir, outputDir, batch.Options{
		Format:       report.FormatHTML,
		BalanceYears: cfg.Report.BalanceYears,
		IncludeZero:  cfg.Report.IncludeZero,
		Workers:      cfg.Batch.Workers,
	})
	if err != nil {
		return 0, err
	}

	var errs []error
	for _, res := range batch.Failed(results) {
		errs = append(errs, fmt.Errorf("error converting %s: %w", res.Input, res.Err))
	}
	return len(results) - len(errs), errors.Join(errs...)
}

// ValidateBook reports whether path holds exactly one GnuCash book with one root
// account. Files that are not XML are reported as invalid without error.
func ValidateBook(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return false, fmt.Errorf("error reading ledger file: %w", err)
	}
	probe, err := gncparser.ProbeFile(path)
	if err != nil {
		var vErr *parsererror.ValidationError
		if errors.As(err, &vErr) {
			return false, nil
		}
		return false, err
	}
	return probe.Valid(), nil
}
