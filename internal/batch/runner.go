// Package batch renders the full report of every GnuCash book in a directory.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/gnc-reports/internal/fileutils"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/parser"
	"fjacquet/gnc-reports/internal/report"
	"fjacquet/gnc-reports/internal/validation"

	"golang.org/x/sync/errgroup"
)

// Formats lists the output formats available for book reports.
var Formats = []string{report.FormatHTML, report.FormatText, report.FormatJSON, report.FormatYAML}

var extensions = map[string]string{
	report.FormatHTML: ".html",
	report.FormatText: ".txt",
	report.FormatJSON: ".json",
	report.FormatYAML: ".yaml",
}

// Options controls a batch run.
type Options struct {
	Format       string
	BalanceYears int
	IncludeZero  bool
	Workers      int
}

// Result describes the outcome for one ledger file.
type Result struct {
	Input        string
	Output       string
	Accounts     int
	Transactions int
	Err          error
}

// Runner parses ledgers and writes their reports. Each book is parsed and
// rendered by its own goroutine; books are never shared between goroutines.
type Runner struct {
	parser    parser.FullParser
	generator *report.ReportGenerator
	logger    logging.Logger
}

// NewRunner creates a Runner.
func NewRunner(p parser.FullParser, generator *report.ReportGenerator, logger logging.Logger) *Runner {
	return &Runner{parser: p, generator: generator, logger: logger}
}

// Run renders every ledger file of inputDir into outputDir. A file that fails to
// parse or render is reported in its Result and does not stop the others. The
// results follow the order of the input files.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string, opts Options) ([]Result, error) {
	if opts.Format == "" {
		opts.Format = report.FormatHTML
	}
	if err := validation.IsValidOutputFormat(opts.Format, Formats...); err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	files, err := fileutils.ListLedgerFiles(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	if len(files) == 0 {
		r.logger.Warn("No ledger files found in input directory", logging.F(logging.FieldInputFile, inputDir))
		return nil, nil
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, err
	}

	r.logger.Info("Found ledger files for processing", logging.F(logging.FieldCount, len(files)))

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Input: file, Err: err}
				return err
			}
			results[i] = r.renderFile(file, outputDir, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) renderFile(file, outputDir string, opts Options) Result {
	start := time.Now()
	res := Result{Input: file}
	logger := r.logger.WithFields(logging.F(logging.FieldInputFile, file))

	book, err := r.parser.ParseFile(file)
	if err != nil {
		logger.WithError(err).Error("Failed to parse ledger")
		res.Err = err
		return res
	}
	res.Accounts = len(book.Accounts())
	res.Transactions = len(book.Transactions())

	title := book.ID
	if title == "" {
		title = filepath.Base(file)
	}
	full := report.NewBookReport(book, opts.BalanceYears, opts.IncludeZero)
	data, err := r.generator.GenerateReport(full, opts.Format, title)
	if err != nil {
		logger.WithError(err).Error("Failed to render report")
		res.Err = err
		return res
	}

	res.Output = filepath.Join(outputDir, fileutils.OutputName(file, extensions[opts.Format]))
	if err := fileutils.WriteFile(res.Output, data, 0600); err != nil {
		logger.WithError(err).Error("Failed to write report")
		res.Err = err
		return res
	}

	logger.Info("Report written",
		logging.F(logging.FieldOutputFile, res.Output),
		logging.F(logging.FieldDuration, time.Since(start).String()))
	return res
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}
