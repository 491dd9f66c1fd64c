// Package batch handles batch processing of GnuCash books
package batch

import (
	"fmt"
	"io"

	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/internal/batch"
	"fjacquet/gnc-reports/internal/report"

	"github.com/spf13/cobra"
)

var (
	inputDir   string
	outputDir  string
	includeAll bool
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch render the reports of a directory of books",
	Long: `Batch render the full report of every GnuCash book found in an input directory.

Files ending in .gnucash, .gz or .xml are parsed concurrently (batch.workers in
the configuration) and each report is written to the output directory under the
book's file name. A book that fails does not stop the others; the command fails
once all books are processed if any of them failed.

Example:
  gnc-reports batch --input-dir books/ --output-dir reports/ -f html`,
	Args: cobra.NoArgs,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory holding the ledger files (default: --input)")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory receiving the reports (default: --output)")
	Cmd.Flags().BoolVar(&includeAll, "all", false, "Include accounts without activity in the income statements")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	in := firstNonEmpty(inputDir, root.SharedFlags.Input)
	out := firstNonEmpty(outputDir, root.SharedFlags.Output)
	if in == "" || out == "" {
		return fmt.Errorf("input and output directories must be specified")
	}

	logger := root.GetLogrusAdapter()
	ctn := root.GetContainer()
	cfg := root.GetConfig()

	format := root.SharedFlags.Format
	if format == "" {
		format = report.FormatHTML
	}

	runner := batch.NewRunner(ctn.GetBookParser(), ctn.GetReportGenerator(), logger)
	results, err := runner.Run(cmd.Context(), in, out, batch.Options{
		Format:       format,
		BalanceYears: cfg.Report.BalanceYears,
		IncludeZero:  includeAll || cfg.Report.IncludeZero,
		Workers:      cfg.Batch.Workers,
	})
	if err != nil {
		return err
	}
	return Summarize(cmd.OutOrStdout(), results)
}

// Summarize prints one line per processed book and fails when any book failed.
func Summarize(w io.Writer, results []batch.Result) error {
	for _, res := range results {
		if res.Err != nil {
			_, _ = fmt.Fprintf(w, "FAILED %s: %v\n", res.Input, res.Err)
			continue
		}
		_, _ = fmt.Fprintf(w, "OK     %s -> %s (%d accounts, %d transactions)\n",
			res.Input, res.Output, res.Accounts, res.Transactions)
	}
	if failed := batch.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d books failed", len(failed), len(results))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
