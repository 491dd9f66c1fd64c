// Package report implements the full book report command
package report

import (
	"path/filepath"

	"fjacquet/gnc-reports/cmd/common"
	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/internal/batch"
	"fjacquet/gnc-reports/internal/report"
	"fjacquet/gnc-reports/internal/validation"

	"github.com/spf13/cobra"
)

var includeAll bool

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Write the full report of a book",
	Long: `Write the balance sheet and one monthly income statement per year of the book,
latest year first. The default format is a complete HTML page.

Example:
  gnc-reports report -i books.gnucash -o books.html`,
	Args: cobra.NoArgs,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().BoolVar(&includeAll, "all", false, "Include accounts without activity in the income statements")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	book, err := root.LoadBook(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	cfg := root.GetConfig()
	full := report.NewBookReport(book, cfg.Report.BalanceYears, includeAll || cfg.Report.IncludeZero)

	format := common.ResolveFormat(root.SharedFlags.Format, report.FormatHTML)
	if err := validation.IsValidOutputFormat(format, batch.Formats...); err != nil {
		return err
	}
	title := book.ID
	if title == "" {
		title = filepath.Base(root.SharedFlags.Input)
	}
	return common.WriteReport(cmd.OutOrStdout(), root.GetContainer().GetReportGenerator(), full, format, title,
		root.SharedFlags.Output, root.GetLogrusAdapter())
}
