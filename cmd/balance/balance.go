// Package balance implements the balance sheet command
package balance

import (
	"time"

	"fjacquet/gnc-reports/cmd/common"
	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/report"

	"github.com/spf13/cobra"
)

var endings []string

// Cmd represents the balance command
var Cmd = &cobra.Command{
	Use:   "balance",
	Short: "Print a balance sheet",
	Long: `Print the balance sheet of a GnuCash book with one column per period ending.

Without --ending the columns are December 31 of the last report.balance_years
years of the book, latest first.

Example:
  gnc-reports balance -i books.gnucash --ending 2011-12-31 --ending 2010-12-31`,
	Args: cobra.NoArgs,
	RunE: balanceFunc,
}

func init() {
	Cmd.Flags().StringArrayVar(&endings, "ending", nil, "Period ending date, repeatable; columns keep the given order")
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	book, err := root.LoadBook(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	bs, err := Build(book, endings, root.GetConfig().Report.BalanceYears)
	if err != nil {
		return err
	}
	return root.Emit(cmd.OutOrStdout(), bs, "Balance Sheet", report.FormatText, report.FormatHTML, report.FormatJSON, report.FormatYAML)
}

// Build computes the balance sheet at the given endings, or at the default
// year ends of book when none is given.
func Build(book *models.Book, endings []string, years int) (*report.BalanceSheet, error) {
	if len(endings) == 0 {
		return report.NewBalanceSheet(book, report.DefaultEndings(book, years)), nil
	}
	dates := make([]time.Time, 0, len(endings))
	for _, e := range endings {
		d, err := common.ParseDateFlag("ending", e, time.Time{})
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return report.NewBalanceSheet(book, dates), nil
}
