// Package income implements the income statement command
package income

import (
	"fmt"
	"time"

	"fjacquet/gnc-reports/cmd/common"
	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/report"
	"fjacquet/gnc-reports/internal/validation"

	"github.com/spf13/cobra"
)

// Options selects the periods of the statement.
type Options struct {
	Year       int
	Month      int
	From       string
	To         string
	IncludeAll bool
}

var opts Options

// Cmd represents the income command
var Cmd = &cobra.Command{
	Use:   "income",
	Short: "Print an income statement",
	Long: `Print the income statement of a GnuCash book.

Without flags the statement has one column per month of the year of the last
transaction. --year selects another year, --month a single month of that year and
--from/--to an arbitrary inclusive date range. Accounts whose balances are all
zero are left out unless --all is given.

Example:
  gnc-reports income -i books.gnucash --year 2010
  gnc-reports income -i books.gnucash --from 2011-01-01 --to 2011-06-30 -f html`,
	Args: cobra.NoArgs,
	RunE: incomeFunc,
}

func init() {
	Cmd.Flags().IntVar(&opts.Year, "year", 0, "Year of the monthly statement (default: year of the last transaction)")
	Cmd.Flags().IntVar(&opts.Month, "month", 0, "Single month (1-12) of --year")
	Cmd.Flags().StringVar(&opts.From, "from", "", "Start date of a custom period")
	Cmd.Flags().StringVar(&opts.To, "to", "", "End date of a custom period")
	Cmd.Flags().BoolVar(&opts.IncludeAll, "all", false, "Include accounts without activity")
}

func incomeFunc(cmd *cobra.Command, args []string) error {
	book, err := root.LoadBook(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	o := opts
	o.IncludeAll = o.IncludeAll || root.GetConfig().Report.IncludeZero

	stm, caption, err := Build(book, o)
	if err != nil {
		return err
	}
	return root.Emit(cmd.OutOrStdout(), stm, caption, report.FormatText, report.FormatHTML, report.FormatJSON, report.FormatYAML)
}

// Build computes the statement selected by o and its caption.
func Build(book *models.Book, o Options) (*report.IncomeStatement, string, error) {
	if err := validation.IsValidYear(o.Year); err != nil {
		return nil, "", err
	}

	if o.From != "" || o.To != "" {
		if o.Month != 0 {
			return nil, "", fmt.Errorf("--month cannot be combined with --from/--to")
		}
		start, end, err := common.ParseRange(o.From, o.To)
		if err != nil {
			return nil, "", err
		}
		stm := report.NewPeriodIncomeStatement(book, start, end, o.IncludeAll)
		return stm, "Income Statement " + stm.Periods[0].Label(), nil
	}

	year := o.Year
	if year == 0 {
		year = time.Now().Year()
		if last, ok := book.LastTransaction(); ok {
			year = last.DatePosted.Year()
		}
	}

	if o.Month != 0 {
		if err := validation.IsValidMonth(o.Month); err != nil {
			return nil, "", err
		}
		p := dateutils.Month(year, time.Month(o.Month))
		stm := report.NewPeriodIncomeStatement(book, p.Start, p.End, o.IncludeAll)
		return stm, fmt.Sprintf("Income Statement %s %d", p.Label(), year), nil
	}

	return report.NewMonthlyIncomeStatement(book, year, o.IncludeAll), fmt.Sprintf("Income Statement %d", year), nil
}
