// Package register implements the account register command
package register

import (
	"fmt"

	"fjacquet/gnc-reports/cmd/common"
	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/report"

	"github.com/spf13/cobra"
)

var from, to string

// Cmd represents the register command
var Cmd = &cobra.Command{
	Use:   "register ACCOUNT",
	Short: "Print the register of an account",
	Long: `Print the splits of an account in posting date order with a running balance.

The running balance is the raw sum of split values. ACCOUNT is matched against
account names; the first account in file order wins.

Example:
  gnc-reports register -i books.gnucash Checking --from 2011-01-01 -f csv`,
	Args: cobra.ExactArgs(1),
	RunE: registerFunc,
}

func init() {
	Cmd.Flags().StringVar(&from, "from", "", "First posting date included")
	Cmd.Flags().StringVar(&to, "to", "", "Last posting date included")
}

func registerFunc(cmd *cobra.Command, args []string) error {
	book, err := root.LoadBook(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	l, err := Build(book, args[0], from, to)
	if err != nil {
		return err
	}
	return root.Emit(cmd.OutOrStdout(), l, l.Account.Name)
}

// Build computes the register of the account named name.
func Build(book *models.Book, name, from, to string) (*report.AccountLedger, error) {
	start, end, err := common.ParseRange(from, to)
	if err != nil {
		return nil, err
	}
	l, ok := report.NewAccountLedgerByName(book, name, start, end)
	if !ok {
		return nil, fmt.Errorf("account '%s' not found", name)
	}
	return l, nil
}
