// Package validate implements the structure probe command
package validate

import (
	"fmt"
	"io"

	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/internal/gncparser"
	"fjacquet/gnc-reports/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the structure of a GnuCash file",
	Long: `Probe a GnuCash file with XPath queries without building the book and print
what was found. The command fails unless the file holds exactly one book with
exactly one root account.

Example:
  gnc-reports validate -i books.gnucash`,
	Args: cobra.NoArgs,
	RunE: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) error {
	path := root.SharedFlags.Input
	if err := validation.IsValidLedgerPath(path); err != nil {
		return err
	}
	probe, err := gncparser.ProbeFile(path)
	if err != nil {
		return err
	}
	return Print(cmd.OutOrStdout(), path, probe)
}

// Print writes the probe results and fails when the structure is invalid.
func Print(w io.Writer, path string, probe *gncparser.Probe) error {
	_, err := fmt.Fprintf(w, "File: %s\nBook: %s\nCommodity: %s\nAccounts: %d (root accounts: %d)\nTransactions: %d\nSplits: %d\n",
		path, probe.BookID, probe.Commodity, probe.AccountCount, probe.RootAccountCount, probe.TransactionCount, probe.SplitCount)
	if err != nil {
		return fmt.Errorf("failed to write probe: %w", err)
	}
	if !probe.Valid() {
		return fmt.Errorf("%s is not a valid GnuCash book: found %d books and %d root accounts",
			path, probe.BookCount, probe.RootAccountCount)
	}
	return nil
}
