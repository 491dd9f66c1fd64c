// Package accounts implements the account tree command
package accounts

import (
	"fmt"
	"io"

	"fjacquet/gnc-reports/cmd/root"
	"fjacquet/gnc-reports/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts [NAME]",
	Short: "Print the account tree",
	Long: `Print the book summary and the account tree, or the subtree of the account NAME.

Example:
  gnc-reports accounts -i books.gnucash Expenses`,
	Args: cobra.MaximumNArgs(1),
	RunE: accountsFunc,
}

func accountsFunc(cmd *cobra.Command, args []string) error {
	book, err := root.LoadBook(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	return Print(cmd.OutOrStdout(), book, name)
}

// Print writes the summary of book and the tree rooted at the account named name,
// the whole tree when name is empty.
func Print(w io.Writer, book *models.Book, name string) error {
	tree, ok := book.AccountTree(name)
	if !ok {
		return fmt.Errorf("account '%s' not found", name)
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", book.Summary(), tree); err != nil {
		return fmt.Errorf("failed to write account tree: %w", err)
	}
	return nil
}
