package models

import (
	"time"

	"fjacquet/gnc-reports/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Split is one leg of a transaction: an amount posted to one account.
type Split struct {
	ID              string          `json:"id" yaml:"id"`
	Value           decimal.Decimal `json:"value" yaml:"value"`
	Quantity        decimal.Decimal `json:"quantity" yaml:"quantity"`
	AccountID       string          `json:"account" yaml:"account"`
	Memo            string          `json:"memo,omitempty" yaml:"memo,omitempty"`
	ReconciledState string          `json:"reconciled_state,omitempty" yaml:"reconciled_state,omitempty"`

	// Back references, assigned by Book when the owning transaction is added.
	account     *Account
	transaction *Transaction
}

// NewSplit creates an unlinked split.
func NewSplit(id string, value, quantity decimal.Decimal, accountID string) *Split {
	return &Split{
		ID:        id,
		Value:     value,
		Quantity:  quantity,
		AccountID: accountID,
	}
}

// Account returns the account the split is posted to, nil before linking.
func (s *Split) Account() *Account {
	return s.account
}

// Transaction returns the owning transaction, nil before linking.
func (s *Split) Transaction() *Transaction {
	return s.transaction
}

// Date returns the posting date of the owning transaction without time of day.
// An unlinked split has the zero date.
func (s *Split) Date() time.Time {
	if s.transaction == nil {
		return time.Time{}
	}
	return dateutils.DateOf(s.transaction.DatePosted)
}

// CompareByDate orders splits by the posting date of their transactions.
func CompareByDate(a, b *Split) int {
	return dateutils.CompareDates(a.Date(), b.Date())
}
