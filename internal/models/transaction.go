package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"fjacquet/gnc-reports/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Transaction is an atomic ledger event. It owns its splits.
type Transaction struct {
	ID          string       `json:"id" yaml:"id"`
	DatePosted  time.Time    `json:"date_posted" yaml:"date_posted"`
	DateEntered time.Time    `json:"date_entered" yaml:"date_entered"`
	Description string       `json:"description" yaml:"description"`
	Currency    CommodityRef `json:"currency" yaml:"currency"`

	splits []*Split
}

// NewTransaction creates a transaction owning splits. Dates are truncated to whole seconds.
func NewTransaction(id string, posted, entered time.Time, description string, currency CommodityRef, splits ...*Split) *Transaction {
	return &Transaction{
		ID:          id,
		DatePosted:  posted.Truncate(time.Second),
		DateEntered: entered.Truncate(time.Second),
		Description: description,
		Currency:    currency,
		splits:      splits,
	}
}

// Splits returns the splits in document order.
func (t *Transaction) Splits() []*Split {
	return slices.Clone(t.splits)
}

// Imbalance returns the sum of the split values, zero for a balanced transaction.
// It is informational only: loading never rejects an unbalanced transaction.
func (t *Transaction) Imbalance() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.splits {
		total = total.Add(s.Value)
	}
	return total
}

// CompareByDatePosted orders transactions by posting timestamp.
func CompareByDatePosted(a, b *Transaction) int {
	return a.DatePosted.Compare(b.DatePosted)
}

func (t *Transaction) String() string {
	lines := []string{fmt.Sprintf("%s, %s", dateutils.ToISODate(t.DatePosted), t.Description)}
	for _, sp := range t.splits {
		name := sp.AccountID
		if sp.account != nil {
			name = sp.account.Name
		}
		lines = append(lines, fmt.Sprintf("  %s %s", name, sp.Value.String()))
	}
	return strings.Join(lines, "\n")
}
