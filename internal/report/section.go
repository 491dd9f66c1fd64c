// Package report computes the financial reports of a GnuCash book: account
// registers, balance sheets and income statements, and renders them as text,
// HTML, JSON, YAML or CSV.
package report

import (
	"strings"

	"fjacquet/gnc-reports/internal/currencyutils"
	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/models"

	"github.com/shopspring/decimal"
)

// Row is one account line of a report section with one balance per column.
type Row struct {
	Account  *models.Account
	Balances []decimal.Decimal
}

// Sum adds the balances of every column.
func (r Row) Sum() decimal.Decimal {
	return decimal.Sum(decimal.Zero, r.Balances...)
}

// Section groups the rows of one account class with their column totals.
type Section struct {
	Title      string
	TotalLabel string
	Rows       []Row
	Totals     []decimal.Decimal
}

// newSection computes the balance of every account for every period and the
// column totals over all of them.
func newSection(title, totalLabel string, accounts []*models.Account, periods []dateutils.Period) Section {
	s := Section{
		Title:      title,
		TotalLabel: totalLabel,
		Rows:       make([]Row, 0, len(accounts)),
		Totals:     make([]decimal.Decimal, len(periods)),
	}
	for i := range s.Totals {
		s.Totals[i] = decimal.Zero
	}

	for _, act := range accounts {
		row := Row{Account: act, Balances: make([]decimal.Decimal, len(periods))}
		for i, p := range periods {
			bln := act.BalanceIn(p)
			row.Balances[i] = bln
			s.Totals[i] = s.Totals[i].Add(bln)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// withoutZeroRows drops the rows whose balances sum to zero. Totals are kept.
func (s Section) withoutZeroRows() Section {
	rows := make([]Row, 0, len(s.Rows))
	for _, r := range s.Rows {
		if !r.Sum().IsZero() {
			rows = append(rows, r)
		}
	}
	s.Rows = rows
	return s
}

func formatAmounts(amounts []decimal.Decimal) []string {
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = currencyutils.FormatFixed(a)
	}
	return out
}

// textLine joins a label and amounts with ", ".
func textLine(label string, amounts []decimal.Decimal) string {
	return strings.Join(append([]string{label}, formatAmounts(amounts)...), ", ")
}

func difference(a, b []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(a))
	for i := range a {
		out[i] = a[i].Sub(b[i])
	}
	return out
}
