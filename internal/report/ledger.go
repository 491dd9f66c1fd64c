package report

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"fjacquet/gnc-reports/internal/currencyutils"
	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerRow is one split of an account register with the running balance after it.
type LedgerRow struct {
	Split   *models.Split
	Date    time.Time
	Value   decimal.Decimal
	Balance decimal.Decimal
}

// Description is the description of the transaction owning the split.
func (r LedgerRow) Description() string {
	if trn := r.Split.Transaction(); trn != nil {
		return trn.Description
	}
	return ""
}

// AccountLedger is the register of one account over a period: its splits in
// posting date order with a running balance. The running balance is the raw
// split sum, without the sign convention of Account.Balance.
type AccountLedger struct {
	Account *models.Account
	Period  dateutils.Period
	Rows    []LedgerRow
}

// NewAccountLedger builds the register of act for the splits posted in [start, end].
// Splits posted on the same day keep the order in which they were added to act.
func NewAccountLedger(act *models.Account, start, end time.Time) *AccountLedger {
	period := dateutils.Period{Start: dateutils.DateOf(start), End: dateutils.DateOf(end)}

	var splits []*models.Split
	for _, s := range act.Splits() {
		if period.Contains(s.Date()) {
			splits = append(splits, s)
		}
	}
	slices.SortStableFunc(splits, models.CompareByDate)

	l := &AccountLedger{Account: act, Period: period, Rows: make([]LedgerRow, 0, len(splits))}
	balance := decimal.Zero
	for _, s := range splits {
		balance = balance.Add(s.Value)
		l.Rows = append(l.Rows, LedgerRow{Split: s, Date: s.Date(), Value: s.Value, Balance: balance})
	}
	return l
}

// NewAccountLedgerByName builds the register of the first account named name.
// It reports false when the book has no such account.
func NewAccountLedgerByName(book *models.Book, name string, start, end time.Time) (*AccountLedger, bool) {
	act, ok := book.FindAccount(name)
	if !ok {
		return nil, false
	}
	return NewAccountLedger(act, start, end), true
}

// Balance is the running balance after the last row, zero for an empty register.
func (l *AccountLedger) Balance() decimal.Decimal {
	if len(l.Rows) == 0 {
		return decimal.Zero
	}
	return l.Rows[len(l.Rows)-1].Balance
}

// Text renders one "date, description, value, balance" line per split.
func (l *AccountLedger) Text() string {
	lines := make([]string, 0, len(l.Rows))
	for _, r := range l.Rows {
		lines = append(lines, fmt.Sprintf("%s, %s, %s, %s",
			dateutils.ToISODate(r.Date), r.Description(),
			currencyutils.FormatFixed(r.Value), currencyutils.FormatFixed(r.Balance)))
	}
	return strings.Join(lines, "\n")
}

func (l *AccountLedger) String() string {
	return l.Text()
}

// HTML renders the register as a table.
func (l *AccountLedger) HTML(caption string) string {
	t := newTable(caption, "Date", []string{"Description", "Value", "Balance"})
	for _, r := range l.Rows {
		t.row(dateutils.ToISODate(r.Date), r.Description(),
			currencyutils.FormatFixed(r.Value), currencyutils.FormatFixed(r.Balance))
	}
	t.total("Balance", "", "", currencyutils.FormatFixed(l.Balance()))
	return t.String()
}
