package report

import (
	"strings"
	"time"

	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/models"
)

// BalanceSheet holds the balances of the asset, liability and equity accounts at
// a list of period endings. Each balance covers every split posted up to and
// including the ending. Accounts are never filtered out.
type BalanceSheet struct {
	Endings     []time.Time
	Assets      Section
	Liabilities Section
	Equity      Section
}

// NewBalanceSheet computes the balance sheet of book with one column per ending,
// in the order given.
func NewBalanceSheet(book *models.Book, endings []time.Time) *BalanceSheet {
	periods := make([]dateutils.Period, len(endings))
	normalized := make([]time.Time, len(endings))
	for i, e := range endings {
		periods[i] = dateutils.Until(e)
		normalized[i] = dateutils.DateOf(e)
	}

	return &BalanceSheet{
		Endings:     normalized,
		Assets:      newSection("Assets", "Total Assets", book.SectionAccounts(models.AccountTypeAsset), periods),
		Liabilities: newSection("Liabilities", "Total Liabilities", book.SectionAccounts(models.AccountTypeLiability), periods),
		Equity:      newSection("Equity", "Total Equity", book.SectionAccounts(models.AccountTypeEquity), periods),
	}
}

// DefaultEndings returns December 31 of the last years years of the transaction
// span of book, latest first. A book without transactions uses the current year.
func DefaultEndings(book *models.Book, years int) []time.Time {
	span := book.Years()
	if len(span) == 0 {
		span = []int{time.Now().Year()}
	}
	if years > 0 && years < len(span) {
		span = span[:years]
	}

	endings := make([]time.Time, len(span))
	for i, y := range span {
		endings[i] = dateutils.YearEnd(y)
	}
	return endings
}

// Sections returns the assets, liabilities and equity sections in that order.
func (bs *BalanceSheet) Sections() []Section {
	return []Section{bs.Assets, bs.Liabilities, bs.Equity}
}

func (bs *BalanceSheet) endingLabels() []string {
	labels := make([]string, len(bs.Endings))
	for i, e := range bs.Endings {
		labels[i] = dateutils.ToISODate(e)
	}
	return labels
}

// Text renders the balance sheet as comma separated lines.
func (bs *BalanceSheet) Text() string {
	lines := []string{"Period Endings, " + strings.Join(bs.endingLabels(), ", ")}
	for _, s := range bs.Sections() {
		lines = append(lines, "- "+s.Title+":")
		for _, r := range s.Rows {
			lines = append(lines, textLine(r.Account.Name, r.Balances))
		}
		lines = append(lines, textLine(s.TotalLabel, s.Totals))
	}
	return strings.Join(lines, "\n")
}

func (bs *BalanceSheet) String() string {
	return bs.Text()
}

// HTML renders the balance sheet as a table with one column per ending.
func (bs *BalanceSheet) HTML(caption string) string {
	return bs.table(caption).String()
}

func (bs *BalanceSheet) table(caption string) *table {
	t := newTable(caption, "Period Ending", bs.endingLabels())
	for i, s := range bs.Sections() {
		if i > 0 {
			t.spacer()
		}
		t.section(s)
	}
	return t
}
