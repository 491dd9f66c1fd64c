package report

import (
	"strings"
	"time"

	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/models"

	"github.com/shopspring/decimal"
)

// IncomeStatement holds the income and expense balances of a list of periods.
// Each column is computed independently of the others. Balances follow
// Account.Balance: incomes are negated so that revenue reads positive, expenses
// are left as posted.
type IncomeStatement struct {
	Periods  []dateutils.Period
	Incomes  Section
	Expenses Section
}

// NewIncomeStatement computes the income statement of book over periods. Totals
// cover every account; unless includeAll is set, the accounts whose balances sum
// to zero over all periods are then left out of the rows.
func NewIncomeStatement(book *models.Book, periods []dateutils.Period, includeAll bool) *IncomeStatement {
	stm := &IncomeStatement{
		Periods:  periods,
		Incomes:  newSection("Incomes", "Total Income", book.SectionAccounts(models.AccountTypeIncome), periods),
		Expenses: newSection("Expenses", "Total Expenses", book.SectionAccounts(models.AccountTypeExpense), periods),
	}
	if !includeAll {
		stm.Incomes = stm.Incomes.withoutZeroRows()
		stm.Expenses = stm.Expenses.withoutZeroRows()
	}
	return stm
}

// NewPeriodIncomeStatement is the income statement of the single period [start, end].
func NewPeriodIncomeStatement(book *models.Book, start, end time.Time, includeAll bool) *IncomeStatement {
	return NewIncomeStatement(book, []dateutils.Period{dateutils.NewPeriod(start, end)}, includeAll)
}

// NewMonthlyIncomeStatement is the income statement of the twelve calendar months
// of year. Year 0 stands for the year of the last transaction of book, or the
// current year when the book has no transaction.
func NewMonthlyIncomeStatement(book *models.Book, year int, includeAll bool) *IncomeStatement {
	if year == 0 {
		year = time.Now().Year()
		if last, ok := book.LastTransaction(); ok {
			year = last.DatePosted.Year()
		}
	}
	return NewIncomeStatement(book, dateutils.MonthsOf(year), includeAll)
}

// YearStatement is the monthly income statement of one year.
type YearStatement struct {
	Year      int
	Statement *IncomeStatement
}

// MonthlyIncomeStatements returns one monthly income statement per year of the
// transaction span of book, latest year first.
func MonthlyIncomeStatements(book *models.Book, includeAll bool) []YearStatement {
	years := book.Years()
	stms := make([]YearStatement, 0, len(years))
	for _, y := range years {
		stms = append(stms, YearStatement{Year: y, Statement: NewMonthlyIncomeStatement(book, y, includeAll)})
	}
	return stms
}

// TotalIncomes returns the income total of each period.
func (s *IncomeStatement) TotalIncomes() []decimal.Decimal {
	return s.Incomes.Totals
}

// TotalExpenses returns the expense total of each period.
func (s *IncomeStatement) TotalExpenses() []decimal.Decimal {
	return s.Expenses.Totals
}

// NetIncome returns total income minus total expenses for each period.
func (s *IncomeStatement) NetIncome() []decimal.Decimal {
	return difference(s.Incomes.Totals, s.Expenses.Totals)
}

func (s *IncomeStatement) periodLabels() []string {
	labels := make([]string, len(s.Periods))
	for i, p := range s.Periods {
		labels[i] = p.Label()
	}
	return labels
}

// Text renders the statement as comma separated lines, a blank line after each total.
func (s *IncomeStatement) Text() string {
	var lines []string
	for _, sec := range []Section{s.Incomes, s.Expenses} {
		lines = append(lines, sec.Title+":")
		for _, r := range sec.Rows {
			lines = append(lines, textLine(r.Account.Name, r.Balances))
		}
		lines = append(lines, textLine(sec.TotalLabel, sec.Totals)+"\n")
	}
	lines = append(lines, textLine("Net Income", s.NetIncome()))
	return strings.Join(lines, "\n")
}

func (s *IncomeStatement) String() string {
	return s.Text()
}

// HTML renders the statement as a table with one column per period.
func (s *IncomeStatement) HTML(caption string) string {
	return s.table(caption).String()
}

func (s *IncomeStatement) table(caption string) *table {
	t := newTable(caption, "Period Ending", s.periodLabels())
	t.section(s.Incomes)
	t.spacer()
	t.section(s.Expenses)
	t.spacer()
	t.total("Net Income", formatAmounts(s.NetIncome())...)
	return t
}
