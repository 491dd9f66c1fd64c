package report

import (
	"fjacquet/gnc-reports/internal/currencyutils"
	"fjacquet/gnc-reports/internal/dateutils"
)

// The document types are the serializable views of the reports. Amounts are
// fixed two-decimal strings so that JSON and YAML output is exact.

// RowDocument is one account line.
type RowDocument struct {
	Account   string   `json:"account" yaml:"account"`
	AccountID string   `json:"account_id" yaml:"account_id"`
	Balances  []string `json:"balances" yaml:"balances"`
}

// SectionDocument is one section with its totals.
type SectionDocument struct {
	Title  string        `json:"title" yaml:"title"`
	Rows   []RowDocument `json:"rows" yaml:"rows"`
	Totals []string      `json:"totals" yaml:"totals"`
}

// PeriodDocument describes one column of an income statement.
type PeriodDocument struct {
	Label string `json:"label" yaml:"label"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// BalanceSheetDocument is the serializable balance sheet.
type BalanceSheetDocument struct {
	Endings  []string          `json:"endings" yaml:"endings"`
	Sections []SectionDocument `json:"sections" yaml:"sections"`
}

// IncomeStatementDocument is the serializable income statement.
type IncomeStatementDocument struct {
	Year      int               `json:"year,omitempty" yaml:"year,omitempty"`
	Periods   []PeriodDocument  `json:"periods" yaml:"periods"`
	Sections  []SectionDocument `json:"sections" yaml:"sections"`
	NetIncome []string          `json:"net_income" yaml:"net_income"`
}

// LedgerRowDocument is one register line. The csv tags drive the register CSV export.
type LedgerRowDocument struct {
	Date        string `json:"date" yaml:"date" csv:"Date"`
	Description string `json:"description" yaml:"description" csv:"Description"`
	Memo        string `json:"memo,omitempty" yaml:"memo,omitempty" csv:"Memo"`
	Reconciled  string `json:"reconciled,omitempty" yaml:"reconciled,omitempty" csv:"Reconciled"`
	Value       string `json:"value" yaml:"value" csv:"Value"`
	Balance     string `json:"balance" yaml:"balance" csv:"Balance"`
}

// LedgerDocument is the serializable account register.
type LedgerDocument struct {
	Account   string              `json:"account" yaml:"account"`
	AccountID string              `json:"account_id" yaml:"account_id"`
	Start     string              `json:"start" yaml:"start"`
	End       string              `json:"end" yaml:"end"`
	Rows      []LedgerRowDocument `json:"rows" yaml:"rows"`
	Balance   string              `json:"balance" yaml:"balance"`
}

// BookReportDocument is the serializable full book report.
type BookReportDocument struct {
	Book             string                    `json:"book" yaml:"book"`
	Currency         string                    `json:"currency" yaml:"currency"`
	Summary          string                    `json:"summary" yaml:"summary"`
	BalanceSheet     BalanceSheetDocument      `json:"balance_sheet" yaml:"balance_sheet"`
	IncomeStatements []IncomeStatementDocument `json:"income_statements" yaml:"income_statements"`
}

func sectionDocument(s Section) SectionDocument {
	doc := SectionDocument{Title: s.Title, Rows: make([]RowDocument, 0, len(s.Rows)), Totals: formatAmounts(s.Totals)}
	for _, r := range s.Rows {
		doc.Rows = append(doc.Rows, RowDocument{Account: r.Account.Name, AccountID: r.Account.ID, Balances: formatAmounts(r.Balances)})
	}
	return doc
}

// Document returns the serializable view of the balance sheet.
func (bs *BalanceSheet) Document() any {
	return bs.document()
}

func (bs *BalanceSheet) document() BalanceSheetDocument {
	doc := BalanceSheetDocument{Endings: bs.endingLabels()}
	for _, s := range bs.Sections() {
		doc.Sections = append(doc.Sections, sectionDocument(s))
	}
	return doc
}

// Document returns the serializable view of the income statement.
func (s *IncomeStatement) Document() any {
	return s.document(0)
}

func (s *IncomeStatement) document(year int) IncomeStatementDocument {
	doc := IncomeStatementDocument{
		Year:      year,
		Periods:   make([]PeriodDocument, 0, len(s.Periods)),
		Sections:  []SectionDocument{sectionDocument(s.Incomes), sectionDocument(s.Expenses)},
		NetIncome: formatAmounts(s.NetIncome()),
	}
	for _, p := range s.Periods {
		doc.Periods = append(doc.Periods, PeriodDocument{
			Label: p.Label(),
			Start: dateutils.ToISODate(p.Start),
			End:   dateutils.ToISODate(p.End),
		})
	}
	return doc
}

// Document returns the serializable view of the register.
func (l *AccountLedger) Document() any {
	return LedgerDocument{
		Account:   l.Account.Name,
		AccountID: l.Account.ID,
		Start:     dateutils.ToISODate(l.Period.Start),
		End:       dateutils.ToISODate(l.Period.End),
		Rows:      l.CSVRows(),
		Balance:   currencyutils.FormatFixed(l.Balance()),
	}
}

// CSVRows returns the register lines for CSV export.
func (l *AccountLedger) CSVRows() []LedgerRowDocument {
	rows := make([]LedgerRowDocument, 0, len(l.Rows))
	for _, r := range l.Rows {
		rows = append(rows, LedgerRowDocument{
			Date:        dateutils.ToISODate(r.Date),
			Description: r.Description(),
			Memo:        r.Split.Memo,
			Reconciled:  r.Split.ReconciledState,
			Value:       currencyutils.FormatFixed(r.Value),
			Balance:     currencyutils.FormatFixed(r.Balance),
		})
	}
	return rows
}
