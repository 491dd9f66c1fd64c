package report

import (
	"strconv"
	"strings"

	"fjacquet/gnc-reports/internal/models"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BookReport combines the balance sheet of a book with one monthly income
// statement per year of its transaction span, latest year first.
type BookReport struct {
	Book         *models.Book
	BalanceSheet *BalanceSheet
	Statements   []YearStatement
}

// NewBookReport computes the full report of book. years bounds the number of
// balance sheet columns; zero or less keeps every year.
func NewBookReport(book *models.Book, years int, includeAll bool) *BookReport {
	return &BookReport{
		Book:         book,
		BalanceSheet: NewBalanceSheet(book, DefaultEndings(book, years)),
		Statements:   MonthlyIncomeStatements(book, includeAll),
	}
}

func (r *BookReport) currencyLabel() string {
	c := r.Book.Commodity
	if c.ID == "" {
		return ""
	}
	if sym := c.Symbol(); sym != c.ID {
		return c.ID + " (" + sym + ")"
	}
	return c.ID
}

func (r *BookReport) caption(title string) string {
	if cur := r.currencyLabel(); cur != "" {
		return title + " in " + cur
	}
	return title
}

// Text renders the summary, the balance sheet and the yearly statements
// separated by blank lines.
func (r *BookReport) Text() string {
	parts := []string{r.Book.Summary(), "Balance Sheet", r.BalanceSheet.Text()}
	for _, ys := range r.Statements {
		parts = append(parts, "Income Statement "+strconv.Itoa(ys.Year), ys.Statement.Text())
	}
	return strings.Join(parts, "\n\n")
}

// HTML renders a complete HTML document. title defaults to "GnuCash Report".
func (r *BookReport) HTML(title string) string {
	if title == "" {
		title = "GnuCash Report"
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(atom.Title, title))
	root.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(withText(atom.H1, title))
	body.AppendChild(withText(atom.P, r.Book.Summary()))

	body.AppendChild(withText(atom.H2, "Balance Sheet"))
	body.AppendChild(r.BalanceSheet.table(r.caption("Balance Sheet")).root)
	for _, ys := range r.Statements {
		heading := "Income Statement " + strconv.Itoa(ys.Year)
		body.AppendChild(withText(atom.H2, heading))
		body.AppendChild(ys.Statement.table(r.caption(heading)).root)
	}
	root.AppendChild(body)
	doc.AppendChild(root)
	return render(doc)
}

// Document returns the serializable view of the full report.
func (r *BookReport) Document() any {
	doc := BookReportDocument{
		Book:             r.Book.ID,
		Currency:         r.Book.Commodity.ID,
		Summary:          r.Book.Summary(),
		BalanceSheet:     r.BalanceSheet.document(),
		IncomeStatements: make([]IncomeStatementDocument, 0, len(r.Statements)),
	}
	for _, ys := range r.Statements {
		doc.IncomeStatements = append(doc.IncomeStatements, ys.Statement.document(ys.Year))
	}
	return doc
}
