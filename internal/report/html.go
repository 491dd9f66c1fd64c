package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(a atom.Atom, s string, attrs ...html.Attribute) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(textNode(s))
	return n
}

func colspan(n int) html.Attribute {
	return html.Attribute{Key: "colspan", Val: strconv.Itoa(n)}
}

// table is a report table under construction.
type table struct {
	root  *html.Node
	body  *html.Node
	ncols int
}

// newTable starts a table whose header row is the first label followed by one
// header cell per column label.
func newTable(caption string, first string, columns []string) *table {
	t := &table{root: element(atom.Table), body: element(atom.Tbody), ncols: len(columns) + 1}
	if caption != "" {
		t.root.AppendChild(withText(atom.Caption, caption))
	}

	head := element(atom.Thead)
	tr := element(atom.Tr)
	tr.AppendChild(withText(atom.Th, first))
	for _, c := range columns {
		tr.AppendChild(withText(atom.Th, c))
	}
	head.AppendChild(tr)
	t.root.AppendChild(head)
	t.root.AppendChild(t.body)
	return t
}

// heading adds a full-width row naming a section.
func (t *table) heading(title string) {
	tr := element(atom.Tr)
	tr.AppendChild(withText(atom.Td, title, colspan(t.ncols)))
	t.body.AppendChild(tr)
}

// spacer adds an empty full-width row.
func (t *table) spacer() {
	tr := element(atom.Tr)
	tr.AppendChild(element(atom.Td, colspan(t.ncols)))
	t.body.AppendChild(tr)
}

// row adds a label cell followed by text cells.
func (t *table) row(label string, cells ...string) {
	tr := element(atom.Tr)
	tr.AppendChild(withText(atom.Td, label))
	for _, c := range cells {
		tr.AppendChild(withText(atom.Td, c))
	}
	t.body.AppendChild(tr)
}

func (t *table) amounts(label string, amounts []decimal.Decimal) {
	t.row(label, formatAmounts(amounts)...)
}

// total adds a row whose label is bold.
func (t *table) total(label string, cells ...string) {
	tr := element(atom.Tr)
	td := element(atom.Td)
	td.AppendChild(withText(atom.B, label))
	tr.AppendChild(td)
	for _, c := range cells {
		tr.AppendChild(withText(atom.Td, c))
	}
	t.body.AppendChild(tr)
}

// section adds the heading, the account rows and the bold total of s.
func (t *table) section(s Section) {
	t.heading(s.Title)
	for _, r := range s.Rows {
		t.amounts(r.Account.Name, r.Balances)
	}
	t.total(s.TotalLabel, formatAmounts(s.Totals)...)
}

func (t *table) String() string {
	return render(t.root)
}

func render(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		// Rendering into a strings.Builder only fails on malformed trees.
		return ""
	}
	return b.String()
}
