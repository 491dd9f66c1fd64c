package models

import (
	"slices"
	"strings"
	"time"

	"fjacquet/gnc-reports/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Account is a node of the account tree. It keeps its children in insertion
// order and the splits posted to it in append order.
type Account struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Type        AccountType `json:"type" yaml:"type"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	// ParentID is empty for the root account only.
	ParentID string `json:"parent,omitempty" yaml:"parent,omitempty"`

	children []*Account
	splits   []*Split
}

// NewAccount creates an account with no children and no splits.
func NewAccount(id, name string, accountType AccountType, parentID string) *Account {
	return &Account{
		ID:       id,
		Name:     name,
		Type:     accountType,
		ParentID: parentID,
	}
}

// HasParent reports whether the account declares a parent.
func (a *Account) HasParent() bool {
	return a.ParentID != ""
}

// Children returns the direct children in insertion order.
func (a *Account) Children() []*Account {
	return slices.Clone(a.children)
}

// Splits returns the splits posted to the account in append order.
func (a *Account) Splits() []*Split {
	return slices.Clone(a.splits)
}

// AddChildAccount appends child to the children of a.
func (a *Account) AddChildAccount(child *Account) {
	a.children = append(a.children, child)
}

// RemoveChildAccount removes child from the children of a and reports whether it was present.
func (a *Account) RemoveChildAccount(child *Account) bool {
	i := slices.Index(a.children, child)
	if i < 0 {
		return false
	}
	a.children = slices.Delete(a.children, i, i+1)
	return true
}

// AddSplit appends split to the splits of a.
func (a *Account) AddSplit(split *Split) {
	a.splits = append(a.splits, split)
}

// RemoveSplit removes split from the splits of a and reports whether it was present.
func (a *Account) RemoveSplit(split *Split) bool {
	i := slices.Index(a.splits, split)
	if i < 0 {
		return false
	}
	a.splits = slices.Delete(a.splits, i, i+1)
	return true
}

// Descendants returns every account below a, depth first and preorder, with the
// siblings of each level ordered by name.
func (a *Account) Descendants() []*Account {
	var acts []*Account
	for _, child := range sortedByName(a.children) {
		acts = append(acts, child)
		if len(child.children) > 0 {
			acts = append(acts, child.Descendants()...)
		}
	}
	return acts
}

// RawBalance sums the values of the splits of a (not of its descendants) whose
// posting date lies in [start, end].
func (a *Account) RawBalance(start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, split := range a.splits {
		if dateutils.InRange(split.Date(), start, end) {
			total = total.Add(split.Value)
		}
	}
	return total
}

// Balance is RawBalance presented with the sign convention of the account type:
// liability, equity and income balances are negated, since credits increase them.
func (a *Account) Balance(start, end time.Time) decimal.Decimal {
	bln := a.RawBalance(start, end)
	if a.Type.CreditIncreases() {
		return bln.Neg()
	}
	return bln
}

// BalanceIn is Balance over a period.
func (a *Account) BalanceIn(p dateutils.Period) decimal.Decimal {
	return a.Balance(p.Start, p.End)
}

// Tree renders a and its children as an indented tree, children in insertion order.
func (a *Account) Tree() string {
	var b strings.Builder
	a.writeTree(&b, 0)
	return b.String()
}

func (a *Account) writeTree(b *strings.Builder, indent int) {
	b.WriteString(a.Name)
	for _, child := range a.children {
		b.WriteString("\n|")
		if indent > 0 {
			b.WriteString(strings.Repeat(" ", indent-1) + "|-")
		} else {
			b.WriteString("-")
		}
		child.writeTree(b, indent+2)
	}
}

func (a *Account) String() string {
	return a.ID + ": " + a.Name
}

func sortedByName(accounts []*Account) []*Account {
	sorted := slices.Clone(accounts)
	slices.SortStableFunc(sorted, func(x, y *Account) int {
		return strings.Compare(x.Name, y.Name)
	})
	return sorted
}
