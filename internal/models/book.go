package models

import (
	"fmt"
	"slices"

	"fjacquet/gnc-reports/internal/parsererror"
)

// Book aggregates the accounts and transactions of one GnuCash book. Accounts and
// transactions are kept both in document order and indexed by id. A Book is
// populated once by the loader and only read afterwards.
type Book struct {
	ID        string
	Commodity Commodity

	accounts         []*Account
	accountsByID     map[string]*Account
	transactions     []*Transaction
	transactionsByID map[string]*Transaction
	root             *Account
}

// NewBook creates an empty book.
func NewBook(id string, commodity Commodity) *Book {
	return &Book{
		ID:               id,
		Commodity:        commodity,
		accountsByID:     make(map[string]*Account),
		transactionsByID: make(map[string]*Transaction),
	}
}

// AddAccount registers act and attaches it to its parent. The parent must have
// been added before; parents always precede their children in a GnuCash file.
func (b *Book) AddAccount(act *Account) error {
	if _, exists := b.accountsByID[act.ID]; exists {
		return &parsererror.ReferenceError{Entity: "account", ID: act.ID, Field: "id", Ref: act.ID, Reason: "is already registered"}
	}

	var parent *Account
	if act.HasParent() {
		p, ok := b.accountsByID[act.ParentID]
		if !ok {
			return &parsererror.ReferenceError{Entity: "account", ID: act.ID, Field: "parent", Ref: act.ParentID, Reason: "is not registered before its child"}
		}
		parent = p
	}

	b.accounts = append(b.accounts, act)
	b.accountsByID[act.ID] = act
	if parent != nil {
		parent.AddChildAccount(act)
	}
	return nil
}

// AddTransaction registers trn, posts each of its splits to the referenced account
// and sets the split back references. Nothing is modified when a split references
// an unknown account.
func (b *Book) AddTransaction(trn *Transaction) error {
	if _, exists := b.transactionsByID[trn.ID]; exists {
		return &parsererror.ReferenceError{Entity: "transaction", ID: trn.ID, Field: "id", Ref: trn.ID, Reason: "is already registered"}
	}

	accounts := make([]*Account, len(trn.splits))
	for i, split := range trn.splits {
		act, ok := b.accountsByID[split.AccountID]
		if !ok {
			return &parsererror.ReferenceError{Entity: "split", ID: split.ID, Field: "account", Ref: split.AccountID, Reason: "is not a known account"}
		}
		accounts[i] = act
	}

	for i, split := range trn.splits {
		accounts[i].AddSplit(split)
		split.account = accounts[i]
		split.transaction = trn
	}
	b.transactions = append(b.transactions, trn)
	b.transactionsByID[trn.ID] = trn
	return nil
}

// Validate checks that exactly one account has no parent and records it as the root.
func (b *Book) Validate() error {
	var roots []*Account
	for _, act := range b.accounts {
		if !act.HasParent() {
			roots = append(roots, act)
		}
	}
	if len(roots) != 1 {
		return &parsererror.InvalidFormatError{
			ExpectedFormat: "exactly one account without parent",
			Msg:            fmt.Sprintf("found %d accounts without parent", len(roots)),
		}
	}
	b.root = roots[0]
	return nil
}

// RootAccount returns the root of the account tree, nil before Validate succeeded.
func (b *Book) RootAccount() *Account {
	return b.root
}

// TopLevelAccount returns the first child of the root account with the given type.
func (b *Book) TopLevelAccount(accountType AccountType) (*Account, bool) {
	for _, act := range b.topLevelAccounts(accountType) {
		return act, true
	}
	return nil, false
}

// SectionAccounts returns the descendants of every top-level account of the given
// type, in Descendants order. Top-level accounts are visited by name.
func (b *Book) SectionAccounts(accountType AccountType) []*Account {
	var acts []*Account
	for _, top := range sortedByName(b.topLevelAccounts(accountType)) {
		acts = append(acts, top.Descendants()...)
	}
	return acts
}

func (b *Book) topLevelAccounts(accountType AccountType) []*Account {
	if b.root == nil {
		return nil
	}
	var acts []*Account
	for _, act := range b.root.children {
		if act.Type == accountType {
			acts = append(acts, act)
		}
	}
	return acts
}

// Accounts returns every account in document order.
func (b *Book) Accounts() []*Account {
	return slices.Clone(b.accounts)
}

// Transactions returns every transaction in document order.
func (b *Book) Transactions() []*Transaction {
	return slices.Clone(b.transactions)
}

// Account looks an account up by id.
func (b *Book) Account(id string) (*Account, bool) {
	act, ok := b.accountsByID[id]
	return act, ok
}

// Transaction looks a transaction up by id.
func (b *Book) Transaction(id string) (*Transaction, bool) {
	trn, ok := b.transactionsByID[id]
	return trn, ok
}

// FindAccount returns the first account, in document order, named name.
func (b *Book) FindAccount(name string) (*Account, bool) {
	for _, act := range b.accounts {
		if act.Name == name {
			return act, true
		}
	}
	return nil, false
}

// AccountTree renders the tree below the account named name, or below the root
// when name is empty.
func (b *Book) AccountTree(name string) (string, bool) {
	if name == "" {
		if b.root == nil {
			return "", false
		}
		return b.root.Tree(), true
	}
	act, ok := b.FindAccount(name)
	if !ok {
		return "", false
	}
	return act.Tree(), true
}

// FirstTransaction returns the earliest posted transaction; among equal dates the
// first in document order.
func (b *Book) FirstTransaction() (*Transaction, bool) {
	if len(b.transactions) == 0 {
		return nil, false
	}
	return b.sortedTransactions()[0], true
}

// LastTransaction returns the latest posted transaction; among equal dates the
// last in document order.
func (b *Book) LastTransaction() (*Transaction, bool) {
	if len(b.transactions) == 0 {
		return nil, false
	}
	sorted := b.sortedTransactions()
	return sorted[len(sorted)-1], true
}

func (b *Book) sortedTransactions() []*Transaction {
	sorted := slices.Clone(b.transactions)
	slices.SortStableFunc(sorted, CompareByDatePosted)
	return sorted
}

// Years returns every calendar year between the first and the last transaction,
// latest first. A book without transactions has no years.
func (b *Book) Years() []int {
	first, ok := b.FirstTransaction()
	if !ok {
		return nil
	}
	last, _ := b.LastTransaction()

	var years []int
	for y := last.DatePosted.Year(); y >= first.DatePosted.Year(); y-- {
		years = append(years, y)
	}
	return years
}

// Summary describes the size of the book.
func (b *Book) Summary() string {
	return fmt.Sprintf("Summary: %d accounts and %d transactions", len(b.accounts), len(b.transactions))
}

func (b *Book) String() string {
	return b.Summary()
}
