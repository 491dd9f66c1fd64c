// Package models provides the data structures used throughout the application.
package models

// AccountType is the GnuCash account type. Types other than the ones declared
// below (BANK, CASH, CREDIT, STOCK, ...) are carried through unchanged.
type AccountType string

const (
	AccountTypeRoot      AccountType = "ROOT"
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Commodity namespaces that denote a currency.
const (
	CommoditySpaceISO4217  = "ISO4217"
	CommoditySpaceCurrency = "CURRENCY"
)

// CreditIncreases reports whether credits increase the balance of accounts of this
// type. Balances of such accounts are presented with the raw split sum negated.
func (t AccountType) CreditIncreases() bool {
	switch t {
	case AccountTypeLiability, AccountTypeEquity, AccountTypeIncome:
		return true
	default:
		return false
	}
}

func (t AccountType) String() string {
	return string(t)
}
