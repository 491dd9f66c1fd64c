package report

import (
	"testing"
	"time"

	"fjacquet/gnc-reports/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decs(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

// assertAmounts compares decimals by value so that 0 and 0.00 are equal.
func assertAmounts(t *testing.T, expected, actual []decimal.Decimal) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(actual[i]), "column %d: expected %s, got %s", i, expected[i], actual[i])
	}
}

func rowNames(s Section) []string {
	names := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		names[i] = r.Account.Name
	}
	return names
}

func post(t *testing.T, b *models.Book, id string, posted time.Time, desc string, legs ...string) {
	t.Helper()
	var splits []*models.Split
	for i := 0; i < len(legs); i += 2 {
		v := dec(legs[i+1])
		splits = append(splits, models.NewSplit(id+"-"+legs[i], v, v, legs[i]))
	}
	trn := models.NewTransaction(id, posted.Add(10*time.Hour), posted, desc, models.CommodityRef{Space: "ISO4217", ID: "USD"}, splits...)
	require.NoError(t, b.AddTransaction(trn))
}

// newHouseholdBook builds:
//
//	Root
//	|-Assets -> Checking, Savings
//	|-Liabilities -> Card
//	|-Equity -> Opening Balances
//	|-Income -> Salary, Interest
//	|-Expenses -> Rent, Groceries
func newHouseholdBook(t *testing.T) *models.Book {
	t.Helper()
	b := models.NewBook("household", models.NewCommodity("ISO4217", "USD", "currency"))
	for _, act := range []*models.Account{
		models.NewAccount("root", "Root Account", models.AccountTypeRoot, ""),
		models.NewAccount("assets", "Assets", models.AccountTypeAsset, "root"),
		models.NewAccount("checking", "Checking", models.AccountTypeAsset, "assets"),
		models.NewAccount("savings", "Savings", models.AccountTypeAsset, "assets"),
		models.NewAccount("liab", "Liabilities", models.AccountTypeLiability, "root"),
		models.NewAccount("card", "Card", models.AccountTypeLiability, "liab"),
		models.NewAccount("equity", "Equity", models.AccountTypeEquity, "root"),
		models.NewAccount("opening", "Opening Balances", models.AccountTypeEquity, "equity"),
		models.NewAccount("income", "Income", models.AccountTypeIncome, "root"),
		models.NewAccount("salary", "Salary", models.AccountTypeIncome, "income"),
		models.NewAccount("interest", "Interest", models.AccountTypeIncome, "income"),
		models.NewAccount("expenses", "Expenses", models.AccountTypeExpense, "root"),
		models.NewAccount("rent", "Rent", models.AccountTypeExpense, "expenses"),
		models.NewAccount("groceries", "Groceries", models.AccountTypeExpense, "expenses"),
	} {
		require.NoError(t, b.AddAccount(act))
	}
	require.NoError(t, b.Validate())

	post(t, b, "t1", day(2010, time.January, 1), "Opening Balance", "checking", "1000", "opening", "-1000")
	post(t, b, "t2", day(2010, time.March, 15), "Paycheck", "checking", "2500", "salary", "-2500")
	post(t, b, "t3", day(2010, time.July, 15), "Paycheck", "checking", "2500", "salary", "-2500")
	post(t, b, "t4", day(2011, time.February, 1), "February rent", "rent", "800", "checking", "-800")
	post(t, b, "t5", day(2011, time.May, 10), "Supermarket", "groceries", "120.50", "card", "-120.50")
	post(t, b, "t6", day(2011, time.December, 31), "Interest", "savings", "10", "interest", "-10")
	return b
}

func account(t *testing.T, b *models.Book, name string) *models.Account {
	t.Helper()
	act, ok := b.FindAccount(name)
	require.True(t, ok, "account %s", name)
	return act
}
