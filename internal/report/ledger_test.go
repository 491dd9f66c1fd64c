package report

import (
	"testing"
	"time"

	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountLedger_RunningBalance(t *testing.T) {
	b := newHouseholdBook(t)
	l := NewAccountLedger(account(t, b, "Checking"), dateutils.MinDate, dateutils.MaxDate)

	require.Len(t, l.Rows, 4)
	assertAmounts(t, decs("1000", "2500", "2500", "-800"), []decimal.Decimal{l.Rows[0].Value, l.Rows[1].Value, l.Rows[2].Value, l.Rows[3].Value})
	assertAmounts(t, decs("1000", "3500", "6000", "5200"), []decimal.Decimal{l.Rows[0].Balance, l.Rows[1].Balance, l.Rows[2].Balance, l.Rows[3].Balance})
	assert.True(t, dec("5200").Equal(l.Balance()))
	assert.Equal(t, "Opening Balance", l.Rows[0].Description())
	assert.Equal(t, day(2011, time.February, 1), l.Rows[3].Date)
}

func TestNewAccountLedger_Range(t *testing.T) {
	b := newHouseholdBook(t)

	l := NewAccountLedger(account(t, b, "Checking"), day(2010, time.March, 15), day(2010, time.December, 31))
	require.Len(t, l.Rows, 2)
	assert.True(t, dec("2500").Equal(l.Rows[0].Balance))
	assert.True(t, dec("5000").Equal(l.Rows[1].Balance))

	empty := NewAccountLedger(account(t, b, "Checking"), day(2012, time.January, 1), day(2012, time.December, 31))
	assert.Empty(t, empty.Rows)
	assert.True(t, empty.Balance().IsZero())
	assert.Equal(t, "", empty.Text())
}

func TestNewAccountLedger_RawBalanceForCreditAccounts(t *testing.T) {
	b := newHouseholdBook(t)
	l := NewAccountLedger(account(t, b, "Salary"), dateutils.MinDate, dateutils.MaxDate)

	require.Len(t, l.Rows, 2)
	assert.True(t, dec("-5000").Equal(l.Balance()))
	assert.True(t, dec("5000").Equal(account(t, b, "Salary").Balance(dateutils.MinDate, dateutils.MaxDate)))
}

func TestNewAccountLedger_StableDateOrder(t *testing.T) {
	b := models.NewBook("b", models.NewCommodity("ISO4217", "EUR", ""))
	require.NoError(t, b.AddAccount(models.NewAccount("root", "Root Account", models.AccountTypeRoot, "")))
	require.NoError(t, b.AddAccount(models.NewAccount("cash", "Cash", models.AccountTypeAsset, "root")))
	require.NoError(t, b.AddAccount(models.NewAccount("misc", "Misc", models.AccountTypeExpense, "root")))
	require.NoError(t, b.Validate())

	post(t, b, "first", day(2011, time.June, 1), "first same day", "cash", "1", "misc", "-1")
	post(t, b, "earlier", day(2011, time.January, 1), "earlier", "cash", "2", "misc", "-2")
	post(t, b, "second", day(2011, time.June, 1), "second same day", "cash", "3", "misc", "-3")

	l := NewAccountLedger(account(t, b, "Cash"), dateutils.MinDate, dateutils.MaxDate)
	var descs []string
	for _, r := range l.Rows {
		descs = append(descs, r.Description())
	}
	assert.Equal(t, []string{"earlier", "first same day", "second same day"}, descs)
	assert.True(t, dec("6").Equal(l.Balance()))
}

func TestNewAccountLedgerByName(t *testing.T) {
	b := newHouseholdBook(t)

	l, ok := NewAccountLedgerByName(b, "Card", dateutils.MinDate, dateutils.MaxDate)
	require.True(t, ok)
	assert.Equal(t, "card", l.Account.ID)

	l, ok = NewAccountLedgerByName(b, "Nope", dateutils.MinDate, dateutils.MaxDate)
	assert.False(t, ok)
	assert.Nil(t, l)
}

func TestAccountLedger_Text(t *testing.T) {
	b := newHouseholdBook(t)
	l := NewAccountLedger(account(t, b, "Checking"), day(2011, time.January, 1), day(2011, time.December, 31))

	assert.Equal(t, "2011-02-01, February rent, -800.00, -800.00", l.Text())
	assert.Equal(t, l.Text(), l.String())
}

func TestAccountLedger_HTML(t *testing.T) {
	b := newHouseholdBook(t)
	l := NewAccountLedger(account(t, b, "Checking"), dateutils.MinDate, dateutils.MaxDate)
	out := l.HTML("Checking")

	assert.Contains(t, out, "<caption>Checking</caption>")
	assert.Contains(t, out, "<th>Date</th><th>Description</th><th>Value</th><th>Balance</th>")
	assert.Contains(t, out, "<tr><td>2010-03-15</td><td>Paycheck</td><td>2500.00</td><td>3500.00</td></tr>")
	assert.Contains(t, out, "<tr><td><b>Balance</b></td><td></td><td></td><td>5200.00</td></tr>")
}
