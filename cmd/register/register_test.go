package register_test

import (
	"path/filepath"
	"testing"

	"fjacquet/gnc-reports/cmd/register"
	"fjacquet/gnc-reports/internal/gncparser"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func householdBook(t *testing.T) *models.Book {
	t.Helper()
	p := gncparser.NewParser(logging.NewMockLogger())
	book, err := p.ParseFile(filepath.Join("..", "..", "internal", "gncparser", "testdata", "household.gnucash"))
	require.NoError(t, err)
	return book
}

func TestRegisterCommand_Metadata(t *testing.T) {
	assert.Equal(t, "register ACCOUNT", register.Cmd.Use)
	assert.NotNil(t, register.Cmd.RunE)
	assert.Error(t, register.Cmd.Args(register.Cmd, nil))
	assert.NoError(t, register.Cmd.Args(register.Cmd, []string{"Checking"}))
}

func TestBuild(t *testing.T) {
	book := householdBook(t)

	tests := []struct {
		name    string
		from    string
		to      string
		rows    int
		balance string
	}{
		{"whole history", "", "", 4, "5200"},
		{"year 2010", "2010-01-01", "2010-12-31", 3, "6000"},
		{"open start", "", "2010-03-15", 2, "3500"},
		{"open end", "2011-01-01", "", 1, "-800"},
		{"empty range", "2012-01-01", "2012-12-31", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := register.Build(book, "Checking", tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, "Checking", l.Account.Name)
			assert.Len(t, l.Rows, tt.rows)
			assert.Equal(t, tt.balance, l.Balance().String())
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	book := householdBook(t)

	_, err := register.Build(book, "Brokerage", "", "")
	require.Error(t, err)
	assert.Equal(t, "account 'Brokerage' not found", err.Error())

	_, err = register.Build(book, "Checking", "2011-02-01", "2011-01-01")
	assert.Error(t, err)
}
