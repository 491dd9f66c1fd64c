package balance_test

import (
	"path/filepath"
	"testing"
	"time"

	"fjacquet/gnc-reports/cmd/balance"
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

func TestBalanceCommand_Metadata(t *testing.T) {
	assert.Equal(t, "balance", balance.Cmd.Use)
	assert.NotNil(t, balance.Cmd.RunE)
	assert.NotNil(t, balance.Cmd.Flags().Lookup("ending"))
}

func TestBuild_Endings(t *testing.T) {
	book := householdBook(t)

	bs, err := balance.Build(book, []string{"2010-12-31", "2011-12-31"}, 3)
	require.NoError(t, err)
	require.Len(t, bs.Endings, 2)
	assert.Equal(t, time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC), bs.Endings[0])
	assert.Equal(t, "6000", bs.Assets.Totals[0].String())
	assert.Equal(t, "5210", bs.Assets.Totals[1].String())
	assert.Equal(t, "-120.5", bs.Liabilities.Totals[1].String(), "CREDIT accounts keep their raw sign")
}

func TestBuild_DefaultEndings(t *testing.T) {
	book := householdBook(t)

	bs, err := balance.Build(book, nil, 2)
	require.NoError(t, err)
	require.Len(t, bs.Endings, 2)
	assert.Equal(t, 2011, bs.Endings[0].Year())
	assert.Equal(t, 2010, bs.Endings[1].Year())
}

func TestBuild_InvalidEnding(t *testing.T) {
	_, err := balance.Build(householdBook(t), []string{"end of year"}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--ending")
}
