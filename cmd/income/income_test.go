package income_test

import (
	"path/filepath"
	"testing"

	"fjacquet/gnc-reports/cmd/income"
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

func TestIncomeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "income", income.Cmd.Use)
	assert.NotNil(t, income.Cmd.RunE)
	for _, name := range []string{"year", "month", "from", "to", "all"} {
		assert.NotNil(t, income.Cmd.Flags().Lookup(name), name)
	}
}

func TestBuild(t *testing.T) {
	book := householdBook(t)

	tests := []struct {
		name    string
		opts    income.Options
		caption string
		periods int
		net     string
	}{
		{"defaults to the last year", income.Options{}, "Income Statement 2011", 12, "-800"},
		{"explicit year", income.Options{Year: 2010}, "Income Statement 2010", 12, "0"},
		{"single month", income.Options{Year: 2011, Month: 2}, "Income Statement February 2011", 1, "-800"},
		{"custom range", income.Options{From: "2011-01-01", To: "2011-12-31"}, "Income Statement 2011-01-01 - 2011-12-31", 1, "-910.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stm, caption, err := income.Build(book, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.caption, caption)
			assert.Len(t, stm.Periods, tt.periods)
			net := stm.NetIncome()
			if tt.periods == 1 {
				assert.Equal(t, tt.net, net[0].String())
			} else {
				assert.Equal(t, tt.net, net[1].String(), "February")
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	book := householdBook(t)

	tests := []struct {
		name string
		opts income.Options
	}{
		{"invalid year", income.Options{Year: 99}},
		{"invalid month", income.Options{Year: 2011, Month: 13}},
		{"month with range", income.Options{Month: 2, From: "2011-01-01"}},
		{"reversed range", income.Options{From: "2011-12-31", To: "2011-01-01"}},
		{"bad date", income.Options{From: "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := income.Build(book, tt.opts)
			assert.Error(t, err)
		})
	}
}
