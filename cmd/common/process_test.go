package common_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/gnc-reports/cmd/common"
	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/parser"
	"fjacquet/gnc-reports/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFullParser implements parser.FullParser for testing
type MockFullParser struct {
	mock.Mock
}

func (m *MockFullParser) Parse(r io.Reader) (*models.Book, error) {
	args := m.Called(r)
	book, _ := args.Get(0).(*models.Book)
	return book, args.Error(1)
}

func (m *MockFullParser) ParseFile(path string) (*models.Book, error) {
	args := m.Called(path)
	book, _ := args.Get(0).(*models.Book)
	return book, args.Error(1)
}

func (m *MockFullParser) ValidateFormat(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFullParser) SetLogger(logger logging.Logger) {
	m.Called(logger)
}

var _ parser.FullParser = (*MockFullParser)(nil)

func ledgerFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.gnucash")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	return path
}

func TestLoadBook(t *testing.T) {
	path := ledgerFile(t)
	book := models.NewBook("b", models.Commodity{})
	logger := logging.NewMockLogger()

	tests := []struct {
		name        string
		validate    bool
		setup       func(m *MockFullParser)
		errContains string
	}{
		{
			name: "parse without validation",
			setup: func(m *MockFullParser) {
				m.On("ParseFile", path).Return(book, nil)
			},
		},
		{
			name:     "validation passes",
			validate: true,
			setup: func(m *MockFullParser) {
				m.On("ValidateFormat", path).Return(true, nil)
				m.On("ParseFile", path).Return(book, nil)
			},
		},
		{
			name:     "validation error",
			validate: true,
			setup: func(m *MockFullParser) {
				m.On("ValidateFormat", path).Return(false, errors.New("stat failed"))
			},
			errContains: "error validating file",
		},
		{
			name:     "invalid format",
			validate: true,
			setup: func(m *MockFullParser) {
				m.On("ValidateFormat", path).Return(false, nil)
			},
			errContains: "not a valid GnuCash book",
		},
		{
			name: "parse error",
			setup: func(m *MockFullParser) {
				m.On("ParseFile", path).Return(nil, errors.New("bad split"))
			},
			errContains: "error parsing file: bad split",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockFullParser{}
			m.On("SetLogger", logger).Return()
			tt.setup(m)

			got, err := common.LoadBook(m, path, tt.validate, logger)
			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Same(t, book, got)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestLoadBook_MissingFile(t *testing.T) {
	m := &MockFullParser{}
	m.On("SetLogger", mock.Anything).Return()

	_, err := common.LoadBook(m, filepath.Join(t.TempDir(), "missing.gnucash"), true, logging.NewMockLogger())
	assert.ErrorContains(t, err, "path does not exist")
	m.AssertNotCalled(t, "ParseFile", mock.Anything)
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, "html", common.ResolveFormat("html", "json"))
	assert.Equal(t, "json", common.ResolveFormat("", "json"))
	assert.Equal(t, "text", common.ResolveFormat("", ""))
}

func TestWriteReport(t *testing.T) {
	b := models.NewBook("b", models.NewCommodity("ISO4217", "USD", ""))
	require.NoError(t, b.AddAccount(models.NewAccount("root", "Root Account", models.AccountTypeRoot, "")))
	require.NoError(t, b.Validate())
	bs := report.NewBalanceSheet(b, []time.Time{dateutils.YearEnd(2011)})
	logger := logging.NewMockLogger()
	gen := report.NewReportGenerator(logger)

	var buf bytes.Buffer
	require.NoError(t, common.WriteReport(&buf, gen, bs, "text", "", "", logger))
	assert.Equal(t, bs.Text()+"\n", buf.String())

	out := filepath.Join(t.TempDir(), "out", "balance.html")
	buf.Reset()
	require.NoError(t, common.WriteReport(&buf, gen, bs, "html", "Balance", out, logger))
	assert.Empty(t, buf.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<caption>Balance</caption>")
	assert.True(t, logger.HasEntry("INFO", "Report written"))

	assert.Error(t, common.WriteReport(&buf, gen, bs, "pdf", "", "", logger))
}

func TestParseRange(t *testing.T) {
	start, end, err := common.ParseRange("", "")
	require.NoError(t, err)
	assert.Equal(t, dateutils.MinDate, start)
	assert.Equal(t, dateutils.MaxDate, end)

	start, end, err = common.ParseRange("2011-01-01", "31.12.2011")
	require.NoError(t, err)
	assert.Equal(t, dateutils.FirstDateOfMonth(2011, time.January), start)
	assert.Equal(t, dateutils.YearEnd(2011), end)

	_, _, err = common.ParseRange("yesterday", "")
	assert.ErrorContains(t, err, "invalid --from")

	_, _, err = common.ParseRange("2012-01-01", "2011-01-01")
	assert.ErrorContains(t, err, "is after")
}
