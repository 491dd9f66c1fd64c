package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
		expected  time.Time
	}{
		{"with offset", "2010-01-05 00:00:00 -0500", false, time.Date(2010, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"without offset", "2011-12-31 23:59:59", false, time.Date(2011, 12, 31, 23, 59, 59, 0, time.UTC)},
		{"surrounding whitespace", "\n  2012-02-29 10:30:00 +0100\n", false, time.Date(2012, 2, 29, 10, 30, 0, 0, time.UTC)},
		{"too short", "2010-01-05", true, time.Time{}},
		{"garbage", "not a timestamp at all", true, time.Time{}},
		{"empty", "", true, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestInRange(t *testing.T) {
	start := time.Date(2011, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2011, 3, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, InRange(start, start, end), "start is inclusive")
	assert.True(t, InRange(time.Date(2011, 3, 31, 23, 59, 59, 0, time.UTC), start, end), "end day is inclusive regardless of time")
	assert.False(t, InRange(time.Date(2011, 2, 28, 23, 59, 59, 0, time.UTC), start, end))
	assert.False(t, InRange(time.Date(2011, 4, 1, 0, 0, 0, 0, time.UTC), start, end))
	assert.True(t, InRange(start, MinDate, MaxDate))
}

func TestLastDateOfMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2011, time.January, 31},
		{2011, time.February, 28},
		{2012, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2011, time.April, 30},
		{2011, time.December, 31},
	}

	for _, tc := range tests {
		got := LastDateOfMonth(tc.year, tc.month)
		assert.Equal(t, tc.expected, got.Day(), "%d-%02d", tc.year, tc.month)
		assert.Equal(t, tc.month, got.Month())
	}
}

func TestMonthsOf(t *testing.T) {
	periods := MonthsOf(2012)
	require.Len(t, periods, 12)

	for i, p := range periods {
		assert.Equal(t, time.Month(i+1), p.Start.Month())
		assert.Equal(t, 1, p.Start.Day())
		assert.True(t, p.IsMonth())
		assert.Equal(t, time.Month(i+1).String(), p.Label())
	}
	assert.Equal(t, 29, periods[1].End.Day())
}

func TestPeriod(t *testing.T) {
	a := time.Date(2011, 5, 10, 12, 0, 0, 0, time.UTC)
	b := time.Date(2011, 5, 2, 0, 0, 0, 0, time.UTC)

	p := NewPeriod(a, b)
	assert.Equal(t, "2011-05-02_2011-05-10", p.String())
	assert.Equal(t, "2011-05-02 - 2011-05-10", p.Label())
	assert.False(t, p.IsMonth())
	assert.True(t, p.Contains(a))

	until := Until(a)
	assert.Equal(t, MinDate, until.Start)
	assert.True(t, until.Contains(b))
	assert.False(t, until.Contains(a.AddDate(0, 0, 1)))

	assert.Equal(t, "", Period{}.String())
}

func TestParseDateString(t *testing.T) {
	tests := []struct {
		input     string
		expectErr bool
	}{
		{"2011-12-31", false},
		{"31.12.2011", false},
		{"2011/12/31", false},
		{"12/31/2011", false},
		{"  2011-12-31  ", false},
		{"2011-12-31 10:11:12", false},
		{"", true},
		{"yesterday", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDateString(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, YearEnd(2011), got)
		})
	}
}

func TestCompareDates(t *testing.T) {
	morning := time.Date(2011, 1, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2011, 1, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CompareDates(morning, evening))
	assert.Equal(t, -1, CompareDates(morning, morning.AddDate(0, 0, 1)))
	assert.Equal(t, 1, CompareDates(morning, morning.AddDate(0, 0, -1)))
}
