// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// TimestampLength is the number of leading characters of a GnuCash timestamp
// that carry the date and time. The timezone offset that may follow is ignored.
const TimestampLength = len(DateLayoutFull)

var (
	// MinDate is the lower bound used for open-ended date windows.
	MinDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	// MaxDate is the upper bound used for open-ended date windows.
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

var spaces = regexp.MustCompile(`\s+`)

// ParseTimestamp parses a GnuCash timestamp such as "2010-01-05 00:00:00 -0500".
// Only the first TimestampLength characters are read and the result is in UTC,
// truncated to whole seconds.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < TimestampLength {
		return time.Time{}, fmt.Errorf("timestamp too short: %q", s)
	}
	t, err := time.ParseInLocation(DateLayoutFull, s[:TimestampLength], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// DateOf strips the time of day, keeping the calendar date in UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InRange reports whether the calendar date of t lies in [start, end], both ends included.
func InRange(t, start, end time.Time) bool {
	d := DateOf(t)
	return !d.Before(DateOf(start)) && !d.After(DateOf(end))
}

// CompareDates compares two dates and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	return DateOf(date1).Compare(DateOf(date2))
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// FirstDateOfMonth returns the first calendar day of month in year.
func FirstDateOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDateOfMonth returns the last calendar day of month in year (28 to 31, leap-year aware).
func LastDateOfMonth(year int, month time.Month) time.Time {
	return EndOfMonth(FirstDateOfMonth(year, month))
}

// YearEnd returns December 31st of year.
func YearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDateString attempts to parse a date string using the formats accepted on the command line.
// Returns the parsed date in UTC or an error if no format matches.
func ParseDateString(dateStr string) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	formats := []string{
		DateLayoutISO,      // YYYY-MM-DD
		DateLayoutFull,     // YYYY-MM-DD HH:MM:SS
		DateLayoutEuropean, // DD.MM.YYYY
		"2006/01/02",       // YYYY/MM/DD
		DateLayoutUS,       // MM/DD/YYYY
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, cleanDate, time.UTC); err == nil {
			return DateOf(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
