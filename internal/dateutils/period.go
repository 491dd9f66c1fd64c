package dateutils

import (
	"fmt"
	"time"
)

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod creates a period from two dates. If start is after end they are swapped.
func NewPeriod(start, end time.Time) Period {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		start, end = end, start
	}
	return Period{Start: start, End: end}
}

// AllTime is the period covering every representable date.
func AllTime() Period {
	return Period{Start: MinDate, End: MaxDate}
}

// Until is the period from MinDate up to and including end.
func Until(end time.Time) Period {
	return Period{Start: MinDate, End: DateOf(end)}
}

// Month is the calendar month of year.
func Month(year int, month time.Month) Period {
	return Period{Start: FirstDateOfMonth(year, month), End: LastDateOfMonth(year, month)}
}

// MonthsOf returns the twelve calendar months of year, January first.
func MonthsOf(year int) []Period {
	periods := make([]Period, 0, 12)
	for m := time.January; m <= time.December; m++ {
		periods = append(periods, Month(year, m))
	}
	return periods
}

// Contains reports whether the calendar date of t lies within the period.
func (p Period) Contains(t time.Time) bool {
	return InRange(t, p.Start, p.End)
}

// IsMonth reports whether the period is exactly one calendar month.
func (p Period) IsMonth() bool {
	return p.Start.Day() == 1 && p.End.Equal(EndOfMonth(p.Start))
}

// Label names the period: the month name for a calendar month, "start - end" otherwise.
func (p Period) Label() string {
	if p.IsMonth() {
		return p.Start.Month().String()
	}
	return ToISODate(p.Start) + " - " + ToISODate(p.End)
}

// String returns the period in the format "YYYY-MM-DD_YYYY-MM-DD"
func (p Period) String() string {
	if p.Start.IsZero() || p.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", ToISODate(p.Start), ToISODate(p.End))
}
