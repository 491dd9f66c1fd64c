// Package validation checks command arguments and configuration values.
package validation

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"fjacquet/gnc-reports/internal/report"
)

// IsValidLedgerPath checks that path names an existing regular file.
func IsValidLedgerPath(path string) error {
	if path == "" {
		return fmt.Errorf("no ledger file given")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputFormat checks that format is one of allowed, or one of
// report.Formats when allowed is empty. The comparison ignores case.
func IsValidOutputFormat(format string, allowed ...string) error {
	if len(allowed) == 0 {
		allowed = report.Formats
	}
	if slices.Contains(allowed, strings.ToLower(format)) {
		return nil
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are '%s'", format, strings.Join(allowed, "', '"))
}

// IsValidYear accepts zero, which stands for the default year, and four-digit years.
func IsValidYear(year int) error {
	if year == 0 || (year >= 1000 && year <= 9999) {
		return nil
	}
	return fmt.Errorf("invalid year: %d", year)
}

// IsValidMonth accepts 1 to 12.
func IsValidMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month: %d (must be between 1 and 12)", month)
	}
	return nil
}

// IsValidDelimiter accepts exactly one character.
func IsValidDelimiter(delim string) error {
	if len([]rune(delim)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", delim)
	}
	return nil
}
