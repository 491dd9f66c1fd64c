// Package common provides the CSV plumbing shared by the report exporters.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/gnc-reports/internal/logging"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// ParseDelimiter returns the first rune of value, or DefaultDelimiter when value is empty.
func ParseDelimiter(value string) rune {
	if value == "" {
		return DefaultDelimiter
	}
	return []rune(value)[0]
}

// WriteCSV marshals rows, a slice of csv-tagged structs, to w using delim as
// field separator. A header line is always written.
func WriteCSV(w io.Writer, rows any, delim rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delim

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes rows to csvFile, creating its directory when needed.
func WriteCSVFile(csvFile string, rows any, delim rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, rows, delim); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return err
	}

	logger.Info("Successfully wrote CSV file",
		logging.F(logging.FieldFile, csvFile),
		logging.F(logging.FieldDelimiter, string(delim)))
	return nil
}

// ReadCSV reads csv-tagged rows from r using delim as field separator.
func ReadCSV[TCSVRow any](r io.Reader, delim rune) ([]TCSVRow, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delim

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// ReadCSVFile reads CSV data from filePath into a slice of structs.
func ReadCSVFile[TCSVRow any](filePath string, delim rune, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Debug("Reading CSV file", logging.F(logging.FieldFile, filePath))

	file, err := os.Open(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadCSV[TCSVRow](file, delim)
	if err != nil {
		return nil, err
	}
	logger.Debug("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}
