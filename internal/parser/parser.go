package parser

import (
	"io"

	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"
)

// BookParser turns a ledger document into a fully linked Book.
// Implementations return the typed errors of the parsererror package and never
// return a partially built Book.
type BookParser interface {
	Parse(r io.Reader) (*models.Book, error)
}

// FileParser parses a ledger stored on disk.
type FileParser interface {
	ParseFile(path string) (*models.Book, error)
}

// FormatValidator checks whether a file looks like a ledger it can parse.
type FormatValidator interface {
	ValidateFormat(path string) (bool, error)
}

// LoggerConfigurable is implemented by parsers whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser combines every parser capability.
type FullParser interface {
	BookParser
	FileParser
	FormatValidator
	LoggerConfigurable
}
