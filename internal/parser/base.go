// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"
)

// BaseParser holds what every parser implementation shares. Parsers embed it:
//
//	type GnuCashParser struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	name   string
	logger logging.Logger
}

// NewBaseParser creates a BaseParser for the parser called name. A nil logger is
// replaced by a default logrus logger.
func NewBaseParser(name string, logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", logging.FormatText)
	}
	return BaseParser{
		name:   name,
		logger: logger.WithField(logging.FieldParser, name),
	}
}

// Name returns the parser name used in errors and logs.
func (b *BaseParser) Name() string {
	return b.name
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger.WithField(logging.FieldParser, b.name)
	}
}

// GetLogger returns the current logger.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// LogBookLoaded reports the size of a freshly loaded book.
func (b *BaseParser) LogBookLoaded(book *models.Book, source string) {
	b.logger.Info("Book loaded",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldBookID, book.ID),
		logging.F("accounts", len(book.Accounts())),
		logging.F("transactions", len(book.Transactions())))
}
