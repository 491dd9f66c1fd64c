// Package factory creates ledger parsers by type.
package factory

import (
	"fmt"
	"strings"

	"fjacquet/gnc-reports/internal/gncparser"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/parser"
)

// ParserType defines the types of parsers available.
type ParserType string

const (
	// GnuCash parses GnuCash XML books and fails on a book without commodity.
	GnuCash ParserType = "gnucash"
	// GnuCashLenient parses GnuCash XML books and only warns on a missing commodity.
	GnuCashLenient ParserType = "gnucash-lenient"
)

// ParserTypes lists every known parser type.
var ParserTypes = []ParserType{GnuCash, GnuCashLenient}

// ParseParserType converts a user supplied name into a ParserType.
func ParseParserType(name string) (ParserType, error) {
	pt := ParserType(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range ParserTypes {
		if pt == known {
			return pt, nil
		}
	}
	return "", fmt.Errorf("unknown parser type: %s", name)
}

// GetParserWithLogger returns a new parser of the given type using logger.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (parser.FullParser, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	switch parserType {
	case GnuCash:
		return gncparser.NewParser(logger, gncparser.WithStrict(true)), nil
	case GnuCashLenient:
		return gncparser.NewParser(logger, gncparser.WithStrict(false)), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}

// ParserTypeFor returns the parser type matching the strict setting.
func ParserTypeFor(strict bool) ParserType {
	if strict {
		return GnuCash
	}
	return GnuCashLenient
}
