// Package gncparser loads GnuCash XML books, gzip-compressed or not, into a
// linked models.Book.
package gncparser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/parser"
	"fjacquet/gnc-reports/internal/parsererror"
	"fjacquet/gnc-reports/internal/xmlutils"
)

// ParserName identifies this parser in errors and logs.
const ParserName = "GnuCash"

// Parser reads GnuCash XML books.
type Parser struct {
	parser.BaseParser
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes a book without commodity a load failure instead of a warning.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a strict GnuCash parser.
func NewParser(logger logging.Logger, opts ...Option) *Parser {
	p := &Parser{
		BaseParser: parser.NewBaseParser(ParserName, logger),
		strict:     true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Strict reports whether a missing commodity aborts the load.
func (p *Parser) Strict() bool {
	return p.strict
}

// Parse reads a GnuCash document from r. Either a fully linked Book or an error
// is returned, never a partial Book.
func (p *Parser) Parse(r io.Reader) (*models.Book, error) {
	return p.parse(r, "")
}

// ParseFile reads the GnuCash book stored at path.
func (p *Parser) ParseFile(path string) (*models.Book, error) {
	p.GetLogger().Info("Parsing GnuCash file", logging.F(logging.FieldFile, path))

	// #nosec G304 -- reading user-specified ledger files is expected
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.GetLogger().WithError(err).Warn("Failed to close file", logging.F(logging.FieldFile, path))
		}
	}()

	book, err := p.parse(file, path)
	if err != nil {
		return nil, err
	}
	p.LogBookLoaded(book, path)
	return book, nil
}

func (p *Parser) parse(r io.Reader, source string) (*models.Book, error) {
	rc, err := xmlutils.Decompress(r)
	if err != nil {
		return nil, &parsererror.ParseError{Parser: ParserName, Field: "gzip stream", Value: source, Err: err}
	}
	defer func() {
		_ = rc.Close()
	}()

	doc, err := decodeBook(rc, source)
	if err != nil {
		return nil, err
	}
	return p.buildBook(doc, source)
}

var bookName = xmlutils.QualifiedName(xmlutils.PrefixGnc, "book")

// decodeBook streams the document and decodes its single gnc:book element.
func decodeBook(r io.Reader, source string) (*models.GnuCashBook, error) {
	decoder := xml.NewDecoder(r)

	var doc *models.GnuCashBook
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &parsererror.ParseError{Parser: ParserName, Field: "XML document", Value: source, Err: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name != bookName {
			continue
		}
		if doc != nil {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       source,
				ExpectedFormat: "GnuCash XML with a single gnc:book",
				Msg:            "document contains more than one gnc:book element",
			}
		}
		doc = &models.GnuCashBook{}
		if err := decoder.DecodeElement(doc, &start); err != nil {
			return nil, &parsererror.ParseError{Parser: ParserName, Field: "gnc:book", Value: source, Err: err}
		}
	}

	if doc == nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: "GnuCash XML with a single gnc:book",
			Msg:            "no gnc:book element found",
		}
	}
	return doc, nil
}
