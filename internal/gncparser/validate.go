package gncparser

import (
	"fmt"
	"os"

	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/parsererror"
	"fjacquet/gnc-reports/internal/xmlutils"
)

// Probe summarises the structure of a GnuCash file without building a Book.
type Probe struct {
	BookCount        int
	BookID           string
	Commodity        string
	AccountCount     int
	RootAccountCount int
	TransactionCount int
	SplitCount       int
}

// Valid reports whether the probe found exactly one book with exactly one root account.
func (pr *Probe) Valid() bool {
	return pr.BookCount == 1 && pr.RootAccountCount == 1
}

// ProbeFile inspects the file at path with XPath queries. Files that are not
// well-formed XML yield a ValidationError.
func ProbeFile(path string) (*Probe, error) {
	root, err := xmlutils.LoadXMLFile(path)
	if err != nil {
		return nil, &parsererror.ValidationError{FilePath: path, Reason: err.Error()}
	}

	paths := xmlutils.DefaultGnuCashXPaths()
	probe := &Probe{}
	counts := []struct {
		xpath  string
		target *int
	}{
		{paths.Book, &probe.BookCount},
		{paths.AccountID, &probe.AccountCount},
		{paths.TransactionID, &probe.TransactionCount},
		{paths.SplitAccountID, &probe.SplitCount},
	}
	for _, c := range counts {
		n, err := xmlutils.CountNodes(root, c.xpath)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", c.xpath, err)
		}
		*c.target = n
	}

	ids, err := xmlutils.ExtractFromXML(root, paths.BookID)
	if err != nil {
		return nil, err
	}
	probe.BookID = xmlutils.GetOrEmpty(ids, 0)

	commodities, err := xmlutils.ExtractFromXML(root, paths.Commodity)
	if err != nil {
		return nil, err
	}
	probe.Commodity = xmlutils.CleanText(xmlutils.GetOrEmpty(commodities, 0))

	types, err := xmlutils.ExtractFromXML(root, paths.AccountType)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		if xmlutils.CleanText(t) == "ROOT" {
			probe.RootAccountCount++
		}
	}
	return probe, nil
}

// ValidateFormat reports whether path holds a GnuCash book this parser can read.
// A missing file is an error; a file of another format is reported as false.
func (p *Parser) ValidateFormat(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return false, fmt.Errorf("cannot access ledger file: %w", err)
	}

	probe, err := ProbeFile(path)
	if err != nil {
		p.GetLogger().WithError(err).Debug("File is not a GnuCash book", logging.F(logging.FieldFile, path))
		return false, nil
	}
	return probe.Valid(), nil
}
