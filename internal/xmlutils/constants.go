// Package xmlutils provides the XML helpers used to read GnuCash documents:
// namespace-qualified names, transparent gzip decompression and XPath probing.
package xmlutils

import "encoding/xml"

// NamespaceBase is the prefix shared by every GnuCash XML namespace URI.
const NamespaceBase = "http://www.gnucash.org/XML/"

// Namespace prefixes used by a GnuCash book.
const (
	PrefixGnc   = "gnc"
	PrefixBook  = "book"
	PrefixAct   = "act"
	PrefixTrn   = "trn"
	PrefixSplit = "split"
	PrefixTs    = "ts"
	PrefixCmdty = "cmdty"
	PrefixSlot  = "slot"
)

// NamespaceURI returns the URI bound to prefix in GnuCash documents.
func NamespaceURI(prefix string) string {
	return NamespaceBase + prefix
}

// QualifiedName resolves prefix:name to the fully qualified xml.Name that
// encoding/xml reports for that element. It has no hidden state.
func QualifiedName(prefix, name string) xml.Name {
	if prefix == "" {
		return xml.Name{Local: name}
	}
	return xml.Name{Space: NamespaceURI(prefix), Local: name}
}

// GnuCashXPaths holds the XPath expressions used to probe a GnuCash document.
// xmlpath matches local names only, so the namespace prefixes are omitted.
type GnuCashXPaths struct {
	Book           string
	BookID         string
	Commodity      string
	AccountID      string
	AccountName    string
	AccountType    string
	TransactionID  string
	SplitAccountID string
	CountData      string
}

// DefaultGnuCashXPaths returns the XPath expressions for a GnuCash v2 document.
func DefaultGnuCashXPaths() GnuCashXPaths {
	return GnuCashXPaths{
		Book:           "/gnc-v2/book",
		BookID:         "/gnc-v2/book/id",
		Commodity:      "/gnc-v2/book/commodity/id",
		AccountID:      "/gnc-v2/book/account/id",
		AccountName:    "/gnc-v2/book/account/name",
		AccountType:    "/gnc-v2/book/account/type",
		TransactionID:  "/gnc-v2/book/transaction/id",
		SplitAccountID: "/gnc-v2/book/transaction/splits/split/account",
		CountData:      "/gnc-v2/book/count-data",
	}
}
