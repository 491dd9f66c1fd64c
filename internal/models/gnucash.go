package models

import "encoding/xml"

// The types below mirror the subset of the GnuCash XML v2 schema read by the
// loader. Element names carry their full namespace URI, so decoding only matches
// the gnc, book, act, trn, split, ts and cmdty elements of a GnuCash document.
// Only direct children of gnc:book are decoded; template transactions nested in
// gnc:template-transactions are skipped.

// GnuCashBook is the gnc:book element.
type GnuCashBook struct {
	XMLName      xml.Name             `xml:"http://www.gnucash.org/XML/gnc book"`
	Version      string               `xml:"version,attr"`
	ID           string               `xml:"http://www.gnucash.org/XML/book id"`
	Commodities  []GnuCashCommodity   `xml:"http://www.gnucash.org/XML/gnc commodity"`
	Accounts     []GnuCashAccount     `xml:"http://www.gnucash.org/XML/gnc account"`
	Transactions []GnuCashTransaction `xml:"http://www.gnucash.org/XML/gnc transaction"`
}

// GnuCashCommodity is a gnc:commodity element.
type GnuCashCommodity struct {
	Space       string `xml:"http://www.gnucash.org/XML/cmdty space"`
	ID          string `xml:"http://www.gnucash.org/XML/cmdty id"`
	QuoteSource string `xml:"http://www.gnucash.org/XML/cmdty quote_source"`
}

// GnuCashCommodityRef is a commodity reference such as trn:currency or act:commodity.
type GnuCashCommodityRef struct {
	Space string `xml:"http://www.gnucash.org/XML/cmdty space"`
	ID    string `xml:"http://www.gnucash.org/XML/cmdty id"`
}

// GnuCashAccount is a gnc:account element.
type GnuCashAccount struct {
	Name        string               `xml:"http://www.gnucash.org/XML/act name"`
	ID          string               `xml:"http://www.gnucash.org/XML/act id"`
	Type        string               `xml:"http://www.gnucash.org/XML/act type"`
	Description string               `xml:"http://www.gnucash.org/XML/act description"`
	Commodity   *GnuCashCommodityRef `xml:"http://www.gnucash.org/XML/act commodity"`
	Parent      string               `xml:"http://www.gnucash.org/XML/act parent"`
}

// GnuCashTimestamp wraps the ts:date child of the date elements.
type GnuCashTimestamp struct {
	Date string `xml:"http://www.gnucash.org/XML/ts date"`
}

// GnuCashTransaction is a gnc:transaction element.
type GnuCashTransaction struct {
	ID          string              `xml:"http://www.gnucash.org/XML/trn id"`
	Currency    GnuCashCommodityRef `xml:"http://www.gnucash.org/XML/trn currency"`
	Num         string              `xml:"http://www.gnucash.org/XML/trn num"`
	DatePosted  *GnuCashTimestamp   `xml:"http://www.gnucash.org/XML/trn date-posted"`
	DateEntered *GnuCashTimestamp   `xml:"http://www.gnucash.org/XML/trn date-entered"`
	Description string              `xml:"http://www.gnucash.org/XML/trn description"`
	Splits      GnuCashSplitList    `xml:"http://www.gnucash.org/XML/trn splits"`
}

// GnuCashSplitList is the trn:splits element.
type GnuCashSplitList struct {
	Splits []GnuCashSplit `xml:"http://www.gnucash.org/XML/trn split"`
}

// GnuCashSplit is a trn:split element.
type GnuCashSplit struct {
	ID              string `xml:"http://www.gnucash.org/XML/split id"`
	Memo            string `xml:"http://www.gnucash.org/XML/split memo"`
	ReconciledState string `xml:"http://www.gnucash.org/XML/split reconciled-state"`
	Value           string `xml:"http://www.gnucash.org/XML/split value"`
	Quantity        string `xml:"http://www.gnucash.org/XML/split quantity"`
	Account         string `xml:"http://www.gnucash.org/XML/split account"`
}
