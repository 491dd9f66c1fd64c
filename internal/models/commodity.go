package models

import (
	"fjacquet/gnc-reports/internal/currencyutils"

	"github.com/Rhymond/go-money"
)

// CommodityRef identifies a commodity by namespace and symbol without resolving it.
type CommodityRef struct {
	Space string `json:"space" yaml:"space"`
	ID    string `json:"id" yaml:"id"`
}

// IsCurrency reports whether the reference names an ISO 4217 currency.
func (c CommodityRef) IsCurrency() bool {
	return c.Space == CommoditySpaceISO4217 || c.Space == CommoditySpaceCurrency
}

func (c CommodityRef) String() string {
	if c.Space == "" {
		return c.ID
	}
	return c.Space + ":" + c.ID
}

// Commodity is the default currency or security of a book.
type Commodity struct {
	CommodityRef
	QuoteSource string `json:"quote_source,omitempty" yaml:"quote_source,omitempty"`
}

// NewCommodity creates a commodity descriptor.
func NewCommodity(space, id, quoteSource string) Commodity {
	return Commodity{
		CommodityRef: CommodityRef{Space: space, ID: id},
		QuoteSource:  quoteSource,
	}
}

// Currency returns the ISO 4217 currency of the commodity, or nil when the
// commodity is not a known currency.
func (c Commodity) Currency() *money.Currency {
	if !c.IsCurrency() {
		return nil
	}
	return currencyutils.LookupCurrency(c.ID)
}

// Symbol returns the display symbol of the commodity (for example "$" for USD).
func (c Commodity) Symbol() string {
	if cur := c.Currency(); cur != nil && cur.Grapheme != "" {
		return cur.Grapheme
	}
	return c.ID
}
