package gncparser

import (
	"fmt"
	"time"

	"fjacquet/gnc-reports/internal/currencyutils"
	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/parsererror"
	"fjacquet/gnc-reports/internal/xmlutils"
)

// buildBook converts the decoded document into a Book: commodity first, then the
// accounts in document order, then the transactions, then the root check.
func (p *Parser) buildBook(doc *models.GnuCashBook, source string) (*models.Book, error) {
	if doc.ID == "" {
		return nil, &parsererror.DataExtractionError{Entity: "book", FieldName: "book:id", Reason: "element missing or empty"}
	}

	commodity, err := p.bookCommodity(doc, source)
	if err != nil {
		return nil, err
	}
	book := models.NewBook(doc.ID, commodity)

	for i := range doc.Accounts {
		act, err := convertAccount(&doc.Accounts[i])
		if err != nil {
			return nil, err
		}
		if err := book.AddAccount(act); err != nil {
			return nil, fmt.Errorf("failed to register account: %w", err)
		}
	}

	for i := range doc.Transactions {
		trn, err := convertTransaction(&doc.Transactions[i])
		if err != nil {
			return nil, err
		}
		if err := book.AddTransaction(trn); err != nil {
			return nil, fmt.Errorf("failed to link transaction: %w", err)
		}
		if imbalance := trn.Imbalance(); !imbalance.IsZero() {
			p.GetLogger().Debug("Transaction is not balanced",
				logging.F(logging.FieldTransactionID, trn.ID),
				logging.F("imbalance", imbalance.String()))
		}
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}
	return book, nil
}

func (p *Parser) bookCommodity(doc *models.GnuCashBook, source string) (models.Commodity, error) {
	if len(doc.Commodities) == 0 {
		if p.strict {
			return models.Commodity{}, &parsererror.InvalidFormatError{
				FilePath:       source,
				ExpectedFormat: "gnc:commodity in gnc:book",
				Msg:            "book has no commodity",
			}
		}
		p.GetLogger().Warn("Book has no commodity", logging.F(logging.FieldBookID, doc.ID))
		return models.Commodity{}, nil
	}
	c := doc.Commodities[0]
	return models.NewCommodity(xmlutils.CleanText(c.Space), xmlutils.CleanText(c.ID), xmlutils.CleanText(c.QuoteSource)), nil
}

func convertAccount(a *models.GnuCashAccount) (*models.Account, error) {
	id := xmlutils.CleanText(a.ID)
	if id == "" {
		return nil, &parsererror.DataExtractionError{Entity: "account", FieldName: "act:id", Reason: "element missing or empty"}
	}
	act := models.NewAccount(id, a.Name, models.AccountType(xmlutils.CleanText(a.Type)), xmlutils.CleanText(a.Parent))
	act.Description = a.Description
	return act, nil
}

func convertTransaction(t *models.GnuCashTransaction) (*models.Transaction, error) {
	id := xmlutils.CleanText(t.ID)
	if id == "" {
		return nil, &parsererror.DataExtractionError{Entity: "transaction", FieldName: "trn:id", Reason: "element missing or empty"}
	}

	posted, err := parseTimestamp(id, "trn:date-posted", t.DatePosted)
	if err != nil {
		return nil, err
	}
	entered, err := parseTimestamp(id, "trn:date-entered", t.DateEntered)
	if err != nil {
		return nil, err
	}

	splits := make([]*models.Split, 0, len(t.Splits.Splits))
	for i := range t.Splits.Splits {
		split, err := convertSplit(&t.Splits.Splits[i])
		if err != nil {
			return nil, err
		}
		splits = append(splits, split)
	}

	currency := models.CommodityRef{Space: xmlutils.CleanText(t.Currency.Space), ID: xmlutils.CleanText(t.Currency.ID)}
	return models.NewTransaction(id, posted, entered, t.Description, currency, splits...), nil
}

func parseTimestamp(trnID, field string, ts *models.GnuCashTimestamp) (time.Time, error) {
	if ts == nil || ts.Date == "" {
		return time.Time{}, &parsererror.DataExtractionError{Entity: "transaction", ID: trnID, FieldName: field, Reason: "element missing or empty"}
	}
	t, err := dateutils.ParseTimestamp(ts.Date)
	if err != nil {
		return time.Time{}, &parsererror.ParseError{Parser: ParserName, Field: field, Value: ts.Date, Err: err}
	}
	return t, nil
}

func convertSplit(s *models.GnuCashSplit) (*models.Split, error) {
	id := xmlutils.CleanText(s.ID)

	value, err := currencyutils.ParseRational(s.Value)
	if err != nil {
		return nil, &parsererror.ParseError{Parser: ParserName, Field: "split:value", Value: s.Value, Err: err}
	}

	quantity := value
	if s.Quantity != "" {
		quantity, err = currencyutils.ParseRational(s.Quantity)
		if err != nil {
			return nil, &parsererror.ParseError{Parser: ParserName, Field: "split:quantity", Value: s.Quantity, Err: err}
		}
	}

	split := models.NewSplit(id, value, quantity, xmlutils.CleanText(s.Account))
	split.Memo = s.Memo
	split.ReconciledState = xmlutils.CleanText(s.ReconciledState)
	return split, nil
}
