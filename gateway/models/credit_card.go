package models

import "github.com/alovak/merchant-gateways/internal/cardnum"

// CreditCard carries the card and cardholder details for one transaction.
// Same lifecycle as TransactionRequest: caller-owned, read-only during the
// adapter call.
type CreditCard struct {
	CardNumber      string
	ExpirationMonth int
	ExpirationYear  int
	// CardCode is the card verification value (CVV2/CVC2).
	CardCode string

	FirstName   string
	LastName    string
	CompanyName string

	Email string
	Phone string
	Fax   string

	StreetAddress1 string
	StreetAddress2 string
	City           string
	State          string
	PostalCode     string
	CountryCode    string

	CustomerID    string
	CustomerTaxID string

	Comments string
}

// NumbersOnlyCardNumber returns the card number reduced to digits.
func (c *CreditCard) NumbersOnlyCardNumber() string {
	return cardnum.NumbersOnly(c.CardNumber)
}

// MaskedCardNumber returns a log-safe form of the card number.
func (c *CreditCard) MaskedCardNumber() string {
	return cardnum.Mask(c.CardNumber)
}
