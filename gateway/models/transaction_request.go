package models

import "github.com/shopspring/decimal"

// TransactionRequest describes one transaction to run against a gateway.
// It is constructed by the caller and read-only during the adapter call;
// adapters never mutate or persist it.
type TransactionRequest struct {
	TestMode bool

	// Amount is the base transaction amount. Tax, shipping and duty are
	// optional and, when valid, are added to Amount for the total sent to
	// the gateway.
	Amount         decimal.Decimal
	TaxAmount      decimal.NullDecimal
	ShippingAmount decimal.NullDecimal
	DutyAmount     decimal.NullDecimal
	TaxExempt      bool

	// Currency is the ISO 4217 currency code, e.g. "USD".
	Currency string

	// DuplicateWindow is the gateway's duplicate-detection window in seconds.
	DuplicateWindow int

	InvoiceNumber       string
	PurchaseOrderNumber string
	OrderNumber         string
	Description         string

	CustomerIP    string
	EmailCustomer bool
	MerchantEmail string

	ShippingFirstName      string
	ShippingLastName       string
	ShippingCompanyName    string
	ShippingStreetAddress1 string
	ShippingStreetAddress2 string
	ShippingCity           string
	ShippingState          string
	ShippingPostalCode     string
	ShippingCountryCode    string
}

// Total returns the amount to charge: base amount plus any tax, shipping
// and duty, computed with exact decimal arithmetic.
func (r *TransactionRequest) Total() decimal.Decimal {
	total := r.Amount
	if r.TaxAmount.Valid {
		total = total.Add(r.TaxAmount.Decimal)
	}
	if r.ShippingAmount.Valid {
		total = total.Add(r.ShippingAmount.Decimal)
	}
	if r.DutyAmount.Valid {
		total = total.Add(r.DutyAmount.Decimal)
	}
	return total
}
