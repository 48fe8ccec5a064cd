package authorizenet

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/alovak/merchant-gateways/gateway/models"
	"github.com/alovak/merchant-gateways/internal/cardnum"
	"github.com/alovak/merchant-gateways/internal/expiry"
	"github.com/shopspring/decimal"
)

// query builds the form-encoded request body. AIM mandates the field order,
// so fields are appended rather than collected in url.Values.
type query struct {
	sb strings.Builder
}

// add appends a field if the value is non-empty after delimiter stripping
// and trimming. Empty fields are omitted entirely, never sent blank.
func (q *query) add(name, value string) {
	value = strings.TrimSpace(stripDelimiters(value))
	if value == "" {
		return
	}
	q.addRaw(name, value)
}

// addRaw appends a field unconditionally, with no stripping or trimming.
// Used for the delimiter and encapsulation characters themselves.
func (q *query) addRaw(name, value string) {
	if q.sb.Len() > 0 {
		q.sb.WriteByte('&')
	}
	q.sb.WriteString(url.QueryEscape(name))
	q.sb.WriteByte('=')
	q.sb.WriteString(url.QueryEscape(value))
}

func (q *query) addInt(name string, value int) {
	q.add(name, strconv.Itoa(value))
}

func (q *query) String() string {
	return q.sb.String()
}

// stripDelimiters removes the response delimiter and encapsulation
// characters from an outgoing value, so they can never appear inside a
// response field.
func stripDelimiters(value string) string {
	if !strings.ContainsAny(value, string(delimChar)+string(encapChar)) {
		return value
	}
	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] != delimChar && value[i] != encapChar {
			sb.WriteByte(value[i])
		}
	}
	return sb.String()
}

// streetAddress combines the two street address lines into a single value.
func streetAddress(line1, line2 string) string {
	return strings.TrimSpace(strings.TrimSpace(line1) + " " + strings.TrimSpace(line2))
}

// amountString renders a monetary value at its stored scale. Decimal.String
// trims trailing zeros, which would turn 12.50 into "12.5" on the wire.
func amountString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func boolField(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// encodeRequest converts a transaction request and card into the AIM field
// set and serializes it to a transport-ready body. Pure function of its
// inputs; the only failure mode is local validation.
func encodeRequest(cfg Config, req *models.TransactionRequest, card *models.CreditCard, txType string) (string, error) {
	// The AIM dialect settles in US dollars only.
	if req.Currency != "USD" {
		return "", &codedError{
			code: models.ErrorCodeInvalidCurrencyCode,
			msg:  "currency must be USD, got " + req.Currency,
		}
	}

	q := &query{}

	// Merchant information
	q.add("x_login", cfg.Login)
	q.add("x_tran_key", cfg.TransactionKey)
	q.add("x_allow_partial_Auth", "False")
	// API information
	q.add("x_version", apiVersion)
	q.add("x_relay_response", "FALSE")
	q.add("x_delim_data", "TRUE")
	q.addRaw("x_delim_char", string(delimChar))
	q.addRaw("x_encap_char", string(encapChar))
	// Transaction information
	q.add("x_type", txType)
	q.add("x_method", "CC")
	q.add("x_amount", amountString(req.Total()))
	q.add("x_card_num", card.NumbersOnlyCardNumber())
	q.add("x_exp_date", expiry.MMYY(card.ExpirationMonth, card.ExpirationYear))
	q.add("x_card_code", card.CardCode)
	if req.TestMode {
		q.add("x_test_request", "TRUE")
	}
	q.addInt("x_duplicate_window", req.DuplicateWindow)
	q.add("x_invoice_num", req.InvoiceNumber)
	q.add("x_description", req.Description)
	// Customer information
	q.add("x_first_name", card.FirstName)
	q.add("x_last_name", card.LastName)
	q.add("x_company", card.CompanyName)
	q.add("x_address", streetAddress(card.StreetAddress1, card.StreetAddress2))
	q.add("x_city", card.City)
	q.add("x_state", card.State)
	q.add("x_zip", cardnum.NumbersOnly(card.PostalCode))
	q.add("x_country", card.CountryCode)
	q.add("x_phone", card.Phone)
	q.add("x_fax", card.Fax)
	q.add("x_email", card.Email)
	q.add("x_email_customer", boolField(req.EmailCustomer))
	q.add("x_merchant_email", req.MerchantEmail)
	q.add("x_cust_id", card.CustomerID)
	q.add("x_customer_ip", req.CustomerIP)
	// Shipping information
	q.add("x_ship_to_first_name", req.ShippingFirstName)
	q.add("x_ship_to_last_name", req.ShippingLastName)
	q.add("x_ship_to_company", req.ShippingCompanyName)
	q.add("x_ship_to_address", streetAddress(req.ShippingStreetAddress1, req.ShippingStreetAddress2))
	q.add("x_ship_to_city", req.ShippingCity)
	q.add("x_ship_to_state", req.ShippingState)
	q.add("x_ship_to_zip", cardnum.NumbersOnly(req.ShippingPostalCode))
	q.add("x_ship_to_country", req.ShippingCountryCode)
	// Additional shipping information
	if req.TaxAmount.Valid {
		q.add("x_tax", amountString(req.TaxAmount.Decimal))
	}
	if req.ShippingAmount.Valid {
		q.add("x_freight", amountString(req.ShippingAmount.Decimal))
	}
	if req.DutyAmount.Valid {
		q.add("x_duty", amountString(req.DutyAmount.Decimal))
	}
	q.add("x_tax_exempt", boolField(req.TaxExempt))
	q.add("x_customer_tax_id", card.CustomerTaxID)
	q.add("x_po_num", req.PurchaseOrderNumber)
	// Merchant-defined fields
	q.add("order_number", req.OrderNumber)
	q.add("card_comments", card.Comments)

	return q.String(), nil
}
