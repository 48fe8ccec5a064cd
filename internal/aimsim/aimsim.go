// Package aimsim is a local stand-in for the Authorize.Net AIM endpoint. It
// speaks the delimited-and-encapsulated response format so adapters can be
// exercised end to end without touching the real gateway.
//
// Outcomes are selected by the cents of x_amount, sandbox style:
//
//	.05 declines, .27 declines with AVS mismatch, .34 returns the
//	duplicate-window configuration error, .53 holds for review; anything
//	else approves.
package aimsim

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alovak/merchant-gateways/internal/cardnum"
	"github.com/alovak/merchant-gateways/internal/expiry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

const responseFields = 68

// Simulator serves the transact endpoint.
type Simulator struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Simulator {
	return &Simulator{
		logger: logger.With(slog.String("app", "aim-sim")),
	}
}

func (s *Simulator) AppendRoutes(r chi.Router) {
	r.Post("/gateway/transact.dll", s.transact)
}

// outcome is one simulated gateway verdict.
type outcome struct {
	responseCode string
	reasonCode   string
	reasonText   string
}

func (s *Simulator) transact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	delim := firstChar(r.PostFormValue("x_delim_char"), '|')
	encap := firstChar(r.PostFormValue("x_encap_char"), '`')

	result := s.evaluate(r)

	fields := make([]string, responseFields)
	fields[0] = result.responseCode
	fields[1] = "1" // response subcode, constant in the AIM format
	fields[2] = result.reasonCode
	fields[3] = result.reasonText
	if result.responseCode == "1" || result.responseCode == "4" {
		fields[4] = strings.ToUpper(uuid.New().String()[:6])
	}
	fields[5] = avsFor(r)
	fields[6] = fmt.Sprint(uuid.New().ID())
	if r.PostFormValue("x_card_code") != "" {
		fields[38] = "M"
	}

	s.logger.Info("transaction simulated",
		slog.String("x_type", r.PostFormValue("x_type")),
		slog.String("response_code", result.responseCode),
		slog.String("reason_code", result.reasonCode),
	)

	var sb strings.Builder
	for i, value := range fields {
		if i > 0 {
			sb.WriteByte(delim)
		}
		sb.WriteByte(encap)
		sb.WriteString(value)
		sb.WriteByte(encap)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(sb.String()))
}

func (s *Simulator) evaluate(r *http.Request) outcome {
	if r.PostFormValue("x_login") == "" || r.PostFormValue("x_tran_key") == "" {
		return outcome{"3", "13", "The merchant login ID or password is invalid or the account is inactive."}
	}

	switch r.PostFormValue("x_type") {
	case "AUTH_ONLY", "AUTH_CAPTURE":
	default:
		return outcome{"3", "53", "The transaction type was invalid."}
	}

	amount, err := decimal.NewFromString(r.PostFormValue("x_amount"))
	if err != nil || amount.Sign() <= 0 {
		return outcome{"3", "5", "A valid amount is required."}
	}

	if err := cardnum.ValidatePAN(r.PostFormValue("x_card_num")); err != nil {
		return outcome{"3", "6", "The credit card number is invalid."}
	}

	month, year, err := expiry.ParseMMYY(r.PostFormValue("x_exp_date"))
	if err != nil {
		return outcome{"3", "7", "The credit card expiration date is invalid."}
	}
	if expiry.Expired(month, year, time.Now()) {
		return outcome{"3", "8", "The credit card has expired."}
	}

	switch cents(amount) {
	case 5:
		return outcome{"2", "2", "This transaction has been declined."}
	case 27:
		return outcome{"2", "27", "The transaction resulted in an AVS mismatch."}
	case 34:
		return outcome{"2", "34", "The VITAL identification numbers are incorrect or the account is inactive."}
	case 53:
		return outcome{"4", "253", "Your order has been received and is pending review."}
	}

	return outcome{"1", "1", "This transaction has been approved."}
}

func cents(amount decimal.Decimal) int {
	return int(amount.Mul(decimal.NewFromInt(100)).Mod(decimal.NewFromInt(100)).IntPart())
}

func avsFor(r *http.Request) string {
	if r.PostFormValue("x_zip") == "" {
		return "B"
	}
	return "Y"
}

func firstChar(s string, def byte) byte {
	if s == "" {
		return def
	}
	return s[0]
}
