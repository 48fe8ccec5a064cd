// Package gateway defines the provider-neutral contract that every payment
// gateway adapter in this module implements. Callers hold a Provider and stay
// unaware of the wire dialect behind it.
package gateway

import (
	"context"
	"fmt"

	"github.com/alovak/merchant-gateways/gateway/models"
)

// ErrNotImplemented is returned by operations the gateway dialect defines but
// this adapter does not implement.
var ErrNotImplemented = fmt.Errorf("not implemented by this provider")

// ErrUnsupported is returned by operations the gateway itself does not
// support, such as card tokenization on dialects without card storage.
var ErrUnsupported = fmt.Errorf("not supported by this provider")

// Provider is the capability set of a merchant services gateway. Adapters
// implement every method; capabilities the gateway lacks return
// ErrNotImplemented or ErrUnsupported explicitly rather than being omitted,
// so callers get a uniform contract across gateways.
//
// Authorize and Sale never return an error: every failure mode is folded
// into the result's CommunicationResult so the caller always has a
// structured outcome to branch on.
type Provider interface {
	// ProviderID identifies this configured provider instance.
	ProviderID() string

	// Authorize requests an authorization hold without capture.
	Authorize(ctx context.Context, req *models.TransactionRequest, card *models.CreditCard) *models.AuthorizationResult

	// Sale authorizes and captures in a single round trip.
	Sale(ctx context.Context, req *models.TransactionRequest, card *models.CreditCard) *models.SaleResult

	// Capture settles a previously authorized transaction.
	Capture(ctx context.Context, auth *models.AuthorizationResult) (*models.CaptureResult, error)

	// Void cancels a transaction that has not yet settled.
	Void(ctx context.Context, tx *models.Transaction) (*models.VoidResult, error)

	// Credit refunds funds to a card.
	Credit(ctx context.Context, req *models.TransactionRequest, card *models.CreditCard) (*models.CreditResult, error)

	// CanStoreCreditCards reports whether the gateway offers card storage.
	CanStoreCreditCards() bool

	StoreCreditCard(ctx context.Context, card *models.CreditCard) (string, error)
	UpdateCreditCard(ctx context.Context, card *models.CreditCard) error
	UpdateCreditCardNumberAndExpiration(ctx context.Context, card *models.CreditCard, cardNumber string, expirationMonth, expirationYear int, cardCode string) error
	UpdateCreditCardExpiration(ctx context.Context, card *models.CreditCard, expirationMonth, expirationYear int) error
	DeleteCreditCard(ctx context.Context, card *models.CreditCard) error

	// CanGetTokenizedCreditCards reports whether stored cards can be listed.
	CanGetTokenizedCreditCards() bool

	GetTokenizedCreditCards(ctx context.Context) (map[string]models.TokenizedCreditCard, error)
}
