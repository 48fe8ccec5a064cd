// Package authorizenet implements the gateway.Provider contract for the
// Authorize.Net AIM dialect: a form-encoded HTTPS POST request and a
// delimited, encapsulated text response.
//
// Configuration parameters:
//
//  1. Login - the merchant's unique API Login ID (x_login)
//  2. TransactionKey - the merchant's unique Transaction Key (x_tran_key)
package authorizenet

import (
	"context"
	"errors"

	"github.com/alovak/merchant-gateways/gateway"
	"github.com/alovak/merchant-gateways/gateway/models"
	"github.com/alovak/merchant-gateways/internal/formpost"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	delimChar = '|'
	encapChar = '`'

	apiVersion = "3.1"

	// ProductionURL is the AIM production endpoint.
	ProductionURL = "https://secure.authorize.net/gateway/transact.dll"

	typeAuthOnly    = "AUTH_ONLY"
	typeAuthCapture = "AUTH_CAPTURE"
)

// Config is a configuration for the Authorize.Net provider.
type Config struct {
	// ProviderID identifies this configured provider instance to callers.
	ProviderID string
	// Login is the merchant's API Login ID.
	Login string
	// TransactionKey is the merchant's Transaction Key.
	TransactionKey string
	// GatewayURL overrides the production endpoint, e.g. for a sandbox or a
	// local simulator. Empty means ProductionURL.
	GatewayURL string
}

// Transport performs the blocking HTTP POST for one gateway call. The
// provider treats every transport failure uniformly; implementations own
// timeout policy.
type Transport interface {
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}

// Provider is the Authorize.Net AIM gateway adapter. It holds only immutable
// configuration and is safe for concurrent use.
type Provider struct {
	cfg       Config
	logger    *slog.Logger
	transport Transport
}

var _ gateway.Provider = (*Provider)(nil)

// NewProvider creates the AIM adapter. A nil transport gets the default
// formpost client.
func NewProvider(logger *slog.Logger, cfg Config, transport Transport) *Provider {
	logger = logger.With(slog.String("gateway", "authorizenet"), slog.String("provider_id", cfg.ProviderID))

	if cfg.GatewayURL == "" {
		cfg.GatewayURL = ProductionURL
	}
	if transport == nil {
		transport = formpost.NewClient(formpost.DefaultConfig())
	}

	return &Provider{
		cfg:       cfg,
		logger:    logger,
		transport: transport,
	}
}

func (p *Provider) ProviderID() string {
	return p.cfg.ProviderID
}

// codedError is a local validation failure carrying its symbolic error code.
type codedError struct {
	code models.ErrorCode
	msg  string
}

func (e *codedError) Error() string {
	return e.msg
}

// localErrorResult maps a request-build failure: nothing was sent.
func (p *Provider) localErrorResult(err error) *models.AuthorizationResult {
	code := models.ErrorCodeUnknown
	var coded *codedError
	if errors.As(err, &coded) {
		code = coded.code
	}

	return &models.AuthorizationResult{
		TransactionResult: models.TransactionResult{
			ProviderID:           p.cfg.ProviderID,
			CommunicationResult:  models.CommunicationResultLocalError,
			ProviderErrorCode:    string(code),
			ErrorCode:            code,
			ProviderErrorMessage: err.Error(),
		},
	}
}

// gatewayErrorResult maps a transport or decode failure: the gateway was
// reached (or reached for) but no classifiable response came back. Always
// the generic retryable error code; the caller owns retry policy.
func (p *Provider) gatewayErrorResult(err error) *models.AuthorizationResult {
	return &models.AuthorizationResult{
		TransactionResult: models.TransactionResult{
			ProviderID:           p.cfg.ProviderID,
			CommunicationResult:  models.CommunicationResultGatewayError,
			ProviderErrorCode:    string(models.ErrorCodeErrorTryAgain),
			ErrorCode:            models.ErrorCodeErrorTryAgain,
			ProviderErrorMessage: err.Error(),
		},
	}
}

// authorizeOrSale runs the full pipeline: encode, post, decode, classify.
// Each stage's failure mode is mapped here, centrally, to the outcome
// taxonomy; no failure escapes as an error.
func (p *Provider) authorizeOrSale(ctx context.Context, req *models.TransactionRequest, card *models.CreditCard, txType string) *models.AuthorizationResult {
	logger := p.logger.With(
		slog.String("request_id", uuid.New().String()),
		slog.String("x_type", txType),
		slog.String("card", card.MaskedCardNumber()),
	)

	body, err := encodeRequest(p.cfg, req, card, txType)
	if err != nil {
		logger.Error("building gateway request", "err", err)
		return p.localErrorResult(err)
	}

	logger.Debug("sending gateway request", slog.Int("body_bytes", len(body)))

	raw, err := p.transport.Post(ctx, p.cfg.GatewayURL, []byte(body))
	if err != nil {
		logger.Error("posting to gateway", "err", err)
		return p.gatewayErrorResult(err)
	}

	logger.Debug("received gateway response", slog.Int("response_bytes", len(raw)))

	fields, err := decodeResponse(string(raw))
	if err != nil {
		logger.Error("decoding gateway response", "err", err)
		return p.gatewayErrorResult(err)
	}

	result := classify(p.cfg.ProviderID, fields, card)

	logger.Info("gateway call classified",
		slog.String("communication_result", string(result.CommunicationResult)),
		slog.String("approval_result", string(result.ApprovalResult)),
		slog.String("transaction_id", result.ProviderUniqueID),
	)

	return result
}

// Authorize requests an authorization hold without capture.
func (p *Provider) Authorize(ctx context.Context, req *models.TransactionRequest, card *models.CreditCard) *models.AuthorizationResult {
	return p.authorizeOrSale(ctx, req, card, typeAuthOnly)
}

// Sale authorizes and captures in one round trip. The capture leg mirrors
// the authorization's communication result and error fields one-to-one,
// since this dialect captures in the same exchange.
func (p *Provider) Sale(ctx context.Context, req *models.TransactionRequest, card *models.CreditCard) *models.SaleResult {
	auth := p.authorizeOrSale(ctx, req, card, typeAuthCapture)

	return &models.SaleResult{
		AuthorizationResult: *auth,
		CaptureResult: models.CaptureResult{
			TransactionResult: models.TransactionResult{
				ProviderID:           auth.ProviderID,
				CommunicationResult:  auth.CommunicationResult,
				ProviderErrorCode:    auth.ProviderErrorCode,
				ErrorCode:            auth.ErrorCode,
				ProviderErrorMessage: auth.ProviderErrorMessage,
				ProviderUniqueID:     auth.ProviderUniqueID,
			},
		},
	}
}

// Capture is not implemented by the AIM dialect variant modeled here; sales
// capture in the authorization round trip.
func (p *Provider) Capture(ctx context.Context, auth *models.AuthorizationResult) (*models.CaptureResult, error) {
	return nil, gateway.ErrNotImplemented
}

func (p *Provider) Void(ctx context.Context, tx *models.Transaction) (*models.VoidResult, error) {
	return nil, gateway.ErrNotImplemented
}

func (p *Provider) Credit(ctx context.Context, req *models.TransactionRequest, card *models.CreditCard) (*models.CreditResult, error) {
	return nil, gateway.ErrNotImplemented
}

// CanStoreCreditCards reports false: AIM has no card storage.
func (p *Provider) CanStoreCreditCards() bool {
	return false
}

func (p *Provider) StoreCreditCard(ctx context.Context, card *models.CreditCard) (string, error) {
	return "", gateway.ErrUnsupported
}

func (p *Provider) UpdateCreditCard(ctx context.Context, card *models.CreditCard) error {
	return gateway.ErrUnsupported
}

func (p *Provider) UpdateCreditCardNumberAndExpiration(ctx context.Context, card *models.CreditCard, cardNumber string, expirationMonth, expirationYear int, cardCode string) error {
	return gateway.ErrUnsupported
}

func (p *Provider) UpdateCreditCardExpiration(ctx context.Context, card *models.CreditCard, expirationMonth, expirationYear int) error {
	return gateway.ErrUnsupported
}

func (p *Provider) DeleteCreditCard(ctx context.Context, card *models.CreditCard) error {
	return gateway.ErrUnsupported
}

// CanGetTokenizedCreditCards reports false: AIM has no tokenization.
func (p *Provider) CanGetTokenizedCreditCards() bool {
	return false
}

func (p *Provider) GetTokenizedCreditCards(ctx context.Context) (map[string]models.TokenizedCreditCard, error) {
	return nil, gateway.ErrUnsupported
}
