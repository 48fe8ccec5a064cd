package authorizenet_test

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alovak/merchant-gateways/authorizenet"
	"github.com/alovak/merchant-gateways/gateway"
	"github.com/alovak/merchant-gateways/gateway/models"
	"github.com/alovak/merchant-gateways/internal/aimsim"
	"github.com/alovak/merchant-gateways/internal/formpost"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// transportFunc lets tests stand in for the HTTP transport.
type transportFunc func(ctx context.Context, url string, body []byte) ([]byte, error)

func (f transportFunc) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	return f(ctx, url, body)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func testProvider(transport authorizenet.Transport) *authorizenet.Provider {
	return authorizenet.NewProvider(testLogger(), authorizenet.Config{
		ProviderID:     "anet-test",
		Login:          "demo-login",
		TransactionKey: "demo-key",
		GatewayURL:     "http://gateway.invalid/transact.dll",
	}, transport)
}

func request(amount string) *models.TransactionRequest {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return &models.TransactionRequest{
		Amount:   a,
		Currency: "USD",
	}
}

func card() *models.CreditCard {
	return &models.CreditCard{
		CardNumber:      "4111111111111111",
		ExpirationMonth: 12,
		ExpirationYear:  2099,
		CardCode:        "123",
		FirstName:       "Jane",
		LastName:        "Doe",
		PostalCode:      "36695",
	}
}

// approvedResponse is a canned well-formed gateway approval.
func approvedResponse() []byte {
	fields := make([]string, 68)
	fields[0] = "1"
	fields[2] = "1"
	fields[3] = "This transaction has been approved."
	fields[4] = "ABC123"
	fields[5] = "Y"
	fields[6] = "2149186848"
	fields[38] = "M"
	for i, v := range fields {
		fields[i] = "`" + v + "`"
	}
	return []byte(strings.Join(fields, "|"))
}

func TestAuthorizeRejectsNonUSDWithoutNetwork(t *testing.T) {
	calls := 0
	provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
		calls++
		return approvedResponse(), nil
	}))

	req := request("10.00")
	req.Currency = "AUD"

	result := provider.Authorize(context.Background(), req, card())

	require.Equal(t, models.CommunicationResultLocalError, result.CommunicationResult)
	require.Equal(t, models.ErrorCodeInvalidCurrencyCode, result.ErrorCode)
	require.Equal(t, string(models.ErrorCodeInvalidCurrencyCode), result.ProviderErrorCode)
	require.Equal(t, 0, calls)
}

func TestAuthorizeTransportFailure(t *testing.T) {
	provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
		return nil, fmt.Errorf("connection refused")
	}))

	result := provider.Authorize(context.Background(), request("10.00"), card())

	require.Equal(t, models.CommunicationResultGatewayError, result.CommunicationResult)
	require.Equal(t, models.ErrorCodeErrorTryAgain, result.ErrorCode)
	require.Contains(t, result.ProviderErrorMessage, "connection refused")
}

func TestAuthorizeMalformedResponse(t *testing.T) {
	t.Run("too few fields", func(t *testing.T) {
		provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
			return []byte("`1`|`1`|`1`"), nil
		}))

		result := provider.Authorize(context.Background(), request("10.00"), card())

		require.Equal(t, models.CommunicationResultGatewayError, result.CommunicationResult)
		require.Equal(t, models.ErrorCodeErrorTryAgain, result.ErrorCode)
		require.Contains(t, result.ProviderErrorMessage, "not enough fields")
	})

	t.Run("not encapsulated", func(t *testing.T) {
		raw := string(approvedResponse())
		raw = strings.Replace(raw, "`1`", "1", 1)

		provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
			return []byte(raw), nil
		}))

		result := provider.Authorize(context.Background(), request("10.00"), card())

		require.Equal(t, models.CommunicationResultGatewayError, result.CommunicationResult)
		require.Equal(t, models.ErrorCodeErrorTryAgain, result.ErrorCode)
	})
}

func TestAuthorizeApproved(t *testing.T) {
	var sentBody string
	provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
		sentBody = string(body)
		return approvedResponse(), nil
	}))

	result := provider.Authorize(context.Background(), request("10.00"), card())

	require.Equal(t, models.CommunicationResultSuccess, result.CommunicationResult)
	require.Equal(t, models.ApprovalResultApproved, result.ApprovalResult)
	require.Equal(t, "2149186848", result.ProviderUniqueID)
	require.Equal(t, "ABC123", result.ApprovalCode)
	require.Contains(t, sentBody, "x_type=AUTH_ONLY")
}

func TestSaleMirrorsCaptureFromAuthorization(t *testing.T) {
	var sentBody string
	provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
		sentBody = string(body)
		return approvedResponse(), nil
	}))

	sale := provider.Sale(context.Background(), request("10.00"), card())

	require.Contains(t, sentBody, "x_type=AUTH_CAPTURE")
	require.Equal(t, models.ApprovalResultApproved, sale.AuthorizationResult.ApprovalResult)

	auth := sale.AuthorizationResult
	capture := sale.CaptureResult
	require.Equal(t, auth.ProviderID, capture.ProviderID)
	require.Equal(t, auth.CommunicationResult, capture.CommunicationResult)
	require.Equal(t, auth.ProviderErrorCode, capture.ProviderErrorCode)
	require.Equal(t, auth.ErrorCode, capture.ErrorCode)
	require.Equal(t, auth.ProviderErrorMessage, capture.ProviderErrorMessage)
	require.Equal(t, auth.ProviderUniqueID, capture.ProviderUniqueID)
}

func TestSaleMirrorsCaptureOnFailure(t *testing.T) {
	provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
		return nil, fmt.Errorf("boom")
	}))

	sale := provider.Sale(context.Background(), request("10.00"), card())

	require.Equal(t, models.CommunicationResultGatewayError, sale.AuthorizationResult.CommunicationResult)
	require.Equal(t, models.CommunicationResultGatewayError, sale.CaptureResult.CommunicationResult)
	require.Equal(t, models.ErrorCodeErrorTryAgain, sale.CaptureResult.ErrorCode)
}

func TestUnsupportedOperationsNeverTouchTheWire(t *testing.T) {
	calls := 0
	provider := testProvider(transportFunc(func(ctx context.Context, url string, body []byte) ([]byte, error) {
		calls++
		return approvedResponse(), nil
	}))

	ctx := context.Background()

	_, err := provider.Capture(ctx, &models.AuthorizationResult{})
	require.ErrorIs(t, err, gateway.ErrNotImplemented)

	_, err = provider.Void(ctx, &models.Transaction{})
	require.ErrorIs(t, err, gateway.ErrNotImplemented)

	_, err = provider.Credit(ctx, request("10.00"), card())
	require.ErrorIs(t, err, gateway.ErrNotImplemented)

	require.False(t, provider.CanStoreCreditCards())
	require.False(t, provider.CanGetTokenizedCreditCards())

	_, err = provider.StoreCreditCard(ctx, card())
	require.ErrorIs(t, err, gateway.ErrUnsupported)
	require.ErrorIs(t, provider.UpdateCreditCard(ctx, card()), gateway.ErrUnsupported)
	require.ErrorIs(t, provider.UpdateCreditCardNumberAndExpiration(ctx, card(), "4111111111111111", 1, 2100, "999"), gateway.ErrUnsupported)
	require.ErrorIs(t, provider.UpdateCreditCardExpiration(ctx, card(), 1, 2100), gateway.ErrUnsupported)
	require.ErrorIs(t, provider.DeleteCreditCard(ctx, card()), gateway.ErrUnsupported)
	_, err = provider.GetTokenizedCreditCards(ctx)
	require.ErrorIs(t, err, gateway.ErrUnsupported)

	require.Equal(t, 0, calls)
}

// Round trips against the AIM simulator over real HTTP, using the default
// form POST transport.
func TestProviderRoundTrip(t *testing.T) {
	router := chi.NewRouter()
	aimsim.New(testLogger()).AppendRoutes(router)

	srv := httptest.NewServer(router)
	defer srv.Close()

	provider := authorizenet.NewProvider(testLogger(), authorizenet.Config{
		ProviderID:     "anet-sim",
		Login:          "demo-login",
		TransactionKey: "demo-key",
		GatewayURL:     srv.URL + "/gateway/transact.dll",
	}, formpost.NewClient(formpost.DefaultConfig()))

	t.Run("approved sale", func(t *testing.T) {
		sale := provider.Sale(context.Background(), request("12.50"), card())

		auth := sale.AuthorizationResult
		require.Equal(t, models.CommunicationResultSuccess, auth.CommunicationResult)
		require.Equal(t, models.ApprovalResultApproved, auth.ApprovalResult)
		require.NotEmpty(t, auth.ProviderUniqueID)
		require.NotEmpty(t, auth.ApprovalCode)
		require.Equal(t, models.CvvResultMatch, auth.CvvResult)
		require.Equal(t, models.AvsResultAddressYZip5, auth.AvsResult)
		require.Equal(t, models.CommunicationResultSuccess, sale.CaptureResult.CommunicationResult)
	})

	t.Run("declined authorization", func(t *testing.T) {
		result := provider.Authorize(context.Background(), request("10.05"), card())

		require.Equal(t, models.CommunicationResultSuccess, result.CommunicationResult)
		require.Equal(t, models.ApprovalResultDeclined, result.ApprovalResult)
		require.Equal(t, models.DeclineReasonNoSpecific, result.DeclineReason)
	})

	t.Run("held for review", func(t *testing.T) {
		result := provider.Authorize(context.Background(), request("10.53"), card())

		require.Equal(t, models.ApprovalResultHold, result.ApprovalResult)
		require.Equal(t, models.ReviewReasonAcceptedMerchantReview, result.ReviewReason)
	})

	t.Run("decline exception reclassified as error", func(t *testing.T) {
		result := provider.Authorize(context.Background(), request("10.34"), card())

		require.Equal(t, models.CommunicationResultGatewayError, result.CommunicationResult)
		require.Equal(t, models.ErrorCodeProviderConfigError, result.ErrorCode)
	})

	t.Run("invalid card number", func(t *testing.T) {
		badCard := card()
		badCard.CardNumber = "4111111111111112"

		result := provider.Authorize(context.Background(), request("10.00"), badCard)

		require.Equal(t, models.CommunicationResultGatewayError, result.CommunicationResult)
		require.Equal(t, models.ErrorCodeInvalidCardNumber, result.ErrorCode)
	})
}
