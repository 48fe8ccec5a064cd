package models

// CommunicationResult categorizes how far a gateway call got.
type CommunicationResult string

const (
	// CommunicationResultLocalError means the request could not even be
	// built; nothing was sent over the wire.
	CommunicationResultLocalError CommunicationResult = "LOCAL_ERROR"
	// CommunicationResultGatewayError means the gateway was reached but the
	// call failed: transport fault, malformed response, or a provider-side
	// error response.
	CommunicationResultGatewayError CommunicationResult = "GATEWAY_ERROR"
	// CommunicationResultSuccess means the gateway returned a definitive
	// approval, decline, or hold.
	CommunicationResultSuccess CommunicationResult = "SUCCESS"
)

// ErrorCode is the symbolic error taxonomy shared by all gateway adapters.
// Callers branch on these, so adapters map provider codes onto them.
type ErrorCode string

const (
	ErrorCodeUnknown                 ErrorCode = "UNKNOWN"
	ErrorCodeInvalidCurrencyCode     ErrorCode = "INVALID_CURRENCY_CODE"
	ErrorCodeErrorTryAgain           ErrorCode = "ERROR_TRY_AGAIN"
	ErrorCodeErrorTryAgain5Minutes   ErrorCode = "ERROR_TRY_AGAIN_5_MINUTES"
	ErrorCodeInvalidAmount           ErrorCode = "INVALID_AMOUNT"
	ErrorCodeAmountTooHigh           ErrorCode = "AMOUNT_TOO_HIGH"
	ErrorCodeInvalidCardNumber       ErrorCode = "INVALID_CARD_NUMBER"
	ErrorCodeInvalidExpirationDate   ErrorCode = "INVALID_EXPIRATION_DATE"
	ErrorCodeCardExpired             ErrorCode = "CARD_EXPIRED"
	ErrorCodeInvalidCardCode         ErrorCode = "INVALID_CARD_CODE"
	ErrorCodeInvalidCardAddress      ErrorCode = "INVALID_CARD_ADDRESS"
	ErrorCodeInvalidDutyAmount       ErrorCode = "INVALID_DUTY_AMOUNT"
	ErrorCodeInvalidShippingAmount   ErrorCode = "INVALID_SHIPPING_AMOUNT"
	ErrorCodeInvalidTaxAmount        ErrorCode = "INVALID_TAX_AMOUNT"
	ErrorCodeInvalidCustomerTaxID    ErrorCode = "INVALID_CUSTOMER_TAX_ID"
	ErrorCodeCardTypeNotSupported    ErrorCode = "CARD_TYPE_NOT_SUPPORTED"
	ErrorCodeDuplicate               ErrorCode = "DUPLICATE"
	ErrorCodeApprovalCodeRequired    ErrorCode = "APPROVAL_CODE_REQUIRED"
	ErrorCodeInvalidApprovalCode     ErrorCode = "INVALID_APPROVAL_CODE"
	ErrorCodeInvalidMerchantID       ErrorCode = "INVALID_MERCHANT_ID"
	ErrorCodeInvalidProviderUniqueID ErrorCode = "INVALID_PROVIDER_UNIQUE_ID"
	ErrorCodeInvalidTransactionType  ErrorCode = "INVALID_TRANSACTION_TYPE"
	ErrorCodeTransactionNotFound     ErrorCode = "TRANSACTION_NOT_FOUND"
	ErrorCodeTransactionNotSettled   ErrorCode = "TRANSACTION_NOT_SETTLED"
	ErrorCodeInsufficientPermissions ErrorCode = "INSUFFICIENT_PERMISSIONS"
	ErrorCodeProviderConfigError     ErrorCode = "PROVIDER_CONFIGURATION_ERROR"
	ErrorCodeMustBeEncrypted         ErrorCode = "MUST_BE_ENCRYPTED"
	ErrorCodeNoSession               ErrorCode = "NO_SESSION"
	ErrorCodeCaptureAmountGreaterThanAuthorization ErrorCode = "CAPTURE_AMOUNT_GREATER_THAN_AUTHORIZATION"
	ErrorCodeSumOfCreditsTooHigh          ErrorCode = "SUM_OF_CREDITS_TOO_HIGH"
	ErrorCodeCreditCriteriaNotMet         ErrorCode = "CREDIT_CRITERIA_NOT_MET"
	ErrorCodeApprovedButSettlementFailed  ErrorCode = "APPROVED_BUT_SETTLEMENT_FAILED"
	ErrorCodeAuthorizedNotificationFailed ErrorCode = "AUTHORIZED_NOTIFICATION_FAILED"
	ErrorCodeACHOnly                      ErrorCode = "ACH_ONLY"
	ErrorCodeGatewaySecurityGuidelinesNotMet ErrorCode = "GATEWAY_SECURITY_GUIDELINES_NOT_MET"
	ErrorCodeCustomerAccountDisabled         ErrorCode = "CUSTOMER_ACCOUNT_DISABLED"
)

// ApprovalResult is the gateway's verdict on a successful round trip.
type ApprovalResult string

const (
	ApprovalResultApproved ApprovalResult = "APPROVED"
	ApprovalResultDeclined ApprovalResult = "DECLINED"
	// ApprovalResultHold means the gateway suspended the transaction for
	// manual merchant review rather than approving or declining it.
	ApprovalResultHold ApprovalResult = "HOLD"
)

// DeclineReason refines a DECLINED approval result.
type DeclineReason string

const (
	DeclineReasonNoSpecific    DeclineReason = "NO_SPECIFIC"
	DeclineReasonPickUpCard    DeclineReason = "PICK_UP_CARD"
	DeclineReasonAVSMismatch   DeclineReason = "AVS_MISMATCH"
	DeclineReasonCVV2Mismatch  DeclineReason = "CVV2_MISMATCH"
	DeclineReasonFraudDetected DeclineReason = "FRAUD_DETECTED"
	DeclineReasonBlockedIP     DeclineReason = "BLOCKED_IP"
	DeclineReasonManualReview  DeclineReason = "MANUAL_REVIEW"
	DeclineReasonUnknown       DeclineReason = "UNKNOWN"
)

// ReviewReason refines a HOLD approval result.
type ReviewReason string

const (
	ReviewReasonRiskManagement                   ReviewReason = "RISK_MANAGEMENT"
	ReviewReasonAcceptedMerchantReview           ReviewReason = "ACCEPTED_MERCHANT_REVIEW"
	ReviewReasonAcceptedAuthorizedMerchantReview ReviewReason = "ACCEPTED_AUTHORIZED_MERCHANT_REVIEW"
)

// CvvResult is the card-code verification verdict from the card network.
type CvvResult string

const (
	CvvResultMatch                      CvvResult = "MATCH"
	CvvResultNoMatch                    CvvResult = "NO_MATCH"
	CvvResultNotProcessed               CvvResult = "NOT_PROCESSED"
	CvvResultCVV2NotProvidedByMerchant  CvvResult = "CVV2_NOT_PROVIDED_BY_MERCHANT"
	CvvResultNotSupportedByIssuer       CvvResult = "NOT_SUPPORTED_BY_ISSUER"
)

// AvsResult is the address verification verdict from the card network.
type AvsResult string

const (
	AvsResultAddressNotProvided  AvsResult = "ADDRESS_NOT_PROVIDED"
	AvsResultAddressYZip5        AvsResult = "ADDRESS_Y_ZIP_5"
	AvsResultAddressYZip9        AvsResult = "ADDRESS_Y_ZIP_9"
	AvsResultAddressYZipN        AvsResult = "ADDRESS_Y_ZIP_N"
	AvsResultAddressNZip5        AvsResult = "ADDRESS_N_ZIP_5"
	AvsResultAddressNZip9        AvsResult = "ADDRESS_N_ZIP_9"
	AvsResultAddressNZipN        AvsResult = "ADDRESS_N_ZIP_N"
	AvsResultError               AvsResult = "ERROR"
	AvsResultNonUSCard           AvsResult = "NON_US_CARD"
	AvsResultNotApplicable       AvsResult = "NOT_APPLICABLE"
	AvsResultRetry               AvsResult = "RETRY"
	AvsResultServiceNotSupported AvsResult = "SERVICE_NOT_SUPPORTED"
	AvsResultUnavailable         AvsResult = "UNAVAILABLE"
	AvsResultUnknown             AvsResult = "UNKNOWN"
)

// TransactionResult is the outcome shared by every gateway operation.
// Results are built once per call and never mutated after construction.
type TransactionResult struct {
	ProviderID          string
	CommunicationResult CommunicationResult

	// ProviderErrorCode is the gateway's raw error/reason code, when the
	// call did not succeed.
	ProviderErrorCode    string
	ErrorCode            ErrorCode
	ProviderErrorMessage string

	// ProviderUniqueID is the gateway-assigned transaction id, when the
	// gateway got far enough to assign one.
	ProviderUniqueID string
}

// AuthorizationResult is the outcome of an authorize or sale attempt. The
// provider id, transaction id, CVV/AVS verdicts and authorization code are
// carried on every branch, including failures, so callers can audit failed
// attempts.
type AuthorizationResult struct {
	TransactionResult

	// ProviderApprovalResult is the gateway's raw reason code.
	ProviderApprovalResult string
	ApprovalResult         ApprovalResult

	// ProviderDeclineReason is the gateway's human-readable decline text.
	ProviderDeclineReason string
	DeclineReason         DeclineReason

	// ProviderReviewReason is the gateway's human-readable review text.
	ProviderReviewReason string
	ReviewReason         ReviewReason

	ProviderCvvResult string
	CvvResult         CvvResult

	ProviderAvsResult string
	AvsResult         AvsResult

	ApprovalCode string
}

// CaptureResult is the outcome of a capture.
type CaptureResult struct {
	TransactionResult
}

// SaleResult pairs the authorization with its capture for dialects that
// capture in the same round trip.
type SaleResult struct {
	AuthorizationResult AuthorizationResult
	CaptureResult       CaptureResult
}

// VoidResult is the outcome of a void.
type VoidResult struct {
	TransactionResult
}

// CreditResult is the outcome of a credit (refund).
type CreditResult struct {
	TransactionResult
}

// Transaction is the caller's record of a prior authorization, as handed to
// Void.
type Transaction struct {
	ProviderID          string
	AuthorizationResult AuthorizationResult
	Status              string
}

// TokenizedCreditCard is a stored-card handle on gateways with card storage.
type TokenizedCreditCard struct {
	ProviderUniqueID                    string
	ProviderReplacementMaskedCardNumber string
	ReplacementMaskedCardNumber         string
	ReplacementExpirationMonth          int
	ReplacementExpirationYear           int
}
