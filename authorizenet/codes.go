package authorizenet

import "github.com/alovak/merchant-gateways/gateway/models"

// The tables below reproduce the gateway's published response-reason-code
// list. They are data, not logic: callers branch on the symbolic codes, so
// every entry must match the gateway documentation exactly.

// declineReasons maps response-code-2 reason codes to decline reasons.
// Codes absent from the table classify as DeclineReasonUnknown.
var declineReasons = map[string]models.DeclineReason{
	"2":   models.DeclineReasonNoSpecific,
	"3":   models.DeclineReasonNoSpecific,
	"4":   models.DeclineReasonPickUpCard,
	"27":  models.DeclineReasonAVSMismatch,
	"29":  models.DeclineReasonUnknown,
	"41":  models.DeclineReasonFraudDetected,
	"44":  models.DeclineReasonCVV2Mismatch,
	"45":  models.DeclineReasonNoSpecific,
	"65":  models.DeclineReasonCVV2Mismatch,
	"127": models.DeclineReasonAVSMismatch,
	"141": models.DeclineReasonFraudDetected,
	"145": models.DeclineReasonNoSpecific,
	"165": models.DeclineReasonCVV2Mismatch,
	"250": models.DeclineReasonBlockedIP,
	"251": models.DeclineReasonFraudDetected,
	"254": models.DeclineReasonManualReview,
}

// reviewReasons maps response-code-4 reason codes to review reasons.
// Codes absent from the table classify as RISK_MANAGEMENT.
var reviewReasons = map[string]models.ReviewReason{
	"193": models.ReviewReasonRiskManagement,
	"252": models.ReviewReasonAcceptedAuthorizedMerchantReview,
	"253": models.ReviewReasonAcceptedMerchantReview,
	"295": models.ReviewReasonAcceptedAuthorizedMerchantReview,
}

// code2ErrorOverrides lists the response-code-2 reason codes the gateway
// reports as declines but which are really provider-side errors. Membership
// in this map both excludes a code from the decline branch and supplies its
// error code; keeping the set and the mapping in one table means they cannot
// drift apart. The boundary is irregular by design of the upstream protocol;
// do not try to infer a rule.
var code2ErrorOverrides = map[string]models.ErrorCode{
	"28":  models.ErrorCodeCardTypeNotSupported,
	"30":  models.ErrorCodeProviderConfigError,
	"31":  models.ErrorCodeInvalidMerchantID,
	"34":  models.ErrorCodeProviderConfigError,
	"35":  models.ErrorCodeProviderConfigError,
	"37":  models.ErrorCodeInvalidCardNumber,
	"38":  models.ErrorCodeProviderConfigError,
	"171": models.ErrorCodeProviderConfigError,
	"172": models.ErrorCodeProviderConfigError,
	"174": models.ErrorCodeInvalidTransactionType,
	"200": models.ErrorCodeInvalidCardNumber,
	"201": models.ErrorCodeInvalidExpirationDate,
	"202": models.ErrorCodeInvalidTransactionType,
	"203": models.ErrorCodeInvalidAmount,
	"204": models.ErrorCodeProviderConfigError,
	"205": models.ErrorCodeInvalidMerchantID,
	"206": models.ErrorCodeInvalidMerchantID,
	"207": models.ErrorCodeInsufficientPermissions,
	"208": models.ErrorCodeInvalidMerchantID,
	"209": models.ErrorCodeErrorTryAgain,
	"210": models.ErrorCodeProviderConfigError,
	"211": models.ErrorCodeInvalidCardNumber,
	"212": models.ErrorCodeProviderConfigError,
	"213": models.ErrorCodeProviderConfigError,
	"214": models.ErrorCodeUnknown,
	"215": models.ErrorCodeProviderConfigError,
	"216": models.ErrorCodeProviderConfigError,
	"217": models.ErrorCodeProviderConfigError,
	"218": models.ErrorCodeProviderConfigError,
	"219": models.ErrorCodeProviderConfigError,
	"220": models.ErrorCodeErrorTryAgain5Minutes,
	"221": models.ErrorCodeProviderConfigError,
	"222": models.ErrorCodeDuplicate,
	"223": models.ErrorCodeUnknown,
	"224": models.ErrorCodeErrorTryAgain,
	"315": models.ErrorCodeInvalidCardNumber,
	"316": models.ErrorCodeInvalidExpirationDate,
	"317": models.ErrorCodeCardExpired,
	"318": models.ErrorCodeDuplicate,
	"319": models.ErrorCodeTransactionNotFound,
}

// errorCodes maps response-code-3 reason codes (and other error responses)
// to symbolic error codes. Codes absent from this table and from
// code2ErrorOverrides classify as ErrorCodeUnknown.
var errorCodes = map[string]models.ErrorCode{
	"5":   models.ErrorCodeInvalidAmount,
	"6":   models.ErrorCodeInvalidCardNumber,
	"7":   models.ErrorCodeInvalidExpirationDate,
	"8":   models.ErrorCodeCardExpired,
	"9":   models.ErrorCodeUnknown,
	"10":  models.ErrorCodeUnknown,
	"11":  models.ErrorCodeDuplicate,
	"12":  models.ErrorCodeApprovalCodeRequired,
	"13":  models.ErrorCodeInsufficientPermissions,
	"14":  models.ErrorCodeProviderConfigError,
	"15":  models.ErrorCodeInvalidProviderUniqueID,
	"16":  models.ErrorCodeTransactionNotFound,
	"17":  models.ErrorCodeCardTypeNotSupported,
	"18":  models.ErrorCodeProviderConfigError,
	"19":  models.ErrorCodeErrorTryAgain5Minutes,
	"20":  models.ErrorCodeErrorTryAgain5Minutes,
	"21":  models.ErrorCodeErrorTryAgain5Minutes,
	"22":  models.ErrorCodeErrorTryAgain5Minutes,
	"23":  models.ErrorCodeErrorTryAgain5Minutes,
	"24":  models.ErrorCodeProviderConfigError,
	"25":  models.ErrorCodeErrorTryAgain5Minutes,
	"26":  models.ErrorCodeErrorTryAgain5Minutes,
	"32":  models.ErrorCodeUnknown,
	"33":  models.ErrorCodeUnknown,
	"36":  models.ErrorCodeApprovedButSettlementFailed,
	"40":  models.ErrorCodeMustBeEncrypted,
	"43":  models.ErrorCodeProviderConfigError,
	"46":  models.ErrorCodeNoSession,
	"47":  models.ErrorCodeCaptureAmountGreaterThanAuthorization,
	"48":  models.ErrorCodeInvalidAmount,
	"49":  models.ErrorCodeAmountTooHigh,
	"50":  models.ErrorCodeTransactionNotSettled,
	"51":  models.ErrorCodeSumOfCreditsTooHigh,
	"52":  models.ErrorCodeAuthorizedNotificationFailed,
	"53":  models.ErrorCodeInvalidTransactionType,
	"54":  models.ErrorCodeCreditCriteriaNotMet,
	"55":  models.ErrorCodeSumOfCreditsTooHigh,
	"56":  models.ErrorCodeACHOnly,
	"57":  models.ErrorCodeErrorTryAgain5Minutes,
	"58":  models.ErrorCodeErrorTryAgain5Minutes,
	"59":  models.ErrorCodeErrorTryAgain5Minutes,
	"60":  models.ErrorCodeErrorTryAgain5Minutes,
	"61":  models.ErrorCodeErrorTryAgain5Minutes,
	"62":  models.ErrorCodeErrorTryAgain5Minutes,
	"63":  models.ErrorCodeErrorTryAgain5Minutes,
	"66":  models.ErrorCodeGatewaySecurityGuidelinesNotMet,
	"68":  models.ErrorCodeProviderConfigError,
	"69":  models.ErrorCodeInvalidTransactionType,
	"70":  models.ErrorCodeProviderConfigError,
	"71":  models.ErrorCodeProviderConfigError,
	"72":  models.ErrorCodeInvalidApprovalCode,
	"73":  models.ErrorCodeUnknown,
	"74":  models.ErrorCodeInvalidDutyAmount,
	"75":  models.ErrorCodeInvalidShippingAmount,
	"76":  models.ErrorCodeInvalidTaxAmount,
	"77":  models.ErrorCodeInvalidCustomerTaxID,
	"78":  models.ErrorCodeInvalidCardCode,
	"79":  models.ErrorCodeUnknown,
	"80":  models.ErrorCodeUnknown,
	"81":  models.ErrorCodeProviderConfigError,
	"82":  models.ErrorCodeProviderConfigError,
	"83":  models.ErrorCodeProviderConfigError,
	"84":  models.ErrorCodeUnknown,
	"85":  models.ErrorCodeUnknown,
	"86":  models.ErrorCodeUnknown,
	"87":  models.ErrorCodeUnknown,
	"88":  models.ErrorCodeUnknown,
	"89":  models.ErrorCodeUnknown,
	"90":  models.ErrorCodeUnknown,
	"91":  models.ErrorCodeProviderConfigError,
	"92":  models.ErrorCodeProviderConfigError,
	"97":  models.ErrorCodeUnknown,
	"98":  models.ErrorCodeUnknown,
	"99":  models.ErrorCodeUnknown,
	"100": models.ErrorCodeUnknown,
	"101": models.ErrorCodeUnknown,
	"102": models.ErrorCodeGatewaySecurityGuidelinesNotMet,
	"103": models.ErrorCodeUnknown,
	"104": models.ErrorCodeUnknown,
	"105": models.ErrorCodeUnknown,
	"106": models.ErrorCodeUnknown,
	"107": models.ErrorCodeUnknown,
	"108": models.ErrorCodeUnknown,
	"109": models.ErrorCodeUnknown,
	"110": models.ErrorCodeUnknown,
	"116": models.ErrorCodeUnknown,
	"117": models.ErrorCodeUnknown,
	"118": models.ErrorCodeUnknown,
	"119": models.ErrorCodeUnknown,
	"120": models.ErrorCodeErrorTryAgain5Minutes,
	"121": models.ErrorCodeErrorTryAgain5Minutes,
	"122": models.ErrorCodeErrorTryAgain,
	"123": models.ErrorCodeInsufficientPermissions,
	"128": models.ErrorCodeCustomerAccountDisabled,
	"130": models.ErrorCodeInsufficientPermissions,
	"131": models.ErrorCodeInsufficientPermissions,
	"132": models.ErrorCodeInsufficientPermissions,
	"152": models.ErrorCodeAuthorizedNotificationFailed,
	"170": models.ErrorCodeUnknown,
	"173": models.ErrorCodeUnknown,
	"175": models.ErrorCodeUnknown,
	"180": models.ErrorCodeErrorTryAgain,
	"181": models.ErrorCodeErrorTryAgain,
	"185": models.ErrorCodeUnknown,
	"243": models.ErrorCodeUnknown,
	"244": models.ErrorCodeUnknown,
	"245": models.ErrorCodeUnknown,
	"246": models.ErrorCodeUnknown,
	"247": models.ErrorCodeUnknown,
	"248": models.ErrorCodeUnknown,
	"261": models.ErrorCodeErrorTryAgain,
	"270": models.ErrorCodeUnknown,
	"271": models.ErrorCodeUnknown,
	"288": models.ErrorCodeInsufficientPermissions,
	"289": models.ErrorCodeInvalidAmount,
	"290": models.ErrorCodeInvalidCardAddress,
	"296": models.ErrorCodeUnknown,
	"297": models.ErrorCodeUnknown,
	"300": models.ErrorCodeUnknown,
	"301": models.ErrorCodeUnknown,
	"302": models.ErrorCodeUnknown,
	"303": models.ErrorCodeUnknown,
	"304": models.ErrorCodeUnknown,
	"305": models.ErrorCodeUnknown,
	"306": models.ErrorCodeUnknown,
	"309": models.ErrorCodeInsufficientPermissions,
}
