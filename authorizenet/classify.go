package authorizenet

import "github.com/alovak/merchant-gateways/gateway/models"

// cvvResultOf maps the gateway's single-character card-code response to a
// verdict. Unrecognized codes fall back on whether the merchant supplied a
// card code at all.
func cvvResultOf(cardCodeResponse, requestCardCode string) models.CvvResult {
	switch cardCodeResponse {
	case "M":
		return models.CvvResultMatch
	case "N":
		return models.CvvResultNoMatch
	case "P":
		return models.CvvResultNotProcessed
	case "S":
		return models.CvvResultCVV2NotProvidedByMerchant
	case "U":
		return models.CvvResultNotSupportedByIssuer
	}
	if requestCardCode != "" {
		return models.CvvResultNotProcessed
	}
	return models.CvvResultCVV2NotProvidedByMerchant
}

// avsResultOf maps the gateway's single-character AVS response to a verdict.
func avsResultOf(avsResponse string) models.AvsResult {
	switch avsResponse {
	case "A":
		return models.AvsResultAddressYZipN
	case "B":
		return models.AvsResultAddressNotProvided
	case "E":
		return models.AvsResultError
	case "G":
		return models.AvsResultNonUSCard
	case "N":
		return models.AvsResultAddressNZipN
	case "P":
		return models.AvsResultNotApplicable
	case "R":
		return models.AvsResultRetry
	case "S":
		return models.AvsResultServiceNotSupported
	case "U":
		return models.AvsResultUnavailable
	case "W":
		return models.AvsResultAddressNZip9
	case "X":
		return models.AvsResultAddressYZip9
	case "Y":
		return models.AvsResultAddressYZip5
	case "Z":
		return models.AvsResultAddressNZip5
	}
	return models.AvsResultUnknown
}

// classify maps a decoded field list to a transaction outcome using the
// gateway's response-code and reason-code tables. Pure function, total over
// all field lists of at least minResponseFields values.
func classify(providerID string, fields []string, card *models.CreditCard) *models.AuthorizationResult {
	responseCode := fields[posResponseCode]
	reasonCode := fields[posResponseReasonCode]
	reasonText := fields[posResponseReasonText]
	authorizationCode := fields[posAuthorizationCode]
	avsResponse := fields[posAvsResponse]
	transactionID := fields[posTransactionID]
	cardCodeResponse := fields[posCardCodeResponse]

	cvvResult := cvvResultOf(cardCodeResponse, card.CardCode)
	avsResult := avsResultOf(avsResponse)

	// Every branch carries the transaction id, verdicts and approval code so
	// even failed attempts can be audited.
	base := models.AuthorizationResult{
		TransactionResult: models.TransactionResult{
			ProviderID:          providerID,
			ProviderUniqueID:    transactionID,
			CommunicationResult: models.CommunicationResultSuccess,
		},
		ProviderApprovalResult: reasonCode,
		ProviderCvvResult:      cardCodeResponse,
		CvvResult:              cvvResult,
		ProviderAvsResult:      avsResponse,
		AvsResult:              avsResult,
		ApprovalCode:           authorizationCode,
	}

	_, reasonIsErrorOverride := code2ErrorOverrides[reasonCode]

	switch {
	case responseCode == "1":
		result := base
		result.ApprovalResult = models.ApprovalResultApproved
		return &result

	case responseCode == "2" && !reasonIsErrorOverride:
		result := base
		result.ApprovalResult = models.ApprovalResultDeclined
		result.ProviderDeclineReason = reasonText
		result.DeclineReason = models.DeclineReasonUnknown
		if reason, ok := declineReasons[reasonCode]; ok {
			result.DeclineReason = reason
		}
		return &result

	case responseCode == "4":
		result := base
		result.ApprovalResult = models.ApprovalResultHold
		result.ProviderReviewReason = reasonText
		result.ReviewReason = models.ReviewReasonRiskManagement
		if reason, ok := reviewReasons[reasonCode]; ok {
			result.ReviewReason = reason
		}
		return &result

	default:
		// Anything else, including the code-2 error overrides, is a
		// provider-side error.
		errorCode := models.ErrorCodeUnknown
		if code, ok := code2ErrorOverrides[reasonCode]; ok {
			errorCode = code
		} else if code, ok := errorCodes[reasonCode]; ok {
			errorCode = code
		}

		result := base
		result.CommunicationResult = models.CommunicationResultGatewayError
		result.ProviderErrorCode = reasonCode
		result.ErrorCode = errorCode
		result.ProviderErrorMessage = reasonText
		result.ProviderApprovalResult = ""
		return &result
	}
}
