package appstoreserver

import "strconv"

// APIErrorCode is a known numeric error code from the App Store Server
// API's error envelope. Values match the wire codes, so a recognized raw
// code converts directly. ErrorCodeUnknown is the fallback for codes the
// SDK does not recognize; the server adds codes over time and unrecognized
// values must classify without failing.
type APIErrorCode int64

const (
	// ErrorCodeUnknown marks a raw code outside the known set.
	ErrorCodeUnknown APIErrorCode = 0

	ErrorCodeGeneralBadRequest                           APIErrorCode = 4000000
	ErrorCodeInvalidAppIdentifier                        APIErrorCode = 4000002
	ErrorCodeInvalidRequestRevision                      APIErrorCode = 4000005
	ErrorCodeInvalidTransactionID                        APIErrorCode = 4000006
	ErrorCodeInvalidOriginalTransactionID                APIErrorCode = 4000008
	ErrorCodeInvalidExtendByDays                         APIErrorCode = 4000009
	ErrorCodeInvalidExtendReasonCode                     APIErrorCode = 4000010
	ErrorCodeInvalidRequestIdentifier                    APIErrorCode = 4000011
	ErrorCodeStartDateTooFarInPast                       APIErrorCode = 4000012
	ErrorCodeStartDateAfterEndDate                       APIErrorCode = 4000013
	ErrorCodeInvalidPaginationToken                      APIErrorCode = 4000014
	ErrorCodeInvalidStartDate                            APIErrorCode = 4000015
	ErrorCodeInvalidEndDate                              APIErrorCode = 4000016
	ErrorCodePaginationTokenExpired                      APIErrorCode = 4000017
	ErrorCodeInvalidNotificationType                     APIErrorCode = 4000018
	ErrorCodeMultipleFiltersSupplied                     APIErrorCode = 4000019
	ErrorCodeInvalidTestNotificationToken                APIErrorCode = 4000020
	ErrorCodeInvalidSort                                 APIErrorCode = 4000021
	ErrorCodeInvalidProductType                          APIErrorCode = 4000022
	ErrorCodeInvalidProductID                            APIErrorCode = 4000023
	ErrorCodeInvalidSubscriptionGroupIdentifier          APIErrorCode = 4000024
	ErrorCodeInvalidExcludeRevoked                       APIErrorCode = 4000025
	ErrorCodeInvalidInAppOwnershipType                   APIErrorCode = 4000026
	ErrorCodeInvalidEmptyStorefrontCountryCodeList       APIErrorCode = 4000027
	ErrorCodeInvalidStorefrontCountryCode                APIErrorCode = 4000028
	ErrorCodeInvalidRevoked                              APIErrorCode = 4000030
	ErrorCodeInvalidStatus                               APIErrorCode = 4000031
	ErrorCodeInvalidAccountTenure                        APIErrorCode = 4000032
	ErrorCodeInvalidAppAccountToken                      APIErrorCode = 4000033
	ErrorCodeInvalidConsumptionStatus                    APIErrorCode = 4000034
	ErrorCodeInvalidCustomerConsented                    APIErrorCode = 4000035
	ErrorCodeInvalidDeliveryStatus                       APIErrorCode = 4000036
	ErrorCodeInvalidLifetimeDollarsPurchased             APIErrorCode = 4000037
	ErrorCodeInvalidLifetimeDollarsRefunded              APIErrorCode = 4000038
	ErrorCodeInvalidPlatform                             APIErrorCode = 4000039
	ErrorCodeInvalidPlayTime                             APIErrorCode = 4000040
	ErrorCodeInvalidSampleContentProvided                APIErrorCode = 4000041
	ErrorCodeInvalidUserStatus                           APIErrorCode = 4000042
	ErrorCodeInvalidTransactionNotConsumable             APIErrorCode = 4000043
	ErrorCodeInvalidTransactionTypeNotSupported          APIErrorCode = 4000047
	ErrorCodeSubscriptionExtensionIneligible             APIErrorCode = 4030004
	ErrorCodeSubscriptionMaxExtension                    APIErrorCode = 4030005
	ErrorCodeFamilySharedSubscriptionExtensionIneligible APIErrorCode = 4030007
	ErrorCodeAccountNotFound                             APIErrorCode = 4040001
	ErrorCodeAccountNotFoundRetryable                    APIErrorCode = 4040002
	ErrorCodeAppNotFound                                 APIErrorCode = 4040003
	ErrorCodeAppNotFoundRetryable                        APIErrorCode = 4040004
	ErrorCodeOriginalTransactionIDNotFound               APIErrorCode = 4040005
	ErrorCodeOriginalTransactionIDNotFoundRetryable      APIErrorCode = 4040006
	ErrorCodeServerNotificationURLNotFound               APIErrorCode = 4040007
	ErrorCodeTestNotificationNotFound                    APIErrorCode = 4040008
	ErrorCodeStatusRequestNotFound                       APIErrorCode = 4040009
	ErrorCodeTransactionIDNotFound                       APIErrorCode = 4040010
	ErrorCodeRateLimitExceeded                           APIErrorCode = 4290000
	ErrorCodeGeneralInternal                             APIErrorCode = 5000000
	ErrorCodeGeneralInternalRetryable                    APIErrorCode = 5000001
)

// errorCodeNames doubles as the known-code set and the String table.
var errorCodeNames = map[APIErrorCode]string{
	ErrorCodeGeneralBadRequest:                           "GeneralBadRequest",
	ErrorCodeInvalidAppIdentifier:                        "InvalidAppIdentifier",
	ErrorCodeInvalidRequestRevision:                      "InvalidRequestRevision",
	ErrorCodeInvalidTransactionID:                        "InvalidTransactionId",
	ErrorCodeInvalidOriginalTransactionID:                "InvalidOriginalTransactionId",
	ErrorCodeInvalidExtendByDays:                         "InvalidExtendByDays",
	ErrorCodeInvalidExtendReasonCode:                     "InvalidExtendReasonCode",
	ErrorCodeInvalidRequestIdentifier:                    "InvalidRequestIdentifier",
	ErrorCodeStartDateTooFarInPast:                       "StartDateTooFarInPast",
	ErrorCodeStartDateAfterEndDate:                       "StartDateAfterEndDate",
	ErrorCodeInvalidPaginationToken:                      "InvalidPaginationToken",
	ErrorCodeInvalidStartDate:                            "InvalidStartDate",
	ErrorCodeInvalidEndDate:                              "InvalidEndDate",
	ErrorCodePaginationTokenExpired:                      "PaginationTokenExpired",
	ErrorCodeInvalidNotificationType:                     "InvalidNotificationType",
	ErrorCodeMultipleFiltersSupplied:                     "MultipleFiltersSupplied",
	ErrorCodeInvalidTestNotificationToken:                "InvalidTestNotificationToken",
	ErrorCodeInvalidSort:                                 "InvalidSort",
	ErrorCodeInvalidProductType:                          "InvalidProductType",
	ErrorCodeInvalidProductID:                            "InvalidProductId",
	ErrorCodeInvalidSubscriptionGroupIdentifier:          "InvalidSubscriptionGroupIdentifier",
	ErrorCodeInvalidExcludeRevoked:                       "InvalidExcludeRevoked",
	ErrorCodeInvalidInAppOwnershipType:                   "InvalidInAppOwnershipType",
	ErrorCodeInvalidEmptyStorefrontCountryCodeList:       "InvalidEmptyStorefrontCountryCodeList",
	ErrorCodeInvalidStorefrontCountryCode:                "InvalidStorefrontCountryCode",
	ErrorCodeInvalidRevoked:                              "InvalidRevoked",
	ErrorCodeInvalidStatus:                               "InvalidStatus",
	ErrorCodeInvalidAccountTenure:                        "InvalidAccountTenure",
	ErrorCodeInvalidAppAccountToken:                      "InvalidAppAccountToken",
	ErrorCodeInvalidConsumptionStatus:                    "InvalidConsumptionStatus",
	ErrorCodeInvalidCustomerConsented:                    "InvalidCustomerConsented",
	ErrorCodeInvalidDeliveryStatus:                       "InvalidDeliveryStatus",
	ErrorCodeInvalidLifetimeDollarsPurchased:             "InvalidLifetimeDollarsPurchased",
	ErrorCodeInvalidLifetimeDollarsRefunded:              "InvalidLifetimeDollarsRefunded",
	ErrorCodeInvalidPlatform:                             "InvalidPlatform",
	ErrorCodeInvalidPlayTime:                             "InvalidPlayTime",
	ErrorCodeInvalidSampleContentProvided:                "InvalidSampleContentProvided",
	ErrorCodeInvalidUserStatus:                           "InvalidUserStatus",
	ErrorCodeInvalidTransactionNotConsumable:             "InvalidTransactionNotConsumable",
	ErrorCodeInvalidTransactionTypeNotSupported:          "InvalidTransactionTypeNotSupported",
	ErrorCodeSubscriptionExtensionIneligible:             "SubscriptionExtensionIneligible",
	ErrorCodeSubscriptionMaxExtension:                    "SubscriptionMaxExtension",
	ErrorCodeFamilySharedSubscriptionExtensionIneligible: "FamilySharedSubscriptionExtensionIneligible",
	ErrorCodeAccountNotFound:                             "AccountNotFound",
	ErrorCodeAccountNotFoundRetryable:                    "AccountNotFoundRetryable",
	ErrorCodeAppNotFound:                                 "AppNotFound",
	ErrorCodeAppNotFoundRetryable:                        "AppNotFoundRetryable",
	ErrorCodeOriginalTransactionIDNotFound:               "OriginalTransactionIdNotFound",
	ErrorCodeOriginalTransactionIDNotFoundRetryable:      "OriginalTransactionIdNotFoundRetryable",
	ErrorCodeServerNotificationURLNotFound:               "ServerNotificationUrlNotFound",
	ErrorCodeTestNotificationNotFound:                    "TestNotificationNotFound",
	ErrorCodeStatusRequestNotFound:                       "StatusRequestNotFound",
	ErrorCodeTransactionIDNotFound:                       "TransactionIdNotFound",
	ErrorCodeRateLimitExceeded:                           "RateLimitExceeded",
	ErrorCodeGeneralInternal:                             "GeneralInternal",
	ErrorCodeGeneralInternalRetryable:                    "GeneralInternalRetryable",
}

// lookupErrorCode maps a raw envelope code to its classified kind.
// Unmapped codes return (ErrorCodeUnknown, false), never an error.
func lookupErrorCode(raw int64) (APIErrorCode, bool) {
	code := APIErrorCode(raw)
	if _, ok := errorCodeNames[code]; ok {
		return code, true
	}
	return ErrorCodeUnknown, false
}

func (c APIErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "Unknown(" + strconv.FormatInt(int64(c), 10) + ")"
}
