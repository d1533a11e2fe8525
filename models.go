package appstoreserver

// Subscription and transaction payloads arrive as signed JWS strings
// (signedTransactionInfo, signedRenewalInfo, signedPayload). Verifying and
// decoding those payloads is a separate concern; this client carries them
// through untouched.

// SubscriptionStatus is the status of an auto-renewable subscription.
type SubscriptionStatus int32

const (
	SubscriptionStatusActive             SubscriptionStatus = 1
	SubscriptionStatusExpired            SubscriptionStatus = 2
	SubscriptionStatusBillingRetry       SubscriptionStatus = 3
	SubscriptionStatusBillingGracePeriod SubscriptionStatus = 4
	SubscriptionStatusRevoked            SubscriptionStatus = 5
)

// StatusResponse is the response from the subscription statuses endpoint.
type StatusResponse struct {
	Environment Environment                       `json:"environment,omitempty"`
	BundleID    string                            `json:"bundleId,omitempty"`
	AppAppleID  int64                             `json:"appAppleId,omitempty"`
	Data        []SubscriptionGroupIdentifierItem `json:"data,omitempty"`
}

// SubscriptionGroupIdentifierItem groups the latest transactions of one
// subscription group.
type SubscriptionGroupIdentifierItem struct {
	SubscriptionGroupIdentifier string                 `json:"subscriptionGroupIdentifier,omitempty"`
	LastTransactions            []LastTransactionsItem `json:"lastTransactions,omitempty"`
}

// LastTransactionsItem is the most recent signed transaction and renewal
// info for one subscription.
type LastTransactionsItem struct {
	Status                SubscriptionStatus `json:"status,omitempty"`
	OriginalTransactionID string             `json:"originalTransactionId,omitempty"`
	SignedTransactionInfo string             `json:"signedTransactionInfo,omitempty"`
	SignedRenewalInfo     string             `json:"signedRenewalInfo,omitempty"`
}

// SortOrder orders transaction history by modification date.
type SortOrder string

const (
	SortAscending  SortOrder = "ASCENDING"
	SortDescending SortOrder = "DESCENDING"
)

// ProductType filters transaction history by in-app purchase type.
type ProductType string

const (
	ProductTypeAutoRenewable ProductType = "AUTO_RENEWABLE"
	ProductTypeNonRenewable  ProductType = "NON_RENEWABLE"
	ProductTypeConsumable    ProductType = "CONSUMABLE"
	ProductTypeNonConsumable ProductType = "NON_CONSUMABLE"
)

// InAppOwnershipType describes how a transaction relates to the customer.
type InAppOwnershipType string

const (
	OwnershipTypeFamilyShared InAppOwnershipType = "FAMILY_SHARED"
	OwnershipTypePurchased    InAppOwnershipType = "PURCHASED"
)

// HistoryResponse is one page of a customer's transaction history.
// Revision is the opaque cursor for the next page while HasMore is true.
type HistoryResponse struct {
	Revision           string      `json:"revision,omitempty"`
	HasMore            bool        `json:"hasMore,omitempty"`
	BundleID           string      `json:"bundleId,omitempty"`
	AppAppleID         int64       `json:"appAppleId,omitempty"`
	Environment        Environment `json:"environment,omitempty"`
	SignedTransactions []string    `json:"signedTransactions,omitempty"`
}

// TransactionInfoResponse carries one signed transaction.
type TransactionInfoResponse struct {
	SignedTransactionInfo string `json:"signedTransactionInfo,omitempty"`
}

// RefundHistoryResponse is one page of a customer's refunded transactions.
type RefundHistoryResponse struct {
	SignedTransactions []string `json:"signedTransactions,omitempty"`
	Revision           string   `json:"revision,omitempty"`
	HasMore            bool     `json:"hasMore,omitempty"`
}

// OrderLookupStatus reports whether an order ID is valid.
type OrderLookupStatus int32

const (
	OrderLookupStatusValid   OrderLookupStatus = 0
	OrderLookupStatusInvalid OrderLookupStatus = 1
)

// OrderLookupResponse is the response from the order lookup endpoint.
type OrderLookupResponse struct {
	Status             OrderLookupStatus `json:"status"`
	SignedTransactions []string          `json:"signedTransactions,omitempty"`
}

// ExtendReasonCode is the declared reason for a renewal-date extension.
type ExtendReasonCode int32

const (
	ExtendReasonUndeclared           ExtendReasonCode = 0
	ExtendReasonCustomerSatisfaction ExtendReasonCode = 1
	ExtendReasonOther                ExtendReasonCode = 2
	ExtendReasonServiceIssueOrOutage ExtendReasonCode = 3
)

// ExtendRenewalDateRequest extends the renewal date of one subscription.
type ExtendRenewalDateRequest struct {
	ExtendByDays      int32            `json:"extendByDays"`
	ExtendReasonCode  ExtendReasonCode `json:"extendReasonCode"`
	RequestIdentifier string           `json:"requestIdentifier"`
}

// ExtendRenewalDateResponse is the outcome of a single-subscription
// renewal-date extension. EffectiveDate is epoch milliseconds.
type ExtendRenewalDateResponse struct {
	OriginalTransactionID string `json:"originalTransactionId,omitempty"`
	WebOrderLineItemID    string `json:"webOrderLineItemId,omitempty"`
	Success               bool   `json:"success,omitempty"`
	EffectiveDate         int64  `json:"effectiveDate,omitempty"`
}

// MassExtendRenewalDateRequest extends renewal dates for all active
// subscribers of a product, optionally limited to storefronts.
type MassExtendRenewalDateRequest struct {
	ExtendByDays           int32            `json:"extendByDays"`
	ExtendReasonCode       ExtendReasonCode `json:"extendReasonCode"`
	RequestIdentifier      string           `json:"requestIdentifier"`
	StorefrontCountryCodes []string         `json:"storefrontCountryCodes,omitempty"`
	ProductID              string           `json:"productId"`
}

// MassExtendRenewalDateResponse acknowledges a mass extension request.
type MassExtendRenewalDateResponse struct {
	RequestIdentifier string `json:"requestIdentifier,omitempty"`
}

// MassExtendRenewalDateStatusResponse reports progress of a mass
// extension. CompleteDate is epoch milliseconds.
type MassExtendRenewalDateStatusResponse struct {
	RequestIdentifier string `json:"requestIdentifier,omitempty"`
	Complete          bool   `json:"complete,omitempty"`
	CompleteDate      int64  `json:"completeDate,omitempty"`
	SucceededCount    int64  `json:"succeededCount,omitempty"`
	FailedCount       int64  `json:"failedCount,omitempty"`
}

// SendTestNotificationResponse carries the token identifying a requested
// test notification.
type SendTestNotificationResponse struct {
	TestNotificationToken string `json:"testNotificationToken,omitempty"`
}

// SendAttemptResult is the outcome of one server notification delivery
// attempt.
type SendAttemptResult string

const (
	SendAttemptSuccess                      SendAttemptResult = "SUCCESS"
	SendAttemptTimedOut                     SendAttemptResult = "TIMED_OUT"
	SendAttemptTLSIssue                     SendAttemptResult = "TLS_ISSUE"
	SendAttemptCircularRedirect             SendAttemptResult = "CIRCULAR_REDIRECT"
	SendAttemptNoResponse                   SendAttemptResult = "NO_RESPONSE"
	SendAttemptSocketIssue                  SendAttemptResult = "SOCKET_ISSUE"
	SendAttemptUnsupportedCharset           SendAttemptResult = "UNSUPPORTED_CHARSET"
	SendAttemptInvalidResponse              SendAttemptResult = "INVALID_RESPONSE"
	SendAttemptPrematureClose               SendAttemptResult = "PREMATURE_CLOSE"
	SendAttemptUnsuccessfulHTTPResponseCode SendAttemptResult = "UNSUCCESSFUL_HTTP_RESPONSE_CODE"
	SendAttemptOther                        SendAttemptResult = "OTHER"
)

// SendAttemptItem records one delivery attempt of a server notification.
// AttemptDate is epoch milliseconds.
type SendAttemptItem struct {
	AttemptDate       int64             `json:"attemptDate,omitempty"`
	SendAttemptResult SendAttemptResult `json:"sendAttemptResult,omitempty"`
}

// CheckTestNotificationResponse is the delivery status of a test
// notification.
type CheckTestNotificationResponse struct {
	SignedPayload string            `json:"signedPayload,omitempty"`
	SendAttempts  []SendAttemptItem `json:"sendAttempts,omitempty"`
}

// NotificationHistoryRequest filters the notification history listing.
// StartDate and EndDate are epoch milliseconds and required; at most one
// of TransactionID and NotificationType may be supplied.
type NotificationHistoryRequest struct {
	StartDate           int64  `json:"startDate"`
	EndDate             int64  `json:"endDate"`
	NotificationType    string `json:"notificationType,omitempty"`
	NotificationSubtype string `json:"notificationSubtype,omitempty"`
	TransactionID       string `json:"transactionId,omitempty"`
	OnlyFailures        bool   `json:"onlyFailures,omitempty"`
}

// NotificationHistoryResponse is one page of notification history.
type NotificationHistoryResponse struct {
	PaginationToken     string                            `json:"paginationToken,omitempty"`
	HasMore             bool                              `json:"hasMore,omitempty"`
	NotificationHistory []NotificationHistoryResponseItem `json:"notificationHistory,omitempty"`
}

// NotificationHistoryResponseItem is one notification and its delivery
// attempts.
type NotificationHistoryResponseItem struct {
	SignedPayload string            `json:"signedPayload,omitempty"`
	SendAttempts  []SendAttemptItem `json:"sendAttempts,omitempty"`
}

// ConsumptionStatus is the extent to which the customer consumed the
// in-app purchase.
type ConsumptionStatus int32

const (
	ConsumptionStatusUndeclared        ConsumptionStatus = 0
	ConsumptionStatusNotConsumed       ConsumptionStatus = 1
	ConsumptionStatusPartiallyConsumed ConsumptionStatus = 2
	ConsumptionStatusFullyConsumed     ConsumptionStatus = 3
)

// Platform is the platform on which the customer consumed the purchase.
type Platform int32

const (
	PlatformUndeclared Platform = 0
	PlatformApple      Platform = 1
	PlatformNonApple   Platform = 2
)

// DeliveryStatus describes whether the app delivered a working purchase.
type DeliveryStatus int32

const (
	DeliveryStatusDelivered          DeliveryStatus = 0
	DeliveryStatusQualityIssue       DeliveryStatus = 1
	DeliveryStatusWrongItem          DeliveryStatus = 2
	DeliveryStatusServerOutage       DeliveryStatus = 3
	DeliveryStatusCurrencyChange     DeliveryStatus = 4
	DeliveryStatusOtherDeliveryIssue DeliveryStatus = 5
)

// AccountTenure is the age bucket of the customer's account.
type AccountTenure int32

const (
	AccountTenureUndeclared     AccountTenure = 0
	AccountTenureZeroToThree    AccountTenure = 1
	AccountTenureThreeToTen     AccountTenure = 2
	AccountTenureTenToThirty    AccountTenure = 3
	AccountTenureThirtyToNinety AccountTenure = 4
	AccountTenureNinetyTo180    AccountTenure = 5
	AccountTenure180To365       AccountTenure = 6
	AccountTenureOver365        AccountTenure = 7
)

// PlayTime buckets how long the customer used the app.
type PlayTime int32

const (
	PlayTimeUndeclared        PlayTime = 0
	PlayTimeZeroToFiveMin     PlayTime = 1
	PlayTimeFiveToSixtyMin    PlayTime = 2
	PlayTimeOneToSixHours     PlayTime = 3
	PlayTimeSixToTwentyFour   PlayTime = 4
	PlayTimeOneToFourDays     PlayTime = 5
	PlayTimeFourToSixteenDays PlayTime = 6
	PlayTimeOverSixteenDays   PlayTime = 7
)

// LifetimeDollars buckets a lifetime USD amount (purchased or refunded).
type LifetimeDollars int32

const (
	LifetimeDollarsUndeclared LifetimeDollars = 0
	LifetimeDollarsZero       LifetimeDollars = 1
	LifetimeDollarsUpTo50     LifetimeDollars = 2
	LifetimeDollarsUpTo100    LifetimeDollars = 3
	LifetimeDollarsUpTo500    LifetimeDollars = 4
	LifetimeDollarsUpTo1000   LifetimeDollars = 5
	LifetimeDollarsUpTo2000   LifetimeDollars = 6
	LifetimeDollarsOver2000   LifetimeDollars = 7
)

// UserStatus is the standing of the customer's account.
type UserStatus int32

const (
	UserStatusUndeclared    UserStatus = 0
	UserStatusActive        UserStatus = 1
	UserStatusSuspended     UserStatus = 2
	UserStatusTerminated    UserStatus = 3
	UserStatusLimitedAccess UserStatus = 4
)

// RefundPreference is the developer's preferred refund outcome.
type RefundPreference int32

const (
	RefundPreferenceUndeclared   RefundPreference = 0
	RefundPreferenceGrant        RefundPreference = 1
	RefundPreferenceDecline      RefundPreference = 2
	RefundPreferenceNoPreference RefundPreference = 3
)

// ConsumptionRequest is the consumption information submitted in response
// to a CONSUMPTION_REQUEST notification.
type ConsumptionRequest struct {
	CustomerConsented        bool              `json:"customerConsented"`
	ConsumptionStatus        ConsumptionStatus `json:"consumptionStatus"`
	Platform                 Platform          `json:"platform"`
	SampleContentProvided    bool              `json:"sampleContentProvided"`
	DeliveryStatus           DeliveryStatus    `json:"deliveryStatus"`
	AppAccountToken          string            `json:"appAccountToken"`
	AccountTenure            AccountTenure     `json:"accountTenure"`
	PlayTime                 PlayTime          `json:"playTime"`
	LifetimeDollarsRefunded  LifetimeDollars   `json:"lifetimeDollarsRefunded"`
	LifetimeDollarsPurchased LifetimeDollars   `json:"lifetimeDollarsPurchased"`
	UserStatus               UserStatus        `json:"userStatus"`
	RefundPreference         RefundPreference  `json:"refundPreference,omitempty"`
}
