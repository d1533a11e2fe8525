package appstoreserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TransactionHistoryVersion selects which version of the transaction
// history endpoint to call.
type TransactionHistoryVersion string

const (
	// TransactionHistoryV1 is the older history endpoint. The service
	// deprecated it in favor of v2 but still serves it.
	TransactionHistoryV1 TransactionHistoryVersion = "v1"
	// TransactionHistoryV2 is the current history endpoint.
	TransactionHistoryV2 TransactionHistoryVersion = "v2"
)

// TransactionHistoryQuery filters and pages a transaction history listing.
// The zero value requests everything. Repeated filters (product IDs, types,
// subscription group identifiers) are sent as repeated query values in the
// order given.
type TransactionHistoryQuery struct {
	// Revision is the cursor from a previous page's response.
	Revision string
	// StartDate and EndDate bound the listing; they serialize as
	// epoch-millisecond strings, rounded to the nearest millisecond.
	StartDate time.Time
	EndDate   time.Time

	ProductIDs                   []string
	ProductTypes                 []ProductType
	Sort                         SortOrder
	SubscriptionGroupIdentifiers []string
	InAppOwnershipType           InAppOwnershipType
	// Revoked filters revoked transactions in or out; nil leaves both in.
	Revoked *bool
}

func (q *TransactionHistoryQuery) values() url.Values {
	query := url.Values{}
	if q == nil {
		return query
	}
	if q.Revision != "" {
		query.Add("revision", q.Revision)
	}
	if !q.StartDate.IsZero() {
		query.Add("startDate", epochMillis(q.StartDate))
	}
	if !q.EndDate.IsZero() {
		query.Add("endDate", epochMillis(q.EndDate))
	}
	for _, id := range q.ProductIDs {
		query.Add("productId", id)
	}
	for _, pt := range q.ProductTypes {
		query.Add("productType", string(pt))
	}
	if q.Sort != "" {
		query.Add("sort", string(q.Sort))
	}
	for _, id := range q.SubscriptionGroupIdentifiers {
		query.Add("subscriptionGroupIdentifier", id)
	}
	if q.InAppOwnershipType != "" {
		query.Add("inAppOwnershipType", string(q.InAppOwnershipType))
	}
	if q.Revoked != nil {
		query.Add("revoked", strconv.FormatBool(*q.Revoked))
	}
	return query
}

func epochMillis(t time.Time) string {
	return strconv.FormatInt(t.Round(time.Millisecond).UnixMilli(), 10)
}

// GetTransactionHistory gets one page of the customer's transaction
// history for the app. An empty version selects v2.
func (c *Client) GetTransactionHistory(ctx context.Context, transactionID string, query *TransactionHistoryQuery, version TransactionHistoryVersion) (*HistoryResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	if version == "" {
		version = TransactionHistoryV2
	}
	path := fmt.Sprintf("/inApps/%s/history/%s", version, url.PathEscape(transactionID))
	var result HistoryResponse
	if err := c.api.Do(ctx, http.MethodGet, path, query.values(), nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// GetTransactionInfo gets the signed transaction for a single transaction
// identifier.
func (c *Client) GetTransactionInfo(ctx context.Context, transactionID string) (*TransactionInfoResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/inApps/v1/transactions/%s", url.PathEscape(transactionID))
	var result TransactionInfoResponse
	if err := c.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// SendConsumptionData submits consumption information in response to a
// CONSUMPTION_REQUEST notification. A successful call has no response body.
func (c *Client) SendConsumptionData(ctx context.Context, transactionID string, req *ConsumptionRequest) error {
	if err := c.checkClosed(); err != nil {
		return err
	}

	path := fmt.Sprintf("/inApps/v1/transactions/consumption/%s", url.PathEscape(transactionID))
	if err := c.api.Do(ctx, http.MethodPut, path, nil, req, nil); err != nil {
		return wrapError(err)
	}
	return nil
}
