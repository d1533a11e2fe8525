package appstoreserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetAllSubscriptionStatuses gets the statuses of all of the customer's
// auto-renewable subscriptions in the app. When statuses are supplied, the
// response is filtered to subscriptions in those statuses; filters are sent
// as repeated query values in the order given.
func (c *Client) GetAllSubscriptionStatuses(ctx context.Context, transactionID string, statuses ...SubscriptionStatus) (*StatusResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	for _, status := range statuses {
		query.Add("status", strconv.FormatInt(int64(status), 10))
	}

	path := fmt.Sprintf("/inApps/v1/subscriptions/%s", url.PathEscape(transactionID))
	var result StatusResponse
	if err := c.api.Do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// ExtendSubscriptionRenewalDate extends the renewal date of one customer's
// active subscription. The call is not deduplicated client-side; reuse of
// the request identifier is the server's concern.
func (c *Client) ExtendSubscriptionRenewalDate(ctx context.Context, originalTransactionID string, req *ExtendRenewalDateRequest) (*ExtendRenewalDateResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/inApps/v1/subscriptions/extend/%s", url.PathEscape(originalTransactionID))
	var result ExtendRenewalDateResponse
	if err := c.api.Do(ctx, http.MethodPut, path, nil, req, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// ExtendRenewalDateForAllActiveSubscribers extends the renewal date for all
// of a product's active subscribers, optionally limited to storefronts.
func (c *Client) ExtendRenewalDateForAllActiveSubscribers(ctx context.Context, req *MassExtendRenewalDateRequest) (*MassExtendRenewalDateResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	var result MassExtendRenewalDateResponse
	if err := c.api.Do(ctx, http.MethodPost, "/inApps/v1/subscriptions/extend/mass", nil, req, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// GetStatusOfSubscriptionRenewalDateExtensions checks the progress of a
// mass renewal-date extension previously submitted with the given request
// identifier.
func (c *Client) GetStatusOfSubscriptionRenewalDateExtensions(ctx context.Context, productID, requestIdentifier string) (*MassExtendRenewalDateStatusResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/inApps/v1/subscriptions/extend/mass/%s/%s",
		url.PathEscape(productID), url.PathEscape(requestIdentifier))
	var result MassExtendRenewalDateStatusResponse
	if err := c.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
