package appstoreserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetRefundHistory gets one page of the customer's refunded and revoked
// transactions for the app. revision is the cursor from a previous page;
// pass an empty string for the first page.
func (c *Client) GetRefundHistory(ctx context.Context, transactionID, revision string) (*RefundHistoryResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if revision != "" {
		query.Add("revision", revision)
	}

	path := fmt.Sprintf("/inApps/v2/refund/lookup/%s", url.PathEscape(transactionID))
	var result RefundHistoryResponse
	if err := c.api.Do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
