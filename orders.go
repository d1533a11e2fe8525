package appstoreserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// LookUpOrderID gets the customer's in-app purchases for a customer
// support order ID. A response with OrderLookupStatusInvalid means the
// order ID does not belong to this app.
func (c *Client) LookUpOrderID(ctx context.Context, orderID string) (*OrderLookupResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/inApps/v1/lookup/%s", url.PathEscape(orderID))
	var result OrderLookupResponse
	if err := c.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
