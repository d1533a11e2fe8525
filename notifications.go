package appstoreserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RequestTestNotification asks the App Store server to send a TEST
// notification to the app's server notification URL. The returned token
// identifies the notification for GetTestNotificationStatus.
func (c *Client) RequestTestNotification(ctx context.Context) (*SendTestNotificationResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	var result SendTestNotificationResponse
	if err := c.api.Do(ctx, http.MethodPost, "/inApps/v1/notifications/test", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// GetTestNotificationStatus checks delivery of a test notification
// previously requested with RequestTestNotification.
func (c *Client) GetTestNotificationStatus(ctx context.Context, testNotificationToken string) (*CheckTestNotificationResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/inApps/v1/notifications/test/%s", url.PathEscape(testNotificationToken))
	var result CheckTestNotificationResponse
	if err := c.api.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// GetNotificationHistory gets one page of the app's server notification
// history. paginationToken is the cursor from a previous page; pass an
// empty string for the first page.
func (c *Client) GetNotificationHistory(ctx context.Context, paginationToken string, req *NotificationHistoryRequest) (*NotificationHistoryResponse, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	query := url.Values{}
	if paginationToken != "" {
		query.Add("paginationToken", paginationToken)
	}

	var result NotificationHistoryResponse
	if err := c.api.Do(ctx, http.MethodPost, "/inApps/v1/notifications/history", query, req, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
