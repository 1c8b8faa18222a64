package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

// Upstream paths
const (
	PathLogin            = "/api/users/login"
	PathUsers            = "/api/users"
	PathPayments         = "/api/store-app/payments"
	PathReadings         = "/api/store-app/readings"
	PathActivity         = "/api/store-app/activity"
	PathMachinesStatus   = "/api/store-app/machines/status"
	PathStores           = "/api/stores"
	PathStoreOptions     = "/api/stores/options"
	PathBankAccounts     = "/api/favorite-bank-accounts"
	PathWithdrawalApply  = "/api/withdrawal/apply"
	PathWithdrawalList   = "/api/withdrawal/my-requests"
	pathExternalReadings = "/api/external/store/%d/readings"
)

// ExternalReadingsPath returns the API-key readings path for a store
func ExternalReadingsPath(storeID int) string {
	return fmt.Sprintf(pathExternalReadings, storeID)
}

// PaymentsParams encodes a payments query the way the upstream expects it
func PaymentsParams(q domain.PaymentsQuery) url.Values {
	params := url.Values{}
	params.Set("start_date", q.StartDate)
	params.Set("end_date", q.EndDate)
	if q.StoreID != "" {
		params.Set("store_id", q.StoreID)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(q.PageSize))
	}
	return params
}

// GetPayments fetches one page of the payments collection
func (c *Client) GetPayments(ctx context.Context, token string, q domain.PaymentsQuery) (*domain.PaymentsPage, error) {
	var page domain.PaymentsPage
	err := c.getJSON(ctx, fmt.Sprintf("get payments page %d", q.Page), request{
		path:          PathPayments,
		query:         PaymentsParams(q),
		authorization: BearerToken(token),
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetStoreOptions fetches the store list used by the store selector. The
// body is kept raw so it can be served back unchanged.
func (c *Client) GetStoreOptions(ctx context.Context, token string) (json.RawMessage, error) {
	var options json.RawMessage
	err := c.getJSON(ctx, "get store options", request{
		path:          PathStoreOptions,
		authorization: BearerToken(token),
	}, &options)
	if err != nil {
		return nil, err
	}
	return options, nil
}

// GetStoreReadings fetches the machine readings of a store with the server API key
func (c *Client) GetStoreReadings(ctx context.Context, storeID int) (*domain.StoreReadings, error) {
	if !c.HasAPIKey() {
		return nil, &UpstreamError{Op: "get store readings", Err: ErrAPIKeyMissing}
	}

	var readings domain.StoreReadings
	err := c.getJSON(ctx, "get store readings", request{
		path:      ExternalReadingsPath(storeID),
		useAPIKey: true,
	}, &readings)
	if err != nil {
		return nil, err
	}
	return &readings, nil
}
