package rest

import (
	"context"
	"net/http"
	"net/url"

	flogerrors "github.com/dangolsanat/FLog/internal/errors"
	"github.com/dangolsanat/FLog/internal/types"
)

const (
	entriesPath    = "/rest/v1/food_entries"
	deviceFeedPath = "/rest/v1/rpc/get_device_feed"
)

// ListEntries fetches entries through a direct table query with
// PostgREST-style filter/order/limit parameters.
func ListEntries(ctx context.Context, c *Client, query url.Values) ([]types.FoodEntry, error) {
	var entries []types.FoodEntry
	req := Request{Method: http.MethodGet, Path: entriesPath, Query: query}
	if err := c.Do(ctx, req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeviceFeed invokes the get_device_feed procedure: the personal feed for
// deviceID ordered by meal date descending, optionally narrowed by a
// free-text search against title, description and ingredients. The search
// key is omitted entirely when search is empty (two-arity procedure).
func DeviceFeed(ctx context.Context, c *Client, deviceID, search string) ([]types.FoodEntry, error) {
	params := types.DeviceFeedParams{TargetDeviceID: deviceID}
	if search != "" {
		params.SearchQuery = &search
	}
	var entries []types.FoodEntry
	req := Request{Method: http.MethodPost, Path: deviceFeedPath, Body: params}
	if err := c.Do(ctx, req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEntry inserts the entry and returns the server-confirmed row.
func CreateEntry(ctx context.Context, c *Client, e types.FoodEntry) (*types.FoodEntry, error) {
	var rows []types.FoodEntry
	req := Request{Method: http.MethodPost, Path: entriesPath, Body: e, Prefer: PreferRepresentation}
	if err := c.Do(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, flogerrors.ErrInvalidResponse
	}
	return &rows[0], nil
}

// UpdateEntry replaces the full record for e.ID and returns the
// server-confirmed row.
func UpdateEntry(ctx context.Context, c *Client, e types.FoodEntry) (*types.FoodEntry, error) {
	q := url.Values{"id": {"eq." + e.ID}}
	var rows []types.FoodEntry
	req := Request{Method: http.MethodPatch, Path: entriesPath, Query: q, Body: e, Prefer: PreferRepresentation}
	if err := c.Do(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, flogerrors.ErrInvalidResponse
	}
	return &rows[0], nil
}

// DeleteEntry removes the row by id. The backend returns no body; deleting
// an id that no longer exists is not an error.
func DeleteEntry(ctx context.Context, c *Client, id string) error {
	q := url.Values{"id": {"eq." + id}}
	req := Request{Method: http.MethodDelete, Path: entriesPath, Query: q, Prefer: PreferMinimal}
	return c.Do(ctx, req, nil)
}
