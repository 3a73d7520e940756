package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	flogerrors "github.com/dangolsanat/FLog/internal/errors"
	"github.com/dangolsanat/FLog/internal/types"
)

const profilesPath = "/rest/v1/device_profiles"

// GetProfile looks up the profile row for deviceID. A missing row is not an
// error; both return values are nil.
func GetProfile(ctx context.Context, c *Client, deviceID string) (*types.DeviceProfile, error) {
	q := url.Values{"id": {"eq." + deviceID}, "limit": {"1"}}
	var rows []types.DeviceProfile
	req := Request{Method: http.MethodGet, Path: profilesPath, Query: q}
	if err := c.Do(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// CreateProfile inserts the profile and returns the server-confirmed row.
func CreateProfile(ctx context.Context, c *Client, p types.DeviceProfile) (*types.DeviceProfile, error) {
	var rows []types.DeviceProfile
	req := Request{Method: http.MethodPost, Path: profilesPath, Body: p, Prefer: PreferRepresentation}
	if err := c.Do(ctx, req, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, flogerrors.ErrInvalidResponse
	}
	return &rows[0], nil
}

// TouchProfile refreshes the row's last_active timestamp.
func TouchProfile(ctx context.Context, c *Client, deviceID string, at time.Time) error {
	q := url.Values{"id": {"eq." + deviceID}}
	body := map[string]time.Time{"last_active": at}
	req := Request{Method: http.MethodPatch, Path: profilesPath, Query: q, Body: body, Prefer: PreferMinimal}
	return c.Do(ctx, req, nil)
}
