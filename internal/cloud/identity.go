package cloud

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rajatjindal/cloud-plugin/pkg/types"
)

// ErrAuthPending signals that the user has not yet approved the device code.
var ErrAuthPending = errors.New("device authorization pending")

// GetCurrentUser returns the account the token belongs to. Doubles as the
// auth probe for `cloud status`.
func (c *Client) GetCurrentUser(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return &user, nil
}

// CreateDeviceCode starts the device authorization flow.
func (c *Client) CreateDeviceCode(ctx context.Context) (*types.DeviceCode, error) {
	var code types.DeviceCode
	if err := c.do(ctx, http.MethodPost, "/api/device-codes", nil, nil, &code); err != nil {
		return nil, fmt.Errorf("failed to create device code: %w", err)
	}
	return &code, nil
}

type accessTokenRequest struct {
	DeviceCode string `json:"device_code"`
}

// CreateAccessToken exchanges an approved device code for an access token.
// Returns ErrAuthPending while the user has not finished authorizing.
func (c *Client) CreateAccessToken(ctx context.Context, deviceCode string) (*types.TokenInfo, error) {
	var token types.TokenInfo
	err := c.do(ctx, http.MethodPost, "/api/access-tokens", nil, accessTokenRequest{DeviceCode: deviceCode}, &token)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrAuthPending
	}
	if err != nil {
		return nil, fmt.Errorf("failed to exchange device code: %w", err)
	}
	return &token, nil
}
