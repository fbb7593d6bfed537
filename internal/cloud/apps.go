package cloud

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rajatjindal/cloud-plugin/pkg/types"
)

type appListResponse struct {
	Items []types.App `json:"items"`
}

// ListApps returns all apps visible to the current token.
func (c *Client) ListApps(ctx context.Context) ([]types.App, error) {
	var resp appListResponse
	if err := c.do(ctx, http.MethodGet, "/api/apps", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}
	return resp.Items, nil
}

// GetAppID resolves an app name to its id. Returns nil when no app with
// that name exists.
func (c *Client) GetAppID(ctx context.Context, name string) (*uuid.UUID, error) {
	apps, err := c.ListApps(ctx)
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		if app.Name == name {
			id := app.ID
			return &id, nil
		}
	}
	return nil, nil
}
