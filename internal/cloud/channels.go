package cloud

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/rajatjindal/cloud-plugin/pkg/types"
)

type channelListResponse struct {
	Items []types.Channel `json:"items"`
}

type channelLogsResponse struct {
	Entries []types.LogEntry `json:"entries"`
}

// ListChannels returns the channels of an app.
func (c *Client) ListChannels(ctx context.Context, appID uuid.UUID) ([]types.Channel, error) {
	var resp channelListResponse
	path := fmt.Sprintf("/api/apps/%s/channels", appID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return resp.Items, nil
}

// GetChannelID resolves (app id, channel name) to the channel id.
// Returns ErrNotFound when the app has no channel with that name.
func (c *Client) GetChannelID(ctx context.Context, appID uuid.UUID, name string) (uuid.UUID, error) {
	channels, err := c.ListChannels(ctx, appID)
	if err != nil {
		return uuid.Nil, err
	}

	for _, ch := range channels {
		if ch.Name == name {
			return ch.ID, nil
		}
	}
	return uuid.Nil, fmt.Errorf("channel %q: %w", name, ErrNotFound)
}

// ChannelLogs fetches log entries for a channel. maxLines bounds the number
// of lines returned (nil for unbounded); since restricts the result to lines
// strictly after the given RFC3339 timestamp (nil for no lower bound).
// Entries come back newest-first.
func (c *Client) ChannelLogs(ctx context.Context, channelID uuid.UUID, maxLines *int, since *string) ([]types.LogEntry, error) {
	query := url.Values{}
	if maxLines != nil {
		query.Set("max_lines", strconv.Itoa(*maxLines))
	}
	if since != nil {
		query.Set("since", *since)
	}

	var resp channelLogsResponse
	path := fmt.Sprintf("/api/channels/%s/logs", channelID)
	if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch channel logs: %w", err)
	}
	return resp.Entries, nil
}
