package cloud_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatjindal/cloud-plugin/internal/cloud"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...cloud.ClientOption) *cloud.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]cloud.ClientOption{cloud.WithBaseURL(server.URL)}, opts...)
	client, err := cloud.NewClient(context.Background(), opts...)
	require.NoError(t, err)
	return client
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"items": []}`)
	}), cloud.WithToken("secret-token"))

	_, err := client.ListApps(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestGetAppID(t *testing.T) {
	appID := uuid.New()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/apps", r.URL.Path)
		fmt.Fprintf(w, `{"items": [{"id": %q, "name": "my-app"}]}`, appID)
	}))

	got, err := client.GetAppID(context.Background(), "my-app")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, appID, *got)

	// Absent app resolves to nil, not an error.
	got, err = client.GetAppID(context.Background(), "other-app")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetChannelID(t *testing.T) {
	appID := uuid.New()
	channelID := uuid.New()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/api/apps/%s/channels", appID), r.URL.Path)
		fmt.Fprintf(w, `{"items": [{"id": %q, "name": "spin-deploy", "app_id": %q}]}`, channelID, appID)
	}))

	got, err := client.GetChannelID(context.Background(), appID, "spin-deploy")
	require.NoError(t, err)
	assert.Equal(t, channelID, got)

	_, err = client.GetChannelID(context.Background(), appID, "preview")
	require.ErrorIs(t, err, cloud.ErrNotFound)
}

func TestChannelLogsQueryParams(t *testing.T) {
	channelID := uuid.New()
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/api/channels/%s/logs", channelID), r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"entries": [{"log_lines": [{"time": "2024-05-01T12:00:00Z", "line": "started"}]}]}`)
	}))

	maxLines := 10
	since := "2024-05-01T11:00:00Z"
	entries, err := client.ChannelLogs(context.Background(), channelID, &maxLines, &since)
	require.NoError(t, err)

	assert.Equal(t, []string{"10"}, gotQuery["max_lines"])
	assert.Equal(t, []string{since}, gotQuery["since"])

	require.Len(t, entries, 1)
	require.Len(t, entries[0].LogLines, 1)
	require.NotNil(t, entries[0].LogLines[0].Line)
	assert.Equal(t, "started", *entries[0].LogLines[0].Line)
}

func TestChannelLogsOmitsUnsetParams(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"entries": []}`)
	}))

	entries, err := client.ChannelLogs(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, gotQuery)
}

func TestServerErrorsCarryStatusAndBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "channel gone", http.StatusInternalServerError)
	}))

	_, err := client.ChannelLogs(context.Background(), uuid.New(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "channel gone")
}

func TestCreateAccessTokenPendingUntilApproved(t *testing.T) {
	approved := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/access-tokens", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		if !approved {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"token": "issued-token", "expiration": "2024-06-01T00:00:00Z"}`)
	}))

	_, err := client.CreateAccessToken(context.Background(), "device-123")
	require.ErrorIs(t, err, cloud.ErrAuthPending)

	approved = true
	token, err := client.CreateAccessToken(context.Background(), "device-123")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token.Token)
	assert.Equal(t, "2024-06-01T00:00:00Z", token.Expiration)
}

func TestGetCurrentUser(t *testing.T) {
	userID := uuid.New()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/me", r.URL.Path)
		fmt.Fprintf(w, `{"id": %q, "email": "dev@example.com"}`, userID)
	}), cloud.WithToken("secret-token"))

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "dev@example.com", user.Email)
}
