package server

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/app"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/domain"
)

// openStream connects to the SSE endpoint of a running test server and
// returns a line reader over the response body.
func openStream(t *testing.T, baseURL string) *bufio.Reader {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/orders/stream", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	return bufio.NewReader(resp.Body)
}

// readEvent reads lines until it finds the next data or comment frame.
func readEvent(t *testing.T, reader *bufio.Reader) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line != "" {
			return line
		}
	}
	t.Fatal("timed out waiting for stream event")
	return ""
}

func waitForDisplays(t *testing.T, svc *app.OrderService, expected int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return svc.LiveDisplays() == expected
	}, 2*time.Second, 5*time.Millisecond)
}

func TestOrderStream_DeliversSubmittedOrder(t *testing.T) {
	srv, svc := testServer(t, nil, nil)
	ts := httptest.NewServer(srv.echo)
	t.Cleanup(ts.Close)

	reader := openStream(t, ts.URL)
	waitForDisplays(t, svc, 1)

	placed, err := svc.PlaceOrder([]domain.OrderItem{
		{MenuItemID: "juice-001", Name: "Fresh Orange Juice", Quantity: 2},
	})
	require.NoError(t, err)

	line := readEvent(t, reader)
	require.True(t, strings.HasPrefix(line, "data: "), "unexpected frame: %s", line)

	var got domain.Order
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &got))
	assert.Equal(t, placed.ID, got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "juice-001", got.Items[0].MenuItemID)
	assert.Equal(t, "Fresh Orange Juice", got.Items[0].Name)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestOrderStream_DeliversOrdersInSubmissionOrder(t *testing.T) {
	srv, svc := testServer(t, nil, nil)
	ts := httptest.NewServer(srv.echo)
	t.Cleanup(ts.Close)

	reader := openStream(t, ts.URL)
	waitForDisplays(t, svc, 1)

	items := []domain.OrderItem{{MenuItemID: "juice-002", Name: "Green Detox Smoothie", Quantity: 1}}
	_, err := svc.PlaceOrder(items)
	require.NoError(t, err)
	_, err = svc.PlaceOrder(items)
	require.NoError(t, err)

	var first, second domain.Order
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(readEvent(t, reader), "data: ")), &first))
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(readEvent(t, reader), "data: ")), &second))
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
}

func TestOrderStream_KeepaliveOnIdleConnection(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srv, svc := testServer(t, nil, clock)
	ts := httptest.NewServer(srv.echo)
	t.Cleanup(ts.Close)

	reader := openStream(t, ts.URL)
	waitForDisplays(t, svc, 1)

	// Wait for the stream loop to create its keepalive ticker, then fire it.
	clock.BlockUntil(1)
	clock.Advance(testConfig().KeepaliveInterval)

	line := readEvent(t, reader)
	assert.Equal(t, ": keepalive", line)
}

func TestOrderStream_DisconnectUnsubscribes(t *testing.T) {
	srv, svc := testServer(t, nil, nil)
	ts := httptest.NewServer(srv.echo)
	t.Cleanup(ts.Close)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/orders/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	waitForDisplays(t, svc, 1)

	resp.Body.Close()
	waitForDisplays(t, svc, 0)

	// Subsequent publishes proceed without error with nobody connected.
	_, err = svc.PlaceOrder([]domain.OrderItem{{MenuItemID: "juice-001", Name: "Fresh Orange Juice", Quantity: 1}})
	require.NoError(t, err)
}

func TestOrderStream_RejectedWhenAtCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.MaxStreamConns = 1
	srv, svc := testServer(t, cfg, nil)
	ts := httptest.NewServer(srv.echo)
	t.Cleanup(ts.Close)

	_ = openStream(t, ts.URL)
	waitForDisplays(t, svc, 1)

	resp, err := http.Get(ts.URL + "/api/orders/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
