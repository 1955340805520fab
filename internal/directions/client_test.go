package directions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystroll/backend/internal/directions"
	"github.com/citystroll/backend/internal/domain"
)

func query() domain.DirectionsQuery {
	return domain.DirectionsQuery{
		OriginPlaceID:      "ChIJOrigin",
		DestinationPlaceID: "ChIJDest",
		Waypoints:          "via:ChIJMid",
	}
}

// newStub starts an httptest server answering every request with the given
// status code and body, and returns a client pointed at it.
func newStub(t *testing.T, status int, body string) *directions.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return directions.NewClient("secret-key", directions.WithBaseURL(srv.URL))
}

func TestRoute_OK(t *testing.T) {
	var captured url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		_, _ = w.Write([]byte(`{"status":"OK","routes":[{"overview_polyline":{"points":"a~l~Fjk~uOwHJy@P"}}]}`))
	}))
	t.Cleanup(srv.Close)
	c := directions.NewClient("secret-key", directions.WithBaseURL(srv.URL))

	got, err := c.Route(context.Background(), query(), domain.ModeWalking)

	require.NoError(t, err)
	assert.Equal(t, "a~l~Fjk~uOwHJy@P", got.Points)
	assert.Equal(t, "place_id:ChIJOrigin", captured.Get("origin"))
	assert.Equal(t, "place_id:ChIJDest", captured.Get("destination"))
	assert.Equal(t, "walking", captured.Get("mode"))
	assert.Equal(t, "via:ChIJMid", captured.Get("waypoints"))
	assert.Equal(t, "secret-key", captured.Get("key"))
}

func TestRoute_ZeroResults(t *testing.T) {
	c := newStub(t, http.StatusOK, `{"status":"ZERO_RESULTS","routes":[]}`)

	_, err := c.Route(context.Background(), query(), domain.ModeWalking)

	assert.ErrorIs(t, err, directions.ErrZeroResults)
}

func TestRoute_OKButEmptyRoutes(t *testing.T) {
	// Some responses report OK with an empty route list; treat it like
	// ZERO_RESULTS so the caller falls back to the next mode.
	c := newStub(t, http.StatusOK, `{"status":"OK","routes":[]}`)

	_, err := c.Route(context.Background(), query(), domain.ModeWalking)

	assert.ErrorIs(t, err, directions.ErrZeroResults)
}

func TestRoute_APIStatusError(t *testing.T) {
	c := newStub(t, http.StatusOK, `{"status":"REQUEST_DENIED","routes":[]}`)

	_, err := c.Route(context.Background(), query(), domain.ModeWalking)

	require.Error(t, err)
	assert.NotErrorIs(t, err, directions.ErrZeroResults)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestRoute_HTTPError(t *testing.T) {
	c := newStub(t, http.StatusBadGateway, "upstream broke")

	_, err := c.Route(context.Background(), query(), domain.ModeWalking)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRoute_MalformedPayload(t *testing.T) {
	c := newStub(t, http.StatusOK, `{"status":`)

	_, err := c.Route(context.Background(), query(), domain.ModeWalking)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestRequestURL_RedactsKey(t *testing.T) {
	c := directions.NewClient("secret-key")

	u := c.RequestURL(query(), domain.ModeDriving)

	assert.NotContains(t, u, "secret-key")
	assert.Contains(t, u, "key=REDACTED")
	assert.Contains(t, u, "mode=driving")
	assert.Contains(t, u, url.QueryEscape("place_id:ChIJOrigin"))
}

func TestRequestURL_OmitsEmptyWaypoints(t *testing.T) {
	c := directions.NewClient("secret-key")

	u := c.RequestURL(domain.DirectionsQuery{OriginPlaceID: "a", DestinationPlaceID: "b"}, domain.ModeWalking)

	assert.NotContains(t, u, "waypoints")
}
