package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taext/decimaltime"
	"github.com/taext/decimaltime/internal/config"
)

// fixedClock pins the handler to a known instant for deterministic assertions.
type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

// newTestServer builds a ClockServer frozen at noon on March 14, 2025 (UTC),
// day 73 of the year.
func newTestServer(layout string, loc *time.Location) *ClockServer {
	srv := NewClockServer("0", layout, loc) // Port irrelevant for handler tests
	srv.Clock = fixedClock{at: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)}
	return srv
}

// -----------------------------------------------------------------------------
// Unit Tests (White-Box Testing of Handler Logic)
// -----------------------------------------------------------------------------

// TestHandler_ServingContent verifies headers and the rendered decimal time.
func TestHandler_ServingContent(t *testing.T) {
	srv := newTestServer("%Y.%D.%F", time.UTC)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.handleClockRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextPlain, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Equal(t, config.CacheControlNoStore, resp.Header.Get(config.HeaderCacheControl))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "2025.73.5\n", string(body))
}

// TestHandler_DefaultLayout verifies rendering through the library default.
func TestHandler_DefaultLayout(t *testing.T) {
	srv := newTestServer(decimaltime.DefaultLayout, time.UTC)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.handleClockRequest(w, req)

	body, _ := io.ReadAll(w.Result().Body)
	assert.Equal(t, "2025.073 0.5\n", string(body))
}

// TestHandler_LocationShift verifies the clock is read in the configured zone.
func TestHandler_LocationShift(t *testing.T) {
	// Noon UTC is 18:00 at UTC+6, which is 0.75 of the day.
	loc := time.FixedZone("UTC+6", 6*3600)
	srv := newTestServer("%Y.%D.%F", loc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.handleClockRequest(w, req)

	body, _ := io.ReadAll(w.Result().Body)
	assert.Equal(t, "2025.73.75\n", string(body))
}

// TestHandler_Head verifies HEAD gets headers but no body.
func TestHandler_Head(t *testing.T) {
	srv := newTestServer("%Y.%D.%F", time.UTC)

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	w := httptest.NewRecorder()
	srv.handleClockRequest(w, req)

	resp := w.Result()
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextPlain, resp.Header.Get(config.HeaderContentType))

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body, "HEAD responses must not carry a body")
}

// TestHandler_MethodNotAllowed ensures strictly GET and HEAD are accepted.
func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer("%Y.%D.%F", time.UTC)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/", nil)
			w := httptest.NewRecorder()

			srv.handleClockRequest(w, req)

			resp := w.Result()
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
		})
	}
}

// TestHandler_FreshReadingPerRequest verifies that consecutive requests track
// a moving clock instead of serving a cached value.
func TestHandler_FreshReadingPerRequest(t *testing.T) {
	srv := NewClockServer("0", "%f", time.UTC)

	read := func() string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		srv.handleClockRequest(w, req)
		body, _ := io.ReadAll(w.Result().Body)
		return string(body)
	}

	srv.Clock = fixedClock{at: time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)}
	assert.Equal(t, "0.25\n", read())

	srv.Clock = fixedClock{at: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)}
	assert.Equal(t, "0.75\n", read())
}

// -----------------------------------------------------------------------------
// Lifecycle Tests
// -----------------------------------------------------------------------------

// TestStart_RequiresPort verifies the configuration guard in Start.
func TestStart_RequiresPort(t *testing.T) {
	srv := NewClockServer("", "%f", time.UTC)

	err := srv.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPortRequired)
}
