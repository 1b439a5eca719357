package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/config"
	"shortlink/internal/domain"
	"shortlink/internal/metrics"
	"shortlink/internal/repository"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg, err := config.Parse()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewRecorder(&cfg.Metrics, logger)
	e, err := newServer(cfg, repository.NewMemoryStore(), recorder, logger)
	require.NoError(t, err)
	return e
}

func call(e *echo.Echo, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_LinkLifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodPost, "/api/urls", `{"originalUrl":"https://go.dev/doc","slug":"godoc"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var link domain.ShortLink
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
	assert.Equal(t, "godoc", link.Slug)
	assert.True(t, link.Active)

	rec = call(e, http.MethodPost, "/api/urls", `{"originalUrl":"https://example.com","slug":"godoc"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(e, http.MethodGet, "/api/r/godoc", "",
		"Referer", "https://twitter.com/someone",
		"User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://go.dev/doc", rec.Header().Get(echo.HeaderLocation))

	rec = call(e, http.MethodGet, "/api/urls/godoc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
	assert.Equal(t, int64(1), link.Clicks)

	rec = call(e, http.MethodGet, "/api/analytics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.AnalyticsSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(1), summary.TotalClicks)
	assert.Equal(t, 1, summary.TotalLinks)
	assert.Equal(t, 1, summary.DeviceStats.Mobile)
	assert.Equal(t, map[string]int{"twitter": 1}, summary.ReferrerStats)

	id := strconv.FormatInt(link.ID, 10)
	rec = call(e, http.MethodGet, "/api/analytics/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail domain.LinkAnalytics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.Len(t, detail.ClickEvents, 1)
	assert.Equal(t, domain.DeviceMobile, detail.ClickEvents[0].Device)

	rec = call(e, http.MethodPatch, "/api/urls/"+id, `{"active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(e, http.MethodGet, "/api/r/godoc", "")
	assert.Equal(t, http.StatusGone, rec.Code)

	rec = call(e, http.MethodDelete, "/api/urls/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = call(e, http.MethodGet, "/api/urls/godoc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = call(e, http.MethodGet, "/api/analytics/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GeneratedSlugAndExpiry(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodPost, "/api/urls", `{"originalUrl":"https://example.com","expiresAt":"2000-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var link domain.ShortLink
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
	assert.GreaterOrEqual(t, len(link.Slug), 8)
	require.NotNil(t, link.ExpiresAt)

	rec = call(e, http.MethodGet, "/api/r/"+link.Slug, "")
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")

	rec = call(e, http.MethodGet, "/api/urls/"+link.Slug, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
	assert.Zero(t, link.Clicks)
}

func TestServer_ExpiresAtWithoutOffset(t *testing.T) {
	e := newTestServer(t)

	for _, raw := range []string{"2030-01-01T00:00:00", "2030-01-01"} {
		rec := call(e, http.MethodPost, "/api/urls", `{"originalUrl":"https://a.example/y","expiresAt":"`+raw+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var link domain.ShortLink
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
		require.NotNil(t, link.ExpiresAt)
		assert.True(t, link.ExpiresAt.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)), raw)

		rec = call(e, http.MethodGet, "/api/r/"+link.Slug, "")
		assert.Equal(t, http.StatusFound, rec.Code)
	}
}

func TestServer_ValidationErrors(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodPost, "/api/urls", `{"originalUrl":"not a url","slug":"has space"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid URL data", body.Error)
	assert.Contains(t, body.Details, "originalUrl")
	assert.Contains(t, body.Details, "slug")

	rec = call(e, http.MethodPost, "/api/urls", `{"originalUrl":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body.Details = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid URL data", body.Error)
	assert.Contains(t, body.Details, "body")

	rec = call(e, http.MethodDelete, "/api/urls/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_EmptyList(t *testing.T) {
	e := newTestServer(t)

	rec := call(e, http.MethodGet, "/api/urls", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	e := newTestServer(t)

	call(e, http.MethodGet, "/api/r/missing", "")

	rec := call(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shortlink_events_total{event="link_not_found"} 1`)
	assert.Contains(t, rec.Body.String(), `route="/api/r/:slug"`)
}
