package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConciergeBooking/pkg/metrics"
)

func TestSession(t *testing.T) {
	var seen string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetSessionID(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, " abc-123 ")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc-123", seen)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSessionID_Missing(t *testing.T) {
	_, ok := GetSessionID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(6, 2)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("2.2.2.2"), "limits are per client")

	// 6 в минуту - один токен за 10 секунд
	now = now.Add(10 * time.Second)
	assert.True(t, limiter.Allow("1.1.1.1"))

	now = now.Add(time.Hour)
	limiter.visitors["2.2.2.2"].lastSeen = now
	assert.Equal(t, 1, limiter.Cleanup(30*time.Minute))
	assert.Len(t, limiter.visitors, 1)
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(60, 1)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/services/inquiry", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/services/inquiry", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
}

func TestRateLimiter_RejectHandler(t *testing.T) {
	limiter := NewRateLimiter(60, 1, WithRejectHandler(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}`))
	}))
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/services/inquiry", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/services/inquiry", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"slow down"}`, rec.Body.String())
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	limiter := NewRateLimiter(60, 1)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	request := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/services/inquiry", nil)
		req.RemoteAddr = "198.51.100.9:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, request("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("203.0.113.2"), "spoofed header does not reset the limit")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", ClientIP(req, true))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(req, true))
	assert.Equal(t, "10.0.0.1", ClientIP(req, false))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New("concierge-test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "concierge-test"))
	r.HandleFunc("/api/v1/services/{serviceType}/catalog", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services/island_tour/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(
		"concierge-test", http.MethodGet, "/api/v1/services/{serviceType}/catalog", "200"))
	assert.Equal(t, 1.0, count)
}
