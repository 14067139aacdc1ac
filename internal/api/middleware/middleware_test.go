package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBN-BookingService/pkg/logger/loggertest"
	"github.com/m04kA/SBN-BookingService/pkg/metrics"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/api/bookings/{bookingId}", ok).Methods(http.MethodGet)

	for _, id := range []string{"BK-1", "BK-2"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/bookings/{bookingId}", "200")))
}

func TestRecovery(t *testing.T) {
	h := Recovery(loggertest.New(t))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Erreur interne du serveur"}`, rec.Body.String())
}

func limitedCall(h http.Handler, remote, forwarded string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/promo/validate", nil)
	req.RemoteAddr = remote + ":5555"
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func mustCIDR(t *testing.T, s string) *net.IPNet {
	t.Helper()
	_, n, err := net.ParseCIDR(s)
	require.NoError(t, err)
	return n
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RPS: 0.001, Burst: 2}, loggertest.New(t))
	h := rl.Middleware(http.HandlerFunc(ok))

	assert.Equal(t, http.StatusOK, limitedCall(h, "10.0.0.1", ""))
	assert.Equal(t, http.StatusOK, limitedCall(h, "10.0.0.1", ""))
	assert.Equal(t, http.StatusTooManyRequests, limitedCall(h, "10.0.0.1", ""))
	assert.Equal(t, http.StatusOK, limitedCall(h, "10.0.0.2", ""))
}

func TestRateLimiter_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RPS: 1, Burst: 1}, loggertest.New(t))
	h := rl.Middleware(http.HandlerFunc(ok))

	limited := 0
	for i := 0; i < 1000; i++ {
		if limitedCall(h, "198.51.100.9", fmt.Sprintf("203.0.113.%d", i%250)) == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.GreaterOrEqual(t, limited, 990)
	assert.Len(t, rl.visitors, 1)
}

func TestRateLimiter_TrustedProxy(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{
		RPS:            0.001,
		Burst:          1,
		TrustedProxies: []*net.IPNet{mustCIDR(t, "10.0.0.0/8")},
	}, loggertest.New(t))
	h := rl.Middleware(http.HandlerFunc(ok))

	assert.Equal(t, http.StatusOK, limitedCall(h, "10.0.0.1", "203.0.113.7, 10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, limitedCall(h, "10.0.0.3", "203.0.113.7"))
	assert.Equal(t, http.StatusOK, limitedCall(h, "10.0.0.1", "203.0.113.8"))
}

func TestRateLimiter_ClientIP(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{
		RPS:            1,
		Burst:          1,
		TrustedProxies: []*net.IPNet{mustCIDR(t, "10.0.0.0/8")},
	}, loggertest.New(t))

	tests := []struct {
		name      string
		remote    string
		forwarded string
		want      string
	}{
		{name: "untrusted peer", remote: "198.51.100.9:5555", forwarded: "203.0.113.7", want: "198.51.100.9"},
		{name: "trusted without header", remote: "10.0.0.1:5555", want: "10.0.0.1"},
		{name: "rightmost untrusted hop", remote: "10.0.0.1:5555", forwarded: "1.2.3.4, 203.0.113.7, 10.0.0.2", want: "203.0.113.7"},
		{name: "garbage hop", remote: "10.0.0.1:5555", forwarded: "not-an-ip", want: "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, rl.clientIP(req))
		})
	}
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute}, loggertest.New(t))
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	h := rl.Middleware(http.HandlerFunc(ok))

	for i := 0; i < 100; i++ {
		limitedCall(h, fmt.Sprintf("192.0.2.%d", i), "")
	}
	assert.Len(t, rl.visitors, 100)

	now = now.Add(2 * time.Minute)
	limitedCall(h, "198.51.100.1", "")

	assert.Len(t, rl.visitors, 1)
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS([]string{"http://localhost:5173"})(http.HandlerFunc(ok))

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
