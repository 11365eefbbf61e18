package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/clock"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/garden", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < RateLimitMaxRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	requests, _ := detector.counts(ip)
	assert.Equal(t, RateLimitMaxRequests+1, requests)
}

func TestDetector_WindowResets(t *testing.T) {
	clk := clock.NewSimulatedClock(time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC))
	detector := newDetectorWithClock(clk)

	for i := 0; i < RateLimitMaxRequests; i++ {
		detector.RecordRequest("10.1.1.1")
	}
	assert.False(t, detector.RecordRequest("10.1.1.1"))
	assert.True(t, detector.RecordRequest("10.1.1.2"), "budgets are per IP")

	clk.Advance(RateLimitWindow + time.Second)
	assert.True(t, detector.RecordRequest("10.1.1.1"))

	requests, failed := detector.counts("10.1.1.1")
	assert.Equal(t, 1, requests)
	assert.Zero(t, failed)
}
