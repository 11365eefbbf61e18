package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/clock"
	"github.com/osse101/DailyGarden_Go/internal/logger"
)

// AuthMiddleware validates the API key. An empty apiKey disables the check.
// Browser event streams cannot set headers, so the key is also read from ?api_key=.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if provided == "" {
				provided = r.URL.Query().Get(QueryParamAPIKey)
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r, trustedProxies)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipActivity counts one client's requests within the current window
type ipActivity struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector counts requests and auth failures per client IP in
// fixed windows of RateLimitWindow. All counters reset together.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	clock       clock.Clock
	windowStart time.Time
	byIP        map[string]*ipActivity
}

// NewSuspiciousActivityDetector returns a detector on the wall clock
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetectorWithClock(clock.NewRealClock())
}

func newDetectorWithClock(c clock.Clock) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		clock:       c,
		windowStart: c.Now(),
		byIP:        make(map[string]*ipActivity),
	}
}

// activity returns the counters for ip, rolling the window first.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) activity(ip string) *ipActivity {
	if now := s.clock.Now(); now.Sub(s.windowStart) > RateLimitWindow {
		clear(s.byIP)
		s.windowStart = now
	}
	a, ok := s.byIP[ip]
	if !ok {
		a = &ipActivity{}
		s.byIP[ip] = a
	}
	return a
}

// RecordFailedAuth counts a rejected API key and alerts past FailedAuthAlertThreshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	a := s.activity(ip)
	a.failedAuth++
	count := a.failedAuth
	s.mu.Unlock()

	if count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest counts a request and returns false once the IP exceeds
// RateLimitMaxRequests within the current window
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	a := s.activity(ip)
	a.requests++
	count := a.requests
	s.mu.Unlock()

	if count <= RateLimitMaxRequests {
		return true
	}
	if count%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", count, "window", RateLimitWindow)
	}
	return false
}

// counts reports the current window's counters for ip
func (s *SuspiciousActivityDetector) counts(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byIP[ip]; ok {
		return a.requests, a.failedAuth
	}
	return 0, 0
}

// SecurityLoggingMiddleware rejects clients over the request budget with 429
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !detector.RecordRequest(ip) {
				logger.FromContext(r.Context()).Debug(ErrMsgTooManyRequests, "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets the browser hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
