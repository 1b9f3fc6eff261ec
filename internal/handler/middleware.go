package handler

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// Timeout bounds each request to d. The request context is cancelled when the
// deadline passes, which also aborts in-flight store calls.
// The 503 body is JSON like every other error response.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, d, `{"error":"Request timeout"}`)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Headers the wrapped handler writes replace this on the normal path.
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}

// RequireAPIKey allows a request only when it carries "Authorization: Bearer <key>"
// for one of keys. With no keys configured every request passes.
func RequireAPIKey(keys []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, prefix) || !validKey(keys, strings.TrimSpace(authHeader[len(prefix):])) {
				w.Header().Set("WWW-Authenticate", `Bearer realm="skolyn"`)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func validKey(keys []string, token string) bool {
	if token == "" {
		return false
	}
	ok := false
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(token)) == 1 {
			ok = true
		}
	}
	return ok
}

// RateLimiter provides IP-based rate limiting using a sliding window.
type RateLimiter struct {
	maxPerMinute      int
	trustedProxyCount int
	mu                sync.Mutex
	clients           map[string]*clientWindow
	stop              chan struct{}
	stopOnce          sync.Once
}

type clientWindow struct {
	timestamps []time.Time
}

// NewRateLimiter creates a rate limiter with the given requests-per-minute limit.
// Assumes a single trusted reverse proxy by default. Call Stop to end the
// background cleanup.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute:      maxPerMinute,
		trustedProxyCount: 1,
		clients:           make(map[string]*clientWindow),
		stop:              make(chan struct{}),
	}
	go rl.cleanupLoop(5 * time.Minute)
	return rl
}

// WithTrustedProxies sets how many reverse proxies sit in front of the
// service. 0 ignores X-Forwarded-For and keys clients on RemoteAddr.
func (rl *RateLimiter) WithTrustedProxies(n int) *RateLimiter {
	if n < 0 {
		n = 0
	}
	rl.trustedProxyCount = n
	return rl
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// cleanupLoop periodically removes stale entries from the clients map.
func (rl *RateLimiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.prune(now)
		}
	}
}

func (rl *RateLimiter) prune(now time.Time) {
	windowStart := now.Add(-time.Minute)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, cw := range rl.clients {
		cw.trim(windowStart)
		if len(cw.timestamps) == 0 {
			delete(rl.clients, ip)
		}
	}
}

// trim drops timestamps at or before windowStart; in-place filter on the shared backing array.
func (cw *clientWindow) trim(windowStart time.Time) {
	valid := cw.timestamps[:0]
	for _, ts := range cw.timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	cw.timestamps = valid
}

// Middleware returns an http.Handler that enforces rate limits.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		now := time.Now()

		rl.mu.Lock()
		cw, ok := rl.clients[ip]
		if !ok {
			cw = &clientWindow{}
			rl.clients[ip] = cw
		}
		cw.trim(now.Add(-time.Minute))

		if len(cw.timestamps) >= rl.maxPerMinute {
			retryAfter := cw.timestamps[0].Add(time.Minute).Sub(now)
			rl.mu.Unlock()

			w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
			writeError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		cw.timestamps = append(cw.timestamps, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - rl.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
