package handler

import (
	"net/http"
	"time"
)

// RouterConfig wires the handlers and cross-cutting settings into a router.
type RouterConfig struct {
	Base    *Handler
	Contact *ContactHandler
	Blog    *BlogHandler
	Demo    *DemoHandler

	// Limiter throttles the public POST endpoints. Nil disables throttling.
	Limiter *RateLimiter
	// AdminAPIKeys guard contact listing and blog creation. Empty leaves them open.
	AdminAPIKeys   []string
	RequestTimeout time.Duration
}

// NewRouter registers every /api route and wraps the mux with request id,
// logging, security headers, CORS and the request timeout.
func NewRouter(cfg RouterConfig) http.Handler {
	throttle := func(h http.HandlerFunc) http.Handler {
		if cfg.Limiter == nil {
			return h
		}
		return cfg.Limiter.Middleware(h)
	}
	admin := RequireAPIKey(cfg.AdminAPIKeys)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", cfg.Base.Health)
	mux.HandleFunc("GET /api/ready", cfg.Base.Ready)

	mux.Handle("POST /api/contact", throttle(cfg.Contact.Submit))
	mux.Handle("GET /api/contact", admin(http.HandlerFunc(cfg.Contact.List)))

	mux.HandleFunc("GET /api/blog", cfg.Blog.List)
	mux.Handle("POST /api/blog", admin(throttle(cfg.Blog.Create)))

	mux.HandleFunc("GET /api/demo/request", cfg.Demo.Status)
	mux.Handle("POST /api/demo/request", throttle(cfg.Demo.Submit))

	mux.HandleFunc("GET /api", cfg.Base.Index)
	mux.HandleFunc("GET /api/{path...}", cfg.Base.Index)
	mux.HandleFunc("POST /api/{path...}", cfg.Base.NotFound)

	var h http.Handler = mux
	if cfg.RequestTimeout > 0 {
		h = Timeout(cfg.RequestTimeout)(h)
	}
	h = cfg.Base.CORS(h)
	h = SecurityHeaders(h)
	h = RequestLogger(h)
	return RequestID(h)
}
