package handler

import (
	"net/http"
	"time"
)

// ServiceName is reported by the health and index endpoints.
const ServiceName = "Skolyn API"

// APIVersion is reported by the index endpoint.
const APIVersion = "1.0.0"

// TimestampFormat is RFC 3339 in UTC with millisecond precision,
// e.g. 2024-11-15T09:30:00.123Z.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Health handles GET /api/health. It reports process liveness only and never
// touches the store.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(TimestampFormat),
		Service:   ServiceName,
	})
}

type readyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Ready handles GET /api/ready: 200 when the store answers a ping, 503 otherwise.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, readyResponse{
			Status:  "unavailable",
			Message: "database unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, readyResponse{Status: "ready"})
}

type indexResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Index handles GET /api and any GET under /api/ that no other route claims.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Message:   ServiceName,
		Version:   APIVersion,
		Endpoints: []string{"/health", "/demo/request", "/blog", "/contact"},
	})
}

// NotFound handles POST requests under /api/ that no other route claims.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}
