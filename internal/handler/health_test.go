package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"
)

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

func TestHealth_OK(t *testing.T) {
	h := New(&mockDB{}, "http://localhost:3000")
	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()

	before := time.Now().Add(-time.Second)
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status=healthy, got %q", resp.Status)
	}
	if resp.Service != "Skolyn API" {
		t.Errorf("expected service='Skolyn API', got %q", resp.Service)
	}
	if !timestampPattern.MatchString(resp.Timestamp) {
		t.Errorf("timestamp %q is not UTC with millisecond precision", resp.Timestamp)
	}
	ts, err := time.Parse(time.RFC3339, resp.Timestamp)
	if err != nil {
		t.Fatalf("timestamp %q not RFC3339: %v", resp.Timestamp, err)
	}
	if ts.Before(before) {
		t.Errorf("timestamp %v is stale", ts)
	}
}

// TestHealth_IgnoresStore verifies liveness does not depend on the database.
func TestHealth_IgnoresStore(t *testing.T) {
	h := New(&mockDB{
		pingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}, "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest("GET", "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReady_OK(t *testing.T) {
	h := New(&mockDB{}, "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest("GET", "/api/ready", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReady_Unavailable(t *testing.T) {
	h := New(&mockDB{
		pingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}, "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest("GET", "/api/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
	var resp readyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "unavailable" {
		t.Errorf("expected status=unavailable, got %q", resp.Status)
	}
}
