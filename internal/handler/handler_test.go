package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skolyn/backend/internal/service"
)

func TestCORS_SetsHeaders(t *testing.T) {
	h := New(&mockDB{}, "http://localhost:3000")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/test", nil)
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected origin http://localhost:3000, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials=true, got %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	h := New(&mockDB{}, "http://localhost:3000")

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("OPTIONS", "/api/test", nil)
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for OPTIONS, got %d", rec.Code)
	}
	if called {
		t.Error("inner handler should not be called for OPTIONS preflight")
	}
}

func TestWriteServiceError_HidesStoreDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", nil)
	writeServiceError(rec, req, errors.New("dial tcp 10.0.0.5:27017: connection refused"), "test")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Errorf("response leaks store details: %s", rec.Body.String())
	}
}

func TestWriteServiceError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/contact", nil)
	writeServiceError(rec, req, fmt.Errorf("wrapped: %w", &service.ValidationError{Message: "bad"}), "test")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "bad" {
		t.Errorf("expected error=bad, got %q", resp["error"])
	}
}

func TestParseLimit(t *testing.T) {
	cases := map[string]int{
		"":     20,
		"abc":  20,
		"0":    20,
		"-3":   20,
		"5":    5,
		"100":  100,
		"5000": 100,
	}
	for in, want := range cases {
		req := httptest.NewRequest("GET", "/api/blog?limit="+in, nil)
		if got := parseLimit(req, 20, 100); got != want {
			t.Errorf("parseLimit(%q) = %d, want %d", in, got, want)
		}
	}
}
