package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/skolyn/backend/internal/model"
	"github.com/skolyn/backend/internal/service"
)

type mockBlogService struct {
	listFunc   func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)
	createFunc func(ctx context.Context, post *model.BlogPost) error
}

func (m *mockBlogService) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockBlogService) Create(ctx context.Context, post *model.BlogPost) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, post)
	}
	post.ID = "post-1"
	post.PublishedAt = time.Now().UTC()
	return nil
}

func (m *mockBlogService) SeedIfEmpty(ctx context.Context) (int, error) { return 0, nil }

func TestBlogHandler_List_ForwardsQuery(t *testing.T) {
	var captured model.BlogListOptions
	mock := &mockBlogService{
		listFunc: func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
			captured = opts
			return []*model.BlogPost{{ID: "1", Title: "T"}}, nil
		},
	}
	h := NewBlogHandler(mock)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/blog?category=Workforce&search=burnout&limit=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := model.BlogListOptions{Category: "Workforce", Search: "burnout", Limit: 5}
	if captured != want {
		t.Errorf("expected %+v, got %+v", want, captured)
	}

	var resp blogListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || len(resp.Posts) != 1 {
		t.Errorf("expected one post, got %+v", resp)
	}
}

func TestBlogHandler_List_RecordsUseUnderscoreID(t *testing.T) {
	mock := &mockBlogService{
		listFunc: func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
			return []*model.BlogPost{{ID: "665f1c2ab3e4d5f6a7b8c9d1", Title: "T"}}, nil
		},
	}
	h := NewBlogHandler(mock)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/blog", nil))

	var raw struct {
		Posts []map[string]any `json:"posts"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(raw.Posts))
	}
	if got := raw.Posts[0]["_id"]; got != "665f1c2ab3e4d5f6a7b8c9d1" {
		t.Errorf("expected _id key with the post id, got %v", got)
	}
	if _, ok := raw.Posts[0]["seedKey"]; ok {
		t.Error("seedKey must not be serialized")
	}
}

func TestBlogHandler_List_DefaultLimit(t *testing.T) {
	var captured model.BlogListOptions
	mock := &mockBlogService{
		listFunc: func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
			captured = opts
			return nil, nil
		},
	}
	h := NewBlogHandler(mock)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/blog", nil))

	if captured.Limit != 20 {
		t.Errorf("expected default limit=20, got %d", captured.Limit)
	}
	if !strings.Contains(rec.Body.String(), `"posts":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestBlogHandler_List_ServiceError(t *testing.T) {
	mock := &mockBlogService{
		listFunc: func(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
			return nil, errors.New("server selection timeout")
		},
	}
	h := NewBlogHandler(mock)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/blog", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestBlogHandler_Create_Success(t *testing.T) {
	var captured *model.BlogPost
	mock := &mockBlogService{
		createFunc: func(ctx context.Context, post *model.BlogPost) error {
			captured = post
			post.ID = "post-9"
			post.PublishedAt = time.Now().UTC()
			return nil
		},
	}
	h := NewBlogHandler(mock)

	body := `{"title":"T","content":"C","author":"A","tags":[" XAI ","","XAI","PACS"],"seedKey":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if got := captured.Tags; len(got) != 2 || got[0] != "XAI" || got[1] != "PACS" {
		t.Errorf("expected cleaned tags [XAI PACS], got %v", got)
	}
	if captured.SeedKey != "" {
		t.Errorf("seedKey must not be accepted from the body, got %q", captured.SeedKey)
	}
	if !strings.Contains(rec.Body.String(), `"_id":"post-9"`) {
		t.Errorf("expected the post to carry _id, got %s", rec.Body.String())
	}

	var resp struct {
		Message string          `json:"message"`
		ID      string          `json:"id"`
		Post    *model.BlogPost `json:"post"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "post-9" || resp.Post == nil || resp.Post.ID != "post-9" {
		t.Errorf("unexpected response %+v", resp)
	}
}

// TestBlogHandler_Create_PublishedAtIsNow runs the real service to check the stamped timestamp.
func TestBlogHandler_Create_PublishedAtIsNow(t *testing.T) {
	h := NewBlogHandler(service.NewBlogService(&memoryBlogRepo{}))

	req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(`{"title":"T","content":"C","author":"A"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp blogCreateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d := time.Since(resp.Post.PublishedAt); d < 0 || d > 5*time.Second {
		t.Errorf("publishedAt %v not close to now", resp.Post.PublishedAt)
	}
	if resp.ID == "" {
		t.Error("expected non-empty id")
	}
}

func TestBlogHandler_Create_MissingFields(t *testing.T) {
	h := NewBlogHandler(service.NewBlogService(&memoryBlogRepo{}))

	req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(`{"title":"T"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "Required fields missing: title, content, author" {
		t.Errorf("unexpected error %q", resp["error"])
	}
}

func TestBlogHandler_Create_InvalidJSON(t *testing.T) {
	h := NewBlogHandler(&mockBlogService{})

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader("[")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
