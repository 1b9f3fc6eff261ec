package handler

import (
	"net/http"
	"strings"

	"github.com/skolyn/backend/internal/model"
	"github.com/skolyn/backend/internal/service"
)

const (
	defaultBlogLimit = 20
	maxBlogLimit     = 100
)

// BlogHandler serves blog listing and creation.
type BlogHandler struct {
	svc service.BlogService
}

// NewBlogHandler creates a BlogHandler with the given service.
func NewBlogHandler(svc service.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

type blogListResponse struct {
	Posts []*model.BlogPost `json:"posts"`
	Total int               `json:"total"`
}

// List handles GET /api/blog?category&search&limit.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.BlogListOptions{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
		Limit:    parseLimit(r, defaultBlogLimit, maxBlogLimit),
	}

	posts, err := h.svc.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "list blog posts failed")
		return
	}
	if posts == nil {
		posts = []*model.BlogPost{}
	}

	writeJSON(w, http.StatusOK, blogListResponse{Posts: posts, Total: len(posts)})
}

// blogCreateRequest is the accepted JSON body for POST /api/blog.
type blogCreateRequest struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	AuthorRole string   `json:"authorRole"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
	Slug       string   `json:"slug"`
	ReadTime   string   `json:"readTime"`
}

type blogCreateResponse struct {
	Message string          `json:"message"`
	ID      string          `json:"id"`
	Post    *model.BlogPost `json:"post"`
}

// Create handles POST /api/blog. title, content and author are required.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req blogCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post := &model.BlogPost{
		Title:      req.Title,
		Excerpt:    strings.TrimSpace(req.Excerpt),
		Content:    req.Content,
		Author:     req.Author,
		AuthorRole: strings.TrimSpace(req.AuthorRole),
		Category:   strings.TrimSpace(req.Category),
		Tags:       cleanTags(req.Tags),
		Featured:   req.Featured,
		Slug:       strings.TrimSpace(req.Slug),
		ReadTime:   strings.TrimSpace(req.ReadTime),
	}

	if err := h.svc.Create(r.Context(), post); err != nil {
		writeServiceError(w, r, err, "create blog post failed")
		return
	}

	writeJSON(w, http.StatusOK, blogCreateResponse{
		Message: "Blog post created successfully",
		ID:      post.ID,
		Post:    post,
	})
}

// cleanTags trims tags and drops empty and repeated ones, keeping order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
