package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/skolyn/backend/internal/model"
	"github.com/skolyn/backend/internal/repository"
)

const (
	msgBlogFieldsMissing = "Required fields missing: title, content, author"
	wordsPerMinute       = 200
)

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)
)

type blogServiceImpl struct {
	repo  repository.BlogRepository
	seeds func() []model.BlogPost
}

// NewBlogService creates a BlogService backed by the given repository that
// seeds repository.SeedPosts into an empty blog.
func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogServiceImpl{repo: repo, seeds: repository.SeedPosts}
}

func (s *blogServiceImpl) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	if _, err := s.SeedIfEmpty(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, opts)
}

func (s *blogServiceImpl) Create(ctx context.Context, post *model.BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	post.Author = strings.TrimSpace(post.Author)
	if post.Title == "" || strings.TrimSpace(post.Content) == "" || post.Author == "" {
		return &ValidationError{Message: msgBlogFieldsMissing}
	}

	now := time.Now().UTC()
	post.PublishedAt = now
	post.CreatedAt = now
	post.UpdatedAt = now
	post.SeedKey = ""
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.ReadTime == "" {
		post.ReadTime = EstimateReadTime(post.Content)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return s.repo.Create(ctx, post)
}

func (s *blogServiceImpl) SeedIfEmpty(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	inserted, err := s.repo.Seed(ctx, s.seeds())
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		slog.InfoContext(ctx, "seeded empty blog", "inserted", inserted)
	}
	return inserted, nil
}

// Slugify lowercases title and joins its alphanumeric runs with "-".
func Slugify(title string) string {
	return strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

// EstimateReadTime renders the reading time of an HTML body as "N min read".
func EstimateReadTime(html string) string {
	words := len(strings.Fields(htmlTagPattern.ReplaceAllString(html, " ")))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
