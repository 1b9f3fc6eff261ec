package repository

import (
	"context"

	"github.com/skolyn/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository defines the persistence interface for contact submissions.
type ContactRepository interface {
	// Save inserts a new submission and populates c.ID.
	Save(ctx context.Context, c *model.ContactSubmission) error
	// List returns submissions newest first.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}

// BlogRepository defines the persistence interface for blog posts.
type BlogRepository interface {
	Count(ctx context.Context) (int64, error)
	// Create inserts a new post and populates post.ID.
	Create(ctx context.Context, post *model.BlogPost) error
	// List returns posts ordered by PublishedAt descending.
	List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)
	// Seed inserts every post whose SeedKey is not already present and
	// returns how many were inserted. Safe to call concurrently.
	Seed(ctx context.Context, posts []model.BlogPost) (int, error)
}
