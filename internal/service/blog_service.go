package service

import (
	"context"

	"github.com/skolyn/backend/internal/model"
)

// BlogService defines the business logic for blog posts.
type BlogService interface {
	// List returns posts matching opts, seeding the sample posts first when
	// the blog is empty.
	List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error)

	// Create validates and stores a new post. ID and timestamps are populated
	// by the implementation.
	Create(ctx context.Context, post *model.BlogPost) error

	// SeedIfEmpty inserts the sample posts when the blog holds no posts at
	// all and returns how many were inserted. A blog with any post, seeded or
	// not, is left untouched.
	SeedIfEmpty(ctx context.Context) (int, error)
}
