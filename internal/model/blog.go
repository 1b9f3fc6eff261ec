package model

import "time"

// BlogCategoryAll is the pseudo-category the blog page uses to mean "no filter".
const BlogCategoryAll = "All"

// BlogPost is an article shown on the resources/blog page.
type BlogPost struct {
	ID          string    `json:"_id" bson:"-"`
	Title       string    `json:"title" bson:"title"`
	Excerpt     string    `json:"excerpt" bson:"excerpt"`
	Content     string    `json:"content" bson:"content"`
	Author      string    `json:"author" bson:"author"`
	AuthorRole  string    `json:"authorRole,omitempty" bson:"authorRole,omitempty"`
	PublishedAt time.Time `json:"publishedAt" bson:"publishedAt"`
	Category    string    `json:"category" bson:"category"`
	Tags        []string  `json:"tags" bson:"tags"`
	Featured    bool      `json:"featured" bson:"featured"`
	Slug        string    `json:"slug" bson:"slug"`
	ReadTime    string    `json:"readTime" bson:"readTime"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`

	// SeedKey marks posts inserted by the seeding step. Unique when set.
	SeedKey string `json:"-" bson:"seedKey,omitempty"`
}

// BlogListOptions carries filter and limit parameters for listing blog posts.
type BlogListOptions struct {
	// Category filters by exact category. Empty string and "All" return every category.
	Category string
	// Search is matched case-insensitively against title, excerpt and tags.
	Search string
	Limit  int
}
