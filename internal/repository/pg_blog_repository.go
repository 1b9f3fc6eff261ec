package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skolyn/backend/internal/model"
)

// PgBlogRepository is the PostgreSQL implementation of BlogRepository.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgBlogRepository creates a PgBlogRepository backed by the given pool.
func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ BlogRepository = (*PgBlogRepository)(nil)

const blogColumns = `id::text, title, excerpt, content, author, COALESCE(author_role, ''),
	published_at, category, tags, featured, slug, read_time, created_at, updated_at`

func (r *PgBlogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return n, nil
}

func (r *PgBlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	id := uuid.NewString()
	if _, err := r.pool.Exec(ctx, insertBlogSQL(""), blogArgs(id, post)...); err != nil {
		return fmt.Errorf("insert blog post: %w", err)
	}
	post.ID = id
	return nil
}

func (r *PgBlogRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, error) {
	var conditions []string
	var args []any

	if opts.Category != "" && opts.Category != model.BlogCategoryAll {
		args = append(args, opts.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if opts.Search != "" {
		args = append(args, "%"+escapeLike(opts.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR excerpt ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE $%d))",
			n, n, n))
	}

	query := `SELECT ` + blogColumns + ` FROM blog_posts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY published_at DESC"
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	posts := []*model.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Seed relies on the UNIQUE seed_key column: a post whose key already exists
// is skipped by ON CONFLICT, including when another seeder inserts it first.
func (r *PgBlogRepository) Seed(ctx context.Context, posts []model.BlogPost) (int, error) {
	inserted := 0
	for i := range posts {
		p := &posts[i]
		if p.SeedKey == "" {
			return inserted, fmt.Errorf("seed blog post %q: empty seed key", p.Title)
		}
		tag, err := r.pool.Exec(ctx, insertBlogSQL("ON CONFLICT (seed_key) DO NOTHING"), blogArgs(uuid.NewString(), p)...)
		if err != nil {
			return inserted, fmt.Errorf("seed blog post %q: %w", p.SeedKey, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func insertBlogSQL(suffix string) string {
	return `INSERT INTO blog_posts (id, title, excerpt, content, author, author_role, published_at,
	                                category, tags, featured, slug, read_time, created_at, updated_at, seed_key)
	        VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13, $14, NULLIF($15, ''))
	        ` + suffix
}

func blogArgs(id string, p *model.BlogPost) []any {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return []any{
		id, p.Title, p.Excerpt, p.Content, p.Author, p.AuthorRole, p.PublishedAt,
		p.Category, tags, p.Featured, p.Slug, p.ReadTime, p.CreatedAt, p.UpdatedAt, p.SeedKey,
	}
}

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	var p model.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Author, &p.AuthorRole,
		&p.PublishedAt, &p.Category, &p.Tags, &p.Featured, &p.Slug, &p.ReadTime,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// escapeLike escapes the LIKE metacharacters so the search term is matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
