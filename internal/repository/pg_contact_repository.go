package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skolyn/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contacts row under a freshly generated UUID.
func (r *PgContactRepository) Save(ctx context.Context, c *model.ContactSubmission) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contacts (id, first_name, last_name, email, organization, phone, role,
		                       department_size, inquiry_type, message, status, source, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''),
		         NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13)`,
		id, c.FirstName, c.LastName, c.Email, c.Organization, c.Phone, c.Role,
		c.DepartmentSize, c.InquiryType, c.Message, c.Status, c.Source, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	c.ID = id
	return nil
}

// List returns contacts filtered by status, newest first.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	var args []any
	where := ""
	if opts.Status != "" {
		args = append(args, opts.Status)
		where = "WHERE status = $1"
	}

	query := `SELECT id::text, first_name, last_name, email, organization,
	                 COALESCE(phone, ''), COALESCE(role, ''), COALESCE(department_size, ''),
	                 COALESCE(inquiry_type, ''), COALESCE(message, ''), status, source, created_at
	          FROM contacts ` + where + ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*model.ContactSubmission{}
	for rows.Next() {
		var c model.ContactSubmission
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Organization,
			&c.Phone, &c.Role, &c.DepartmentSize, &c.InquiryType, &c.Message,
			&c.Status, &c.Source, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}
