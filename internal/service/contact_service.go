package service

import (
	"context"

	"github.com/skolyn/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a new submission. ID, Status, Source and
	// CreatedAt are populated by the implementation.
	Submit(ctx context.Context, c *model.ContactSubmission) error

	// List returns submissions according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}
