package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/skolyn/backend/internal/model"
	"github.com/skolyn/backend/internal/repository"
)

// emailPattern is a shape check only: something@something.something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const msgContactFieldsMissing = "Required fields missing: firstName, lastName, email, organization"

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit checks the required fields and email shape, then stamps the
// submission as new and persists it with a single insert.
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.ContactSubmission) error {
	if err := validateContact(c); err != nil {
		return err
	}
	c.Status = model.ContactStatusNew
	c.Source = model.ContactSourceWebsiteForm
	c.CreatedAt = time.Now().UTC()
	return s.repo.Save(ctx, c)
}

// List returns submissions according to the given filter options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}

func validateContact(c *model.ContactSubmission) error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Organization = strings.TrimSpace(c.Organization)

	if c.FirstName == "" || c.LastName == "" || c.Email == "" || c.Organization == "" {
		return &ValidationError{Message: msgContactFieldsMissing}
	}
	if !emailPattern.MatchString(c.Email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	return nil
}
