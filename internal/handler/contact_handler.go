package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/skolyn/backend/internal/model"
	"github.com/skolyn/backend/internal/service"
)

const (
	defaultContactLimit = 50
	maxContactLimit     = 200
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactRequest is the accepted JSON body for POST /api/contact.
// Anything else in the body is ignored.
type contactRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Organization   string `json:"organization"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	DepartmentSize string `json:"departmentSize"`
	InquiryType    string `json:"inquiryType"`
	Message        string `json:"message"`
}

type contactSubmitResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Status  string `json:"status"`
}

// Submit handles POST /api/contact.
// firstName, lastName, email and organization are required; email must look like an address.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c := &model.ContactSubmission{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Organization:   req.Organization,
		Phone:          strings.TrimSpace(req.Phone),
		Role:           strings.TrimSpace(req.Role),
		DepartmentSize: strings.TrimSpace(req.DepartmentSize),
		InquiryType:    strings.TrimSpace(req.InquiryType),
		Message:        strings.TrimSpace(req.Message),
	}

	if err := h.contactService.Submit(r.Context(), c); err != nil {
		writeServiceError(w, r, err, "contact form submission failed")
		return
	}

	slog.InfoContext(r.Context(), "new contact form submission",
		"id", c.ID,
		"email", c.Email,
		"organization", c.Organization,
		"inquiry_type", c.InquiryType,
	)

	writeJSON(w, http.StatusOK, contactSubmitResponse{
		Message: "Contact form submitted successfully",
		ID:      c.ID,
		Status:  "received",
	})
}

// contactListResponse is the JSON response for GET /api/contact.
type contactListResponse struct {
	Contacts []*model.ContactSubmission `json:"contacts"`
	Total    int                        `json:"total"`
}

// List handles GET /api/contact.
// Supports query params: status, limit (default 50).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Limit:  parseLimit(r, defaultContactLimit, maxContactLimit),
	}

	contacts, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "list contacts failed")
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, contactListResponse{Contacts: contacts, Total: len(contacts)})
}
