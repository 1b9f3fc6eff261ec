package model

import "time"

// Contact submission statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusQualified = "qualified"
	ContactStatusClosed    = "closed"
)

// ContactSourceWebsiteForm tags submissions that arrive through POST /api/contact.
const ContactSourceWebsiteForm = "website_contact_form"

// ContactSubmission represents a request submitted via the website contact form.
type ContactSubmission struct {
	ID             string    `json:"_id" bson:"-"`
	FirstName      string    `json:"firstName" bson:"firstName"`
	LastName       string    `json:"lastName" bson:"lastName"`
	Email          string    `json:"email" bson:"email"`
	Organization   string    `json:"organization" bson:"organization"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Role           string    `json:"role,omitempty" bson:"role,omitempty"`
	DepartmentSize string    `json:"departmentSize,omitempty" bson:"departmentSize,omitempty"`
	InquiryType    string    `json:"inquiryType,omitempty" bson:"inquiryType,omitempty"`
	Message        string    `json:"message,omitempty" bson:"message,omitempty"`
	Status         string    `json:"status" bson:"status"` // "new" | "contacted" | "qualified" | "closed"
	Source         string    `json:"source" bson:"source"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// ContactListOptions carries filter and pagination parameters for listing contact submissions.
type ContactListOptions struct {
	// Status filters by submission status. Empty string returns all submissions.
	Status string
	Limit  int
}
