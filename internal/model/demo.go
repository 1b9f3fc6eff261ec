package model

import "time"

// DemoRequest is a "book a demo" submission. It is forwarded to a notifier and not stored.
type DemoRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role,omitempty"`
	Message      string    `json:"message,omitempty"`
	ReceivedAt   time.Time `json:"receivedAt"`
}
