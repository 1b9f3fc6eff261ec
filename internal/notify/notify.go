// Package notify delivers demo requests to whoever follows them up.
// Delivery is best-effort and at-most-once: nothing is retried or stored.
package notify

import (
	"context"
	"log/slog"

	"github.com/skolyn/backend/internal/model"
)

// Notifier forwards a demo request to a downstream sink.
type Notifier interface {
	NotifyDemoRequest(ctx context.Context, req *model.DemoRequest) error
}

// LogNotifier writes demo requests to the structured log. It is used when no
// message broker is configured.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (LogNotifier) NotifyDemoRequest(ctx context.Context, req *model.DemoRequest) error {
	slog.InfoContext(ctx, "demo request received",
		"name", req.Name,
		"email", req.Email,
		"organization", req.Organization,
		"role", req.Role,
	)
	return nil
}
