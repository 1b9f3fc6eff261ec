package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/skolyn/backend/internal/model"
	"github.com/skolyn/backend/internal/notify"
)

// DemoService accepts "book a demo" requests.
type DemoService interface {
	// Submit validates the request and hands it to the notifier. A notifier
	// failure is logged, not returned: the request is acknowledged either way.
	Submit(ctx context.Context, req *model.DemoRequest) error
}

type demoServiceImpl struct {
	notifier notify.Notifier
}

// NewDemoService creates a DemoService that forwards to notifier.
func NewDemoService(notifier notify.Notifier) DemoService {
	return &demoServiceImpl{notifier: notifier}
}

func (s *demoServiceImpl) Submit(ctx context.Context, req *model.DemoRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		return &ValidationError{Message: "Name and email are required"}
	}
	req.ReceivedAt = time.Now().UTC()

	if err := s.notifier.NotifyDemoRequest(ctx, req); err != nil {
		slog.ErrorContext(ctx, "demo request notification failed", "email", req.Email, "error", err)
	}
	return nil
}
