package handler

import (
	"net/http"

	"github.com/skolyn/backend/internal/model"
	"github.com/skolyn/backend/internal/service"
)

// DemoHandler accepts demo requests.
type DemoHandler struct {
	svc service.DemoService
}

// NewDemoHandler creates a DemoHandler with the given service.
func NewDemoHandler(svc service.DemoService) *DemoHandler {
	return &DemoHandler{svc: svc}
}

type demoRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	Message      string `json:"message"`
}

type statusMessage struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Submit handles POST /api/demo/request. name and email are required.
func (h *DemoHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req demoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dr := &model.DemoRequest{
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Phone:        req.Phone,
		Role:         req.Role,
		Message:      req.Message,
	}
	if err := h.svc.Submit(r.Context(), dr); err != nil {
		writeServiceError(w, r, err, "demo request failed")
		return
	}

	writeJSON(w, http.StatusOK, statusMessage{
		Message: "Demo request submitted successfully",
		Status:  "received",
	})
}

// Status handles GET /api/demo/request.
func (h *DemoHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusMessage{
		Message: "Demo request endpoint ready",
		Status:  "available",
	})
}
