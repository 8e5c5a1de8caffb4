package handler

import (
	"context"
	"net/http"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
)

// AuditService defines the behavior needed by AuditHandler.
type AuditService interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// AuditHandler serves the action trail shown under Auditoría.
type AuditHandler struct {
	auditRepo AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditRepo AuditService) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// List lists audit records, newest first, with optional filters.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AuditFilter{
		UserID:       q.Get("user_id"),
		Action:       q.Get("action"),
		ResourceType: q.Get("resource_type"),
		ResourceID:   q.Get("resource_id"),
		StartDate:    parseDateQuery(r, "start"),
		EndDate:      parseDateQuery(r, "end"),
		Limit:        parseIntQuery(r, "limit", 50),
		Offset:       parseIntQuery(r, "offset", 0),
	}

	logs, err := h.auditRepo.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list audit records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditLogsFromDomain(logs))
}
