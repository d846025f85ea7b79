package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/api/dto"
	"github.com/support-desk/ticket-dashboard/internal/service"
)

// AuditHandler serves the read side of the audit trail.
type AuditHandler struct {
	service *service.AuditService
}

// NewAuditHandler constructs handler.
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{service: auditService}
}

// List GET /audit-logs, newest first.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 50)
	entries, err := h.service.List(c.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}
	items := make([]dto.AuditLogResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.FromAuditLog(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
