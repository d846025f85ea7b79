package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/api/dto"
	"github.com/support-desk/ticket-dashboard/internal/service"
)

// NotificationsHandler serves the notification feed.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// List GET /notifications, newest first.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 50)
	notifications, err := h.service.List(c.Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}
	unread := 0
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		if !notifications[i].IsRead {
			unread++
		}
		items = append(items, dto.FromNotification(&notifications[i]))
	}
	return c.JSON(fiber.Map{"data": items, "unread_count": unread})
}

// MarkRead POST /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.service.MarkRead(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
