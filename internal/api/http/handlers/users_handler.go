package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/api/dto"
	"github.com/support-desk/ticket-dashboard/internal/service"
)

// UsersHandler serves profile listings for the admin dashboard.
type UsersHandler struct {
	service *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{service: authService}
}

// ListTechnicians GET /users/technicians backs the assignment dropdown.
func (h *UsersHandler) ListTechnicians(c *fiber.Ctx) error {
	technicians, err := h.service.ListTechnicians(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(technicians))
	for i := range technicians {
		items = append(items, dto.FromUser(&technicians[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
