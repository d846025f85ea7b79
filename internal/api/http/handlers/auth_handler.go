package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/api/dto"
	"github.com/support-desk/ticket-dashboard/internal/auth"
	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/service"
	"github.com/support-desk/ticket-dashboard/pkg/errorutil"
)

// AuthHandler serves sign-up, sign-in, sign-out, and session observation.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	user, token, exp, err := h.service.Register(c.Context(), req.Name, req.Email, req.Password, domain.UserRole(req.Role), req.Department)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SessionResponse{
		User:      dto.FromUser(user),
		Token:     token,
		ExpiresAt: exp,
	}})
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	user, token, exp, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		User:      dto.FromUser(user),
		Token:     token,
		ExpiresAt: exp,
	}})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.Context(), c.Get("Authorization")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Me GET /auth/me returns the profile backing the current session.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": dto.FromUser(user)})
}
