package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/pkg/errorutil"
)

// RequireAdmin ensures the caller holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return errorutil.NewUnauthorized("authentication required")
		}
		if user.Role != domain.RoleAdmin {
			return errorutil.NewForbidden("admin role required")
		}
		return c.Next()
	}
}

// RequireTechnician allows technicians and admins through.
func RequireTechnician() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return errorutil.NewUnauthorized("authentication required")
		}
		if user.Role != domain.RoleTechnician && user.Role != domain.RoleAdmin {
			return errorutil.NewForbidden("technician role required")
		}
		return c.Next()
	}
}
