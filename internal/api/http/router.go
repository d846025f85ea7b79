package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/api/http/handlers"
	"github.com/support-desk/ticket-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Stats          *handlers.StatsHandler
	Notifications  *handlers.NotificationsHandler
	Audit          *handlers.AuditHandler
	Users          *handlers.UsersHandler
	I18n           *handlers.I18nHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/i18n/messages", cfg.I18n.Bundle)
	app.Get("/i18n/:lang/messages", cfg.I18n.Messages)
	app.Post("/i18n/toggle", cfg.AuthMiddleware.Handle, auth.RequireAdmin(), cfg.I18n.Toggle)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	// /tickets/stats must be declared before /tickets/:id so "stats" is not
	// captured as a ticket id.
	tickets.Get("/stats", auth.RequireAdmin(), cfg.Stats.Current)
	tickets.Get("/", auth.RequireTechnician(), cfg.Tickets.List)
	tickets.Post("/", auth.RequireAdmin(), cfg.Tickets.Create)
	tickets.Get("/:id", auth.RequireTechnician(), cfg.Tickets.Get)
	tickets.Put("/:id", auth.RequireAdmin(), cfg.Tickets.Update)
	tickets.Delete("/:id", auth.RequireAdmin(), cfg.Tickets.Delete)
	tickets.Post("/:id/assign", auth.RequireAdmin(), cfg.Tickets.Assign)
	tickets.Patch("/:id/status", auth.RequireTechnician(), cfg.Tickets.UpdateStatus)

	notifications := app.Group("/notifications", cfg.AuthMiddleware.Handle, auth.RequireTechnician())
	notifications.Get("/", cfg.Notifications.List)
	notifications.Post("/:id/read", cfg.Notifications.MarkRead)

	auditLogs := app.Group("/audit-logs", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	auditLogs.Get("/", cfg.Audit.List)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	users.Get("/technicians", cfg.Users.ListTechnicians)
}
