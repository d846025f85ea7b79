package dto

import (
	"time"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// RegisterRequest payload.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"omitempty,oneof=admin technician"`
	Department string `json:"department" validate:"max=200"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the wire shape of a profile document.
type UserResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Role                  string  `json:"role"`
	Email                 string  `json:"email"`
	Department            string  `json:"department"`
	TicketsCompleted      int     `json:"tickets_completed"`
	AverageResolutionTime float64 `json:"average_resolution_time"`
}

// SessionResponse carries the token alongside the profile.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// FromUser maps the domain profile to its wire shape.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:                    u.ID,
		Name:                  u.Name,
		Role:                  string(u.Role),
		Email:                 u.Email,
		Department:            u.Department,
		TicketsCompleted:      u.TicketsCompleted,
		AverageResolutionTime: u.AverageResolutionTime,
	}
}
