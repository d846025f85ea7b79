package domain

import "time"

// UserRole distinguishes administrators from field technicians.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
)

// User is the profile document for a dashboard account.
// TicketsCompleted and AverageResolutionTime are display-only aggregates
// maintained elsewhere; this service never recomputes them.
type User struct {
	ID                    string
	Name                  string
	Role                  UserRole
	Email                 string
	PasswordHash          string
	Department            string
	TicketsCompleted      int
	AverageResolutionTime float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
