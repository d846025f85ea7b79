package dto

import (
	"time"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// CoordinatesPayload is an optional geographic point.
type CoordinatesPayload struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// TicketRequest is the payload for both create and full update.
type TicketRequest struct {
	Title          string              `json:"title" validate:"required,max=200"`
	Description    string              `json:"description" validate:"max=4000"`
	Location       string              `json:"location" validate:"max=500"`
	Coordinates    *CoordinatesPayload `json:"coordinates,omitempty"`
	Technician     string              `json:"technician" validate:"max=200"`
	Status         string              `json:"status" validate:"omitempty,oneof='Open' 'In Progress' 'On Hold' 'Completed'"`
	Priority       string              `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	ProductType    string              `json:"product_type" validate:"omitempty,oneof=Fixed ADSL GPON"`
	DueDate        string              `json:"due_date" validate:"required,datetime=2006-01-02"`
	EstimatedHours *float64            `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
	ActualHours    *float64            `json:"actual_hours,omitempty" validate:"omitempty,gte=0"`
	Tags           []string            `json:"tags,omitempty"`
}

// AssignTicketRequest payload.
type AssignTicketRequest struct {
	Technician string `json:"technician" validate:"required,max=200"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Open' 'In Progress' 'On Hold' 'Completed'"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Location       string              `json:"location"`
	Coordinates    *CoordinatesPayload `json:"coordinates,omitempty"`
	Technician     string              `json:"technician"`
	Status         string              `json:"status"`
	Priority       string              `json:"priority"`
	ProductType    string              `json:"product_type"`
	DueDate        string              `json:"due_date"`
	EstimatedHours *float64            `json:"estimated_hours,omitempty"`
	ActualHours    *float64            `json:"actual_hours,omitempty"`
	Tags           []string            `json:"tags,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// FromTicket maps the domain aggregate to its wire shape.
func FromTicket(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Location:       t.Location,
		Technician:     t.Technician,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		ProductType:    string(t.ProductType),
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		Tags:           t.Tags,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if t.Coordinates != nil {
		resp.Coordinates = &CoordinatesPayload{Lat: t.Coordinates.Lat, Lng: t.Coordinates.Lng}
	}
	return resp
}
