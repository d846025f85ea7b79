package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusOnHold     TicketStatus = "On Hold"
	TicketStatusCompleted  TicketStatus = "Completed"
)

// TicketStatuses lists every status in display order.
var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusOnHold,
	TicketStatusCompleted,
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
)

// TicketPriorities lists every priority in display order.
var TicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
}

// ProductType enumerates the service products tickets relate to.
type ProductType string

const (
	ProductTypeFixed ProductType = "Fixed"
	ProductTypeADSL  ProductType = "ADSL"
	ProductTypeGPON  ProductType = "GPON"
)

// ProductTypes lists every product type in display order.
var ProductTypes = []ProductType{
	ProductTypeFixed,
	ProductTypeADSL,
	ProductTypeGPON,
}

// DueDateLayout is the calendar-date format used for ticket deadlines.
// Due dates carry no time component; zero-padded ISO dates compare
// lexicographically, which the aggregation code relies on.
const DueDateLayout = "2006-01-02"

// Coordinates is an optional geographic point attached to a ticket location.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Ticket is the aggregate for support work orders.
type Ticket struct {
	ID             string
	Title          string
	Description    string
	Location       string
	Coordinates    *Coordinates
	Technician     string
	Status         TicketStatus
	Priority       TicketPriority
	ProductType    ProductType
	DueDate        string
	EstimatedHours *float64
	ActualHours    *float64
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOverdue reports whether the ticket is past its due date and still open,
// given today's date string in DueDateLayout form.
func (t Ticket) IsOverdue(today string) bool {
	return t.DueDate < today && t.Status != TicketStatusCompleted
}

// IsDueToday reports whether the ticket is due today, regardless of status.
func (t Ticket) IsDueToday(today string) bool {
	return t.DueDate == today
}
