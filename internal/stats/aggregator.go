// Package stats derives summary aggregates from the in-memory ticket
// collection. Computation is pure: callers supply the tickets and today's
// date string, nothing here touches the clock or the store.
package stats

import (
	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// Compute builds TicketStats for the given tickets. The today argument must
// be a zero-padded ISO date (domain.DueDateLayout); due-date comparisons are
// lexicographic, which is valid only for that form.
//
// A ticket due today is never counted overdue (equality excludes the
// strictly-less branch). A completed ticket with a past due date is counted
// in neither overdue nor due-today's overdue bucket, but due-today itself is
// status-independent.
func Compute(tickets []domain.Ticket, today string) domain.TicketStats {
	s := domain.TicketStats{
		Total:         len(tickets),
		ByStatus:      make(map[domain.TicketStatus]int, len(domain.TicketStatuses)),
		ByPriority:    make(map[domain.TicketPriority]int, len(domain.TicketPriorities)),
		ByProductType: make(map[domain.ProductType]int, len(domain.ProductTypes)),
	}

	for _, status := range domain.TicketStatuses {
		s.ByStatus[status] = 0
	}
	for _, priority := range domain.TicketPriorities {
		s.ByPriority[priority] = 0
	}
	for _, product := range domain.ProductTypes {
		s.ByProductType[product] = 0
	}

	for _, t := range tickets {
		s.ByStatus[t.Status]++
		s.ByPriority[t.Priority]++
		s.ByProductType[t.ProductType]++
		if t.IsOverdue(today) {
			s.Overdue++
		}
		if t.IsDueToday(today) {
			s.DueToday++
		}
	}
	return s
}
