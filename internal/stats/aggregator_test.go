package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/stats"
)

const today = "2024-03-11"

func ticket(status domain.TicketStatus, priority domain.TicketPriority, product domain.ProductType, dueDate string) domain.Ticket {
	return domain.Ticket{
		ID:          dueDate + string(status),
		Title:       "fiber cut",
		Status:      status,
		Priority:    priority,
		ProductType: product,
		DueDate:     dueDate,
	}
}

func TestComputeEmpty(t *testing.T) {
	s := stats.Compute(nil, today)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Overdue)
	assert.Equal(t, 0, s.DueToday)

	// Every bucket exists even with no tickets.
	require.Len(t, s.ByStatus, len(domain.TicketStatuses))
	require.Len(t, s.ByPriority, len(domain.TicketPriorities))
	require.Len(t, s.ByProductType, len(domain.ProductTypes))
	for _, status := range domain.TicketStatuses {
		assert.Equal(t, 0, s.ByStatus[status])
	}
}

func TestComputeCounts(t *testing.T) {
	tickets := []domain.Ticket{
		ticket(domain.TicketStatusOpen, domain.TicketPriorityHigh, domain.ProductTypeGPON, "2024-03-10"),
		ticket(domain.TicketStatusInProgress, domain.TicketPriorityMedium, domain.ProductTypeADSL, "2024-03-11"),
		ticket(domain.TicketStatusCompleted, domain.TicketPriorityLow, domain.ProductTypeFixed, "2024-03-09"),
		ticket(domain.TicketStatusOpen, domain.TicketPriorityHigh, domain.ProductTypeGPON, "2024-03-15"),
	}

	s := stats.Compute(tickets, today)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.ByStatus[domain.TicketStatusOpen])
	assert.Equal(t, 1, s.ByStatus[domain.TicketStatusInProgress])
	assert.Equal(t, 0, s.ByStatus[domain.TicketStatusOnHold])
	assert.Equal(t, 1, s.ByStatus[domain.TicketStatusCompleted])
	assert.Equal(t, 2, s.ByPriority[domain.TicketPriorityHigh])
	assert.Equal(t, 2, s.ByProductType[domain.ProductTypeGPON])

	// 2024-03-10 Open is overdue; Completed 2024-03-09 is not.
	assert.Equal(t, 1, s.Overdue)
	assert.Equal(t, 1, s.DueToday)
}

func TestComputeBucketsSumToTotal(t *testing.T) {
	tickets := []domain.Ticket{
		ticket(domain.TicketStatusOpen, domain.TicketPriorityLow, domain.ProductTypeFixed, "2024-03-01"),
		ticket(domain.TicketStatusOnHold, domain.TicketPriorityMedium, domain.ProductTypeADSL, "2024-03-11"),
		ticket(domain.TicketStatusCompleted, domain.TicketPriorityHigh, domain.ProductTypeGPON, "2024-03-20"),
		ticket(domain.TicketStatusInProgress, domain.TicketPriorityHigh, domain.ProductTypeGPON, "2024-03-11"),
		ticket(domain.TicketStatusOpen, domain.TicketPriorityMedium, domain.ProductTypeADSL, "2024-04-02"),
	}

	s := stats.Compute(tickets, today)

	sum := func(m map[domain.TicketStatus]int) int {
		total := 0
		for _, n := range m {
			total += n
		}
		return total
	}
	assert.Equal(t, s.Total, sum(s.ByStatus))

	prioritySum := 0
	for _, n := range s.ByPriority {
		prioritySum += n
	}
	assert.Equal(t, s.Total, prioritySum)

	productSum := 0
	for _, n := range s.ByProductType {
		productSum += n
	}
	assert.Equal(t, s.Total, productSum)
}

func TestComputeDueTodayNeverOverdue(t *testing.T) {
	tickets := []domain.Ticket{
		ticket(domain.TicketStatusOpen, domain.TicketPriorityHigh, domain.ProductTypeGPON, today),
	}

	s := stats.Compute(tickets, today)

	assert.Equal(t, 1, s.DueToday)
	assert.Equal(t, 0, s.Overdue, "a ticket due today is not overdue")
}

func TestComputeCompletedDueTodayStillCountsDueToday(t *testing.T) {
	tickets := []domain.Ticket{
		ticket(domain.TicketStatusCompleted, domain.TicketPriorityLow, domain.ProductTypeFixed, today),
	}

	s := stats.Compute(tickets, today)

	assert.Equal(t, 1, s.DueToday, "due-today is status-independent")
	assert.Equal(t, 0, s.Overdue)
}

func TestComputeCompletedPastDueNotOverdue(t *testing.T) {
	tickets := []domain.Ticket{
		ticket(domain.TicketStatusCompleted, domain.TicketPriorityHigh, domain.ProductTypeADSL, "2023-12-31"),
	}

	s := stats.Compute(tickets, today)

	assert.Equal(t, 0, s.Overdue)
	assert.Equal(t, 0, s.DueToday)
}
