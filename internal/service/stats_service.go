package service

import (
	"time"

	"github.com/support-desk/ticket-dashboard/internal/domain"
	"github.com/support-desk/ticket-dashboard/internal/state"
	"github.com/support-desk/ticket-dashboard/internal/stats"
)

// StatsService derives TicketStats from the current ticket snapshot. The
// aggregate is recomputed on demand and never stored.
type StatsService struct {
	container *state.Container
	loc       *time.Location
	now       func() time.Time
}

// NewStatsService creates the service. The location decides where "today"
// rolls over for deadline checks.
func NewStatsService(container *state.Container, loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{
		container: container,
		loc:       loc,
		now:       time.Now,
	}
}

// Today returns the current date string in the configured timezone.
func (s *StatsService) Today() string {
	return s.now().In(s.loc).Format(domain.DueDateLayout)
}

// Current computes stats over the in-memory ticket snapshot.
func (s *StatsService) Current() domain.TicketStats {
	return stats.Compute(s.container.Tickets(), s.Today())
}
