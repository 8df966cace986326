package seed

import (
	"context"
	"time"

	"alcyxob/fitness-seeder/internal/domain"
)

// seedAssignments attaches every user to 1-3 programs, sampled without
// replacement. Start dates land 30-365 days in the past, as calendar dates
// (midnight UTC), so week indexing has a clean anchor. Roughly half the
// assignments come out active.
func (s *Seeder) seedAssignments(ctx context.Context) error {
	s.log.Info("creating user program assignments...")
	now := s.clock.Now()

	for _, user := range s.users {
		count := 1 + s.rng.Intn(3)
		if count > len(s.programs) {
			count = len(s.programs)
		}

		for _, idx := range s.rng.Perm(len(s.programs))[:count] {
			assignment := &domain.Assignment{
				UserID:    user.ID,
				ProgramID: s.programs[idx].ID,
				StartDate: midnightUTC(now.AddDate(0, 0, -(30 + s.rng.Intn(336)))),
				Active:    s.rng.Intn(2) == 0,
				CreatedAt: now,
			}
			if err := s.gateway.Insert(ctx, assignment); err != nil {
				return err
			}
			s.assignments = append(s.assignments, assignment)
		}
	}

	if err := s.checkpoint(ctx, "assignments"); err != nil {
		return err
	}
	s.log.Infof("created %d assignments", len(s.assignments))
	return nil
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
