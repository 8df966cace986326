package seed

import (
	"context"
	"sort"

	"alcyxob/fitness-seeder/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// weeklySchedule holds a program's entries bucketed per day (Monday=0),
// each day sorted by position. This is the lookup the synthesizer hits for
// every program-based draft session.
type weeklySchedule struct {
	days [7][]*domain.ProgramEntry
}

func (w *weeklySchedule) forDay(day int) []*domain.ProgramEntry {
	if day < 0 || day > 6 {
		return nil
	}
	return w.days[day]
}

func (w *weeklySchedule) add(entry *domain.ProgramEntry) {
	w.days[entry.DayOfWeek] = append(w.days[entry.DayOfWeek], entry)
}

func (w *weeklySchedule) sortDays() {
	for day := range w.days {
		entries := w.days[day]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	}
}

// seedPrograms materializes Program and ProgramEntry records from the
// fixture definitions and builds the in-memory weekly schedules. Entry
// exercises are resolved by slug; the loader already guaranteed they exist.
func (s *Seeder) seedPrograms(ctx context.Context) error {
	s.log.Info("creating programs...")
	now := s.clock.Now()
	s.schedule = make(map[primitive.ObjectID]*weeklySchedule, len(s.catalog.Programs))

	entries := 0
	for _, fp := range s.catalog.Programs {
		program := &domain.Program{
			OwnerID:     s.users[s.rng.Intn(len(s.users))].ID,
			Name:        fp.Name,
			Description: fp.Description,
			CreatedAt:   now,
		}
		if err := s.gateway.Insert(ctx, program); err != nil {
			return err
		}

		schedule := &weeklySchedule{}
		for _, fe := range fp.Entries {
			entry := &domain.ProgramEntry{
				ProgramID:  program.ID,
				ExerciseID: s.exerciseBySlug[fe.ExerciseSlug].ID,
				DayOfWeek:  fe.DayOfWeek,
				Position:   fe.Position,
				CreatedAt:  now,
			}
			if err := s.gateway.Insert(ctx, entry); err != nil {
				return err
			}
			schedule.add(entry)
			entries++
		}
		schedule.sortDays()

		s.programs = append(s.programs, program)
		s.schedule[program.ID] = schedule
	}

	if err := s.checkpoint(ctx, "programs"); err != nil {
		return err
	}
	s.log.Infof("created %d programs with %d entries", len(s.programs), entries)
	return nil
}
