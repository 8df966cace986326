package seed

import (
	"context"
	"time"

	"alcyxob/fitness-seeder/internal/domain"
)

// Set count bounds per schedule path.
const (
	programSetsMin  = 3
	programSetsMax  = 6
	freeformSetsMin = 2
	freeformSetsMax = 5

	freeformExercisesMin = 3
	freeformExercisesMax = 8
)

// synthesizeWorkouts is the core of the seeder: it turns the population,
// catalog and assignments into a year of sessions and sets per user.
//
// Per user it draws a weekly workout frequency in [2.5, 4.5] and derives an
// expected number of draft sessions over the horizon. Each draft gets a
// uniform date inside the horizon and, when the user has an active
// assignment, a fair coin decides between following that program's schedule
// and a freeform workout. A program-based draft whose computed weekday has
// no scheduled entries is discarded outright (day-skip), which is why the
// draft count is an expectation rather than a guarantee.
//
// Accepted sessions and their sets stream into the gateway; every
// BatchSize accepted sessions a checkpoint commit bounds the transaction
// footprint. Skipped drafts do not count toward the checkpoint cadence.
func (s *Seeder) synthesizeWorkouts(ctx context.Context) (sessions, sets int, err error) {
	s.log.Info("generating workout sessions and sets...")

	now := s.clock.Now()
	horizonStart := now.AddDate(0, 0, -s.opts.HorizonDays)

	byUser := make(map[string][]*domain.Assignment, len(s.users))
	for _, a := range s.assignments {
		if a.Active {
			key := a.UserID.Hex()
			byUser[key] = append(byUser[key], a)
		}
	}

	for _, user := range s.users {
		active := byUser[user.ID.Hex()]

		frequency := 2.5 + s.rng.Float64()*2.0
		drafts := int(float64(s.opts.HorizonDays) * frequency / 7)

		for i := 0; i < drafts; i++ {
			startedAt := s.draftStart(horizonStart)
			endedAt := startedAt.Add(time.Duration((0.5 + s.rng.Float64()*1.5) * float64(time.Hour)))

			useProgram := len(active) > 0 && s.rng.Intn(2) == 0
			if !useProgram {
				session := &domain.Session{
					UserID:    user.ID,
					StartedAt: startedAt,
					EndedAt:   endedAt,
					CreatedAt: now,
				}
				created, err := s.freeformSession(ctx, session)
				if err != nil {
					return sessions, sets, err
				}
				sessions++
				sets += created
			} else {
				assignment := active[s.rng.Intn(len(active))]
				week := weekIndex(startedAt, assignment.StartDate)
				day := weekday(startedAt)

				dayEntries := s.schedule[assignment.ProgramID].forDay(day)
				if len(dayEntries) == 0 {
					// Day-skip policy: nothing scheduled for this weekday,
					// so the draft is discarded, not materialized empty.
					continue
				}

				session := &domain.Session{
					UserID:       user.ID,
					AssignmentID: &assignment.ID,
					WeekIndex:    &week,
					DayOfWeek:    &day,
					StartedAt:    startedAt,
					EndedAt:      endedAt,
					CreatedAt:    now,
				}
				created, err := s.programSession(ctx, session, dayEntries)
				if err != nil {
					return sessions, sets, err
				}
				sessions++
				sets += created
			}

			if sessions%s.opts.BatchSize == 0 {
				if err := s.checkpoint(ctx, "workouts"); err != nil {
					return sessions, sets, err
				}
				s.log.Infof("created %d sessions, %d sets...", sessions, sets)
			}
		}
	}

	if err := s.checkpoint(ctx, "workouts"); err != nil {
		return sessions, sets, err
	}
	s.log.Infof("generated %d sessions and %d sets", sessions, sets)
	return sessions, sets, nil
}

// draftStart places a draft session uniformly inside the horizon, at an
// hour between 06:00 and 20:59.
func (s *Seeder) draftStart(horizonStart time.Time) time.Time {
	day := horizonStart.AddDate(0, 0, s.rng.Intn(s.opts.HorizonDays+1))
	y, m, d := day.UTC().Date()
	return time.Date(y, m, d, 6+s.rng.Intn(15), s.rng.Intn(60), 0, 0, time.UTC)
}

// programSession materializes a session following its program's schedule:
// every entry of the day, in stored position order, with 3-6 sets each.
func (s *Seeder) programSession(ctx context.Context, session *domain.Session, dayEntries []*domain.ProgramEntry) (int, error) {
	if err := s.gateway.Insert(ctx, session); err != nil {
		return 0, err
	}

	sets := 0
	for _, entry := range dayEntries {
		count := programSetsMin + s.rng.Intn(programSetsMax-programSetsMin+1)
		if err := s.insertSets(ctx, session, s.exerciseByID[entry.ExerciseID], count); err != nil {
			return sets, err
		}
		sets += count
	}
	return sets, nil
}

// freeformSession materializes an ad hoc session with 3-8 distinct
// exercises sampled from the whole catalog, 2-5 sets each.
func (s *Seeder) freeformSession(ctx context.Context, session *domain.Session) (int, error) {
	if err := s.gateway.Insert(ctx, session); err != nil {
		return 0, err
	}

	picks := freeformExercisesMin + s.rng.Intn(freeformExercisesMax-freeformExercisesMin+1)
	if picks > len(s.exercises) {
		picks = len(s.exercises)
	}

	sets := 0
	for _, idx := range s.rng.Perm(len(s.exercises))[:picks] {
		count := freeformSetsMin + s.rng.Intn(freeformSetsMax-freeformSetsMin+1)
		if err := s.insertSets(ctx, session, s.exercises[idx], count); err != nil {
			return sets, err
		}
		sets += count
	}
	return sets, nil
}

// insertSets generates one exercise's sets for a session, indices 1..count.
func (s *Seeder) insertSets(ctx context.Context, session *domain.Session, exercise *domain.Exercise, count int) error {
	for setIndex := 1; setIndex <= count; setIndex++ {
		record := &domain.SetRecord{
			SessionID:  session.ID,
			ExerciseID: exercise.ID,
			SetIndex:   setIndex,
			Reps:       syntheticReps(s.rng, exercise.Slug, setIndex, count),
			WeightKg:   syntheticWeight(s.rng, exercise.Slug, session.UserID),
			RPE:        syntheticRPE(s.rng),
			CreatedAt:  session.CreatedAt,
		}
		if err := s.gateway.Insert(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// weekday maps a timestamp onto the schedule's day numbering, Monday=0.
func weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// weekIndex is the number of full weeks between an assignment's start date
// and a session start. Floor division throughout, so a session that
// precedes the start date yields a negative index instead of rounding
// toward zero.
func weekIndex(startedAt, startDate time.Time) int {
	days := floorDiv(int(startedAt.Sub(startDate)/time.Second), secondsPerDay)
	return floorDiv(days, 7)
}

const secondsPerDay = 24 * 60 * 60

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
