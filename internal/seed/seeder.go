package seed

import (
	"context"
	"fmt"
	"math/rand"

	"alcyxob/fitness-seeder/internal/domain"
	"alcyxob/fitness-seeder/internal/fixtures"
	"alcyxob/fitness-seeder/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Options tune one seeding run. Zero values fall back to the defaults
// below.
type Options struct {
	// HorizonDays is the historical window workouts are generated over.
	HorizonDays int
	// BatchSize is the number of accepted sessions between checkpoint
	// commits during workout synthesis.
	BatchSize int
	// ExtraUsers are synthesized on top of the fixture users.
	ExtraUsers int
	// RNGSeed makes the run reproducible; 0 seeds from the clock.
	RNGSeed int64
}

const (
	defaultHorizonDays = 365
	defaultBatchSize   = 100
)

// Summary is what a completed run reports on stdout.
type Summary struct {
	RunID       string
	Users       int
	Exercises   int
	Programs    int
	Assignments int
	Sessions    int
	Sets        int
}

// Seeder runs the whole generation pipeline: users, exercise catalog,
// programs, assignments, then a year of workouts per user. All randomness
// comes from one explicitly seeded source, so two runs with the same seed,
// clock and fixtures produce the same data.
type Seeder struct {
	gateway repository.Gateway
	runs    repository.SeedRunRepository // nil disables run markers
	catalog *fixtures.Catalog
	clock   Clock
	rng     *rand.Rand
	seed    int64
	log     logrus.FieldLogger
	opts    Options

	// Populated as stages complete, read-only afterwards.
	users          []*domain.User
	exercises      []*domain.Exercise
	exerciseBySlug map[string]*domain.Exercise
	exerciseByID   map[primitive.ObjectID]*domain.Exercise
	programs       []*domain.Program
	schedule       map[primitive.ObjectID]*weeklySchedule
	assignments    []*domain.Assignment
}

// New creates a Seeder. runs may be nil when run markers are not wanted
// (tests, dry runs).
func New(gateway repository.Gateway, runs repository.SeedRunRepository, catalog *fixtures.Catalog, clock Clock, opts Options) *Seeder {
	if opts.HorizonDays <= 0 {
		opts.HorizonDays = defaultHorizonDays
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if clock == nil {
		clock = SystemClock()
	}

	seed := opts.RNGSeed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	return &Seeder{
		gateway: gateway,
		runs:    runs,
		catalog: catalog,
		clock:   clock,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		log:     logrus.WithField("component", "seeder"),
		opts:    opts,
	}
}

// Run executes all stages in order, committing a checkpoint after each.
// On error the caller owns rolling back the gateway; everything committed
// before the failure stays persisted.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	run := &domain.SeedRun{
		RunID:     uuid.New().String(),
		RNGSeed:   s.seed,
		StartedAt: s.clock.Now(),
	}
	if s.runs != nil {
		if err := s.runs.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("recording seed run: %w", err)
		}
	}
	s.log.WithFields(logrus.Fields{"runId": run.RunID, "rngSeed": s.seed}).Info("seeding run started")

	if err := s.seedUsers(ctx); err != nil {
		return nil, fmt.Errorf("seeding users: %w", err)
	}
	if err := s.seedExercises(ctx); err != nil {
		return nil, fmt.Errorf("seeding exercises: %w", err)
	}
	if err := s.seedPrograms(ctx); err != nil {
		return nil, fmt.Errorf("seeding programs: %w", err)
	}
	if err := s.seedAssignments(ctx); err != nil {
		return nil, fmt.Errorf("seeding assignments: %w", err)
	}

	sessions, sets, err := s.synthesizeWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("synthesizing workouts: %w", err)
	}

	summary := &Summary{
		RunID:       run.RunID,
		Users:       len(s.users),
		Exercises:   len(s.exercises),
		Programs:    len(s.programs),
		Assignments: len(s.assignments),
		Sessions:    sessions,
		Sets:        sets,
	}

	if s.runs != nil {
		run.Users = summary.Users
		run.Exercises = summary.Exercises
		run.Programs = summary.Programs
		run.Assignments = summary.Assignments
		run.Sessions = summary.Sessions
		run.Sets = summary.Sets
		if err := s.runs.Finalize(ctx, run); err != nil {
			return nil, fmt.Errorf("finalizing seed run: %w", err)
		}
	}

	s.log.WithField("runId", run.RunID).Info("seeding run completed")
	return summary, nil
}

// checkpoint commits the current transaction segment after a stage.
func (s *Seeder) checkpoint(ctx context.Context, stage string) error {
	if err := s.gateway.Commit(ctx); err != nil {
		return fmt.Errorf("committing %s: %w", stage, err)
	}
	return nil
}
