package seed

import (
	"context"
	"fmt"
	"time"

	"alcyxob/fitness-seeder/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// seedUsers creates the fixture users plus any requested synthetic extras.
// Fixture passwords are plaintext placeholders; only the bcrypt hash is
// ever persisted.
func (s *Seeder) seedUsers(ctx context.Context) error {
	s.log.Info("creating users...")
	now := s.clock.Now()

	for _, fu := range s.catalog.Users {
		user, err := buildUser(fu.Email, fu.Password, now)
		if err != nil {
			return err
		}
		if err := s.gateway.Insert(ctx, user); err != nil {
			return err
		}
		s.users = append(s.users, user)
	}

	if err := s.seedExtraUsers(ctx, now); err != nil {
		return err
	}

	if err := s.checkpoint(ctx, "users"); err != nil {
		return err
	}
	s.log.Infof("created %d users", len(s.users))
	return nil
}

// seedExtraUsers synthesizes additional accounts when a run needs more
// load than the fixture set provides. The faker is seeded from the run's
// RNG, so the extra emails are as reproducible as everything else.
func (s *Seeder) seedExtraUsers(ctx context.Context, now time.Time) error {
	if s.opts.ExtraUsers <= 0 {
		return nil
	}

	faker := gofakeit.New(s.rng.Int63())
	taken := make(map[string]struct{}, len(s.users)+s.opts.ExtraUsers)
	for _, u := range s.users {
		taken[u.Email] = struct{}{}
	}

	for i := 0; i < s.opts.ExtraUsers; i++ {
		email := faker.Email()
		if _, dup := taken[email]; dup {
			// Faker emails are not unique; qualify the local part.
			email = fmt.Sprintf("%s+%d@%s", faker.Username(), i, faker.DomainName())
		}
		taken[email] = struct{}{}

		user, err := buildUser(email, faker.Password(true, true, true, false, false, 16), now)
		if err != nil {
			return err
		}
		if err := s.gateway.Insert(ctx, user); err != nil {
			return err
		}
		s.users = append(s.users, user)
	}
	return nil
}

func buildUser(email, password string, now time.Time) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password for %s: %w", email, err)
	}
	return &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}, nil
}

// seedExercises creates the exercise catalog. Each definition gets a
// random fixture user as its creator, mirroring how user-authored catalogs
// look in production.
func (s *Seeder) seedExercises(ctx context.Context) error {
	s.log.Info("creating exercises...")
	now := s.clock.Now()

	s.exerciseBySlug = make(map[string]*domain.Exercise, len(s.catalog.Exercises))
	s.exerciseByID = make(map[primitive.ObjectID]*domain.Exercise, len(s.catalog.Exercises))

	for _, fe := range s.catalog.Exercises {
		exercise := &domain.Exercise{
			Slug:          fe.Slug,
			Name:          fe.Name,
			Description:   fe.Description,
			TargetMuscles: fe.TargetMuscles,
			CreatedBy:     s.users[s.rng.Intn(len(s.users))].ID,
			CreatedAt:     now,
		}
		if err := s.gateway.Insert(ctx, exercise); err != nil {
			return err
		}
		s.exercises = append(s.exercises, exercise)
		s.exerciseBySlug[exercise.Slug] = exercise
		s.exerciseByID[exercise.ID] = exercise
	}

	if err := s.checkpoint(ctx, "exercises"); err != nil {
		return err
	}
	s.log.Infof("created %d exercises", len(s.exercises))
	return nil
}
