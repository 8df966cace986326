package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/fitness-seeder/internal/domain"
	"alcyxob/fitness-seeder/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoSeedRunRepository implements repository.SeedRunRepository. Run
// markers are written outside the seeding transaction on purpose: a marker
// for an aborted run is evidence, not garbage.
type mongoSeedRunRepository struct {
	collection *mongo.Collection
}

// NewMongoSeedRunRepository creates a new SeedRun repository backed by MongoDB.
func NewMongoSeedRunRepository(db *mongo.Database) repository.SeedRunRepository {
	return &mongoSeedRunRepository{
		collection: db.Collection(domain.SeedRunCollection),
	}
}

// Create inserts the run marker at the start of a seeding run.
func (r *mongoSeedRunRepository) Create(ctx context.Context, run *domain.SeedRun) error {
	if run.RunID == "" {
		return errors.New("seed run requires a runId")
	}
	run.EnsureID()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, run)
	return err
}

// Finalize stamps the completion time and final entity counts on the marker.
func (r *mongoSeedRunRepository) Finalize(ctx context.Context, run *domain.SeedRun) error {
	now := time.Now().UTC()
	run.CompletedAt = &now

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": run.ID}, run)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
