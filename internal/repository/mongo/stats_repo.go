package mongo

import (
	"context"
	"errors"

	"alcyxob/fitness-seeder/internal/domain"
	"alcyxob/fitness-seeder/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoStatsRepository implements repository.StatsRepository.
type mongoStatsRepository struct {
	db *mongo.Database
}

// NewMongoStatsRepository creates the read-only repository behind the
// verify command.
func NewMongoStatsRepository(db *mongo.Database) repository.StatsRepository {
	return &mongoStatsRepository{db: db}
}

func (r *mongoStatsRepository) Count(ctx context.Context, collection string) (int64, error) {
	return r.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

func (r *mongoStatsRepository) SampleUserEmails(ctx context.Context, n int) ([]string, error) {
	return r.sampleField(ctx, domain.UserCollection, "email", n)
}

func (r *mongoStatsRepository) SampleExerciseNames(ctx context.Context, n int) ([]string, error) {
	return r.sampleField(ctx, domain.ExerciseCollection, "name", n)
}

// InvalidSetCount counts set documents violating reps/weight/setIndex
// bounds. The collection validator should make this impossible, so any
// non-zero result points at data written around the seeder.
func (r *mongoStatsRepository) InvalidSetCount(ctx context.Context) (int64, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"reps": bson.M{"$lt": 1}},
		bson.M{"weightKg": bson.M{"$lt": 0}},
		bson.M{"setIndex": bson.M{"$lt": 1}},
	}}
	return r.db.Collection(domain.SetCollection).CountDocuments(ctx, filter)
}

func (r *mongoStatsRepository) LatestSeedRun(ctx context.Context) (*domain.SeedRun, error) {
	var run domain.SeedRun
	opts := options.FindOne().SetSort(bson.D{{Key: "startedAt", Value: -1}})

	err := r.db.Collection(domain.SeedRunCollection).FindOne(ctx, bson.M{}, opts).Decode(&run)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}

// sampleField pulls n random values of a single field using a $sample
// aggregation stage.
func (r *mongoStatsRepository) sampleField(ctx context.Context, collection, field string, n int) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": n}}},
		{{Key: "$project", Value: bson.M{field: 1}}},
	}

	cursor, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(docs))
	for _, doc := range docs {
		if v, ok := doc[field].(string); ok {
			values = append(values, v)
		}
	}
	return values, nil
}
