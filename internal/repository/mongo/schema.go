package mongo

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/fitness-seeder/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// dataCollections are the collections holding seeded data, in dependency
// order. seed_runs is deliberately not listed: run markers survive a wipe.
var dataCollections = []string{
	domain.UserCollection,
	domain.ExerciseCollection,
	domain.ProgramCollection,
	domain.ProgramEntryCollection,
	domain.AssignmentCollection,
	domain.SessionCollection,
	domain.SetCollection,
}

// setValidator mirrors the CHECK constraints of the relational schema this
// data model originated from: positive reps, non-negative weight, 1-based
// set index.
var setValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"sessionId", "exerciseId", "setIndex", "reps", "weightKg"},
		"properties": bson.M{
			"setIndex": bson.M{"bsonType": "int", "minimum": 1},
			"reps":     bson.M{"bsonType": "int", "minimum": 1},
			"weightKg": bson.M{"bsonType": []string{"double", "int"}, "minimum": 0},
		},
	},
}

// EnsureSchema creates the seeded collections with their validators and
// unique indexes. It is safe to call against a database that already has
// the collections.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	if err := createCollection(ctx, db, domain.SetCollection, options.CreateCollection().SetValidator(setValidator)); err != nil {
		return fmt.Errorf("creating %s collection: %w", domain.SetCollection, err)
	}

	for coll, ensure := range map[string]func(context.Context, *mongo.Collection) error{
		domain.UserCollection:         EnsureUserIndexes,
		domain.ExerciseCollection:     EnsureExerciseIndexes,
		domain.ProgramEntryCollection: EnsureProgramEntryIndexes,
		domain.AssignmentCollection:   EnsureAssignmentIndexes,
		domain.SessionCollection:      EnsureSessionIndexes,
		domain.SetCollection:          EnsureSetIndexes,
	} {
		if err := ensure(ctx, db.Collection(coll)); err != nil {
			return fmt.Errorf("ensuring indexes for %s: %w", coll, err)
		}
	}
	return nil
}

// Wipe drops all data collections so a fresh run does not duplicate data
// committed by an earlier one. Run markers are kept.
func Wipe(ctx context.Context, db *mongo.Database) error {
	for _, coll := range dataCollections {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			return fmt.Errorf("dropping %s: %w", coll, err)
		}
	}
	return nil
}

func createCollection(ctx context.Context, db *mongo.Database, name string, opts *options.CreateCollectionOptions) error {
	err := db.CreateCollection(ctx, name, opts)
	if err == nil {
		return nil
	}
	// NamespaceExists: the collection is already there, keep it as is.
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 48 {
		return nil
	}
	return err
}

// EnsureUserIndexes creates necessary indexes for the users collection.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// EnsureProgramEntryIndexes enforces one exercise per (program, day, position).
func EnsureProgramEntryIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "programId", Value: 1},
				{Key: "dayOfWeek", Value: 1},
				{Key: "position", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

// EnsureAssignmentIndexes creates necessary indexes for the assignments collection.
func EnsureAssignmentIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "active", Value: 1}},
		},
	})
	return err
}

// EnsureSessionIndexes creates necessary indexes for the sessions collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "startedAt", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "assignmentId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	return err
}

// EnsureSetIndexes enforces contiguous, duplicate-free set numbering per
// (session, exercise).
func EnsureSetIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "sessionId", Value: 1},
				{Key: "exerciseId", Value: 1},
				{Key: "setIndex", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}
