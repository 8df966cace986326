package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ExerciseCollection = "exercises"

// Exercise represents a single exercise definition in the catalog
// (e.g., "Barbell Bench Press"). The slug is the stable, URL-friendly
// identifier that program fixtures and the weight/rep models key off.
type Exercise struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug          string             `bson:"slug" json:"slug"` // Unique across the catalog
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	TargetMuscles []string           `bson:"targetMuscles" json:"targetMuscles"` // e.g., ["chest", "triceps"]
	CreatedBy     primitive.ObjectID `bson:"createdBy" json:"createdBy"`         // User who owns this definition
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

func (e *Exercise) Collection() string { return ExerciseCollection }
func (e *Exercise) EnsureID()          { ensureID(&e.ID) }
