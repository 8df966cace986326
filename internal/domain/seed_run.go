package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SeedRunCollection = "seed_runs"

// SeedRun is the marker document written for every seeding run. Checkpoint
// commits make a failed run non-idempotent on retry, so the marker gives
// operators a way to tell which run produced the data currently in the
// database, and whether that run completed.
type SeedRun struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RunID       string             `bson:"runId" json:"runId"` // UUID, printed in logs
	RNGSeed     int64              `bson:"rngSeed" json:"rngSeed"`
	StartedAt   time.Time          `bson:"startedAt" json:"startedAt"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`

	Users       int `bson:"users" json:"users"`
	Exercises   int `bson:"exercises" json:"exercises"`
	Programs    int `bson:"programs" json:"programs"`
	Assignments int `bson:"assignments" json:"assignments"`
	Sessions    int `bson:"sessions" json:"sessions"`
	Sets        int `bson:"sets" json:"sets"`
}

func (r *SeedRun) Collection() string { return SeedRunCollection }
func (r *SeedRun) EnsureID()          { ensureID(&r.ID) }
