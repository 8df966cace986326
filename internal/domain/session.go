package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SessionCollection = "sessions"
	SetCollection     = "sets"
)

// Session represents one workout performed by a user. A session is either
// program-based (AssignmentID, WeekIndex and DayOfWeek are all set) or
// freeform (all three absent). For program-based sessions DayOfWeek is the
// weekday of StartedAt (Monday=0) and WeekIndex is the number of full weeks
// between the assignment's start date and StartedAt (floor division, so a
// session before the start date gets a negative index).
type Session struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID  `bson:"userId" json:"userId"`
	AssignmentID *primitive.ObjectID `bson:"assignmentId,omitempty" json:"assignmentId,omitempty"`
	WeekIndex    *int                `bson:"weekIndex,omitempty" json:"weekIndex,omitempty"`
	DayOfWeek    *int                `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"`
	StartedAt    time.Time           `bson:"startedAt" json:"startedAt"`
	EndedAt      time.Time           `bson:"endedAt" json:"endedAt"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
}

func (s *Session) Collection() string { return SessionCollection }
func (s *Session) EnsureID()          { ensureID(&s.ID) }

// IsProgramBased reports whether the session was generated against an
// assignment's schedule rather than as a freeform workout.
func (s *Session) IsProgramBased() bool { return s.AssignmentID != nil }

// SetRecord is the atomic unit of workout logging: one set of one exercise
// within a session. SetIndex is 1-based and contiguous per
// (session, exercise). RPE is recorded the way the mobile apps submit it,
// as a string like "8.0" or "7.5", or nil when the user skipped it.
type SetRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID  primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	SetIndex   int                `bson:"setIndex" json:"setIndex"`
	Reps       int                `bson:"reps" json:"reps"`         // > 0
	WeightKg   float64            `bson:"weightKg" json:"weightKg"` // >= 0, one decimal place
	RPE        *string            `bson:"rpe,omitempty" json:"rpe,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

func (s *SetRecord) Collection() string { return SetCollection }
func (s *SetRecord) EnsureID()          { ensureID(&s.ID) }
