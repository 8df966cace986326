package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProgramCollection      = "programs"
	ProgramEntryCollection = "program_entries"
)

// Program represents a reusable workout template that groups exercises
// into a weekly schedule. Users are attached to programs via Assignment.
type Program struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"ownerId"` // User who created the program
	Name        string             `bson:"name" json:"name"`       // e.g., "5/3/1 Strength"
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (p *Program) Collection() string { return ProgramCollection }
func (p *Program) EnsureID()          { ensureID(&p.ID) }

// ProgramEntry places one exercise on the program's weekly schedule.
// DayOfWeek uses Monday=0 .. Sunday=6; Position is 1-based and orders the
// exercises within a day. (program, day_of_week, position) is unique.
type ProgramEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID  primitive.ObjectID `bson:"programId" json:"programId"`
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	DayOfWeek  int                `bson:"dayOfWeek" json:"dayOfWeek"`
	Position   int                `bson:"position" json:"position"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

func (e *ProgramEntry) Collection() string { return ProgramEntryCollection }
func (e *ProgramEntry) EnsureID()          { ensureID(&e.ID) }
