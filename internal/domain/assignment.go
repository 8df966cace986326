package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AssignmentCollection = "assignments"

// Assignment connects a User to a Program they follow. StartDate is a
// calendar date (midnight UTC) that anchors the program's week indexing.
// Sessions keep their own week/day snapshot, so deactivating or deleting
// an assignment never invalidates the sessions generated under it.
type Assignment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ProgramID primitive.ObjectID `bson:"programId" json:"programId"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (a *Assignment) Collection() string { return AssignmentCollection }
func (a *Assignment) EnsureID()          { ensureID(&a.ID) }
