package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserCollection = "users"

// User represents an account in the system. Seeded users come either from
// the user fixture file or are synthesized on top of it.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"` // Unique across users
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func (u *User) Collection() string { return UserCollection }
func (u *User) EnsureID()          { ensureID(&u.ID) }
