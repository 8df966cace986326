package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is implemented by every seedable entity so a single persistence
// gateway can route any of them to its collection. EnsureID assigns a fresh
// ObjectID if one is not set yet; because IDs are generated client-side,
// children can reference a parent before anything has been flushed.
type Document interface {
	Collection() string
	EnsureID()
}

func ensureID(id *primitive.ObjectID) {
	if *id == primitive.NilObjectID {
		*id = primitive.NewObjectID()
	}
}
