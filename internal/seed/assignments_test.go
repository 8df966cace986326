package seed

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAssignments(t *testing.T) {
	ctx := context.Background()
	catalog := loadEmbeddedCatalog(t)
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	gw := newMemGateway()
	s := New(gw, nil, catalog, fixedClock{now}, Options{RNGSeed: 13})

	require.NoError(t, s.seedUsers(ctx))
	require.NoError(t, s.seedExercises(ctx))
	require.NoError(t, s.seedPrograms(ctx))
	require.NoError(t, s.seedAssignments(ctx))

	byUser := make(map[primitive.ObjectID][]primitive.ObjectID)
	earliest := midnightUTC(now.AddDate(0, 0, -365))
	latest := midnightUTC(now.AddDate(0, 0, -30))

	for _, a := range gw.assignments() {
		byUser[a.UserID] = append(byUser[a.UserID], a.ProgramID)

		// Calendar date only, inside the 30-365 day window.
		assert.Equal(t, a.StartDate, midnightUTC(a.StartDate))
		assert.False(t, a.StartDate.Before(earliest))
		assert.False(t, a.StartDate.After(latest))
	}

	require.Len(t, byUser, len(s.users))
	for userID, programs := range byUser {
		assert.GreaterOrEqual(t, len(programs), 1, "user %s", userID.Hex())
		assert.LessOrEqual(t, len(programs), 3, "user %s", userID.Hex())

		// Sampled without replacement: no duplicate programs per user.
		seen := make(map[primitive.ObjectID]struct{})
		for _, p := range programs {
			_, dup := seen[p]
			assert.False(t, dup, "user %s assigned program %s twice", userID.Hex(), p.Hex())
			seen[p] = struct{}{}
		}
	}

	// One checkpoint per completed stage.
	assert.Equal(t, 4, gw.commits)
}
