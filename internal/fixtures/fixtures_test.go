package fixtures

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource serves fixture files from a map, for exercising validation.
type mapSource map[string]string

func (m mapSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(content), nil
}

const (
	minimalUsers     = `[{"email": "a@b.c", "password": "pw"}]`
	minimalExercises = `[{"slug": "squat", "name": "Back Squat", "description": "", "target_muscles": ["quads"]}]`
)

func minimalSource(programs string) mapSource {
	return mapSource{
		UsersFile:     minimalUsers,
		ExercisesFile: minimalExercises,
		ProgramsFile:  programs,
	}
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	catalog, err := Load(context.Background(), EmbeddedSource())
	require.NoError(t, err)

	assert.Len(t, catalog.Users, 5)
	assert.NotEmpty(t, catalog.Exercises)
	assert.Len(t, catalog.Programs, 5)

	slugs := make(map[string]struct{})
	for _, e := range catalog.Exercises {
		slugs[e.Slug] = struct{}{}
	}
	// Spot-check entries the weight/rep models rely on.
	for _, slug := range []string{"squat", "deadlift", "push-ups", "burpees"} {
		_, ok := slugs[slug]
		assert.True(t, ok, "embedded catalog missing %q", slug)
	}
}

func TestLoad_ValidCatalog(t *testing.T) {
	src := minimalSource(`[{"name": "P", "description": "", "entries": [
		{"exercise_slug": "squat", "day_of_week": 0, "position": 1},
		{"exercise_slug": "squat", "day_of_week": 0, "position": 2}
	]}]`)

	catalog, err := Load(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, catalog.Programs[0].Entries, 2)
}

func TestLoad_UnknownExerciseSlugIsFatal(t *testing.T) {
	src := minimalSource(`[{"name": "P", "entries": [
		{"exercise_slug": "bench", "day_of_week": 0, "position": 1}
	]}]`)

	_, err := Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown exercise slug "bench"`)
}

func TestLoad_DayOfWeekOutOfRange(t *testing.T) {
	src := minimalSource(`[{"name": "P", "entries": [
		{"exercise_slug": "squat", "day_of_week": 7, "position": 1}
	]}]`)

	_, err := Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorContains(t, err, "day_of_week 7")
}

func TestLoad_DuplicateDayPosition(t *testing.T) {
	src := minimalSource(`[{"name": "P", "entries": [
		{"exercise_slug": "squat", "day_of_week": 2, "position": 1},
		{"exercise_slug": "squat", "day_of_week": 2, "position": 1}
	]}]`)

	_, err := Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorContains(t, err, "two entries at day 2 position 1")
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	src := mapSource{UsersFile: minimalUsers}

	_, err := Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorContains(t, err, ExercisesFile)
}

func TestLoad_MalformedJSONIsFatal(t *testing.T) {
	src := minimalSource(`{"not": "an array"`)

	_, err := Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorContains(t, err, ProgramsFile)
}

func TestLoad_DuplicateSlug(t *testing.T) {
	src := mapSource{
		UsersFile:     minimalUsers,
		ExercisesFile: `[{"slug": "squat", "name": "A"}, {"slug": "squat", "name": "B"}]`,
		ProgramsFile:  `[]`,
	}

	_, err := Load(context.Background(), src)
	require.Error(t, err)
	assert.ErrorContains(t, err, `duplicate exercise slug "squat"`)
}
