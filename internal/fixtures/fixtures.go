package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
)

// Fixture file names, identical across all sources.
const (
	UsersFile     = "users.json"
	ExercisesFile = "exercises.json"
	ProgramsFile  = "programs.json"
)

// UserFixture is one record of users.json. The password is a plaintext
// placeholder that gets bcrypt-hashed before the user is persisted.
type UserFixture struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExerciseFixture is one record of exercises.json.
type ExerciseFixture struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	TargetMuscles []string `json:"target_muscles"`
}

// ProgramFixture is one record of programs.json, with its weekly schedule.
type ProgramFixture struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Entries     []ProgramEntryFixture `json:"entries"`
}

// ProgramEntryFixture schedules one exercise: DayOfWeek is Monday=0 ..
// Sunday=6, Position is 1-based within the day.
type ProgramEntryFixture struct {
	ExerciseSlug string `json:"exercise_slug"`
	DayOfWeek    int    `json:"day_of_week"`
	Position     int    `json:"position"`
}

// Catalog holds the three fixture collections after validation.
type Catalog struct {
	Users     []UserFixture
	Exercises []ExerciseFixture
	Programs  []ProgramFixture
}

// Load reads and validates the three fixture collections from a source.
// Any missing file, malformed record, or program entry referencing an
// unknown exercise slug is a fatal error: nothing should be generated from
// a broken catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	var catalog Catalog

	if err := readJSON(ctx, src, UsersFile, &catalog.Users); err != nil {
		return nil, err
	}
	if err := readJSON(ctx, src, ExercisesFile, &catalog.Exercises); err != nil {
		return nil, err
	}
	if err := readJSON(ctx, src, ProgramsFile, &catalog.Programs); err != nil {
		return nil, err
	}

	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("validating fixtures: %w", err)
	}
	return &catalog, nil
}

func readJSON(ctx context.Context, src Source, name string, out interface{}) error {
	data, err := src.ReadFile(ctx, name)
	if err != nil {
		return fmt.Errorf("reading fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	if len(c.Users) == 0 {
		return fmt.Errorf("%s contains no users", UsersFile)
	}
	for i, u := range c.Users {
		if u.Email == "" || u.Password == "" {
			return fmt.Errorf("user fixture %d is missing email or password", i)
		}
	}

	slugs := make(map[string]struct{}, len(c.Exercises))
	for i, e := range c.Exercises {
		if e.Slug == "" || e.Name == "" {
			return fmt.Errorf("exercise fixture %d is missing slug or name", i)
		}
		if _, dup := slugs[e.Slug]; dup {
			return fmt.Errorf("duplicate exercise slug %q", e.Slug)
		}
		slugs[e.Slug] = struct{}{}
	}

	for _, p := range c.Programs {
		if p.Name == "" {
			return fmt.Errorf("program fixture is missing a name")
		}
		seen := make(map[[2]int]struct{}, len(p.Entries))
		for _, entry := range p.Entries {
			if _, ok := slugs[entry.ExerciseSlug]; !ok {
				return fmt.Errorf("program %q references unknown exercise slug %q", p.Name, entry.ExerciseSlug)
			}
			if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
				return fmt.Errorf("program %q entry %q has day_of_week %d outside [0,6]", p.Name, entry.ExerciseSlug, entry.DayOfWeek)
			}
			if entry.Position < 1 {
				return fmt.Errorf("program %q entry %q has non-positive position %d", p.Name, entry.ExerciseSlug, entry.Position)
			}
			key := [2]int{entry.DayOfWeek, entry.Position}
			if _, dup := seen[key]; dup {
				return fmt.Errorf("program %q has two entries at day %d position %d", p.Name, entry.DayOfWeek, entry.Position)
			}
			seen[key] = struct{}{}
		}
	}
	return nil
}
