package repository

import (
	"context"

	"alcyxob/fitness-seeder/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = Error("not found")
	ErrClosed   = Error("gateway closed")
)

// Error helps distinguish repository errors.
type Error string

func (e Error) Error() string { return string(e) }

// Gateway is the write path of a seeding run. Inserted documents get their
// IDs assigned immediately (client-side generation), so children may
// reference parents before any round trip; Flush pushes the buffered
// documents to storage and Commit additionally closes the current
// transaction segment (a checkpoint). After a failed call the only valid
// operations are Rollback and Close.
type Gateway interface {
	// Insert assigns the document an ID and buffers it for the next Flush.
	Insert(ctx context.Context, doc domain.Document) error
	// Flush writes all buffered documents, preserving insertion order
	// within each collection.
	Flush(ctx context.Context) error
	// Commit flushes and commits the current transaction segment. Data
	// committed here survives a later abort of the run.
	Commit(ctx context.Context) error
	// Rollback discards buffered documents and aborts the uncommitted
	// transaction segment.
	Rollback(ctx context.Context) error
	// Close releases the underlying session. Uncommitted work is lost.
	Close(ctx context.Context)
}

// StatsRepository serves the verify command: row counts and small samples
// per collection. Read-only.
type StatsRepository interface {
	Count(ctx context.Context, collection string) (int64, error)
	SampleUserEmails(ctx context.Context, n int) ([]string, error)
	SampleExerciseNames(ctx context.Context, n int) ([]string, error)
	// InvalidSetCount returns the number of set documents violating the
	// reps/weight/set_index bounds. Zero after a healthy run.
	InvalidSetCount(ctx context.Context) (int64, error)
	// LatestSeedRun returns the most recently started run marker.
	LatestSeedRun(ctx context.Context) (*domain.SeedRun, error)
}

// SeedRunRepository records run markers outside the seeding transaction so
// they survive a rollback.
type SeedRunRepository interface {
	Create(ctx context.Context, run *domain.SeedRun) error
	Finalize(ctx context.Context, run *domain.SeedRun) error
}
