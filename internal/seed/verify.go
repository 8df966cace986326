package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"alcyxob/fitness-seeder/internal/domain"
	"alcyxob/fitness-seeder/internal/repository"
)

// Verifier prints a post-seed sanity report: row counts per collection,
// a few sampled records, and constraint spot checks.
type Verifier struct {
	stats repository.StatsRepository
}

func NewVerifier(stats repository.StatsRepository) *Verifier {
	return &Verifier{stats: stats}
}

var reportCollections = []string{
	domain.UserCollection,
	domain.ExerciseCollection,
	domain.ProgramCollection,
	domain.ProgramEntryCollection,
	domain.AssignmentCollection,
	domain.SessionCollection,
	domain.SetCollection,
}

// Report writes the verification report to w. It returns an error only on
// query failure; a suspicious database still produces a report.
func (v *Verifier) Report(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "SetLogs Database Verification")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	fmt.Fprintln(w, "\nRow Counts:")
	for _, coll := range reportCollections {
		count, err := v.stats.Count(ctx, coll)
		if err != nil {
			return fmt.Errorf("counting %s: %w", coll, err)
		}
		fmt.Fprintf(w, "  %-15s: %d\n", coll, count)
	}

	emails, err := v.stats.SampleUserEmails(ctx, 3)
	if err != nil {
		return fmt.Errorf("sampling users: %w", err)
	}
	fmt.Fprintln(w, "\nSample Users:")
	for _, email := range emails {
		fmt.Fprintf(w, "  - %s\n", email)
	}

	names, err := v.stats.SampleExerciseNames(ctx, 5)
	if err != nil {
		return fmt.Errorf("sampling exercises: %w", err)
	}
	fmt.Fprintln(w, "\nSample Exercises:")
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}

	invalid, err := v.stats.InvalidSetCount(ctx)
	if err != nil {
		return fmt.Errorf("checking set constraints: %w", err)
	}
	fmt.Fprintf(w, "\nSets violating reps/weight/index bounds: %d\n", invalid)

	run, err := v.stats.LatestSeedRun(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		fmt.Fprintln(w, "\nNo seed run recorded.")
	case err != nil:
		return fmt.Errorf("loading latest seed run: %w", err)
	default:
		status := "INCOMPLETE"
		if run.CompletedAt != nil {
			status = "completed " + run.CompletedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "\nLatest seed run %s (seed %d): %s\n", run.RunID, run.RNGSeed, status)
	}

	return nil
}
