package seed

import (
	"bytes"
	"context"
	"testing"
	"time"

	"alcyxob/fitness-seeder/internal/domain"
	"alcyxob/fitness-seeder/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStats is a canned repository.StatsRepository.
type memStats struct {
	counts  map[string]int64
	invalid int64
	run     *domain.SeedRun
}

func (m *memStats) Count(_ context.Context, collection string) (int64, error) {
	return m.counts[collection], nil
}

func (m *memStats) SampleUserEmails(_ context.Context, n int) ([]string, error) {
	return []string{"alice@setlogs.dev", "bob@setlogs.dev"}, nil
}

func (m *memStats) SampleExerciseNames(_ context.Context, n int) ([]string, error) {
	return []string{"Back Squat", "Deadlift"}, nil
}

func (m *memStats) InvalidSetCount(_ context.Context) (int64, error) {
	return m.invalid, nil
}

func (m *memStats) LatestSeedRun(_ context.Context) (*domain.SeedRun, error) {
	if m.run == nil {
		return nil, repository.ErrNotFound
	}
	return m.run, nil
}

func TestVerifier_Report(t *testing.T) {
	completed := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	stats := &memStats{
		counts: map[string]int64{
			domain.UserCollection:    5,
			domain.SessionCollection: 940,
			domain.SetCollection:     17203,
		},
		run: &domain.SeedRun{RunID: "run-1234", RNGSeed: 77, CompletedAt: &completed},
	}

	var buf bytes.Buffer
	err := NewVerifier(stats).Report(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Row Counts:")
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "17203")
	assert.Contains(t, out, "alice@setlogs.dev")
	assert.Contains(t, out, "Back Squat")
	assert.Contains(t, out, "violating reps/weight/index bounds: 0")
	assert.Contains(t, out, "run-1234")
	assert.Contains(t, out, "completed 2025-03-10")
}

func TestVerifier_ReportWithoutRunMarker(t *testing.T) {
	stats := &memStats{counts: map[string]int64{}}

	var buf bytes.Buffer
	err := NewVerifier(stats).Report(context.Background(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No seed run recorded.")
}
