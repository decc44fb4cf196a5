package repository

import (
	"context"
	"testing"

	"turnos/queue-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestMemoryStatsRepository_Counts(t *testing.T) {
	repo := NewMemoryStatsRepository()
	ctx := context.Background()

	require.NoError(t, repo.RecordSubmitted(ctx, domain.Turn{Priority: domain.PriorityNormal}))
	require.NoError(t, repo.RecordSubmitted(ctx, domain.Turn{Priority: domain.PriorityUrgent}))
	require.NoError(t, repo.RecordSubmitted(ctx, domain.Turn{Priority: domain.PriorityUrgent}))
	require.NoError(t, repo.RecordServed(ctx, domain.Turn{Priority: domain.PriorityUrgent}))

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Counters{Normal: 1, Urgent: 2}, stats.Submitted)
	require.Equal(t, domain.Counters{Urgent: 1}, stats.Served)
}

func TestParseStats(t *testing.T) {
	stats := parseStats(map[string]string{
		"submitted:normal": "4",
		"submitted:urgent": "2",
		"served:normal":    "3",
		"served:urgent":    "garbage",
	})

	require.EqualValues(t, 6, stats.Submitted.Total())
	require.Equal(t, domain.Counters{Normal: 3}, stats.Served)
}
