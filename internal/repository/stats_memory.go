package repository

import (
	"context"
	"sync"

	"turnos/queue-service/internal/domain"
)

// MemoryStatsRepository keeps counters in process memory. Used when no redis
// is configured and in tests.
type MemoryStatsRepository struct {
	mu    sync.Mutex
	stats domain.QueueStats
}

func NewMemoryStatsRepository() *MemoryStatsRepository {
	return &MemoryStatsRepository{}
}

func (r *MemoryStatsRepository) RecordSubmitted(_ context.Context, turn domain.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Submitted.Add(turn.Priority)
	return nil
}

func (r *MemoryStatsRepository) RecordServed(_ context.Context, turn domain.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Served.Add(turn.Priority)
	return nil
}

func (r *MemoryStatsRepository) GetStats(_ context.Context) (domain.QueueStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats, nil
}
