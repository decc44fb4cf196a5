package queue

import (
	"sync"
	"time"

	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"
)

// Store owns the pending turns and the recent submission history. All
// operations take mu, so a select-then-remove in ServeNext is atomic.
type Store struct {
	mu      sync.Mutex
	pending []domain.Turn
	history *history
	nextID  int64
	now     func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		pending: make([]domain.Turn, 0),
		history: newHistory(constant.HistorySize),
		nextID:  1,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
