package queue

import "turnos/queue-service/internal/domain"

// history keeps the last capacity submitted turns, oldest first.
// It is guarded by the owning Store's mutex.
type history struct {
	capacity int
	entries  []domain.Turn
}

func newHistory(capacity int) *history {
	if capacity <= 0 {
		capacity = 1
	}
	return &history{
		capacity: capacity,
		entries:  make([]domain.Turn, 0, capacity+1),
	}
}

func (h *history) add(t domain.Turn) {
	h.entries = append(h.entries, t)
	if len(h.entries) > h.capacity {
		h.entries = append(h.entries[:0], h.entries[len(h.entries)-h.capacity:]...)
	}
}

func (h *history) recent() []domain.Turn {
	out := make([]domain.Turn, len(h.entries))
	copy(out, h.entries)
	return out
}
