package queue

import (
	"strings"

	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"
)

func (s *Store) Submit(name, procedure, priority string) (domain.Turn, error) {
	name = strings.TrimSpace(name)
	procedure = strings.TrimSpace(procedure)

	if name == "" {
		return domain.Turn{}, &domain.ValidationError{Field: "name", Msg: constant.EmptyFieldErrMsg}
	}
	if procedure == "" {
		return domain.Turn{}, &domain.ValidationError{Field: "procedure", Msg: constant.EmptyFieldErrMsg}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turn := domain.Turn{
		ID:          s.nextID,
		Name:        name,
		Procedure:   procedure,
		Priority:    domain.NormalizePriority(priority),
		SubmittedAt: s.now(),
	}
	s.nextID++

	s.pending = append(s.pending, turn)
	s.history.add(turn)

	return turn, nil
}

func (s *Store) ListPending() []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// ServeNext removes and returns the turn chosen by SelectIndex together with
// the turns still waiting. ok is false when nothing is pending.
func (s *Store) ServeNext() (turn domain.Turn, ok bool, remaining []domain.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return domain.Turn{}, false, []domain.Turn{}
	}

	idx := SelectIndex(s.pending, s.history.entries)
	turn = s.pending[idx]
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)

	return turn, true, s.snapshot()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Recent returns the submission history, oldest first.
func (s *Store) Recent() []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.recent()
}

func (s *Store) snapshot() []domain.Turn {
	out := make([]domain.Turn, len(s.pending))
	copy(out, s.pending)
	return out
}
