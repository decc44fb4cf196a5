package queue

import "turnos/queue-service/internal/domain"

// SelectIndex picks which pending turn is served next.
//
// Urgent turns only jump the line while an urgent submission is among the
// recent history. Otherwise the oldest pending turn is served, even if it
// is not urgent and urgent turns are waiting behind it. pending must not
// be empty.
func SelectIndex(pending, recent []domain.Turn) int {
	if !hasUrgent(recent) {
		return 0
	}

	for i, t := range pending {
		if t.Priority.IsUrgent() {
			return i
		}
	}
	return 0
}

func hasUrgent(turns []domain.Turn) bool {
	for _, t := range turns {
		if t.Priority.IsUrgent() {
			return true
		}
	}
	return false
}
