package domain

import (
	"fmt"
	"time"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

// NormalizePriority maps untrusted input onto a Priority. Only the exact
// string "urgent" is urgent, everything else is normal.
func NormalizePriority(raw string) Priority {
	if Priority(raw) == PriorityUrgent {
		return PriorityUrgent
	}
	return PriorityNormal
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

type Turn struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Procedure   string    `json:"procedure"`
	Priority    Priority  `json:"priority"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}
