package domain

import "time"

type EventType string

const (
	EventTurnSubmitted EventType = "turn.submitted"
	EventTurnServed    EventType = "turn.served"
)

// TurnEvent is published on every submit and serve. PendingLen is only set
// on served events, taken from the same snapshot that removed the turn.
type TurnEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Turn       Turn      `json:"turn"`
	PendingLen *int      `json:"pending_len,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaMessage struct {
	Key     string
	Payload []byte
	// Attempts counts failed writes so far
	Attempts int
}
