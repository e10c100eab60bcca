package usecase

import (
	"time"

	"github.com/google/uuid"
)

const EventMatchCreated = "match_created"

type MatchEvent struct {
	Type       string    `json:"type"`
	MatchID    uuid.UUID `json:"match_id"`
	StudentID  uuid.UUID `json:"student_id"`
	EmployerID uuid.UUID `json:"employer_id"`
	MatchedAt  time.Time `json:"matched_at"`
}

// Notifier delivers events to connected users. Delivery is best effort.
type Notifier interface {
	NotifyMatch(userIDs []uuid.UUID, event MatchEvent)
}
