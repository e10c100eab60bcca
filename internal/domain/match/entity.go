package match

import (
	"time"

	"github.com/google/uuid"
)

type Decision string

const (
	DecisionLike Decision = "like"
	DecisionPass Decision = "pass"
)

func (d Decision) Valid() bool {
	return d == DecisionLike || d == DecisionPass
}

// Swipe is one user's decision about another. The latest decision per pair wins.
type Swipe struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	TargetID  uuid.UUID
	Decision  Decision
	CreatedAt time.Time
}

// Match links a student and an employer who liked each other.
type Match struct {
	ID         uuid.UUID
	StudentID  uuid.UUID
	EmployerID uuid.UUID
	MatchedAt  time.Time
}
