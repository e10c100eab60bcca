package ws

import (
	"encoding/json"

	"skill-match/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier publishes usecase events through a Hub.
type Notifier struct {
	hub    *Hub
	logger *zap.Logger
}

func NewNotifier(hub *Hub, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{hub: hub, logger: logger}
}

func (n *Notifier) NotifyMatch(userIDs []uuid.UUID, event usecase.MatchEvent) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("marshal event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	n.hub.Send(userIDs, b)
}
