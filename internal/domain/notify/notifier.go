package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Notifier pushes routine events to connected clients. An offline user
// is not an error; delivery is best-effort by contract.
type Notifier struct {
	hub *Hub
	log *zap.Logger
}

func NewNotifier(hub *Hub, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{hub: hub, log: log}
}

func (n *Notifier) Notify(ctx context.Context, userID int64, event, message string) error {
	delivered := n.hub.SendToUser(userID, Event{
		Event:   event,
		Message: message,
		At:      time.Now(),
	})
	if !delivered {
		n.log.Debug("notification not delivered, user offline",
			zap.Int64("user_id", userID),
			zap.String("event", event))
	}
	return nil
}
