package handler

import (
	"context"
	"time"

	"github.com/iliyamo/contact-management/internal/queue"
	queue_publisher "github.com/iliyamo/contact-management/internal/service"
)

// publishAudit sends an entity change event to the broker without holding
// up the request. The publisher logs its own failures; a broker outage must
// never fail the write that already committed.
func publishAudit(enabled bool, entity, action string, entityID, contactID uint64, username string) {
	if !enabled {
		return
	}
	ev := queue.EntityChangedEvent{
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		ContactID:  contactID,
		Username:   username,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishEntityChanged(ctx, ev)
	}()
}
