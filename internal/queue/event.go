// Package queue defines message payloads exchanged over the message broker.
package queue

// AuditQueueName is the durable queue carrying entity change events.
const AuditQueueName = "contact.audit"

// EntityChangedEvent is published after a contact or address write commits.
// It contains enough information for downstream consumers to log or trigger
// notifications without querying the primary database.
type EntityChangedEvent struct {
	Entity     string `json:"entity"`      // "contact" or "address"
	Action     string `json:"action"`      // "created", "updated" or "deleted"
	EntityID   uint64 `json:"entity_id"`   // id of the changed record
	ContactID  uint64 `json:"contact_id"`  // owning contact (equals EntityID for contacts)
	Username   string `json:"username"`    // owner of the contact tree
	OccurredAt string `json:"occurred_at"` // RFC3339 timestamp of the change
}
