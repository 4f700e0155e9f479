package services

import (
	"encoding/json"
	"log"
	"time"
)

// Actions carried by change events.
const (
	ActionCreated  = "created"
	ActionReplaced = "replaced"
	ActionDeleted  = "deleted"
)

// EventPublisher delivers change events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ResourceEvent is published after a mutation commits.
type ResourceEvent struct {
	Resource   string      `json:"resource"`
	Action     string      `json:"action"`
	ID         int         `json:"id"`
	Data       interface{} `json:"data,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// RoutingKey returns "<resource>.<action>", e.g. "order.created".
func (e ResourceEvent) RoutingKey() string {
	return e.Resource + "." + e.Action
}

// publishEvent never fails the caller; the mutation has already committed.
func publishEvent(publisher EventPublisher, event ResourceEvent) {
	if publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event to JSON: %v", event.RoutingKey(), err)
		return
	}
	if err := publisher.Publish(event.RoutingKey(), body); err != nil {
		log.Printf("Warning: Failed to publish %s event for %s %d: %v", event.Action, event.Resource, event.ID, err)
		return
	}
	log.Printf("Published %s event for %s %d", event.Action, event.Resource, event.ID)
}
