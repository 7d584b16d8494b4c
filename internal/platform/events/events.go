package events

import (
	"context"
	"strings"
	"time"
)

// Metadata keys recognized by the realtime fan-out for targeted delivery.
const (
	MetaUserID       = "userId"
	MetaRestaurantID = "restaurantId"
)

// Event is a domain change notification emitted by the catalog and
// reservation usecases and consumed by the realtime feed.
type Event struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Topic returns the entity.action routing key for the event.
func (e *Event) Topic() string {
	return strings.TrimSpace(e.Entity) + "." + strings.TrimSpace(e.Action)
}

// Publisher delivers events to whatever transport is wired in (Kafka or the
// in-process dispatcher).
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
}

// NopPublisher drops every event. Used in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Event) error { return nil }
