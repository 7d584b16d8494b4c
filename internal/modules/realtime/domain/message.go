package domain

import (
	"time"

	"mesaYaApi/internal/platform/events"
)

// Message is the envelope delivered to websocket clients.
type Message struct {
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// FromEvent projects a domain event onto the websocket wire envelope.
func FromEvent(event *events.Event) *Message {
	if event == nil {
		return nil
	}
	timestamp := event.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return &Message{
		Topic:      event.Topic(),
		Entity:     event.Entity,
		Action:     event.Action,
		ResourceID: event.ResourceID,
		Metadata:   event.Metadata,
		Data:       event.Data,
		Timestamp:  timestamp,
	}
}
