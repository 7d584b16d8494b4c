package domain

import (
	"strings"
	"time"
)

const (
	SystemEntity = "system"

	ActionConnected = "connected"
	ActionSnapshot  = "snapshot"
	ActionCreated   = "created"
	ActionUpdated   = "updated"

	TopicSystemConnected = SystemEntity + "." + ActionConnected
)

// EntityTopic returns the canonical entity.action topic.
func EntityTopic(entity, action string) string {
	return strings.TrimSpace(entity) + "." + strings.TrimSpace(action)
}

// SnapshotTopic returns the snapshot topic for the given entity.
func SnapshotTopic(entity string) string {
	return EntityTopic(entity, ActionSnapshot)
}

// BuildConnectedMessage composes the handshake message sent right after the
// upgrade so clients learn their session and subscriptions.
func BuildConnectedMessage(userID, sessionID string, topics []string, at time.Time) *Message {
	return &Message{
		Topic:  TopicSystemConnected,
		Entity: SystemEntity,
		Action: ActionConnected,
		Metadata: map[string]string{
			"userId":    userID,
			"sessionId": sessionID,
		},
		Data:      map[string]any{"topics": topics},
		Timestamp: at.UTC(),
	}
}

// BuildSnapshotMessage composes the initial state message for a restaurant
// scope.
func BuildSnapshotMessage(entity, restaurantID string, payload any, at time.Time) *Message {
	return &Message{
		Topic:      SnapshotTopic(entity),
		Entity:     strings.TrimSpace(entity),
		Action:     ActionSnapshot,
		ResourceID: strings.TrimSpace(restaurantID),
		Metadata:   map[string]string{"restaurantId": strings.TrimSpace(restaurantID)},
		Data:       payload,
		Timestamp:  at.UTC(),
	}
}
