package port

import (
	"context"
	"errors"

	"mesaYaApi/internal/modules/realtime/domain"
	"mesaYaApi/internal/platform/events"
)

// ErrSnapshotNotFound signals that the requested scope has no snapshot.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrSnapshotUnsupported signals an entity without a snapshot source.
var ErrSnapshotUnsupported = errors.New("snapshot unsupported for entity")

// Broadcaster fans a message out to the subscribed websocket clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// SnapshotProvider supplies the initial state sent to a client right after
// connecting to an entity scope.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, entity, restaurantID string) (any, error)
}

// TopicHandler reacts to one routed event topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, event *events.Event) error
}
