package broker

import (
	"context"

	"mesaYaApi/internal/modules/realtime/infrastructure"
	"mesaYaApi/internal/platform/events"
)

// LocalPublisher dispatches events straight into the handler registry. Used
// when no Kafka brokers are configured so the realtime feed still works in a
// single process.
type LocalPublisher struct {
	registry *infrastructure.HandlerRegistry
}

func NewLocalPublisher(registry *infrastructure.HandlerRegistry) *LocalPublisher {
	return &LocalPublisher{registry: registry}
}

func (p *LocalPublisher) Publish(ctx context.Context, event *events.Event) error {
	return p.registry.Dispatch(ctx, event)
}
