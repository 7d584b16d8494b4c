package infrastructure

import (
	"context"
	"log/slog"
	"sync"

	"mesaYaApi/internal/modules/realtime/application/port"
	"mesaYaApi/internal/platform/events"
)

// HandlerRegistry routes events to the topic handlers registered for them.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]port.TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string][]port.TopicHandler)}
}

func (r *HandlerRegistry) Register(handler port.TopicHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[handler.Topic()] = append(r.handlers[handler.Topic()], handler)
}

// Dispatch hands the event to every handler of its topic. Handler errors are
// logged and do not stop the remaining handlers.
func (r *HandlerRegistry) Dispatch(ctx context.Context, event *events.Event) error {
	if event == nil {
		return nil
	}
	topic := event.Topic()
	r.mu.RLock()
	handlers := append([]port.TopicHandler(nil), r.handlers[topic]...)
	r.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			slog.Warn("event handler error", slog.String("topic", topic), slog.Any("error", err))
		}
	}
	return nil
}
