package handler

import (
	"context"

	"mesaYaApi/internal/modules/realtime/application/usecase"
	"mesaYaApi/internal/modules/realtime/domain"
	"mesaYaApi/internal/platform/events"
)

// EntityStreamHandler forwards one event topic to the websocket hub.
type EntityStreamHandler struct {
	topic     string
	broadcast *usecase.BroadcastUseCase
}

func NewEntityStreamHandler(topic string, broadcast *usecase.BroadcastUseCase) *EntityStreamHandler {
	return &EntityStreamHandler{topic: topic, broadcast: broadcast}
}

func (h *EntityStreamHandler) Topic() string {
	return h.topic
}

func (h *EntityStreamHandler) Handle(ctx context.Context, event *events.Event) error {
	msg := domain.FromEvent(event)
	if msg == nil {
		return nil
	}
	h.broadcast.Execute(ctx, msg)
	return nil
}
