package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"mesaYaApi/internal/modules/realtime/application/port"
	"mesaYaApi/internal/modules/realtime/application/usecase"
	"mesaYaApi/internal/modules/realtime/domain"
	"mesaYaApi/internal/modules/realtime/infrastructure"
	"mesaYaApi/internal/shared/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var notificationCounter atomic.Uint64

// NewWebsocketHandler exposes /ws/:entity/:restaurant/:token. The token is
// also accepted via the token query parameter or the Authorization header.
func NewWebsocketHandler(
	hub *infrastructure.Hub,
	connectUC *usecase.ConnectUseCase,
	defaultEntity string,
	allowedActions []string,
	sendBuffer int,
) func(echo.Context) error {
	defaultEntity = strings.ToLower(strings.TrimSpace(defaultEntity))
	if defaultEntity == "" {
		defaultEntity = "reservations"
	}
	if len(allowedActions) == 0 {
		allowedActions = []string{domain.ActionCreated, domain.ActionUpdated}
	}

	return func(c echo.Context) error {
		entity := strings.ToLower(strings.TrimSpace(c.Param("entity")))
		if entity == "" {
			entity = defaultEntity
		}
		restaurantID := strings.TrimSpace(c.Param("restaurant"))
		token := strings.TrimSpace(c.Param("token"))
		if token == "" {
			token = auth.ExtractToken(c.Request(), "token")
		}

		if restaurantID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing restaurant")
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
		defer cancel()

		output, err := connectUC.Execute(ctx, usecase.ConnectInput{Token: token, Entity: entity, RestaurantID: restaurantID})
		if err != nil {
			status := http.StatusInternalServerError
			message := "unable to connect"
			switch {
			case errors.Is(err, usecase.ErrMissingToken), errors.Is(err, auth.ErrMissingToken):
				status = http.StatusBadRequest
				message = "missing token"
			case errors.Is(err, usecase.ErrMissingRestaurant):
				status = http.StatusBadRequest
				message = "missing restaurant"
			case errors.Is(err, auth.ErrInvalidToken):
				status = http.StatusUnauthorized
				message = "invalid token"
			case errors.Is(err, port.ErrSnapshotNotFound):
				status = http.StatusNotFound
				message = "restaurant not found"
			case errors.Is(err, context.DeadlineExceeded):
				status = http.StatusGatewayTimeout
				message = "snapshot timeout"
			}
			slog.Warn("ws connect rejected", slog.String("entity", entity), slog.String("restaurantId", restaurantID), slog.Int("status", status), slog.Any("error", err))
			return echo.NewHTTPError(status, message)
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws upgrade failed", slog.String("entity", entity), slog.String("restaurantId", restaurantID), slog.Any("error", err))
			return err
		}

		claims := output.Claims
		client := infrastructure.NewClient(hub, conn, claims.RegisteredClaims.Subject, claims.SessionID, restaurantID, entity, sendBuffer)

		topics := make([]string, 0, len(allowedActions))
		for _, action := range allowedActions {
			topics = append(topics, domain.EntityTopic(entity, action))
		}
		hub.AttachClient(client, topics)

		go client.WritePump()
		go client.ReadPump()

		now := time.Now().UTC()
		client.SendMessage(domain.BuildConnectedMessage(claims.RegisteredClaims.Subject, claims.SessionID, topics, now))
		if output.Snapshot != nil {
			client.SendMessage(domain.BuildSnapshotMessage(entity, restaurantID, output.Snapshot, now))
		}
		return nil
	}
}

// NewNotificationsWebsocketHandler exposes /ws/notifications: an
// authenticated global stream of every broadcasted message.
func NewNotificationsWebsocketHandler(hub *infrastructure.Hub, validator auth.TokenValidator) func(echo.Context) error {
	return func(c echo.Context) error {
		token := auth.ExtractToken(c.Request(), "token")
		claims, err := validator.Validate(token)
		if err != nil {
			slog.Warn("notifications ws auth failed", slog.String("ip", c.RealIP()), slog.Any("error", err))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("notifications ws upgrade failed", slog.String("ip", c.RealIP()), slog.Any("error", err))
			return err
		}

		sessionID := fmt.Sprintf("notif-%d", notificationCounter.Add(1))
		client := infrastructure.NewClient(hub, conn, claims.RegisteredClaims.Subject, sessionID, "", "notifications", 8)
		hub.AttachClientToAll(client)

		go client.WritePump()
		go client.ReadPump()

		client.SendMessage(domain.BuildConnectedMessage(claims.RegisteredClaims.Subject, sessionID, []string{"*"}, time.Now().UTC()))
		return nil
	}
}
