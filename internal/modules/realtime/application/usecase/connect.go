package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"mesaYaApi/internal/modules/realtime/application/port"
	"mesaYaApi/internal/shared/auth"
)

var (
	ErrMissingToken      = errors.New("missing token")
	ErrMissingRestaurant = errors.New("missing restaurant id")
)

type ConnectInput struct {
	Token        string
	Entity       string
	RestaurantID string
}

type ConnectOutput struct {
	Claims   *auth.Claims
	Snapshot any
}

// ConnectUseCase validates the caller's token and assembles the initial
// snapshot for the requested restaurant scope.
type ConnectUseCase struct {
	validator auth.TokenValidator
	snapshots port.SnapshotProvider
}

func NewConnectUseCase(validator auth.TokenValidator, snapshots port.SnapshotProvider) *ConnectUseCase {
	return &ConnectUseCase{validator: validator, snapshots: snapshots}
}

func (uc *ConnectUseCase) Execute(ctx context.Context, input ConnectInput) (*ConnectOutput, error) {
	if strings.TrimSpace(input.Token) == "" {
		return nil, ErrMissingToken
	}
	if strings.TrimSpace(input.RestaurantID) == "" {
		return nil, ErrMissingRestaurant
	}

	claims, err := uc.validator.Validate(input.Token)
	if err != nil {
		slog.Warn("realtime connect token rejected", slog.String("restaurantId", input.RestaurantID), slog.Any("error", err))
		return nil, err
	}

	output := &ConnectOutput{Claims: claims}
	if uc.snapshots != nil {
		snapshot, err := uc.snapshots.Snapshot(ctx, input.Entity, input.RestaurantID)
		switch {
		case errors.Is(err, port.ErrSnapshotUnsupported):
			// Entity has no snapshot source; the client still gets the live stream.
		case err != nil:
			return nil, err
		default:
			output.Snapshot = snapshot
		}
	}

	slog.Info("realtime connect accepted", slog.String("entity", input.Entity), slog.String("restaurantId", input.RestaurantID), slog.String("userId", claims.RegisteredClaims.Subject))
	return output, nil
}
