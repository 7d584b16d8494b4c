package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mesaYaApi/internal/modules/reservations/application/port"
	"mesaYaApi/internal/modules/reservations/domain"
	"mesaYaApi/internal/platform/events"
	"mesaYaApi/internal/shared/metrics"
)

const entityName = "reservations"

// WorkflowUseCase owns reservation records and their status state machine.
// Transition rules live here and in the domain table, never in a view layer.
type WorkflowUseCase struct {
	repo      port.ReservationRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewWorkflowUseCase(repo port.ReservationRepository, publisher events.Publisher) *WorkflowUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &WorkflowUseCase{repo: repo, publisher: publisher, now: time.Now}
}

// Create validates the request and stores a new reservation in pending state.
func (uc *WorkflowUseCase) Create(ctx context.Context, cmd domain.CreateReservationCommand) (*domain.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	startsAt, err := cmd.StartsAt()
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:              uuid.NewString(),
		RestaurantID:    cmd.RestaurantID,
		RestaurantName:  cmd.RestaurantName,
		RestaurantImage: cmd.RestaurantImage,
		CustomerID:      cmd.CustomerID,
		Date:            cmd.Date,
		Time:            cmd.Time,
		StartsAt:        startsAt,
		PartySize:       cmd.PartySize,
		Status:          domain.StatusPending,
		Notes:           cmd.Notes,
		CustomerName:    cmd.CustomerName,
		CustomerEmail:   cmd.CustomerEmail,
		CustomerPhone:   cmd.CustomerPhone,
		Version:         1,
	}
	if err := uc.repo.Save(ctx, reservation); err != nil {
		return nil, err
	}
	metrics.IncReservationCreated()
	slog.Info("reservation created", slog.String("reservationId", reservation.ID), slog.String("restaurantId", reservation.RestaurantID), slog.Int("partySize", reservation.PartySize))

	uc.publish(ctx, "created", reservation)
	return reservation, nil
}

func (uc *WorkflowUseCase) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return uc.repo.ByID(ctx, id)
}

// ListForCustomer returns the reservations belonging to the calling identity.
func (uc *WorkflowUseCase) ListForCustomer(ctx context.Context, customerID string) ([]domain.Reservation, error) {
	return uc.repo.ByCustomer(ctx, customerID)
}

// ListForRestaurant returns every reservation filed against the restaurant.
func (uc *WorkflowUseCase) ListForRestaurant(ctx context.Context, restaurantID string) ([]domain.Reservation, error) {
	return uc.repo.ByRestaurant(ctx, restaurantID)
}

// Cancel transitions the reservation to canceled. Canceling an already
// canceled reservation is rejected as an invalid transition.
func (uc *WorkflowUseCase) Cancel(ctx context.Context, id string, expectedVersion int) (*domain.Reservation, error) {
	return uc.SetStatus(ctx, id, domain.StatusCanceled, expectedVersion)
}

// SetStatus applies a guarded transition. expectedVersion 0 skips the
// optimistic concurrency check; a non-zero stale version is rejected.
func (uc *WorkflowUseCase) SetStatus(ctx context.Context, id string, status domain.Status, expectedVersion int) (*domain.Reservation, error) {
	reservation, err := uc.repo.Mutate(ctx, id, func(r *domain.Reservation) error {
		if expectedVersion != 0 && r.Version != expectedVersion {
			return fmt.Errorf("%w: have %d, expected %d", port.ErrVersionConflict, r.Version, expectedVersion)
		}
		if err := domain.Transition(r.Status, status); err != nil {
			return err
		}
		r.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.IncReservationTransition(string(status))
	slog.Info("reservation status changed", slog.String("reservationId", reservation.ID), slog.String("restaurantId", reservation.RestaurantID), slog.String("status", string(status)), slog.Int("version", reservation.Version))

	uc.publish(ctx, "updated", reservation)
	return reservation, nil
}

// Stats summarizes the restaurant's reservations for the admin dashboard.
// "Today" compares against the canonical start instant in UTC.
func (uc *WorkflowUseCase) Stats(ctx context.Context, restaurantID string) (*domain.Stats, error) {
	list, err := uc.repo.ByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	today := uc.now().UTC().Truncate(24 * time.Hour)
	stats := &domain.Stats{Total: len(list)}
	for _, r := range list {
		switch r.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
			if r.StartsAt.Truncate(24 * time.Hour).Equal(today) {
				stats.ConfirmedToday++
			}
		case domain.StatusCanceled:
			stats.Canceled++
		}
	}
	return stats, nil
}

func (uc *WorkflowUseCase) publish(ctx context.Context, action string, reservation *domain.Reservation) {
	metadata := map[string]string{events.MetaRestaurantID: reservation.RestaurantID}
	if reservation.CustomerID != "" {
		metadata[events.MetaUserID] = reservation.CustomerID
	}
	event := &events.Event{
		Entity:     entityName,
		Action:     action,
		ResourceID: reservation.ID,
		Metadata:   metadata,
		Data:       reservation,
		Timestamp:  time.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.Warn("reservation event publish failed", slog.String("action", action), slog.String("reservationId", reservation.ID), slog.Any("error", err))
	}
}
