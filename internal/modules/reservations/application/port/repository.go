package port

import (
	"context"
	"errors"

	"mesaYaApi/internal/modules/reservations/domain"
)

var (
	// ErrNotFound signals that the referenced reservation does not exist.
	ErrNotFound = errors.New("reservation not found")
	// ErrVersionConflict rejects a mutation based on a stale version.
	ErrVersionConflict = errors.New("reservation version conflict")
)

// ReservationRepository is the injected reservation store.
type ReservationRepository interface {
	ByID(ctx context.Context, id string) (*domain.Reservation, error)
	ByCustomer(ctx context.Context, customerID string) ([]domain.Reservation, error)
	ByRestaurant(ctx context.Context, restaurantID string) ([]domain.Reservation, error)
	Save(ctx context.Context, reservation *domain.Reservation) error
	// Mutate loads the record, applies the mutation under the store lock and
	// bumps the version. The apply func returning an error aborts with no
	// change written.
	Mutate(ctx context.Context, id string, apply func(*domain.Reservation) error) (*domain.Reservation, error)
	Count(ctx context.Context) (int, error)
}
