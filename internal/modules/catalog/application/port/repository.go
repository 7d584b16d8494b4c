package port

import (
	"context"
	"errors"

	"mesaYaApi/internal/modules/catalog/domain"
)

// ErrNotFound signals that the referenced restaurant does not exist.
var ErrNotFound = errors.New("restaurant not found")

// RestaurantRepository is the injected catalog store. Implementations must
// preserve insertion order on List.
type RestaurantRepository interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	ByID(ctx context.Context, id string) (*domain.Restaurant, error)
	ByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error)
	Save(ctx context.Context, restaurant *domain.Restaurant) error
	Update(ctx context.Context, id string, apply func(*domain.Restaurant)) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

// OwnerPromoter attaches the created restaurant to its owner's identity.
// Implemented by the session usecase.
type OwnerPromoter interface {
	PromoteToAdmin(ctx context.Context, userID, restaurantID string) error
}
