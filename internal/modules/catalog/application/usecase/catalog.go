package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mesaYaApi/internal/modules/catalog/application/port"
	"mesaYaApi/internal/modules/catalog/domain"
	"mesaYaApi/internal/platform/events"
	"mesaYaApi/internal/shared/metrics"
)

// ErrOwnerHasRestaurant rejects a second restaurant for the same identity.
var ErrOwnerHasRestaurant = errors.New("owner already administers a restaurant")

const entityName = "restaurants"

// CatalogUseCase answers discovery queries and owns restaurant mutations.
type CatalogUseCase struct {
	repo      port.RestaurantRepository
	promoter  port.OwnerPromoter
	publisher events.Publisher
}

func NewCatalogUseCase(repo port.RestaurantRepository, promoter port.OwnerPromoter, publisher events.Publisher) *CatalogUseCase {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CatalogUseCase{repo: repo, promoter: promoter, publisher: publisher}
}

// List returns the whole catalog in insertion order.
func (uc *CatalogUseCase) List(ctx context.Context) ([]domain.Restaurant, error) {
	return uc.repo.List(ctx)
}

// ListFeatured returns the featured subset, order preserved.
func (uc *CatalogUseCase) ListFeatured(ctx context.Context) ([]domain.Restaurant, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]domain.Restaurant, 0, len(all))
	for _, r := range all {
		if r.Featured {
			featured = append(featured, r)
		}
	}
	return featured, nil
}

func (uc *CatalogUseCase) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return uc.repo.ByID(ctx, id)
}

func (uc *CatalogUseCase) GetByOwner(ctx context.Context, ownerID string) (*domain.Restaurant, error) {
	return uc.repo.ByOwner(ctx, ownerID)
}

// Search intersects the free-text, cuisine and price filters. Sentinel values
// recover the unfiltered result for their dimension.
func (uc *CatalogUseCase) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Restaurant, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]domain.Restaurant, 0, len(all))
	for _, r := range all {
		if query.Matches(&r) {
			results = append(results, r)
		}
	}
	return results, nil
}

// Create stores a new restaurant with a fresh id and zero rating, then
// promotes the owner to admin of exactly that restaurant.
func (uc *CatalogUseCase) Create(ctx context.Context, cmd domain.CreateRestaurantCommand) (*domain.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if cmd.OwnerID != "" {
		if _, err := uc.repo.ByOwner(ctx, cmd.OwnerID); err == nil {
			return nil, ErrOwnerHasRestaurant
		} else if !errors.Is(err, port.ErrNotFound) {
			return nil, err
		}
	}

	restaurant := &domain.Restaurant{
		ID:           uuid.NewString(),
		Name:         cmd.Name,
		Description:  cmd.Description,
		Image:        cmd.Image,
		Cuisine:      cmd.Cuisine,
		Rating:       0,
		PriceLevel:   cmd.PriceLevel,
		Address:      cmd.Address,
		Phone:        cmd.Phone,
		OpeningHours: cmd.OpeningHours,
		Featured:     cmd.Featured,
		OwnerID:      cmd.OwnerID,
	}
	if err := uc.repo.Save(ctx, restaurant); err != nil {
		return nil, err
	}

	// Creation and promotion land together or not at all: a restaurant must
	// never exist without its owner holding the admin role.
	if cmd.OwnerID != "" && uc.promoter != nil {
		if err := uc.promoter.PromoteToAdmin(ctx, cmd.OwnerID, restaurant.ID); err != nil {
			slog.Warn("owner promotion failed, undoing creation", slog.String("ownerId", cmd.OwnerID), slog.String("restaurantId", restaurant.ID), slog.Any("error", err))
			if delErr := uc.repo.Delete(ctx, restaurant.ID); delErr != nil {
				slog.Error("creation rollback failed", slog.String("restaurantId", restaurant.ID), slog.Any("error", delErr))
			}
			return nil, fmt.Errorf("promote owner %s: %w", cmd.OwnerID, err)
		}
	}
	metrics.IncRestaurantCreated()

	uc.publish(ctx, "created", restaurant)
	return restaurant, nil
}

// Update merges the set fields into the stored record.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, cmd domain.UpdateRestaurantCommand) (*domain.Restaurant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	restaurant, err := uc.repo.Update(ctx, id, cmd.Apply)
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, "updated", restaurant)
	return restaurant, nil
}

func (uc *CatalogUseCase) publish(ctx context.Context, action string, restaurant *domain.Restaurant) {
	event := &events.Event{
		Entity:     entityName,
		Action:     action,
		ResourceID: restaurant.ID,
		Metadata:   map[string]string{events.MetaRestaurantID: restaurant.ID},
		Data:       restaurant,
		Timestamp:  time.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.Warn("catalog event publish failed", slog.String("action", action), slog.String("restaurantId", restaurant.ID), slog.Any("error", err))
	}
}
