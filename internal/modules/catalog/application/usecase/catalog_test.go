package usecase

import (
	"context"
	"errors"
	"testing"

	"mesaYaApi/internal/modules/catalog/application/port"
	"mesaYaApi/internal/modules/catalog/domain"
	"mesaYaApi/internal/modules/catalog/infrastructure"
)

type capturingPromoter struct {
	userID       string
	restaurantID string
	calls        int
	err          error
}

func (p *capturingPromoter) PromoteToAdmin(_ context.Context, userID, restaurantID string) error {
	p.userID = userID
	p.restaurantID = restaurantID
	p.calls++
	return p.err
}

func seededCatalog(promoter port.OwnerPromoter) *CatalogUseCase {
	repo := infrastructure.NewMemoryRestaurantRepository(infrastructure.SeedRestaurants())
	return NewCatalogUseCase(repo, promoter, nil)
}

func TestCatalogUseCase_SearchEmptyQueryReturnsEverything(t *testing.T) {
	t.Parallel()

	uc := seededCatalog(nil)
	all, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	query := domain.SearchQuery{Text: "", Cuisine: domain.CuisineAll, Price: domain.PriceAll}
	results, err := uc.Search(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(all) {
		t.Fatalf("expected %d results, got %d", len(all), len(results))
	}
	for i := range results {
		if results[i].ID != all[i].ID {
			t.Fatalf("order changed at %d: expected %s, got %s", i, all[i].ID, results[i].ID)
		}
	}
}

func TestCatalogUseCase_SearchIntersectsFilters(t *testing.T) {
	t.Parallel()

	uc := seededCatalog(nil)
	results, err := uc.Search(context.Background(), domain.SearchQuery{Cuisine: "Italiana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected italian restaurants in the seed catalog")
	}
	for _, r := range results {
		if r.Cuisine != "Italiana" {
			t.Fatalf("unexpected cuisine %q", r.Cuisine)
		}
	}
}

func TestCatalogUseCase_ListFeatured(t *testing.T) {
	t.Parallel()

	uc := seededCatalog(nil)
	featured, err := uc.ListFeatured(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured restaurants, got %d", len(featured))
	}
	for _, r := range featured {
		if !r.Featured {
			t.Fatalf("restaurant %s is not featured", r.ID)
		}
	}
}

func TestCatalogUseCase_Create(t *testing.T) {
	t.Parallel()

	promoter := &capturingPromoter{}
	uc := seededCatalog(promoter)
	cmd := domain.CreateRestaurantCommand{
		Name:       "Parrilla del Sur",
		Cuisine:    "Argentina",
		PriceLevel: 2,
		OwnerID:    "owner-9",
	}

	created, err := uc.Create(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Rating != 0 {
		t.Fatalf("expected zero rating, got %v", created.Rating)
	}
	if promoter.calls != 1 {
		t.Fatalf("expected one promotion, got %d", promoter.calls)
	}
	if promoter.userID != "owner-9" || promoter.restaurantID != created.ID {
		t.Fatalf("unexpected promotion: user %s restaurant %s", promoter.userID, promoter.restaurantID)
	}

	stored, err := uc.GetByOwner(context.Background(), "owner-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, stored.ID)
	}
}

func TestCatalogUseCase_CreateUndoneWhenPromotionFails(t *testing.T) {
	t.Parallel()

	promoteErr := errors.New("identity store unavailable")
	uc := seededCatalog(&capturingPromoter{err: promoteErr})
	before, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = uc.Create(context.Background(), domain.CreateRestaurantCommand{
		Name:       "Parrilla del Sur",
		Cuisine:    "Argentina",
		PriceLevel: 2,
		OwnerID:    "owner-9",
	})
	if !errors.Is(err, promoteErr) {
		t.Fatalf("expected promotion error, got %v", err)
	}

	after, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("expected creation rolled back, catalog grew from %d to %d", len(before), len(after))
	}
	if _, err := uc.GetByOwner(context.Background(), "owner-9"); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected no restaurant for owner-9, got %v", err)
	}
}

func TestCatalogUseCase_CreateRejectsSecondRestaurant(t *testing.T) {
	t.Parallel()

	uc := seededCatalog(&capturingPromoter{})
	// Owner "1" already administers the first seeded restaurant.
	_, err := uc.Create(context.Background(), domain.CreateRestaurantCommand{
		Name:       "Second Venue",
		PriceLevel: 2,
		OwnerID:    "1",
	})
	if !errors.Is(err, ErrOwnerHasRestaurant) {
		t.Fatalf("expected ErrOwnerHasRestaurant, got %v", err)
	}
}

func TestCatalogUseCase_CreateValidation(t *testing.T) {
	t.Parallel()

	uc := seededCatalog(nil)
	_, err := uc.Create(context.Background(), domain.CreateRestaurantCommand{Name: " ", PriceLevel: 2})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCatalogUseCase_Update(t *testing.T) {
	t.Parallel()

	uc := seededCatalog(nil)
	name := "Bella Italia Ristorante"
	updated, err := uc.Update(context.Background(), "1", domain.UpdateRestaurantCommand{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected %q, got %q", name, updated.Name)
	}

	stored, err := uc.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Name != name {
		t.Fatalf("update not persisted: %q", stored.Name)
	}
}

func TestCatalogUseCase_UpdateUnknownID(t *testing.T) {
	t.Parallel()

	uc := seededCatalog(nil)
	name := "Ghost"
	_, err := uc.Update(context.Background(), "999", domain.UpdateRestaurantCommand{Name: &name})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
