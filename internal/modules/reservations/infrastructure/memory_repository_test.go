package infrastructure

import (
	"context"
	"errors"
	"testing"

	"mesaYaApi/internal/modules/reservations/application/port"
	"mesaYaApi/internal/modules/reservations/domain"
)

func TestSeedReservations(t *testing.T) {
	t.Parallel()

	seed := SeedReservations()
	if len(seed) != 5 {
		t.Fatalf("expected 5 seeded reservations, got %d", len(seed))
	}
	for _, r := range seed {
		if r.CustomerID != "1" {
			t.Fatalf("reservation %s does not belong to the demo identity", r.ID)
		}
		if _, ok := domain.ParseStatus(string(r.Status)); !ok {
			t.Fatalf("reservation %s has unknown status %q", r.ID, r.Status)
		}
		if r.StartsAt.IsZero() {
			t.Fatalf("reservation %s has no start instant", r.ID)
		}
	}
}

func TestMemoryReservationRepository_SeedVersionDefaultsToOne(t *testing.T) {
	t.Parallel()

	repo := NewMemoryReservationRepository(SeedReservations())
	r, err := repo.ByID(context.Background(), "101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Version != 1 {
		t.Fatalf("expected version 1, got %d", r.Version)
	}
}

func TestMemoryReservationRepository_MutateBumpsVersion(t *testing.T) {
	t.Parallel()

	repo := NewMemoryReservationRepository([]domain.Reservation{
		{ID: "101", RestaurantID: "1", Status: domain.StatusPending},
	})
	ctx := context.Background()

	mutated, err := repo.Mutate(ctx, "101", func(r *domain.Reservation) error {
		r.Status = domain.StatusConfirmed
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mutated.Version != 2 {
		t.Fatalf("expected version 2, got %d", mutated.Version)
	}
	if mutated.Status != domain.StatusConfirmed {
		t.Fatalf("expected confirmed, got %q", mutated.Status)
	}
}

func TestMemoryReservationRepository_MutateRollsBackOnError(t *testing.T) {
	t.Parallel()

	repo := NewMemoryReservationRepository([]domain.Reservation{
		{ID: "101", RestaurantID: "1", Status: domain.StatusPending},
	})
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := repo.Mutate(ctx, "101", func(r *domain.Reservation) error {
		r.Status = domain.StatusCanceled
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected apply error, got %v", err)
	}

	stored, err := repo.ByID(ctx, "101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != domain.StatusPending {
		t.Fatalf("failed mutation left a partial write: %q", stored.Status)
	}
	if stored.Version != 1 {
		t.Fatalf("failed mutation bumped the version: %d", stored.Version)
	}
}

func TestMemoryReservationRepository_ByCustomerAndRestaurant(t *testing.T) {
	t.Parallel()

	repo := NewMemoryReservationRepository([]domain.Reservation{
		{ID: "101", RestaurantID: "1", CustomerID: "a", Status: domain.StatusPending},
		{ID: "102", RestaurantID: "1", CustomerID: "b", Status: domain.StatusPending},
		{ID: "103", RestaurantID: "2", CustomerID: "a", Status: domain.StatusPending},
	})
	ctx := context.Background()

	byCustomer, err := repo.ByCustomer(ctx, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byCustomer) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(byCustomer))
	}

	byRestaurant, err := repo.ByRestaurant(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byRestaurant) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(byRestaurant))
	}

	if _, err := repo.ByID(ctx, "999"); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
