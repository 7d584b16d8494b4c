package infrastructure

import (
	"context"
	"sync"

	"mesaYaApi/internal/modules/reservations/application/port"
	"mesaYaApi/internal/modules/reservations/domain"
)

// MemoryReservationRepository keeps reservations in an ordered in-process
// slice guarded by a single lock, so a rejected transition never leaves a
// partial write behind.
type MemoryReservationRepository struct {
	mu      sync.RWMutex
	items   []domain.Reservation
	indexes map[string]int
}

func NewMemoryReservationRepository(seed []domain.Reservation) *MemoryReservationRepository {
	repo := &MemoryReservationRepository{
		items:   make([]domain.Reservation, 0, len(seed)),
		indexes: make(map[string]int, len(seed)),
	}
	for _, r := range seed {
		if r.Version == 0 {
			r.Version = 1
		}
		repo.indexes[r.ID] = len(repo.items)
		repo.items = append(repo.items, r)
	}
	return repo
}

func (repo *MemoryReservationRepository) ByID(_ context.Context, id string) (*domain.Reservation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	idx, ok := repo.indexes[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	reservation := repo.items[idx]
	return &reservation, nil
}

func (repo *MemoryReservationRepository) ByCustomer(_ context.Context, customerID string) ([]domain.Reservation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]domain.Reservation, 0)
	for _, r := range repo.items {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (repo *MemoryReservationRepository) ByRestaurant(_ context.Context, restaurantID string) ([]domain.Reservation, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]domain.Reservation, 0)
	for _, r := range repo.items {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (repo *MemoryReservationRepository) Save(_ context.Context, reservation *domain.Reservation) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if idx, ok := repo.indexes[reservation.ID]; ok {
		repo.items[idx] = *reservation
		return nil
	}
	repo.indexes[reservation.ID] = len(repo.items)
	repo.items = append(repo.items, *reservation)
	return nil
}

func (repo *MemoryReservationRepository) Mutate(_ context.Context, id string, apply func(*domain.Reservation) error) (*domain.Reservation, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	idx, ok := repo.indexes[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	candidate := repo.items[idx]
	if err := apply(&candidate); err != nil {
		return nil, err
	}
	candidate.Version++
	repo.items[idx] = candidate
	return &candidate, nil
}

func (repo *MemoryReservationRepository) Count(_ context.Context) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.items), nil
}
