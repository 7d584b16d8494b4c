package infrastructure

import (
	"context"
	"sync"

	"mesaYaApi/internal/modules/catalog/application/port"
	"mesaYaApi/internal/modules/catalog/domain"
)

// MemoryRestaurantRepository keeps the catalog in an ordered in-process
// slice. Every read hands out copies so callers never share mutable records.
type MemoryRestaurantRepository struct {
	mu      sync.RWMutex
	items   []domain.Restaurant
	indexes map[string]int
}

func NewMemoryRestaurantRepository(seed []domain.Restaurant) *MemoryRestaurantRepository {
	repo := &MemoryRestaurantRepository{
		items:   make([]domain.Restaurant, 0, len(seed)),
		indexes: make(map[string]int, len(seed)),
	}
	for _, r := range seed {
		repo.indexes[r.ID] = len(repo.items)
		repo.items = append(repo.items, r)
	}
	return repo
}

func (repo *MemoryRestaurantRepository) List(_ context.Context) ([]domain.Restaurant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]domain.Restaurant, len(repo.items))
	copy(out, repo.items)
	return out, nil
}

func (repo *MemoryRestaurantRepository) ByID(_ context.Context, id string) (*domain.Restaurant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	idx, ok := repo.indexes[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	restaurant := repo.items[idx]
	return &restaurant, nil
}

func (repo *MemoryRestaurantRepository) ByOwner(_ context.Context, ownerID string) (*domain.Restaurant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if ownerID == "" {
		return nil, port.ErrNotFound
	}
	for _, r := range repo.items {
		if r.OwnerID == ownerID {
			restaurant := r
			return &restaurant, nil
		}
	}
	return nil, port.ErrNotFound
}

func (repo *MemoryRestaurantRepository) Save(_ context.Context, restaurant *domain.Restaurant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if idx, ok := repo.indexes[restaurant.ID]; ok {
		repo.items[idx] = *restaurant
		return nil
	}
	repo.indexes[restaurant.ID] = len(repo.items)
	repo.items = append(repo.items, *restaurant)
	return nil
}

func (repo *MemoryRestaurantRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	idx, ok := repo.indexes[id]
	if !ok {
		return port.ErrNotFound
	}
	repo.items = append(repo.items[:idx], repo.items[idx+1:]...)
	delete(repo.indexes, id)
	for i := idx; i < len(repo.items); i++ {
		repo.indexes[repo.items[i].ID] = i
	}
	return nil
}

// Update applies the mutation under the write lock so partial merges never
// interleave.
func (repo *MemoryRestaurantRepository) Update(_ context.Context, id string, apply func(*domain.Restaurant)) (*domain.Restaurant, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	idx, ok := repo.indexes[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	apply(&repo.items[idx])
	restaurant := repo.items[idx]
	return &restaurant, nil
}
