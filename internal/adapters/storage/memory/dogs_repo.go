package memory

import (
	"context"
	"sort"
	"sync"

	"poppy-paws/internal/domain/dogs"
)

type dogsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]dogs.Dog
	nextID int64
}

func NewDogsRepo() dogs.Repository {
	return &dogsRepo{
		byID:   make(map[int64]dogs.Dog),
		nextID: 1,
	}
}

func (r *dogsRepo) ListAll(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}

	// Mismo orden que Postgres: id ascendente.
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *dogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (r *dogsRepo) Create(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextID
	r.nextID++
	r.byID[d.ID] = d

	return d, nil
}

func (r *dogsRepo) Update(ctx context.Context, d dogs.Dog) (dogs.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[d.ID]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}

	// created_at es inmutable; el reemplazo cubre el resto.
	d.CreatedAt = current.CreatedAt
	r.byID[d.ID] = d

	return d, nil
}

func (r *dogsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return dogs.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
