package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"
)

var ErrEstimateExists = errors.New("estimate already exists")

// EstimateMemoryRepository keeps estimate snapshots in process memory.
//
// Snapshots are cloned on the way in and out so callers can never mutate
// stored state through a shared line item slice.
type EstimateMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Estimate
}

var _ interfaces.IEstimateRepository = (*EstimateMemoryRepository)(nil)

func NewEstimateMemoryRepository(seed ...entities.Estimate) *EstimateMemoryRepository {
	r := &EstimateMemoryRepository{items: make(map[string]entities.Estimate, len(seed))}
	for _, e := range seed {
		r.items[e.ID] = e.Clone()
	}
	return r
}

func (r *EstimateMemoryRepository) Create(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; ok {
		return entities.Estimate{}, ErrEstimateExists
	}
	r.items[e.ID] = e.Clone()
	return e.Clone(), nil
}

func (r *EstimateMemoryRepository) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	return e.Clone(), nil
}

// List returns every estimate, newest first.
func (r *EstimateMemoryRepository) List(_ context.Context) ([]entities.Estimate, error) {
	r.mu.RLock()
	out := make([]entities.Estimate, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e.Clone())
	}
	r.mu.RUnlock()

	sortNewestFirst(out)
	return out, nil
}

func (r *EstimateMemoryRepository) Save(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; !ok {
		return entities.Estimate{}, nil
	}
	r.items[e.ID] = e.Clone()
	return e.Clone(), nil
}

func sortNewestFirst(out []entities.Estimate) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
}
