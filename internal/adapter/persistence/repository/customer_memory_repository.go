package repository

import (
	"context"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"
)

// CustomerMemoryRepository serves the fixed customer list in insertion order.
type CustomerMemoryRepository struct {
	items []entities.Customer
}

var _ interfaces.ICustomerRepository = (*CustomerMemoryRepository)(nil)

func NewCustomerMemoryRepository(customers ...entities.Customer) *CustomerMemoryRepository {
	items := make([]entities.Customer, len(customers))
	copy(items, customers)
	return &CustomerMemoryRepository{items: items}
}

func (r *CustomerMemoryRepository) List(_ context.Context) ([]entities.Customer, error) {
	out := make([]entities.Customer, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *CustomerMemoryRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Customer{}, nil
}
