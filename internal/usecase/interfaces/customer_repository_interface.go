package interfaces

import (
	"context"

	"bidboard/internal/domain/entities"
)

//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/customer_repository_interface.go -package=mock_interfaces

// ICustomerRepository exposes the read-only customer reference data.

type ICustomerRepository interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
