package interfaces

import (
	"context"

	"bidboard/internal/domain/entities"
)

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_interface.go -package=mock_interfaces

// IEstimateRepository stores one snapshot per estimate id.
//
// Implementations must:
//   - return copies, never shared line item slices
//   - return a zero Estimate (empty ID) when the id is unknown
//   - replace the whole snapshot on Save (no partial writes)

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
