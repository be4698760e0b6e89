package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/domain/pipeline"
	"bidboard/internal/domain/pricing"
	"bidboard/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrLineItemNotFound   = pipeline.ErrLineItemNotFound
	ErrInvalidStatus      = pipeline.ErrInvalidStatus
	ErrInvalidEstimateID  = errors.New("invalid estimate id")
	ErrInvalidLineItemID  = errors.New("invalid line item id")
	ErrInvalidEstimateVal = errors.New("invalid estimate value")
	ErrCustomerNotFound   = errors.New("customer not found")
)

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase.go -package=mocks

// IEstimateUseCase is the estimate store API used by every UI surface
// (estimate table, kanban board, line-item builder, document scanner).
//
// Each mutation is computed from the latest stored snapshot and published as
// a whole new snapshot; readers never observe a half-applied edit.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, customerID string) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	AddLineItem(ctx context.Context, estimateID string, seed entities.LineItemFields) (entities.Estimate, error)
	UpdateLineItem(ctx context.Context, estimateID, itemID string, fields entities.LineItemFields) (entities.Estimate, error)
	RemoveLineItem(ctx context.Context, estimateID, itemID string) (entities.Estimate, error)
	BulkImport(ctx context.Context, estimateID string, seeds []entities.LineItemFields) (entities.Estimate, error)
	SetStatus(ctx context.Context, estimateID string, status entities.EstimateStatus) (entities.Estimate, error)
	SetEstimateFields(ctx context.Context, estimateID string, fields pipeline.EstimateFields) (entities.Estimate, error)
	Board(ctx context.Context, query string) ([]pipeline.Column, error)
	Stats(ctx context.Context) (pipeline.Stats, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
	policy    pricing.NegativePolicy
	now       func() time.Time

	// mu serializes read-compute-write so concurrent surfaces never compute
	// from a stale snapshot.
	mu sync.Mutex
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// EstimateOption customizes an EstimateUseCase.
type EstimateOption func(*EstimateUseCase)

// WithNegativePolicy sets how negative qty, rate, margin and tax are handled.
func WithNegativePolicy(p pricing.NegativePolicy) EstimateOption {
	return func(u *EstimateUseCase) { u.policy = p }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) EstimateOption {
	return func(u *EstimateUseCase) { u.now = now }
}

func NewEstimateUseCase(repo interfaces.IEstimateRepository, customers interfaces.ICustomerRepository, opts ...EstimateOption) *EstimateUseCase {
	u := &EstimateUseCase{
		repo:      repo,
		customers: customers,
		policy:    pricing.NegativeAllow,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, customerID string) (entities.Estimate, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" && u.customers != nil {
		// Same default as the "new estimate" button: the first known customer.
		all, err := u.customers.List(ctx)
		if err != nil {
			return entities.Estimate{}, err
		}
		if len(all) > 0 {
			customerID = all[0].ID
		}
	}

	e := pipeline.NewEstimate(uuid.NewString(), customerID, u.now())
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[estimate][usecase] create failed customer_id=%s err=%v", customerID, err)
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] created estimate_id=%s customer_id=%s", created.ID, customerID)
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

func (u *EstimateUseCase) AddLineItem(ctx context.Context, estimateID string, seed entities.LineItemFields) (entities.Estimate, error) {
	seed, err := u.applyPolicy(seed)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.mutate(ctx, estimateID, "add-line-item", func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return pipeline.AddLineItem(e, seed, now), nil
	})
}

func (u *EstimateUseCase) UpdateLineItem(ctx context.Context, estimateID, itemID string, fields entities.LineItemFields) (entities.Estimate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Estimate{}, ErrInvalidLineItemID
	}
	fields, err := u.applyPolicy(fields)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.mutate(ctx, estimateID, "update-line-item", func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return pipeline.UpdateLineItem(e, itemID, fields, now)
	})
}

func (u *EstimateUseCase) RemoveLineItem(ctx context.Context, estimateID, itemID string) (entities.Estimate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.Estimate{}, ErrInvalidLineItemID
	}
	return u.mutate(ctx, estimateID, "remove-line-item", func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return pipeline.RemoveLineItem(e, itemID, now)
	})
}

func (u *EstimateUseCase) BulkImport(ctx context.Context, estimateID string, seeds []entities.LineItemFields) (entities.Estimate, error) {
	checked := make([]entities.LineItemFields, 0, len(seeds))
	for _, s := range seeds {
		s, err := u.applyPolicy(s)
		if err != nil {
			return entities.Estimate{}, err
		}
		checked = append(checked, s)
	}
	return u.mutate(ctx, estimateID, "bulk-import", func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return pipeline.BulkImport(e, checked, now), nil
	})
}

func (u *EstimateUseCase) SetStatus(ctx context.Context, estimateID string, status entities.EstimateStatus) (entities.Estimate, error) {
	if !status.Valid() {
		return entities.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return u.mutate(ctx, estimateID, "set-status", func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return pipeline.SetStatus(e, status, now)
	})
}

func (u *EstimateUseCase) SetEstimateFields(ctx context.Context, estimateID string, fields pipeline.EstimateFields) (entities.Estimate, error) {
	var err error
	if fields.Margin, err = u.policy.Value("margin", fields.Margin); err != nil {
		return entities.Estimate{}, fmt.Errorf("%w: %v", ErrInvalidEstimateVal, err)
	}
	if fields.Tax, err = u.policy.Value("tax", fields.Tax); err != nil {
		return entities.Estimate{}, fmt.Errorf("%w: %v", ErrInvalidEstimateVal, err)
	}
	return u.mutate(ctx, estimateID, "set-fields", func(e entities.Estimate, now time.Time) (entities.Estimate, error) {
		return pipeline.ApplyFields(e, fields, now)
	})
}

func (u *EstimateUseCase) Board(ctx context.Context, query string) ([]pipeline.Column, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) != "" {
		byID, err := u.customerIndex(ctx)
		if err != nil {
			return nil, err
		}
		all = pipeline.Filter(all, byID, query)
	}
	return pipeline.Board(all), nil
}

func (u *EstimateUseCase) Stats(ctx context.Context) (pipeline.Stats, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return pipeline.Stats{}, err
	}
	return pipeline.Summarize(all), nil
}

// mutate loads the latest snapshot, applies op and publishes the result.
// A failing op leaves the stored snapshot untouched.
func (u *EstimateUseCase) mutate(
	ctx context.Context,
	estimateID string,
	action string,
	op func(e entities.Estimate, now time.Time) (entities.Estimate, error),
) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	current, err := u.repo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[estimate][usecase] %s load failed estimate_id=%s err=%v", action, estimateID, err)
		return entities.Estimate{}, err
	}
	if current.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	next, err := op(current, u.now())
	if err == nil {
		if ferr := pipeline.CheckFinite(next); ferr != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidEstimateVal, ferr)
		}
	}
	if err != nil {
		log.Printf("[estimate][usecase] %s rejected estimate_id=%s err=%v", action, estimateID, err)
		return entities.Estimate{}, err
	}

	saved, err := u.repo.Save(ctx, next)
	if err != nil {
		log.Printf("[estimate][usecase] %s save failed estimate_id=%s err=%v", action, estimateID, err)
		return entities.Estimate{}, err
	}
	if saved.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Printf("[estimate][usecase] %s estimate_id=%s items=%d total=%.2f status=%s", action, saved.ID, len(saved.LineItems), saved.Total, saved.Status)
	return saved, nil
}

func (u *EstimateUseCase) applyPolicy(f entities.LineItemFields) (entities.LineItemFields, error) {
	out, err := u.policy.LineItemFields(f)
	if err != nil {
		return entities.LineItemFields{}, fmt.Errorf("%w: %v", ErrInvalidEstimateVal, err)
	}
	return out, nil
}

func (u *EstimateUseCase) customerIndex(ctx context.Context) (map[string]entities.Customer, error) {
	if u.customers == nil {
		return map[string]entities.Customer{}, nil
	}
	all, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Customer, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}
	return byID, nil
}
