package request

import (
	"errors"
	"strings"

	"bidboard/internal/domain/entities"
	"bidboard/internal/domain/pipeline"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
)

// CreateEstimateRequest starts a new Draft estimate. An empty customer_id
// selects the default customer.
type CreateEstimateRequest struct {
	CustomerID string `json:"customer_id"`
}

// LineItemRequest is a partial line item. Omitted fields keep their default
// (on add) or current value (on update).
type LineItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Qty         *float64 `json:"qty"`
	Rate        *float64 `json:"rate"`
}

func (r LineItemRequest) ToFields() entities.LineItemFields {
	return entities.LineItemFields{
		Name:        r.Name,
		Description: r.Description,
		Qty:         r.Qty,
		Rate:        r.Rate,
	}
}

// ImportLineItemsRequest carries a batch of extracted items.
type ImportLineItemsRequest struct {
	Items []LineItemRequest `json:"items" binding:"required"`
}

func (r ImportLineItemsRequest) ToFields() []entities.LineItemFields {
	out := make([]entities.LineItemFields, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.ToFields())
	}
	return out
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() (entities.EstimateStatus, error) {
	st, ok := entities.ParseEstimateStatus(r.Status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// EstimateFieldsRequest is a builder form edit.
type EstimateFieldsRequest struct {
	Name       *string  `json:"name"`
	CustomerID *string  `json:"customer_id"`
	Location   *string  `json:"location"`
	DueDate    *string  `json:"due_date"`
	Memo       *string  `json:"memo"`
	Exclusions *string  `json:"exclusions"`
	Margin     *float64 `json:"margin"`
	Tax        *float64 `json:"tax"`
	Status     *string  `json:"status"`
}

func (r EstimateFieldsRequest) ToFields() (pipeline.EstimateFields, error) {
	f := pipeline.EstimateFields{
		Name:       r.Name,
		CustomerID: trimmed(r.CustomerID),
		Location:   r.Location,
		DueDate:    trimmed(r.DueDate),
		Memo:       r.Memo,
		Exclusions: r.Exclusions,
		Margin:     r.Margin,
		Tax:        r.Tax,
	}
	if r.Status != nil {
		st, ok := entities.ParseEstimateStatus(*r.Status)
		if !ok {
			return pipeline.EstimateFields{}, ErrInvalidStatus
		}
		f.Status = &st
	}
	return f, nil
}

type ActiveEstimateRequest struct {
	EstimateID string `json:"estimate_id"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
