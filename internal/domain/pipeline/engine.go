// Package pipeline holds the pure snapshot operations behind the estimate
// builder and the kanban board. Every function takes an estimate snapshot and
// returns a new one; the input is never modified.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/domain/pricing"
)

const (
	DefaultEstimateName     = "New Project Proposal"
	DefaultEstimateLocation = "Tulsa, OK"
	DefaultMarginPct        = 15.0
	DefaultTaxPct           = 8.5
	DefaultDueIn            = 7 * 24 * time.Hour
	DueDateLayout           = "2006-01-02"
)

var (
	ErrLineItemNotFound = errors.New("line item not found")
	ErrInvalidStatus    = errors.New("invalid estimate status")
	ErrNonFiniteValue   = errors.New("value out of range")
)

// EstimateFields is a partial estimate edit from the builder form. Nil fields are absent.
type EstimateFields struct {
	Name       *string
	CustomerID *string
	Location   *string
	DueDate    *string
	Memo       *string
	Exclusions *string
	Margin     *float64
	Tax        *float64
	Status     *entities.EstimateStatus
}

// NewEstimate builds a Draft estimate with no line items and the default margin and tax.
func NewEstimate(id, customerID string, now time.Time) entities.Estimate {
	e := entities.Estimate{
		ID:         id,
		Name:       DefaultEstimateName,
		CustomerID: customerID,
		Location:   DefaultEstimateLocation,
		Status:     entities.EstimateStatusDraft,
		DueDate:    now.Add(DefaultDueIn).Format(DueDateLayout),
		LineItems:  []entities.LineItem{},
		Margin:     entities.Float64(DefaultMarginPct),
		Tax:        entities.Float64(DefaultTaxPct),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return Recalculate(e)
}

// Recalculate returns e with Total set from its line items, margin and tax.
func Recalculate(e entities.Estimate) entities.Estimate {
	e.Total = pricing.ForEstimate(e).Total
	return e
}

// CheckFinite rejects a snapshot carrying an infinite or NaN quantity, rate,
// amount or derived total. Such values cannot be serialized or stored.
func CheckFinite(e entities.Estimate) error {
	for _, it := range e.LineItems {
		if !finite(it.Qty, it.Rate, it.Amount) {
			return fmt.Errorf("%w: line item %s", ErrNonFiniteValue, it.ID)
		}
	}
	b := pricing.ForEstimate(e)
	if !finite(e.MarginPct(), e.TaxPct(), e.Total, b.Subtotal, b.MarginAmount, b.TaxAmount, b.Total) {
		return fmt.Errorf("%w: estimate %s totals", ErrNonFiniteValue, e.ID)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// touch recomputes the total and bumps UpdatedAt without ever moving it backwards.
func touch(e entities.Estimate, now time.Time) entities.Estimate {
	e = Recalculate(e)
	if now.After(e.UpdatedAt) {
		e.UpdatedAt = now
	}
	return e
}

// AddLineItem appends one builder line item.
func AddLineItem(e entities.Estimate, seed entities.LineItemFields, now time.Time) entities.Estimate {
	next := e.Clone()
	next.LineItems = append(next.LineItems, entities.NewLineItem(seed))
	return touch(next, now)
}

// UpdateLineItem applies fields to the item with itemID and recomputes its amount
// from the resulting qty and rate.
func UpdateLineItem(e entities.Estimate, itemID string, fields entities.LineItemFields, now time.Time) (entities.Estimate, error) {
	idx := e.FindLineItem(itemID)
	if idx < 0 {
		return e, fmt.Errorf("%w: %s", ErrLineItemNotFound, itemID)
	}
	next := e.Clone()
	next.LineItems[idx] = next.LineItems[idx].Apply(fields)
	return touch(next, now), nil
}

// RemoveLineItem drops the item with itemID, keeping the order of the rest.
func RemoveLineItem(e entities.Estimate, itemID string, now time.Time) (entities.Estimate, error) {
	idx := e.FindLineItem(itemID)
	if idx < 0 {
		return e, fmt.Errorf("%w: %s", ErrLineItemNotFound, itemID)
	}
	next := e.Clone()
	items := make([]entities.LineItem, 0, len(next.LineItems)-1)
	items = append(items, next.LineItems[:idx]...)
	items = append(items, next.LineItems[idx+1:]...)
	next.LineItems = items
	return touch(next, now), nil
}

// BulkImport appends extracted items in input order as a single update.
func BulkImport(e entities.Estimate, seeds []entities.LineItemFields, now time.Time) entities.Estimate {
	next := e.Clone()
	for _, seed := range seeds {
		next.LineItems = append(next.LineItems, entities.NewExtractedLineItem(seed))
	}
	return touch(next, now)
}

// SetStatus moves the estimate to status. Any status may follow any other.
func SetStatus(e entities.Estimate, status entities.EstimateStatus, now time.Time) (entities.Estimate, error) {
	if !status.Valid() {
		return e, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	next := e.Clone()
	next.Status = status
	return touch(next, now), nil
}

// ApplyFields applies a builder form edit.
func ApplyFields(e entities.Estimate, f EstimateFields, now time.Time) (entities.Estimate, error) {
	if f.Status != nil && !f.Status.Valid() {
		return e, fmt.Errorf("%w: %q", ErrInvalidStatus, *f.Status)
	}

	next := e.Clone()
	if f.Name != nil {
		next.Name = *f.Name
	}
	if f.CustomerID != nil {
		next.CustomerID = *f.CustomerID
	}
	if f.Location != nil {
		next.Location = *f.Location
	}
	if f.DueDate != nil {
		next.DueDate = *f.DueDate
	}
	if f.Memo != nil {
		next.Memo = *f.Memo
	}
	if f.Exclusions != nil {
		next.Exclusions = *f.Exclusions
	}
	if f.Margin != nil {
		next.Margin = entities.Float64(*f.Margin)
	}
	if f.Tax != nil {
		next.Tax = entities.Float64(*f.Tax)
	}
	if f.Status != nil {
		next.Status = *f.Status
	}
	return touch(next, now), nil
}
