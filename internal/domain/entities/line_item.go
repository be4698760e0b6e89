package entities

import "github.com/google/uuid"

const (
	defaultLineItemQty  = 1.0
	defaultLineItemRate = 0.0
	ExtractedItemName   = "Extracted Item"
)

// LineItem is one priced scope entry of an estimate. Amount is derived.
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// LineItemFields is a partial line item. Nil fields are absent.
type LineItemFields struct {
	Name        *string
	Description *string
	Qty         *float64
	Rate        *float64
}

// TouchesPricing reports whether qty or rate is being changed.
func (f LineItemFields) TouchesPricing() bool {
	return f.Qty != nil || f.Rate != nil
}

// NewLineItem builds a line item for the builder's "add line" action.
//
// Defaults: name "", description "", qty 1, rate 0.
func NewLineItem(seed LineItemFields) LineItem {
	return buildLineItem(seed, "")
}

// NewExtractedLineItem builds a line item from a document-scan or import row.
//
// Defaults: name "Extracted Item", description "", qty 1, rate 0.
func NewExtractedLineItem(seed LineItemFields) LineItem {
	return buildLineItem(seed, ExtractedItemName)
}

func buildLineItem(seed LineItemFields, defaultName string) LineItem {
	it := LineItem{
		ID:          uuid.NewString(),
		Name:        defaultName,
		Description: "",
		Qty:         defaultLineItemQty,
		Rate:        defaultLineItemRate,
	}
	if seed.Name != nil {
		it.Name = *seed.Name
	}
	if seed.Description != nil {
		it.Description = *seed.Description
	}
	if seed.Qty != nil {
		it.Qty = *seed.Qty
	}
	if seed.Rate != nil {
		it.Rate = *seed.Rate
	}
	it.Amount = it.Qty * it.Rate
	return it
}

// Apply returns a copy of it with fields applied and Amount recomputed.
func (it LineItem) Apply(f LineItemFields) LineItem {
	if f.Name != nil {
		it.Name = *f.Name
	}
	if f.Description != nil {
		it.Description = *f.Description
	}
	if f.Qty != nil {
		it.Qty = *f.Qty
	}
	if f.Rate != nil {
		it.Rate = *f.Rate
	}
	it.Amount = it.Qty * it.Rate
	return it
}
