package entities

import (
	"strings"
	"time"
)

// EstimateStatus represents the pipeline column of an estimate (bid).
//
// Domain notes:
//   - The pipeline is a flat state set: any status may move to any other.
//   - Table dropdown, kanban drop target and builder form all write the same field.
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "Draft"
	EstimateStatusSubmitted EstimateStatus = "Submitted"
	EstimateStatusWon       EstimateStatus = "Won"
	EstimateStatusLost      EstimateStatus = "Lost"
)

// PipelineStatuses lists every status in board column order.
var PipelineStatuses = []EstimateStatus{
	EstimateStatusDraft,
	EstimateStatusSubmitted,
	EstimateStatusWon,
	EstimateStatusLost,
}

// Valid reports whether s is one of the enumerated statuses.
func (s EstimateStatus) Valid() bool {
	for _, st := range PipelineStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// ParseEstimateStatus normalises a user supplied status (case-insensitive).
func ParseEstimateStatus(raw string) (EstimateStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, st := range PipelineStatuses {
		if strings.EqualFold(raw, string(st)) {
			return st, true
		}
	}
	return EstimateStatus(raw), false
}

// Estimate is a project bid.
//
// Invariants:
//   - Total always equals the pricing grand total of LineItems, Margin and Tax.
//   - UpdatedAt never decreases.
//   - LineItems keep insertion order.
//
// Margin and Tax are percentages; nil means "not set" and prices as 0.
type Estimate struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	CustomerID string         `json:"customer_id"`
	Location   string         `json:"location"`
	Status     EstimateStatus `json:"status"`
	Total      float64        `json:"total"`
	DueDate    string         `json:"due_date"`
	Memo       string         `json:"memo"`
	Exclusions string         `json:"exclusions"`
	LineItems  []LineItem     `json:"line_items"`
	Margin     *float64       `json:"margin,omitempty"`
	Tax        *float64       `json:"tax,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// MarginPct returns the margin percentage, 0 when unset.
func (e Estimate) MarginPct() float64 {
	if e.Margin == nil {
		return 0
	}
	return *e.Margin
}

// TaxPct returns the tax percentage, 0 when unset.
func (e Estimate) TaxPct() float64 {
	if e.Tax == nil {
		return 0
	}
	return *e.Tax
}

// Clone returns a deep copy so snapshots never share line item storage.
func (e Estimate) Clone() Estimate {
	out := e
	if e.LineItems != nil {
		out.LineItems = make([]LineItem, len(e.LineItems))
		copy(out.LineItems, e.LineItems)
	}
	if e.Margin != nil {
		m := *e.Margin
		out.Margin = &m
	}
	if e.Tax != nil {
		t := *e.Tax
		out.Tax = &t
	}
	return out
}

// FindLineItem returns the index of the item with id, or -1.
func (e Estimate) FindLineItem(id string) int {
	for i := range e.LineItems {
		if e.LineItems[i].ID == id {
			return i
		}
	}
	return -1
}

// Float64 is a small helper for optional percentage fields.
func Float64(v float64) *float64 {
	return &v
}
