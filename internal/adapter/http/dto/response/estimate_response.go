package response

import (
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/domain/pipeline"
	"bidboard/internal/domain/pricing"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type EstimateResponse struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	CustomerID   string             `json:"customer_id"`
	Location     string             `json:"location"`
	Status       string             `json:"status"`
	DueDate      string             `json:"due_date"`
	Memo         string             `json:"memo"`
	Exclusions   string             `json:"exclusions"`
	LineItems    []LineItemResponse `json:"line_items"`
	Margin       float64            `json:"margin"`
	Tax          float64            `json:"tax"`
	Subtotal     float64            `json:"subtotal"`
	MarginAmount float64            `json:"margin_amount"`
	TaxAmount    float64            `json:"tax_amount"`
	Total        float64            `json:"total"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// FromEstimate maps an estimate and its pricing breakdown. Total is the stored value.
func FromEstimate(e entities.Estimate) EstimateResponse {
	b := pricing.ForEstimate(e)
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, it := range e.LineItems {
		items = append(items, LineItemResponse(it))
	}
	return EstimateResponse{
		ID:           e.ID,
		Name:         e.Name,
		CustomerID:   e.CustomerID,
		Location:     e.Location,
		Status:       string(e.Status),
		DueDate:      e.DueDate,
		Memo:         e.Memo,
		Exclusions:   e.Exclusions,
		LineItems:    items,
		Margin:       e.MarginPct(),
		Tax:          e.TaxPct(),
		Subtotal:     b.Subtotal,
		MarginAmount: b.MarginAmount,
		TaxAmount:    b.TaxAmount,
		Total:        e.Total,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func FromEstimates(list []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimate(e))
	}
	return out
}

type ColumnResponse struct {
	Status    string             `json:"status"`
	Count     int                `json:"count"`
	Total     float64            `json:"total"`
	Estimates []EstimateResponse `json:"estimates"`
}

func FromBoard(cols []pipeline.Column) []ColumnResponse {
	out := make([]ColumnResponse, 0, len(cols))
	for _, c := range cols {
		out = append(out, ColumnResponse{
			Status:    string(c.Status),
			Count:     len(c.Estimates),
			Total:     c.Total,
			Estimates: FromEstimates(c.Estimates),
		})
	}
	return out
}

type ActiveEstimateResponse struct {
	EstimateID string `json:"estimate_id"`
}
