package pricing

import "bidboard/internal/domain/entities"

// Breakdown contains every intermediate value of the estimate roll-up.
type Breakdown struct {
	Subtotal     float64 `json:"subtotal"`
	MarginAmount float64 `json:"margin_amount"`
	TaxAmount    float64 `json:"tax_amount"`
	Total        float64 `json:"total"`
}

// Subtotal sums the extended amount of every line item.
func Subtotal(items []entities.LineItem) float64 {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Amount
	}
	return subtotal
}

// Calculate computes the estimate roll-up.
//
// Margin is applied to the subtotal; tax is applied to subtotal plus margin.
// Percentages are not validated here, see Policy.
func Calculate(items []entities.LineItem, marginPct, taxPct float64) Breakdown {
	subtotal := Subtotal(items)
	margin := subtotal * (marginPct / 100.0)
	tax := (subtotal + margin) * (taxPct / 100.0)

	return Breakdown{
		Subtotal:     subtotal,
		MarginAmount: margin,
		TaxAmount:    tax,
		Total:        subtotal + margin + tax,
	}
}

// GrandTotal is the value stored in Estimate.Total.
func GrandTotal(items []entities.LineItem, marginPct, taxPct float64) float64 {
	return Calculate(items, marginPct, taxPct).Total
}

// ForEstimate computes the breakdown for an estimate, treating unset percentages as 0.
func ForEstimate(e entities.Estimate) Breakdown {
	return Calculate(e.LineItems, e.MarginPct(), e.TaxPct())
}
