// Package seed provides the demo customers and estimates loaded into the
// in-memory store at startup.
package seed

import (
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/domain/pipeline"
)

// Customers returns the demo customer list. The first entry is the default
// customer for new estimates.
func Customers() []entities.Customer {
	return []entities.Customer{
		{ID: "c1", Name: "QuikTrip Corp", Type: entities.CustomerTypeOwner, Email: "bids@quiktrip.com", Phone: "918-615-7000"},
		{ID: "c2", Name: "Manhattan Construction", Type: entities.CustomerTypeGC, Email: "estimating@manhattan.com", Phone: "918-555-0100"},
		{ID: "c3", Name: "Legacy Development", Type: entities.CustomerTypeDeveloper, Phone: "918-222-3333"},
		{ID: "c4", Name: "Flintco, LLC", Type: entities.CustomerTypeGC, Email: "tulsa.bids@flintco.com", Phone: "918-587-8451"},
	}
}

func item(id, name, desc string, qty, rate float64) entities.LineItem {
	return entities.LineItem{ID: id, Name: name, Description: desc, Qty: qty, Rate: rate, Amount: qty * rate}
}

// Estimates returns one demo bid per active pipeline stage. Totals are computed,
// not copied, so they always satisfy the pricing invariant.
func Estimates(now time.Time) []entities.Estimate {
	day := 24 * time.Hour
	out := []entities.Estimate{
		{
			ID:         "est1",
			Name:       "QuikTrip #1245 Remodel",
			CustomerID: "c1",
			Location:   "Bixby, OK",
			Status:     entities.EstimateStatusWon,
			DueDate:    "2024-06-15",
			Memo:       "Full interior remodel including cold storage expansion.",
			Exclusions: "Permits and fees, landscape repair.",
			LineItems: []entities.LineItem{
				item("l1", "Demolition", "Internal walls and slab", 1, 12000),
				item("l2", "Concrete", "Pad reinforcement", 450, 85),
				item("l5", "Interior Finishes", "Painting and wall protection", 1, 34950),
			},
			CreatedAt: now.Add(-30 * day),
			UpdatedAt: now.Add(-2 * day),
		},
		{
			ID:         "est2",
			Name:       "City Hall Annex",
			CustomerID: "c2",
			Location:   "Tulsa, OK",
			Status:     entities.EstimateStatusSubmitted,
			DueDate:    "2024-07-22",
			Memo:       "Structure only bid for GC package.",
			Exclusions: "Interior finishes, HVAC, Electrical.",
			LineItems: []entities.LineItem{
				item("l3", "Structural Steel", "A36 Beams", 12, 8500),
				item("l6", "Foundation", "Piers and grade beams", 1, 1143000),
			},
			CreatedAt: now.Add(-20 * day),
			UpdatedAt: now.Add(-12 * time.Hour),
		},
		{
			ID:         "est3",
			Name:       "Downtown Lofts Ph II",
			CustomerID: "c3",
			Location:   "Tulsa, OK",
			Status:     entities.EstimateStatusDraft,
			DueDate:    "2024-08-05",
			Memo:       "Preliminary pricing for investor review.",
			Exclusions: "Structural engineering.",
			LineItems: []entities.LineItem{
				item("l4", "Framing", "Metal stud framing", 5200, 18),
				item("l7", "Drywall", "Type X fire rated", 12000, 18.2),
			},
			CreatedAt: now.Add(-10 * day),
			UpdatedAt: now,
		},
	}
	for i := range out {
		out[i] = pipeline.Recalculate(out[i])
	}
	return out
}
