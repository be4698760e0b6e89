package ai

import (
	"fmt"
	"iter"
	"strings"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"
)

// Canned results for AI_GATEWAY_MOCK. They depend only on the input so
// repeated calls are stable.

func mockInsight(e entities.Estimate) entities.AIInsight {
	score := 40.0 + 10.0*float64(len(e.LineItems))
	if score > 95 {
		score = 95
	}
	risks := []string{}
	if len(e.LineItems) == 0 {
		risks = append(risks, "Estimate has no priced scope")
	}
	if strings.TrimSpace(e.Exclusions) == "" {
		risks = append(risks, "No exclusions listed; scope gaps may be assumed included")
	}
	for _, it := range e.LineItems {
		if it.Rate == 0 {
			risks = append(risks, fmt.Sprintf("%q is priced at $0", it.Name))
		}
	}
	return entities.AIInsight{
		Score:           score,
		Summary:         fmt.Sprintf("%s in %s is priced at $%.2f across %d line items.", e.Name, e.Location, e.Total, len(e.LineItems)),
		Risks:           risks,
		Recommendations: []string{"Confirm quantities against the latest drawings", "Add a contingency line for escalation"},
	}
}

func mockSuggestions(e entities.Estimate) []entities.SuggestedItem {
	return []entities.SuggestedItem{
		{Name: "General Conditions", Description: "Supervision, temporary facilities and cleanup", SuggestedQty: 1, SuggestedRate: 8500, Reason: fmt.Sprintf("Not present in %s scope", e.Name)},
		{Name: "Dumpster Service", Description: "30 yd roll-off, weekly swaps", SuggestedQty: 6, SuggestedRate: 650, Reason: "Debris removal is commonly missed"},
		{Name: "Contingency", Description: "Owner-approved allowance", SuggestedQty: 1, SuggestedRate: 5000, Reason: "Covers unforeseen conditions"},
	}
}

func mockExtraction() []entities.LineItemFields {
	name, desc := "Concrete", "4000 psi ready-mix"
	qty, rate := 25.0, 165.0
	return []entities.LineItemFields{
		{Name: &name, Description: &desc, Qty: &qty, Rate: &rate},
		{},
	}
}

func mockSiteReport(notes string) interfaces.GeneratedSiteReport {
	summary := "Routine progress on site."
	if n := strings.TrimSpace(notes); n != "" {
		summary = n
	}
	return interfaces.GeneratedSiteReport{
		ProjectName:        "Unnamed Project",
		WorkCompleted:      []string{"Site walk completed"},
		MaterialsUsed:      []string{},
		Issues:             []string{},
		Weather:            "Not recorded",
		SafetyObservations: "No hazards observed",
		Summary:            summary,
	}
}

func mockSalesStream(history []entities.ChatMessage, sc interfaces.SalesContext) iter.Seq2[string, error] {
	last := ""
	for _, m := range history {
		if m.Role == entities.ChatRoleUser {
			last = m.Text
		}
	}
	chunks := []string{
		fmt.Sprintf("You have **%d** bids in the pipeline. ", len(sc.Estimates)),
		fmt.Sprintf("On %q: ", last),
		"follow up within 48 hours and lead with value engineering.",
	}
	return func(yield func(string, error) bool) {
		for _, c := range chunks {
			if !yield(c, nil) {
				return
			}
		}
	}
}

func mockMarket(e entities.Estimate) entities.MarketInsight {
	return entities.MarketInsight{
		Text:    marketQuery(e),
		Sources: []entities.MarketSource{},
	}
}
