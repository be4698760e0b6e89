package pipeline

import (
	"math"
	"sort"
	"strings"

	"bidboard/internal/domain/entities"
)

// Column is one kanban lane.
type Column struct {
	Status    entities.EstimateStatus `json:"status"`
	Estimates []entities.Estimate     `json:"estimates"`
	Total     float64                 `json:"total"`
}

// Stats are the dashboard headline numbers.
type Stats struct {
	EstimateCount int     `json:"estimate_count"`
	PipelineValue float64 `json:"pipeline_value"`
	WonValue      float64 `json:"won_value"`
	PendingCount  int     `json:"pending_count"`
	WinRate       int     `json:"win_rate"`
}

// Filter keeps estimates whose name or customer name contains query (case-insensitive).
// Unknown customers only match on the estimate name.
func Filter(estimates []entities.Estimate, customers map[string]entities.Customer, query string) []entities.Estimate {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return estimates
	}
	out := make([]entities.Estimate, 0, len(estimates))
	for _, e := range estimates {
		if strings.Contains(strings.ToLower(e.Name), query) {
			out = append(out, e)
			continue
		}
		if c, ok := customers[e.CustomerID]; ok && strings.Contains(strings.ToLower(c.Name), query) {
			out = append(out, e)
		}
	}
	return out
}

// Board groups estimates into one column per status, most recently updated first.
func Board(estimates []entities.Estimate) []Column {
	cols := make([]Column, len(entities.PipelineStatuses))
	index := make(map[entities.EstimateStatus]int, len(cols))
	for i, st := range entities.PipelineStatuses {
		cols[i] = Column{Status: st, Estimates: []entities.Estimate{}}
		index[st] = i
	}
	for _, e := range estimates {
		i, ok := index[e.Status]
		if !ok {
			continue
		}
		cols[i].Estimates = append(cols[i].Estimates, e)
		cols[i].Total += e.Total
	}
	for i := range cols {
		items := cols[i].Estimates
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].UpdatedAt.After(items[b].UpdatedAt)
		})
	}
	return cols
}

// Summarize computes the dashboard stats. Lost bids are excluded from the pipeline value.
func Summarize(estimates []entities.Estimate) Stats {
	s := Stats{EstimateCount: len(estimates)}
	won := 0
	for _, e := range estimates {
		switch e.Status {
		case entities.EstimateStatusWon:
			won++
			s.WonValue += e.Total
			s.PipelineValue += e.Total
		case entities.EstimateStatusDraft, entities.EstimateStatusSubmitted:
			s.PendingCount++
			s.PipelineValue += e.Total
		}
	}
	if len(estimates) > 0 {
		s.WinRate = int(math.Round(float64(won) / float64(len(estimates)) * 100))
	}
	return s
}
