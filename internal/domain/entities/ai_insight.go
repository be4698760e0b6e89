package entities

import "time"

// AIInsight is the result of an AI risk audit of an estimate.
type AIInsight struct {
	Score           float64  `json:"score"`
	Summary         string   `json:"summary"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// SuggestedItem is a scope item proposed by the AI collaborator.
type SuggestedItem struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SuggestedQty  float64 `json:"suggested_qty"`
	SuggestedRate float64 `json:"suggested_rate"`
	Reason        string  `json:"reason"`
}

// SuggestionBatch is one round of suggestions for an estimate. Generation
// identifies the builder session they were produced for; applying a
// suggestion after another estimate was opened is rejected.
type SuggestionBatch struct {
	EstimateID  string          `json:"estimate_id"`
	Generation  uint64          `json:"generation"`
	Suggestions []SuggestedItem `json:"suggestions"`
}

// SiteReport is a generated daily field report.
type SiteReport struct {
	ID                 string    `json:"id"`
	Date               time.Time `json:"date"`
	ProjectName        string    `json:"project_name"`
	WorkCompleted      []string  `json:"work_completed"`
	MaterialsUsed      []string  `json:"materials_used"`
	Issues             []string  `json:"issues"`
	Weather            string    `json:"weather"`
	SafetyObservations string    `json:"safety_observations"`
	Summary            string    `json:"summary"`
}

// ChatRole identifies the author of a sales-advice chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// MarketSource is a web page that grounded a market intelligence answer.
type MarketSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type MarketInsight struct {
	Text    string         `json:"text"`
	Sources []MarketSource `json:"sources"`
}
