package request

import (
	"time"

	"bidboard/internal/domain/entities"
)

// ApplySuggestionRequest carries one suggestion back with the generation of
// the batch it came from.
type ApplySuggestionRequest struct {
	Generation    uint64  `json:"generation" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	SuggestedQty  float64 `json:"suggested_qty"`
	SuggestedRate float64 `json:"suggested_rate"`
	Reason        string  `json:"reason"`
}

func (r ApplySuggestionRequest) ToSuggestedItem() entities.SuggestedItem {
	return entities.SuggestedItem{
		Name:          r.Name,
		Description:   r.Description,
		SuggestedQty:  r.SuggestedQty,
		SuggestedRate: r.SuggestedRate,
		Reason:        r.Reason,
	}
}

type ChatMessageRequest struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text"`
}

type SalesAdviceRequest struct {
	History []ChatMessageRequest `json:"history" binding:"required,dive"`
}

func (r SalesAdviceRequest) ToHistory(now time.Time) []entities.ChatMessage {
	out := make([]entities.ChatMessage, 0, len(r.History))
	for _, m := range r.History {
		out = append(out, entities.ChatMessage{Role: entities.ChatRole(m.Role), Text: m.Text, Timestamp: now})
	}
	return out
}
