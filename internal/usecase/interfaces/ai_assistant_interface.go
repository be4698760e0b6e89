package interfaces

import (
	"context"
	"iter"

	"bidboard/internal/domain/entities"
)

//go:generate mockgen -source=ai_assistant_interface.go -destination=mocks/ai_assistant_interface.go -package=mock_interfaces

// SalesContext is the portfolio snapshot handed to the sales-advice chat.
type SalesContext struct {
	Estimates []entities.Estimate
	Customers []entities.Customer
}

// GeneratedSiteReport is a site report before the service stamps id and date.
type GeneratedSiteReport struct {
	ProjectName        string
	WorkCompleted      []string
	MaterialsUsed      []string
	Issues             []string
	Weather            string
	SafetyObservations string
	Summary            string
}

// IAIAssistant abstracts the generative AI provider (e.g. Gemini).
//
// Every call is fallible and may block on the network. Results are never
// written into the estimate store by the provider itself.
type IAIAssistant interface {
	AnalyzeEstimate(ctx context.Context, e entities.Estimate) (entities.AIInsight, error)
	GetMaterialSuggestions(ctx context.Context, e entities.Estimate) ([]entities.SuggestedItem, error)
	AnalyzeDocumentImage(ctx context.Context, image []byte, mimeType string) ([]entities.LineItemFields, error)
	GenerateSiteReport(ctx context.Context, notes string, image []byte, mimeType string) (GeneratedSiteReport, error)
	StreamSalesAdvice(ctx context.Context, history []entities.ChatMessage, sc SalesContext) iter.Seq2[string, error]
	FetchMarketIntelligence(ctx context.Context, e entities.Estimate) (entities.MarketInsight, error)
}
