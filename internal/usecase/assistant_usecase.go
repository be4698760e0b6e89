package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"strings"
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAIService              = errors.New("ai service error")
	ErrAIServiceNotConfigured = errors.New("ai service not configured")
	ErrStaleAIResponse        = errors.New("stale ai response discarded")
	ErrInvalidDocument        = errors.New("invalid document image")
	ErrEmptySiteNotes         = errors.New("site notes or image required")
)

//go:generate mockgen -source=assistant_usecase.go -destination=../adapter/http/handlers/mocks/assistant_usecase.go -package=mocks

// IAssistantUseCase runs the AI-assisted workflows around an estimate.
//
// The AI provider never touches the store: results that change an estimate
// (document scan, accepted suggestions) go through IEstimateUseCase.
type IAssistantUseCase interface {
	SelectEstimate(ctx context.Context, estimateID string) error
	ActiveEstimateID() string
	AuditEstimate(ctx context.Context, estimateID string) (entities.AIInsight, error)
	SuggestMaterials(ctx context.Context, estimateID string) (entities.SuggestionBatch, error)
	ApplySuggestion(ctx context.Context, estimateID string, generation uint64, s entities.SuggestedItem) (entities.Estimate, error)
	ScanDocument(ctx context.Context, estimateID string, image []byte, mimeType string) (entities.Estimate, error)
	GenerateSiteReport(ctx context.Context, notes string, image []byte, mimeType string) (entities.SiteReport, error)
	StreamSalesAdvice(ctx context.Context, history []entities.ChatMessage) (iter.Seq2[string, error], error)
	MarketIntelligence(ctx context.Context, estimateID string) (entities.MarketInsight, error)
}

type AssistantUseCase struct {
	ai        interfaces.IAIAssistant
	estimates IEstimateUseCase
	customers interfaces.ICustomerRepository
	active    *ActiveEstimate
	now       func() time.Time
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(ai interfaces.IAIAssistant, estimates IEstimateUseCase, customers interfaces.ICustomerRepository, active *ActiveEstimate) *AssistantUseCase {
	if active == nil {
		active = NewActiveEstimate(true)
	}
	return &AssistantUseCase{
		ai:        ai,
		estimates: estimates,
		customers: customers,
		active:    active,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *AssistantUseCase) SelectEstimate(ctx context.Context, estimateID string) error {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID != "" {
		if _, err := u.estimates.GetByID(ctx, estimateID); err != nil {
			return err
		}
	}
	u.active.Select(estimateID)
	log.Printf("[ai][usecase] active estimate estimate_id=%q", estimateID)
	return nil
}

func (u *AssistantUseCase) ActiveEstimateID() string {
	return u.active.ID()
}

func (u *AssistantUseCase) AuditEstimate(ctx context.Context, estimateID string) (entities.AIInsight, error) {
	if u.ai == nil {
		return entities.AIInsight{}, ErrAIServiceNotConfigured
	}
	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.AIInsight{}, err
	}

	insight, err := u.ai.AnalyzeEstimate(ctx, est)
	if err != nil {
		return entities.AIInsight{}, aiFailure("audit", est.ID, err)
	}
	if insight.Score < 0 || insight.Score > 100 {
		return entities.AIInsight{}, aiFailure("audit", est.ID, fmt.Errorf("score out of range: %v", insight.Score))
	}
	log.Printf("[ai][usecase] audit success estimate_id=%s score=%.0f risks=%d", est.ID, insight.Score, len(insight.Risks))
	return insight, nil
}

// SuggestMaterials opens the estimate and asks for missing scope items. The
// returned generation must accompany any ApplySuggestion for this batch.
func (u *AssistantUseCase) SuggestMaterials(ctx context.Context, estimateID string) (entities.SuggestionBatch, error) {
	if u.ai == nil {
		return entities.SuggestionBatch{}, ErrAIServiceNotConfigured
	}
	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.SuggestionBatch{}, err
	}

	ticket := u.active.Begin(est.ID)
	items, err := u.ai.GetMaterialSuggestions(ctx, est)
	if err != nil {
		return entities.SuggestionBatch{}, aiFailure("suggestions", est.ID, err)
	}
	if items == nil {
		items = []entities.SuggestedItem{}
	}
	log.Printf("[ai][usecase] suggestions success estimate_id=%s generation=%d count=%d", est.ID, ticket.Generation, len(items))
	return entities.SuggestionBatch{EstimateID: est.ID, Generation: ticket.Generation, Suggestions: items}, nil
}

// ApplySuggestion adds an accepted suggestion as a regular builder line item.
// generation comes from the SuggestionBatch the suggestion belongs to.
func (u *AssistantUseCase) ApplySuggestion(ctx context.Context, estimateID string, generation uint64, s entities.SuggestedItem) (entities.Estimate, error) {
	ticket := AIRequestTicket{EstimateID: strings.TrimSpace(estimateID), Generation: generation}
	name, desc, qty, rate := s.Name, s.Description, s.SuggestedQty, s.SuggestedRate

	var est entities.Estimate
	err := u.active.Apply(ticket, func() error {
		var err error
		est, err = u.estimates.AddLineItem(ctx, ticket.EstimateID, entities.LineItemFields{
			Name:        &name,
			Description: &desc,
			Qty:         &qty,
			Rate:        &rate,
		})
		return err
	})
	if errors.Is(err, ErrStaleAIResponse) {
		log.Printf("[ai][usecase] suggestion discarded estimate_id=%s generation=%d active=%q", ticket.EstimateID, generation, u.active.ID())
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return est, nil
}

// ScanDocument extracts line items from an image and imports them as one batch.
// The result is dropped if another estimate was opened while the scan ran.
func (u *AssistantUseCase) ScanDocument(ctx context.Context, estimateID string, image []byte, mimeType string) (entities.Estimate, error) {
	if u.ai == nil {
		return entities.Estimate{}, ErrAIServiceNotConfigured
	}
	if len(image) == 0 || !strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return entities.Estimate{}, ErrInvalidDocument
	}
	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	ticket := u.active.Begin(est.ID)
	log.Printf("[ai][usecase] scan start estimate_id=%s bytes=%d mime=%s", est.ID, len(image), mimeType)

	items, err := u.ai.AnalyzeDocumentImage(ctx, image, mimeType)
	if err != nil {
		return entities.Estimate{}, aiFailure("scan", est.ID, err)
	}

	var imported entities.Estimate
	err = u.active.Apply(ticket, func() error {
		var err error
		imported, err = u.estimates.BulkImport(ctx, est.ID, items)
		return err
	})
	if errors.Is(err, ErrStaleAIResponse) {
		log.Printf("[ai][usecase] scan result discarded estimate_id=%s active=%q", est.ID, u.active.ID())
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return imported, nil
}

func (u *AssistantUseCase) GenerateSiteReport(ctx context.Context, notes string, image []byte, mimeType string) (entities.SiteReport, error) {
	if u.ai == nil {
		return entities.SiteReport{}, ErrAIServiceNotConfigured
	}
	notes = strings.TrimSpace(notes)
	if notes == "" && len(image) == 0 {
		return entities.SiteReport{}, ErrEmptySiteNotes
	}
	if len(image) > 0 && mimeType == "" {
		mimeType = "image/jpeg"
	}

	gen, err := u.ai.GenerateSiteReport(ctx, notes, image, mimeType)
	if err != nil {
		return entities.SiteReport{}, aiFailure("site-report", "", err)
	}
	return entities.SiteReport{
		ID:                 uuid.NewString(),
		Date:               u.now(),
		ProjectName:        gen.ProjectName,
		WorkCompleted:      gen.WorkCompleted,
		MaterialsUsed:      gen.MaterialsUsed,
		Issues:             gen.Issues,
		Weather:            gen.Weather,
		SafetyObservations: gen.SafetyObservations,
		Summary:            gen.Summary,
	}, nil
}

// StreamSalesAdvice answers the latest user message with the whole pipeline as context.
// A history without user messages yields an empty stream.
func (u *AssistantUseCase) StreamSalesAdvice(ctx context.Context, history []entities.ChatMessage) (iter.Seq2[string, error], error) {
	if u.ai == nil {
		return nil, ErrAIServiceNotConfigured
	}
	if !hasUserMessage(history) {
		return func(func(string, error) bool) {}, nil
	}

	estimates, err := u.estimates.List(ctx)
	if err != nil {
		return nil, err
	}
	var customers []entities.Customer
	if u.customers != nil {
		if customers, err = u.customers.List(ctx); err != nil {
			return nil, err
		}
	}

	chunks := u.ai.StreamSalesAdvice(ctx, history, interfaces.SalesContext{Estimates: estimates, Customers: customers})
	return func(yield func(string, error) bool) {
		for chunk, err := range chunks {
			if err != nil {
				yield("", aiFailure("sales-advice", "", err))
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}, nil
}

func (u *AssistantUseCase) MarketIntelligence(ctx context.Context, estimateID string) (entities.MarketInsight, error) {
	if u.ai == nil {
		return entities.MarketInsight{}, ErrAIServiceNotConfigured
	}
	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.MarketInsight{}, err
	}

	insight, err := u.ai.FetchMarketIntelligence(ctx, est)
	if err != nil {
		return entities.MarketInsight{}, aiFailure("market", est.ID, err)
	}
	if insight.Sources == nil {
		insight.Sources = []entities.MarketSource{}
	}
	return insight, nil
}

func aiFailure(action, estimateID string, err error) error {
	log.Printf("[ai][usecase] %s failed estimate_id=%s err=%v", action, estimateID, err)
	if errors.Is(err, ErrAIService) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrAIService, action, err)
}

func hasUserMessage(history []entities.ChatMessage) bool {
	for _, m := range history {
		if m.Role == entities.ChatRoleUser && strings.TrimSpace(m.Text) != "" {
			return true
		}
	}
	return false
}
