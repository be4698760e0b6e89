package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log"
	"strings"
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"

	"google.golang.org/genai"
)

var (
	ErrMissingGeminiAPIKey        = errors.New("missing GEMINI_API_KEY")
	ErrGeminiGatewayNotConfigured = errors.New("gemini gateway not configured")
	ErrMalformedResponse          = errors.New("malformed ai response")
)

const defaultMarketText = "No detailed market intelligence found for this specific query."

// GeminiOptions configures the Gemini gateway.
type GeminiOptions struct {
	APIKey      string
	Model       string
	ChatModel   string
	MaxAttempts int
	Mock        bool
}

// GeminiGateway implements IAIAssistant on top of the Gemini API.
//
// In mock mode no network call is made and deterministic canned results are
// returned, which keeps the dashboard usable without an API key.
type GeminiGateway struct {
	client    *genai.Client
	model     string
	chatModel string
	retry     RetryConfig
	mockMode  bool
}

var _ interfaces.IAIAssistant = (*GeminiGateway)(nil)

func NewGeminiGateway(ctx context.Context, opts GeminiOptions) (*GeminiGateway, error) {
	g := &GeminiGateway{
		model:     opts.Model,
		chatModel: opts.ChatModel,
		retry:     RetryConfig{MaxAttempts: opts.MaxAttempts, BaseDelay: 500 * time.Millisecond},
	}
	if opts.Mock {
		log.Printf("[ai][gateway] mock mode enabled")
		g.mockMode = true
		return g, nil
	}

	if opts.APIKey == "" {
		log.Printf("[ai][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[ai][gateway] failed creating genai client err=%v", err)
		return nil, err
	}
	log.Printf("[ai][gateway] Gemini client initialized model=%s chat_model=%s", g.model, g.chatModel)
	g.client = client
	return g, nil
}

type auditWire struct {
	Score           float64  `json:"score"`
	Summary         string   `json:"summary"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

func (g *GeminiGateway) AnalyzeEstimate(ctx context.Context, e entities.Estimate) (entities.AIInsight, error) {
	if g.mock() {
		return mockInsight(e), nil
	}

	var out auditWire
	if err := g.generateJSON(ctx, "audit", genai.Text(auditPrompt(e)), auditSchema, &out); err != nil {
		return entities.AIInsight{}, err
	}
	return entities.AIInsight{
		Score:           out.Score,
		Summary:         out.Summary,
		Risks:           nonNil(out.Risks),
		Recommendations: nonNil(out.Recommendations),
	}, nil
}

type suggestionsWire struct {
	Suggestions []struct {
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		SuggestedQty  float64 `json:"suggestedQty"`
		SuggestedRate float64 `json:"suggestedRate"`
		Reason        string  `json:"reason"`
	} `json:"suggestions"`
}

func (g *GeminiGateway) GetMaterialSuggestions(ctx context.Context, e entities.Estimate) ([]entities.SuggestedItem, error) {
	if g.mock() {
		return mockSuggestions(e), nil
	}

	var out suggestionsWire
	if err := g.generateJSON(ctx, "suggestions", genai.Text(suggestionsPrompt(e)), suggestionsSchema, &out); err != nil {
		return nil, err
	}
	items := make([]entities.SuggestedItem, 0, len(out.Suggestions))
	for _, s := range out.Suggestions {
		items = append(items, entities.SuggestedItem{
			Name:          s.Name,
			Description:   s.Description,
			SuggestedQty:  s.SuggestedQty,
			SuggestedRate: s.SuggestedRate,
			Reason:        s.Reason,
		})
	}
	return items, nil
}

// extractionWire keeps pointers so missing values fall back to line item defaults.
type extractionWire struct {
	Items []struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Qty         *float64 `json:"qty"`
		Rate        *float64 `json:"rate"`
	} `json:"items"`
}

func (g *GeminiGateway) AnalyzeDocumentImage(ctx context.Context, image []byte, mimeType string) ([]entities.LineItemFields, error) {
	if g.mock() {
		return mockExtraction(), nil
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(extractionPrompt),
		}, genai.RoleUser),
	}
	var out extractionWire
	if err := g.generateJSON(ctx, "scan", contents, extractionSchema, &out); err != nil {
		return nil, err
	}
	fields := make([]entities.LineItemFields, 0, len(out.Items))
	for _, it := range out.Items {
		fields = append(fields, entities.LineItemFields{
			Name:        blankToNil(it.Name),
			Description: it.Description,
			Qty:         zeroToNil(it.Qty),
			Rate:        it.Rate,
		})
	}
	return fields, nil
}

type siteReportWire struct {
	ProjectName        string   `json:"projectName"`
	WorkCompleted      []string `json:"workCompleted"`
	MaterialsUsed      []string `json:"materialsUsed"`
	Issues             []string `json:"issues"`
	Weather            string   `json:"weather"`
	SafetyObservations string   `json:"safetyObservations"`
	Summary            string   `json:"summary"`
}

func (g *GeminiGateway) GenerateSiteReport(ctx context.Context, notes string, image []byte, mimeType string) (interfaces.GeneratedSiteReport, error) {
	if g.mock() {
		return mockSiteReport(notes), nil
	}

	parts := make([]*genai.Part, 0, 2)
	if len(image) > 0 {
		parts = append(parts, genai.NewPartFromBytes(image, mimeType))
	}
	parts = append(parts, genai.NewPartFromText(siteReportPrompt(notes)))

	var out siteReportWire
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	if err := g.generateJSON(ctx, "site-report", contents, siteReportSchema, &out); err != nil {
		return interfaces.GeneratedSiteReport{}, err
	}
	return interfaces.GeneratedSiteReport{
		ProjectName:        out.ProjectName,
		WorkCompleted:      nonNil(out.WorkCompleted),
		MaterialsUsed:      nonNil(out.MaterialsUsed),
		Issues:             nonNil(out.Issues),
		Weather:            out.Weather,
		SafetyObservations: out.SafetyObservations,
		Summary:            out.Summary,
	}, nil
}

func (g *GeminiGateway) StreamSalesAdvice(ctx context.Context, history []entities.ChatMessage, sc interfaces.SalesContext) iter.Seq2[string, error] {
	if g.mock() {
		return mockSalesStream(history, sc)
	}
	if g.client == nil {
		return func(yield func(string, error) bool) { yield("", ErrGeminiGatewayNotConfigured) }
	}

	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		role := genai.Role(genai.RoleUser)
		if m.Role == entities.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(salesInstruction(sc), genai.RoleUser),
	}

	log.Printf("[ai][gateway] sales-advice stream start messages=%d", len(contents))
	return func(yield func(string, error) bool) {
		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.chatModel, contents, cfg) {
			if err != nil {
				log.Printf("[ai][gateway] sales-advice stream failed err=%v", err)
				yield("", err)
				return
			}
			if text := resp.Text(); text != "" {
				if !yield(text, nil) {
					return
				}
			}
		}
	}
}

func (g *GeminiGateway) FetchMarketIntelligence(ctx context.Context, e entities.Estimate) (entities.MarketInsight, error) {
	if g.mock() {
		return mockMarket(e), nil
	}
	if g.client == nil {
		return entities.MarketInsight{}, ErrGeminiGatewayNotConfigured
	}

	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	var resp *genai.GenerateContentResponse
	err := g.retry.Do(ctx, "market", func() error {
		var err error
		resp, err = g.client.Models.GenerateContent(ctx, g.model, genai.Text(marketQuery(e)), cfg)
		return err
	})
	if err != nil {
		return entities.MarketInsight{}, err
	}

	insight := entities.MarketInsight{Text: resp.Text(), Sources: []entities.MarketSource{}}
	if insight.Text == "" {
		insight.Text = defaultMarketText
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			title := chunk.Web.Title
			if title == "" {
				title = "Market Source"
			}
			insight.Sources = append(insight.Sources, entities.MarketSource{Title: title, URI: chunk.Web.URI})
		}
	}
	return insight, nil
}

func (g *GeminiGateway) mock() bool {
	return g != nil && g.mockMode
}

// generateJSON requests a schema-constrained JSON answer and decodes it into out.
func (g *GeminiGateway) generateJSON(ctx context.Context, action string, contents []*genai.Content, schema *genai.Schema, out any) error {
	if g == nil || g.client == nil {
		log.Printf("[ai][gateway] gateway not configured action=%s", action)
		return ErrGeminiGatewayNotConfigured
	}
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	log.Printf("[ai][gateway] %s start model=%s", action, g.model)
	return g.retry.Do(ctx, action, func() error {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
		if err != nil {
			return err
		}
		// Decode failures are not retried.
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return Permanent(fmt.Errorf("%w: empty response", ErrMalformedResponse))
		}
		if err := json.Unmarshal([]byte(text), out); err != nil {
			return Permanent(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
		}
		log.Printf("[ai][gateway] %s success response_len=%d", action, len(text))
		return nil
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// zeroToNil treats an extracted quantity of 0 as "not stated".
func zeroToNil(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
