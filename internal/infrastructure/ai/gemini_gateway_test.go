package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func mockGateway(t *testing.T) *GeminiGateway {
	t.Helper()
	g, err := NewGeminiGateway(context.Background(), GeminiOptions{Mock: true})
	require.NoError(t, err)
	return g
}

func TestNewGeminiGateway_MissingKey(t *testing.T) {
	_, err := NewGeminiGateway(context.Background(), GeminiOptions{})
	require.ErrorIs(t, err, ErrMissingGeminiAPIKey)
}

func TestGeminiGateway_MockMode(t *testing.T) {
	ctx := context.Background()
	g := mockGateway(t)
	e := entities.Estimate{
		Name:      "Clinic",
		Location:  "Tulsa, OK",
		LineItems: []entities.LineItem{{Name: "Steel", Rate: 0}, {Name: "Labor", Rate: 85}, {Name: "Paint"}, {Name: "Glass"}},
	}

	t.Run("audit", func(t *testing.T) {
		insight, err := g.AnalyzeEstimate(ctx, e)
		require.NoError(t, err)
		require.GreaterOrEqual(t, insight.Score, 0.0)
		require.LessOrEqual(t, insight.Score, 100.0)
		require.NotEmpty(t, insight.Risks)
	})

	t.Run("suggestions", func(t *testing.T) {
		items, err := g.GetMaterialSuggestions(ctx, e)
		require.NoError(t, err)
		require.Len(t, items, 3)
	})

	t.Run("extraction leaves missing values absent", func(t *testing.T) {
		fields, err := g.AnalyzeDocumentImage(ctx, []byte("img"), "image/png")
		require.NoError(t, err)
		require.Len(t, fields, 2)
		require.Equal(t, "Concrete", *fields[0].Name)
		require.Nil(t, fields[1].Name)
		require.Nil(t, fields[1].Qty)
	})

	t.Run("site report", func(t *testing.T) {
		r, err := g.GenerateSiteReport(ctx, "set forms", nil, "")
		require.NoError(t, err)
		require.Equal(t, "set forms", r.Summary)
		require.NotNil(t, r.Issues)
	})

	t.Run("sales stream", func(t *testing.T) {
		var sb strings.Builder
		for chunk, err := range g.StreamSalesAdvice(ctx, []entities.ChatMessage{{Role: entities.ChatRoleUser, Text: "next?"}}, interfaces.SalesContext{Estimates: []entities.Estimate{e}}) {
			require.NoError(t, err)
			sb.WriteString(chunk)
		}
		require.Contains(t, sb.String(), "**1** bids")
		require.Contains(t, sb.String(), `"next?"`)
	})

	t.Run("market query uses first three items", func(t *testing.T) {
		m, err := g.FetchMarketIntelligence(ctx, e)
		require.NoError(t, err)
		require.Contains(t, m.Text, "Tulsa, OK")
		require.Contains(t, m.Text, "Steel, Labor, Paint.")
		require.NotContains(t, m.Text, "Glass")
		require.NotNil(t, m.Sources)
	})
}

func TestGeminiGateway_NotConfigured(t *testing.T) {
	var g *GeminiGateway
	_, err := g.AnalyzeEstimate(context.Background(), entities.Estimate{})
	require.ErrorIs(t, err, ErrGeminiGatewayNotConfigured)

	g = &GeminiGateway{}
	_, err = g.FetchMarketIntelligence(context.Background(), entities.Estimate{})
	require.ErrorIs(t, err, ErrGeminiGatewayNotConfigured)

	for _, err := range g.StreamSalesAdvice(context.Background(), nil, interfaces.SalesContext{}) {
		require.ErrorIs(t, err, ErrGeminiGatewayNotConfigured)
	}
}

func TestExtractionHelpers(t *testing.T) {
	blank, name := "  ", "Rebar"
	zero, qty := 0.0, 3.0

	require.Nil(t, blankToNil(&blank))
	require.Nil(t, blankToNil(nil))
	require.Equal(t, "Rebar", *blankToNil(&name))
	require.Nil(t, zeroToNil(&zero))
	require.Equal(t, 3.0, *zeroToNil(&qty))
	require.Equal(t, []string{}, nonNil(nil))
}

// stubGateway points a real client at srv and retries up to three times.
func stubGateway(t *testing.T, srv *httptest.Server) *GeminiGateway {
	t.Helper()
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	require.NoError(t, err)
	return &GeminiGateway{
		client: client,
		model:  "gemini-test",
		retry:  RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond},
	}
}

func candidate(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": text}}},
		}},
	})
	return string(body)
}

func TestGeminiGateway_Retries(t *testing.T) {
	e := entities.Estimate{Name: "Clinic", LineItems: []entities.LineItem{{Name: "Steel", Qty: 1, Rate: 100, Amount: 100}}}

	t.Run("malformed response is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, candidate("not json"))
		}))
		defer srv.Close()

		_, err := stubGateway(t, srv).AnalyzeEstimate(context.Background(), e)
		require.ErrorIs(t, err, ErrMalformedResponse)
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("transport failure is retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = io.WriteString(w, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`)
				return
			}
			_, _ = io.WriteString(w, candidate(`{"score":72,"summary":"ok","risks":["thin margin"],"recommendations":[]}`))
		}))
		defer srv.Close()

		insight, err := stubGateway(t, srv).AnalyzeEstimate(context.Background(), e)
		require.NoError(t, err)
		require.Equal(t, 72.0, insight.Score)
		require.Equal(t, int32(2), calls.Load())
	})
}
